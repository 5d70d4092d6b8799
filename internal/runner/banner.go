package runner

import (
	"github.com/projectdiscovery/gologger"
	updateutils "github.com/projectdiscovery/utils/update"
)

var banner = `
                 __     __        __
     ____  _____/ /____/ /_____ _/ /_
    / __ \/ ___/ / ___/ __/ __ ` + "`" + `/ __/
   / /_/ (__  ) (__  ) /_/ /_/ / /_
  / .___/____/_/____/\__/\__,_/\__/
 /_/
`

var version = "v0.0.1"

// showBanner is used to show the banner to the user
func showBanner() {
	gologger.Print().Msgf("%s\n", banner)
	gologger.Print().Msgf("\t\tprojectdiscovery.io\n\n")
}

// GetUpdateCallback returns a callback function that updates pslstat
func GetUpdateCallback() func() {
	return func() {
		showBanner()
		updateutils.GetUpdateToolCallback("pslstat", version)()
	}
}

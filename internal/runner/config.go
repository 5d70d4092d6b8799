package runner

import (
	"os"
	"path/filepath"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/pslstat"
	fileutil "github.com/projectdiscovery/utils/file"
	"gopkg.in/yaml.v3"
)

func getUserHomeDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}
	return homeDir
}

func init() {
	defaultCfg := filepath.Join(getUserHomeDir(), ".config/pslstat/config.yaml")
	// create default config if it does not exist
	if fileutil.FileExists(defaultCfg) {
		// if it exists use that data as default
		if bin, err := os.ReadFile(defaultCfg); err == nil {
			var cfg pslstat.Config
			if errx := yaml.Unmarshal(bin, &cfg); errx == nil {
				pslstat.DefaultConfig = cfg
				return
			}
		}
	}
	if err := fileutil.CreateFolder(filepath.Dir(defaultCfg)); err != nil {
		gologger.Error().Msgf("failed to create config dir %v got: %v", filepath.Dir(defaultCfg), err)
		return
	}
	if err := pslstat.GenerateSample(defaultCfg); err != nil {
		gologger.Error().Msgf("failed to save default config to %v got: %v", defaultCfg, err)
	}
}

package pslstat

import (
	"strings"

	"golang.org/x/net/publicsuffix"
)

// TableDrift counts patterns in lines that the compiled suffix table bundled
// with golang.org/x/net does not recognize as ICANN suffixes. A large number
// means the vendored Go table lags behind the fetched list.
func TableDrift(lines []string) int {
	missing := 0
	for _, line := range lines {
		labels := splitPattern(line)
		if labels == nil {
			continue
		}
		pattern := strings.Join(labels, ".")
		suffix, icann := publicsuffix.PublicSuffix(pattern)
		if !icann || suffix != pattern {
			missing++
		}
	}
	return missing
}

package pslstat

import (
	"strings"

	errorutil "github.com/projectdiscovery/utils/errors"
)

const (
	// BeginICANNMarker delimits the start of the ICANN-managed section
	BeginICANNMarker = "// ===BEGIN ICANN DOMAINS==="
	// EndICANNMarker delimits the end of the ICANN-managed section
	EndICANNMarker = "// ===END ICANN DOMAINS==="
)

// ExtractSection returns the lines strictly between the first line containing
// startMarker and the first subsequent line containing endMarker. Later
// occurrences of either marker are ignored.
func ExtractSection(content, startMarker, endMarker string) ([]string, error) {
	lines := strings.Split(content, "\n")
	start := -1
	end := -1
	for idx, line := range lines {
		if start == -1 {
			if strings.Contains(line, startMarker) {
				start = idx + 1
			}
			continue
		}
		if strings.Contains(line, endMarker) {
			end = idx
			break
		}
	}
	if start == -1 || end == -1 {
		return nil, errorutil.NewWithTag("pslstat", "could not find section markers `%v` and `%v`", startMarker, endMarker)
	}
	return lines[start:end], nil
}

package pslstat

import (
	"strings"
)

// Index holds the three aggregate views built in a single pass over the
// extracted suffix list lines. All three are keyed independently since they
// feed different reports: frequency tables only read the first two, the
// per-TLD report only reads the last one and the counts.
type Index struct {
	// ComponentTLDs maps a component to the set of distinct TLDs using it
	ComponentTLDs map[string]map[string]struct{}
	// ComponentCount maps a component to its total occurrences across all patterns
	ComponentCount map[string]int
	// TLDComponents maps a TLD to every component occurrence seen under it,
	// duplicates preserved in input order
	TLDComponents map[string][]string
}

// NewExcludeSet builds a TLD exclusion set from a list of TLD strings.
func NewExcludeSet(tlds []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tlds))
	for _, tld := range tlds {
		tld = strings.TrimSpace(tld)
		if tld == "" {
			continue
		}
		set[tld] = struct{}{}
	}
	return set
}

// splitPattern turns a raw suffix list line into its labels after stripping
// wildcard/exception markers. Returns nil for comments, blank lines and
// patterns carrying no component information (bare TLDs).
func splitPattern(line string) []string {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "//") {
		return nil
	}
	// wildcard marker first, then exception marker (ex: *.sch.uk, !educ.ar)
	line = strings.TrimPrefix(line, "*")
	line = strings.TrimPrefix(line, "!")

	parts := strings.Split(line, ".")
	labels := parts[:0]
	for _, p := range parts {
		if p != "" {
			labels = append(labels, p)
		}
	}
	if len(labels) < 2 {
		return nil
	}
	return labels
}

// ParseLines folds suffix list lines into the three indexes. Patterns whose
// TLD is in the exclude set are skipped wholesale. Component and TLD strings
// keep their literal casing and encoding.
func ParseLines(lines []string, exclude map[string]struct{}) *Index {
	idx := &Index{
		ComponentTLDs:  map[string]map[string]struct{}{},
		ComponentCount: map[string]int{},
		TLDComponents:  map[string][]string{},
	}
	for _, line := range lines {
		labels := splitPattern(line)
		if labels == nil {
			continue
		}
		tld := labels[len(labels)-1]
		if _, ok := exclude[tld]; ok {
			continue
		}
		for _, component := range labels[:len(labels)-1] {
			if idx.ComponentTLDs[component] == nil {
				idx.ComponentTLDs[component] = map[string]struct{}{}
			}
			idx.ComponentTLDs[component][tld] = struct{}{}
			idx.ComponentCount[component]++
			idx.TLDComponents[tld] = append(idx.TLDComponents[tld], component)
		}
	}
	return idx
}

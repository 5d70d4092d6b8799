package pslstat

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"io"
	"sort"
	"strconv"

	sliceutil "github.com/projectdiscovery/utils/slice"
)

// RankedEntry is one row of a ranked frequency table.
type RankedEntry struct {
	Component string
	Value     int
}

// RankByValue orders a frequency view by value descending, component string
// ascending. Every artifact shares this comparator so tie-break order stays
// reproducible across runs.
func RankByValue(freq map[string]int) []RankedEntry {
	entries := make([]RankedEntry, 0, len(freq))
	for component, value := range freq {
		entries = append(entries, RankedEntry{Component: component, Value: value})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Value != entries[j].Value {
			return entries[i].Value > entries[j].Value
		}
		return entries[i].Component < entries[j].Component
	})
	return entries
}

// rankComponents orders component strings by their total count descending,
// string ascending.
func rankComponents(components []string, counts map[string]int) []string {
	ranked := make([]string, len(components))
	copy(ranked, components)
	sort.SliceStable(ranked, func(i, j int) bool {
		if counts[ranked[i]] != counts[ranked[j]] {
			return counts[ranked[i]] > counts[ranked[j]]
		}
		return ranked[i] < ranked[j]
	})
	return ranked
}

// WriteFrequencyCSV renders a ranked table as `string,frequency` rows and
// returns the number of data rows written.
func WriteFrequencyCSV(w io.Writer, entries []RankedEntry) (int, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"string", "frequency"}); err != nil {
		return 0, err
	}
	for _, entry := range entries {
		if err := cw.Write([]string{entry.Component, strconv.Itoa(entry.Value)}); err != nil {
			return 0, err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, err
	}
	return len(entries), nil
}

// ComponentDetail is the per-component object of the component report.
type ComponentDetail struct {
	Count int      `json:"count"`
	TLDs  []string `json:"tlds"`
}

// orderedMember is a single key/value pair of an orderedObject.
type orderedMember struct {
	key   string
	value interface{}
}

// orderedObject marshals as a JSON object whose keys keep insertion order.
// encoding/json sorts map keys, which would destroy the ranked key order the
// reports guarantee.
type orderedObject []orderedMember

func (o orderedObject) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, member := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(member.key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(member.value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func encodeJSON(w io.Writer, obj orderedObject) error {
	enc := json.NewEncoder(w)
	// keep non-ASCII component strings literal
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(obj)
}

// WriteComponentDetails renders component -> {count, tlds} with keys in
// ranked order and each TLD list alphabetically sorted. Returns the number of
// components written.
func (idx *Index) WriteComponentDetails(w io.Writer) (int, error) {
	components := make([]string, 0, len(idx.ComponentTLDs))
	for component := range idx.ComponentTLDs {
		components = append(components, component)
	}
	ranked := rankComponents(components, idx.ComponentCount)

	obj := make(orderedObject, 0, len(ranked))
	for _, component := range ranked {
		tlds := make([]string, 0, len(idx.ComponentTLDs[component]))
		for tld := range idx.ComponentTLDs[component] {
			tlds = append(tlds, tld)
		}
		sort.Strings(tlds)
		obj = append(obj, orderedMember{key: component, value: ComponentDetail{
			Count: idx.ComponentCount[component],
			TLDs:  tlds,
		}})
	}
	if err := encodeJSON(w, obj); err != nil {
		return 0, err
	}
	return len(obj), nil
}

// WriteTLDDetails renders TLD -> ranked distinct components with TLD keys
// alphabetically sorted. Returns the number of TLDs written.
func (idx *Index) WriteTLDDetails(w io.Writer) (int, error) {
	tlds := make([]string, 0, len(idx.TLDComponents))
	for tld := range idx.TLDComponents {
		tlds = append(tlds, tld)
	}
	sort.Strings(tlds)

	obj := make(orderedObject, 0, len(tlds))
	for _, tld := range tlds {
		distinct := sliceutil.Dedupe(idx.TLDComponents[tld])
		obj = append(obj, orderedMember{key: tld, value: rankComponents(distinct, idx.ComponentCount)})
	}
	if err := encodeJSON(w, obj); err != nil {
		return 0, err
	}
	return len(obj), nil
}

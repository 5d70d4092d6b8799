package pslstat

// TotalFrequencies returns the per-component occurrence counts as a fresh map.
func (idx *Index) TotalFrequencies() map[string]int {
	freq := make(map[string]int, len(idx.ComponentCount))
	for component, count := range idx.ComponentCount {
		freq[component] = count
	}
	return freq
}

// UniqueTLDFrequencies returns per component the number of distinct TLDs it
// appears under.
func (idx *Index) UniqueTLDFrequencies() map[string]int {
	freq := make(map[string]int, len(idx.ComponentTLDs))
	for component, tlds := range idx.ComponentTLDs {
		freq[component] = len(tlds)
	}
	return freq
}

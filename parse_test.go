package pslstat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLines(t *testing.T) {
	lines := []string{"ac", "com.ac", "*.sch.uk", "!educ.ar", "jp"}
	idx := ParseLines(lines, NewExcludeSet([]string{"jp"}))

	require.Equal(t, map[string]map[string]struct{}{
		"com":  {"ac": {}},
		"sch":  {"uk": {}},
		"educ": {"ar": {}},
	}, idx.ComponentTLDs)
	require.Equal(t, map[string]int{"com": 1, "sch": 1, "educ": 1}, idx.ComponentCount)
	require.Equal(t, map[string][]string{
		"ac": {"com"},
		"uk": {"sch"},
		"ar": {"educ"},
	}, idx.TLDComponents)
}

func TestParseLinesSkipsCommentsAndBlanks(t *testing.T) {
	lines := []string{"", "   ", "// a comment", "  // indented comment", "com.ac"}
	idx := ParseLines(lines, nil)
	require.Equal(t, map[string]int{"com": 1}, idx.ComponentCount)
}

func TestParseLinesExcludedTLD(t *testing.T) {
	// exclusion skips the whole line, components included
	lines := []string{"city.kobe.jp", "com.ac"}
	idx := ParseLines(lines, NewExcludeSet([]string{"it", "jp", "no"}))
	require.Equal(t, map[string]int{"com": 1}, idx.ComponentCount)
	require.NotContains(t, idx.TLDComponents, "jp")
	for _, tlds := range idx.ComponentTLDs {
		require.NotContains(t, tlds, "jp")
	}
}

func TestParseLinesRepeatedComponent(t *testing.T) {
	idx := ParseLines([]string{"a.a.example"}, nil)
	require.Equal(t, 2, idx.ComponentCount["a"])
	require.Len(t, idx.ComponentTLDs["a"], 1)
	require.Equal(t, []string{"a", "a"}, idx.TLDComponents["example"])
}

func TestParseLinesComponentAcrossTLDs(t *testing.T) {
	idx := ParseLines([]string{"foo.com", "foo.net"}, nil)
	require.Equal(t, 2, idx.ComponentCount["foo"])
	require.Len(t, idx.ComponentTLDs["foo"], 2)
}

func TestSplitPattern(t *testing.T) {
	testcases := []struct {
		line     string
		expected []string
	}{
		{line: "com.ac", expected: []string{"com", "ac"}},
		{line: "*.sch.uk", expected: []string{"sch", "uk"}},
		{line: "!educ.ar", expected: []string{"educ", "ar"}},
		{line: "  com.ac  ", expected: []string{"com", "ac"}},
		{line: "ac", expected: nil},
		{line: "*.uk", expected: nil},
		{line: "// comment", expected: nil},
		{line: "", expected: nil},
		{line: "a.b.c.example", expected: []string{"a", "b", "c", "example"}},
	}
	for _, tc := range testcases {
		require.Equalf(t, tc.expected, splitPattern(tc.line), "unexpected labels for %q", tc.line)
	}
}

func TestParseLinesPreservesCasing(t *testing.T) {
	idx := ParseLines([]string{"Foo.Example"}, nil)
	require.Equal(t, 1, idx.ComponentCount["Foo"])
	require.NotContains(t, idx.ComponentCount, "foo")
	require.Contains(t, idx.TLDComponents, "Example")
}

func TestParseLinesDeterministic(t *testing.T) {
	lines := []string{"com.ac", "*.sch.uk", "a.a.example", "foo.com", "foo.net"}
	first := ParseLines(lines, NewExcludeSet([]string{"jp"}))
	second := ParseLines(lines, NewExcludeSet([]string{"jp"}))
	require.Equal(t, first, second)
}

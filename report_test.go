package pslstat

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRankByValue(t *testing.T) {
	freq := map[string]int{"co": 3, "ac": 3, "gov": 7, "edu": 1}
	entries := RankByValue(freq)
	require.Equal(t, []RankedEntry{
		{Component: "gov", Value: 7},
		{Component: "ac", Value: 3},
		{Component: "co", Value: 3},
		{Component: "edu", Value: 1},
	}, entries)
}

func TestRankByValueDeterministic(t *testing.T) {
	freq := map[string]int{"a": 1, "b": 1, "c": 1, "d": 2}
	first := RankByValue(freq)
	second := RankByValue(freq)
	require.Equal(t, first, second)
	require.Equal(t, "d", first[0].Component)
	require.Equal(t, []RankedEntry{{Component: "a", Value: 1}, {Component: "b", Value: 1}, {Component: "c", Value: 1}}, first[1:])
}

func TestWriteFrequencyCSV(t *testing.T) {
	var buf bytes.Buffer
	count, err := WriteFrequencyCSV(&buf, []RankedEntry{
		{Component: "gov", Value: 7},
		{Component: "co", Value: 3},
	})
	require.Nil(t, err)
	require.Equal(t, 2, count)
	require.Equal(t, "string,frequency\ngov,7\nco,3\n", buf.String())
}

func TestWriteFrequencyCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	count, err := WriteFrequencyCSV(&buf, nil)
	require.Nil(t, err)
	require.Zero(t, count)
	require.Equal(t, "string,frequency\n", buf.String())
}

func TestWriteComponentDetails(t *testing.T) {
	idx := ParseLines([]string{"foo.net", "foo.com", "bar.com"}, nil)
	var buf bytes.Buffer
	count, err := idx.WriteComponentDetails(&buf)
	require.Nil(t, err)
	require.Equal(t, 2, count)
	expected := `{
  "foo": {
    "count": 2,
    "tlds": [
      "com",
      "net"
    ]
  },
  "bar": {
    "count": 1,
    "tlds": [
      "com"
    ]
  }
}
`
	require.Equal(t, expected, buf.String())
}

func TestWriteComponentDetailsNonASCII(t *testing.T) {
	idx := ParseLines([]string{"政府.example"}, nil)
	var buf bytes.Buffer
	_, err := idx.WriteComponentDetails(&buf)
	require.Nil(t, err)
	require.Contains(t, buf.String(), `"政府"`)
	require.NotContains(t, buf.String(), `\u`)
}

func TestWriteTLDDetails(t *testing.T) {
	// TLD keys alpha sorted, components deduped and ranked by total count
	idx := ParseLines([]string{"foo.net", "foo.com", "bar.com", "bar.com", "foo.com"}, nil)
	var buf bytes.Buffer
	count, err := idx.WriteTLDDetails(&buf)
	require.Nil(t, err)
	require.Equal(t, 2, count)
	expected := `{
  "com": [
    "foo",
    "bar"
  ],
  "net": [
    "foo"
  ]
}
`
	require.Equal(t, expected, buf.String())
}

func TestWriteTLDDetailsEmpty(t *testing.T) {
	idx := ParseLines(nil, nil)
	var buf bytes.Buffer
	count, err := idx.WriteTLDDetails(&buf)
	require.Nil(t, err)
	require.Zero(t, count)
	require.Equal(t, "{}\n", buf.String())
}

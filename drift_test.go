package pslstat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTableDrift(t *testing.T) {
	// co.uk has been in the compiled table forever, the made up
	// pattern cannot be
	require.Equal(t, 0, TableDrift([]string{"co.uk", "// comment", "uk"}))
	require.Equal(t, 1, TableDrift([]string{"co.uk", "zzz.notarealtldxyz"}))
}

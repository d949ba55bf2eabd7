package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractReadsAssignment(t *testing.T) {
	enc := mustEncode(t, diagonalSolved)

	a := make(assignment, len(enc.model.variables))
	for i, vars := range enc.x {
		a[vars[enc.grid.CellAt(i).Value-1]] = 1
	}

	solved, err := enc.extract(a)
	require.NoError(t, err)
	assert.Equal(t, enc.grid, solved)
}

func TestExtractRejectsUnassignedCell(t *testing.T) {
	enc := mustEncode(t, allWhite)

	_, err := enc.extract(make(assignment, len(enc.model.variables)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected internal error")
}

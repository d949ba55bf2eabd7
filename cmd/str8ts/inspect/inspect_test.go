package inspect

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const walledPuzzle = `#...####i
#########
#########
#########
#########
#########
#########
#########
#########
`

func writePuzzle(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "puzzle.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func executeCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestInspectCommand(t *testing.T) {
	path := writePuzzle(t, walledPuzzle)

	out, err := executeCmd(t, path)
	require.NoError(t, err)

	assert.Contains(t, out, "###")
	assert.Contains(t, out, "[9]")

	assert.Contains(t, out, "1 row compartments:")
	assert.Contains(t, out, "  row 0, columns 1-3, length 3")

	assert.Contains(t, out, "3 column compartments:")
	assert.Contains(t, out, "  column 1, rows 0-0, length 1")
	assert.Contains(t, out, "  column 2, rows 0-0, length 1")
	assert.Contains(t, out, "  column 3, rows 0-0, length 1")

	assert.Contains(t, out, "1 black clues:")
	assert.Contains(t, out, "  row 0, column 8 excludes 9")
}

func TestInspectCommandParseError(t *testing.T) {
	path := writePuzzle(t, "not a puzzle\n")

	_, err := executeCmd(t, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing puzzle")
}

func TestInspectCommandMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")

	_, err := executeCmd(t, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading puzzle")
}

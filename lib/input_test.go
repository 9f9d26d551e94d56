package lib

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeInput(t *testing.T, dir string, day string, fileName string, contents string) {
	t.Helper()
	dayDir := path.Join(dir, day)
	require.NoError(t, os.MkdirAll(dayDir, 0o755))
	require.NoError(t, os.WriteFile(path.Join(dayDir, fileName), []byte(contents), 0o644))
}

func TestInputPath(t *testing.T) {
	require.Equal(t, "inputs/03/input.txt", InputPath("inputs", 3, false))
	require.Equal(t, "inputs/12/sample.txt", InputPath("inputs", 12, true))
}

func TestReadInput(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, "03", "input.txt", "mul(1,2)")
	writeInput(t, dir, "03", "sample.txt", "mul(3,4)")

	input, err := ReadInput(dir, 3, false)
	require.NoError(t, err)
	require.Equal(t, "mul(1,2)", input)

	input, err = ReadInput(dir, 3, true)
	require.NoError(t, err)
	require.Equal(t, "mul(3,4)", input)
}

func TestReadInputMissing(t *testing.T) {
	_, err := ReadInput(t.TempDir(), 3, false)
	require.Error(t, err)
	require.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestInputDays(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, "05", "input.txt", "")
	writeInput(t, dir, "01", "input.txt", "")
	writeInput(t, dir, "notes", "input.txt", "")
	writeInput(t, dir, "00", "input.txt", "")
	require.NoError(t, os.WriteFile(path.Join(dir, "02"), []byte{}, 0o644))

	days, err := InputDays(dir)
	require.NoError(t, err)
	require.Equal(t, []int{1, 5}, days)
}

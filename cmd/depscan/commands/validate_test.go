package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDocument_File(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "graph.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"files":[]}`), 0o644))

	data, label, err := loadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, path, label)
	assert.JSONEq(t, `{"files":[]}`, string(data))
}

func TestLoadDocument_MissingFile(t *testing.T) {
	t.Parallel()

	_, _, err := loadDocument(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func TestNewValidateCommand_ArgCount(t *testing.T) {
	t.Parallel()

	cmd := NewValidateCommand()
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.Error(t, err)
}

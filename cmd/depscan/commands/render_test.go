package commands

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderGraphChart_WritesHTML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "entry.ts"), []byte(`import "util.ts";`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "util.ts"), []byte(``), 0o644))

	t.Chdir(dir)

	project, err := buildProject(context.Background(), defaultTestConfig(), []string{"entry.ts"}, discardLogger())
	require.NoError(t, err)

	outPath := filepath.Join(dir, "graph.html")
	require.NoError(t, renderGraphChart(project, outPath))

	data, readErr := os.ReadFile(outPath)
	require.NoError(t, readErr)
	assert.Contains(t, string(data), "echarts")
	assert.Contains(t, string(data), "entry.ts")
}

func TestNewRenderCommand_RequiresOutput(t *testing.T) {
	t.Parallel()

	cmd := NewRenderCommand()
	cmd.SetArgs([]string{"entry.ts"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoOutputFile)
}

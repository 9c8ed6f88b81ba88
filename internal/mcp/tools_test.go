package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleAnalyze_EmptyInputs(t *testing.T) {
	t.Parallel()

	srv := NewServer(ServerDeps{})

	result, _, err := srv.handleAnalyze(context.Background(), nil, AnalyzeInput{})
	require.NoError(t, err)
	assert.True(t, result.IsError)

	result, _, err = srv.handleAnalyze(context.Background(), nil, AnalyzeInput{Code: "const a = 1;"})
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestHandleAnalyze_ReturnsFact(t *testing.T) {
	t.Parallel()

	srv := NewServer(ServerDeps{})

	input := AnalyzeInput{
		Code:     `import { a } from "m"; export const b = 1;`,
		Filename: "snippet.ts",
	}

	result, payload, err := srv.handleAnalyze(context.Background(), nil, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.IsError)
	assert.NotNil(t, payload)
}

func TestHandleGraph_NoEntries(t *testing.T) {
	t.Parallel()

	srv := NewServer(ServerDeps{})

	result, _, err := srv.handleGraph(context.Background(), nil, GraphInput{})
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

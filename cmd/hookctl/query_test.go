// ABOUTME: Tests for jq filtering of dispatch results
// ABOUTME: Covers field extraction, multiple outputs, and invalid expressions

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mauromedda/agent-hooks-go/internal/config"
	"github.com/mauromedda/agent-hooks-go/internal/hooks"
)

func sampleResult() hooks.HookEventResult {
	return hooks.HookEventResult{
		Allowed:     false,
		BlockReason: "nope",
		Results: []hooks.HookResult{
			{Hook: config.HookDef{Command: "echo one"}, ExitCode: 0, DurationMs: 4},
			{Hook: config.HookDef{Command: "exit 2"}, ExitCode: 2, DurationMs: 7},
		},
		Warnings: []string{},
	}
}

func TestApplyQuery_Field(t *testing.T) {
	t.Parallel()

	out, err := applyQuery(sampleResult(), ".block_reason")
	require.NoError(t, err)
	assert.Equal(t, "nope", out)
}

func TestApplyQuery_Bool(t *testing.T) {
	t.Parallel()

	out, err := applyQuery(sampleResult(), ".allowed")
	require.NoError(t, err)
	assert.Equal(t, "false", out)
}

func TestApplyQuery_MultipleOutputs(t *testing.T) {
	t.Parallel()

	out, err := applyQuery(sampleResult(), ".results[].exit_code")
	require.NoError(t, err)
	assert.Equal(t, "0\n2", out)
}

func TestApplyQuery_InvalidExpression(t *testing.T) {
	t.Parallel()

	_, err := applyQuery(sampleResult(), ".[unterminated")
	assert.Error(t, err)
}

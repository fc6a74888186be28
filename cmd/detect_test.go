package cmd

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runDetectCommand(args ...string) error {
	command := NewDetectCommand()
	command.SetArgs(args)
	command.SetOut(io.Discard)
	command.SetErr(io.Discard)
	return command.Execute()
}

func TestDetectCommandRequiresText(t *testing.T) {
	err := runDetectCommand()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no text to detect")
}

func TestDetectCommandRejectsSingleTextFlagsInBatchMode(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "method", args: []string{"--method", "lingua", "hello world", "bonjour le monde"}},
		{name: "advanced", args: []string{"--advanced", "hello world", "bonjour le monde"}},
		{name: "remove-punct", args: []string{"--remove-punct=false", "hello world"}},
		{name: "simplify-cjk", args: []string{"--simplify-cjk", "繁體中文"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := runDetectCommand(tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "--"+tt.name)
			assert.Contains(t, err.Error(), "batch")
		})
	}
}

package cmd

import (
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/be-smiley2/glados-launcher/internal/config"
)

func TestNewCompletionCmd(t *testing.T) {
	t.Parallel()
	logger := zerolog.New(io.Discard)
	cmd := NewCompletionCmd(&config.Config{}, &logger)

	assert.NotNil(t, cmd)
	assert.Equal(t, "completion [bash|zsh|fish|powershell]", cmd.Use)
	assert.Equal(t, []string{"bash", "zsh", "fish", "powershell"}, cmd.ValidArgs)
}

func TestCompletionCmdRejectsUnknownShell(t *testing.T) {
	t.Parallel()
	logger := zerolog.New(io.Discard)
	cmd := NewCompletionCmd(&config.Config{}, &logger)
	cmd.SetErr(io.Discard)
	cmd.SetOut(io.Discard)
	cmd.SetArgs([]string{"tcsh"})

	assert.Error(t, cmd.Execute())
}

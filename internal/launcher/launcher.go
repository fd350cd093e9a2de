package launcher

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/rs/zerolog"

	"github.com/be-smiley2/glados-launcher/internal/helpers"
)

// Launcher opens a game's launch URL through the host's preferred handler.
// It is a thin process-spawning collaborator; registry bookkeeping stays with
// the caller.
type Launcher struct {
	runner helpers.CommandRunner
	log    *zerolog.Logger
	goos   string
}

// New creates a Launcher using the default command runner
func New(log *zerolog.Logger) *Launcher {
	return NewWithRunner(helpers.NewOSCommandRunner(), log, runtime.GOOS)
}

// NewWithRunner creates a Launcher with a custom runner, for tests
func NewWithRunner(runner helpers.CommandRunner, log *zerolog.Logger, goos string) *Launcher {
	return &Launcher{runner: runner, log: log, goos: goos}
}

// Open hands the launch URL to the platform URI handler
func (l *Launcher) Open(ctx context.Context, launchURL string) error {
	if launchURL == "" {
		return fmt.Errorf("empty launch url")
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	var (
		name string
		args []string
	)
	switch l.goos {
	case "windows":
		name = "cmd"
		args = []string{"/c", "start", "", launchURL}
	case "darwin":
		name = "open"
		args = []string{launchURL}
	default:
		name = "xdg-open"
		args = []string{launchURL}
	}

	if !l.runner.CommandExists(name) {
		return fmt.Errorf("no URI handler available: %s not found", name)
	}

	if _, err := l.runner.RunCommand(ctx, name, args...); err != nil {
		l.log.Error().Err(err).Str("url", launchURL).Msg("launch failed")
		return fmt.Errorf("launch %s: %w", launchURL, err)
	}

	l.log.Info().Str("url", launchURL).Msg("game launched")
	return nil
}

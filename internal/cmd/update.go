package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/be-smiley2/glados-launcher/internal/config"
	"github.com/be-smiley2/glados-launcher/internal/helpers"
	"github.com/be-smiley2/glados-launcher/internal/ui"
	"github.com/be-smiley2/glados-launcher/internal/updater"
)

// releaseNotesExcerptLen bounds the changelog excerpt shown before the
// confirmation prompt.
const releaseNotesExcerptLen = 500

func releaseNotesExcerpt(body string) string {
	return helpers.TruncateString(body, releaseNotesExcerptLen)
}

// NewUpdateCmd creates the update command.
func NewUpdateCmd(cfg *config.Config, log *zerolog.Logger, version string) *cobra.Command {
	var (
		checkOnly bool
		yes       bool
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update the launcher from GitHub releases",
		Long: `Check the GitHub releases of the launcher for a newer version and
install it after confirmation. The running files are backed up first and
restored if any step fails.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			upd := updater.New(cfg, log, version)
			if !yes {
				upd.Confirm = func(release *updater.Release) (bool, error) {
					if release.Body != "" {
						fmt.Println(releaseNotesExcerpt(release.Body))
					}
					return ui.ConfirmPrompt("Install update")
				}
			}
			upd.Progress = func(total int64) io.Writer {
				return ui.NewProgressBarBytes(total, "downloading")
			}

			if checkOnly {
				upd.Confirm = nil
				release, outcome := upd.Check(cmd.Context(), true)
				reportOutcome(release, outcome, upd.CurrentVersion())
				return nil
			}

			return runUpdate(cmd.Context(), upd, true)
		},
	}

	cmd.Flags().BoolVar(&checkOnly, "check", false, "check for updates without installing")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "install without asking for confirmation")

	return cmd
}

// runUpdate performs a full check-and-apply cycle. force bypasses the
// rate-limit window on the remote check.
func runUpdate(ctx context.Context, upd *updater.Updater, force bool) error {
	release, outcome := upd.Check(ctx, force)
	reportOutcome(release, outcome, upd.CurrentVersion())
	if outcome != updater.OutcomeUpdateAvailable {
		return nil
	}

	if upd.Confirm == nil {
		upd.Confirm = func(release *updater.Release) (bool, error) {
			return ui.ConfirmPrompt(fmt.Sprintf("Install version %s", release.Version()))
		}
	}

	if err := upd.Apply(ctx, release); err != nil {
		if errors.Is(err, updater.ErrAborted) {
			ui.GLaDOS("Update declined. Your loss.")
			return nil
		}
		ui.PrintError("update failed: %v", err)
		if upd.State() == updater.StateRolledBack {
			ui.PrintWarning("Previous version restored from backup")
		}
		return fmt.Errorf("apply update: %w", err)
	}

	ui.PrintSuccess("Updated to version %s. Restart to run the new version.", release.Version())
	return nil
}

func reportOutcome(release *updater.Release, outcome updater.Outcome, current string) {
	switch outcome {
	case updater.OutcomeUpdateAvailable:
		ui.PrintInfo("Version %s is available (current: %s)", release.Version(), current)
	case updater.OutcomeUpToDate:
		ui.GLaDOS("You are already up to date. Congratulations on doing the bare minimum.")
	case updater.OutcomeSkipped:
		ui.PrintInfo("Already checked recently. Use 'glados update' to force a check.")
	case updater.OutcomeNoReleases:
		ui.PrintInfo("No releases published yet.")
	case updater.OutcomeRateLimited:
		ui.PrintWarning("GitHub rate limit reached. Try again later.")
	case updater.OutcomeNetworkError:
		ui.PrintWarning("Update check failed. Check your network connection.")
	}
}

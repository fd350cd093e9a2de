package updater

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/be-smiley2/glados-launcher/internal/config"
	"github.com/be-smiley2/glados-launcher/internal/core"
	"github.com/be-smiley2/glados-launcher/internal/fsops"
	"github.com/be-smiley2/glados-launcher/internal/helpers"
)

// State names one position in the update lifecycle
type State string

const (
	StateIdle                 State = "idle"
	StateCheckingRemote       State = "checking_remote"
	StateUpToDate             State = "up_to_date"
	StateUpdateAvailable      State = "update_available"
	StateAwaitingConfirmation State = "awaiting_confirmation"
	StateBackingUp            State = "backing_up"
	StateDownloading          State = "downloading"
	StateExtracting           State = "extracting"
	StateInstalling           State = "installing"
	StateInstalled            State = "installed"
	StateRolledBack           State = "rolled_back"
)

// Outcome classifies the result of one update check
type Outcome string

const (
	OutcomeUpdateAvailable Outcome = "update_available"
	OutcomeUpToDate        Outcome = "up_to_date"
	OutcomeSkipped         Outcome = "skipped"
	OutcomeNoReleases      Outcome = "no_releases"
	OutcomeRateLimited     Outcome = "rate_limited"
	OutcomeNetworkError    Outcome = "network_error"
)

// ErrAborted indicates the user declined the pending update
var ErrAborted = errors.New("update aborted by user")

// Updater owns the self-update lifecycle: version comparison, backup creation,
// remote package retrieval, staged replacement of the program file and
// rollback on failure.
type Updater struct {
	fs           afero.Fs
	cfg          *config.Config
	log          *zerolog.Logger
	client       *ReleaseClient
	buildVersion string
	state        State

	// Confirm gates the install in interactive mode; nil skips the
	// AwaitingConfirmation state entirely (silent/automatic mode).
	Confirm func(release *Release) (bool, error)

	// Progress, when set, receives the declared download size and returns a
	// writer mirroring the streamed bytes (a progress bar). Ignored when the
	// remote does not declare a content length.
	Progress func(total int64) io.Writer
}

// New creates an Updater backed by the OS filesystem
func New(cfg *config.Config, log *zerolog.Logger, buildVersion string) *Updater {
	timeout := time.Duration(cfg.Update.TimeoutSec) * time.Second
	return NewWithClient(afero.NewOsFs(), cfg, log, buildVersion, NewReleaseClient(timeout))
}

// NewWithClient creates an Updater with an explicit filesystem and release
// client. The download, extract and install stages go through the os package
// directly, so fs must be OS-backed and reach the same paths; the parameter
// exists so state and backup I/O can be swapped out in tests.
func NewWithClient(fs afero.Fs, cfg *config.Config, log *zerolog.Logger, buildVersion string, client *ReleaseClient) *Updater {
	return &Updater{
		fs:           fs,
		cfg:          cfg,
		log:          log,
		client:       client,
		buildVersion: buildVersion,
		state:        StateIdle,
	}
}

// State returns the current lifecycle state
func (u *Updater) State() State {
	return u.state
}

func (u *Updater) setState(s State) {
	u.log.Debug().Str("from", string(u.state)).Str("to", string(s)).Msg("updater state")
	u.state = s
}

// CurrentVersion returns the persisted version, falling back to the build version
func (u *Updater) CurrentVersion() string {
	state, err := u.loadState()
	if err != nil || state.Version == "" {
		return u.buildVersion
	}
	return state.Version
}

func (u *Updater) loadState() (*core.UpdateState, error) {
	var state core.UpdateState
	if err := fsops.ReadJSON(u.fs, u.cfg.Paths.StateFile, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (u *Updater) saveState(state *core.UpdateState) {
	if err := fsops.WriteJSON(u.fs, u.cfg.Paths.StateFile, state); err != nil {
		u.log.Warn().Err(err).Msg("update state not persisted")
	}
}

// shouldSkipCheck reports whether the last remote check is recent enough that
// an unforced check can short-circuit without touching the network
func (u *Updater) shouldSkipCheck(now time.Time) bool {
	state, err := u.loadState()
	if err != nil || state.LastCheck == 0 {
		return false
	}
	return now.Unix()-state.LastCheck < u.cfg.Update.CheckIntervalSec
}

func (u *Updater) recordCheck(now time.Time) {
	state, err := u.loadState()
	if err != nil {
		state = &core.UpdateState{
			Version: u.CurrentVersion(),
			Channel: u.cfg.Update.Channel,
		}
	}
	state.LastCheck = now.Unix()
	u.saveState(state)
}

// Check queries the remote release listing for a newer version. Unless forced,
// checks within the configured interval of the previous one are skipped before
// any network traffic. Every failure outcome transitions back to Idle with a
// recorded reason; nothing escalates past the Updater boundary.
func (u *Updater) Check(ctx context.Context, force bool) (*Release, Outcome) {
	now := time.Now()
	if !force && u.shouldSkipCheck(now) {
		u.log.Debug().Msg("update check skipped, last check too recent")
		return nil, OutcomeSkipped
	}

	u.setState(StateCheckingRemote)
	defer u.setState(StateIdle)

	release, err := u.client.LatestRelease(ctx, u.cfg.Repo.Owner, u.cfg.Repo.Name)
	u.recordCheck(now)

	switch {
	case errors.Is(err, ErrNoReleases):
		u.log.Info().Msg("no releases published")
		return nil, OutcomeNoReleases
	case errors.Is(err, ErrRateLimited):
		u.log.Warn().Msg("release endpoint rate limited")
		return nil, OutcomeRateLimited
	case err != nil:
		u.log.Warn().Err(err).Msg("update check failed")
		return nil, OutcomeNetworkError
	}

	if IsNewer(release.Version(), u.CurrentVersion()) {
		u.log.Info().Str("version", release.Version()).Msg("update available")
		return release, OutcomeUpdateAvailable
	}
	return nil, OutcomeUpToDate
}

// Apply drives one update attempt through BackingUp, Downloading, Extracting
// and Installing. In interactive mode the user must opt in before any side
// effect occurs. On a pipeline failure the prior BackupSet, when one exists,
// is restored; without one the failure is reported and partial state is left
// as-is.
func (u *Updater) Apply(ctx context.Context, release *Release) (err error) {
	u.setState(StateUpdateAvailable)
	defer func() {
		if u.state != StateInstalled && u.state != StateRolledBack {
			u.setState(StateIdle)
		}
	}()

	if u.Confirm != nil {
		u.setState(StateAwaitingConfirmation)
		ok, cerr := u.Confirm(release)
		if cerr != nil {
			return fmt.Errorf("confirmation failed: %w", cerr)
		}
		if !ok {
			u.setState(StateIdle)
			return ErrAborted
		}
	}

	u.setState(StateBackingUp)
	backup, berr := CreateBackup(u.fs, u.cfg, time.Now())
	if berr != nil {
		// Non-fatal: trade safety for availability, but tell the caller
		u.log.Warn().Err(berr).Msg("backup failed, continuing without rollback protection")
		backup = nil
	}

	// Scoped working area: all downloaded bytes are discarded on every exit
	// path, success or failure.
	workDir, werr := os.MkdirTemp("", "glados-update-")
	if werr != nil {
		return u.fail(backup, "prepare", werr)
	}
	defer os.RemoveAll(workDir)

	u.setState(StateDownloading)
	archivePath := filepath.Join(workDir, "release.zip")
	if derr := u.download(ctx, release, archivePath); derr != nil {
		return u.fail(backup, "download", derr)
	}

	u.setState(StateExtracting)
	srcRoot, eerr := u.extract(archivePath, filepath.Join(workDir, "src"))
	if eerr != nil {
		return u.fail(backup, "extract", eerr)
	}

	u.setState(StateInstalling)
	if ierr := u.install(srcRoot, release); ierr != nil {
		return u.fail(backup, "install", ierr)
	}

	u.setState(StateInstalled)
	u.log.Info().Str("version", release.Version()).Msg("update installed, restart required")
	return nil
}

// fail handles a pipeline failure, rolling back when a backup exists
func (u *Updater) fail(backup *BackupSet, stage string, cause error) error {
	u.log.Error().Err(cause).Str("stage", stage).Msg("update attempt failed")
	if backup == nil {
		return fmt.Errorf("%s failed (no backup to restore): %w", stage, cause)
	}
	if rerr := backup.Restore(u.fs); rerr != nil {
		u.log.Error().Err(rerr).Msg("rollback failed")
		return fmt.Errorf("%s failed and rollback failed: %w", stage, cause)
	}
	u.setState(StateRolledBack)
	return fmt.Errorf("%s failed, previous files restored: %w", stage, cause)
}

func (u *Updater) download(ctx context.Context, release *Release, dest string) error {
	if release.ZipballURL == "" {
		return errors.New("release has no source archive")
	}
	f, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("create archive file: %w", err)
	}
	defer f.Close()
	return u.client.DownloadArchive(ctx, release.ZipballURL, f, u.Progress)
}

// extract unpacks the archive and locates the single top-level directory
// following the owner-repo naming convention of source archives
func (u *Updater) extract(archivePath, destDir string) (string, error) {
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", fmt.Errorf("create extract dir: %w", err)
	}
	if err := helpers.ExtractZip(archivePath, destDir); err != nil {
		return "", err
	}

	prefix := u.cfg.Repo.Owner + "-" + u.cfg.Repo.Name + "-"
	entries, err := os.ReadDir(destDir)
	if err != nil {
		return "", fmt.Errorf("read extract dir: %w", err)
	}

	var matches []string
	for _, entry := range entries {
		if entry.IsDir() && strings.HasPrefix(entry.Name(), prefix) {
			matches = append(matches, entry.Name())
		}
	}
	if len(matches) != 1 {
		return "", fmt.Errorf("expected one %s* directory in archive, found %d", prefix, len(matches))
	}
	return filepath.Join(destDir, matches[0]), nil
}

// candidatePaths is the fixed ordered list of relative paths searched for the
// replacement program file; the first match wins
func (u *Updater) candidatePaths() []string {
	names := []string{filepath.Base(u.cfg.Paths.ProgramFile), "glados", "glados.exe"}
	subDirs := []string{"", "bin", "dist"}

	seen := make(map[string]bool)
	var paths []string
	for _, sub := range subDirs {
		for _, name := range names {
			if name == "" || name == "." {
				continue
			}
			rel := filepath.Join(sub, name)
			if !seen[rel] {
				seen[rel] = true
				paths = append(paths, rel)
			}
		}
	}
	return paths
}

// install locates the replacement program file in the extracted tree and
// swaps it in. The copy is staged beside the live file and renamed into place
// so an interrupted install never leaves a truncated program file.
func (u *Updater) install(srcRoot string, release *Release) error {
	var found string
	for _, rel := range u.candidatePaths() {
		candidate := filepath.Join(srcRoot, rel)
		if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
			found = candidate
			break
		}
	}
	if found == "" {
		return fmt.Errorf("no program file found in archive (tried %s)", strings.Join(u.candidatePaths(), ", "))
	}

	programFile := u.cfg.Paths.ProgramFile
	if programFile == "" {
		return errors.New("program file path not configured")
	}

	staging := programFile + ".staging"
	if err := helpers.CopyFile(found, staging); err != nil {
		return fmt.Errorf("stage new program file: %w", err)
	}
	if err := os.Chmod(staging, 0755); err != nil {
		os.Remove(staging)
		return fmt.Errorf("mark staged file executable: %w", err)
	}
	if err := os.Rename(staging, programFile); err != nil {
		os.Remove(staging)
		return fmt.Errorf("swap program file: %w", err)
	}

	state, err := u.loadState()
	if err != nil {
		state = &core.UpdateState{Channel: u.cfg.Update.Channel}
	}
	state.Version = release.Version()
	state.LastUpdated = time.Now().Format("2006-01-02 15:04:05")
	u.saveState(state)
	return nil
}

package updater

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"github.com/be-smiley2/glados-launcher/internal/config"
	"github.com/be-smiley2/glados-launcher/internal/fsops"
)

// BackupSet is a timestamped snapshot of the program file plus whatever data
// files exist at backup time. Sets are never pruned or rotated.
type BackupSet struct {
	Dir   string
	Files []string
}

// backupSources lists the files a BackupSet captures, in a stable order
func backupSources(cfg *config.Config) []string {
	return []string{
		cfg.Paths.ProgramFile,
		cfg.Paths.StateFile,
		cfg.Paths.RegistryFile,
		cfg.Paths.CatalogFile,
	}
}

// CreateBackup snapshots the program and data files into a fresh timestamped
// directory under the backup root. Files that do not exist yet are skipped.
func CreateBackup(fs afero.Fs, cfg *config.Config, now time.Time) (*BackupSet, error) {
	dir := filepath.Join(cfg.Paths.BackupDir, "backup_"+now.Format("20060102_150405"))
	if err := fsops.EnsureDir(fs, dir, 0755); err != nil {
		return nil, fmt.Errorf("create backup dir: %w", err)
	}

	set := &BackupSet{Dir: dir}
	for _, src := range backupSources(cfg) {
		if src == "" || !fsops.Exists(fs, src) {
			continue
		}
		dst := filepath.Join(dir, filepath.Base(src))
		if err := fsops.CopyFile(fs, src, dst); err != nil {
			return nil, fmt.Errorf("backup %s: %w", src, err)
		}
		set.Files = append(set.Files, src)
	}
	return set, nil
}

// Restore copies every backed-up file back over its live counterpart
func (b *BackupSet) Restore(fs afero.Fs) error {
	for _, src := range b.Files {
		backed := filepath.Join(b.Dir, filepath.Base(src))
		if !fsops.Exists(fs, backed) {
			continue
		}
		if err := fsops.CopyFile(fs, backed, src); err != nil {
			return fmt.Errorf("restore %s: %w", src, err)
		}
	}
	return nil
}

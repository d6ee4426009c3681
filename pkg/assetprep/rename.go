package assetprep

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ukaji3/assetprep-go/pkg/assetprep/models"
	"github.com/ukaji3/assetprep-go/pkg/assetprep/naming"
)

// RenameDir renames every file directly inside dir to its snake-case form.
// Subdirectories are left alone. Renames happen one by one in name order;
// the first failure stops the pass and is returned with the report of what
// was done so far. Name collisions follow os.Rename semantics.
func RenameDir(dir string, opts RenameOptions) (*models.RenameReport, error) {
	logger := loggerOrDiscard(opts.Logger)
	report := &models.RenameReport{Dir: dir, DryRun: opts.DryRun}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return report, fmt.Errorf("%w: %s", ErrDirNotFound, dir)
		}
		return report, err
	}

	for _, entry := range entries {
		name := entry.Name()
		if isDir(dir, entry) {
			logger.Debug("skipping directory", "name", name)
			report.Skipped = append(report.Skipped, name)
			continue
		}

		newName := naming.Normalize(name)
		if newName == name {
			logger.Debug("already normalized", "name", name)
			report.Skipped = append(report.Skipped, name)
			continue
		}

		if opts.DryRun {
			logger.Info("would rename", "from", name, "to", newName)
		} else {
			if err := os.Rename(filepath.Join(dir, name), filepath.Join(dir, newName)); err != nil {
				return report, NewRenameError(dir, name, newName, err)
			}
			logger.Debug("renamed", "from", name, "to", newName)
		}
		report.Renamed = append(report.Renamed, models.Rename{Dir: dir, From: name, To: newName})
	}

	return report, nil
}

// isDir reports whether entry is a directory, following symlinks.
// An entry that cannot be stat'ed counts as a file.
func isDir(dir string, entry fs.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(dir, entry.Name()))
	return err == nil && info.IsDir()
}

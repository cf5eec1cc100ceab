// Package logfile manages the per run log files of the match job.
package logfile

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

const stampLayout = "20060102-150405"

// ErrAlreadyRan is returned by Open when the log file of the run exists,
// meaning the same run was started before.
var ErrAlreadyRan = errors.New("run log already exists")

// Path returns the log file of a run started at t.
func Path(dir, app string, t time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("%s_%s.log", app, t.Format(stampLayout)))
}

// Open creates the log file of a run started at t. It fails with
// ErrAlreadyRan if the file exists.
func Open(dir, app string, t time.Time) (*os.File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	path := Path(dir, app, t)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyRan, path)
	}
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

// Purge removes *.log files in dir last modified more than retentionDays
// before now. It returns the number of removed files. A non positive
// retention keeps everything.
func Purge(dir string, retentionDays int, now time.Time, logger *slog.Logger) (int, error) {
	if retentionDays <= 0 {
		return 0, nil
	}
	matches, err := filepath.Glob(filepath.Join(dir, "*.log"))
	if err != nil {
		return 0, err
	}
	cutoff := now.AddDate(0, 0, -retentionDays)

	var (
		removed int
		errs    []error
	)
	for _, path := range matches {
		info, err := os.Stat(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if info.IsDir() || !info.ModTime().Before(cutoff) {
			continue
		}
		if err = os.Remove(path); err != nil {
			errs = append(errs, err)
			continue
		}
		removed++
		logger.Info("old log file purged", "file", filepath.Base(path), "modified", info.ModTime())
	}
	return removed, errors.Join(errs...)
}

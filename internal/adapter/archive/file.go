package archive

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"

	"pixel-match/internal/core/domain"
)

// filePerms is the mode of every written run record.
const filePerms = 0o644

// FileArchive writes each run to its own file in a directory. Files are
// replaced atomically so readers never see a partial document.
type FileArchive struct {
	dir string
	app string
}

// NewFileArchive creates an archive writing to dir.
func NewFileArchive(dir, app string) *FileArchive {
	return &FileArchive{dir: dir, app: app}
}

// Save implements port.RunArchive.
func (a *FileArchive) Save(_ context.Context, run domain.RunRecord) error {
	b, err := Encode(run)
	if err != nil {
		return err
	}
	if err = os.MkdirAll(a.dir, 0o755); err != nil {
		return fmt.Errorf("create results dir: %w", err)
	}
	path := filepath.Join(a.dir, Name(a.app, run))
	if err = atomic.WriteFile(path, bytes.NewReader(b)); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	// atomic.WriteFile creates new files with 0600.
	if err = os.Chmod(path, filePerms); err != nil {
		return fmt.Errorf("set permissions of %s: %w", path, err)
	}
	return nil
}

package zipfs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zip"

	"github.com/custodia-labs/wotr-save-editor/internal/core/domain"
	"github.com/custodia-labs/wotr-save-editor/internal/core/ports/driven"
	"github.com/custodia-labs/wotr-save-editor/internal/logger"
)

// Verify interface compliance.
var _ driven.SaveRepository = (*Repository)(nil)

// outputPerm is the mode of written archives.
const outputPerm os.FileMode = 0o644

// Repository opens and writes save archives on disk.
type Repository struct{}

// NewRepository creates a filesystem-backed repository.
func NewRepository() *Repository {
	return &Repository{}
}

// Open reads the archive at path into memory.
func (r *Repository) Open(ctx context.Context, path string) (driven.SaveArchive, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewSaveError(domain.ErrorKindCanceled, "", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.NewSaveError(domain.ErrorKindIO, "", fmt.Errorf("read %s: %w", path, err))
	}
	logger.Debug("Read %d bytes from %s", len(data), path)

	return OpenBytes(path, data)
}

// Exists reports whether a file is present at path.
func (r *Repository) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, domain.NewSaveError(domain.ErrorKindIO, "", err)
	}
}

// WriteFile writes data to path through a temporary sibling file and a
// rename, so readers never observe a partial archive.
func (r *Repository) WriteFile(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return domain.NewSaveError(domain.ErrorKindCanceled, "", err)
	}
	if err := atomicWriteFile(path, data, outputPerm); err != nil {
		return domain.NewSaveError(domain.ErrorKindIO, "", fmt.Errorf("write %s: %w", path, err))
	}
	logger.Debug("Wrote %d bytes to %s", len(data), path)
	return nil
}

// OpenBytes opens an in-memory archive. path is only recorded.
func OpenBytes(path string, data []byte) (*Archive, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, domain.NewSaveError(domain.ErrorKindArchive, "", err)
	}

	a := &Archive{
		path:   path,
		files:  zr.File,
		byName: make(map[string]*zip.File, len(zr.File)),
	}
	for _, f := range zr.File {
		if _, dup := a.byName[f.Name]; !dup {
			a.byName[f.Name] = f
		}
	}
	logger.Info("Opened archive %s with %d members", filepath.Base(path), len(zr.File))
	return a, nil
}

func atomicWriteFile(path string, content []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*.zks")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing content: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("syncing to disk: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("renaming temp file: %w", err)
	}

	success = true
	return nil
}

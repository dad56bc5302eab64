// Package loader reads export documents from a filesystem.
package loader

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-wxr/internal/failure"
	"github.com/goliatone/go-wxr/internal/logging"
	"github.com/goliatone/go-wxr/pkg/interfaces"
)

// FileLoader reads a whole export document into memory. When constructed
// with a filesystem, paths are resolved inside it; otherwise the host
// filesystem is used.
type FileLoader struct {
	fs     fs.FS
	logger interfaces.Logger
}

var _ interfaces.DocumentLoader = (*FileLoader)(nil)

// New returns a loader backed by the host filesystem.
func New(logger interfaces.Logger) *FileLoader {
	return &FileLoader{logger: logging.Ensure(logger)}
}

// NewFS returns a loader that resolves paths inside filesystem.
func NewFS(filesystem fs.FS, logger interfaces.Logger) *FileLoader {
	return &FileLoader{fs: filesystem, logger: logging.Ensure(logger)}
}

// Load returns the document bytes. Any read failure is reported as an io failure.
func (l *FileLoader) Load(ctx context.Context, path string) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	path = strings.TrimSpace(path)

	var (
		data []byte
		err  error
	)
	if l.fs != nil {
		data, err = fs.ReadFile(l.fs, filepath.ToSlash(filepath.Clean(path)))
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		l.logger.Error("loader.read.failed", "path", path, "error", err)
		return nil, failure.IO(err, path)
	}

	l.logger.Debug("loader.read.completed", "path", path, "bytes", len(data))
	return data, nil
}

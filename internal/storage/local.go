// Package storage provides local filesystem storage for uploaded files.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fityannugroho/openmusic-api/pkg/errors"
)

// Local stores files under a directory and serves them from a public base URL.
type Local struct {
	dir     string
	baseURL string
}

// NewLocal creates a local storage rooted at dir. Files are addressed as
// baseURL/<filename>.
func NewLocal(dir, baseURL string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.ErrStorageError.WithError(err)
	}
	return &Local{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Dir returns the storage root directory.
func (l *Local) Dir() string {
	return l.dir
}

// Save writes the content to a timestamped file and returns its public URL.
// The original filename only contributes its extension.
func (l *Local) Save(originalName string, content io.Reader) (string, error) {
	name := fmt.Sprintf("%d%s", time.Now().UnixNano(), filepath.Ext(originalName))
	path := filepath.Join(l.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", errors.ErrStorageError.WithError(err)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		os.Remove(path)
		return "", errors.ErrStorageError.WithError(err)
	}
	return l.baseURL + "/" + name, nil
}

// Remove deletes a previously saved file given its public URL. Unknown or
// already deleted files are ignored.
func (l *Local) Remove(fileURL string) error {
	if !strings.HasPrefix(fileURL, l.baseURL+"/") {
		return nil
	}
	name := filepath.Base(strings.TrimPrefix(fileURL, l.baseURL+"/"))
	err := os.Remove(filepath.Join(l.dir, name))
	if err != nil && !os.IsNotExist(err) {
		return errors.ErrStorageError.WithError(err)
	}
	return nil
}

// Package filestore copies uploaded documents into storage. Two backends
// exist: a local folder and an S3-compatible bucket. Neither overwrites an
// existing object and neither deletes anything.
package filestore

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// StoredName derives the storage file name from the user's logical name
// and the source file's extension: ("contract", "/tmp/a.PDF") -> "contract.pdf".
// A logical name that already ends in that extension is not doubled.
func StoredName(logicalName, sourcePath string) string {
	name := strings.TrimSpace(logicalName)
	ext := strings.ToLower(filepath.Ext(sourcePath))
	if ext != "" && strings.HasSuffix(strings.ToLower(name), ext) {
		name = name[:len(name)-len(ext)]
	}
	return name + ext
}

// NewKey returns a fresh storage key for storedName:
// <clientID>/<YYYY>/<MM>/<uuid>/<storedName>.
func NewKey(clientID int64, storedName string) string {
	return newKeyAt(clientID, storedName, time.Now())
}

func newKeyAt(clientID int64, storedName string, at time.Time) string {
	return path.Join(
		fmt.Sprint(clientID),
		fmt.Sprintf("%04d", at.Year()),
		fmt.Sprintf("%02d", int(at.Month())),
		uuid.New().String(),
		storedName,
	)
}

// validKey rejects keys that would escape the storage root.
func validKey(key string) error {
	if key == "" || path.IsAbs(key) || strings.Contains(key, `\`) {
		return fmt.Errorf("invalid storage key %q", key)
	}
	for _, part := range strings.Split(key, "/") {
		if part == "" || part == "." || part == ".." {
			return fmt.Errorf("invalid storage key %q", key)
		}
	}
	return nil
}

package targetfs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/i18nverify/i18nverify/internal/domain"
)

// Dir implements domain.TargetReader for files under a package directory.
type Dir struct {
	root string
}

// New creates a Dir rooted at packageDir.
func New(packageDir string) *Dir { return &Dir{root: packageDir} }

// ReadTarget returns the content of relPath as text. An absolute relPath is
// read as is. Targets are plain UTF-8; no byte-order mark handling is done.
func (d *Dir) ReadTarget(relPath string) (string, error) {
	path := relPath
	if !filepath.IsAbs(path) {
		path = filepath.Join(d.root, relPath)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%s: %w", relPath, domain.ErrTargetMissing)
		}
		return "", err
	}
	return string(data), nil
}

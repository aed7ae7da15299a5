package domain

import "errors"

var (
	ErrRootConfig      = errors.New("root config unreadable")
	ErrModuleMissing   = errors.New("module file not found")
	ErrModuleMalformed = errors.New("module file malformed")
	ErrKeyCollision    = errors.New("module key collision")
	ErrTargetMissing   = errors.New("target file not found")
)

// PatchLoader reads a root config and merges every listed module file.
type PatchLoader interface {
	Load(i18nDir, rootConfig string, policies Policies) (*PatchSet, error)
}

// TargetReader reads target files relative to the package directory.
// A missing file is reported with an error wrapping ErrTargetMissing.
type TargetReader interface {
	ReadTarget(relPath string) (string, error)
}

// ConfigLoader loads the tool configuration.
type ConfigLoader interface {
	Load(projectPath string) (ToolConfig, error)
}

// GitInfo reads revision information from a git working tree.
type GitInfo interface {
	IsGitRepo(path string) bool
	CommitHash(path string) (string, error)
}

// Translator renders a catalog message.
type Translator interface {
	T(id string, data map[string]any) string
}

// RunHistory persists verification runs per project.
type RunHistory interface {
	Save(projectPath string, entry RunEntry) error
	Load(projectPath string) ([]RunEntry, error)
}

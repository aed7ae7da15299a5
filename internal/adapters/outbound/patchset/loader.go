package patchset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/i18nverify/i18nverify/internal/domain"
)

// Loader implements domain.PatchLoader by reading a root config and the
// module files it lists from the filesystem.
type Loader struct {
	logger *zap.Logger
}

// New creates a Loader. A nil logger disables logging.
func New(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{logger: logger}
}

// Load reads rootConfig and merges every listed module file into a
// PatchSet. The root config and module paths resolve against i18nDir
// unless absolute.
func (l *Loader) Load(i18nDir, rootConfig string, policies domain.Policies) (*domain.PatchSet, error) {
	rootPath := resolve(i18nDir, rootConfig)

	var root domain.RootConfig
	if err := decodeFile(rootPath, &root); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrRootConfig, err)
	}

	set := domain.NewPatchSet()
	for _, ref := range root.ModuleRefs() {
		def, err := l.loadModule(i18nDir, ref, policies)
		if err != nil {
			return nil, err
		}
		if def == nil {
			continue
		}

		if prev, exists := set.Get(def.Key); exists {
			if err := l.collide(prev, def, policies.KeyCollision); err != nil {
				return nil, err
			}
		}
		set.Put(def)
		l.logger.Debug("loaded module",
			zap.String("key", def.Key),
			zap.String("source", ref.Path),
			zap.Int("replacements", def.ReplacementCount()))
	}

	return set, nil
}

// loadModule reads one module file. It returns nil without error when the
// module is dropped under the configured policies.
func (l *Loader) loadModule(i18nDir string, ref domain.ModuleRef, policies domain.Policies) (*domain.PatchDefinition, error) {
	path := resolve(i18nDir, ref.Path)

	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
		return nil, l.apply(policies.MissingModule,
			fmt.Errorf("%w: %s", domain.ErrModuleMissing, ref.Path),
			zap.String("category", ref.Category))
	}

	var def domain.PatchDefinition
	if err := decodeFile(path, &def); err != nil {
		return nil, l.apply(policies.MalformedModule,
			fmt.Errorf("%w: %w", domain.ErrModuleMalformed, err),
			zap.String("category", ref.Category))
	}

	def.Key = domain.DeriveKey(ref.Path)
	def.Category = ref.Category
	def.Source = ref.Path
	return &def, nil
}

func (l *Loader) collide(prev, next *domain.PatchDefinition, policy domain.Policy) error {
	return l.apply(policy,
		fmt.Errorf("%w: %s and %s both map to %q", domain.ErrKeyCollision, prev.Source, next.Source, next.Key),
		zap.String("kept", next.Source))
}

// apply reacts to a recoverable condition: fail returns err, warn logs it at
// warn level, skip logs it at debug level.
func (l *Loader) apply(policy domain.Policy, err error, fields ...zap.Field) error {
	switch policy {
	case domain.PolicyFail:
		return err
	case domain.PolicyWarn:
		l.logger.Warn(err.Error(), fields...)
	default:
		l.logger.Debug(err.Error(), fields...)
	}
	return nil
}

func resolve(base, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}

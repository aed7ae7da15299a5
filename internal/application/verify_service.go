package application

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/i18nverify/i18nverify/internal/domain"
	"github.com/i18nverify/i18nverify/internal/domain/verify"
)

// VerifyService orchestrates the verification pipeline:
// load patch set -> check targets -> collect statistics.
type VerifyService struct {
	loader  domain.PatchLoader
	git     domain.GitInfo
	targets func(packageDir string) domain.TargetReader
	logger  *zap.Logger
}

func NewVerifyService(
	loader domain.PatchLoader,
	git domain.GitInfo,
	targets func(packageDir string) domain.TargetReader,
	logger *zap.Logger,
) *VerifyService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VerifyService{
		loader:  loader,
		git:     git,
		targets: targets,
		logger:  logger,
	}
}

// LoadPatchSet loads and merges the module files named by cfg.
func (s *VerifyService) LoadPatchSet(cfg domain.ToolConfig) (*domain.PatchSet, error) {
	set, err := s.loader.Load(cfg.I18nDir, cfg.RootConfig, cfg.Policies)
	if err != nil {
		return nil, fmt.Errorf("loading patch set: %w", err)
	}
	s.logger.Debug("patch set loaded", zap.Int("modules", set.Len()))
	return set, nil
}

// Verify loads the patch set and checks every target file. The returned
// Result is complete even when modules failed; callers use Result.OK.
func (s *VerifyService) Verify(ctx context.Context, cfg domain.ToolConfig) (*domain.Result, error) {
	set, err := s.LoadPatchSet(cfg)
	if err != nil {
		return nil, err
	}

	targets := s.targets(cfg.PackageDir)
	result, err := verify.Run(ctx, set, targets, cfg.Policies.MissingTarget)
	if err != nil {
		return nil, fmt.Errorf("verifying targets: %w", err)
	}

	result.Categories = set.CategoryStats()
	result.Placeholders = verify.CheckPlaceholders(set)
	result.Missing = verify.DetectMissing(set, targets)
	result.Revision = s.revision(cfg.PackageDir)

	for _, m := range result.Modules {
		if m.Status == domain.StatusMissing {
			s.logger.Debug("target file not found", zap.String("key", m.Key), zap.String("file", m.File))
		}
	}
	s.logger.Debug("verification finished",
		zap.Int("total", result.Total),
		zap.Int("passed", result.Passed),
		zap.Int("failed_modules", len(result.Failed())))

	return result, nil
}

// revision returns the short HEAD hash of packageDir, or "" outside git.
func (s *VerifyService) revision(packageDir string) string {
	if s.git == nil || !s.git.IsGitRepo(packageDir) {
		return ""
	}
	hash, err := s.git.CommitHash(packageDir)
	if err != nil {
		s.logger.Debug("reading target revision", zap.Error(err))
		return ""
	}
	return domain.ShortHash(hash)
}

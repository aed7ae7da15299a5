package verify

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/i18nverify/i18nverify/internal/domain"
)

// Run checks every patch definition in set against its target file and
// returns the accumulated result. Definitions without a target file are not
// visited. A missing target is recorded with StatusMissing and counts
// nothing; missingTarget decides whether it also fails the run.
func Run(
	ctx context.Context,
	set *domain.PatchSet,
	targets domain.TargetReader,
	missingTarget domain.Policy,
) (*domain.Result, error) {
	result := &domain.Result{}

	for _, def := range set.Definitions() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if def.File == "" {
			continue
		}

		content, err := targets.ReadTarget(def.File)
		if err != nil {
			if !errors.Is(err, domain.ErrTargetMissing) {
				return nil, fmt.Errorf("reading target of %s: %w", def.Key, err)
			}
			result.Modules = append(result.Modules, domain.ModuleResult{
				Key:      def.Key,
				Category: def.Category,
				File:     def.File,
				Status:   domain.StatusMissing,
				Failing:  missingTarget == domain.PolicyFail,
				Quiet:    missingTarget == domain.PolicySkip,
			})
			continue
		}

		result.Modules = append(result.Modules, checkModule(result, def, content))
	}

	return result, nil
}

// checkModule runs the containment test for every replacement of def and
// updates the run counters.
func checkModule(result *domain.Result, def *domain.PatchDefinition, content string) domain.ModuleResult {
	mr := domain.ModuleResult{
		Key:      def.Key,
		Category: def.Category,
		File:     def.File,
		Status:   domain.StatusPassed,
	}

	for _, r := range def.ReplacementList() {
		result.Total++
		mr.Checked++
		if strings.Contains(content, r.Expected) {
			result.Passed++
			continue
		}
		mr.Failures = append(mr.Failures, r)
	}

	if len(mr.Failures) > 0 {
		mr.Status = domain.StatusFailed
		mr.Failing = true
	}
	return mr
}

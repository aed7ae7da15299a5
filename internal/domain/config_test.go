package domain_test

import (
	"testing"

	"github.com/i18nverify/i18nverify/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_ReproducesHistoricalPolicies(t *testing.T) {
	cfg := domain.DefaultConfig()
	assert.Equal(t, domain.PolicySkip, cfg.Policies.MissingModule)
	assert.Equal(t, domain.PolicyFail, cfg.Policies.MalformedModule)
	assert.Equal(t, domain.PolicyWarn, cfg.Policies.MissingTarget)
	assert.Equal(t, domain.PolicySkip, cfg.Policies.KeyCollision)
	assert.Equal(t, "config.json", cfg.RootConfig)
	assert.Equal(t, 80, cfg.Display.MaxTextLen)
	assert.Equal(t, 3, cfg.Display.MaxFailures)
	assert.NoError(t, cfg.Validate())
}

func TestStrictPolicies_AllFail(t *testing.T) {
	p := domain.StrictPolicies()
	for _, v := range []domain.Policy{p.MissingModule, p.MalformedModule, p.MissingTarget, p.KeyCollision} {
		assert.Equal(t, domain.PolicyFail, v)
	}
}

func TestValidate_UnknownPolicy(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Policies.MissingTarget = "explode"
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "policies.missing_target")
}

func TestValidate_EmptyPolicy(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Policies.KeyCollision = ""
	assert.Error(t, cfg.Validate())
}

func TestValidate_DisplayLimits(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Display.MaxTextLen = 0
	assert.ErrorContains(t, cfg.Validate(), "max_text_len")

	cfg = domain.DefaultConfig()
	cfg.Display.MaxFailures = -1
	assert.ErrorContains(t, cfg.Validate(), "max_failures")
}

func TestValidate_EmptyRootConfig(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.RootConfig = ""
	assert.Error(t, cfg.Validate())
}

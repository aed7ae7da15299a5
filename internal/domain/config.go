package domain

import "fmt"

// Policy is the reaction to a recoverable condition found while loading or
// verifying a patch set.
type Policy string

const (
	PolicySkip Policy = "skip"
	PolicyWarn Policy = "warn"
	PolicyFail Policy = "fail"
)

// ValidPolicies enumerates all recognized policy values.
var ValidPolicies = []Policy{PolicySkip, PolicyWarn, PolicyFail}

// Policies groups the reaction to each recoverable condition.
type Policies struct {
	// MissingModule applies when a module file listed in the root config does not exist.
	MissingModule Policy `yaml:"missing_module"   json:"missing_module"`
	// MalformedModule applies when a module file exists but cannot be decoded.
	MalformedModule Policy `yaml:"malformed_module" json:"malformed_module"`
	// MissingTarget applies when a patch definition names a target file that does not exist.
	MissingTarget Policy `yaml:"missing_target"   json:"missing_target"`
	// KeyCollision applies when two module paths derive the same key.
	KeyCollision Policy `yaml:"key_collision"    json:"key_collision"`
}

// DefaultPolicies reproduces the historical behaviour: missing modules are
// dropped silently, malformed modules abort the run, missing targets print a
// warning line, and key collisions overwrite.
func DefaultPolicies() Policies {
	return Policies{
		MissingModule:   PolicySkip,
		MalformedModule: PolicyFail,
		MissingTarget:   PolicyWarn,
		KeyCollision:    PolicySkip,
	}
}

// StrictPolicies turns every recoverable condition into a failure.
func StrictPolicies() Policies {
	return Policies{
		MissingModule:   PolicyFail,
		MalformedModule: PolicyFail,
		MissingTarget:   PolicyFail,
		KeyCollision:    PolicyFail,
	}
}

// Display controls how failures are shown in the text report.
type Display struct {
	MaxTextLen  int `yaml:"max_text_len" json:"max_text_len"`
	MaxFailures int `yaml:"max_failures" json:"max_failures"`
}

// ToolConfig holds configuration loaded from .i18nverify.yaml.
type ToolConfig struct {
	I18nDir    string   `yaml:"i18n_dir"    json:"i18n_dir"`
	PackageDir string   `yaml:"package_dir" json:"package_dir"`
	RootConfig string   `yaml:"root_config" json:"root_config"`
	Lang       string   `yaml:"lang"        json:"lang"`
	Policies   Policies `yaml:"policies"    json:"policies"`
	Display    Display  `yaml:"display"     json:"display"`
}

const (
	DefaultRootConfig  = "config.json"
	DefaultLang        = "zh-CN"
	DefaultMaxTextLen  = 80
	DefaultMaxFailures = 3
)

// DefaultConfig returns the configuration used when no .i18nverify.yaml exists.
func DefaultConfig() ToolConfig {
	return ToolConfig{
		I18nDir:    ".",
		PackageDir: ".",
		RootConfig: DefaultRootConfig,
		Lang:       DefaultLang,
		Policies:   DefaultPolicies(),
		Display: Display{
			MaxTextLen:  DefaultMaxTextLen,
			MaxFailures: DefaultMaxFailures,
		},
	}
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c ToolConfig) Validate() error {
	if c.RootConfig == "" {
		return fmt.Errorf("root_config must not be empty")
	}

	policies := map[string]Policy{
		"missing_module":   c.Policies.MissingModule,
		"malformed_module": c.Policies.MalformedModule,
		"missing_target":   c.Policies.MissingTarget,
		"key_collision":    c.Policies.KeyCollision,
	}
	for name, p := range policies {
		if !isValidPolicy(p) {
			return fmt.Errorf("unknown policy %q in policies.%s (valid: skip, warn, fail)", p, name)
		}
	}

	if c.Display.MaxTextLen <= 0 {
		return fmt.Errorf("display.max_text_len must be > 0 (got %d)", c.Display.MaxTextLen)
	}
	if c.Display.MaxFailures <= 0 {
		return fmt.Errorf("display.max_failures must be > 0 (got %d)", c.Display.MaxFailures)
	}

	return nil
}

func isValidPolicy(p Policy) bool {
	for _, v := range ValidPolicies {
		if p == v {
			return true
		}
	}
	return false
}

package verify

import (
	"regexp"

	"github.com/i18nverify/i18nverify/internal/domain"
)

var attrPatterns = []struct {
	attr string
	re   *regexp.Regexp
}{
	{"title", regexp.MustCompile(`title="([A-Z][a-z][^"]+)"`)},
	{"label", regexp.MustCompile(`label="([A-Z][a-z][^"]+)"`)},
	{"placeholder", regexp.MustCompile(`placeholder="([A-Z][a-z][^"]+)"`)},
}

var cjk = regexp.MustCompile(`[\x{4e00}-\x{9fa5}]`)

// DetectMissing scans the target of every module with replacements for
// title, label and placeholder values that start with a capitalized English
// word, contain no CJK text and are not a replacement original themselves.
// Unreadable targets are skipped.
func DetectMissing(set *domain.PatchSet, targets domain.TargetReader) []domain.MissingTranslation {
	var out []domain.MissingTranslation
	for _, def := range set.Definitions() {
		if def.File == "" || def.Replacements == nil {
			continue
		}
		content, err := targets.ReadTarget(def.File)
		if err != nil {
			continue
		}

		for _, p := range attrPatterns {
			for _, m := range p.re.FindAllStringSubmatch(content, -1) {
				if cjk.MatchString(m[1]) {
					continue
				}
				if _, ok := def.Replacements.Get(m[0]); ok {
					continue
				}
				out = append(out, domain.MissingTranslation{
					Key:  def.Key,
					File: def.File,
					Attr: p.attr,
					Text: m[1],
					Full: m[0],
				})
			}
		}
	}
	return out
}

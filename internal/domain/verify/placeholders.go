package verify

import (
	"strings"

	"github.com/i18nverify/i18nverify/internal/domain"
)

// CheckPlaceholders reports replacements whose {name} placeholders are not
// carried over unchanged into the translation. Placeholders are compared as
// multisets, so order may differ.
func CheckPlaceholders(set *domain.PatchSet) []domain.PlaceholderIssue {
	var issues []domain.PlaceholderIssue
	for _, def := range set.Definitions() {
		for _, r := range def.ReplacementList() {
			orig := ExtractPlaceholders(r.Original)
			trans := ExtractPlaceholders(r.Expected)
			missing := diff(orig, trans)
			extra := diff(trans, orig)
			if len(missing) == 0 && len(extra) == 0 {
				continue
			}
			issues = append(issues, domain.PlaceholderIssue{
				Key:      def.Key,
				Original: r.Original,
				Expected: r.Expected,
				Missing:  missing,
				Extra:    extra,
			})
		}
	}
	return issues
}

// ExtractPlaceholders returns the names inside {...} in s, in order. An
// opening brace restarts the current name; an unterminated name is dropped.
func ExtractPlaceholders(s string) []string {
	var (
		vars    []string
		current strings.Builder
		inVar   bool
	)
	for _, c := range s {
		switch {
		case c == '{':
			inVar = true
			current.Reset()
		case c == '}' && inVar:
			vars = append(vars, current.String())
			inVar = false
		case inVar:
			current.WriteRune(c)
		}
	}
	return vars
}

// diff returns the elements of a not matched by an element of b, counting
// duplicates.
func diff(a, b []string) []string {
	counts := make(map[string]int, len(b))
	for _, v := range b {
		counts[v]++
	}
	var out []string
	for _, v := range a {
		if counts[v] > 0 {
			counts[v]--
			continue
		}
		out = append(out, v)
	}
	return out
}

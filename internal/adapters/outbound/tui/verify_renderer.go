package tui

import (
	"fmt"
	"strings"

	"github.com/i18nverify/i18nverify/internal/domain"
)

// RenderOptions controls the verification report layout.
type RenderOptions struct {
	MaxTextLen  int
	MaxFailures int
	// Detailed appends category statistics, placeholder issues and
	// possibly missing translations.
	Detailed bool
}

// DefaultRenderOptions returns the display limits from domain.DefaultConfig.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		MaxTextLen:  domain.DefaultMaxTextLen,
		MaxFailures: domain.DefaultMaxFailures,
	}
}

// RenderVerifyReport renders a verification Result as styled text: a header,
// one line per visited module, a separator and the summary block.
func RenderVerifyReport(r *domain.Result, t domain.Translator, opts RenderOptions) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(t.T("Header", nil)) + "\n")
	if r.Revision != "" {
		b.WriteString(dimStyle.Render(t.T("Revision", map[string]any{"Revision": r.Revision})) + "\n")
	}
	b.WriteString("\n")

	for _, m := range r.Modules {
		renderModuleLine(&b, m, t)
	}

	b.WriteString("\n")
	b.WriteString(separatorLine + "\n")

	failed := r.Failed()
	counts := map[string]any{"Passed": r.Passed, "Total": r.Total}
	if len(failed) == 0 {
		b.WriteString(" " + summaryStyle.Foreground(success).Render(t.T("AllPassed", counts)) + "\n")
	} else {
		b.WriteString(" " + summaryStyle.Foreground(danger).Render(t.T("SomeFailed", counts)) + "\n")
		b.WriteString("\n")
		b.WriteString(titleStyle.Render(t.T("FailedModules", nil)) + "\n")
		for _, m := range failed {
			renderFailedModule(&b, m, t, opts)
		}
	}

	if opts.Detailed {
		renderCategories(&b, r.Categories, t)
		renderPlaceholders(&b, r.Placeholders, t, opts)
		renderMissing(&b, r.Missing, t)
	}

	return b.String()
}

func renderModuleLine(b *strings.Builder, m domain.ModuleResult, t domain.Translator) {
	switch m.Status {
	case domain.StatusPassed:
		b.WriteString("   " + passStyle.Render(t.T("ModulePassed", map[string]any{"Key": m.Key})) + "\n")
	case domain.StatusFailed:
		line := t.T("ModuleFailed", map[string]any{"Key": m.Key, "Count": len(m.Failures)})
		b.WriteString("   " + failStyle.Render(line) + "\n")
	case domain.StatusMissing:
		if m.Quiet {
			return
		}
		line := t.T("TargetMissing", map[string]any{"Key": m.Key, "File": m.File})
		b.WriteString("   " + warnStyle.Render(line) + "\n")
	}
}

func renderFailedModule(b *strings.Builder, m domain.ModuleResult, t domain.Translator, opts RenderOptions) {
	fmt.Fprintf(b, "  [%s] %s\n", m.Key, fileStyle.Render(m.File))
	if len(m.Failures) == 0 {
		return
	}

	fmt.Fprintf(b, "    %s\n", t.T("FailedItems", map[string]any{"Limit": opts.MaxFailures}))
	shown := m.Failures
	if opts.MaxFailures > 0 && len(shown) > opts.MaxFailures {
		shown = shown[:opts.MaxFailures]
	}
	for _, f := range shown {
		fmt.Fprintf(b, "      %s\n", t.T("Original", map[string]any{"Text": truncate(f.Original, opts.MaxTextLen)}))
		fmt.Fprintf(b, "      %s\n", t.T("Expected", map[string]any{"Text": truncate(f.Expected, opts.MaxTextLen)}))
	}
}

func renderCategories(b *strings.Builder, stats []domain.CategoryStat, t domain.Translator) {
	if len(stats) == 0 {
		return
	}
	b.WriteString("\n" + titleStyle.Render(t.T("CategoryStats", nil)) + "\n")
	for _, s := range stats {
		fmt.Fprintf(b, "  %s\n", t.T("CategoryLine", map[string]any{
			"Category":     s.Category,
			"Modules":      s.Modules,
			"Replacements": s.Replacements,
		}))
	}
}

func renderPlaceholders(b *strings.Builder, issues []domain.PlaceholderIssue, t domain.Translator, opts RenderOptions) {
	b.WriteString("\n")
	if len(issues) == 0 {
		b.WriteString(passStyle.Render(t.T("PlaceholderOK", nil)) + "\n")
		return
	}
	b.WriteString(warnStyle.Render(t.T("PlaceholderIssues", map[string]any{"Count": len(issues)})) + "\n")
	for _, is := range issues {
		fmt.Fprintf(b, "  [%s]\n", is.Key)
		fmt.Fprintf(b, "    %s\n", t.T("Original", map[string]any{"Text": truncate(is.Original, opts.MaxTextLen)}))
		fmt.Fprintf(b, "    %s\n", t.T("Expected", map[string]any{"Text": truncate(is.Expected, opts.MaxTextLen)}))
		if len(is.Missing) > 0 {
			fmt.Fprintf(b, "    %s\n", t.T("PlaceholderMissing", map[string]any{"Vars": strings.Join(is.Missing, ", ")}))
		}
		if len(is.Extra) > 0 {
			fmt.Fprintf(b, "    %s\n", t.T("PlaceholderExtra", map[string]any{"Vars": strings.Join(is.Extra, ", ")}))
		}
	}
}

// renderMissing lists possibly missing translations grouped by target file,
// files in first-seen order.
func renderMissing(b *strings.Builder, missing []domain.MissingTranslation, t domain.Translator) {
	b.WriteString("\n")
	if len(missing) == 0 {
		b.WriteString(passStyle.Render(t.T("MissingNone", nil)) + "\n")
		return
	}
	b.WriteString(warnStyle.Render(t.T("MissingFound", map[string]any{"Count": len(missing)})) + "\n")

	var files []string
	byFile := make(map[string][]domain.MissingTranslation)
	for _, m := range missing {
		if _, seen := byFile[m.File]; !seen {
			files = append(files, m.File)
		}
		byFile[m.File] = append(byFile[m.File], m)
	}
	for _, f := range files {
		fmt.Fprintf(b, "  %s:\n", fileStyle.Render(f))
		for _, m := range byFile[f] {
			fmt.Fprintf(b, "    - %s\n", m.Full)
		}
	}
}

package tui

import (
	"fmt"
	"strings"

	"github.com/i18nverify/i18nverify/internal/domain"
)

// RenderHistory renders recorded runs oldest first, one line per run.
func RenderHistory(entries []domain.RunEntry, t domain.Translator) string {
	var b strings.Builder

	if len(entries) == 0 {
		b.WriteString(dimStyle.Render(t.T("HistoryEmpty", nil)) + "\n")
		return b.String()
	}

	b.WriteString(titleStyle.Render(t.T("HistoryTitle", nil)) + "\n")
	for _, e := range entries {
		rev := e.Revision
		if rev == "" {
			rev = "-"
		}
		counts := fmt.Sprintf("%d/%d", e.Passed, e.Total)
		if len(e.Failed) == 0 {
			counts = passStyle.Render(counts)
		} else {
			counts = failStyle.Render(counts)
		}
		fmt.Fprintf(&b, "  %s  %s  %s", e.Timestamp, dimStyle.Render(rev), counts)
		if len(e.Failed) > 0 {
			b.WriteString("  " + t.T("HistoryFailed", map[string]any{"Keys": strings.Join(e.Failed, ", ")}))
		}
		b.WriteString("\n")
	}
	return b.String()
}

package verify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/i18nverify/i18nverify/internal/domain"
	"github.com/i18nverify/i18nverify/internal/domain/verify"
)

func TestDetectMissing(t *testing.T) {
	tests := []struct {
		name    string
		def     *domain.PatchDefinition
		content string
		want    []string
	}{
		{
			name:    "english attributes reported",
			def:     patch("ui", "app.tsx", "Save", "保存"),
			content: `<Button title="Open file" label="Recent items" placeholder="Type here"/>`,
			want:    []string{`title="Open file"`, `label="Recent items"`, `placeholder="Type here"`},
		},
		{
			name:    "cjk values skipped",
			def:     patch("ui", "app.tsx", "Save", "保存"),
			content: `<Input placeholder="Search 搜索" title="打开文件"/>`,
			want:    nil,
		},
		{
			name:    "already configured skipped",
			def:     patch("ui", "app.tsx", `title="Open file"`, `title="打开文件"`),
			content: `<Button title="Open file" label="Close tab"/>`,
			want:    []string{`label="Close tab"`},
		},
		{
			name:    "lowercase and short values ignored",
			def:     patch("ui", "app.tsx"),
			content: `<a title="ok" label="Go" placeholder="search"/>`,
			want:    nil,
		},
		{
			name:    "module without replacements not scanned",
			def:     &domain.PatchDefinition{Key: "ui", File: "app.tsx"},
			content: `<Button title="Open file"/>`,
			want:    nil,
		},
		{
			name:    "missing target skipped",
			def:     patch("ui", "gone.tsx", "Save", "保存"),
			content: `<Button title="Open file"/>`,
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := verify.DetectMissing(setOf(tt.def), memTargets{"app.tsx": tt.content})

			var full []string
			for _, m := range got {
				assert.Equal(t, "ui", m.Key)
				assert.Equal(t, tt.def.File, m.File)
				full = append(full, m.Full)
			}
			assert.Equal(t, tt.want, full)
		})
	}
}

func TestDetectMissing_RecordsAttrAndText(t *testing.T) {
	got := verify.DetectMissing(
		setOf(patch("ui", "app.tsx", "Save", "保存")),
		memTargets{"app.tsx": `<Input placeholder="Type a message"/>`},
	)
	assert.Equal(t, []domain.MissingTranslation{{
		Key:  "ui",
		File: "app.tsx",
		Attr: "placeholder",
		Text: "Type a message",
		Full: `placeholder="Type a message"`,
	}}, got)
}

func TestDetectMissing_OrderFollowsModulesThenAttributes(t *testing.T) {
	set := setOf(
		patch("a", "a.tsx", "x", "y"),
		patch("b", "b.tsx", "x", "y"),
	)
	targets := memTargets{
		"a.tsx": `<X label="Alpha one" title="Alpha two"/>`,
		"b.tsx": `<X title="Beta one"/>`,
	}

	var full []string
	for _, m := range verify.DetectMissing(set, targets) {
		full = append(full, m.Full)
	}
	assert.Equal(t, []string{`title="Alpha two"`, `label="Alpha one"`, `title="Beta one"`}, full)
}

package tui_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i18nverify/i18nverify/internal/adapters/outbound/messages"
	"github.com/i18nverify/i18nverify/internal/adapters/outbound/tui"
	"github.com/i18nverify/i18nverify/internal/domain"
)

func catalog(t *testing.T, lang string) *messages.Catalog {
	t.Helper()
	c, err := messages.New(lang)
	require.NoError(t, err)
	return c
}

func passingResult() *domain.Result {
	return &domain.Result{
		Total:  1,
		Passed: 1,
		Modules: []domain.ModuleResult{
			{Key: "ui-strings", File: "app.txt", Status: domain.StatusPassed, Checked: 1},
		},
	}
}

func failingResult() *domain.Result {
	var failures []domain.Failure
	for _, w := range []string{"One", "Two", "Three", "Four"} {
		failures = append(failures, domain.Failure{Original: w, Expected: "译" + w})
	}
	return &domain.Result{
		Total:  6,
		Passed: 2,
		Modules: []domain.ModuleResult{
			{Key: "ok", File: "ok.tsx", Status: domain.StatusPassed, Checked: 2},
			{Key: "dialog", File: "src/dialog.tsx", Status: domain.StatusFailed, Checked: 4, Failures: failures, Failing: true},
			{Key: "gone", File: "src/gone.tsx", Status: domain.StatusMissing},
		},
	}
}

func TestRenderVerifyReport_AllPassed(t *testing.T) {
	out := tui.RenderVerifyReport(passingResult(), catalog(t, "zh-CN"), tui.DefaultRenderOptions())

	assert.Contains(t, out, "正在验证汉化结果...")
	assert.Contains(t, out, "   [ui-strings] 通过\n")
	assert.Contains(t, out, strings.Repeat("=", 50))
	assert.Contains(t, out, " 所有汉化验证通过！(1/1)")
	assert.NotContains(t, out, "失败的模块")
}

func TestRenderVerifyReport_Failures(t *testing.T) {
	out := tui.RenderVerifyReport(failingResult(), catalog(t, "zh-CN"), tui.DefaultRenderOptions())

	assert.Contains(t, out, "   [ok] 通过")
	assert.Contains(t, out, "   [dialog] 失败 (4 项未生效)")
	assert.Contains(t, out, "   [gone] 文件不存在: src/gone.tsx")
	assert.Contains(t, out, " 汉化验证失败！(2/6 通过)")
	assert.Contains(t, out, "失败的模块:")
	assert.Contains(t, out, "  [dialog] src/dialog.tsx")
	assert.Contains(t, out, "    失败项 (前3个):")
	assert.Contains(t, out, "      原文: One...")
	assert.Contains(t, out, "      期望: 译Three...")
	assert.NotContains(t, out, "Four", "only the first failures are listed")
	assert.NotContains(t, out, "  [gone] src/gone.tsx", "missing targets are not failures by default")
}

func TestRenderVerifyReport_ModulesInVisitOrder(t *testing.T) {
	out := tui.RenderVerifyReport(failingResult(), catalog(t, "zh-CN"), tui.DefaultRenderOptions())
	ok := strings.Index(out, "[ok]")
	dialog := strings.Index(out, "[dialog] 失败")
	gone := strings.Index(out, "[gone]")
	assert.True(t, ok < dialog && dialog < gone)
}

func TestRenderVerifyReport_TruncatesDisplayOnly(t *testing.T) {
	long := strings.Repeat("字", 100)
	r := &domain.Result{
		Total: 1,
		Modules: []domain.ModuleResult{{
			Key: "long", File: "f", Status: domain.StatusFailed, Failing: true,
			Failures: []domain.Failure{{Original: long, Expected: long}},
		}},
	}
	out := tui.RenderVerifyReport(r, catalog(t, "zh-CN"), tui.DefaultRenderOptions())

	assert.Contains(t, out, "原文: "+strings.Repeat("字", 80)+"...\n")
	assert.NotContains(t, out, strings.Repeat("字", 81))
	assert.Len(t, []rune(r.Modules[0].Failures[0].Expected), 100)
}

func TestRenderVerifyReport_ShortTextStillGetsEllipsis(t *testing.T) {
	r := &domain.Result{Total: 1, Modules: []domain.ModuleResult{{
		Key: "m", File: "f", Status: domain.StatusFailed, Failing: true,
		Failures: []domain.Failure{{Original: "Hello", Expected: "你好"}},
	}}}
	out := tui.RenderVerifyReport(r, catalog(t, "zh-CN"), tui.DefaultRenderOptions())
	assert.Contains(t, out, "原文: Hello...")
	assert.Contains(t, out, "期望: 你好...")
}

func TestRenderVerifyReport_MissingTargetFailing(t *testing.T) {
	r := &domain.Result{Modules: []domain.ModuleResult{
		{Key: "gone", File: "src/gone.tsx", Status: domain.StatusMissing, Failing: true},
	}}
	out := tui.RenderVerifyReport(r, catalog(t, "zh-CN"), tui.DefaultRenderOptions())
	assert.Contains(t, out, " 汉化验证失败！(0/0 通过)")
	assert.Contains(t, out, "  [gone] src/gone.tsx")
	assert.NotContains(t, out, "失败项")
}

func TestRenderVerifyReport_QuietMissingTarget(t *testing.T) {
	r := &domain.Result{Modules: []domain.ModuleResult{
		{Key: "gone", File: "src/gone.tsx", Status: domain.StatusMissing, Quiet: true},
	}}
	out := tui.RenderVerifyReport(r, catalog(t, "zh-CN"), tui.DefaultRenderOptions())
	assert.NotContains(t, out, "gone")
}

func TestRenderVerifyReport_Revision(t *testing.T) {
	r := passingResult()
	r.Revision = "0123abcd"
	out := tui.RenderVerifyReport(r, catalog(t, "zh-CN"), tui.DefaultRenderOptions())
	assert.Contains(t, out, "目标源码版本: 0123abcd")
}

func TestRenderVerifyReport_Detailed(t *testing.T) {
	r := passingResult()
	r.Categories = []domain.CategoryStat{{Category: "components", Modules: 2, Replacements: 7}}
	r.Placeholders = []domain.PlaceholderIssue{{Key: "ui", Original: "Hi {name}", Expected: "你好", Missing: []string{"name"}}}

	opts := tui.DefaultRenderOptions()
	out := tui.RenderVerifyReport(r, catalog(t, "zh-CN"), opts)
	assert.NotContains(t, out, "分类统计")

	opts.Detailed = true
	out = tui.RenderVerifyReport(r, catalog(t, "zh-CN"), opts)
	assert.Contains(t, out, "分类统计:")
	assert.Contains(t, out, "- components: 2 个模块, 7 条")
	assert.Contains(t, out, "发现 1 处变量问题")
	assert.Contains(t, out, "缺失变量: name")
}

func TestRenderVerifyReport_English(t *testing.T) {
	out := tui.RenderVerifyReport(failingResult(), catalog(t, "en"), tui.DefaultRenderOptions())
	assert.Contains(t, out, "[dialog] failed (4 items not applied)")
	assert.Contains(t, out, "Failed items (first 3):")
}

func TestRenderVerifyReport_DetailedMissingTranslations(t *testing.T) {
	r := passingResult()
	r.Missing = []domain.MissingTranslation{
		{Key: "a", File: "src/a.tsx", Attr: "title", Text: "Open file", Full: `title="Open file"`},
		{Key: "b", File: "src/b.tsx", Attr: "label", Text: "Close tab", Full: `label="Close tab"`},
		{Key: "a", File: "src/a.tsx", Attr: "placeholder", Text: "Type here", Full: `placeholder="Type here"`},
	}

	opts := tui.DefaultRenderOptions()
	out := tui.RenderVerifyReport(r, catalog(t, "zh-CN"), opts)
	assert.NotContains(t, out, "可能缺失的翻译")
	assert.Contains(t, out, " 所有汉化验证通过！(1/1)")

	opts.Detailed = true
	out = tui.RenderVerifyReport(r, catalog(t, "zh-CN"), opts)
	assert.Contains(t, out, "发现 3 处可能缺失的翻译:\n"+
		"  src/a.tsx:\n"+
		"    - title=\"Open file\"\n"+
		"    - placeholder=\"Type here\"\n"+
		"  src/b.tsx:\n"+
		"    - label=\"Close tab\"\n")
}

func TestRenderVerifyReport_DetailedNoMissingTranslations(t *testing.T) {
	opts := tui.DefaultRenderOptions()
	opts.Detailed = true
	out := tui.RenderVerifyReport(passingResult(), catalog(t, "en"), opts)
	assert.Contains(t, out, "No obvious missing translations")
}

func TestRenderVerifyReport_KeepsTabsInKeys(t *testing.T) {
	r := &domain.Result{
		Total:  2,
		Passed: 1,
		Modules: []domain.ModuleResult{
			{Key: "tab\tkey", File: "a.txt", Status: domain.StatusPassed, Checked: 1},
			{Key: "x\ty", File: "b\tc.txt", Status: domain.StatusMissing},
		},
	}
	out := tui.RenderVerifyReport(r, catalog(t, "zh-CN"), tui.DefaultRenderOptions())
	assert.Contains(t, out, "   [tab\tkey] 通过\n")
	assert.Contains(t, out, "   [x\ty] 文件不存在: b\tc.txt\n")
}

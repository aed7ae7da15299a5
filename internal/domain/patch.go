package domain

import (
	"path/filepath"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// RootConfig is the top-level document listing module files per category.
type RootConfig struct {
	Modules *orderedmap.OrderedMap[string, []string] `json:"modules" yaml:"modules"`
}

// ModuleRef is one module file listed in the root config.
type ModuleRef struct {
	Category string
	Path     string
}

// ModuleRefs flattens the modules section in document order.
func (c *RootConfig) ModuleRefs() []ModuleRef {
	if c == nil || c.Modules == nil {
		return nil
	}
	var refs []ModuleRef
	for pair := c.Modules.Oldest(); pair != nil; pair = pair.Next() {
		for _, p := range pair.Value {
			refs = append(refs, ModuleRef{Category: pair.Key, Path: p})
		}
	}
	return refs
}

// PatchDefinition is the content of one module file: the target it applies
// to and the replacements it claims to make.
type PatchDefinition struct {
	File         string                                  `json:"file,omitempty"         yaml:"file,omitempty"`
	Replacements *orderedmap.OrderedMap[string, string] `json:"replacements,omitempty" yaml:"replacements,omitempty"`

	// Populated by the loader.
	Key      string `json:"-" yaml:"-"`
	Category string `json:"-" yaml:"-"`
	Source   string `json:"-" yaml:"-"`
}

// Replacement is a single original → expected pair.
type Replacement struct {
	Original string `json:"original"`
	Expected string `json:"expected"`
}

// ReplacementList returns the replacements in document order.
func (p *PatchDefinition) ReplacementList() []Replacement {
	if p == nil || p.Replacements == nil {
		return nil
	}
	out := make([]Replacement, 0, p.Replacements.Len())
	for pair := p.Replacements.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, Replacement{Original: pair.Key, Expected: pair.Value})
	}
	return out
}

// ReplacementCount returns the number of replacements.
func (p *PatchDefinition) ReplacementCount() int {
	if p == nil || p.Replacements == nil {
		return 0
	}
	return p.Replacements.Len()
}

var separatorReplacer = strings.NewReplacer("/", "-", "\\", "-")

// DeriveKey turns a module path such as "components/dialog.json" into the
// key "components-dialog". Every ".json" occurrence is removed; YAML
// extensions are trimmed from the end.
func DeriveKey(modulePath string) string {
	key := separatorReplacer.Replace(modulePath)
	key = strings.ReplaceAll(key, ".json", "")
	switch strings.ToLower(filepath.Ext(key)) {
	case ".yaml", ".yml":
		key = strings.TrimSuffix(key, filepath.Ext(key))
	}
	return key
}

// PatchSet is the merged, ordered collection of patch definitions keyed by
// derived module key.
type PatchSet struct {
	entries *orderedmap.OrderedMap[string, *PatchDefinition]
}

// NewPatchSet creates an empty PatchSet.
func NewPatchSet() *PatchSet {
	return &PatchSet{entries: orderedmap.New[string, *PatchDefinition]()}
}

// Put stores def under def.Key. An existing entry is replaced in place and
// keeps its position; replaced reports whether that happened.
func (s *PatchSet) Put(def *PatchDefinition) (replaced bool) {
	_, replaced = s.entries.Set(def.Key, def)
	return replaced
}

// Get returns the definition stored under key.
func (s *PatchSet) Get(key string) (*PatchDefinition, bool) {
	return s.entries.Get(key)
}

// Len returns the number of distinct keys.
func (s *PatchSet) Len() int { return s.entries.Len() }

// Definitions returns all definitions in insertion order.
func (s *PatchSet) Definitions() []*PatchDefinition {
	out := make([]*PatchDefinition, 0, s.entries.Len())
	for pair := s.entries.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}
	return out
}

// CategoryStat counts modules and replacements for one category.
type CategoryStat struct {
	Category     string `json:"category"`
	Modules      int    `json:"modules"`
	Replacements int    `json:"replacements"`
}

// CategoryStats aggregates the set per category, in order of first appearance.
func (s *PatchSet) CategoryStats() []CategoryStat {
	index := make(map[string]int)
	var stats []CategoryStat
	for _, def := range s.Definitions() {
		i, ok := index[def.Category]
		if !ok {
			i = len(stats)
			index[def.Category] = i
			stats = append(stats, CategoryStat{Category: def.Category})
		}
		stats[i].Modules++
		stats[i].Replacements += def.ReplacementCount()
	}
	return stats
}

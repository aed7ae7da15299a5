package domain

// ModuleStatus is the outcome of verifying one module.
type ModuleStatus string

const (
	StatusPassed  ModuleStatus = "passed"
	StatusFailed  ModuleStatus = "failed"
	StatusMissing ModuleStatus = "missing"
)

// Failure is a replacement whose expected text was not found in the target.
type Failure = Replacement

// ModuleResult is the verification outcome for one patch definition.
type ModuleResult struct {
	Key      string       `json:"key"`
	Category string       `json:"category,omitempty"`
	File     string       `json:"file"`
	Status   ModuleStatus `json:"status"`
	Checked  int          `json:"checked"`
	Failures []Failure    `json:"failures,omitempty"`
	// Failing marks modules that make the run fail. Failed modules always
	// fail; missing targets fail only under the fail policy.
	Failing bool `json:"failing"`
	// Quiet suppresses the per-module report line.
	Quiet bool `json:"-"`
}

// PlaceholderIssue is a replacement whose {name} placeholders differ between
// the original and the expected text.
type PlaceholderIssue struct {
	Key      string   `json:"key"`
	Original string   `json:"original"`
	Expected string   `json:"expected"`
	Missing  []string `json:"missing,omitempty"`
	Extra    []string `json:"extra,omitempty"`
}

// Result accumulates a full verification pass.
type Result struct {
	Total        int                `json:"total"`
	Passed       int                `json:"passed"`
	Modules      []ModuleResult     `json:"modules"`
	Categories   []CategoryStat     `json:"categories,omitempty"`
	Placeholders []PlaceholderIssue `json:"placeholder_issues,omitempty"`

	// Missing lists attribute values that look untranslated.
	// Informational; it never fails a run.
	Missing  []MissingTranslation `json:"missing_translations,omitempty"`
	Revision string               `json:"revision,omitempty"`
}

// MissingTranslation is an English attribute value found in a target file
// that no replacement of its module covers.
type MissingTranslation struct {
	Key  string `json:"key"`
	File string `json:"file"`
	Attr string `json:"attr"`
	Text string `json:"text"`
	// Full is the whole match, e.g. title="Open file".
	Full string `json:"full"`
}

// Failed returns the modules that make the run fail, in visit order.
func (r *Result) Failed() []ModuleResult {
	var out []ModuleResult
	for _, m := range r.Modules {
		if m.Failing {
			out = append(out, m)
		}
	}
	return out
}

// OK reports whether no module failed.
func (r *Result) OK() bool { return len(r.Failed()) == 0 }

// Count returns how many modules ended with the given status.
func (r *Result) Count(status ModuleStatus) int {
	n := 0
	for _, m := range r.Modules {
		if m.Status == status {
			n++
		}
	}
	return n
}

// ShortHash abbreviates a commit hash for display.
func ShortHash(hash string) string {
	if len(hash) > 8 {
		return hash[:8]
	}
	return hash
}

// RunEntry is one recorded verification run.
type RunEntry struct {
	Timestamp string   `json:"timestamp"`
	Revision  string   `json:"revision,omitempty"`
	Total     int      `json:"total"`
	Passed    int      `json:"passed"`
	Failed    []string `json:"failed,omitempty"`
}

// NewRunEntry summarizes r for the run history. Failed lists the keys of the
// failing modules.
func NewRunEntry(r *Result, timestamp string) RunEntry {
	e := RunEntry{
		Timestamp: timestamp,
		Revision:  r.Revision,
		Total:     r.Total,
		Passed:    r.Passed,
	}
	for _, m := range r.Failed() {
		e.Failed = append(e.Failed, m.Key)
	}
	return e
}

package boson

import "strings"

// normalizeKey reduces any reasonable spelling of an option name to a
// single canonical form: leading dashes stripped, lower-cased, inner
// dashes folded to underscores. "max-width", "--max-width" and
// "Max_Width" all resolve to the same key.
func normalizeKey(name string) string {
	name = strings.TrimLeft(name, "-")
	name = strings.ToLower(name)
	return strings.ReplaceAll(name, "-", "_")
}

// Options is a resolved option mapping with key-style-agnostic lookup.
// Values are the typed results of parsing: bool, string, int, float64,
// or []string for array switches.
type Options map[string]any

func (o Options) Set(name string, value any) {
	o[normalizeKey(name)] = value
}

func (o Options) Get(name string) (any, bool) {
	v, ok := o[normalizeKey(name)]
	return v, ok
}

func (o Options) Has(name string) bool {
	_, ok := o[normalizeKey(name)]
	return ok
}

func (o Options) Bool(name string) bool {
	v, ok := o.Get(name)
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

func (o Options) String(name string) string {
	v, ok := o.Get(name)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

func (o Options) Int(name string) int {
	switch v, _ := o.Get(name); n := v.(type) {
	case int:
		return n
	case float64:
		return int(n)
	}
	return 0
}

func (o Options) Float(name string) float64 {
	switch v, _ := o.Get(name); n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	}
	return 0
}

func (o Options) Strings(name string) []string {
	v, _ := o.Get(name)
	s, _ := v.([]string)
	return s
}

// clone returns a fresh Options with the same entries.
func (o Options) clone() Options {
	dup := make(Options, len(o))
	for k, v := range o {
		dup[k] = v
	}
	return dup
}

// ParseResult is the outcome of one low-level parse pass: resolved typed
// option values plus the ordered leading and trailing non-option token
// sequences. Invalid holds option-shaped tokens stripped in
// delete-invalid mode. Results are per-invocation and never shared.
type ParseResult struct {
	Options  Options
	Leading  []string
	Trailing []string
	Invalid  []string

	configured map[string]bool
}

func newParseResult(table *SwitchTable) *ParseResult {
	res := &ParseResult{
		Options:    make(Options),
		configured: make(map[string]bool),
	}
	if table != nil {
		for _, spec := range table.specsInOrder() {
			if spec.Default != nil {
				res.Options.Set(spec.Name, spec.Default)
			}
		}
	}
	return res
}

func (r *ParseResult) set(name string, value any) {
	r.Options.Set(name, value)
	r.configured[normalizeKey(name)] = true
}

// Configured reports whether an option was explicitly provided, as
// opposed to filled from its declared default.
func (r *ParseResult) Configured(name string) bool {
	return r.configured[normalizeKey(name)]
}

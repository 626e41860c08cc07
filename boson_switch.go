package boson

// SwitchType determines how a switch consumes tokens during parsing.
type SwitchType int

const (
	// Boolean switches take no value; their presence means true.
	Boolean SwitchType = iota
	// String switches consume the next token as their value, falling back
	// to the empty string when none is available.
	String
	// Numeric switches consume the next token only when it fully matches
	// the integer-or-decimal grammar.
	Numeric
	// Required switches must receive a value and must be present in every
	// parse against their table.
	Required
	// Array switches consume one comma-separated value token.
	Array
)

func (t SwitchType) String() string {
	switch t {
	case Boolean:
		return "boolean"
	case String:
		return "string"
	case Numeric:
		return "numeric"
	case Required:
		return "required"
	case Array:
		return "array"
	}
	return "unknown"
}

// SwitchSpec describes a single named, typed option: its canonical long
// name, short aliases, type, optional default value, and usage text.
// Specs are built once at registration and owned by a SwitchTable.
type SwitchSpec struct {
	Name    string     // canonical long form, e.g. "max-width"
	Shorts  []string   // single-character aliases, e.g. "w"
	Type    SwitchType // how values are consumed
	Default any        // default value, nil when none
	Usage   string     // help text for long usage output
}

func NewBoolSwitch(name string) *SwitchSpec {
	return &SwitchSpec{Name: name, Type: Boolean}
}

func NewStringSwitch(name string) *SwitchSpec {
	return &SwitchSpec{Name: name, Type: String}
}

func NewNumericSwitch(name string) *SwitchSpec {
	return &SwitchSpec{Name: name, Type: Numeric}
}

func NewRequiredSwitch(name string) *SwitchSpec {
	return &SwitchSpec{Name: name, Type: Required}
}

func NewArraySwitch(name string) *SwitchSpec {
	return &SwitchSpec{Name: name, Type: Array}
}

// SetShort adds a single-character alias. Aliases longer than one
// character are ignored at table construction.
func (s *SwitchSpec) SetShort(short string) *SwitchSpec {
	s.Shorts = append(s.Shorts, short)
	return s
}

func (s *SwitchSpec) SetDefault(v any) *SwitchSpec {
	s.Default = v
	return s
}

func (s *SwitchSpec) SetUsage(u string) *SwitchSpec {
	s.Usage = u
	return s
}

// clone returns a shallow copy with its own Shorts slice, so merged
// tables never share mutable state with their sources.
func (s *SwitchSpec) clone() *SwitchSpec {
	dup := *s
	dup.Shorts = append([]string(nil), s.Shorts...)
	return &dup
}

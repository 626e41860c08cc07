package boson

// SwitchTable maps canonical switch names to their specs, with a reverse
// mapping from short alias to canonical name. Tables are built once and
// immutable afterwards; parsing never mutates them.
type SwitchTable struct {
	specs       map[string]*SwitchSpec
	shortToName map[string]string
	order       []string // canonical names in registration order
}

// NewSwitchTable builds a table from the given specs, enforcing the
// uniqueness rules: canonical names are unique (a duplicate drops the
// later spec), short aliases are unique within the table, and a short
// alias never shadows another entry's canonical name (the canonical
// name wins and the alias is dropped).
func NewSwitchTable(specs ...*SwitchSpec) *SwitchTable {
	t := &SwitchTable{
		specs:       make(map[string]*SwitchSpec),
		shortToName: make(map[string]string),
	}
	for _, spec := range specs {
		t.add(spec)
	}
	return t
}

func (t *SwitchTable) add(spec *SwitchSpec) {
	if spec == nil || spec.Name == "" {
		return
	}
	key := normalizeKey(spec.Name)
	if _, exists := t.specs[key]; exists {
		return
	}
	t.specs[key] = spec
	t.order = append(t.order, spec.Name)
	if len(spec.Name) == 1 {
		// canonical names win over earlier aliases of the same character
		delete(t.shortToName, spec.Name)
	}
	for _, short := range spec.Shorts {
		if len(short) != 1 {
			continue
		}
		if _, exists := t.shortToName[short]; exists {
			continue
		}
		// a short must not collide with any canonical name
		if _, exists := t.specs[normalizeKey(short)]; exists {
			continue
		}
		t.shortToName[short] = spec.Name
	}
}

// Lookup resolves a canonical name, tolerant of the caller's key style.
func (t *SwitchTable) Lookup(name string) (*SwitchSpec, bool) {
	spec, ok := t.specs[normalizeKey(name)]
	return spec, ok
}

// LookupShort resolves a single-character alias to its spec.
func (t *SwitchTable) LookupShort(short string) (*SwitchSpec, bool) {
	name, ok := t.shortToName[short]
	if !ok {
		return nil, false
	}
	return t.Lookup(name)
}

// Names returns the canonical names in registration order.
func (t *SwitchTable) Names() []string {
	return append([]string(nil), t.order...)
}

func (t *SwitchTable) Len() int {
	return len(t.order)
}

// specsInOrder returns the specs in registration order.
func (t *SwitchTable) specsInOrder() []*SwitchSpec {
	out := make([]*SwitchSpec, 0, len(t.order))
	for _, name := range t.order {
		out = append(out, t.specs[normalizeKey(name)])
	}
	return out
}

// mergeSwitchTables layers tables left to right, later tables winning on
// canonical-name collision. The result is a fresh table; sources are not
// modified. Shorts of a replaced spec are released to the replacement.
func mergeSwitchTables(tables ...*SwitchTable) *SwitchTable {
	byName := make(map[string]*SwitchSpec)
	var order []string
	for _, table := range tables {
		if table == nil {
			continue
		}
		for _, spec := range table.specsInOrder() {
			key := normalizeKey(spec.Name)
			if _, exists := byName[key]; !exists {
				order = append(order, key)
			}
			byName[key] = spec.clone()
		}
	}
	specs := make([]*SwitchSpec, 0, len(order))
	for _, key := range order {
		specs = append(specs, byName[key])
	}
	return NewSwitchTable(specs...)
}

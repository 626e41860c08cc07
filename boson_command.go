package boson

import "sync"

// ArgSpec describes one positional-argument slot of a command. A slot
// may carry a default: a literal value, or a factory invoked when the
// slot is left unfilled. Factories replace the legacy notion of
// evaluating free-text default expressions at call time.
type ArgSpec struct {
	Name           string
	LiteralDefault any
	DefaultFunc    func() (any, error)
	hasDefault     bool
}

func NewArg(name string) *ArgSpec {
	return &ArgSpec{Name: name}
}

func (a *ArgSpec) SetDefault(v any) *ArgSpec {
	a.LiteralDefault = v
	a.hasDefault = true
	return a
}

func (a *ArgSpec) SetDefaultFunc(fn func() (any, error)) *ArgSpec {
	a.DefaultFunc = fn
	a.hasDefault = true
	return a
}

// CommandDescriptor is the declarative registration record for one
// command: its name, optional alias, positional-argument slots, splat
// flag, local switch table, render-option overrides, and the default
// option a single bare leading value is rewritten into. Descriptors are
// built once at registration and read-only afterwards; the merged
// global/render table is derived lazily and cached.
type CommandDescriptor struct {
	Name          string
	Alias         string
	Args          []*ArgSpec
	Splat         bool
	Options       *SwitchTable  // command-local switches, nil when none
	RenderOptions []*SwitchSpec // overrides layered on the render table
	DefaultOption string

	mergedOnce sync.Once
	merged     *SwitchTable
}

func NewCommand(name string) *CommandDescriptor {
	return &CommandDescriptor{Name: name}
}

func (d *CommandDescriptor) SetAlias(alias string) *CommandDescriptor {
	d.Alias = alias
	return d
}

func (d *CommandDescriptor) AddArg(arg *ArgSpec) *CommandDescriptor {
	d.Args = append(d.Args, arg)
	return d
}

func (d *CommandDescriptor) SetSplat(splat bool) *CommandDescriptor {
	d.Splat = splat
	return d
}

func (d *CommandDescriptor) SetOptions(table *SwitchTable) *CommandDescriptor {
	d.Options = table
	return d
}

func (d *CommandDescriptor) AddRenderOption(spec *SwitchSpec) *CommandDescriptor {
	d.RenderOptions = append(d.RenderOptions, spec)
	return d
}

func (d *CommandDescriptor) SetDefaultOption(name string) *CommandDescriptor {
	d.DefaultOption = name
	return d
}

// takesOptions reports whether the command's callable receives a
// trailing options argument.
func (d *CommandDescriptor) takesOptions() bool {
	return d.Options != nil && d.Options.Len() > 0
}

// localTable never returns nil; option-less commands parse against an
// empty table.
func (d *CommandDescriptor) localTable() *SwitchTable {
	if d.Options != nil {
		return d.Options
	}
	return NewSwitchTable()
}

// arity is the declared callable arity: the positional slots plus one
// for the trailing options argument when the command takes options.
func (d *CommandDescriptor) arity() int {
	n := len(d.Args)
	if d.takesOptions() {
		n++
	}
	return n
}

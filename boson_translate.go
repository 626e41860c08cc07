package boson

import (
	"strings"

	shellwords "github.com/mattn/go-shellwords"
)

// GlobalOptionState holds the per-invocation resolved global options.
// It is built fresh for every translation and never persisted.
type GlobalOptionState struct {
	Help    bool
	Verbose bool
	Pretend bool
	Render  bool   // render-toggle
	Escape  string // raw global-escape string, already applied
	Options Options
}

// Translation is the normalized form of an invocation: resolved global
// options, resolved local options (nil when no parse ran), and the
// final positional arguments. HelpText is set instead when help
// short-circuited the translation.
type Translation struct {
	Global   *GlobalOptionState
	Local    Options
	Args     []any
	HelpText string
}

// HelpRequested reports whether the invocation asked for help rather
// than execution.
func (t *Translation) HelpRequested() bool {
	return t.HelpText != ""
}

// Translate infers which invocation shape was used and normalizes it.
// A function registered this way can be called as a plain Go call with
// positional values and an Options map, or with a single shell-style
// string, and both produce the same translation.
func Translate(raw []any, d *CommandDescriptor) (*Translation, error) {
	var (
		localOpts  Options
		globalOpts Options
		positional []any
	)

	tokenized := false
	switch {
	case len(raw) == 1 && isString(raw[0]):
		// whole invocation in one shell-style string; runs even for
		// option-less commands so -h and globals are still honored
		tokens, err := tokenizeShell(raw[0].(string))
		if err != nil {
			return nil, err
		}
		var args []string
		localOpts, globalOpts, args, err = twoPass(tokens, d)
		if err != nil {
			return nil, err
		}
		positional = toAnySlice(args)
		tokenized = true

	case !d.takesOptions():
		// option-less command called with plain values: no parser pass,
		// local options none, global options defaults only
		globalOpts = tableDefaults(d.mergedTable())
		positional = append([]any(nil), raw...)

	case len(raw) > 1 && isString(raw[len(raw)-1]):
		// positional values with a trailing option string
		tokens, err := tokenizeShell(raw[len(raw)-1].(string))
		if err != nil {
			return nil, err
		}
		var args []string
		localOpts, globalOpts, args, err = twoPass(tokens, d)
		if err != nil {
			return nil, err
		}
		positional = append(append([]any(nil), raw[:len(raw)-1]...), toAnySlice(args)...)
		tokenized = true

	case len(raw) > 0 && isOptionsMap(raw[len(raw)-1]):
		// explicit call with an options mapping; parse nothing, take
		// defaults, then let the supplied values win
		defaults, globals, _, err := twoPass(nil, d)
		if err != nil {
			return nil, err
		}
		localOpts, globalOpts = defaults, globals
		for key, value := range asOptions(raw[len(raw)-1]) {
			localOpts.Set(key, value)
		}
		positional = append([]any(nil), raw[:len(raw)-1]...)

	default:
		// nothing to parse: option-less command, or arity already
		// satisfied without an options slot
		globalOpts = tableDefaults(d.mergedTable())
		positional = append([]any(nil), raw...)
	}

	if err := applyGlobalEscape(globalOpts, d); err != nil {
		return nil, err
	}
	state := newGlobalOptionState(globalOpts)

	if state.Help {
		usage := d.localTable().Usage()
		return &Translation{
			Global:   state,
			HelpText: strings.TrimSpace(d.Name + " " + usage),
		}, nil
	}

	if tokenized {
		var err error
		localOpts, positional, err = injectDefaultOption(localOpts, positional, d)
		if err != nil {
			return nil, err
		}
	}

	positional, err := fillDefaultArgs(positional, d)
	if err != nil {
		return nil, err
	}

	if !d.Splat {
		want, got := d.arity(), len(positional)
		// one-slot tolerance absorbs the trailing-options-map slot
		if got != want && !(d.takesOptions() && got == want-1) {
			return nil, &ArityError{Command: d.Name, Expected: want, Actual: got}
		}
	}

	return &Translation{Global: state, Local: localOpts, Args: positional}, nil
}

// twoPass runs the local table over the full token list, then the
// merged global/render table options-first over the local pass's
// leading leftovers. Positional args are the global pass's non-options
// followed by the local pass's trailing tokens.
func twoPass(tokens []string, d *CommandDescriptor) (Options, Options, []string, error) {
	local, err := Parse(tokens, d.localTable())
	if err != nil {
		return nil, nil, nil, err
	}
	global, err := Parse(local.Leading, d.mergedTable(), WithOptionsFirst(true))
	if err != nil {
		return nil, nil, nil, err
	}
	positional := append(append([]string(nil), global.Trailing...), local.Trailing...)
	return local.Options, global.Options, positional, nil
}

// applyGlobalEscape re-tokenizes a non-empty escape string (each word
// dash-prefixed, single character meaning a short switch) and re-parses
// it against the merged table. Escape values override what was already
// inferred from leading tokens.
func applyGlobalEscape(globalOpts Options, d *CommandDescriptor) error {
	escape := globalOpts.String(escapeOption)
	if escape == "" {
		return nil
	}
	tokens := make([]string, 0)
	for _, word := range strings.Fields(escape) {
		if len(word) == 1 {
			tokens = append(tokens, "-"+word)
		} else {
			tokens = append(tokens, "--"+word)
		}
	}
	res, err := Parse(tokens, d.mergedTable(), WithOptionsFirst(true))
	if err != nil {
		return err
	}
	for _, name := range d.mergedTable().Names() {
		if res.Configured(name) {
			value, _ := res.Options.Get(name)
			globalOpts.Set(name, value)
		}
	}
	return nil
}

// injectDefaultOption rewrites a single bare leading value into the
// command's designated default option, enabling single-value shorthand
// for commands with at most one fixed positional slot.
func injectDefaultOption(localOpts Options, positional []any, d *CommandDescriptor) (Options, []any, error) {
	if d.DefaultOption == "" || d.Splat || len(d.Args) > 1 || len(positional) == 0 {
		return localOpts, positional, nil
	}
	first, ok := positional[0].(string)
	if !ok || first == "" || strings.HasPrefix(first, "-") {
		return localOpts, positional, nil
	}
	token := "--" + d.DefaultOption + "=" + first
	res, err := Parse([]string{token}, d.localTable(), WithOptionsFirst(true))
	if err != nil {
		return nil, nil, err
	}
	if localOpts == nil {
		localOpts = make(Options)
	}
	for _, name := range d.localTable().Names() {
		if res.Configured(name) {
			value, _ := res.Options.Get(name)
			localOpts.Set(name, value)
		}
	}
	return localOpts, positional[1:], nil
}

// fillDefaultArgs fills still-unfilled trailing positional slots that
// declare a default, stopping at the first slot without one. Factory
// failures surface as DefaultEvalError and always propagate.
func fillDefaultArgs(args []any, d *CommandDescriptor) ([]any, error) {
	if d.Splat {
		return args, nil
	}
	for i := len(args); i < len(d.Args); i++ {
		slot := d.Args[i]
		if !slot.hasDefault {
			break
		}
		if slot.DefaultFunc != nil {
			value, err := slot.DefaultFunc()
			if err != nil {
				return nil, &DefaultEvalError{Arg: slot.Name, Slot: i, Err: err}
			}
			args = append(args, value)
			continue
		}
		args = append(args, slot.LiteralDefault)
	}
	return args, nil
}

func newGlobalOptionState(opts Options) *GlobalOptionState {
	return &GlobalOptionState{
		Help:    opts.Bool(helpOption),
		Verbose: opts.Bool(verboseOption),
		Pretend: opts.Bool(pretendOption),
		Render:  opts.Bool(renderOption),
		Escape:  opts.String(escapeOption),
		Options: opts,
	}
}

func tableDefaults(table *SwitchTable) Options {
	return newParseResult(table).Options
}

func tokenizeShell(invocation string) ([]string, error) {
	tokens, err := shellwords.Parse(invocation)
	if err != nil {
		return nil, newSwitchError("", "cannot tokenize %q: %v", invocation, err)
	}
	return tokens, nil
}

func isString(v any) bool {
	_, ok := v.(string)
	return ok
}

func isOptionsMap(v any) bool {
	switch v.(type) {
	case Options, map[string]any:
		return true
	}
	return false
}

func asOptions(v any) Options {
	switch m := v.(type) {
	case Options:
		return m
	case map[string]any:
		out := make(Options, len(m))
		for k, val := range m {
			out.Set(k, val)
		}
		return out
	}
	return nil
}

func toAnySlice(tokens []string) []any {
	out := make([]any, len(tokens))
	for i, tok := range tokens {
		out[i] = tok
	}
	return out
}

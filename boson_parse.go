package boson

import (
	"strings"
)

type parseCfg struct {
	deleteInvalid bool
	optionsFirst  bool
}

type ParseOpt func(*parseCfg)

// WithDeleteInvalid strips undeclared option-shaped tokens from the
// leading and trailing sequences instead of failing on them. Stripped
// tokens are reported on ParseResult.Invalid.
func WithDeleteInvalid(del bool) ParseOpt {
	return func(c *parseCfg) {
		c.deleteInvalid = del
	}
}

// WithOptionsFirst disables leading non-option collection, so parsing
// starts at the first token. Non-option tokens then all land in the
// trailing sequence. This is how the merged global table is applied to
// the leftover leading tokens of a local pass.
func WithOptionsFirst(first bool) ParseOpt {
	return func(c *parseCfg) {
		c.optionsFirst = first
	}
}

// Parse splits tokens into leading non-options, resolved option values,
// and trailing non-options, according to the switch table. Recognized
// forms: --long, --long=value, -x, -x=value, -x<numeric>, squashed
// short booleans (-xyz), and --no-long negation of a declared boolean.
func Parse(tokens []string, table *SwitchTable, opts ...ParseOpt) (*ParseResult, error) {
	cfg := parseCfg{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if table == nil {
		table = NewSwitchTable()
	}
	p := &tokenParser{
		table: table,
		args:  append([]string(nil), tokens...),
		res:   newParseResult(table),
		cfg:   cfg,
	}
	if err := p.run(); err != nil {
		return nil, err
	}
	return p.res, nil
}

type tokenParser struct {
	table *SwitchTable
	args  []string
	res   *ParseResult
	cfg   parseCfg
}

func (p *tokenParser) empty() bool {
	return len(p.args) == 0
}

func (p *tokenParser) peek() string {
	return p.args[0]
}

func (p *tokenParser) shift() string {
	tok := p.args[0]
	p.args = p.args[1:]
	return tok
}

func (p *tokenParser) unshift(tokens ...string) {
	p.args = append(append([]string(nil), tokens...), p.args...)
}

func (p *tokenParser) run() error {
	if !p.cfg.optionsFirst {
		p.collectLeading()
	}

	for !p.empty() {
		tok := p.peek()
		if tok == "--" {
			// explicit end of options, the rest is positional
			p.shift()
			for !p.empty() {
				p.res.Trailing = append(p.res.Trailing, p.shift())
			}
			break
		}
		if p.recognized(tok) {
			if err := p.consume(); err != nil {
				return err
			}
			continue
		}
		if isOptionShaped(tok) {
			if p.cfg.deleteInvalid {
				p.res.Invalid = append(p.res.Invalid, p.shift())
				continue
			}
			return newSwitchError(normalizeKey(tok), "unknown switch: %s", tok)
		}
		p.res.Trailing = append(p.res.Trailing, p.shift())
	}

	return p.checkRequired()
}

// collectLeading gathers non-option tokens until the first switch the
// table recognizes. Option-shaped tokens the table does not declare stay
// in the leading sequence; a later pass against another table may claim
// them. In delete-invalid mode they are stripped instead.
func (p *tokenParser) collectLeading() {
	for !p.empty() {
		tok := p.peek()
		if p.recognized(tok) {
			return
		}
		if p.cfg.deleteInvalid && isOptionShaped(tok) {
			p.res.Invalid = append(p.res.Invalid, p.shift())
			continue
		}
		p.res.Leading = append(p.res.Leading, p.shift())
	}
}

// recognized reports whether the table declares the switch a token
// denotes, in any of the accepted token forms.
func (p *tokenParser) recognized(tok string) bool {
	if !isOptionShaped(tok) {
		return false
	}
	if strings.HasPrefix(tok, "--") {
		name := tok[2:]
		if idx := strings.Index(name, "="); idx != -1 {
			name = name[:idx]
		}
		if _, ok := p.table.Lookup(name); ok {
			return true
		}
		// --no-long negates a declared boolean
		if base, found := strings.CutPrefix(name, "no-"); found {
			if spec, ok := p.table.Lookup(base); ok && spec.Type == Boolean {
				return true
			}
		}
		return false
	}

	body := tok[1:]
	if idx := strings.Index(body, "="); idx != -1 {
		body = body[:idx]
	}
	if len(body) == 1 {
		_, ok := p.table.LookupShort(body)
		return ok
	}
	// -x<numeric> shorthand on a numeric switch
	if spec, ok := p.table.LookupShort(body[:1]); ok && spec.Type == Numeric {
		if rest := body[1:]; isNumericToken(rest) && rest[0] != '-' {
			return true
		}
	}
	// squashed shorts: every letter must be declared
	for i := 0; i < len(body); i++ {
		if _, ok := p.table.LookupShort(string(body[i])); !ok {
			return false
		}
	}
	return true
}

// consume shifts one recognized switch token and resolves its value.
func (p *tokenParser) consume() error {
	tok := p.shift()

	if strings.HasPrefix(tok, "--") {
		name := tok[2:]
		var value string
		var hasValue bool
		if idx := strings.Index(name, "="); idx != -1 {
			value = name[idx+1:]
			name = name[:idx]
			hasValue = true
		}
		if spec, ok := p.table.Lookup(name); ok {
			return p.apply(spec, "--"+name, value, hasValue)
		}
		// negation: set the positive boolean to false
		base := strings.TrimPrefix(name, "no-")
		p.res.set(base, false)
		return nil
	}

	body := tok[1:]
	var value string
	var hasValue bool
	if idx := strings.Index(body, "="); idx != -1 {
		value = body[idx+1:]
		body = body[:idx]
		hasValue = true
	}

	if len(body) == 1 {
		spec, _ := p.table.LookupShort(body)
		return p.apply(spec, "-"+body, value, hasValue)
	}

	if spec, ok := p.table.LookupShort(body[:1]); ok && spec.Type == Numeric {
		if rest := body[1:]; isNumericToken(rest) && rest[0] != '-' {
			num, err := coerceNumeric(rest)
			if err != nil {
				return newSwitchError(spec.Name, "invalid numeric value for -%s: %s", body[:1], rest)
			}
			p.res.set(spec.Name, num)
			return nil
		}
	}

	// squash: expand -xyz into -x -y -z and keep going
	expanded := make([]string, 0, len(body))
	for i := 0; i < len(body); i++ {
		expanded = append(expanded, "-"+string(body[i]))
	}
	if hasValue {
		expanded[len(expanded)-1] += "=" + value
	}
	p.unshift(expanded...)
	return nil
}

func (p *tokenParser) apply(spec *SwitchSpec, disp, value string, hasValue bool) error {
	switch spec.Type {
	case Boolean:
		if hasValue {
			val, err := parseBoolValue(value)
			if err != nil {
				return newSwitchError(spec.Name, "invalid value for %s: %q", disp, value)
			}
			p.res.set(spec.Name, val)
		} else {
			p.res.set(spec.Name, true)
		}

	case String:
		if hasValue {
			p.res.set(spec.Name, value)
			return nil
		}
		if p.empty() || p.recognized(p.peek()) {
			p.res.set(spec.Name, "")
			return nil
		}
		p.res.set(spec.Name, p.shift())

	case Required:
		if hasValue {
			p.res.set(spec.Name, value)
			return nil
		}
		if p.empty() {
			return newSwitchError(spec.Name, "no value provided for switch %s", disp)
		}
		if p.recognized(p.peek()) {
			return newSwitchError(spec.Name, "value position for switch %s occupied by switch %s", disp, p.peek())
		}
		p.res.set(spec.Name, p.shift())

	case Numeric:
		if !hasValue {
			if p.empty() {
				return newSwitchError(spec.Name, "no value provided for switch %s", disp)
			}
			value = p.peek()
			if !isNumericToken(value) {
				return newSwitchError(spec.Name, "expected numeric value for switch %s, got %q", disp, value)
			}
			p.shift()
		}
		if !isNumericToken(value) {
			return newSwitchError(spec.Name, "expected numeric value for switch %s, got %q", disp, value)
		}
		num, err := coerceNumeric(value)
		if err != nil {
			return newSwitchError(spec.Name, "expected numeric value for switch %s, got %q", disp, value)
		}
		p.res.set(spec.Name, num)

	case Array:
		if hasValue {
			p.appendArray(spec, strings.Split(value, ","))
			return nil
		}
		if p.empty() || p.recognized(p.peek()) {
			p.appendArray(spec, nil)
			return nil
		}
		p.appendArray(spec, strings.Split(p.shift(), ","))

	default:
		return newSwitchError(spec.Name, "unsupported switch type for %s", disp)
	}
	return nil
}

// appendArray grows an already-configured array value, or replaces the
// default on first explicit use.
func (p *tokenParser) appendArray(spec *SwitchSpec, values []string) {
	if p.res.Configured(spec.Name) {
		existing := p.res.Options.Strings(spec.Name)
		p.res.set(spec.Name, append(existing, values...))
		return
	}
	if values == nil {
		values = []string{}
	}
	p.res.set(spec.Name, values)
}

func (p *tokenParser) checkRequired() error {
	for _, spec := range p.table.specsInOrder() {
		if spec.Type == Required && !p.res.Options.Has(spec.Name) {
			return newSwitchError(spec.Name, "no value provided for required switch --%s", spec.Name)
		}
	}
	return nil
}

func parseBoolValue(value string) (bool, error) {
	switch strings.ToLower(value) {
	case "true", "1", "yes":
		return true, nil
	case "false", "0", "no":
		return false, nil
	}
	return false, newSwitchError("", "not a boolean: %q", value)
}

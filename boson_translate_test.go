package boson

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func spicyCommand() *CommandDescriptor {
	return NewCommand("eat").
		AddArg(NewArg("item")).
		SetOptions(NewSwitchTable(NewBoolSwitch("spicy")))
}

func TestTranslateSingleStringInvocation(t *testing.T) {
	tr, err := Translate([]any{"1 --spicy"}, spicyCommand())

	assert.NoError(t, err)
	assert.False(t, tr.HelpRequested())
	assert.Equal(t, []any{"1"}, tr.Args)
	assert.Equal(t, true, tr.Local.Bool("spicy"))
	assert.False(t, tr.Global.Help)
}

func TestTranslateTrailingStringInvocation(t *testing.T) {
	d := NewCommand("greet").
		AddArg(NewArg("name")).
		AddArg(NewArg("greeting")).
		SetOptions(NewSwitchTable(NewBoolSwitch("loud")))

	tr, err := Translate([]any{"joe", "hello --loud"}, d)

	assert.NoError(t, err)
	assert.Equal(t, []any{"joe", "hello"}, tr.Args)
	assert.True(t, tr.Local.Bool("loud"))
}

func TestTranslateQuotedTokens(t *testing.T) {
	d := NewCommand("say").
		AddArg(NewArg("phrase")).
		SetOptions(NewSwitchTable(NewBoolSwitch("loud")))

	tr, err := Translate([]any{`"hello there" --loud`}, d)

	assert.NoError(t, err)
	assert.Equal(t, []any{"hello there"}, tr.Args)
}

func TestTranslateArityMismatch(t *testing.T) {
	_, err := Translate([]any{"1 2 3"}, spicyCommand())

	var ae *ArityError
	assert.True(t, errors.As(err, &ae))
	assert.Equal(t, 2, ae.Expected)
	assert.Equal(t, 3, ae.Actual)
}

func TestTranslateSplatSkipsArityCheck(t *testing.T) {
	d := NewCommand("sum").
		SetSplat(true).
		SetOptions(NewSwitchTable(NewBoolSwitch("spicy")))

	tr, err := Translate([]any{"1 2 3 4 --spicy"}, d)

	assert.NoError(t, err)
	assert.Equal(t, []any{"1", "2", "3", "4"}, tr.Args)
	assert.True(t, tr.Local.Bool("spicy"))
}

func TestTranslateHelpShortCircuit(t *testing.T) {
	d := NewCommand("ping")

	tr, err := Translate([]any{"-h"}, d)

	assert.NoError(t, err)
	assert.True(t, tr.HelpRequested())
	assert.Equal(t, "ping", tr.HelpText)
}

func TestTranslateHelpIncludesUsageString(t *testing.T) {
	tr, err := Translate([]any{"--help"}, spicyCommand())

	assert.NoError(t, err)
	assert.Equal(t, "eat [--spicy]", tr.HelpText)
}

func TestTranslatePlainArgsSkipParsing(t *testing.T) {
	d := NewCommand("pair").
		AddArg(NewArg("left")).
		AddArg(NewArg("right"))

	tr, err := Translate([]any{"1", "2"}, d)

	assert.NoError(t, err)
	assert.Equal(t, []any{"1", "2"}, tr.Args)
	assert.Nil(t, tr.Local)
	assert.False(t, tr.Global.Help)
	assert.False(t, tr.Global.Verbose)
}

func TestTranslateExplicitOptionsMap(t *testing.T) {
	d := NewCommand("eat").
		AddArg(NewArg("item")).
		SetOptions(NewSwitchTable(
			NewBoolSwitch("spicy"),
			NewStringSwitch("sauce").SetDefault("mild"),
		))

	tr, err := Translate([]any{"rice", Options{"spicy": true}}, d)

	assert.NoError(t, err)
	assert.Equal(t, []any{"rice"}, tr.Args)
	assert.True(t, tr.Local.Bool("spicy"))
	// supplied values merge over defaults, defaults survive elsewhere
	assert.Equal(t, "mild", tr.Local.String("sauce"))
}

func TestTranslatePlainMapAccepted(t *testing.T) {
	tr, err := Translate([]any{"rice", map[string]any{"spicy": true}}, spicyCommand())

	assert.NoError(t, err)
	assert.True(t, tr.Local.Bool("spicy"))
}

func TestTranslateGlobalOptionsFromLeadingTokens(t *testing.T) {
	tr, err := Translate([]any{"-V --fields name,age 1 --spicy"}, spicyCommand())

	assert.NoError(t, err)
	assert.True(t, tr.Global.Verbose)
	assert.Equal(t, []string{"name", "age"}, tr.Global.Options.Strings("fields"))
	assert.Equal(t, []any{"1"}, tr.Args)
	assert.True(t, tr.Local.Bool("spicy"))
}

func TestTranslateGlobalEscape(t *testing.T) {
	tr, err := Translate([]any{`1 -g "V fields=name,age" --spicy`}, spicyCommand())

	assert.NoError(t, err)
	assert.True(t, tr.Global.Verbose)
	assert.Equal(t, "V fields=name,age", tr.Global.Escape)
	assert.Equal(t, []string{"name", "age"}, tr.Global.Options.Strings("fields"))
	assert.Equal(t, []any{"1"}, tr.Args)
}

func TestTranslateEscapeOverridesInferredGlobals(t *testing.T) {
	tr, err := Translate([]any{`--max-width 40 -g "max-width=80" 1 --spicy`}, spicyCommand())

	assert.NoError(t, err)
	assert.Equal(t, 80, tr.Global.Options.Int("max-width"))
}

func TestTranslateRenderOverrideWins(t *testing.T) {
	d := spicyCommand().
		AddRenderOption(NewStringSwitch("fields").SetDefault("name"))

	tr, err := Translate([]any{"--fields age 1 --spicy"}, d)

	assert.NoError(t, err)
	assert.Equal(t, "age", tr.Global.Options.String("fields"))
}

func TestTranslateDefaultOptionInjection(t *testing.T) {
	d := NewCommand("search").
		SetDefaultOption("query").
		SetOptions(NewSwitchTable(
			NewStringSwitch("query"),
			NewBoolSwitch("exact"),
		))

	tr, err := Translate([]any{"needle --exact"}, d)

	assert.NoError(t, err)
	assert.Empty(t, tr.Args)
	assert.Equal(t, "needle", tr.Local.String("query"))
	assert.True(t, tr.Local.Bool("exact"))
}

func TestTranslateDefaultOptionIgnoresOptionShapedValue(t *testing.T) {
	d := NewCommand("search").
		SetDefaultOption("query").
		SetOptions(NewSwitchTable(NewStringSwitch("query")))

	tr, err := Translate([]any{"--query needle"}, d)

	assert.NoError(t, err)
	assert.Equal(t, "needle", tr.Local.String("query"))
	assert.Empty(t, tr.Args)
}

func TestTranslateDefaultOptionSkippedForMultiSlotCommands(t *testing.T) {
	d := NewCommand("copy").
		AddArg(NewArg("src")).
		AddArg(NewArg("dst")).
		SetDefaultOption("src").
		SetOptions(NewSwitchTable(NewStringSwitch("src"), NewBoolSwitch("force")))

	tr, err := Translate([]any{"a b --force"}, d)

	assert.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, tr.Args)
	assert.False(t, tr.Local.Has("src"))
}

func TestTranslateLiteralDefaultFill(t *testing.T) {
	d := NewCommand("greet").
		AddArg(NewArg("name")).
		AddArg(NewArg("greeting").SetDefault("hello"))

	tr, err := Translate([]any{"joe"}, d)

	assert.NoError(t, err)
	assert.Equal(t, []any{"joe", "hello"}, tr.Args)
}

func TestTranslateFactoryDefaultFill(t *testing.T) {
	d := NewCommand("stamp").
		AddArg(NewArg("label")).
		AddArg(NewArg("seq").SetDefaultFunc(func() (any, error) {
			return 42, nil
		}))

	tr, err := Translate([]any{"x"}, d)

	assert.NoError(t, err)
	assert.Equal(t, []any{"x", 42}, tr.Args)
}

func TestTranslateFactoryFailureIsDefaultEvalError(t *testing.T) {
	d := NewCommand("stamp").
		AddArg(NewArg("label")).
		AddArg(NewArg("seq").SetDefaultFunc(func() (any, error) {
			return nil, fmt.Errorf("boom")
		}))

	_, err := Translate([]any{"x"}, d)

	var de *DefaultEvalError
	assert.True(t, errors.As(err, &de))
	assert.Equal(t, 1, de.Slot)
	assert.Equal(t, "seq", de.Arg)
	assert.ErrorContains(t, de.Err, "boom")
}

func TestTranslateArityToleranceAbsorbsOptionsSlot(t *testing.T) {
	// arity 2 (one slot plus the options slot) accepts one positional
	tr, err := Translate([]any{"1"}, spicyCommand())

	assert.NoError(t, err)
	assert.Equal(t, []any{"1"}, tr.Args)
	assert.False(t, tr.Local.Bool("spicy"))
}

func TestTranslateUnknownSwitchFails(t *testing.T) {
	_, err := Translate([]any{"1 --spicy --bogus"}, spicyCommand())

	var se *SwitchError
	assert.True(t, errors.As(err, &se))
}

func TestTranslateUnknownLeadingSwitchFailsInGlobalPass(t *testing.T) {
	_, err := Translate([]any{"--bogus 1 --spicy"}, spicyCommand())

	var se *SwitchError
	assert.True(t, errors.As(err, &se))
	assert.Equal(t, "bogus", se.Switch)
}

func TestTranslateUnbalancedQuoteIsSwitchError(t *testing.T) {
	_, err := Translate([]any{`1 --spicy "unclosed`}, spicyCommand())

	var se *SwitchError
	assert.True(t, errors.As(err, &se))
}

package boson

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergedTableCarriesGlobalAndRenderSwitches(t *testing.T) {
	merged := NewCommand("eat").mergedTable()

	for _, name := range []string{"help", "verbose", "pretend", "render", "global",
		"fields", "class", "max-width", "vertical"} {
		_, ok := merged.Lookup(name)
		assert.True(t, ok, "switch %q", name)
	}
	assert.Equal(t, 9, merged.Len())
}

func TestMergedTableShortAliases(t *testing.T) {
	merged := NewCommand("eat").mergedTable()

	help, ok := merged.LookupShort("h")
	assert.True(t, ok)
	assert.Equal(t, "help", help.Name)

	// verbose takes -V, leaving -v for the vertical render switch
	verbose, _ := merged.LookupShort("V")
	assert.Equal(t, "verbose", verbose.Name)
	vertical, _ := merged.LookupShort("v")
	assert.Equal(t, "vertical", vertical.Name)
}

func TestMergedTableRenderOverridesWin(t *testing.T) {
	d := NewCommand("eat").
		AddRenderOption(NewStringSwitch("fields").SetDefault("name"))

	spec, ok := d.mergedTable().Lookup("fields")

	assert.True(t, ok)
	assert.Equal(t, String, spec.Type)
	assert.Equal(t, "name", spec.Default)
}

func TestMergedTableIsCached(t *testing.T) {
	d := NewCommand("eat")

	assert.Same(t, d.mergedTable(), d.mergedTable())
}

func TestMergedTableIsolatedPerDescriptor(t *testing.T) {
	a := NewCommand("a").AddRenderOption(NewNumericSwitch("class"))
	b := NewCommand("b")

	aClass, _ := a.mergedTable().Lookup("class")
	bClass, _ := b.mergedTable().Lookup("class")

	assert.Equal(t, Numeric, aClass.Type)
	assert.Equal(t, String, bClass.Type)
}

func TestDescriptorArity(t *testing.T) {
	assert.Equal(t, 0, NewCommand("ping").arity())
	assert.Equal(t, 2, spicyCommand().arity())
	assert.Equal(t, 2, NewCommand("pair").
		AddArg(NewArg("left")).
		AddArg(NewArg("right")).arity())
}

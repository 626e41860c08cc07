package boson

// Option names shared between the translator and the merged table.
const (
	helpOption    = "help"
	verboseOption = "verbose"
	pretendOption = "pretend"
	renderOption  = "render"
	escapeOption  = "global"
)

// globalSwitchTable builds the fixed switches every command responds to.
// A fresh table per call keeps descriptors free of shared mutable state.
func globalSwitchTable() *SwitchTable {
	return NewSwitchTable(
		NewBoolSwitch(helpOption).SetShort("h").
			SetUsage("Print command usage."),
		NewBoolSwitch(verboseOption).SetShort("V").
			SetUsage("Report extra information during dispatch."),
		NewBoolSwitch(pretendOption).SetShort("p").
			SetUsage("Translate arguments without invoking the command."),
		NewBoolSwitch(renderOption).SetShort("r").
			SetUsage("Toggle the command's default rendering behavior."),
		NewStringSwitch(escapeOption).SetShort("g").
			SetUsage("Pass a string of global options without the dashes."),
	)
}

// renderSwitchTable builds the default output-formatting switches. The
// core never interprets these; it only guarantees they are resolved and
// normalized for the renderer.
func renderSwitchTable() *SwitchTable {
	return NewSwitchTable(
		NewArraySwitch("fields").SetShort("f").
			SetUsage("Fields to include in rendered output."),
		NewStringSwitch("class").SetShort("c").
			SetUsage("Filter class applied to rendered output."),
		NewNumericSwitch("max-width").SetShort("w").
			SetUsage("Maximum width of rendered output."),
		NewBoolSwitch("vertical").SetShort("v").
			SetUsage("Render output vertically."),
	)
}

// mergedTable lazily composes the command's global/render switch table:
// fixed globals, then default render switches, then the command's render
// overrides, later layers winning on name collision. The result is used
// only against the leading tokens left over from the local pass, never
// against raw input, and is cached for the descriptor's lifetime.
func (d *CommandDescriptor) mergedTable() *SwitchTable {
	d.mergedOnce.Do(func() {
		overrides := NewSwitchTable(d.RenderOptions...)
		d.merged = mergeSwitchTables(globalSwitchTable(), renderSwitchTable(), overrides)
	})
	return d.merged
}

package boson

import (
	"fmt"
	"strings"
)

// DumpDescriptor renders a human-readable snapshot of a command's
// registration: its identity, positional slots, local switch table, and
// the merged global/render table. Debugging aid; the format is not a
// stable interface.
func DumpDescriptor(d *CommandDescriptor) string {
	var sb strings.Builder

	sb.WriteString("Boson Command Dump\n")
	sb.WriteString(strings.Repeat("=", 50) + "\n\n")

	sb.WriteString("Command Information:\n")
	sb.WriteString(fmt.Sprintf("  Name: %s\n", d.Name))
	if d.Alias != "" {
		sb.WriteString(fmt.Sprintf("  Alias: %s\n", d.Alias))
	}
	sb.WriteString(fmt.Sprintf("  Splat: %t\n", d.Splat))
	sb.WriteString(fmt.Sprintf("  Arity: %d\n", d.arity()))
	if d.DefaultOption != "" {
		sb.WriteString(fmt.Sprintf("  Default Option: %s\n", d.DefaultOption))
	}

	sb.WriteString("\nPositional Arguments:\n")
	if len(d.Args) == 0 {
		sb.WriteString("  none\n")
	}
	for i, arg := range d.Args {
		line := fmt.Sprintf("  [%d]: %s", i, arg.Name)
		if arg.DefaultFunc != nil {
			line += " (default: <factory>)"
		} else if arg.hasDefault {
			line += fmt.Sprintf(" (default: %v)", arg.LiteralDefault)
		}
		sb.WriteString(line + "\n")
	}

	sb.WriteString("\nLocal Switches:\n")
	dumpTable(&sb, d.localTable())

	sb.WriteString("\nGlobal/Render Switches:\n")
	dumpTable(&sb, d.mergedTable())

	return sb.String()
}

func dumpTable(sb *strings.Builder, table *SwitchTable) {
	if table.Len() == 0 {
		sb.WriteString("  none\n")
		return
	}
	for _, spec := range table.specsInOrder() {
		line := fmt.Sprintf("  --%s", spec.Name)
		for _, short := range spec.Shorts {
			if len(short) == 1 {
				line += fmt.Sprintf(", -%s", short)
			}
		}
		line += fmt.Sprintf(" (%s)", spec.Type)
		if spec.Default != nil {
			line += fmt.Sprintf(" (default: %s)", defaultText(spec.Default))
		}
		sb.WriteString(line + "\n")
	}
}

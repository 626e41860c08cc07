package boson

import (
	"fmt"
	"os"
	"strings"

	"github.com/amterp/color"
)

var (
	greenBold  = color.New(color.FgGreen, color.Bold)
	cyan       = color.New(color.FgCyan)
	bold       = color.New(color.Bold)
	GreenBoldS = greenBold.SprintfFunc()
	CyanS      = cyan.SprintfFunc()
	BoldS      = bold.SprintfFunc()
)

// Usage renders the table's switches as a compact one-line usage
// string: booleans as [--name], required switches as --name=NAME, and
// value switches as [--name=<default-or-placeholder>], space-joined.
func (t *SwitchTable) Usage() string {
	parts := make([]string, 0, t.Len())
	for _, spec := range t.specsInOrder() {
		switch spec.Type {
		case Boolean:
			parts = append(parts, fmt.Sprintf("[--%s]", spec.Name))
		case Required:
			parts = append(parts, fmt.Sprintf("--%s=%s", spec.Name, placeholder(spec)))
		default:
			if spec.Default != nil {
				parts = append(parts, fmt.Sprintf("[--%s=%s]", spec.Name, defaultText(spec.Default)))
			} else {
				parts = append(parts, fmt.Sprintf("[--%s=%s]", spec.Name, placeholder(spec)))
			}
		}
	}
	return strings.Join(parts, " ")
}

// OptionsSection renders an aligned, colored per-switch listing for
// help text beyond the compact usage line. The core exposes it for the
// usage printer; formatting past this string is the printer's business.
func (t *SwitchTable) OptionsSection(header string) string {
	if t.Len() == 0 {
		return ""
	}
	initializeColorFromEnv()

	var sb strings.Builder
	sb.WriteString(GreenBoldS(header) + "\n")
	for _, spec := range t.specsInOrder() {
		left := "--" + spec.Name
		for _, short := range spec.Shorts {
			if len(short) == 1 {
				left += ", -" + short
			}
		}
		if spec.Type != Boolean {
			left += " " + strings.ToUpper(spec.Type.String())
		}
		line := fmt.Sprintf("  %-34s%s", BoldS(left), spec.Usage)
		if spec.Default != nil {
			line += CyanS(" (default: %s)", defaultText(spec.Default))
		}
		sb.WriteString(strings.TrimRight(line, " ") + "\n")
	}
	return sb.String()
}

func placeholder(spec *SwitchSpec) string {
	return strings.ToUpper(spec.Name)
}

func defaultText(v any) string {
	if items, ok := v.([]string); ok {
		return strings.Join(items, ",")
	}
	return fmt.Sprint(v)
}

func initializeColorFromEnv() {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("BOSON_COLOR"))) {
	case "never":
		color.NoColor = true
	case "always":
		color.NoColor = false
	case "", "auto":
		// let amterp/color decide based on tty
	default:
		// invalid value - treat as auto
	}
}

package wrench

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/napalu/wrench/util"
)

const (
	defaultUsageWidth = 80
	maxUsageWidth     = 120
)

// FormatUsage derives the usage text from the schema: global options first,
// then each command with its own options and positional arguments. Pure
// projection of the static tables - calling it twice yields identical text.
func (s *Schema) FormatUsage() string {
	return s.formatUsage(defaultUsageWidth)
}

// PrintUsage writes the usage text to w, wrapped to the terminal width when
// w is attached to one
func (s *Schema) PrintUsage(w io.Writer) {
	width := defaultUsageWidth
	if f, ok := w.(*os.File); ok {
		width = util.Min(util.TerminalWidth(int(f.Fd()), defaultUsageWidth), maxUsageWidth)
	}
	_, _ = io.WriteString(w, s.formatUsage(width))
}

func (s *Schema) formatUsage(width int) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "usage: %s [flags] <command> [command flags] INPUT\n", s.appName)
	sb.WriteString("\nGlobal Flags:\n\n")
	s.global.forEach(func(spec *OptionSpec) bool {
		writeWrapped(&sb, " "+optionUsage(spec), width)
		return true
	})

	if s.commands.Len() > 0 {
		sb.WriteString("\nCommands:\n")
		s.forEachCommand(func(command *CommandSpec) bool {
			fmt.Fprintf(&sb, " + %s %q\n", command.Name, command.Description)
			command.options.forEach(func(spec *OptionSpec) bool {
				writeWrapped(&sb, " |   "+optionUsage(spec), width)
				return true
			})
			return true
		})
	}

	return sb.String()
}

// optionUsage renders a single option: alias forms, value placeholder,
// description, default and requiredness
func optionUsage(spec *OptionSpec) string {
	var usage string
	if spec.Position != nil {
		usage = valuePlaceholder(spec)
	} else {
		usage = "--" + spec.Name
		if spec.Short != "" {
			usage += " or -" + spec.Short
		}
		if spec.TypeOf == Single {
			usage += " <" + valuePlaceholder(spec) + ">"
		}
	}

	if spec.Description != "" {
		usage += " " + fmt.Sprintf("%q", spec.Description)
	}
	if spec.DefaultValue != "" {
		usage += fmt.Sprintf(" (defaults to: %s)", spec.DefaultValue)
	}
	if spec.Required {
		usage += " (required)"
	} else {
		usage += " (optional)"
	}

	return usage
}

// writeWrapped writes line folded to width, indenting continuations to keep
// the flag column readable
func writeWrapped(sb *strings.Builder, line string, width int) {
	if width <= 0 || len(line) <= width {
		sb.WriteString(line)
		sb.WriteByte('\n')
		return
	}

	words := strings.Fields(line)
	indent := line[:len(line)-len(strings.TrimLeft(line, " "))]
	current := indent
	for i, word := range words {
		candidate := current + word
		if i > 0 {
			candidate = current + " " + word
		}
		if len(candidate) > width && current != indent {
			sb.WriteString(current)
			sb.WriteByte('\n')
			current = indent + "    " + word
			continue
		}
		if i > 0 {
			current += " " + word
		} else {
			current += word
		}
	}
	sb.WriteString(current)
	sb.WriteByte('\n')
}

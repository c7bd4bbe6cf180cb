package diff

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	insertColor  = color.New(color.FgGreen).SprintFunc()
	deleteColor  = color.New(color.FgRed).SprintFunc()
	replaceColor = color.New(color.FgYellow).SprintFunc()
)

// Render writes one line per change, prefixed "+", "-" or "~". With
// colorize set, inserts are green, deletes red and replacements yellow.
func Render(w io.Writer, changes []Change, colorize bool) error {
	for _, c := range changes {
		line := renderLine(c)
		if colorize {
			switch c.Kind {
			case Insert:
				line = insertColor(line)
			case Delete:
				line = deleteColor(line)
			case Replace:
				line = replaceColor(line)
			}
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func renderLine(c Change) string {
	switch c.Kind {
	case Insert:
		if c.Key == "" {
			return fmt.Sprintf("+ %s", c.Path)
		}
		return fmt.Sprintf("+ %s %s=%q", c.Path, c.Key, c.To)
	case Delete:
		if c.Key == "" {
			return fmt.Sprintf("- %s", c.Path)
		}
		return fmt.Sprintf("- %s %s", c.Path, c.Key)
	default:
		if c.Key == "" {
			return fmt.Sprintf("~ %s %s -> %s", c.Path, c.From, c.To)
		}
		return fmt.Sprintf("~ %s %s: %q -> %q", c.Path, c.Key, c.From, c.To)
	}
}

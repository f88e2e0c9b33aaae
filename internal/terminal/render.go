package terminal

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// printableWidth returns the rune count of s with ANSI sequences removed.
func printableWidth(s string) int {
	return utf8.RuneCountInString(StripANSI(s))
}

// Rule returns a horizontal divider with an optional centered title,
// e.g. "── Select a Distribution ──────────".
//
// Postcondition: The printable width of the result equals width.
func Rule(title string, width int) string {
	if title == "" {
		return strings.Repeat("─", width)
	}
	label := " " + title + " "
	remaining := width - printableWidth(label) - 2
	if remaining < 0 {
		remaining = 0
	}
	return "──" + label + strings.Repeat("─", remaining)
}

// Panel renders lines inside a rounded box with an optional title in the
// top border. Line widths are measured after stripping ANSI sequences so
// styled content aligns correctly.
//
// Postcondition: Every border line has the same printable width.
func Panel(title string, lines []string) string {
	inner := 0
	for _, l := range lines {
		if w := printableWidth(l); w > inner {
			inner = w
		}
	}
	if t := printableWidth(title) + 2; title != "" && t > inner {
		inner = t
	}

	var b strings.Builder

	// Top border with embedded title
	if title == "" {
		b.WriteString("╭" + strings.Repeat("─", inner+2) + "╮\n")
	} else {
		label := " " + title + " "
		rest := inner + 2 - printableWidth(label) - 1
		if rest < 0 {
			rest = 0
		}
		b.WriteString("╭─" + label + strings.Repeat("─", rest) + "╮\n")
	}

	for _, l := range lines {
		pad := inner - printableWidth(l)
		b.WriteString(fmt.Sprintf("│ %s%s │\n", l, strings.Repeat(" ", pad)))
	}

	b.WriteString("╰" + strings.Repeat("─", inner+2) + "╯")
	return b.String()
}

package mdx

import (
	"regexp"
	"strings"
)

// Hugo shortcodes are not part of any Markdown grammar, so no parser sees
// them; they are rewritten with plain pattern substitution before the event
// pass runs.
var (
	// {{% details title="..." %}} body {{% /details %}} on one logical line.
	detailsSingleRe = regexp.MustCompile(`\{\{% details title="([^"]*)"[^%]*%\}\}\s*(.+?)\s*\{\{% /details %\}\}`)
	detailsOpenRe   = regexp.MustCompile(`\{\{% details title="([^"]*)"[^%]*%\}\}`)
	// A closing marker trailing other content must move to its own line.
	// Whitespace before the marker, including an indented line of its own,
	// collapses into the line break.
	detailsInlineCloseRe = regexp.MustCompile(`([^\n])\s*\{\{% /details %\}\}`)
)

// ConvertShortcodes replaces Hugo details shortcodes with Accordion
// components. Closing tags always start a new line, which MDX requires.
func ConvertShortcodes(content string) string {
	result := detailsSingleRe.ReplaceAllString(content, "<Accordion title=\"$1\">\n$2\n</Accordion>")
	result = detailsOpenRe.ReplaceAllString(result, `<Accordion title="$1">`)
	result = detailsInlineCloseRe.ReplaceAllString(result, "$1\n</Accordion>")

	// Anything still left is a standalone closing marker.
	return strings.ReplaceAll(result, "{{% /details %}}", "</Accordion>")
}

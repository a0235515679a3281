package mdx

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

var (
	brRe = regexp.MustCompile(`<br\s*>`)
	hrRe = regexp.MustCompile(`<hr\s*>`)
	// Empty row immediately before a table close, and fully empty rows.
	trTableRe = regexp.MustCompile(`<tr>\s*</table>`)
	emptyTrRe = regexp.MustCompile(`<tr>\s*</tr>`)
	styleRe   = regexp.MustCompile(`style="([^"]*)"`)
)

// rewriteHTML applies the MDX compatibility fixes to one raw HTML fragment:
// self-close void tags, drop empty table rows, and convert string style
// attributes to object-literal props.
func rewriteHTML(html string) string {
	fixed := brRe.ReplaceAllString(html, "<br />")
	fixed = hrRe.ReplaceAllString(fixed, "<hr />")
	fixed = trTableRe.ReplaceAllString(fixed, "</table>")
	fixed = emptyTrRe.ReplaceAllString(fixed, "")
	return convertStyleProps(fixed)
}

// convertStyleProps rewrites style="a-b:v;..." into style={{aB: "v", ...}}.
// An attribute with no valid prop:value pairs is removed entirely.
func convertStyleProps(html string) string {
	return styleRe.ReplaceAllStringFunc(html, func(attr string) string {
		inner := attr[len(`style="`) : len(attr)-1]

		var props []string
		for _, pair := range strings.Split(inner, ";") {
			pair = strings.TrimSpace(pair)
			if pair == "" || !strings.Contains(pair, ":") {
				continue
			}
			parts := strings.SplitN(pair, ":", 2)
			name := cssToCamelCase(strings.TrimSpace(parts[0]))
			value := strings.TrimSpace(parts[1])
			props = append(props, fmt.Sprintf("%s: %q", name, value))
		}

		if len(props) == 0 {
			return ""
		}
		return fmt.Sprintf("style={{%s}}", strings.Join(props, ", "))
	})
}

// cssToCamelCase converts a kebab-case CSS property name: the first segment
// stays as-is, each following segment is capitalized and concatenated.
func cssToCamelCase(prop string) string {
	parts := strings.Split(strings.TrimSpace(prop), "-")
	if len(parts) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(parts[0])
	for _, part := range parts[1:] {
		if part == "" {
			continue
		}
		runes := []rune(part)
		b.WriteRune(unicode.ToUpper(runes[0]))
		b.WriteString(string(runes[1:]))
	}
	return b.String()
}

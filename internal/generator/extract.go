package generator

import (
	"strings"

	"github.com/adrg/frontmatter"
)

// TitleFromMDX extracts a display title from a README. A frontmatter title
// field wins; otherwise the first meaningful line of the first five is used,
// stripped of heading markers. Titles of the form "CODE - Name" give just
// the name. Returns fallback when nothing usable is found.
func TitleFromMDX(content, fallback string) string {
	var meta struct {
		Title string `yaml:"title"`
	}
	if _, err := frontmatter.Parse(strings.NewReader(content), &meta); err == nil && meta.Title != "" {
		return cleanTitle(meta.Title)
	}

	lines := strings.Split(content, "\n")
	if len(lines) > 5 {
		lines = lines[:5]
	}
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed == "---" {
			continue
		}
		if rest, ok := strings.CutPrefix(trimmed, "title:"); ok {
			trimmed = strings.Trim(strings.TrimSpace(rest), `"'`)
		}
		return cleanTitle(trimmed)
	}
	return fallback
}

// cleanTitle strips a leading heading marker and a "CODE - " prefix.
func cleanTitle(raw string) string {
	title := strings.TrimSpace(strings.TrimPrefix(raw, "# "))
	if _, name, ok := strings.Cut(title, " - "); ok {
		return strings.TrimSpace(name)
	}
	return title
}

// HeadingTitle returns the first level-one heading of a document, or
// "Untitled" when it has none.
func HeadingTitle(content string) string {
	for _, line := range strings.Split(content, "\n") {
		if rest, ok := strings.CutPrefix(line, "# "); ok {
			return strings.TrimSpace(rest)
		}
	}
	return "Untitled"
}

// readmeBody returns the document with its first skip lines removed; course
// READMEs open with a title block the page frontmatter replaces.
func readmeBody(content string, skip int) string {
	lines := strings.Split(content, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	if skip >= len(lines) {
		return ""
	}
	return strings.Join(lines[skip:], "\n")
}

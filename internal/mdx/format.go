// Package mdx normalizes author-written Markdown into the constrained MDX
// dialect the docs site builds from. The entry point is Format; FormatDir
// applies it to a generated docs tree in place.
package mdx

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var blankRunRe = regexp.MustCompile(`\n{3,}`)

// Format runs the full rewrite pipeline over one document:
//
//  1. Hugo shortcodes to Accordion components (pattern substitution)
//  2. structure-aware event pass (comments, badges, HTML fixes)
//  3. brace escaping inside math spans (character scan)
//  4. Accordion container wrapping (line scan with depth tracking)
//  5. blank-line collapse
//
// Later stages rely on the normalization of earlier ones, so the order is
// fixed. Applying Format to its own output changes nothing.
func Format(content string) string {
	result := ConvertShortcodes(content)
	result = Process(result)
	result = EscapeMathBraces(result)
	result = WrapAccordions(result)
	return collapseBlankLines(result)
}

// collapseBlankLines reduces any run of three or more newlines to exactly
// two, keeping at most one blank line between blocks.
func collapseBlankLines(content string) string {
	return blankRunRe.ReplaceAllString(content, "\n\n")
}

// FormatDir rewrites every .mdx file under dir, writing only files whose
// content changed. A pipeline result that comes back empty for a non-empty
// source is treated as an anomaly: the original is kept and a warning is
// printed. Returns the number of modified files.
func FormatDir(dir string) (int, error) {
	modified := 0

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.HasSuffix(path, ".mdx") {
			return nil
		}

		original, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		formatted := Format(string(original))
		if formatted == string(original) {
			return nil
		}
		if formatted == "" && len(original) > 0 {
			fmt.Fprintf(os.Stderr, "Warning: formatting %s produced empty output, keeping original\n", path)
			return nil
		}

		if err := Validate(formatted); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %s: %v\n", path, err)
		}

		if err := os.WriteFile(path, []byte(formatted), 0o644); err != nil {
			return err
		}
		modified++
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("formatting %s: %w", dir, err)
	}

	return modified, nil
}

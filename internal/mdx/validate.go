package mdx

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// componentOpenRe matches opening tags of MDX components (capitalized tag
// names); self-closing tags are filtered out separately.
var (
	componentOpenRe  = regexp.MustCompile(`<([A-Z][A-Za-z]*)(\s[^<>]*)?>`)
	componentCloseRe = regexp.MustCompile(`</([A-Z][A-Za-z]*)>`)
)

// Validate parses a rewritten document with the same syntax extensions the
// rewrite pass assumes (tables, strikethrough, footnotes) and checks that
// component tags inside the raw HTML balance. Unbalanced components break
// the downstream MDX build, so catching them here turns a build failure into
// a warning.
func Validate(content string) error {
	source := []byte(content)
	md := goldmark.New(goldmark.WithExtensions(
		extension.Table,
		extension.Strikethrough,
		extension.Footnote,
	))
	doc := md.Parser().Parse(text.NewReader(source))

	counts := map[string]int{}
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.HTMLBlock:
			for i := 0; i < node.Lines().Len(); i++ {
				seg := node.Lines().At(i)
				countComponentTags(counts, string(seg.Value(source)))
			}
		case *ast.RawHTML:
			for i := 0; i < node.Segments.Len(); i++ {
				seg := node.Segments.At(i)
				countComponentTags(counts, string(seg.Value(source)))
			}
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return fmt.Errorf("walking document: %w", err)
	}

	for tag, count := range counts {
		if count > 0 {
			return fmt.Errorf("unclosed <%s> component", tag)
		}
		if count < 0 {
			return fmt.Errorf("unexpected </%s> without opener", tag)
		}
	}
	return nil
}

func countComponentTags(counts map[string]int, html string) {
	for _, m := range componentOpenRe.FindAllStringSubmatch(html, -1) {
		if strings.HasSuffix(strings.TrimSuffix(m[0], ">"), "/") {
			continue // self-closing
		}
		counts[m[1]]++
	}
	for _, m := range componentCloseRe.FindAllStringSubmatch(html, -1) {
		counts[m[1]]--
	}
}

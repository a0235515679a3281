package tree

import (
	"fmt"
	"strings"

	"github.com/HITSZ-OpenAuto/fuma-go/internal/model"
)

// Render converts a node list into the <Folder>/<File> markup fragment used
// by the Files component. Indentation is two spaces per level. Empty input
// renders to the empty string.
func Render(nodes []model.FileNode, indentLevel int) string {
	indent := strings.Repeat("  ", indentLevel)
	var lines []string

	for _, node := range nodes {
		switch node.Type {
		case model.Folder:
			lines = append(lines, fmt.Sprintf("%s<Folder name=%q>", indent, node.Name))
			lines = append(lines, Render(node.Children, indentLevel+1))
			lines = append(lines, fmt.Sprintf("%s</Folder>", indent))
		case model.File:
			attrs := []string{fmt.Sprintf("name=%q", node.Name)}
			if node.URL != "" {
				attrs = append(attrs, fmt.Sprintf("url=%q", node.URL))
			}
			if node.Date != "" {
				attrs = append(attrs, fmt.Sprintf("date=%q", node.Date))
			}
			// A zero size is indistinguishable from an absent one here; both
			// drop the attribute.
			if node.Size != nil && *node.Size > 0 {
				attrs = append(attrs, fmt.Sprintf("size={%d}", *node.Size))
			}
			lines = append(lines, fmt.Sprintf("%s<File %s />", indent, strings.Join(attrs, " ")))
		}
	}

	return strings.Join(lines, "\n")
}

package tree

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/HITSZ-OpenAuto/fuma-go/internal/model"
)

// builder is the intermediate trie a flat manifest is folded into before the
// sorted node list is produced. Each node owns its children; the structure is
// strictly a tree.
type builder struct {
	children map[string]*builder
	isFile   bool
	url      string
	size     *uint64
	date     string
}

func newBuilder() *builder {
	return &builder{children: make(map[string]*builder)}
}

// Mirror locates raw file downloads for an organization's repositories.
type Mirror struct {
	Host   string
	Org    string
	Branch string
}

// Build compiles a flat worktree manifest into the sorted download tree for
// repo. Excluded paths are skipped entirely and create no intermediate
// folders of their own.
func Build(entries model.Worktree, repo string, mirror Mirror) []model.FileNode {
	root := newBuilder()

	for path, meta := range entries {
		if !ShouldInclude(path) {
			continue
		}

		parts := strings.Split(path, "/")
		current := root
		for i, part := range parts {
			child, ok := current.children[part]
			if !ok {
				child = newBuilder()
				current.children[part] = child
			}
			current = child

			if i == len(parts)-1 {
				// A path that is both a leaf and a prefix of another entry is
				// malformed input; the file flag wins and the orphaned
				// children are dropped at conversion time.
				current.isFile = true
				current.url = mirror.DownloadURL(repo, path)
				current.size = meta.Size
				if meta.ModTime != nil {
					current.date = formatTimestamp(*meta.ModTime)
				}
			}
		}
	}

	return root.toNodes()
}

// toNodes converts a trie level into FileNodes with the sibling ordering
// invariant applied: folders before files, then case-insensitive name order.
func (b *builder) toNodes() []model.FileNode {
	nodes := make([]model.FileNode, 0, len(b.children))
	for name, child := range b.children {
		nodes = append(nodes, child.toNode(name))
	}

	sort.Slice(nodes, func(i, j int) bool {
		if nodes[i].Type != nodes[j].Type {
			return nodes[i].Type == model.Folder
		}
		return strings.ToLower(nodes[i].Name) < strings.ToLower(nodes[j].Name)
	})

	return nodes
}

func (b *builder) toNode(name string) model.FileNode {
	if b.isFile {
		return model.FileNode{
			Name: name,
			Type: model.File,
			URL:  b.url,
			Size: b.size,
			Date: b.date,
		}
	}
	return model.FileNode{
		Name:     name,
		Type:     model.Folder,
		Children: b.toNodes(),
	}
}

// DownloadURL synthesizes the mirror download URL for a file. Each path
// segment is percent-encoded independently so the separators stay literal.
func (m Mirror) DownloadURL(repo, path string) string {
	parts := strings.Split(path, "/")
	encoded := make([]string, len(parts))
	for i, part := range parts {
		encoded[i] = url.PathEscape(part)
	}
	return fmt.Sprintf(
		"https://%s/github.com/%s/%s/raw/%s/%s",
		m.Host, m.Org, repo, m.Branch, strings.Join(encoded, "/"),
	)
}

func formatTimestamp(unix int64) string {
	return time.Unix(unix, 0).UTC().Format("2006-01-02")
}

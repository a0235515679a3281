package tree

import (
	"strings"
	"testing"

	"github.com/HITSZ-OpenAuto/fuma-go/internal/model"
)

func TestRenderFile(t *testing.T) {
	nodes := []model.FileNode{{
		Name: "test.pdf",
		Type: model.File,
		URL:  "https://example.com/test.pdf",
		Size: u64(1024),
		Date: "2021-12-20",
	}}

	out := Render(nodes, 1)

	for _, want := range []string{
		`<File name="test.pdf"`,
		`url="https://example.com/test.pdf"`,
		`date="2021-12-20"`,
		`size={1024}`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderAttributeOrder(t *testing.T) {
	nodes := []model.FileNode{{
		Name: "a.pdf",
		Type: model.File,
		URL:  "u",
		Size: u64(7),
		Date: "2024-01-01",
	}}

	out := Render(nodes, 0)
	want := `<File name="a.pdf" url="u" date="2024-01-01" size={7} />`
	if out != want {
		t.Errorf("Render() = %q, want %q", out, want)
	}
}

func TestRenderFolder(t *testing.T) {
	nodes := []model.FileNode{{
		Name: "docs",
		Type: model.Folder,
		Children: []model.FileNode{{
			Name: "file.txt",
			Type: model.File,
			URL:  "https://example.com/file.txt",
			Size: u64(100),
		}},
	}}

	out := Render(nodes, 1)

	if !strings.Contains(out, `<Folder name="docs">`) {
		t.Errorf("missing folder open tag:\n%s", out)
	}
	if !strings.Contains(out, `</Folder>`) {
		t.Errorf("missing folder close tag:\n%s", out)
	}
	if strings.Contains(out, `<Folder name="docs" url=`) {
		t.Errorf("folder tags must not carry file attributes:\n%s", out)
	}
}

func TestRenderZeroSizeOmitted(t *testing.T) {
	zero := uint64(0)
	nodes := []model.FileNode{{
		Name: "empty.txt",
		Type: model.File,
		URL:  "https://example.com/empty.txt",
		Size: &zero,
	}}

	out := Render(nodes, 1)
	if strings.Contains(out, "size=") {
		t.Errorf("zero size must not render a size attribute:\n%s", out)
	}
}

func TestRenderNilSizeOmitted(t *testing.T) {
	nodes := []model.FileNode{{
		Name: "unsized.txt",
		Type: model.File,
		URL:  "https://example.com/unsized.txt",
	}}

	out := Render(nodes, 0)
	if strings.Contains(out, "size=") {
		t.Errorf("absent size must not render a size attribute:\n%s", out)
	}
}

func TestRenderIndentation(t *testing.T) {
	nodes := []model.FileNode{{
		Name: "folder",
		Type: model.Folder,
		Children: []model.FileNode{{
			Name: "nested",
			Type: model.Folder,
			Children: []model.FileNode{{
				Name: "file.txt",
				Type: model.File,
				URL:  "https://example.com/file.txt",
				Size: u64(100),
			}},
		}},
	}}

	out := Render(nodes, 1)

	for _, want := range []string{
		"  <Folder name=\"folder\">",
		"    <Folder name=\"nested\">",
		"      <File name=\"file.txt\"",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing indented line %q:\n%s", want, out)
		}
	}
}

func TestRenderEmpty(t *testing.T) {
	if out := Render(nil, 1); out != "" {
		t.Errorf("empty input must render the empty string, got %q", out)
	}
}

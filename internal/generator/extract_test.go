package generator

import "testing"

func TestTitleFromMDX(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		fallback string
		want     string
	}{
		{
			name:     "frontmatter title",
			content:  "---\ntitle: 自动控制原理\n---\n\ncontent",
			fallback: "AUTO3001",
			want:     "自动控制原理",
		},
		{
			name:     "heading",
			content:  "# 大学物理\n\ncontent",
			fallback: "PHYS1001",
			want:     "大学物理",
		},
		{
			name:     "code dash name gives name",
			content:  "# MATH1001 - 数学分析\n",
			fallback: "MATH1001",
			want:     "数学分析",
		},
		{
			name:     "bare title line",
			content:  "title: \"量子力学\"\nrest",
			fallback: "X",
			want:     "量子力学",
		},
		{
			name:     "plain first line",
			content:  "Course notes\nmore",
			fallback: "X",
			want:     "Course notes",
		},
		{
			name:     "empty content falls back",
			content:  "\n\n\n\n\n\n",
			fallback: "REPO1",
			want:     "REPO1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TitleFromMDX(tt.content, tt.fallback); got != tt.want {
				t.Errorf("TitleFromMDX() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHeadingTitle(t *testing.T) {
	tests := []struct {
		content string
		want    string
	}{
		{"# Hello World\n\nSome content.", "Hello World"},
		{"Some content without title.", "Untitled"},
		{"#   Title With Spaces   \nContent.", "Title With Spaces"},
		{"intro\n# Late Heading\n", "Late Heading"},
	}
	for _, tt := range tests {
		if got := HeadingTitle(tt.content); got != tt.want {
			t.Errorf("HeadingTitle(%q) = %q, want %q", tt.content, got, tt.want)
		}
	}
}

func TestReadmeBody(t *testing.T) {
	tests := []struct {
		name    string
		content string
		skip    int
		want    string
	}{
		{"skip title block", "# Title\n\nBody line.\nMore.\n", 2, "Body line.\nMore."},
		{"skip one line", "# Title\nBody.\n", 1, "Body."},
		{"skip everything", "one\ntwo\n", 3, ""},
		{"empty", "", 2, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := readmeBody(tt.content, tt.skip); got != tt.want {
				t.Errorf("readmeBody() = %q, want %q", got, tt.want)
			}
		})
	}
}

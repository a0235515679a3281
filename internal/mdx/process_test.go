package mdx

import (
	"strings"
	"testing"
)

func TestProcessRemovesComments(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"inline", "Text <!-- hidden --> more\n"},
		{"own line", "before\n<!-- hidden -->\nafter\n"},
		{"multi line", "before\n<!-- hidden\nstill hidden -->\nafter\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Process(tt.input)
			if strings.Contains(out, "hidden") {
				t.Errorf("comment survived:\n%s", out)
			}
			if !strings.Contains(out, "before") && !strings.Contains(out, "Text") {
				t.Errorf("surrounding text lost:\n%s", out)
			}
		})
	}
}

func TestProcessKeepsTextAfterCommentClose(t *testing.T) {
	out := Process("a <!-- x\ny --> kept\n")
	if !strings.Contains(out, "kept") {
		t.Errorf("text after the closing marker must survive:\n%q", out)
	}
	if strings.Contains(out, "y") {
		t.Errorf("comment body survived:\n%q", out)
	}
}

func TestProcessSelfClosesVoidTags(t *testing.T) {
	got := Process("Line <br> break <hr> rule\n")
	want := "Line <br /> break <hr /> rule\n"
	if got != want {
		t.Errorf("Process() = %q, want %q", got, want)
	}
}

func TestProcessRemovesBadges(t *testing.T) {
	got := Process("![Badge](https://img.shields.io/badge/test-blue) text\n")
	if strings.Contains(got, "shields.io") || strings.Contains(got, "Badge") {
		t.Errorf("badge survived: %q", got)
	}
	if !strings.Contains(got, "text") {
		t.Errorf("trailing text lost: %q", got)
	}
}

func TestProcessKeepsNormalImages(t *testing.T) {
	input := "![Diagram](figures/overview.png)\n"
	if got := Process(input); got != input {
		t.Errorf("Process() = %q, want %q", got, input)
	}
}

func TestProcessCodeBlockUntouched(t *testing.T) {
	input := "```\n![Badge](https://img.shields.io/x)\n<br>\n<!-- kept -->\n```\n"
	if got := Process(input); got != input {
		t.Errorf("fenced content must pass through:\n%q", got)
	}
}

func TestProcessInlineCodeUntouched(t *testing.T) {
	input := "use `<br>` here\n"
	if got := Process(input); got != input {
		t.Errorf("Process() = %q, want %q", got, input)
	}
}

func TestProcessStyleAttribute(t *testing.T) {
	got := Process(`<div style="text-align:center;color:red;">` + "\n")
	want := `<div style={{textAlign: "center", color: "red"}}>` + "\n"
	if got != want {
		t.Errorf("Process() = %q, want %q", got, want)
	}
}

func TestProcessEmptyStyleRemoved(t *testing.T) {
	got := Process(`<p style="">text</p>` + "\n")
	if strings.Contains(got, "style") {
		t.Errorf("empty style attribute survived: %q", got)
	}
}

func TestProcessTableRowFixes(t *testing.T) {
	got := Process("<table>\n<tr><td>x</td></tr>\n<tr>\n</table>\n")
	if strings.Contains(got, "<tr>\n</table>") {
		t.Errorf("dangling row before table close survived:\n%s", got)
	}
	if !strings.Contains(got, "<td>x</td>") {
		t.Errorf("real row lost:\n%s", got)
	}
}

func TestProcessPlainTextUnchanged(t *testing.T) {
	input := "# Heading\n\nA paragraph with *emphasis*.\n"
	if got := Process(input); got != input {
		t.Errorf("Process() = %q, want %q", got, input)
	}
}

package mdx

import (
	"strings"
	"testing"
)

func TestWrapAccordionsSingle(t *testing.T) {
	input := "<Accordion title=\"A\">\nbody\n</Accordion>"
	want := "<Accordions>\n<Accordion title=\"A\">\nbody\n</Accordion>\n</Accordions>"
	if got := WrapAccordions(input); got != want {
		t.Errorf("WrapAccordions() =\n%q\nwant\n%q", got, want)
	}
}

func TestWrapAccordionsAdjacentShareContainer(t *testing.T) {
	input := strings.Join([]string{
		"<Accordion title=\"A\">",
		"first",
		"</Accordion>",
		"",
		"<Accordion title=\"B\">",
		"second",
		"</Accordion>",
	}, "\n")
	got := WrapAccordions(input)

	if n := strings.Count(got, "<Accordions>"); n != 1 {
		t.Errorf("got %d container opens, want 1:\n%s", n, got)
	}
	if n := strings.Count(got, "</Accordions>"); n != 1 {
		t.Errorf("got %d container closes, want 1:\n%s", n, got)
	}
}

func TestWrapAccordionsSeparateRuns(t *testing.T) {
	input := strings.Join([]string{
		"<Accordion title=\"A\">",
		"first",
		"</Accordion>",
		"",
		"Intervening paragraph.",
		"",
		"<Accordion title=\"B\">",
		"second",
		"</Accordion>",
	}, "\n")
	got := WrapAccordions(input)

	if n := strings.Count(got, "<Accordions>"); n != 2 {
		t.Errorf("got %d container opens, want 2:\n%s", n, got)
	}
	open := strings.Index(got, "<Accordions>")
	para := strings.Index(got, "Intervening")
	if para < open {
		t.Errorf("paragraph must sit outside the first container:\n%s", got)
	}
}

func TestWrapAccordionsNested(t *testing.T) {
	input := strings.Join([]string{
		"<Accordion title=\"outer\">",
		"<Accordion title=\"inner\">",
		"deep",
		"</Accordion>",
		"</Accordion>",
	}, "\n")
	got := WrapAccordions(input)

	if n := strings.Count(got, "<Accordions>"); n != 1 {
		t.Errorf("nested accordions must share one container, got %d:\n%s", n, got)
	}
	if !strings.HasPrefix(got, "<Accordions>") || !strings.HasSuffix(got, "</Accordions>") {
		t.Errorf("container must enclose the whole nest:\n%s", got)
	}
}

func TestWrapAccordionsUnclosedAtEOF(t *testing.T) {
	input := "<Accordion title=\"A\">\ndangling"
	got := WrapAccordions(input)

	if !strings.Contains(got, "</Accordions>") {
		t.Errorf("run ending at EOF still needs its container close:\n%s", got)
	}
}

func TestWrapAccordionsIdempotent(t *testing.T) {
	input := strings.Join([]string{
		"intro",
		"",
		"<Accordion title=\"A\">",
		"first",
		"</Accordion>",
		"",
		"<Accordion title=\"B\">",
		"second",
		"</Accordion>",
		"",
		"outro",
	}, "\n")
	once := WrapAccordions(input)
	twice := WrapAccordions(once)
	if once != twice {
		t.Errorf("second pass changed output:\nonce:\n%s\ntwice:\n%s", once, twice)
	}
}

func TestWrapAccordionsNoAccordions(t *testing.T) {
	input := "# Title\n\nJust text.\n"
	if got := WrapAccordions(input); got != input {
		t.Errorf("WrapAccordions() = %q, want unchanged", got)
	}
}

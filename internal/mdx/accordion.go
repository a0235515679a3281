package mdx

import "strings"

const (
	accordionOpen  = "<Accordion "
	accordionClose = "</Accordion>"
	containerOpen  = "<Accordions>"
	containerClose = "</Accordions>"
)

// WrapAccordions wraps each run of consecutive Accordion blocks in a single
// Accordions container. Runs separated only by blank lines are one run.
// Nesting is handled by depth counting; accordions already sitting inside a
// container are left alone so a second pass is a no-op.
func WrapAccordions(content string) string {
	lines := strings.Split(content, "\n")
	var result []string
	var buffer []string
	inSequence := false
	inContainer := false
	depth := 0

	flush := func() {
		result = append(result, containerOpen)
		result = append(result, buffer...)
		result = append(result, containerClose)
		buffer = nil
		inSequence = false
	}

	for i, line := range lines {
		switch {
		case inContainer:
			if strings.Contains(line, containerClose) {
				inContainer = false
			}
			result = append(result, line)

		case strings.Contains(line, containerOpen):
			inContainer = true
			result = append(result, line)

		case strings.Contains(line, accordionOpen) && !inSequence:
			inSequence = true
			buffer = append(buffer, line)
			depth = 1

		case inSequence:
			buffer = append(buffer, line)
			if strings.Contains(line, accordionOpen) {
				depth++
			}
			if strings.Contains(line, accordionClose) {
				depth--
			}
			if depth == 0 && !nextOpensAccordion(lines, i+1) {
				flush()
			}

		default:
			result = append(result, line)
		}
	}

	// Input ending mid-run still gets its container.
	if len(buffer) > 0 {
		flush()
	}

	return strings.Join(result, "\n")
}

// nextOpensAccordion looks past blank lines for the next content line and
// reports whether it starts another accordion.
func nextOpensAccordion(lines []string, from int) bool {
	for _, line := range lines[from:] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		return strings.Contains(trimmed, accordionOpen)
	}
	return false
}

package mdx

import (
	"regexp"
	"strings"
)

// EventKind tags one unit of scanned document structure.
type EventKind int

const (
	// EventText is any content the pipeline passes through untouched.
	EventText EventKind = iota
	// EventCodeBlockStart and EventCodeBlockEnd are fence delimiter lines.
	EventCodeBlockStart
	EventCodeBlockEnd
	// EventInlineCode is a backtick span, delimiters included.
	EventInlineCode
	// EventImageStart opens an inline image; URL holds its destination.
	// The alt text follows as EventText, then EventImageEnd closes it.
	EventImageStart
	EventImageEnd
	// EventHTML is a raw HTML fragment: a single tag, a comment (possibly
	// spanning lines), or a contiguous block of HTML lines.
	EventHTML
)

// Event carries the exact source text of one scanned unit. Serialization is
// the concatenation of kept events' Raw fields, so untouched input round-trips
// byte for byte.
type Event struct {
	Kind EventKind
	Raw  string
	URL  string
}

var (
	imageRe   = regexp.MustCompile(`^!\[([^\]]*)\]\(([^)]*)\)`)
	htmlTagRe = regexp.MustCompile(`^</?[a-zA-Z][^<>\n]*>`)
	// A line opening an HTML block: a tag or comment at the start of the
	// trimmed line.
	htmlBlockStartRe = regexp.MustCompile(`^<(!--|/?[a-zA-Z])`)
)

type scanner struct {
	lines []string
	pos   int
}

// Scan tokenizes a document into the event stream the rewrite pass folds
// over. Fenced code block contents are emitted as plain text lines between
// the fence delimiter events; outside fences, lines are split into text,
// inline code, image, and HTML events.
func Scan(content string) []Event {
	s := &scanner{lines: strings.SplitAfter(content, "\n")}
	var events []Event
	inFence := false

	for s.pos < len(s.lines) {
		line := s.lines[s.pos]
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") {
			kind := EventCodeBlockStart
			if inFence {
				kind = EventCodeBlockEnd
			}
			inFence = !inFence
			events = append(events, Event{Kind: kind, Raw: line})
			s.pos++
			continue
		}

		if inFence {
			events = append(events, Event{Kind: EventText, Raw: line})
			s.pos++
			continue
		}

		if htmlBlockStartRe.MatchString(trimmed) {
			events = append(events, s.scanHTMLBlock())
			continue
		}

		events = append(events, s.scanInline(line)...)
		s.pos++
	}

	return events
}

// scanHTMLBlock consumes a run of HTML lines starting at the current line
// and returns them as one event. A block opened by a comment runs to the
// closing marker; any other block runs to the next blank line or fence.
func (s *scanner) scanHTMLBlock() Event {
	first := s.lines[s.pos]
	isComment := strings.HasPrefix(strings.TrimSpace(first), "<!--")

	var raw strings.Builder
	raw.WriteString(first)
	s.pos++

	if isComment {
		if strings.Contains(first, "-->") {
			return Event{Kind: EventHTML, Raw: raw.String()}
		}
		for s.pos < len(s.lines) {
			line := s.lines[s.pos]
			raw.WriteString(line)
			s.pos++
			if strings.Contains(line, "-->") {
				break
			}
		}
		return Event{Kind: EventHTML, Raw: raw.String()}
	}

	for s.pos < len(s.lines) {
		line := s.lines[s.pos]
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") {
			break
		}
		raw.WriteString(line)
		s.pos++
	}
	return Event{Kind: EventHTML, Raw: raw.String()}
}

// scanInline splits one non-HTML line into text, code span, image, and
// inline HTML events. Comments without a closing marker on the line are
// consumed across lines; a comment with no closing marker at all degrades to
// literal text.
func (s *scanner) scanInline(line string) []Event {
	var events []Event
	text := func(raw string) {
		if raw != "" {
			events = append(events, Event{Kind: EventText, Raw: raw})
		}
	}

	i := 0
	start := 0
	for i < len(line) {
		switch line[i] {
		case '`':
			if span := codeSpanAt(line[i:]); span != "" {
				text(line[start:i])
				events = append(events, Event{Kind: EventInlineCode, Raw: span})
				i += len(span)
				start = i
				continue
			}
		case '!':
			if m := imageRe.FindStringSubmatch(line[i:]); m != nil {
				text(line[start:i])
				alt := m[1]
				events = append(events, Event{Kind: EventImageStart, Raw: "![", URL: m[2]})
				if alt != "" {
					events = append(events, Event{Kind: EventText, Raw: alt})
				}
				events = append(events, Event{Kind: EventImageEnd, Raw: "](" + m[2] + ")"})
				i += len(m[0])
				start = i
				continue
			}
		case '<':
			if strings.HasPrefix(line[i:], "<!--") {
				if end := strings.Index(line[i:], "-->"); end >= 0 {
					text(line[start:i])
					events = append(events, Event{Kind: EventHTML, Raw: line[i : i+end+3]})
					i += end + 3
					start = i
					continue
				}
				if raw, ok := s.consumeComment(line[i:]); ok {
					text(line[start:i])
					events = append(events, Event{Kind: EventHTML, Raw: raw})
					return events
				}
				// No closing marker anywhere: literal text.
			} else if m := htmlTagRe.FindString(line[i:]); m != "" {
				text(line[start:i])
				events = append(events, Event{Kind: EventHTML, Raw: m})
				i += len(m)
				start = i
				continue
			}
		}
		i++
	}
	text(line[start:])
	return events
}

// consumeComment extends an unclosed inline comment across the following
// lines. The opener's line remainder is passed in; subsequent lines are
// consumed through the closing marker, and whatever follows it on that line
// is left for normal scanning. Returns false when the document ends first,
// leaving the scanner position untouched.
func (s *scanner) consumeComment(opener string) (string, bool) {
	for end := s.pos + 1; end < len(s.lines); end++ {
		idx := strings.Index(s.lines[end], "-->")
		if idx < 0 {
			continue
		}
		raw := opener + strings.Join(s.lines[s.pos+1:end], "") + s.lines[end][:idx+3]
		s.lines[end] = s.lines[end][idx+3:]
		s.pos = end - 1 // caller's loop advances onto the remainder
		return raw, true
	}
	return "", false
}

// codeSpanAt matches a backtick code span at the start of rest, returning
// the full span including delimiters, or "" when the opening run is never
// closed on this line.
func codeSpanAt(rest string) string {
	open := 0
	for open < len(rest) && rest[open] == '`' {
		open++
	}
	i := open
	for i < len(rest) {
		if rest[i] != '`' {
			i++
			continue
		}
		run := 0
		for i+run < len(rest) && rest[i+run] == '`' {
			run++
		}
		if run == open {
			return rest[:i+run]
		}
		i += run
	}
	return ""
}

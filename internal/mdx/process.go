package mdx

import "strings"

// badgeHost marks status-badge images that are stripped from generated pages.
const badgeHost = "shields.io"

// State is the per-document context threaded through the event fold. One
// instance lives for exactly one pass and is never shared.
type State struct {
	InCodeBlock       bool
	InImage           bool
	CurrentImageURL   string
	SkipUntilImageEnd bool
}

// processEvent is the transition function of the rewrite state machine: it
// updates state and returns the event to emit, or false to suppress it.
func processEvent(state *State, ev Event) (Event, bool) {
	switch ev.Kind {
	case EventCodeBlockStart:
		state.InCodeBlock = true
		return ev, true

	case EventCodeBlockEnd:
		state.InCodeBlock = false
		return ev, true

	case EventImageStart:
		state.InImage = true
		state.CurrentImageURL = ev.URL
		if !state.InCodeBlock && strings.Contains(ev.URL, badgeHost) {
			// Drop the badge and everything up to its end event.
			state.SkipUntilImageEnd = true
			return Event{}, false
		}
		state.SkipUntilImageEnd = false
		return ev, true

	case EventImageEnd:
		state.InImage = false
		if state.SkipUntilImageEnd {
			state.SkipUntilImageEnd = false
			return Event{}, false
		}
		return ev, true

	case EventText, EventInlineCode:
		if state.SkipUntilImageEnd {
			// Badge alt text goes with the badge.
			return Event{}, false
		}
		return ev, true

	case EventHTML:
		if state.SkipUntilImageEnd {
			return Event{}, false
		}
		if strings.HasPrefix(strings.TrimSpace(ev.Raw), "<!--") {
			return Event{}, false
		}
		if state.InCodeBlock {
			return ev, true
		}
		ev.Raw = rewriteHTML(ev.Raw)
		return ev, true
	}

	return ev, true
}

// Process runs the structure-aware rewrite pass: scan the document into
// events, fold the state machine over them, and serialize the survivors back
// to text.
func Process(content string) string {
	state := &State{}
	var out strings.Builder
	out.Grow(len(content))

	for _, ev := range Scan(content) {
		emitted, keep := processEvent(state, ev)
		if keep {
			out.WriteString(emitted.Raw)
		}
	}

	return out.String()
}

package event

import (
	"sync"

	"github.com/hyprwire/hyprwire/internal/logger"
)

// match is a successful classification: the specific grammar entry a line
// belongs to, plus its named captures.
type match struct {
	kind EventKind
	caps map[string]string
}

// classify runs line against the whole grammar and applies the exclusivity
// policy:
//
//   - no entry matched: the line is not protocol at all, fatal;
//   - only the catch-all matched: an event this library does not model,
//     logged once per name and skipped via errUnknownEvent;
//   - one specific entry matched (the catch-all may match alongside it):
//     that entry wins;
//   - several specific entries matched: grammar bug, fatal.
func classify(line string) (match, error) {
	return classifyWith(grammar, line)
}

func classifyWith(patterns []pattern, line string) (match, error) {
	var (
		matches  []match
		catchAll *match
	)
	for _, p := range patterns {
		caps, ok := p.captures(line)
		if !ok {
			continue
		}
		m := match{kind: p.kind, caps: caps}
		if p.kind == KindUnknown {
			catchAll = &m
			continue
		}
		matches = append(matches, m)
	}

	switch len(matches) {
	case 0:
		if catchAll == nil {
			return match{}, &MalformedLineError{Line: line}
		}
		warnUnknownEvent(catchAll.caps["name"])
		return match{}, errUnknownEvent
	case 1:
		return matches[0], nil
	default:
		kinds := make([]EventKind, len(matches))
		for i, m := range matches {
			kinds[i] = m.kind
		}
		return match{}, &AmbiguousMatchError{Line: line, Kinds: kinds}
	}
}

// unknownEvents throttles the diagnostic for unmodeled events to once per
// distinct event name for the lifetime of the process. It is the only
// process-wide state in the package and has no effect on decoding.
var unknownEvents = struct {
	mu   sync.Mutex
	seen map[string]struct{}
}{seen: make(map[string]struct{})}

func warnUnknownEvent(name string) {
	unknownEvents.mu.Lock()
	_, seen := unknownEvents.seen[name]
	unknownEvents.seen[name] = struct{}{}
	unknownEvents.mu.Unlock()

	if !seen {
		logger.Warnf("ignoring unrecognized compositor event %q (reported once)", name)
	}
}

// ResetUnknownDiagnostics clears the once-per-name diagnostic throttle so
// tests can observe it from a known state.
func ResetUnknownDiagnostics() {
	unknownEvents.mu.Lock()
	unknownEvents.seen = make(map[string]struct{})
	unknownEvents.mu.Unlock()
}

package event

import "strings"

// Parse decodes a batch of newline-separated wire lines into typed events,
// independent of any transport. It performs no focus-event merging: the two
// activewindow sub-events come back as decoded, which keeps Parse pure and
// repeatable. Lines carrying an event name this library does not model are
// skipped (with a once-per-name diagnostic); any other classification or
// decode failure fails the whole batch.
func Parse(data string) ([]Event, error) {
	trimmed := strings.TrimSpace(data)
	if trimmed == "" {
		return nil, nil
	}

	lines := strings.Split(trimmed, "\n")
	events := make([]Event, 0, len(lines))
	for _, line := range lines {
		ev, err := parseLine(strings.TrimSpace(line))
		if err == errUnknownEvent {
			continue
		}
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}

func parseLine(line string) (Event, error) {
	m, err := classify(line)
	if err != nil {
		return nil, err
	}
	return decode(m)
}

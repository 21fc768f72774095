package event

// The compositor splits one logical focus change into two independently
// timed wire messages: the legacy activewindow (class+title) and the newer
// activewindowv2 (address). Reassembler pairs them back up so consumers see
// a single ActiveWindowChanged with all three fields, no matter how the two
// halves interleave.

type slotState uint8

const (
	slotUnset slotState = iota
	slotSet
	slotNone // the sub-event explicitly reported "no focused window"
)

// pendingFocus is one outstanding focus change waiting for its other half.
// The class/title pair always resolves together, so it shares one slot.
type pendingFocus struct {
	titleState slotState
	class      string
	title      string

	addrState slotState
	address   Address
}

func (p *pendingFocus) complete() (Event, bool) {
	switch {
	case p.titleState == slotSet && p.addrState == slotSet:
		return ActiveWindowChanged{Window: &ActiveWindow{
			Class:   p.class,
			Title:   p.title,
			Address: p.address,
		}}, true
	case p.titleState == slotNone && p.addrState == slotNone:
		return ActiveWindowChanged{}, true
	default:
		// Unset slots, or a none/value mix, keep the record pending. A
		// conflicting mix never errors; it just stays outstanding.
		return nil, false
	}
}

// Reassembler holds the outstanding focus records for one event stream.
// Normally zero or one record is pending, but rapid focus switches can
// overlap, so records are kept in arrival order and resolved independently.
// The zero value is ready to use.
type Reassembler struct {
	pending []*pendingFocus
}

// Push feeds one decoded event through the merge stage and returns the
// events to deliver, in order. Focus sub-events are absorbed until their
// record completes; every other event passes through unchanged.
func (r *Reassembler) Push(ev Event) []Event {
	switch ev := ev.(type) {
	case ActiveWindowV1:
		rec := r.take(func(p *pendingFocus) bool { return p.titleState == slotUnset })
		if ev.Window != nil {
			rec.titleState = slotSet
			rec.class = ev.Window.Class
			rec.title = ev.Window.Title
		} else {
			rec.titleState = slotNone
		}
		return r.sweep()

	case ActiveWindowV2:
		rec := r.take(func(p *pendingFocus) bool { return p.addrState == slotUnset })
		if ev.Address != nil {
			rec.addrState = slotSet
			rec.address = *ev.Address
		} else {
			rec.addrState = slotNone
		}
		return r.sweep()

	default:
		return []Event{ev}
	}
}

// PendingCount reports how many focus records are still waiting for their
// other half. A count that never drains points at a peer that stopped
// sending one of the two sub-events.
func (r *Reassembler) PendingCount() int {
	return len(r.pending)
}

// take returns the oldest pending record the arriving sub-event may fill,
// appending a fresh one when every existing record already has that slot.
// Filling only one record per arrival keeps overlapping focus changes from
// cross-wiring each other's halves.
func (r *Reassembler) take(unfilled func(*pendingFocus) bool) *pendingFocus {
	for _, p := range r.pending {
		if unfilled(p) {
			return p
		}
	}
	p := &pendingFocus{}
	r.pending = append(r.pending, p)
	return p
}

// sweep emits and removes every record that became complete, preserving
// arrival order among the rest.
func (r *Reassembler) sweep() []Event {
	var out []Event
	remaining := r.pending[:0]
	for _, p := range r.pending {
		if ev, done := p.complete(); done {
			out = append(out, ev)
		} else {
			remaining = append(remaining, p)
		}
	}
	for i := len(remaining); i < len(r.pending); i++ {
		r.pending[i] = nil
	}
	r.pending = remaining
	return out
}

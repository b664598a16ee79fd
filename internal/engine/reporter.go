package engine

import "github.com/piwi3910/BlockFit/internal/model"

// Reporter receives search events. Implementations must return promptly:
// the search is synchronous and waits on every call.
type Reporter interface {
	// Placed is called after a rectangle is committed to the board.
	Placed(p model.Placement)
	// Removed is called after the same rectangle is undone.
	Removed(p model.Placement)
	// Finished is called once per Solve with the terminal outcome.
	Finished(outcome model.Outcome, calls int)
}

// NopReporter discards every event.
type NopReporter struct{}

func (NopReporter) Placed(model.Placement)      {}
func (NopReporter) Removed(model.Placement)     {}
func (NopReporter) Finished(model.Outcome, int) {}

// Tee fans events out to every reporter in order.
func Tee(reporters ...Reporter) Reporter {
	return teeReporter(reporters)
}

type teeReporter []Reporter

func (t teeReporter) Placed(p model.Placement) {
	for _, r := range t {
		r.Placed(p)
	}
}

func (t teeReporter) Removed(p model.Placement) {
	for _, r := range t {
		r.Removed(p)
	}
}

func (t teeReporter) Finished(outcome model.Outcome, calls int) {
	for _, r := range t {
		r.Finished(outcome, calls)
	}
}

// EventKind identifies a recorded event.
type EventKind int

const (
	EventPlaced EventKind = iota
	EventRemoved
	EventFinished
)

func (k EventKind) String() string {
	switch k {
	case EventPlaced:
		return "placed"
	case EventRemoved:
		return "removed"
	default:
		return "finished"
	}
}

// Event is one recorded search event.
type Event struct {
	Kind      EventKind
	Placement model.Placement // zero for EventFinished
	Outcome   model.Outcome   // set for EventFinished
	Calls     int             // set for EventFinished
}

// Recorder keeps every event in order and tracks the stack of rectangles
// currently placed. A removal that does not match the most recent placement
// panics, as does any event after Finished.
type Recorder struct {
	Events   []Event
	stack    []model.Placement
	finished bool
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Placed(p model.Placement) {
	r.checkOpen()
	for _, q := range r.stack {
		if p.Overlaps(q) {
			logicViolation("%s overlaps already placed %s", p, q)
		}
	}
	r.stack = append(r.stack, p)
	r.Events = append(r.Events, Event{Kind: EventPlaced, Placement: p})
}

func (r *Recorder) Removed(p model.Placement) {
	r.checkOpen()
	if len(r.stack) == 0 {
		logicViolation("there is no rectangle that can be removed")
	}
	last := r.stack[len(r.stack)-1]
	if !last.Same(p) {
		logicViolation("rectangle to be removed %s doesn't match last placed %s", p, last)
	}
	r.stack = r.stack[:len(r.stack)-1]
	r.Events = append(r.Events, Event{Kind: EventRemoved, Placement: p})
}

func (r *Recorder) Finished(outcome model.Outcome, calls int) {
	r.checkOpen()
	r.finished = true
	r.Events = append(r.Events, Event{Kind: EventFinished, Outcome: outcome, Calls: calls})
}

// Stack returns a copy of the placements currently on the board.
func (r *Recorder) Stack() []model.Placement {
	out := make([]model.Placement, len(r.stack))
	copy(out, r.stack)
	return out
}

// Count returns the number of recorded events of the given kind.
func (r *Recorder) Count(kind EventKind) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Last returns the final event, if any.
func (r *Recorder) Last() (Event, bool) {
	if len(r.Events) == 0 {
		return Event{}, false
	}
	return r.Events[len(r.Events)-1], true
}

func (r *Recorder) checkOpen() {
	if r.finished {
		logicViolation("event received after the search finished")
	}
}

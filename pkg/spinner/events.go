package spinner

// EventKind identifies a lifecycle transition.
type EventKind int

const (
	Started EventKind = iota + 1
	Paused
	Resumed
	Restarted
	Stopped
)

func (k EventKind) String() string {
	switch k {
	case Started:
		return "started"
	case Paused:
		return "paused"
	case Resumed:
		return "resumed"
	case Restarted:
		return "restarted"
	case Stopped:
		return "stopped"
	}

	return "unknown"
}

// Event is emitted on the bus after each lifecycle transition. Text is the
// message at the time of the transition, or the final text for Stopped.
type Event struct {
	Spinner *Spinner
	Kind    EventKind
	Text    string
}

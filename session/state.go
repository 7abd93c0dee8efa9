package session

// State is the lifecycle state of the avatar session.
type State int

// Session states
const (
	Idle State = iota
	Connecting
	Active
	Reconnecting
	Closed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Connecting:
		return "connecting"
	case Active:
		return "active"
	case Reconnecting:
		return "reconnecting"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}

// running reports whether a session is in progress.
func (s State) running() bool {
	return s == Connecting || s == Active || s == Reconnecting
}

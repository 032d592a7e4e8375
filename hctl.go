package alsawatch

// ElementInfo describes one control element as reported by the card's
// control interface enumeration.
type ElementInfo struct {
	NumID     uint
	Interface Interface
	Device    uint
	Subdevice uint
	Name      string
	Type      ControlType
	Count     int
}

// HControl is the control-plane surface the listener needs from a card: a
// one-shot enumeration of its elements, scalar reads, and a change
// notification primitive. The production implementation wraps the ALSA hctl
// API; tests substitute in-memory fakes.
type HControl interface {
	// Elements enumerates all control elements of the card.
	Elements() ([]ElementInfo, error)

	// ReadValue reads the current value of the element identified by numid,
	// returning the first value for multi-value elements.
	ReadValue(numid uint) (int64, error)

	// Wait blocks until the hardware signals a control change or the timeout
	// elapses. Returns true when a change is pending, false on timeout.
	Wait(timeoutMs int) (bool, error)

	// Drain acknowledges all pending change notifications, returning the
	// number of events consumed.
	Drain() (int, error)

	// Close releases the control handle. Safe to call more than once.
	Close() error
}

package alsawatch

import "fmt"

// ControlType represents the type of an ALSA control element
type ControlType int

const (
	ControlTypeNone ControlType = iota
	ControlTypeBoolean
	ControlTypeInteger
	ControlTypeEnumerated
	ControlTypeBytes
	ControlTypeIEC958
	ControlTypeInteger64
)

func (t ControlType) String() string {
	switch t {
	case ControlTypeBoolean:
		return "Boolean"
	case ControlTypeInteger:
		return "Integer"
	case ControlTypeEnumerated:
		return "Enumerated"
	case ControlTypeBytes:
		return "Bytes"
	case ControlTypeIEC958:
		return "IEC958"
	case ControlTypeInteger64:
		return "Integer64"
	default:
		return "None"
	}
}

// Interface identifies the logical ALSA interface a control element belongs to.
// The values match the kernel's snd_ctl_elem_iface_t numbering.
type Interface int

const (
	InterfaceCard Interface = iota
	InterfaceHwdep
	InterfaceMixer
	InterfacePCM
	InterfaceRawmidi
	InterfaceTimer
	InterfaceSequencer
)

func (i Interface) String() string {
	switch i {
	case InterfaceCard:
		return "card"
	case InterfaceHwdep:
		return "hwdep"
	case InterfaceMixer:
		return "mixer"
	case InterfacePCM:
		return "pcm"
	case InterfaceRawmidi:
		return "rawmidi"
	case InterfaceTimer:
		return "timer"
	case InterfaceSequencer:
		return "sequencer"
	default:
		return "unknown"
	}
}

// WaveFormat describes the stream structure currently negotiated by the
// capture device. Fields the device does not expose stay at their zero
// values: gadget-mode devices report only a rate, so SampleFormat remains
// FormatUnknown and Channels remains 0. WaveFormats compare with ==.
type WaveFormat struct {
	SampleFormat SampleFormat
	Channels     uint
	SampleRate   uint
}

func (w WaveFormat) String() string {
	return fmt.Sprintf("format=%s channels=%d rate=%d", w.SampleFormat, w.Channels, w.SampleRate)
}

// EventKind distinguishes the two device events.
type EventKind int

const (
	EventStopped EventKind = iota
	EventStarted
)

func (k EventKind) String() string {
	if k == EventStarted {
		return "started"
	}
	return "stopped"
}

// DeviceEvent is delivered to the listener callback when the capture device
// changes state. Format is populated for EventStarted only.
type DeviceEvent struct {
	Kind   EventKind
	Format WaveFormat
}

func (e DeviceEvent) String() string {
	if e.Kind == EventStarted {
		return fmt.Sprintf("started (%s)", e.Format)
	}
	return "stopped"
}

// Control is a resolved handle to one ALSA control element tracked by the
// listener. Handles are resolved once at construction and stay valid for the
// listener's lifetime.
type Control struct {
	NumID     uint
	Name      string
	Interface Interface
	Device    uint
	Subdevice uint
	Type      ControlType
	Count     int

	// maps the raw element value to a canonical value; a false return means
	// the raw value has no canonical equivalent
	transform func(raw int64) (int64, bool)
}

// FullID returns a unique identifier string for the control
func (ctl *Control) FullID() string {
	return fmt.Sprintf("%s:%d.%d/%s", ctl.Interface, ctl.Device, ctl.Subdevice, ctl.Name)
}

// deviceState is one observation of the capture endpoint.
type deviceState struct {
	active bool
	format WaveFormat
}

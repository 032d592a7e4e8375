package alsawatch

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// DefaultDebounce is the delay applied after a hardware change notification
// before reading the device state, coalescing bursts of notifications from a
// single physical event into one observation.
const DefaultDebounce = 50 * time.Millisecond

// pollTimeoutMs bounds each wait on the control descriptors so the poll
// goroutine re-checks the stop signal even when the hardware stays silent.
const pollTimeoutMs = 250

// ListenerConfig configures a Listener.
type ListenerConfig struct {
	// Device identifies the card to watch, as "card[,device[,subdevice]]".
	// The card may be an index, a card id, or a full ALSA name; device and
	// subdevice default to 0.
	Device string

	// Debounce is the delay between a change notification and the state
	// read. Zero means DefaultDebounce.
	Debounce time.Duration

	// Logger receives structured diagnostics. Nil disables logging.
	Logger *zerolog.Logger

	// Control overrides the hardware control layer. Nil opens the ALSA hctl
	// interface for Device.
	Control HControl
}

// Listener watches a capture device's control elements and reports activity
// and format transitions as discrete events. It owns its control handle and
// one background poll goroutine; Close releases both.
type Listener struct {
	hctl     HControl
	debounce time.Duration
	log      zerolog.Logger

	ctlActive     *Control
	ctlChannels   *Control
	ctlFormat     *Control
	ctlRate       *Control
	ctlGadgetRate *Control

	// serializes hardware access between the poll goroutine and the
	// on-demand query methods
	ioMu sync.Mutex

	mu       sync.Mutex
	onChange func(DeviceEvent)
	running  bool
	closed   bool
	stopCh   chan struct{}
	doneCh   chan struct{}
	state    deviceState
}

// NewListener opens the device's control interface and resolves the tracked
// controls. Opening the control interface is the only fatal error path:
// controls the hardware does not expose resolve to absent handles, degrading
// the corresponding fields instead of failing construction.
func NewListener(cfg ListenerConfig) (*Listener, error) {
	addr, err := parseDeviceAddress(cfg.Device)
	if err != nil {
		return nil, err
	}

	l := &Listener{
		hctl:     cfg.Control,
		debounce: cfg.Debounce,
	}
	if l.debounce <= 0 {
		l.debounce = DefaultDebounce
	}
	if cfg.Logger != nil {
		l.log = *cfg.Logger
	} else {
		l.log = zerolog.Nop()
	}

	if l.hctl == nil {
		l.hctl, err = OpenHControl(addr.card)
		if err != nil {
			return nil, err
		}
	}

	elements, err := l.hctl.Elements()
	if err != nil {
		l.hctl.Close()
		return nil, fmt.Errorf("enumerate controls of '%s': %w", cfg.Device, err)
	}

	l.ctlActive = l.resolve(elements, loopbackActiveControl, InterfacePCM, addr, nil)
	l.ctlChannels = l.resolve(elements, loopbackChannelsControl, InterfacePCM, addr, nil)
	l.ctlFormat = l.resolve(elements, loopbackFormatControl, InterfacePCM, addr, sampleFormatTransform)
	l.ctlRate = l.resolve(elements, loopbackRateControl, InterfacePCM, addr, nil)
	l.ctlGadgetRate = l.resolve(elements, gadgetRateControl, InterfacePCM, addr, nil)

	// seed the stored state with one synchronous read so the first poll
	// cycle diffs against reality rather than a zero state
	st, err := l.readState()
	if err != nil {
		l.log.Warn().Err(err).Msg("initial state read failed, assuming inactive")
		st = deviceState{}
	}
	l.state = st

	return l, nil
}

func (l *Listener) resolve(elements []ElementInfo, name string, iface Interface, addr deviceAddress, transform func(int64) (int64, bool)) *Control {
	ctl := findControl(elements, name, iface, addr, transform)
	if ctl == nil {
		l.log.Debug().Str("control", name).Msg("control not present on device")
		return nil
	}
	l.log.Debug().Str("control", name).Uint("numid", ctl.NumID).Msg("resolved control")
	return ctl
}

// SetOnChange registers the callback invoked for each device event. There is
// a single callback slot: a later registration replaces the previous one. The
// callback runs synchronously on the poll goroutine, so it gates delivery of
// subsequent events and must not block indefinitely.
func (l *Listener) SetOnChange(fn func(DeviceEvent)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onChange = fn
}

// Start spawns the poll goroutine and returns immediately. It is an error to
// call Start while the listener is already running or after Close.
func (l *Listener) Start() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return fmt.Errorf("listener is closed")
	}
	if l.running {
		return fmt.Errorf("listener already running")
	}

	l.log.Info().Msg("starting listener")
	l.stopCh = make(chan struct{})
	l.doneCh = make(chan struct{})
	l.running = true
	go l.pollLoop(l.stopCh, l.doneCh)

	return nil
}

// Stop ends observation and blocks until the poll goroutine has exited: no
// callback fires after Stop returns. It is idempotent, and calling it before
// Start is a safe no-op.
func (l *Listener) Stop() {
	l.mu.Lock()
	if !l.running {
		l.mu.Unlock()
		return
	}
	l.log.Info().Msg("stopping listener")
	l.running = false
	close(l.stopCh)
	done := l.doneCh
	l.mu.Unlock()

	<-done
}

// Close stops the listener if it is running and releases the control handle.
// The listener is unusable afterwards. Safe to call more than once.
func (l *Listener) Close() error {
	l.Stop()

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return nil
	}
	l.closed = true
	return l.hctl.Close()
}

// pollLoop is the body of the dedicated poll goroutine: wait for a hardware
// change, debounce, acknowledge pending notifications, read a fresh state,
// and dispatch the resulting events in order.
func (l *Listener) pollLoop(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	for {
		select {
		case <-stop:
			return
		default:
		}

		fired, err := l.hctl.Wait(pollTimeoutMs)
		if err != nil {
			l.log.Error().Err(err).Msg("wait for control change failed")
			return
		}
		if !fired {
			continue
		}

		// coalesce notification bursts from a single physical event, but
		// stay responsive to Stop during the delay
		select {
		case <-stop:
			return
		case <-time.After(l.debounce):
		}

		l.ioMu.Lock()
		n, err := l.hctl.Drain()
		l.ioMu.Unlock()
		if err != nil {
			l.log.Warn().Err(err).Msg("drain control events failed")
		} else {
			l.log.Debug().Int("events", n).Msg("drained control events")
		}

		st, err := l.readState()
		if err != nil {
			l.log.Warn().Err(err).Msg("state read failed, keeping previous state")
			continue
		}

		events := diffState(l.state, st)
		l.state = st
		for _, ev := range events {
			l.log.Debug().Stringer("event", ev).Msg("device event")
			l.emit(ev)
		}
	}
}

func (l *Listener) emit(ev DeviceEvent) {
	l.mu.Lock()
	fn := l.onChange
	l.mu.Unlock()
	if fn != nil {
		fn(ev)
	}
}

package alsawatch

// diffState computes the events a state transition produces, in delivery
// order. A format change while the device stays active is reported as a stop
// followed by a restart with the new format, never as an in-place change:
// downstream pipelines reconfigure by tearing down and rebuilding, so a clean
// stop/start pair is the only renegotiation signal they need.
func diffState(prev, cur deviceState) []DeviceEvent {
	switch {
	case !prev.active && cur.active:
		return []DeviceEvent{{Kind: EventStarted, Format: cur.format}}
	case prev.active && !cur.active:
		return []DeviceEvent{{Kind: EventStopped}}
	case prev.active && cur.active && prev.format != cur.format:
		return []DeviceEvent{
			{Kind: EventStopped},
			{Kind: EventStarted, Format: cur.format},
		}
	default:
		return nil
	}
}

package alsawatch

// readState performs one synchronous read pass over the tracked controls and
// assembles the current observation.
//
// Which branch applies is fixed at construction time by whether the gadget
// capture-rate control resolved: gadget-mode devices expose only the
// negotiated rate, so activity is "rate above zero" and channel count and
// sample format stay unknown. Loopback devices expose the full control set,
// so activity comes from the active flag and the format is assembled from the
// rate, channels, and format controls.
func (l *Listener) readState() (deviceState, error) {
	l.ioMu.Lock()
	defer l.ioMu.Unlock()

	if l.ctlGadgetRate != nil {
		rate, ok, err := l.readControl(l.ctlGadgetRate)
		if err != nil {
			return deviceState{}, err
		}
		st := deviceState{active: ok && rate > 0}
		if ok {
			st.format.SampleRate = uint(rate)
		}
		return st, nil
	}

	active, ok, err := l.readControl(l.ctlActive)
	if err != nil {
		return deviceState{}, err
	}
	st := deviceState{active: ok && active != 0}

	rate, ok, err := l.readControl(l.ctlRate)
	if err != nil {
		return deviceState{}, err
	}
	if ok {
		st.format.SampleRate = uint(rate)
	}

	channels, ok, err := l.readControl(l.ctlChannels)
	if err != nil {
		return deviceState{}, err
	}
	if ok {
		st.format.Channels = uint(channels)
	}

	format, ok, err := l.readControl(l.ctlFormat)
	if err != nil {
		return deviceState{}, err
	}
	if ok {
		st.format.SampleFormat = SampleFormat(format)
	}

	return st, nil
}

// IsActive reads whether the capture device currently has a live stream. It
// is a fresh synchronous read, independent of the background loop, and is
// usable before Start.
func (l *Listener) IsActive() (bool, error) {
	st, err := l.readState()
	return st.active, err
}

// ReadWaveFormat reads the wave format currently negotiated by the capture
// device. The result is only meaningful while the device is active. Like
// IsActive, this is a fresh synchronous read, usable before Start.
func (l *Listener) ReadWaveFormat() (WaveFormat, error) {
	st, err := l.readState()
	return st.format, err
}

package alsawatch

// readControl reads the current scalar value of a resolved control. An absent
// control (nil handle) yields no value. When the control carries a value
// transform, the raw value is mapped through it; a raw value the transform
// does not recognize also yields no value rather than an error, so an exotic
// hardware code degrades that single field instead of the whole read.
func (l *Listener) readControl(ctl *Control) (int64, bool, error) {
	if ctl == nil {
		return 0, false, nil
	}

	raw, err := l.hctl.ReadValue(ctl.NumID)
	if err != nil {
		return 0, false, err
	}
	l.log.Debug().Str("control", ctl.Name).Int64("raw", raw).Msg("read control value")

	if ctl.transform != nil {
		mapped, ok := ctl.transform(raw)
		return mapped, ok, nil
	}
	return raw, true, nil
}

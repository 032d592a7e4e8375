package alsawatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiffState(t *testing.T) {
	s16 := WaveFormat{SampleFormat: FormatS16LE, Channels: 2, SampleRate: 44100}
	s16Fast := WaveFormat{SampleFormat: FormatS16LE, Channels: 2, SampleRate: 48000}
	s32 := WaveFormat{SampleFormat: FormatS32LE, Channels: 2, SampleRate: 44100}

	tests := []struct {
		name string
		prev deviceState
		cur  deviceState
		want []DeviceEvent
	}{
		{
			name: "inactive to inactive",
			prev: deviceState{active: false},
			cur:  deviceState{active: false},
			want: nil,
		},
		{
			name: "inactive to inactive ignores format",
			prev: deviceState{active: false, format: s16},
			cur:  deviceState{active: false, format: s32},
			want: nil,
		},
		{
			name: "inactive to active",
			prev: deviceState{active: false},
			cur:  deviceState{active: true, format: s16},
			want: []DeviceEvent{{Kind: EventStarted, Format: s16}},
		},
		{
			name: "active to inactive",
			prev: deviceState{active: true, format: s16},
			cur:  deviceState{active: false},
			want: []DeviceEvent{{Kind: EventStopped}},
		},
		{
			name: "active with unchanged format",
			prev: deviceState{active: true, format: s16},
			cur:  deviceState{active: true, format: s16},
			want: nil,
		},
		{
			name: "rate change while active",
			prev: deviceState{active: true, format: s16},
			cur:  deviceState{active: true, format: s16Fast},
			want: []DeviceEvent{
				{Kind: EventStopped},
				{Kind: EventStarted, Format: s16Fast},
			},
		},
		{
			name: "sample format change while active",
			prev: deviceState{active: true, format: s16},
			cur:  deviceState{active: true, format: s32},
			want: []DeviceEvent{
				{Kind: EventStopped},
				{Kind: EventStarted, Format: s32},
			},
		},
		{
			name: "unknown format start",
			prev: deviceState{active: false},
			cur:  deviceState{active: true, format: WaveFormat{SampleRate: 48000}},
			want: []DeviceEvent{{Kind: EventStarted, Format: WaveFormat{SampleRate: 48000}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, diffState(tt.prev, tt.cur))
		})
	}
}

func TestDiffStateIdenticalSnapshotsAreUnchanged(t *testing.T) {
	// two independently assembled snapshots with the same field values must
	// not produce events
	a := deviceState{active: true, format: WaveFormat{SampleFormat: FormatS24LE3, Channels: 8, SampleRate: 96000}}
	b := deviceState{active: true, format: WaveFormat{SampleFormat: FormatS24LE3, Channels: 8, SampleRate: 96000}}
	assert.Empty(t, diffState(a, b))
	assert.Empty(t, diffState(b, a))
}

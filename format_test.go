package alsawatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSampleFormatFromRaw(t *testing.T) {
	tests := []struct {
		raw  int64
		want SampleFormat
	}{
		{alsaFmtS16LE, FormatS16LE},
		{alsaFmtS24LE, FormatS24LE},
		{alsaFmtS24x3LE, FormatS24LE3},
		{alsaFmtS32LE, FormatS32LE},
		{alsaFmtFloatLE, FormatFloat32LE},
		{alsaFmtFloat64LE, FormatFloat64LE},
		// codes the pipeline cannot consume
		{alsaFmtS8, FormatUnknown},
		{alsaFmtS16BE, FormatUnknown},
		{alsaFmtMuLaw, FormatUnknown},
		{alsaFmtDSDU32BE, FormatUnknown},
		// codes ALSA does not define at all
		{-1, FormatUnknown},
		{29, FormatUnknown},
		{999, FormatUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, sampleFormatFromRaw(tt.raw), "raw code %d", tt.raw)
	}
}

func TestSampleFormatTransform(t *testing.T) {
	v, ok := sampleFormatTransform(alsaFmtS16LE)
	assert.True(t, ok)
	assert.Equal(t, int64(FormatS16LE), v)

	// unrecognized codes degrade to "no value", they do not fail the read
	_, ok = sampleFormatTransform(alsaFmtGSM)
	assert.False(t, ok)
}

func TestSampleFormatString(t *testing.T) {
	assert.Equal(t, "S16LE", FormatS16LE.String())
	assert.Equal(t, "S24LE", FormatS24LE.String())
	assert.Equal(t, "S24LE3", FormatS24LE3.String())
	assert.Equal(t, "S32LE", FormatS32LE.String())
	assert.Equal(t, "FLOAT32LE", FormatFloat32LE.String())
	assert.Equal(t, "FLOAT64LE", FormatFloat64LE.String())
	assert.Equal(t, "unknown", FormatUnknown.String())
}

func TestWaveFormatEquality(t *testing.T) {
	a := WaveFormat{SampleFormat: FormatS16LE, Channels: 2, SampleRate: 44100}
	b := WaveFormat{SampleFormat: FormatS16LE, Channels: 2, SampleRate: 44100}
	self := a

	assert.True(t, a == self)
	assert.True(t, a == b)
	assert.True(t, b == a)

	assert.False(t, a == WaveFormat{SampleFormat: FormatS32LE, Channels: 2, SampleRate: 44100})
	assert.False(t, a == WaveFormat{SampleFormat: FormatS16LE, Channels: 4, SampleRate: 44100})
	assert.False(t, a == WaveFormat{SampleFormat: FormatS16LE, Channels: 2, SampleRate: 48000})

	// all-zero is a valid "not determinable" format, equal to itself
	var zero, unknown WaveFormat
	assert.True(t, zero == unknown)
}

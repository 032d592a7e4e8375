package alsawatch

// SampleFormat is the sample encoding of the capture stream, named by the
// tokens a downstream pipeline consumes. FormatUnknown covers every ALSA
// format code the pipeline cannot handle; consumers must treat it as
// "cannot determine", not as a specific format.
type SampleFormat int

const (
	FormatUnknown SampleFormat = iota
	FormatS16LE
	FormatS24LE
	FormatS24LE3
	FormatS32LE
	FormatFloat32LE
	FormatFloat64LE
)

func (f SampleFormat) String() string {
	switch f {
	case FormatS16LE:
		return "S16LE"
	case FormatS24LE:
		return "S24LE"
	case FormatS24LE3:
		return "S24LE3"
	case FormatS32LE:
		return "S32LE"
	case FormatFloat32LE:
		return "FLOAT32LE"
	case FormatFloat64LE:
		return "FLOAT64LE"
	default:
		return "unknown"
	}
}

// snd_pcm_format_t codes as reported by the "PCM Slave Format" control.
const (
	alsaFmtS8 int64 = iota
	alsaFmtU8
	alsaFmtS16LE
	alsaFmtS16BE
	alsaFmtU16LE
	alsaFmtU16BE
	alsaFmtS24LE
	alsaFmtS24BE
	alsaFmtU24LE
	alsaFmtU24BE
	alsaFmtS32LE
	alsaFmtS32BE
	alsaFmtU32LE
	alsaFmtU32BE
	alsaFmtFloatLE
	alsaFmtFloatBE
	alsaFmtFloat64LE
	alsaFmtFloat64BE
	alsaFmtIEC958SubframeLE
	alsaFmtIEC958SubframeBE
	alsaFmtMuLaw
	alsaFmtALaw
	alsaFmtImaADPCM
	alsaFmtMPEG
	alsaFmtGSM
	alsaFmtS20LE
	alsaFmtS20BE
	alsaFmtU20LE
	alsaFmtU20BE
)

const (
	alsaFmtSpecial int64 = iota + 31
	alsaFmtS24x3LE
	alsaFmtS24x3BE
	alsaFmtU24x3LE
	alsaFmtU24x3BE
	alsaFmtS20x3LE
	alsaFmtS20x3BE
	alsaFmtU20x3LE
	alsaFmtU20x3BE
	alsaFmtS18x3LE
	alsaFmtS18x3BE
	alsaFmtU18x3LE
	alsaFmtU18x3BE
	alsaFmtG72324
	alsaFmtG723241B
	alsaFmtG72340
	alsaFmtG723401B
	alsaFmtDSDU8
	alsaFmtDSDU16LE
	alsaFmtDSDU32LE
	alsaFmtDSDU16BE
	alsaFmtDSDU32BE
)

// sampleFormatFromRaw maps a raw ALSA format code to the pipeline's sample
// format. Total over all inputs: codes the pipeline cannot consume, including
// codes ALSA itself does not define, map to FormatUnknown.
func sampleFormatFromRaw(raw int64) SampleFormat {
	switch raw {
	case alsaFmtS16LE:
		return FormatS16LE
	case alsaFmtS24LE:
		return FormatS24LE
	case alsaFmtS24x3LE:
		return FormatS24LE3
	case alsaFmtS32LE:
		return FormatS32LE
	case alsaFmtFloatLE:
		return FormatFloat32LE
	case alsaFmtFloat64LE:
		return FormatFloat64LE
	default:
		return FormatUnknown
	}
}

// sampleFormatTransform adapts sampleFormatFromRaw to the Control transform
// signature used by the format control.
func sampleFormatTransform(raw int64) (int64, bool) {
	f := sampleFormatFromRaw(raw)
	return int64(f), f != FormatUnknown
}

package mpeg

// Version is the 2-bit MPEG audio version ID from a frame header.
type Version byte

const (
	Version2_5      Version = 0
	VersionReserved Version = 1
	Version2        Version = 2
	Version1        Version = 3
)

var versionNames = [4]string{"MPEG 2.5", "Reserved", "MPEG 2", "MPEG 1"}

// String implements fmt.Stringer.
func (v Version) String() string {
	return versionNames[v&0x3]
}

// ChannelMode is the 2-bit channel mode from a frame header.
type ChannelMode byte

const (
	ModeStereo ChannelMode = iota
	ModeJointStereo
	ModeDualChannel
	ModeMono
)

var modeNames = [4]string{"Stereo", "Joint stereo", "Dual mono", "Mono"}

// String implements fmt.Stringer.
func (m ChannelMode) String() string {
	return modeNames[m&0x3]
}

// Channels returns 1 for mono and 2 otherwise.
func (m ChannelMode) Channels() int {
	if m == ModeMono {
		return 1
	}
	return 2
}

// Emphasis is the 2-bit emphasis field from a frame header.
type Emphasis byte

var emphasisNames = [4]string{"None", "50/15 ms", "Reserved", "CCIT J.17"}

// String implements fmt.Stringer.
func (e Emphasis) String() string {
	return emphasisNames[e&0x3]
}

// bitrates in kbps, indexed by [MPEG 1 or not][layer-1][bitrate index].
// MPEG 2.5 shares the MPEG 2 rows.
var bitrates = [2][3][16]int{
	{ // MPEG 1
		{0, 32, 64, 96, 128, 160, 192, 224, 256, 288, 320, 352, 384, 416, 448, 0},
		{0, 32, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320, 384, 0},
		{0, 32, 40, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320, 0},
	},
	{ // MPEG 2, 2.5
		{0, 32, 48, 56, 64, 80, 96, 112, 128, 144, 160, 176, 192, 224, 256, 0},
		{0, 8, 16, 24, 32, 40, 48, 56, 64, 80, 96, 112, 128, 144, 160, 0},
		{0, 8, 16, 24, 32, 40, 48, 56, 64, 80, 96, 112, 128, 144, 160, 0},
	},
}

// sampleRates in Hz, indexed by version ID and sample rate index.
var sampleRates = [4][4]int{
	{11025, 12000, 8000, 0},  // MPEG 2.5
	{0, 0, 0, 0},             // reserved
	{22050, 24000, 16000, 0}, // MPEG 2
	{44100, 48000, 32000, 0}, // MPEG 1
}

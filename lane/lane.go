package lane

import (
	"github.com/vx9/stemstation/constants"
	"github.com/vx9/stemstation/util"
)

// Mapper assigns one of the four playfield lanes to a MIDI pitch.
type Mapper func(pitch uint8) uint8

// ByRange buckets pitches into hand-tuned ranges. This is what stem
// builds use.
func ByRange(pitch uint8) uint8 {
	switch {
	case pitch < 50:
		return 0
	case pitch < 60:
		return 1
	case pitch < 72:
		return 2
	default:
		return 3
	}
}

// ByOctave gives each octave starting at C2 its own lane, clamped at
// the edges. This is what transcription builds use.
func ByOctave(pitch uint8) uint8 {
	l := (int(pitch) - 36) / 12
	return uint8(util.Clamp(l, 0, constants.NumLanes-1))
}

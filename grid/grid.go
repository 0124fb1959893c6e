package grid

import (
	"fmt"
	"math"

	"github.com/vx9/stemstation/constants"
	"github.com/vx9/stemstation/model"
)

// Snap moves every note start onto the nearest multiple of gridMs,
// in place. Ties round half to even, like all ms rounding here.
// Durations are left alone.
func Snap(notes []model.Note, gridMs float64) []model.Note {
	if gridMs <= 0 {
		panic(fmt.Sprintf("grid: grid size must be positive, got %v", gridMs))
	}
	for i := range notes {
		notes[i].TimeMs = math.RoundToEven(notes[i].TimeMs/gridMs) * gridMs
	}
	return notes
}

// SixteenthMs is the grid step for a tempo: a quarter of a beat.
func SixteenthMs(bpm float64) float64 {
	return (60000 / bpm) / constants.GridDivision
}

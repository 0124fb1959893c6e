package difficulty

import (
	"math"

	"github.com/vx9/stemstation/constants"
	"github.com/vx9/stemstation/model"
)

// Tier is one difficulty rendering of a stem. MinGapMs is the smallest
// allowed distance between two kept notes in the same lane. A tier
// that doesn't drop on violation keeps every note and carries the gap
// as advisory data only.
type Tier struct {
	Name             string
	MinGapMs         float64
	DropsOnViolation bool
}

func Defaults() []Tier {
	return []Tier{
		{Name: "easy", MinGapMs: constants.DefaultEasyGapMs, DropsOnViolation: true},
		{Name: "normal", MinGapMs: constants.DefaultNormalGapMs, DropsOnViolation: true},
		{Name: "expert", MinGapMs: constants.DefaultExpertGapMs, DropsOnViolation: false},
	}
}

// Thin drops notes that land too close behind the last kept note in
// their lane. The window only advances on kept notes. The input slice
// is left untouched and the result is a subsequence of it.
func Thin(notes []model.Note, t Tier) []model.Note {
	res := make([]model.Note, 0, len(notes))

	var lastKept [constants.NumLanes]float64
	for i := range lastKept {
		lastKept[i] = math.Inf(-1)
	}

	for _, n := range notes {
		if t.DropsOnViolation && n.TimeMs-lastKept[n.Lane] < t.MinGapMs {
			continue
		}
		res = append(res, n)
		lastKept[n.Lane] = n.TimeMs
	}
	return res
}

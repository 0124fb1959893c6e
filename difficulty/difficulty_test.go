package difficulty

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vx9/stemstation/model"
)

func laneNotes(lane uint8, times ...float64) []model.Note {
	res := make([]model.Note, 0, len(times))
	for _, t := range times {
		res = append(res, model.Note{TimeMs: t, Lane: lane})
	}
	return res
}

func times(notes []model.Note) []float64 {
	res := make([]float64, 0, len(notes))
	for _, n := range notes {
		res = append(res, n.TimeMs)
	}
	return res
}

func TestThinKeepsFirstNoteEvenAtTimeZero(t *testing.T) {
	thinned := Thin(laneNotes(0, 0), Tier{Name: "easy", MinGapMs: 260, DropsOnViolation: true})

	assert := assert.New(t)
	assert.Equal([]float64{0}, times(thinned))
}

func TestThinDropsCrowdedSameLaneNotes(t *testing.T) {
	thinned := Thin(laneNotes(0, 0, 100, 200, 300), Tier{Name: "easy", MinGapMs: 260, DropsOnViolation: true})

	assert := assert.New(t)
	assert.Equal([]float64{0, 300}, times(thinned))
}

func TestThinWindowAdvancesOnlyOnKeptNotes(t *testing.T) {
	// 200 is dropped; 400 must be measured against 0, not 200
	thinned := Thin(laneNotes(0, 0, 200, 400), Tier{Name: "easy", MinGapMs: 260, DropsOnViolation: true})

	assert := assert.New(t)
	assert.Equal([]float64{0, 400}, times(thinned))
}

func TestThinGapBoundaryKeeps(t *testing.T) {
	thinned := Thin(laneNotes(2, 0, 150), Tier{Name: "normal", MinGapMs: 150, DropsOnViolation: true})

	assert := assert.New(t)
	assert.Equal([]float64{0, 150}, times(thinned))
}

func TestThinLanesAreIndependent(t *testing.T) {
	notes := []model.Note{
		{TimeMs: 0, Lane: 0},
		{TimeMs: 50, Lane: 1},
		{TimeMs: 100, Lane: 0},
		{TimeMs: 120, Lane: 1},
		{TimeMs: 400, Lane: 0},
	}
	thinned := Thin(notes, Tier{Name: "easy", MinGapMs: 260, DropsOnViolation: true})

	assert := assert.New(t)
	assert.Equal([]model.Note{
		{TimeMs: 0, Lane: 0},
		{TimeMs: 50, Lane: 1},
		{TimeMs: 400, Lane: 0},
	}, thinned)
}

func TestThinKeepsEverythingWhenTierDoesNotDrop(t *testing.T) {
	notes := laneNotes(3, 0, 10, 20, 30, 40)
	thinned := Thin(notes, Tier{Name: "expert", MinGapMs: 80, DropsOnViolation: false})

	assert := assert.New(t)
	assert.Equal(notes, thinned)
}

func TestThinLeavesInputUntouched(t *testing.T) {
	notes := laneNotes(0, 0, 100, 200)
	Thin(notes, Tier{Name: "easy", MinGapMs: 260, DropsOnViolation: true})

	assert := assert.New(t)
	assert.Equal([]float64{0, 100, 200}, times(notes))
}

func TestTighterTiersKeepFewerNotes(t *testing.T) {
	notes := laneNotes(1, 0, 90, 180, 270, 500, 530, 900)

	var kept []int
	for _, tier := range Defaults() {
		kept = append(kept, len(Thin(notes, tier)))
	}

	assert := assert.New(t)
	// easy <= normal <= expert, expert keeps all
	assert.LessOrEqual(kept[0], kept[1])
	assert.LessOrEqual(kept[1], kept[2])
	assert.Equal(len(notes), kept[2])
}

func TestDefaults(t *testing.T) {
	tiers := Defaults()

	assert := assert.New(t)
	assert.Equal([]Tier{
		{Name: "easy", MinGapMs: 260, DropsOnViolation: true},
		{Name: "normal", MinGapMs: 150, DropsOnViolation: true},
		{Name: "expert", MinGapMs: 80, DropsOnViolation: false},
	}, tiers)
}

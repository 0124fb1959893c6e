package classify

import (
	"math"

	"github.com/vx9/stemstation/model"
	"golang.org/x/exp/slices"
)

// TapOrHold renders one working note as a playable stream note. A
// note whose rounded length reaches the threshold becomes a hold and
// carries its end time; anything shorter is a tap. offsetMs shifts
// both ends and may be negative.
func TapOrHold(n model.Note, offsetMs int, holdThresholdMs int) model.StreamNote {
	startMs := int(math.RoundToEven(n.TimeMs)) + offsetMs
	endMs := int(math.RoundToEven(n.TimeMs+n.DurationMs)) + offsetMs

	res := model.StreamNote{
		TimeMs: startMs,
		Lane:   int(n.Lane),
		Type:   model.NoteTap,
	}
	if endMs-startMs >= holdThresholdMs {
		res.Type = model.NoteHold
		res.EndTimeMs = &endMs
	}
	return res
}

// SortByTime orders stream notes by start time, keeping the incoming
// order for equal starts.
func SortByTime(notes []model.StreamNote) {
	slices.SortStableFunc(notes, func(a, b model.StreamNote) bool {
		return a.TimeMs < b.TimeMs
	})
}

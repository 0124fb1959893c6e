package model

// RawNote is a note event as it comes out of the MIDI layer.
// Start and End are in seconds.
type RawNote struct {
	Start float64
	End   float64
	Pitch uint8
}

// Note is the working form the chart pipeline passes around:
// milliseconds plus an assigned lane.
type Note struct {
	TimeMs     float64
	DurationMs float64
	Pitch      uint8
	Lane       uint8
}

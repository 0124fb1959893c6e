package model

type StemChart struct {
	TrackID       string          `json:"trackId"`
	SongName      string          `json:"songName"`
	Artist        string          `json:"artist"`
	BPM           float64         `json:"bpm"`
	AudioOffsetMs int             `json:"audioOffsetMs"`
	Stems         map[string]Stem `json:"stems"`
}

type Stem struct {
	MidiFile     string                     `json:"midiFile"`
	Difficulties map[string]DifficultyNotes `json:"difficulties"`
}

type DifficultyNotes struct {
	Notes []StemNote `json:"notes"`
}

type StemNote struct {
	TimeMs     int `json:"timeMs"`
	DurationMs int `json:"durationMs"`
	Pitch      int `json:"pitch"`
	Lane       int `json:"lane"`
}

type NoteType string

const (
	NoteTap  NoteType = "tap"
	NoteHold NoteType = "hold"
)

type StreamChart struct {
	SongID     string       `json:"songId"`
	Title      string       `json:"title"`
	Artist     string       `json:"artist"`
	BPM        *float64     `json:"bpm"`
	OffsetMs   int          `json:"offsetMs"`
	Difficulty string       `json:"difficulty"`
	Notes      []StreamNote `json:"notes"`
}

// EndTimeMs is a pointer so a hold ending at 0 (possible with negative
// offsets) still round-trips instead of being dropped by omitempty.
type StreamNote struct {
	TimeMs    int      `json:"timeMs"`
	Lane      int      `json:"lane"`
	Type      NoteType `json:"type"`
	EndTimeMs *int     `json:"endTimeMs,omitempty"`
}

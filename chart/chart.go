package chart

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/vx9/stemstation/classify"
	"github.com/vx9/stemstation/constants"
	"github.com/vx9/stemstation/difficulty"
	"github.com/vx9/stemstation/file"
	"github.com/vx9/stemstation/grid"
	"github.com/vx9/stemstation/lane"
	"github.com/vx9/stemstation/midi"
	"github.com/vx9/stemstation/model"
)

type StemParams struct {
	TrackID       string
	SongName      string
	Artist        string
	BPM           float64
	AudioOffsetMs int
	MidiDir       string
	Lanes         lane.Mapper
	Tiers         []difficulty.Tier
}

// CreateStemChart builds one difficulty set per stem MIDI file found
// under MidiDir. Stems without a file are left out of the chart; a
// stem that exists but won't parse fails the whole build.
func CreateStemChart(p StemParams) (*model.StemChart, error) {
	if p.BPM <= 0 {
		return nil, fmt.Errorf("bpm must be positive, got %v", p.BPM)
	}
	gridMs := grid.SixteenthMs(p.BPM)

	res := model.StemChart{
		TrackID:       p.TrackID,
		SongName:      p.SongName,
		Artist:        p.Artist,
		BPM:           p.BPM,
		AudioOffsetMs: p.AudioOffsetMs,
		Stems:         make(map[string]model.Stem),
	}

	for _, stem := range constants.StemNames {
		path := file.StemPath(p.MidiDir, p.SongName, stem)
		if _, err := os.Stat(path); err != nil {
			continue
		}

		parsed, err := midi.ReadMidiFile(path)
		if err != nil {
			return nil, fmt.Errorf("could not load %v stem: %w", stem, err)
		}

		notes := laneMapped(midi.Notes(parsed), p.Lanes)
		notes = grid.Snap(notes, gridMs)

		s := model.Stem{
			MidiFile:     filepath.ToSlash(path),
			Difficulties: make(map[string]model.DifficultyNotes),
		}
		for _, tier := range p.Tiers {
			thinned := difficulty.Thin(notes, tier)
			s.Difficulties[tier.Name] = model.DifficultyNotes{Notes: stemNotes(thinned)}
		}
		res.Stems[stem] = s
		fmt.Printf("Built %v stem with %v notes\n", stem, len(notes))
	}

	return &res, nil
}

type StreamParams struct {
	SongID          string
	Title           string
	Artist          string
	Difficulty      string
	OffsetMs        int
	HoldThresholdMs int
	MidiPath        string
	Lanes           lane.Mapper
}

// CreateStreamChart renders every note of one MIDI file as a flat
// tap/hold list, sorted by start time. BPM comes from the file's
// first tempo event and is null when there is none.
func CreateStreamChart(p StreamParams) (*model.StreamChart, error) {
	parsed, err := midi.ReadMidiFile(p.MidiPath)
	if err != nil {
		return nil, err
	}

	raw := midi.Notes(parsed)
	notes := make([]model.StreamNote, 0, len(raw))
	for _, n := range laneMapped(raw, p.Lanes) {
		notes = append(notes, classify.TapOrHold(n, p.OffsetMs, p.HoldThresholdMs))
	}
	classify.SortByTime(notes)

	res := model.StreamChart{
		SongID:     p.SongID,
		Title:      p.Title,
		Artist:     p.Artist,
		BPM:        midi.FirstTempo(parsed),
		OffsetMs:   p.OffsetMs,
		Difficulty: strings.ToLower(p.Difficulty),
		Notes:      notes,
	}
	return &res, nil
}

func laneMapped(raw []model.RawNote, m lane.Mapper) []model.Note {
	res := make([]model.Note, 0, len(raw))
	for _, rn := range raw {
		res = append(res, model.Note{
			TimeMs:     rn.Start * 1000,
			DurationMs: (rn.End - rn.Start) * 1000,
			Pitch:      rn.Pitch,
			Lane:       m(rn.Pitch),
		})
	}
	return res
}

func stemNotes(notes []model.Note) []model.StemNote {
	res := make([]model.StemNote, 0, len(notes))
	for _, n := range notes {
		res = append(res, model.StemNote{
			TimeMs:     int(math.RoundToEven(n.TimeMs)),
			DurationMs: int(math.RoundToEven(n.DurationMs)),
			Pitch:      int(n.Pitch),
			Lane:       int(n.Lane),
		})
	}
	return res
}

// Write renders a chart document as indented JSON and moves it into
// place in one step.
func Write(doc any, outPath string) error {
	dat, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	if err := file.EnsureDir(filepath.Dir(outPath)); err != nil {
		return err
	}
	return file.WriteAtomic(outPath, dat)
}

// Decoded holds one chart document read back from disk. Exactly one
// field is set, depending on which shape the file contains.
type Decoded struct {
	Stems  *model.StemChart
	Stream *model.StreamChart
}

func ReadFile(path string) (*Decoded, error) {
	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read chart %v: %w", path, err)
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(dat, &probe); err != nil {
		return nil, fmt.Errorf("could not parse chart %v: %w", path, err)
	}

	if _, ok := probe["stems"]; ok {
		var c model.StemChart
		if err := json.Unmarshal(dat, &c); err != nil {
			return nil, fmt.Errorf("could not parse chart %v: %w", path, err)
		}
		return &Decoded{Stems: &c}, nil
	}
	if _, ok := probe["notes"]; ok {
		var c model.StreamChart
		if err := json.Unmarshal(dat, &c); err != nil {
			return nil, fmt.Errorf("could not parse chart %v: %w", path, err)
		}
		return &Decoded{Stream: &c}, nil
	}
	return nil, fmt.Errorf("%v is not a chart document", path)
}

func Summarize(id string, d *Decoded) model.ChartSummary {
	res := model.ChartSummary{ID: id}
	switch {
	case d.Stems != nil:
		res.Kind = "stems"
		res.Title = d.Stems.SongName
		res.Artist = d.Stems.Artist
		for _, s := range d.Stems.Stems {
			for _, diff := range s.Difficulties {
				res.NumNotes += len(diff.Notes)
			}
		}
	case d.Stream != nil:
		res.Kind = "stream"
		res.Title = d.Stream.Title
		res.Artist = d.Stream.Artist
		res.NumNotes = len(d.Stream.Notes)
	}
	return res
}

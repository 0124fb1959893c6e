package midi

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/vx9/stemstation/model"
	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF
	var err error

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)

	if err != nil {
		errText := fmt.Sprintf("Error reading midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}
	res, err := smf.ReadFrom(bytes.NewReader(dat))

	if err != nil {
		errText := fmt.Sprintf("Error parsing midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}

	return res, nil
}

type soundingKey struct {
	channel uint8
	key     uint8
}

// Notes flattens every track into raw note events, sorted by start.
// Each note-on pairs with the next note-off (or zero velocity
// note-on) for the same channel and key. Notes still sounding at the
// end of the file are dropped.
func Notes(s *smf.SMF) []model.RawNote {
	res := make([]model.RawNote, 0)
	sounding := make(map[soundingKey]float64)

	for _, events := range s.Tracks {
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			absSecs := float64(s.TimeAt(absTicks)) / 1e6

			var channel uint8
			var key uint8
			var velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity) && velocity > 0:
				sounding[soundingKey{channel, key}] = absSecs
			case event.Message.GetNoteOff(&channel, &key, &velocity),
				event.Message.GetNoteOn(&channel, &key, &velocity):
				k := soundingKey{channel, key}
				start, ok := sounding[k]
				if !ok {
					continue
				}
				delete(sounding, k)
				res = append(res, model.RawNote{
					Start: start,
					End:   absSecs,
					Pitch: key,
				})
			}
		}
	}

	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Start < res[j].Start
	})
	return res
}

// FirstTempo returns the BPM of the first tempo event in the file, or
// nil when it carries none.
func FirstTempo(s *smf.SMF) *float64 {
	for _, events := range s.Tracks {
		for _, event := range events {
			var bpm float64
			if event.Message.GetMetaTempo(&bpm) {
				return &bpm
			}
		}
	}
	return nil
}

package cmd

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vx9/stemstation/chart"
	"github.com/vx9/stemstation/constants"
	"github.com/vx9/stemstation/file"
	"github.com/vx9/stemstation/lane"
	"github.com/vx9/stemstation/transcribe"
)

var holdThresholdMs int

func init() {
	transcribeCmd.Flags().IntVar(&holdThresholdMs, "hold-threshold", constants.DefaultHoldThresholdMs, "min note length in ms rendered as a hold")
	rootCmd.AddCommand(transcribeCmd)
}

var transcribeCmd = &cobra.Command{
	Use:   "transcribe <audioPath> <trackId> <difficulty> [offsetMs]",
	Short: "Transcribes audio into a single-stream chart",
	Long:  `Transcribes an audio file to MIDI with basic-pitch, then renders the notes as a playable chart`,
	Args:  cobra.RangeArgs(3, 4),
	Run: func(cmd *cobra.Command, args []string) {
		var offsetMs int
		if len(args) == 4 {
			parsed, err := strconv.Atoi(args[3])
			if err != nil {
				panic(err)
			}
			offsetMs = parsed
		}
		cobra.CheckErr(Transcribe(args[0], args[1], args[2], offsetMs))
	},
}

// Transcribe runs audio -> MIDI -> chart, writing the MIDI under the
// midi dir and the chart under the charts dir, both keyed by the
// sanitized track id.
func Transcribe(audioPath string, trackID string, diff string, offsetMs int) error {
	id := file.SanitizeID(trackID)

	midiOut := filepath.Join(constants.GetMidiDir(), id+".mid")
	if err := transcribe.Run(audioPath, midiOut); err != nil {
		return err
	}

	title := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
	c, err := chart.CreateStreamChart(chart.StreamParams{
		SongID:          id,
		Title:           title,
		Artist:          constants.DefaultArtist,
		Difficulty:      diff,
		OffsetMs:        offsetMs,
		HoldThresholdMs: holdThresholdMs,
		MidiPath:        midiOut,
		Lanes:           lane.ByOctave,
	})
	if err != nil {
		return err
	}

	outPath := filepath.Join(constants.GetChartsDir(), id+".json")
	if err := chart.Write(c, outPath); err != nil {
		return err
	}
	fmt.Printf("Wrote chart: %v (notes=%v)\n", outPath, len(c.Notes))
	return nil
}

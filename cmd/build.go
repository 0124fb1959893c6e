package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/vx9/stemstation/chart"
	"github.com/vx9/stemstation/constants"
	"github.com/vx9/stemstation/difficulty"
	"github.com/vx9/stemstation/lane"
)

var (
	easyGapMs     float64
	normalGapMs   float64
	expertGapMs   float64
	audioOffsetMs int
)

func addBuildFlags(c *cobra.Command) {
	c.Flags().Float64Var(&easyGapMs, "easy-gap", constants.DefaultEasyGapMs, "min same-lane gap in ms for easy")
	c.Flags().Float64Var(&normalGapMs, "normal-gap", constants.DefaultNormalGapMs, "min same-lane gap in ms for normal")
	c.Flags().Float64Var(&expertGapMs, "expert-gap", constants.DefaultExpertGapMs, "advisory same-lane gap in ms for expert")
	c.Flags().IntVar(&audioOffsetMs, "offset", 0, "audioOffsetMs written to the chart")
}

func init() {
	addBuildFlags(buildCmd)
	rootCmd.AddCommand(buildCmd)
}

var buildCmd = &cobra.Command{
	Use:   "build <trackId> <songName> <artist> <bpm> <midiDir> <outputJson>",
	Short: "Builds a multi-stem chart",
	Long:  `Builds a multi-stem chart from per-stem MIDI files`,
	Args:  cobra.ExactArgs(6),
	Run: func(cmd *cobra.Command, args []string) {
		bpm, err := strconv.ParseFloat(args[3], 64)
		if err != nil {
			panic(err)
		}
		cobra.CheckErr(Build(args[0], args[1], args[2], bpm, args[4], args[5]))
	},
}

func buildTiers() []difficulty.Tier {
	return []difficulty.Tier{
		{Name: "easy", MinGapMs: easyGapMs, DropsOnViolation: true},
		{Name: "normal", MinGapMs: normalGapMs, DropsOnViolation: true},
		{Name: "expert", MinGapMs: expertGapMs, DropsOnViolation: false},
	}
}

// Build runs the whole multi-stem pipeline and writes the chart JSON.
func Build(trackID string, songName string, artist string, bpm float64, midiDir string, outPath string) error {
	c, err := chart.CreateStemChart(chart.StemParams{
		TrackID:       trackID,
		SongName:      songName,
		Artist:        artist,
		BPM:           bpm,
		AudioOffsetMs: audioOffsetMs,
		MidiDir:       midiDir,
		Lanes:         lane.ByRange,
		Tiers:         buildTiers(),
	})
	if err != nil {
		return err
	}

	if err := chart.Write(c, outPath); err != nil {
		return err
	}
	fmt.Printf("Wrote chart JSON: %v\n", outPath)
	return nil
}

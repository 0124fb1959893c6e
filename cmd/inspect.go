package cmd

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"github.com/vx9/stemstation/chart"
	"github.com/vx9/stemstation/model"
	"github.com/vx9/stemstation/util"
	"golang.org/x/exp/slices"
)

var dumpChart bool

func init() {
	inspectCmd.Flags().BoolVar(&dumpChart, "dump", false, "dump the full decoded document")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <chartJson>",
	Short: "Inspects a chart",
	Long:  `Inspects a chart`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(inspect(args[0]))
	},
}

func inspect(path string) error {
	decoded, err := chart.ReadFile(path)
	if err != nil {
		return err
	}

	if dumpChart {
		spew.Dump(decoded)
		return nil
	}

	switch {
	case decoded.Stems != nil:
		c := decoded.Stems
		fmt.Printf("%v by %v (bpm=%v, audioOffsetMs=%v)\n", c.SongName, c.Artist, c.BPM, c.AudioOffsetMs)
		stems := util.GetKeys(c.Stems)
		slices.Sort(stems)
		for _, name := range stems {
			s := c.Stems[name]
			fmt.Printf("%v (%v)\n", name, s.MidiFile)
			diffs := util.GetKeys(s.Difficulties)
			slices.Sort(diffs)
			for _, d := range diffs {
				fmt.Printf("  %v: %v notes\n", d, len(s.Difficulties[d].Notes))
			}
		}
	case decoded.Stream != nil:
		c := decoded.Stream
		bpm := "null"
		if c.BPM != nil {
			bpm = fmt.Sprintf("%v", *c.BPM)
		}
		var taps, holds int
		for _, n := range c.Notes {
			if n.Type == model.NoteHold {
				holds += 1
			} else {
				taps += 1
			}
		}
		fmt.Printf("%v by %v (bpm=%v, offsetMs=%v, difficulty=%v)\n", c.Title, c.Artist, bpm, c.OffsetMs, c.Difficulty)
		fmt.Printf("%v notes (%v taps, %v holds)\n", len(c.Notes), taps, holds)
	}
	return nil
}

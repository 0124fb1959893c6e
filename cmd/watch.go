package cmd

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/bep/debounce"
	"github.com/spf13/cobra"
	"github.com/vx9/stemstation/util"
)

func init() {
	addBuildFlags(watchCmd)
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch <trackId> <songName> <artist> <bpm> <midiDir> <outputJson>",
	Short: "Rebuilds a chart whenever its stems change",
	Long:  `Builds a multi-stem chart, then rebuilds it every time a MIDI file under the stem dir changes`,
	Args:  cobra.ExactArgs(6),
	Run: func(cmd *cobra.Command, args []string) {
		bpm, err := strconv.ParseFloat(args[3], 64)
		if err != nil {
			panic(err)
		}
		watch(args[0], args[1], args[2], bpm, args[4], args[5])
	},
}

// dirSignature changes whenever a MIDI file under the dir is added,
// removed or rewritten.
func dirSignature(midiDir string) string {
	var sig string
	for _, path := range util.GatherAllMidiPaths(midiDir) {
		if stat, err := os.Stat(path); err == nil {
			sig += fmt.Sprintf("%v:%v:%v;", path, stat.Size(), stat.ModTime().UnixNano())
		}
	}
	return sig
}

func watch(trackID string, songName string, artist string, bpm float64, midiDir string, outPath string) {
	rebuild := func() {
		if err := Build(trackID, songName, artist, bpm, midiDir, outPath); err != nil {
			fmt.Printf("Rebuild failed: %v\n", err)
		}
	}
	rebuild()

	// editors write stems in bursts, so debounce the rebuild
	debounced := debounce.New(500 * time.Millisecond)
	last := dirSignature(midiDir)
	for range time.Tick(500 * time.Millisecond) {
		sig := dirSignature(midiDir)
		if sig == last {
			continue
		}
		last = sig
		debounced(rebuild)
	}
}

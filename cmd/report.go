package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vx9/stemstation/chart"
	"github.com/vx9/stemstation/constants"
	"github.com/vx9/stemstation/model"
	"github.com/vx9/stemstation/util"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Reports on the charts dir",
	Long:  `Reports aggregate note counts over every chart in the charts dir`,
	Run: func(cmd *cobra.Command, args []string) {
		report()
	},
}

type chartsReport struct {
	numStemCharts      int64
	numStreamCharts    int64
	numBytes           int64
	notesPerChart      []int64
	notesPerDifficulty map[string]int64
	numTaps            int64
	numHolds           int64
}

func analyzeCharts() chartsReport {
	report := chartsReport{notesPerDifficulty: make(map[string]int64)}

	dir := constants.GetChartsDir()
	entries, err := os.ReadDir(dir)
	if err != nil {
		panic("Could not read charts dir because: " + err.Error())
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}

		path := filepath.Join(dir, name)
		decoded, err := chart.ReadFile(path)
		if err != nil {
			fmt.Printf("Skipping %v because: %v\n", name, err)
			continue
		}

		if stat, err := os.Stat(path); err == nil {
			report.numBytes += stat.Size()
		}

		var chartNotes int64
		switch {
		case decoded.Stems != nil:
			report.numStemCharts += 1
			for _, s := range decoded.Stems.Stems {
				for diff, notes := range s.Difficulties {
					report.notesPerDifficulty[diff] += int64(len(notes.Notes))
					chartNotes += int64(len(notes.Notes))
				}
			}
		case decoded.Stream != nil:
			report.numStreamCharts += 1
			diff := decoded.Stream.Difficulty
			report.notesPerDifficulty[diff] += int64(len(decoded.Stream.Notes))
			chartNotes += int64(len(decoded.Stream.Notes))
			for _, n := range decoded.Stream.Notes {
				if n.Type == model.NoteHold {
					report.numHolds += 1
				} else {
					report.numTaps += 1
				}
			}
		}
		report.notesPerChart = append(report.notesPerChart, chartNotes)
	}

	return report
}

func report() {
	r := analyzeCharts()
	fmt.Printf("numStemCharts: %v\n", r.numStemCharts)
	fmt.Printf("numStreamCharts: %v\n", r.numStreamCharts)
	fmt.Printf("numBytes: %v\n", r.numBytes)
	fmt.Printf("totalNotes: %v\n", util.Sum(r.notesPerChart))
	fmt.Printf("notesPerChart: %v\n", r.notesPerChart)

	diffs := util.GetKeys(r.notesPerDifficulty)
	slices.Sort(diffs)
	for _, diff := range diffs {
		fmt.Printf("notes in %v: %v\n", diff, r.notesPerDifficulty[diff])
	}
	fmt.Printf("stream taps: %v\n", r.numTaps)
	fmt.Printf("stream holds: %v\n", r.numHolds)
}

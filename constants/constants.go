package constants

import "os"

func GetChartsDir() string {
	path := os.Getenv("CHARTS_PATH")
	if path != "" {
		return path
	}
	return "app/stemstation/charts"
}

func GetMidiDir() string {
	path := os.Getenv("MIDI_PATH")
	if path != "" {
		return path
	}
	return "app/stemstation/midi"
}

func GetChartBucket() string {
	bucket := os.Getenv("CHART_BUCKET")
	if bucket != "" {
		return bucket
	}

	panic("CHART_BUCKET environment variable is not set!")
}

func GetChartEndpoint() string {
	return os.Getenv("CHART_S3_ENDPOINT")
}

// Stems a track can ship, in build order.
var StemNames = []string{"melody", "drums", "vocals"}

const NumLanes = 4

// Slots per beat, i.e. a sixteenth-note grid.
const GridDivision = 4

const DefaultHoldThresholdMs = 350

const (
	DefaultEasyGapMs   = 260
	DefaultNormalGapMs = 150
	DefaultExpertGapMs = 80
)

const DefaultArtist = "STEMSTATION"

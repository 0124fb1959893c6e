//go:build e2e
// +build e2e

package e2e_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vx9/stemstation/cmd"
	"github.com/vx9/stemstation/model"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

var chartsDir string

// writeMelodyFixture writes a stem with three notes at 120 bpm: pitch
// 40 at 0ms for 80ms, pitch 40 at 90ms for 90ms, pitch 65 at 500ms
// for 600ms. 1000 ticks per quarter makes one tick half a millisecond.
func writeMelodyFixture(path string) {
	s := smf.NewSMF1()
	s.TimeFormat = smf.MetricTicks(1000)

	track := smf.Track{}
	add := func(delta uint32, msg smf.Message) {
		track = append(track, smf.Event{Delta: delta, Message: msg})
	}
	add(0, smf.Message(smf.MetaTempo(120.0)))
	add(0, smf.Message(gomidi.NoteOn(0, 40, 100)))
	add(160, smf.Message(gomidi.NoteOff(0, 40)))
	add(20, smf.Message(gomidi.NoteOn(0, 40, 100)))
	add(180, smf.Message(gomidi.NoteOff(0, 40)))
	add(640, smf.Message(gomidi.NoteOn(0, 65, 100)))
	add(1200, smf.Message(gomidi.NoteOff(0, 65)))
	add(0, smf.EOT)
	s.Add(track)

	f, err := os.Create(path)
	if err != nil {
		panic(err.Error())
	}
	defer f.Close()
	if _, err := s.WriteTo(f); err != nil {
		panic(err.Error())
	}
}

func TestMain(m *testing.M) {
	midiDir, err := os.MkdirTemp("", "stemstation-e2e-midi-*")
	if err != nil {
		panic(err.Error())
	}
	chartsDir, err = os.MkdirTemp("", "stemstation-e2e-charts-*")
	if err != nil {
		panic(err.Error())
	}
	os.Setenv("CHARTS_PATH", chartsDir)

	writeMelodyFixture(filepath.Join(midiDir, "Test_Song_melody.mid"))
	err = cmd.Build("test-track", "Test Song", "vx9", 120, midiDir, filepath.Join(chartsDir, "test-track.json"))
	if err != nil {
		panic(err.Error())
	}

	exitVal := m.Run()

	os.RemoveAll(midiDir)
	os.RemoveAll(chartsDir)
	os.Exit(exitVal)
}

func TestBuildWroteExpectedChartE2E(t *testing.T) {
	dat, err := os.ReadFile(filepath.Join(chartsDir, "test-track.json"))
	if err != nil {
		t.Fatal(err)
	}

	var c model.StemChart
	if err := json.Unmarshal(dat, &c); err != nil {
		t.Fatal(err)
	}

	assert := assert.New(t)
	assert.Equal("test-track", c.TrackID)
	assert.Equal("Test Song", c.SongName)
	assert.Equal("vx9", c.Artist)
	assert.Equal(float64(120), c.BPM)
	assert.Equal(0, c.AudioOffsetMs)
	assert.Len(c.Stems, 1)

	melody := c.Stems["melody"]
	assert.Len(melody.Difficulties["easy"].Notes, 2)
	assert.Len(melody.Difficulties["normal"].Notes, 2)
	assert.Len(melody.Difficulties["expert"].Notes, 3)

	// the 90ms note snaps onto the 125ms sixteenth grid
	expert := melody.Difficulties["expert"].Notes
	assert.Equal(model.StemNote{TimeMs: 0, DurationMs: 80, Pitch: 40, Lane: 0}, expert[0])
	assert.Equal(model.StemNote{TimeMs: 125, DurationMs: 90, Pitch: 40, Lane: 0}, expert[1])
	assert.Equal(model.StemNote{TimeMs: 500, DurationMs: 600, Pitch: 65, Lane: 2}, expert[2])
}

func TestChartsEndpointE2E(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/charts", nil)
	w := httptest.NewRecorder()
	cmd.NewRouter().ServeHTTP(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(resp.StatusCode, 200)

	var summaries []model.ChartSummary
	err := json.Unmarshal(respBody, &summaries)
	if err != nil {
		panic(err.Error())
	}

	assert.Equal([]model.ChartSummary{{
		ID:       "test-track",
		Kind:     "stems",
		Title:    "Test Song",
		Artist:   "vx9",
		NumNotes: 7,
	}}, summaries)
}

func TestChartEndpointE2E(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/charts/test-track", nil)
	w := httptest.NewRecorder()
	cmd.NewRouter().ServeHTTP(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(resp.StatusCode, 200)

	var c model.StemChart
	err := json.Unmarshal(respBody, &c)
	if err != nil {
		panic(err.Error())
	}
	assert.Equal("test-track", c.TrackID)
	assert.Contains(c.Stems, "melody")
}

func TestMissingChartIs404E2E(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/charts/no-such-track", nil)
	w := httptest.NewRecorder()
	cmd.NewRouter().ServeHTTP(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(resp.StatusCode, 404)

	var errResp model.ErrorResponse
	err := json.Unmarshal(respBody, &errResp)
	if err != nil {
		panic(err.Error())
	}
	assert.Contains(errResp.Error, "no-such-track")
}

package transcribe

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/vx9/stemstation/file"
)

// basic-pitch names its output after the input file.
func transcribedName(audioPath string) string {
	base := filepath.Base(audioPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return base + "_basic_pitch.mid"
}

// Run transcribes an audio file to MIDI with the basic-pitch CLI and
// leaves the result at midiOut. basic-pitch writes into a scratch dir
// first, so a failed run leaves nothing behind at midiOut.
func Run(audioPath string, midiOut string) error {
	if _, err := os.Stat(audioPath); err != nil {
		return fmt.Errorf("audio file not found: %v", audioPath)
	}

	bin, err := exec.LookPath("basic-pitch")
	if err != nil {
		return fmt.Errorf(`basic-pitch is not installed, try: pip install "basic-pitch==0.4.0"`)
	}

	tmpDir, err := os.MkdirTemp("", "stemstation-transcribe-*")
	if err != nil {
		return err
	}
	defer os.RemoveAll(tmpDir)

	c := exec.Command(bin, tmpDir, audioPath)
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	if err := c.Run(); err != nil {
		return fmt.Errorf("basic-pitch failed: %w", err)
	}

	produced := filepath.Join(tmpDir, transcribedName(audioPath))
	dat, err := os.ReadFile(produced)
	if err != nil {
		return fmt.Errorf("basic-pitch did not produce %v: %w", produced, err)
	}

	if err := file.EnsureDir(filepath.Dir(midiOut)); err != nil {
		return err
	}
	return file.WriteAtomic(midiOut, dat)
}

package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// WriteAtomic writes data next to path under a throwaway name, then
// renames it into place, so readers never see a half-written file.
func WriteAtomic(path string, data []byte) error {
	tmp := filepath.Join(filepath.Dir(path), uuid.New().String()+".tmp")
	if err := os.WriteFile(tmp, data, 0777); err != nil {
		return fmt.Errorf("could not write %v: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("could not move %v into place: %w", tmp, err)
	}
	return nil
}

func EnsureDir(path string) error {
	return os.MkdirAll(path, 0777)
}

// Slug is the on-disk form of a song name.
func Slug(name string) string {
	return strings.ReplaceAll(name, " ", "_")
}

// SanitizeID keeps letters, digits, dashes and underscores, replacing
// everything else with an underscore.
func SanitizeID(id string) string {
	var b strings.Builder
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9',
			r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

// StemPath resolves the MIDI file for one stem of a song, e.g.
// Neon_Skyline_drums.mid.
func StemPath(midiDir string, songName string, stem string) string {
	return filepath.Join(midiDir, Slug(songName)+"_"+stem+".mid")
}

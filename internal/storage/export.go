package storage

import (
	"fmt"
	"os"
	"time"

	"github.com/mikecappella27/life-rpg/internal/engine"
)

// ExportFilename is the conventional export name for a given day, e.g.
// life-rpg-save-2026-08-31.json.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("life-rpg-save-%s.json", now.Format("2006-01-02"))
}

// ExportFile writes the save as indented JSON at path.
func ExportFile(path string, s *engine.SaveState) error {
	data, err := Encode(s)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("export write: %w", err)
	}
	return nil
}

// ImportFile reads and validates a save file. Unlike Load, corruption here
// is a hard error: the user pointed at this file on purpose.
func ImportFile(path string) (*engine.SaveState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("import read: %w", err)
	}
	return Decode(data)
}

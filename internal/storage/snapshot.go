package storage

import (
	"encoding/json"
	"fmt"

	"github.com/mikecappella27/life-rpg/internal/engine"
)

// ImportError is returned when a snapshot fails shape validation; Reason is
// shown to the user as-is.
type ImportError struct {
	Reason string
}

func (e ImportError) Error() string {
	return fmt.Sprintf("invalid save file: %s", e.Reason)
}

// Encode serializes a save state to indented JSON, the on-disk and export
// format.
func Encode(s *engine.SaveState) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode save: %w", err)
	}
	return data, nil
}

// Decode parses and validates snapshot bytes. Unknown fields are ignored so
// saves written by newer builds still load.
func Decode(data []byte) (*engine.SaveState, error) {
	var s engine.SaveState
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, ImportError{Reason: err.Error()}
	}
	if err := validate(&s); err != nil {
		return nil, err
	}
	if s.Version == 0 {
		s.Version = engine.SaveVersion
	}
	return &s, nil
}

// validate checks the minimal shape a usable save must have: a player name
// and a stats array. Everything else defaults to empty.
func validate(s *engine.SaveState) error {
	if s.PlayerName == "" {
		return ImportError{Reason: "missing player name"}
	}
	if len(s.Stats) == 0 {
		return ImportError{Reason: "missing stats"}
	}
	return nil
}

package engine

import (
	"strings"
	"time"
)

// SetProfile sets the character name and title (first-run setup, or a later
// rename). Empty fields fall back to the defaults.
type SetProfile struct {
	PlayerName string
	Title      string
}

func (in SetProfile) apply(s *SaveState, now time.Time) (*stepResult, error) {
	name := strings.TrimSpace(in.PlayerName)
	if name == "" {
		name = "Hero"
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		title = "The Awakened"
	}
	s.PlayerName = name
	s.Title = title
	return &stepResult{}, nil
}

// SetEnergyEnabled toggles the energy system. Disabling does not refill the
// bar; it just stops charging costs.
type SetEnergyEnabled struct {
	Enabled bool
}

func (in SetEnergyEnabled) apply(s *SaveState, now time.Time) (*stepResult, error) {
	s.Settings.EnergyEnabled = in.Enabled
	return &stepResult{}, nil
}

// ResetGame throws everything away and starts over with first-run defaults.
// Confirmation is the caller's responsibility.
type ResetGame struct{}

func (in ResetGame) apply(s *SaveState, now time.Time) (*stepResult, error) {
	*s = *DefaultState()
	return &stepResult{}, nil
}

// ReplaceState swaps in a fully validated imported save. Validation happens
// at the persistence boundary before this intent is ever constructed.
type ReplaceState struct {
	State *SaveState
}

func (in ReplaceState) apply(s *SaveState, now time.Time) (*stepResult, error) {
	if in.State == nil {
		return nil, ValidationError{Reason: "no save to import"}
	}
	*s = *in.State.Clone()
	if s.Version == 0 {
		s.Version = SaveVersion
	}
	return &stepResult{}, nil
}

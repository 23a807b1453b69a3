package engine

import "fmt"

// EnergyError rejects an action the player cannot afford. State is
// unchanged; no partial charge, no XP.
type EnergyError struct {
	Cost int
	Have int
}

func (e EnergyError) Error() string {
	return fmt.Sprintf("not enough energy: need %d, have %d", e.Cost, e.Have)
}

// NotFoundError rejects an intent whose target does not exist.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// ValidationError rejects malformed intent input (empty titles and the like).
type ValidationError struct {
	Reason string
}

func (e ValidationError) Error() string {
	return e.Reason
}

// AlreadyCompletedError rejects completing a daily quest twice in one day.
type AlreadyCompletedError struct {
	ID string
}

func (e AlreadyCompletedError) Error() string {
	return fmt.Sprintf("daily quest %q already completed today", e.ID)
}

// LockedError rejects unlocking a skill node that is not eligible: already
// unlocked, parent still locked, or stat requirements unmet.
type LockedError struct {
	NodeID string
	Reason string
}

func (e LockedError) Error() string {
	return fmt.Sprintf("skill node %q: %s", e.NodeID, e.Reason)
}

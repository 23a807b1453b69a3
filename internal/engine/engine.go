package engine

import (
	"sync"
	"time"
)

// Engine holds the authoritative in-memory SaveState and applies intents as
// serialized, atomic transitions. Every mutation works on a clone of the
// current state and commits it only when the whole intent succeeds, so a
// rejection can never leave a half-applied state behind.
//
// The engine owns no goroutines and does no I/O. Persistence is the
// caller's job after each successful transition, and the daily-reset
// scheduler is just Tick(now) invoked on whatever cadence the host likes.
type Engine struct {
	mu    sync.Mutex
	state *SaveState

	// now is the clock for intents; Tick takes its time explicitly.
	// Overridable in tests.
	now func() time.Time
}

// New creates an engine around an existing state, or first-run defaults
// when state is nil.
func New(state *SaveState) *Engine {
	if state == nil {
		state = DefaultState()
	}
	if state.Version == 0 {
		state.Version = SaveVersion
	}
	return &Engine{state: state, now: time.Now}
}

// State returns a snapshot of the current save. Callers may read and render
// it freely; it shares nothing with the engine's copy.
func (e *Engine) State() *SaveState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Clone()
}

// Result reports what a successful intent did, for the presentation layer
// to render (flash text, level-up banner, achievement popup).
type Result struct {
	State          *SaveState
	XPAwarded      int
	LevelBefore    int
	LevelAfter     int
	LevelUp        bool
	NewAchievement *AchievementDef
}

// Intent is a user intention the engine can apply. Concrete intents are
// plain message structs; see intents.go.
type Intent interface {
	apply(s *SaveState, now time.Time) (*stepResult, error)
}

// stepResult is what an individual transition reports before the engine
// wraps it into a Result.
type stepResult struct {
	xpAwarded    int
	achievements bool // re-evaluate achievements after this intent
}

// Dispatch applies one intent. On success the new state is committed and a
// Result (with a state snapshot) is returned; on rejection the error
// describes why and the state is untouched.
func (e *Engine) Dispatch(intent Intent) (*Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()
	next := e.state.Clone()
	before := ResolveLevel(next.TotalXP).Level

	step, err := intent.apply(next, now)
	if err != nil {
		return nil, err
	}

	var newAch *AchievementDef
	if step.achievements {
		newAch = evaluateAchievements(next)
	}

	e.state = next
	after := ResolveLevel(next.TotalXP).Level
	return &Result{
		State:          next.Clone(),
		XPAwarded:      step.xpAwarded,
		LevelBefore:    before,
		LevelAfter:     after,
		LevelUp:        after > before,
		NewAchievement: newAch,
	}, nil
}

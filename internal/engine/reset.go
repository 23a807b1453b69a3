package engine

import "time"

// Tick runs the daily-reset check for the given time. It is safe to call as
// often as the host likes (process start, a timer, regained focus): the
// lastDailyReset guard makes it a no-op for the rest of the day once a
// rollover has been processed.
//
// On rollover it resets every daily quest's completedToday flag, restores
// energy to the cap (even with the energy system disabled), and zeroes the
// streak when the last active day is older than yesterday. Achievements are
// not re-evaluated here; a stale streak achievement is picked up on the
// next action.
//
// Returns true when state changed, so callers know to persist.
func (e *Engine) Tick(now time.Time) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	today := DayString(now)
	if e.state.LastDailyReset == today {
		return false
	}

	next := e.state.Clone()
	for i := range next.DailyQuests {
		next.DailyQuests[i].CompletedToday = false
	}
	next.Energy = EnergyMax

	yesterday := yesterdayString(now)
	if next.LastActiveDate != "" && next.LastActiveDate != today && next.LastActiveDate != yesterday {
		next.Streak = 0
	}

	next.LastDailyReset = today
	e.state = next
	return true
}

package engine

import "time"

// DayFormat is the calendar-day string layout used for streak and reset
// bookkeeping.
const DayFormat = "2006-01-02"

// DayString returns the calendar day for t in local time.
func DayString(t time.Time) string {
	return t.Format(DayFormat)
}

func yesterdayString(t time.Time) string {
	return t.AddDate(0, 0, -1).Format(DayFormat)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// applyAction charges the economy side effects of a rewarded action onto s:
// streak bookkeeping, energy drain, and the stat/total XP pair (updated
// together, never separately).
//
// Callers must reject insufficient energy before calling; this function
// never produces a partial charge.
func applyAction(s *SaveState, now time.Time, statIndex, xpGain, energyCost int) {
	today := DayString(now)
	yesterday := yesterdayString(now)

	switch {
	case s.LastActiveDate == yesterday:
		s.Streak++
	case s.LastActiveDate != today:
		s.Streak = 1
	}
	if s.Streak > s.LongestStreak {
		s.LongestStreak = s.Streak
	}
	s.LastActiveDate = today

	if s.Settings.EnergyEnabled {
		s.Energy = clamp(s.Energy-energyCost, 0, EnergyMax)
	}
	if s.Energy == 0 {
		s.HitZeroEnergy = true
	}

	if statIndex >= 0 && statIndex < len(s.Stats) {
		s.Stats[statIndex].XP += xpGain
		s.TotalXP += xpGain
	}
}

// checkEnergy reports whether an action costing cost can run. Always true
// when the energy system is disabled.
func (s *SaveState) checkEnergy(cost int) error {
	if !s.Settings.EnergyEnabled {
		return nil
	}
	if s.Energy < cost {
		return EnergyError{Cost: cost, Have: s.Energy}
	}
	return nil
}

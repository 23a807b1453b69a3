package engine

import "time"

// TodaySummary is the dashboard's "today" strip, derived read-only from a
// state snapshot.
type TodaySummary struct {
	XPEarned     int
	Logged       int
	DailiesDone  int
	DailiesTotal int
}

// SummarizeToday tallies today's activity log entries and daily quests.
func SummarizeToday(s *SaveState, now time.Time) TodaySummary {
	today := DayString(now)

	var sum TodaySummary
	for _, e := range s.ActivityLog {
		if DayString(time.UnixMilli(e.LoggedAt)) == today {
			sum.Logged++
			sum.XPEarned += e.XP
		}
	}
	sum.DailiesTotal = len(s.DailyQuests)
	for _, d := range s.DailyQuests {
		if d.CompletedToday {
			sum.DailiesDone++
			sum.XPEarned += DailyQuestXP
		}
	}
	return sum
}

// TreeProgress reports unlocked/total node counts for a tree.
func TreeProgress(t *SkillTree) (done, total int) {
	for _, n := range t.Nodes {
		if n.Unlocked {
			done++
		}
	}
	return done, len(t.Nodes)
}

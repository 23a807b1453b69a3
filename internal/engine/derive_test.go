package engine

import (
	"testing"
	"time"
)

func TestSummarizeToday(t *testing.T) {
	s := DefaultState()
	now := testClock

	s.ActivityLog = []LogEntry{
		{ID: "lift", XP: 15, LoggedAt: now.UnixMilli()},
		{ID: "read", XP: 15, LoggedAt: now.Add(-2 * time.Hour).UnixMilli()},
		{ID: "old", XP: 99, LoggedAt: now.AddDate(0, 0, -1).UnixMilli()},
	}
	s.DailyQuests = []DailyQuest{
		{ID: "d1", CompletedToday: true},
		{ID: "d2", CompletedToday: false},
	}

	sum := SummarizeToday(s, now)
	if sum.Logged != 2 {
		t.Fatalf("logged=%d, want 2 (yesterday excluded)", sum.Logged)
	}
	if sum.XPEarned != 15+15+DailyQuestXP {
		t.Fatalf("xpEarned=%d, want %d", sum.XPEarned, 15+15+DailyQuestXP)
	}
	if sum.DailiesDone != 1 || sum.DailiesTotal != 2 {
		t.Fatalf("dailies=%d/%d, want 1/2", sum.DailiesDone, sum.DailiesTotal)
	}
}

func TestTreeProgress(t *testing.T) {
	s := DefaultState()
	tree := s.findTree("warrior")
	tree.Nodes[0].Unlocked = true
	tree.Nodes[1].Unlocked = true

	done, total := TreeProgress(tree)
	if done != 2 || total != len(tree.Nodes) {
		t.Fatalf("progress=%d/%d, want 2/%d", done, total, len(tree.Nodes))
	}
}

package engine

import "testing"

func TestRuleSatisfied(t *testing.T) {
	tests := []struct {
		name string
		rule Rule
		p    Progress
		want bool
	}{
		{"quests below", Rule{Kind: RuleMinQuests, N: 10}, Progress{Quests: 9}, false},
		{"quests exact", Rule{Kind: RuleMinQuests, N: 10}, Progress{Quests: 10}, true},
		{"bosses", Rule{Kind: RuleMinBosses, N: 1}, Progress{Bosses: 1}, true},
		{"shadows below", Rule{Kind: RuleMinShadows, N: 5}, Progress{Shadows: 4}, false},
		{"level", Rule{Kind: RuleMinLevel, N: 10}, Progress{Level: 12}, true},
		{"streak", Rule{Kind: RuleMinStreak, N: 7}, Progress{Streak: 7}, true},
		{"all stats weakest counts", Rule{Kind: RuleAllStatsAtLeast, N: 5}, Progress{MinStat: 4}, false},
		{"logs", Rule{Kind: RuleMinLogs, N: 50}, Progress{Logs: 50}, true},
		{"skill nodes", Rule{Kind: RuleMinSkillNodes, N: 1}, Progress{Skills: 1}, true},
		{"trees", Rule{Kind: RuleMinTrees, N: 1}, Progress{Trees: 0}, false},
		{"perfect day", Rule{Kind: RulePerfectDay}, Progress{PerfectDay: true}, true},
		{"zero energy", Rule{Kind: RuleZeroEnergy}, Progress{HitZeroEnergy: false}, false},
		{"unknown kind never fires", Rule{Kind: "???"}, Progress{Quests: 100}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rule.Satisfied(tt.p); got != tt.want {
				t.Fatalf("Satisfied=%v, want %v", got, tt.want)
			}
		})
	}
}

func TestSnapshotProgressCountsByType(t *testing.T) {
	s := DefaultState()
	s.CompletedLog = []CompletedEntry{
		{ID: "a", Type: "main"},
		{ID: "b", Type: "boss"},
		{ID: "c", Type: "boss"},
		{ID: "d", Type: "shadow"},
		{ID: "e", Type: "daily"},
	}
	p := SnapshotProgress(s)
	if p.Quests != 5 {
		t.Fatalf("quests=%d, want all log entries counted", p.Quests)
	}
	if p.Bosses != 2 || p.Shadows != 1 {
		t.Fatalf("bosses/shadows=%d/%d, want 2/1", p.Bosses, p.Shadows)
	}
}

func TestSnapshotProgressPerfectDayNeedsAtLeastOneDaily(t *testing.T) {
	s := DefaultState()
	if SnapshotProgress(s).PerfectDay {
		t.Fatalf("perfect day with zero dailies")
	}

	s.DailyQuests = []DailyQuest{
		{ID: "d1", CompletedToday: true},
		{ID: "d2", CompletedToday: false},
	}
	if SnapshotProgress(s).PerfectDay {
		t.Fatalf("perfect day with an incomplete daily")
	}

	s.DailyQuests[1].CompletedToday = true
	if !SnapshotProgress(s).PerfectDay {
		t.Fatalf("all dailies done, perfect day expected")
	}
}

func TestSnapshotProgressTreesRequireEveryNode(t *testing.T) {
	s := DefaultState()
	sage := s.findTree("sage")
	for i := range sage.Nodes[:len(sage.Nodes)-1] {
		sage.Nodes[i].Unlocked = true
	}
	p := SnapshotProgress(s)
	if p.Trees != 0 {
		t.Fatalf("trees=%d with one node still locked, want 0", p.Trees)
	}

	sage.Nodes[len(sage.Nodes)-1].Unlocked = true
	if p = SnapshotProgress(s); p.Trees != 1 {
		t.Fatalf("trees=%d with sage fully unlocked, want 1", p.Trees)
	}
	if p.Skills != len(sage.Nodes) {
		t.Fatalf("skills=%d, want %d", p.Skills, len(sage.Nodes))
	}
}

func TestEvaluateAchievementsRecordsAllSurfacesFirst(t *testing.T) {
	s := DefaultState()
	// One state that newly satisfies both first_quest and first_boss.
	s.CompletedLog = []CompletedEntry{{ID: "b", Type: "boss"}}

	got := evaluateAchievements(s)
	if got == nil || got.ID != "first_quest" {
		t.Fatalf("surfaced=%v, want first_quest (catalog order)", got)
	}
	if len(s.UnlockedAchievements) != 2 {
		t.Fatalf("unlocked=%v, want both recorded", s.UnlockedAchievements)
	}

	// Re-running with nothing new surfaces nothing and records nothing.
	if again := evaluateAchievements(s); again != nil {
		t.Fatalf("re-evaluation surfaced %v for already-unlocked state", again)
	}
	if len(s.UnlockedAchievements) != 2 {
		t.Fatalf("unlocked grew on re-evaluation: %v", s.UnlockedAchievements)
	}
}

func TestAchievementByID(t *testing.T) {
	if a := AchievementByID("streak7"); a == nil || a.Name != "Unstoppable" {
		t.Fatalf("streak7=%+v", a)
	}
	if a := AchievementByID("nope"); a != nil {
		t.Fatalf("unknown id returned %+v", a)
	}
}

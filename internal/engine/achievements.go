package engine

// RuleKind tags an achievement's unlock condition. Conditions are data, not
// code, so the catalog stays serializable and evaluation lives in one place.
type RuleKind string

const (
	RuleMinQuests       RuleKind = "minQuests"
	RuleMinBosses       RuleKind = "minBosses"
	RuleMinShadows      RuleKind = "minShadows"
	RuleMinLevel        RuleKind = "minLevel"
	RuleMinStreak       RuleKind = "minStreak"
	RuleAllStatsAtLeast RuleKind = "allStatsAtLeast"
	RuleMinLogs         RuleKind = "minLogs"
	RuleMinSkillNodes   RuleKind = "minSkillNodes"
	RuleMinTrees        RuleKind = "minTrees"
	RulePerfectDay      RuleKind = "perfectDay"
	RuleZeroEnergy      RuleKind = "zeroEnergy"
)

// Rule is a tagged unlock condition. N is ignored for the boolean kinds.
type Rule struct {
	Kind RuleKind
	N    int
}

// AchievementDef is a static catalog entry; unlock state lives in
// SaveState.UnlockedAchievements.
type AchievementDef struct {
	ID   string
	Name string
	Desc string
	Icon string
	Rule Rule
}

// Achievements returns the catalog in evaluation order.
func Achievements() []AchievementDef {
	return []AchievementDef{
		{ID: "first_quest", Name: "Adventurer", Desc: "Complete your first quest", Icon: "🏅", Rule: Rule{Kind: RuleMinQuests, N: 1}},
		{ID: "ten_quests", Name: "Veteran", Desc: "Complete 10 quests", Icon: "⭐", Rule: Rule{Kind: RuleMinQuests, N: 10}},
		{ID: "fifty_quests", Name: "Legend", Desc: "Complete 50 quests", Icon: "👑", Rule: Rule{Kind: RuleMinQuests, N: 50}},
		{ID: "first_boss", Name: "Dragonslayer", Desc: "Slay a boss", Icon: "🐲", Rule: Rule{Kind: RuleMinBosses, N: 1}},
		{ID: "lv10", Name: "Rising Power", Desc: "Reach level 10", Icon: "🔥", Rule: Rule{Kind: RuleMinLevel, N: 10}},
		{ID: "lv25", Name: "Elite", Desc: "Reach level 25", Icon: "💎", Rule: Rule{Kind: RuleMinLevel, N: 25}},
		{ID: "streak7", Name: "Unstoppable", Desc: "7-day streak", Icon: "⚡", Rule: Rule{Kind: RuleMinStreak, N: 7}},
		{ID: "streak30", Name: "Ascended", Desc: "30-day streak", Icon: "🌟", Rule: Rule{Kind: RuleMinStreak, N: 30}},
		{ID: "shadow5", Name: "Shadow Walker", Desc: "5 shadow dungeons", Icon: "🌑", Rule: Rule{Kind: RuleMinShadows, N: 5}},
		{ID: "allstats5", Name: "Well Rounded", Desc: "All stats level 5+", Icon: "🎯", Rule: Rule{Kind: RuleAllStatsAtLeast, N: 5}},
		{ID: "log50", Name: "Grinder", Desc: "Log 50 activities", Icon: "💪", Rule: Rule{Kind: RuleMinLogs, N: 50}},
		{ID: "skill1", Name: "Skill Unlocked", Desc: "Unlock a skill node", Icon: "🔓", Rule: Rule{Kind: RuleMinSkillNodes, N: 1}},
		{ID: "tree1", Name: "Path Master", Desc: "Complete a skill tree", Icon: "🌳", Rule: Rule{Kind: RuleMinTrees, N: 1}},
		{ID: "daily_all", Name: "Perfect Day", Desc: "Complete all daily quests in a day", Icon: "☀️", Rule: Rule{Kind: RulePerfectDay}},
		{ID: "energy0", Name: "Burnout Survivor", Desc: "Hit 0 energy and keep going", Icon: "🔋", Rule: Rule{Kind: RuleZeroEnergy}},
	}
}

// AchievementByID looks up a catalog entry; nil if unknown.
func AchievementByID(id string) *AchievementDef {
	for _, a := range Achievements() {
		if a.ID == id {
			def := a
			return &def
		}
	}
	return nil
}

// Progress is the derived snapshot achievements are evaluated against.
type Progress struct {
	Quests  int
	Bosses  int
	Shadows int
	Level   int
	Streak  int
	MinStat int
	Logs    int
	Skills  int
	Trees   int
	// PerfectDay is true only when at least one daily quest exists and all
	// are completed today.
	PerfectDay    bool
	HitZeroEnergy bool
}

// Satisfied dispatches the rule against a progress snapshot.
func (r Rule) Satisfied(p Progress) bool {
	switch r.Kind {
	case RuleMinQuests:
		return p.Quests >= r.N
	case RuleMinBosses:
		return p.Bosses >= r.N
	case RuleMinShadows:
		return p.Shadows >= r.N
	case RuleMinLevel:
		return p.Level >= r.N
	case RuleMinStreak:
		return p.Streak >= r.N
	case RuleAllStatsAtLeast:
		return p.MinStat >= r.N
	case RuleMinLogs:
		return p.Logs >= r.N
	case RuleMinSkillNodes:
		return p.Skills >= r.N
	case RuleMinTrees:
		return p.Trees >= r.N
	case RulePerfectDay:
		return p.PerfectDay
	case RuleZeroEnergy:
		return p.HitZeroEnergy
	default:
		return false
	}
}

// SnapshotProgress derives the achievement inputs from a save state.
func SnapshotProgress(s *SaveState) Progress {
	bosses, shadows := 0, 0
	for _, e := range s.CompletedLog {
		switch e.Type {
		case "boss":
			bosses++
		case "shadow":
			shadows++
		}
	}

	skills, trees := 0, 0
	for _, t := range s.SkillTrees {
		all := len(t.Nodes) > 0
		for _, n := range t.Nodes {
			if n.Unlocked {
				skills++
			} else {
				all = false
			}
		}
		if all {
			trees++
		}
	}

	minStat := 0
	for i, st := range s.Stats {
		lv := StatLevel(st.XP)
		if i == 0 || lv < minStat {
			minStat = lv
		}
	}

	perfect := len(s.DailyQuests) > 0
	for _, d := range s.DailyQuests {
		if !d.CompletedToday {
			perfect = false
			break
		}
	}

	return Progress{
		Quests:        len(s.CompletedLog),
		Bosses:        bosses,
		Shadows:       shadows,
		Level:         ResolveLevel(s.TotalXP).Level,
		Streak:        s.Streak,
		MinStat:       minStat,
		Logs:          len(s.ActivityLog),
		Skills:        skills,
		Trees:         trees,
		PerfectDay:    perfect,
		HitZeroEnergy: s.HitZeroEnergy,
	}
}

// evaluateAchievements records every newly satisfied achievement on the
// state (catalog order) and returns the first new one for notification.
func evaluateAchievements(s *SaveState) *AchievementDef {
	p := SnapshotProgress(s)
	have := make(map[string]bool, len(s.UnlockedAchievements))
	for _, id := range s.UnlockedAchievements {
		have[id] = true
	}

	var first *AchievementDef
	for _, a := range Achievements() {
		if have[a.ID] || !a.Rule.Satisfied(p) {
			continue
		}
		s.UnlockedAchievements = append(s.UnlockedAchievements, a.ID)
		if first == nil {
			def := a
			first = &def
		}
	}
	return first
}

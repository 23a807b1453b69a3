package engine

// SaveVersion is carried in every snapshot. There is no migration logic;
// a snapshot either has this shape or it is treated as absent/invalid.
const SaveVersion = 3

// EnergyMax is the energy ceiling. A daily reset restores to this value.
const EnergyMax = 100

// Stat is one of the six character attributes. Level is always derived
// from XP, never stored.
type Stat struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	XP    int    `json:"xp"`
	Color string `json:"color"`
}

// Activity is a user-editable catalog entry. Stat is an index into
// SaveState.Stats.
type Activity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
	Stat int    `json:"stat"`
	XP   int    `json:"xp"`
}

// Quest is a one-off task. On completion it is removed from the active
// list and an entry is appended to the completed log.
type Quest struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Type      string `json:"type"`
	StatIndex int    `json:"statIndex"`
	Desc      string `json:"desc,omitempty"`
	CreatedAt int64  `json:"createdAt,omitempty"`
}

// DailyQuest is a recurring habit. CompletedToday flips back to false on
// each calendar-day rollover; the quest itself is never auto-deleted.
type DailyQuest struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	StatIndex      int    `json:"statIndex"`
	CompletedToday bool   `json:"completedToday"`
}

// CompletedEntry is an immutable record of a finished quest (or daily).
// Timestamps are epoch milliseconds, matching the persisted save shape.
type CompletedEntry struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Type        string `json:"type"`
	StatIndex   int    `json:"statIndex"`
	Desc        string `json:"desc,omitempty"`
	CompletedAt int64  `json:"completedAt"`
}

// LogEntry is a snapshot of an activity at log time. Catalog edits never
// touch past entries. LoggedAt doubles as the entry's unique id.
type LogEntry struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Stat     int    `json:"stat"`
	XP       int    `json:"xp"`
	LoggedAt int64  `json:"loggedAt"`
}

// SkillNode is an unlockable milestone. Req maps stat names to required
// derived levels. Unlocked only ever transitions false -> true.
type SkillNode struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Desc     string         `json:"desc"`
	Tier     int            `json:"tier"`
	Req      map[string]int `json:"req"`
	Unlocked bool           `json:"unlocked"`
	Parent   string         `json:"parent,omitempty"`
}

type SkillTree struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Icon  string      `json:"icon"`
	Desc  string      `json:"desc"`
	Color string      `json:"color"`
	Nodes []SkillNode `json:"nodes"`
}

type Settings struct {
	EnergyEnabled bool `json:"energyEnabled"`
}

// SaveState is the aggregate root. Every intent produces a new version of
// it; the whole thing serializes to a single JSON document.
type SaveState struct {
	Version      int              `json:"version"`
	PlayerName   string           `json:"playerName"`
	Title        string           `json:"title"`
	Stats        []Stat           `json:"stats"`
	Activities   []Activity       `json:"activities"`
	Quests       []Quest          `json:"quests"`
	DailyQuests  []DailyQuest     `json:"dailyQuests"`
	CompletedLog []CompletedEntry `json:"completedLog"`
	ActivityLog  []LogEntry       `json:"activityLog"`
	TotalXP      int              `json:"totalXp"`
	Streak       int              `json:"streak"`
	LongestStreak int             `json:"longestStreak"`
	// Calendar-day strings ("2006-01-02"); empty means never.
	LastActiveDate string `json:"lastActiveDate"`
	LastDailyReset string `json:"lastDailyReset"`

	UnlockedAchievements []string    `json:"unlockedAchievements"`
	SkillTrees           []SkillTree `json:"skillTrees"`

	Energy        int      `json:"energy"`
	HitZeroEnergy bool     `json:"hitZeroEnergy"`
	Settings      Settings `json:"settings"`
}

// Clone returns a deep copy. Intents mutate a clone and commit it only on
// success, which is what makes every transition atomic.
func (s *SaveState) Clone() *SaveState {
	c := *s
	c.Stats = cloneSlice(s.Stats)
	c.Activities = cloneSlice(s.Activities)
	c.Quests = cloneSlice(s.Quests)
	c.DailyQuests = cloneSlice(s.DailyQuests)
	c.CompletedLog = cloneSlice(s.CompletedLog)
	c.ActivityLog = cloneSlice(s.ActivityLog)
	c.UnlockedAchievements = cloneSlice(s.UnlockedAchievements)
	c.SkillTrees = make([]SkillTree, len(s.SkillTrees))
	for i, t := range s.SkillTrees {
		ct := t
		ct.Nodes = make([]SkillNode, len(t.Nodes))
		for j, n := range t.Nodes {
			cn := n
			if n.Req != nil {
				cn.Req = make(map[string]int, len(n.Req))
				for k, v := range n.Req {
					cn.Req[k] = v
				}
			}
			ct.Nodes[j] = cn
		}
		c.SkillTrees[i] = ct
	}
	return &c
}

// cloneSlice copies a slice, keeping empty-but-present distinct from nil so
// snapshots serialize as [] rather than null.
func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func (s *SaveState) findQuest(id string) (int, *Quest) {
	for i := range s.Quests {
		if s.Quests[i].ID == id {
			return i, &s.Quests[i]
		}
	}
	return -1, nil
}

func (s *SaveState) findDaily(id string) *DailyQuest {
	for i := range s.DailyQuests {
		if s.DailyQuests[i].ID == id {
			return &s.DailyQuests[i]
		}
	}
	return nil
}

func (s *SaveState) findActivity(id string) *Activity {
	for i := range s.Activities {
		if s.Activities[i].ID == id {
			return &s.Activities[i]
		}
	}
	return nil
}

func (s *SaveState) findTree(id string) *SkillTree {
	for i := range s.SkillTrees {
		if s.SkillTrees[i].ID == id {
			return &s.SkillTrees[i]
		}
	}
	return nil
}

func (t *SkillTree) findNode(id string) *SkillNode {
	for i := range t.Nodes {
		if t.Nodes[i].ID == id {
			return &t.Nodes[i]
		}
	}
	return nil
}

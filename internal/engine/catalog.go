package engine

// QuestType describes a quest category: its fixed XP reward and the energy
// it costs to complete.
type QuestType struct {
	Key        string
	Label      string
	Icon       string
	Color      string
	XP         int
	EnergyCost int
}

// QuestTypes returns the quest categories. "daily" exists here for display
// and log typing, but daily quests run through their own lifecycle.
func QuestTypes() []QuestType {
	return []QuestType{
		{Key: "main", Label: "Main Quest", Icon: "⚡", Color: "#f1c40f", XP: 50, EnergyCost: 10},
		{Key: "side", Label: "Side Quest", Icon: "📜", Color: "#3498db", XP: 25, EnergyCost: 10},
		{Key: "daily", Label: "Daily Quest", Icon: "☀️", Color: "#2ecc71", XP: 10, EnergyCost: 5},
		{Key: "boss", Label: "Boss Fight", Icon: "🐉", Color: "#e74c3c", XP: 100, EnergyCost: 25},
		{Key: "shadow", Label: "Shadow Dungeon", Icon: "🌑", Color: "#8e44ad", XP: 75, EnergyCost: 20},
	}
}

// QuestTypeByKey looks up a quest type; falls back to "side" for unknown
// keys so imported saves with stray types still resolve to something sane.
func QuestTypeByKey(key string) QuestType {
	types := QuestTypes()
	for _, t := range types {
		if t.Key == key {
			return t
		}
	}
	return types[1]
}

func defaultStats() []Stat {
	return []Stat{
		{Name: "Strength", Icon: "⚔️", XP: 0, Color: "#e74c3c"},
		{Name: "Intelligence", Icon: "🧠", XP: 0, Color: "#3498db"},
		{Name: "Charisma", Icon: "✨", XP: 0, Color: "#f39c12"},
		{Name: "Discipline", Icon: "🛡️", XP: 0, Color: "#2ecc71"},
		{Name: "Creativity", Icon: "🎨", XP: 0, Color: "#9b59b6"},
		{Name: "Spirit", Icon: "🔮", XP: 0, Color: "#1abc9c"},
	}
}

func defaultActivities() []Activity {
	return []Activity{
		{ID: "lift", Name: "Lifted Weights", Icon: "🏋️", Stat: 0, XP: 15},
		{ID: "cardio", Name: "Cardio Session", Icon: "🏃", Stat: 0, XP: 10},
		{ID: "stretch", Name: "Stretched / Mobility", Icon: "🤸", Stat: 0, XP: 8},
		{ID: "diet", Name: "Clean Diet Day", Icon: "🥗", Stat: 3, XP: 10},
		{ID: "no_vice", Name: "No Vices Today", Icon: "🚫", Stat: 3, XP: 10},
		{ID: "early_wake", Name: "Woke Up Early", Icon: "🌅", Stat: 3, XP: 8},
		{ID: "read", Name: "Read a Book", Icon: "📚", Stat: 1, XP: 15},
		{ID: "course", Name: "Took a Course / Lesson", Icon: "🎓", Stat: 1, XP: 20},
		{ID: "code", Name: "Coded / Built Something", Icon: "💻", Stat: 1, XP: 15},
		{ID: "meditate", Name: "Meditated", Icon: "🧘", Stat: 5, XP: 12},
		{ID: "journal", Name: "Journaled", Icon: "📝", Stat: 5, XP: 10},
		{ID: "shadow_work", Name: "Shadow Work", Icon: "🌑", Stat: 5, XP: 20},
		{ID: "network", Name: "Networked / Outreach", Icon: "🤝", Stat: 2, XP: 15},
		{ID: "cold_call", Name: "Cold Outreach / Sales", Icon: "📞", Stat: 2, XP: 20},
		{ID: "content", Name: "Created Content", Icon: "🎬", Stat: 4, XP: 20},
		{ID: "creative", Name: "Creative Project", Icon: "🎨", Stat: 4, XP: 15},
	}
}

func defaultSkillTrees() []SkillTree {
	return []SkillTree{
		{
			ID: "warrior", Name: "Warrior Path", Icon: "⚔️", Desc: "Physical mastery and iron discipline", Color: "#e74c3c",
			Nodes: []SkillNode{
				{ID: "w1", Name: "Consistent Training", Desc: "Train 3x/week minimum", Tier: 0, Req: map[string]int{"Strength": 1, "Discipline": 1}},
				{ID: "w2", Name: "Progressive Overload", Desc: "Track & increase lifts monthly", Tier: 1, Req: map[string]int{"Strength": 3, "Discipline": 2}, Parent: "w1"},
				{ID: "w3", Name: "Nutrition Protocol", Desc: "Dial in macros & meal prep", Tier: 1, Req: map[string]int{"Strength": 2, "Discipline": 4}, Parent: "w1"},
				{ID: "w4", Name: "Advanced Programming", Desc: "Run periodized programs", Tier: 2, Req: map[string]int{"Strength": 6, "Intelligence": 3, "Discipline": 5}, Parent: "w2"},
				{ID: "w5", Name: "Peak Physique", Desc: "Reach ideal body composition", Tier: 3, Req: map[string]int{"Strength": 10, "Discipline": 8, "Spirit": 3}, Parent: "w4"},
			},
		},
		{
			ID: "scholar", Name: "Scholar Path", Icon: "🧠", Desc: "Knowledge acquisition and mastery", Color: "#3498db",
			Nodes: []SkillNode{
				{ID: "s1", Name: "Daily Reading", Desc: "Read 30+ min daily", Tier: 0, Req: map[string]int{"Intelligence": 1, "Discipline": 1}},
				{ID: "s2", Name: "Deep Expertise", Desc: "Master one domain deeply", Tier: 1, Req: map[string]int{"Intelligence": 4, "Discipline": 3}, Parent: "s1"},
				{ID: "s3", Name: "Teaching Others", Desc: "Teach what you know", Tier: 1, Req: map[string]int{"Intelligence": 3, "Charisma": 3}, Parent: "s1"},
				{ID: "s4", Name: "Systems Thinking", Desc: "Connect patterns across domains", Tier: 2, Req: map[string]int{"Intelligence": 7, "Creativity": 4, "Spirit": 2}, Parent: "s2"},
				{ID: "s5", Name: "Thought Leader", Desc: "Publish original ideas that influence", Tier: 3, Req: map[string]int{"Intelligence": 10, "Charisma": 6, "Creativity": 5}, Parent: "s4"},
			},
		},
		{
			ID: "entrepreneur", Name: "Entrepreneur Path", Icon: "💰", Desc: "Build, sell, scale", Color: "#f1c40f",
			Nodes: []SkillNode{
				{ID: "e1", Name: "First Dollar", Desc: "Earn your first dollar online", Tier: 0, Req: map[string]int{"Charisma": 1, "Intelligence": 1}},
				{ID: "e2", Name: "Lead Generation", Desc: "Build a pipeline of leads", Tier: 1, Req: map[string]int{"Charisma": 3, "Discipline": 3}, Parent: "e1"},
				{ID: "e3", Name: "Product Builder", Desc: "Ship a product or service", Tier: 1, Req: map[string]int{"Intelligence": 3, "Creativity": 3}, Parent: "e1"},
				{ID: "e4", Name: "Revenue Engine", Desc: "Hit consistent monthly revenue", Tier: 2, Req: map[string]int{"Charisma": 5, "Discipline": 5, "Intelligence": 4}, Parent: "e2"},
				{ID: "e5", Name: "Business Acquisition", Desc: "Acquire or scale a business", Tier: 2, Req: map[string]int{"Intelligence": 6, "Charisma": 5, "Discipline": 6}, Parent: "e4"},
				{ID: "e6", Name: "Empire Builder", Desc: "Multiple revenue streams + team", Tier: 3, Req: map[string]int{"Charisma": 8, "Intelligence": 7, "Discipline": 8, "Creativity": 5}, Parent: "e5"},
			},
		},
		{
			ID: "creator", Name: "Creator Path", Icon: "🎬", Desc: "Content, art, and audience", Color: "#9b59b6",
			Nodes: []SkillNode{
				{ID: "c1", Name: "First Publish", Desc: "Put something into the world", Tier: 0, Req: map[string]int{"Creativity": 1, "Charisma": 1}},
				{ID: "c2", Name: "Consistent Output", Desc: "Publish weekly", Tier: 1, Req: map[string]int{"Creativity": 3, "Discipline": 4}, Parent: "c1"},
				{ID: "c3", Name: "Find Your Voice", Desc: "Develop a unique style", Tier: 1, Req: map[string]int{"Creativity": 4, "Spirit": 3}, Parent: "c1"},
				{ID: "c4", Name: "Audience Builder", Desc: "Grow to 1K followers", Tier: 2, Req: map[string]int{"Creativity": 5, "Charisma": 5, "Discipline": 5}, Parent: "c2"},
				{ID: "c5", Name: "Creative Authority", Desc: "Known for your craft", Tier: 3, Req: map[string]int{"Creativity": 9, "Charisma": 7, "Spirit": 5}, Parent: "c4"},
			},
		},
		{
			ID: "sage", Name: "Sage Path", Icon: "🔮", Desc: "Inner work, consciousness, wisdom", Color: "#1abc9c",
			Nodes: []SkillNode{
				{ID: "sg1", Name: "Daily Practice", Desc: "Meditate or journal daily", Tier: 0, Req: map[string]int{"Spirit": 1, "Discipline": 1}},
				{ID: "sg2", Name: "Shadow Integration", Desc: "Confront and integrate shadow", Tier: 1, Req: map[string]int{"Spirit": 4, "Intelligence": 2}, Parent: "sg1"},
				{ID: "sg3", Name: "Emotional Mastery", Desc: "Regulate state at will", Tier: 1, Req: map[string]int{"Spirit": 3, "Discipline": 3}, Parent: "sg1"},
				{ID: "sg4", Name: "Flow State Access", Desc: "Enter flow on demand", Tier: 2, Req: map[string]int{"Spirit": 6, "Discipline": 5, "Creativity": 4}, Parent: "sg3"},
				{ID: "sg5", Name: "Awakened", Desc: "Live from expanded consciousness", Tier: 3, Req: map[string]int{"Spirit": 10, "Intelligence": 5, "Discipline": 6}, Parent: "sg4"},
			},
		},
	}
}

// DefaultState returns the first-run save.
func DefaultState() *SaveState {
	return &SaveState{
		Version:              SaveVersion,
		PlayerName:           "Hero",
		Title:                "The Awakened",
		Stats:                defaultStats(),
		Activities:           defaultActivities(),
		Quests:               []Quest{},
		DailyQuests:          []DailyQuest{},
		CompletedLog:         []CompletedEntry{},
		ActivityLog:          []LogEntry{},
		UnlockedAchievements: []string{},
		SkillTrees:           defaultSkillTrees(),
		Energy:               EnergyMax,
		Settings:             Settings{EnergyEnabled: true},
	}
}

package engine

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

// newTestEngine pins the engine clock so day math is deterministic.
func newTestEngine(t *testing.T, state *SaveState, clock time.Time) *Engine {
	t.Helper()
	e := New(state)
	e.now = func() time.Time { return clock }
	return e
}

// totalXPForStatLevel returns the stat XP needed to sit at the given
// derived level.
func totalXPForStatLevel(level int) int {
	total := 0
	for lv := 1; lv < level; lv++ {
		total += XPForLevel(lv)
	}
	return total
}

func mustDispatch(t *testing.T, e *Engine, in Intent) *Result {
	t.Helper()
	res, err := e.Dispatch(in)
	if err != nil {
		t.Fatalf("dispatch %T: %v", in, err)
	}
	return res
}

func TestLogActivityAwardsXPAndCostsEnergy(t *testing.T) {
	e := newTestEngine(t, nil, testClock)

	res := mustDispatch(t, e, LogActivity{ActivityID: "lift"})
	if res.XPAwarded != 15 {
		t.Fatalf("xp awarded=%d, want 15", res.XPAwarded)
	}

	st := e.State()
	if st.Stats[0].XP != 15 || st.TotalXP != 15 {
		t.Fatalf("stat/total xp=%d/%d, want 15/15", st.Stats[0].XP, st.TotalXP)
	}
	if st.Energy != EnergyMax-ActivityEnergyCost {
		t.Fatalf("energy=%d, want %d", st.Energy, EnergyMax-ActivityEnergyCost)
	}
	if len(st.ActivityLog) != 1 {
		t.Fatalf("activity log len=%d, want 1", len(st.ActivityLog))
	}
	if st.Streak != 1 {
		t.Fatalf("streak=%d, want 1 on first ever action", st.Streak)
	}
}

func TestDeleteLogEntryReversesExactly(t *testing.T) {
	e := newTestEngine(t, nil, testClock)
	mustDispatch(t, e, LogActivity{ActivityID: "read"})

	st := e.State()
	entry := st.ActivityLog[0]

	mustDispatch(t, e, DeleteLogEntry{LoggedAt: entry.LoggedAt})

	after := e.State()
	if after.Stats[1].XP != 0 || after.TotalXP != 0 {
		t.Fatalf("xp not reversed: stat=%d total=%d", after.Stats[1].XP, after.TotalXP)
	}
	if after.Energy != EnergyMax {
		t.Fatalf("energy=%d, want refunded to %d", after.Energy, EnergyMax)
	}
	if len(after.ActivityLog) != 0 {
		t.Fatalf("log entry not removed")
	}
}

func TestDeleteLogEntryRefundClampedAtMax(t *testing.T) {
	st := DefaultState()
	st.Settings.EnergyEnabled = false
	e := newTestEngine(t, st, testClock)

	// Energy stays at cap while disabled, so the refund must clamp.
	mustDispatch(t, e, LogActivity{ActivityID: "lift"})
	entry := e.State().ActivityLog[0]
	mustDispatch(t, e, DeleteLogEntry{LoggedAt: entry.LoggedAt})

	if got := e.State().Energy; got != EnergyMax {
		t.Fatalf("energy=%d, want clamped at %d", got, EnergyMax)
	}
}

func TestLogActivityInsufficientEnergyRejected(t *testing.T) {
	st := DefaultState()
	st.Energy = 3
	e := newTestEngine(t, st, testClock)
	before := e.State()

	_, err := e.Dispatch(LogActivity{ActivityID: "lift"})
	var ee EnergyError
	if !errors.As(err, &ee) {
		t.Fatalf("err=%v, want EnergyError", err)
	}

	after := e.State()
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("state changed on rejected intent")
	}
	if after.Energy != 3 || after.TotalXP != 0 {
		t.Fatalf("energy=%d totalXp=%d, want 3/0", after.Energy, after.TotalXP)
	}
}

func TestCompleteQuestMovesToLogOnce(t *testing.T) {
	e := newTestEngine(t, nil, testClock)
	mustDispatch(t, e, AddQuest{Title: "Ship the demo", Type: "side", StatIndex: 1})

	id := e.State().Quests[0].ID
	res := mustDispatch(t, e, CompleteQuest{QuestID: id})
	if res.XPAwarded != 25 {
		t.Fatalf("side quest xp=%d, want 25", res.XPAwarded)
	}

	st := e.State()
	if len(st.Quests) != 0 {
		t.Fatalf("quest still active after completion")
	}
	if len(st.CompletedLog) != 1 || st.CompletedLog[0].Type != "side" {
		t.Fatalf("completed log=%+v, want one side entry", st.CompletedLog)
	}
	if st.Energy != EnergyMax-10 {
		t.Fatalf("energy=%d, want %d", st.Energy, EnergyMax-10)
	}

	// Second completion is a rejection with no change.
	before := e.State()
	_, err := e.Dispatch(CompleteQuest{QuestID: id})
	var nf NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("second completion err=%v, want NotFoundError", err)
	}
	if !reflect.DeepEqual(before, e.State()) {
		t.Fatalf("state changed on rejected double completion")
	}
}

func TestQuestTypeEnergyCosts(t *testing.T) {
	tests := []struct {
		typ  string
		cost int
		xp   int
	}{
		{"main", 10, 50},
		{"side", 10, 25},
		{"boss", 25, 100},
		{"shadow", 20, 75},
	}
	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			e := newTestEngine(t, nil, testClock)
			mustDispatch(t, e, AddQuest{Title: "t", Type: tt.typ, StatIndex: 0})
			id := e.State().Quests[0].ID
			res := mustDispatch(t, e, CompleteQuest{QuestID: id})
			if res.XPAwarded != tt.xp {
				t.Fatalf("xp=%d, want %d", res.XPAwarded, tt.xp)
			}
			if got := e.State().Energy; got != EnergyMax-tt.cost {
				t.Fatalf("energy=%d, want %d", got, EnergyMax-tt.cost)
			}
		})
	}

	// A boss needs 25 energy; 20 is not enough.
	st := DefaultState()
	st.Energy = 20
	e := newTestEngine(t, st, testClock)
	mustDispatch(t, e, AddQuest{Title: "Dragon", Type: "boss", StatIndex: 0})
	id := e.State().Quests[0].ID
	if _, err := e.Dispatch(CompleteQuest{QuestID: id}); err == nil {
		t.Fatalf("expected energy rejection for boss at 20 energy")
	}
	if got := e.State().Energy; got != 20 {
		t.Fatalf("energy=%d after rejection, want 20", got)
	}
}

func TestDeleteQuestNoReward(t *testing.T) {
	e := newTestEngine(t, nil, testClock)
	mustDispatch(t, e, AddQuest{Title: "Abandon me", Type: "main", StatIndex: 0})
	id := e.State().Quests[0].ID

	mustDispatch(t, e, DeleteQuest{QuestID: id})
	st := e.State()
	if len(st.Quests) != 0 || len(st.CompletedLog) != 0 || st.TotalXP != 0 {
		t.Fatalf("delete quest must not reward or log: %+v", st)
	}
}

func TestAddQuestValidation(t *testing.T) {
	e := newTestEngine(t, nil, testClock)
	if _, err := e.Dispatch(AddQuest{Title: "   ", Type: "side", StatIndex: 0}); err == nil {
		t.Fatalf("empty title accepted")
	}
	if _, err := e.Dispatch(AddQuest{Title: "x", Type: "daily", StatIndex: 0}); err == nil {
		t.Fatalf("daily must not be a one-off quest type")
	}
	if _, err := e.Dispatch(AddQuest{Title: "x", Type: "side", StatIndex: 99}); err == nil {
		t.Fatalf("out-of-range stat accepted")
	}
}

func TestDailyQuestLifecycle(t *testing.T) {
	e := newTestEngine(t, nil, testClock)
	mustDispatch(t, e, AddDailyQuest{Title: "Morning run", StatIndex: 0})
	id := e.State().DailyQuests[0].ID

	res := mustDispatch(t, e, CompleteDailyQuest{DailyID: id})
	if res.XPAwarded != DailyQuestXP {
		t.Fatalf("daily xp=%d, want %d", res.XPAwarded, DailyQuestXP)
	}
	st := e.State()
	if !st.DailyQuests[0].CompletedToday {
		t.Fatalf("completedToday not set")
	}
	if len(st.CompletedLog) != 1 || st.CompletedLog[0].Type != "daily" {
		t.Fatalf("daily completion not logged as daily")
	}

	_, err := e.Dispatch(CompleteDailyQuest{DailyID: id})
	var ac AlreadyCompletedError
	if !errors.As(err, &ac) {
		t.Fatalf("second completion err=%v, want AlreadyCompletedError", err)
	}

	// Next calendar day the scheduler re-opens it.
	nextDay := testClock.AddDate(0, 0, 1)
	if !e.Tick(nextDay) {
		t.Fatalf("tick on a new day must roll over")
	}
	e.now = func() time.Time { return nextDay }
	mustDispatch(t, e, CompleteDailyQuest{DailyID: id})
	if got := e.State().Streak; got != 2 {
		t.Fatalf("streak=%d after acting two days straight, want 2", got)
	}
}

func TestAddDailyQuestEmptyTitleRejected(t *testing.T) {
	e := newTestEngine(t, nil, testClock)
	_, err := e.Dispatch(AddDailyQuest{Title: "", StatIndex: 0})
	var ve ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err=%v, want ValidationError", err)
	}
}

func TestVeteranUnlocksAtTenthQuest(t *testing.T) {
	st := DefaultState()
	st.Settings.EnergyEnabled = false
	e := newTestEngine(t, st, testClock)

	for i := 0; i < 9; i++ {
		mustDispatch(t, e, AddQuest{Title: "q", Type: "side", StatIndex: 0})
		id := e.State().Quests[0].ID
		mustDispatch(t, e, CompleteQuest{QuestID: id})
	}
	if hasAchievement(e.State(), "ten_quests") {
		t.Fatalf("ten_quests unlocked after 9 completions")
	}

	mustDispatch(t, e, AddQuest{Title: "q", Type: "side", StatIndex: 0})
	id := e.State().Quests[0].ID
	res := mustDispatch(t, e, CompleteQuest{QuestID: id})
	if !hasAchievement(e.State(), "ten_quests") {
		t.Fatalf("ten_quests not unlocked after 10th completion")
	}
	if res.NewAchievement == nil || res.NewAchievement.ID != "ten_quests" {
		t.Fatalf("new achievement=%v, want ten_quests surfaced", res.NewAchievement)
	}
}

func TestUnlockSkillNodeGates(t *testing.T) {
	st := DefaultState()
	// Strength level 3, Discipline level 4.
	st.Stats[0].XP = totalXPForStatLevel(3)
	st.Stats[3].XP = totalXPForStatLevel(4)
	e := newTestEngine(t, st, testClock)

	// w2 requires Strength 3 / Discipline 2, but its parent w1 is locked.
	_, err := e.Dispatch(UnlockSkillNode{TreeID: "warrior", NodeID: "w2"})
	var le LockedError
	if !errors.As(err, &le) {
		t.Fatalf("err=%v, want LockedError for locked parent", err)
	}

	mustDispatch(t, e, UnlockSkillNode{TreeID: "warrior", NodeID: "w1"})
	res := mustDispatch(t, e, UnlockSkillNode{TreeID: "warrior", NodeID: "w2"})
	if res.NewAchievement == nil || res.NewAchievement.ID != "skill1" {
		// skill1 unlocked on w1 already; w2 yields nothing new.
		if got := e.State(); !hasAchievement(got, "skill1") {
			t.Fatalf("skill1 missing after first node unlock")
		}
	}

	// Already unlocked is a rejection.
	if _, err := e.Dispatch(UnlockSkillNode{TreeID: "warrior", NodeID: "w1"}); err == nil {
		t.Fatalf("re-unlock accepted")
	}

	// Insufficient stats even with parent open: w4 needs Strength 6.
	if _, err := e.Dispatch(UnlockSkillNode{TreeID: "warrior", NodeID: "w4"}); err == nil {
		t.Fatalf("underleveled unlock accepted")
	}
}

func TestUnlockedNodesSurviveTicksAndIntents(t *testing.T) {
	e := newTestEngine(t, nil, testClock)
	mustDispatch(t, e, UnlockSkillNode{TreeID: "sage", NodeID: "sg1"})

	e.Tick(testClock.AddDate(0, 0, 1))
	e.Tick(testClock.AddDate(0, 0, 2))
	mustDispatch(t, e, LogActivity{ActivityID: "meditate"})

	tree := e.State().findTree("sage")
	if !tree.findNode("sg1").Unlocked {
		t.Fatalf("unlocked node reverted")
	}
}

func TestActivityCatalogCRUD(t *testing.T) {
	e := newTestEngine(t, nil, testClock)

	if _, err := e.Dispatch(AddActivity{Name: " ", Stat: 0, XP: 10}); err == nil {
		t.Fatalf("empty activity name accepted")
	}

	mustDispatch(t, e, AddActivity{Name: "Swam laps", Icon: "🏊", Stat: 0, XP: 12})
	st := e.State()
	added := st.Activities[len(st.Activities)-1]
	if added.Name != "Swam laps" || added.XP != 12 {
		t.Fatalf("added activity=%+v", added)
	}

	mustDispatch(t, e, EditActivity{ActivityID: added.ID, XP: 20})
	if got := e.State().findActivity(added.ID); got.XP != 20 {
		t.Fatalf("edit xp=%d, want 20", got.XP)
	}

	// Log it, then delete the catalog entry: the log snapshot survives.
	mustDispatch(t, e, LogActivity{ActivityID: added.ID})
	mustDispatch(t, e, DeleteActivity{ActivityID: added.ID})
	st = e.State()
	if st.findActivity(added.ID) != nil {
		t.Fatalf("activity not deleted from catalog")
	}
	if len(st.ActivityLog) != 1 || st.ActivityLog[0].Name != "Swam laps" {
		t.Fatalf("log snapshot lost after catalog delete: %+v", st.ActivityLog)
	}
}

func TestSetProfileAndEnergyToggle(t *testing.T) {
	e := newTestEngine(t, nil, testClock)
	mustDispatch(t, e, SetProfile{PlayerName: "Michael", Title: "The Architect"})
	st := e.State()
	if st.PlayerName != "Michael" || st.Title != "The Architect" {
		t.Fatalf("profile=%q/%q", st.PlayerName, st.Title)
	}

	mustDispatch(t, e, SetEnergyEnabled{Enabled: false})
	st = e.State()
	if st.Settings.EnergyEnabled {
		t.Fatalf("energy still enabled")
	}
	if st.Energy != EnergyMax {
		t.Fatalf("disabling energy must not touch the bar, got %d", st.Energy)
	}
	if _, err := e.Dispatch(LogActivity{ActivityID: "lift"}); err != nil {
		t.Fatalf("log with energy disabled: %v", err)
	}
	if got := e.State().Energy; got != EnergyMax {
		t.Fatalf("energy charged while disabled: %d", got)
	}
}

func TestResetGameRestoresDefaults(t *testing.T) {
	e := newTestEngine(t, nil, testClock)
	mustDispatch(t, e, LogActivity{ActivityID: "lift"})
	mustDispatch(t, e, ResetGame{})

	st := e.State()
	if st.TotalXP != 0 || len(st.ActivityLog) != 0 || st.Energy != EnergyMax {
		t.Fatalf("reset did not restore defaults: %+v", st)
	}
}

func hasAchievement(s *SaveState, id string) bool {
	for _, got := range s.UnlockedAchievements {
		if got == id {
			return true
		}
	}
	return false
}

package engine

import (
	"testing"
	"time"
)

func TestTickFirstRolloverOfDay(t *testing.T) {
	st := DefaultState()
	st.Energy = 12
	st.DailyQuests = []DailyQuest{
		{ID: "d1", Title: "Run", StatIndex: 0, CompletedToday: true},
		{ID: "d2", Title: "Read", StatIndex: 1, CompletedToday: true},
	}
	e := newTestEngine(t, st, testClock)

	if !e.Tick(testClock) {
		t.Fatalf("first tick of the day must roll over")
	}

	got := e.State()
	if got.Energy != EnergyMax {
		t.Fatalf("energy=%d, want restored to %d", got.Energy, EnergyMax)
	}
	for _, d := range got.DailyQuests {
		if d.CompletedToday {
			t.Fatalf("daily %q still marked done after rollover", d.ID)
		}
	}
	if got.LastDailyReset != DayString(testClock) {
		t.Fatalf("lastDailyReset=%q, want today", got.LastDailyReset)
	}
}

func TestTickIdempotentSameDay(t *testing.T) {
	e := newTestEngine(t, nil, testClock)
	if !e.Tick(testClock) {
		t.Fatalf("first tick must change state")
	}

	// A completion later the same day must survive repeated ticks.
	mustDispatch(t, e, AddDailyQuest{Title: "Stretch", StatIndex: 0})
	id := e.State().DailyQuests[0].ID
	mustDispatch(t, e, CompleteDailyQuest{DailyID: id})

	later := testClock.Add(5 * time.Hour)
	if e.Tick(later) {
		t.Fatalf("second tick on the same day must be a no-op")
	}
	if !e.State().DailyQuests[0].CompletedToday {
		t.Fatalf("same-day tick cleared a completion")
	}
}

func TestTickStreakSurvivesOneDayGap(t *testing.T) {
	st := DefaultState()
	st.Streak = 5
	st.LastActiveDate = DayString(testClock)
	e := newTestEngine(t, st, testClock)

	// Next morning: yesterday was active, the streak holds until tomorrow.
	if !e.Tick(testClock.AddDate(0, 0, 1)) {
		t.Fatalf("tick on a new day must roll over")
	}
	if got := e.State().Streak; got != 5 {
		t.Fatalf("streak=%d after one-day grace, want 5", got)
	}
}

func TestTickStreakBreaksAfterMissedDay(t *testing.T) {
	st := DefaultState()
	st.Streak = 5
	st.LastActiveDate = DayString(testClock)
	e := newTestEngine(t, st, testClock)

	e.Tick(testClock.AddDate(0, 0, 2))
	if got := e.State().Streak; got != 0 {
		t.Fatalf("streak=%d after a missed day, want 0", got)
	}
}

func TestTickFreshSaveKeepsZeroStreak(t *testing.T) {
	e := newTestEngine(t, nil, testClock)
	e.Tick(testClock)
	st := e.State()
	if st.Streak != 0 || st.LastActiveDate != "" {
		t.Fatalf("tick on a never-active save changed streak fields: %+v", st)
	}
}

func TestTickRestoresEnergyEvenWhenDisabled(t *testing.T) {
	st := DefaultState()
	st.Settings.EnergyEnabled = false
	st.Energy = 7
	e := newTestEngine(t, st, testClock)

	e.Tick(testClock)
	if got := e.State().Energy; got != EnergyMax {
		t.Fatalf("energy=%d, want %d regardless of the toggle", got, EnergyMax)
	}
}

package engine

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ActivityEnergyCost is charged per logged activity (and refunded when the
// log entry is deleted).
const ActivityEnergyCost = 5

// LogActivity records a catalog activity as done right now, awarding its
// XP to its stat.
type LogActivity struct {
	ActivityID string
}

func (in LogActivity) apply(s *SaveState, now time.Time) (*stepResult, error) {
	act := s.findActivity(in.ActivityID)
	if act == nil {
		return nil, NotFoundError{Kind: "activity", ID: in.ActivityID}
	}
	if err := s.checkEnergy(ActivityEnergyCost); err != nil {
		return nil, err
	}

	applyAction(s, now, act.Stat, act.XP, ActivityEnergyCost)
	// Snapshot the activity's fields: later catalog edits must not rewrite
	// history.
	s.ActivityLog = append(s.ActivityLog, LogEntry{
		ID:       act.ID,
		Name:     act.Name,
		Icon:     act.Icon,
		Stat:     act.Stat,
		XP:       act.XP,
		LoggedAt: now.UnixMilli(),
	})
	return &stepResult{xpAwarded: act.XP, achievements: true}, nil
}

// DeleteLogEntry reverses a logged activity: its XP comes back off the stat
// and total (floored at zero), the entry is removed, and the energy cost is
// refunded (clamped at the cap).
type DeleteLogEntry struct {
	LoggedAt int64
}

func (in DeleteLogEntry) apply(s *SaveState, now time.Time) (*stepResult, error) {
	idx := -1
	for i := range s.ActivityLog {
		if s.ActivityLog[i].LoggedAt == in.LoggedAt {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, NotFoundError{Kind: "log entry", ID: time.UnixMilli(in.LoggedAt).Format(time.RFC3339)}
	}

	entry := s.ActivityLog[idx]
	if entry.Stat >= 0 && entry.Stat < len(s.Stats) {
		s.Stats[entry.Stat].XP = max(0, s.Stats[entry.Stat].XP-entry.XP)
	}
	s.TotalXP = max(0, s.TotalXP-entry.XP)
	s.ActivityLog = append(s.ActivityLog[:idx], s.ActivityLog[idx+1:]...)
	s.Energy = clamp(s.Energy+ActivityEnergyCost, 0, EnergyMax)
	return &stepResult{}, nil
}

// AddActivity creates a custom catalog activity.
type AddActivity struct {
	Name string
	Icon string
	Stat int
	XP   int
}

func (in AddActivity) apply(s *SaveState, now time.Time) (*stepResult, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ValidationError{Reason: "activity name is required"}
	}
	if in.Stat < 0 || in.Stat >= len(s.Stats) {
		return nil, ValidationError{Reason: "unknown stat"}
	}
	xp := in.XP
	if xp <= 0 {
		xp = 15
	}
	icon := in.Icon
	if icon == "" {
		icon = "⭐"
	}
	s.Activities = append(s.Activities, Activity{
		ID:   uuid.NewString(),
		Name: name,
		Icon: icon,
		Stat: in.Stat,
		XP:   xp,
	})
	return &stepResult{}, nil
}

// EditActivity updates a catalog activity in place. Past log entries keep
// their logged snapshot.
type EditActivity struct {
	ActivityID string
	Name       string
	Icon       string
	Stat       int
	XP         int
}

func (in EditActivity) apply(s *SaveState, now time.Time) (*stepResult, error) {
	act := s.findActivity(in.ActivityID)
	if act == nil {
		return nil, NotFoundError{Kind: "activity", ID: in.ActivityID}
	}
	if name := strings.TrimSpace(in.Name); name != "" {
		act.Name = name
	}
	if in.Icon != "" {
		act.Icon = in.Icon
	}
	if in.Stat >= 0 && in.Stat < len(s.Stats) {
		act.Stat = in.Stat
	}
	if in.XP > 0 {
		act.XP = in.XP
	}
	return &stepResult{}, nil
}

// DeleteActivity removes a catalog activity. No cascade: the activity log
// keeps its snapshots.
type DeleteActivity struct {
	ActivityID string
}

func (in DeleteActivity) apply(s *SaveState, now time.Time) (*stepResult, error) {
	for i := range s.Activities {
		if s.Activities[i].ID == in.ActivityID {
			s.Activities = append(s.Activities[:i], s.Activities[i+1:]...)
			return &stepResult{}, nil
		}
	}
	return nil, NotFoundError{Kind: "activity", ID: in.ActivityID}
}

package engine

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// DailyQuestXP is the fixed reward for completing a daily quest.
	DailyQuestXP = 10

	// DailyQuestEnergyCost is charged per daily completion.
	DailyQuestEnergyCost = 5
)

// AddDailyQuest creates a recurring habit. It persists until explicitly
// deleted; only its completedToday flag cycles.
type AddDailyQuest struct {
	Title     string
	StatIndex int
}

func (in AddDailyQuest) apply(s *SaveState, now time.Time) (*stepResult, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, ValidationError{Reason: "daily quest title is required"}
	}
	if in.StatIndex < 0 || in.StatIndex >= len(s.Stats) {
		return nil, ValidationError{Reason: "unknown stat"}
	}
	s.DailyQuests = append(s.DailyQuests, DailyQuest{
		ID:        uuid.NewString(),
		Title:     title,
		StatIndex: in.StatIndex,
	})
	return &stepResult{}, nil
}

// CompleteDailyQuest marks a daily done for today and logs a "daily" entry
// in the completed log. A second completion before the next rollover is
// rejected.
type CompleteDailyQuest struct {
	DailyID string
}

func (in CompleteDailyQuest) apply(s *SaveState, now time.Time) (*stepResult, error) {
	dq := s.findDaily(in.DailyID)
	if dq == nil {
		return nil, NotFoundError{Kind: "daily quest", ID: in.DailyID}
	}
	if dq.CompletedToday {
		return nil, AlreadyCompletedError{ID: in.DailyID}
	}
	if err := s.checkEnergy(DailyQuestEnergyCost); err != nil {
		return nil, err
	}

	applyAction(s, now, dq.StatIndex, DailyQuestXP, DailyQuestEnergyCost)
	dq.CompletedToday = true
	s.CompletedLog = append(s.CompletedLog, CompletedEntry{
		ID:          dq.ID,
		Title:       dq.Title,
		Type:        "daily",
		StatIndex:   dq.StatIndex,
		CompletedAt: now.UnixMilli(),
	})
	return &stepResult{xpAwarded: DailyQuestXP, achievements: true}, nil
}

// DeleteDailyQuest removes a daily habit permanently. Its past completed
// log entries stay.
type DeleteDailyQuest struct {
	DailyID string
}

func (in DeleteDailyQuest) apply(s *SaveState, now time.Time) (*stepResult, error) {
	for i := range s.DailyQuests {
		if s.DailyQuests[i].ID == in.DailyID {
			s.DailyQuests = append(s.DailyQuests[:i], s.DailyQuests[i+1:]...)
			return &stepResult{}, nil
		}
	}
	return nil, NotFoundError{Kind: "daily quest", ID: in.DailyID}
}

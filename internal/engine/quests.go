package engine

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// AddQuest creates a one-off quest. Daily habits go through AddDailyQuest
// instead; "daily" is not a valid one-off type.
type AddQuest struct {
	Title     string
	Type      string
	StatIndex int
	Desc      string
}

func (in AddQuest) apply(s *SaveState, now time.Time) (*stepResult, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, ValidationError{Reason: "quest title is required"}
	}
	switch in.Type {
	case "main", "side", "boss", "shadow":
	default:
		return nil, ValidationError{Reason: "quest type must be one of main, side, boss, shadow"}
	}
	if in.StatIndex < 0 || in.StatIndex >= len(s.Stats) {
		return nil, ValidationError{Reason: "unknown stat"}
	}

	s.Quests = append(s.Quests, Quest{
		ID:        uuid.NewString(),
		Title:     title,
		Type:      in.Type,
		StatIndex: in.StatIndex,
		Desc:      strings.TrimSpace(in.Desc),
		CreatedAt: now.UnixMilli(),
	})
	return &stepResult{}, nil
}

// CompleteQuest finishes a quest: the quest type's fixed XP is awarded, the
// type's energy cost is charged, and the quest moves from the active list
// to the completed log.
type CompleteQuest struct {
	QuestID string
}

func (in CompleteQuest) apply(s *SaveState, now time.Time) (*stepResult, error) {
	idx, quest := s.findQuest(in.QuestID)
	if quest == nil {
		return nil, NotFoundError{Kind: "quest", ID: in.QuestID}
	}
	qt := QuestTypeByKey(quest.Type)
	if err := s.checkEnergy(qt.EnergyCost); err != nil {
		return nil, err
	}

	applyAction(s, now, quest.StatIndex, qt.XP, qt.EnergyCost)
	s.CompletedLog = append(s.CompletedLog, CompletedEntry{
		ID:          quest.ID,
		Title:       quest.Title,
		Type:        quest.Type,
		StatIndex:   quest.StatIndex,
		Desc:        quest.Desc,
		CompletedAt: now.UnixMilli(),
	})
	s.Quests = append(s.Quests[:idx], s.Quests[idx+1:]...)
	return &stepResult{xpAwarded: qt.XP, achievements: true}, nil
}

// DeleteQuest abandons a quest: removed outright, no reward, no log entry.
type DeleteQuest struct {
	QuestID string
}

func (in DeleteQuest) apply(s *SaveState, now time.Time) (*stepResult, error) {
	idx, quest := s.findQuest(in.QuestID)
	if quest == nil {
		return nil, NotFoundError{Kind: "quest", ID: in.QuestID}
	}
	s.Quests = append(s.Quests[:idx], s.Quests[idx+1:]...)
	return &stepResult{}, nil
}

package engine

import "time"

// NodeStatus is the display state of a skill node.
type NodeStatus string

const (
	NodeLocked   NodeStatus = "locked"
	NodeReady    NodeStatus = "ready"
	NodeUnlocked NodeStatus = "unlocked"
)

// nodeEligible checks unlock eligibility: not already unlocked, parent (if
// any) unlocked, and every required stat at or above its level. A
// requirement naming a stat that does not exist fails conservatively.
func nodeEligible(s *SaveState, tree *SkillTree, node *SkillNode) error {
	if node.Unlocked {
		return LockedError{NodeID: node.ID, Reason: "already unlocked"}
	}
	if node.Parent != "" {
		parent := tree.findNode(node.Parent)
		if parent == nil || !parent.Unlocked {
			return LockedError{NodeID: node.ID, Reason: "parent node still locked"}
		}
	}
	for name, req := range node.Req {
		lv, ok := statLevelByName(s, name)
		if !ok || lv < req {
			return LockedError{NodeID: node.ID, Reason: "stat requirements not met"}
		}
	}
	return nil
}

func statLevelByName(s *SaveState, name string) (int, bool) {
	for _, st := range s.Stats {
		if st.Name == name {
			return StatLevel(st.XP), true
		}
	}
	return 0, false
}

// NodeStatusOf reports how a node should render. Read-only helper for the
// presentation layer.
func NodeStatusOf(s *SaveState, tree *SkillTree, node *SkillNode) NodeStatus {
	if node.Unlocked {
		return NodeUnlocked
	}
	if nodeEligible(s, tree, node) == nil {
		return NodeReady
	}
	return NodeLocked
}

// UnlockSkillNode unlocks an eligible node. Unlocks are monotonic: once
// true, nothing in the engine ever flips a node back.
type UnlockSkillNode struct {
	TreeID string
	NodeID string
}

func (in UnlockSkillNode) apply(s *SaveState, now time.Time) (*stepResult, error) {
	tree := s.findTree(in.TreeID)
	if tree == nil {
		return nil, NotFoundError{Kind: "skill tree", ID: in.TreeID}
	}
	node := tree.findNode(in.NodeID)
	if node == nil {
		return nil, NotFoundError{Kind: "skill node", ID: in.NodeID}
	}
	if err := nodeEligible(s, tree, node); err != nil {
		return nil, err
	}
	node.Unlocked = true
	return &stepResult{achievements: true}, nil
}

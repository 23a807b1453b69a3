package engine

import "math"

const (
	// LevelBaseXP is the XP required to clear level 1.
	LevelBaseXP = 100.0

	// LevelGrowth is the per-level geometric growth factor.
	LevelGrowth = 1.15
)

// XPForLevel returns the XP required to clear the given level:
// floor(100 * 1.15^(level-1)). Strictly increasing for level >= 1.
func XPForLevel(level int) int {
	if level < 1 {
		level = 1
	}
	return int(math.Floor(LevelBaseXP * math.Pow(LevelGrowth, float64(level-1))))
}

// Level is the result of resolving cumulative XP against the curve.
type Level struct {
	Level     int
	CurrentXP int // XP accumulated into the current level
	Needed    int // XP required to clear the current level
}

// ResolveLevel maps total XP to a level plus progress. Starting at level 1,
// per-level requirements are consumed from the remainder until it no longer
// covers the current level. Terminates because the requirement grows
// geometrically. O(level), which stays small in practice.
func ResolveLevel(totalXP int) Level {
	if totalXP < 0 {
		totalXP = 0
	}
	lv := 1
	rem := totalXP
	for rem >= XPForLevel(lv) {
		rem -= XPForLevel(lv)
		lv++
	}
	return Level{Level: lv, CurrentXP: rem, Needed: XPForLevel(lv)}
}

// StatLevel is the same curve applied to a single stat's XP.
func StatLevel(xp int) int {
	return ResolveLevel(xp).Level
}

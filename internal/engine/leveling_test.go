package engine

import "testing"

func TestXPForLevelStrictlyIncreasing(t *testing.T) {
	prev := XPForLevel(1)
	if prev <= 0 {
		t.Fatalf("XPForLevel(1)=%d, want positive", prev)
	}
	for lv := 2; lv <= 80; lv++ {
		cur := XPForLevel(lv)
		if cur <= prev {
			t.Fatalf("XPForLevel(%d)=%d not greater than XPForLevel(%d)=%d", lv, cur, lv-1, prev)
		}
		prev = cur
	}
}

func TestResolveLevelBoundaries(t *testing.T) {
	lv := ResolveLevel(0)
	if lv.Level != 1 || lv.CurrentXP != 0 || lv.Needed != XPForLevel(1) {
		t.Fatalf("ResolveLevel(0)=%+v", lv)
	}

	l1 := XPForLevel(1)
	if got := ResolveLevel(l1 - 1); got.Level != 1 || got.CurrentXP != l1-1 {
		t.Fatalf("ResolveLevel(l1-1)=%+v, want level 1", got)
	}
	if got := ResolveLevel(l1); got.Level != 2 || got.CurrentXP != 0 {
		t.Fatalf("ResolveLevel(l1)=%+v, want level 2 with 0 into it", got)
	}
}

func TestResolveLevelConservesXP(t *testing.T) {
	totals := []int{0, 1, 50, 99, 100, 114, 115, 250, 1000, 12345, 999999}
	for _, total := range totals {
		got := ResolveLevel(total)
		if got.CurrentXP >= got.Needed {
			t.Fatalf("ResolveLevel(%d): currentXp %d >= needed %d", total, got.CurrentXP, got.Needed)
		}
		consumed := 0
		for lv := 1; lv < got.Level; lv++ {
			consumed += XPForLevel(lv)
		}
		if consumed+got.CurrentXP != total {
			t.Fatalf("ResolveLevel(%d): consumed %d + remainder %d != total", total, consumed, got.CurrentXP)
		}
	}
}

func TestResolveLevelNegativeClamped(t *testing.T) {
	if got := ResolveLevel(-10); got.Level != 1 || got.CurrentXP != 0 {
		t.Fatalf("ResolveLevel(-10)=%+v, want fresh level 1", got)
	}
}

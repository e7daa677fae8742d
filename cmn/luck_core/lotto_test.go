package luck_core

import (
	"sort"
	"testing"
)

func TestShapeForType(t *testing.T) {
	cases := []struct {
		gameType string
		count    int
		max      int
	}{
		{"mega", 6, 45},
		{"power", 6, 55},
		{"lotto", 5, 35},
		{"unknown", 6, 45}, // 未知玩法回退 mega
		{"", 6, 45},
	}

	for _, c := range cases {
		shape := ShapeForType(c.gameType)
		if shape.Count != c.count || shape.MaxValue != c.max {
			t.Errorf("ShapeForType(%q) = %+v", c.gameType, shape)
		}
	}
}

func TestGenerateSmartLottoSeedPriority(t *testing.T) {
	shape := ShapeForType("lotto")
	// 越界(99)与重复(7)被静默跳过，带空格的合法号照常采纳
	seeds := []string{"3", " 7 ", "99", "7", "abc"}

	result := GenerateSmartLotto(shape, seeds, NewSystemSource())

	if len(result) != 5 {
		t.Fatalf("result size = %d, want 5", len(result))
	}
	counts := make(map[string]int)
	for _, s := range result {
		counts[s]++
	}
	if counts["03"] != 1 || counts["07"] != 1 {
		t.Errorf("seed numbers not adopted exactly once: %v", result)
	}
	if counts["99"] != 0 {
		t.Errorf("out-of-range seed adopted: %v", result)
	}
}

func TestGenerateSmartLottoShape(t *testing.T) {
	for _, gameType := range []string{"mega", "power", "lotto"} {
		shape := ShapeForType(gameType)
		result := GenerateSmartLotto(shape, nil, NewSystemSource())

		if len(result) != shape.Count {
			t.Fatalf("%s: size = %d, want %d", gameType, len(result), shape.Count)
		}
		if !sort.StringsAreSorted(result) {
			t.Errorf("%s: not sorted: %v", gameType, result)
		}
		seen := make(map[string]bool)
		for _, s := range result {
			if len(s) != 2 {
				t.Errorf("%s: number %q not zero-padded", gameType, s)
			}
			if seen[s] {
				t.Errorf("%s: duplicate %q in %v", gameType, s, result)
			}
			seen[s] = true
		}
	}
}

func TestGenerateSmartLottoDeterministicWithSeededSource(t *testing.T) {
	shape := ShapeForType("mega")

	a := GenerateSmartLotto(shape, []string{"12"}, NewSeededRNG(777))
	b := GenerateSmartLotto(shape, []string{"12"}, NewSeededRNG(777))
	if len(a) != len(b) {
		t.Fatalf("sizes differ: %v vs %v", a, b)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("seeded source diverged: %v vs %v", a, b)
		}
	}
}

func TestGenerateSmartLottoFullSeedSet(t *testing.T) {
	shape := ShapeForType("power")
	seeds := []string{"5", "12", "23", "34", "45", "55", "1"}

	result := GenerateSmartLotto(shape, seeds, NewSystemSource())

	want := []string{"05", "12", "23", "34", "45", "55"}
	if len(result) != len(want) {
		t.Fatalf("size = %d: %v", len(result), result)
	}
	for i := range want {
		if result[i] != want[i] {
			t.Fatalf("result = %v, want %v (extra seeds must be ignored after the set is full)", result, want)
		}
	}
}

func TestGenerateBonusNumberAvoidsMainSet(t *testing.T) {
	shape := ShapeForType("power")
	main := []string{"01", "02", "03", "04", "05", "06"}

	for i := 0; i < 50; i++ {
		bonus := GenerateBonusNumber(shape, main, NewSystemSource())
		for _, m := range main {
			if bonus == m {
				t.Fatalf("bonus %q collides with main set", bonus)
			}
		}
		if len(bonus) != 2 {
			t.Fatalf("bonus %q not zero-padded", bonus)
		}
	}
}

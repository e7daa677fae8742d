package luck_core

import "testing"

func TestGetZodiacFromYear(t *testing.T) {
	cases := []struct {
		year int
		want string
	}{
		{1996, "rat"},
		{2008, "rat"},
		{4, "rat"},
		{1999, "cat"}, // 越南生肖：猫年
		{1988, "dragon"},
		{2025, "snake"},
		{2026, "horse"},
	}

	for _, c := range cases {
		if got := GetZodiacFromYear(c.year); got != c.want {
			t.Errorf("GetZodiacFromYear(%d) = %q, want %q", c.year, got, c.want)
		}
	}
}

func TestZodiacTwelveYearCycle(t *testing.T) {
	for year := -60; year <= 2100; year += 7 {
		if a, b := GetZodiacFromYear(year), GetZodiacFromYear(year+12); a != b {
			t.Fatalf("cycle broken at %d: %q != %q", year, a, b)
		}
	}
}

func TestZodiacTotalOverNegativeYears(t *testing.T) {
	valid := make(map[string]bool, len(ZodiacOrder))
	for _, id := range ZodiacOrder {
		valid[id] = true
	}

	for year := -30; year < 30; year++ {
		got := GetZodiacFromYear(year)
		if !valid[got] {
			t.Fatalf("GetZodiacFromYear(%d) = %q, not a zodiac id", year, got)
		}
	}
}

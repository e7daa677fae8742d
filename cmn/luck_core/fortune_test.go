package luck_core

import (
	"strings"
	"testing"
	"time"
)

func TestDailyFortuneDeterministicWithinHour(t *testing.T) {
	now := time.Date(2025, 5, 15, 10, 5, 0, 0, time.UTC)

	a := GetDailyFortuneAt("rat", 1996, nil, LangVN, now)
	b := GetDailyFortuneAt("rat", 1996, nil, LangVN, now.Add(40*time.Minute))
	if a != b {
		t.Fatalf("same hour diverged:\n%+v\n%+v", a, b)
	}
}

func TestDailyFortuneVariesByHourAndZodiac(t *testing.T) {
	now := time.Date(2025, 5, 15, 10, 0, 0, 0, time.UTC)

	base := GetDailyFortuneAt("rat", 0, nil, LangVN, now)
	nextHour := GetDailyFortuneAt("rat", 0, nil, LangVN, now.Add(time.Hour))
	otherZodiac := GetDailyFortuneAt("dragon", 0, nil, LangVN, now)

	if base == nextHour && base == otherZodiac {
		t.Errorf("fortune does not vary with hour or zodiac")
	}
}

func TestDailyFortuneBirthYearShiftsSeed(t *testing.T) {
	now := time.Date(2025, 5, 15, 10, 0, 0, 0, time.UTC)

	plain := GetDailyFortuneAt("rat", 0, nil, LangVN, now)
	personal := GetDailyFortuneAt("rat", 1996, nil, LangVN, now)

	if personal.ForYear != 1996 {
		t.Errorf("ForYear = %d", personal.ForYear)
	}
	if plain.ForYear != 0 {
		t.Errorf("plain ForYear = %d", plain.ForYear)
	}
	if plain.LuckyNumber == personal.LuckyNumber && plain.FortuneText == personal.FortuneText {
		t.Errorf("birth year did not influence the draw")
	}
}

func TestDailyFortuneShape(t *testing.T) {
	now := time.Date(2025, 5, 15, 10, 0, 0, 0, time.UTC)

	for _, zodiac := range ZodiacOrder {
		f := GetDailyFortuneAt(zodiac, 0, nil, LangEN, now)

		if len(f.LuckyNumber) != 2 {
			t.Errorf("%s: LuckyNumber = %q, want two digits", zodiac, f.LuckyNumber)
		}
		if f.Stars < 3 || f.Stars > 5 {
			t.Errorf("%s: Stars = %d, want 3-5", zodiac, f.Stars)
		}
		if f.LuckyColor == "" || !strings.HasPrefix(f.LuckyColorCode, "#") {
			t.Errorf("%s: color %q / %q", zodiac, f.LuckyColor, f.LuckyColorCode)
		}
		if !strings.Contains(f.LuckyTime, ":00 - ") {
			t.Errorf("%s: LuckyTime = %q", zodiac, f.LuckyTime)
		}
		if f.IsDeep {
			t.Errorf("%s: IsDeep should be false without deep stats", zodiac)
		}
	}
}

func TestDailyFortuneDeepAnalysis(t *testing.T) {
	now := time.Date(2025, 5, 15, 10, 0, 0, 0, time.UTC)
	deep := &DeepStats{Month: 11, Day: 5, Hour: 3}

	f := GetDailyFortuneAt("snake", 1989, deep, LangVN, now)

	if !f.IsDeep {
		t.Fatalf("IsDeep = false with deep stats")
	}
	if f.Stars < 4 || f.Stars > 5 {
		t.Errorf("deep Stars = %d, want 4-5", f.Stars)
	}
	if !strings.HasPrefix(f.FortuneText, deepPrefixes[LangVN]) {
		t.Errorf("deep narrative missing prefix: %q", f.FortuneText)
	}

	plain := GetDailyFortuneAt("snake", 1989, nil, LangVN, now)
	if plain.LuckyNumber == f.LuckyNumber && plain.LuckyTime == f.LuckyTime {
		t.Errorf("deep mix did not change the draw")
	}

	// 同样的深度输入必须复现
	again := GetDailyFortuneAt("snake", 1989, deep, LangVN, now)
	if f != again {
		t.Errorf("deep fortune not reproducible:\n%+v\n%+v", f, again)
	}
}

func TestDailyFortuneLangFallback(t *testing.T) {
	now := time.Date(2025, 5, 15, 10, 0, 0, 0, time.UTC)

	unknown := GetDailyFortuneAt("rat", 0, nil, Lang("jp"), now)
	vn := GetDailyFortuneAt("rat", 0, nil, LangVN, now)
	if unknown.FortuneText != vn.FortuneText || unknown.LuckyColor != vn.LuckyColor {
		t.Errorf("unknown lang should fall back to vn")
	}
}

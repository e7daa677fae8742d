package luck_core

import (
	"strings"
	"testing"
	"time"
)

func TestAnalyzeDreamDeterministicWithinHour(t *testing.T) {
	now := time.Date(2025, 5, 15, 10, 20, 0, 0, time.UTC)

	a := AnalyzeDreamAt("snake", "rat", now)
	b := AnalyzeDreamAt("snake", "rat", now.Add(30*time.Minute))
	if len(a) != 6 || len(b) != 6 {
		t.Fatalf("pool size: %d / %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same hour diverged: %v vs %v", a, b)
		}
	}
}

func TestAnalyzeDreamPoolShape(t *testing.T) {
	now := time.Date(2025, 5, 15, 10, 0, 0, 0, time.UTC)

	for _, input := range []string{"snake", "mơ thấy rắn bò vào nhà", "", "xyzzy-no-match", "불"} {
		pool := AnalyzeDreamAt(input, "", now)
		if len(pool) != 6 {
			t.Fatalf("AnalyzeDreamAt(%q) pool size = %d", input, len(pool))
		}
		seen := make(map[int]bool)
		for i, n := range pool {
			if n < 1 || n > 55 {
				t.Fatalf("AnalyzeDreamAt(%q) out-of-range number %d", input, n)
			}
			if seen[n] {
				t.Fatalf("AnalyzeDreamAt(%q) duplicate %d", input, n)
			}
			seen[n] = true
			if i > 0 && pool[i-1] > n {
				t.Fatalf("AnalyzeDreamAt(%q) not ascending: %v", input, pool)
			}
		}
	}
}

func TestAnalyzeDreamInjectsFirstEntryNumber(t *testing.T) {
	// snake 词条首号 32 必然入池
	now := time.Date(2025, 5, 15, 10, 0, 0, 0, time.UTC)

	for hour := 0; hour < 24; hour++ {
		pool := AnalyzeDreamAt("snake", "rat", now.Add(time.Duration(hour)*time.Hour))
		found := false
		for _, n := range pool {
			if n == 32 {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("hour %d: pool %v missing base number 32", hour, pool)
		}
	}
}

func TestAnalyzeDreamSubstringMatch(t *testing.T) {
	// 关键词作为长句子的子串也要命中同一词条
	now := time.Date(2025, 5, 15, 10, 0, 0, 0, time.UTC)

	pool := AnalyzeDreamAt("đêm qua mơ thấy rắn trong vườn", "", now)
	found := false
	for _, n := range pool {
		if n == 32 {
			found = true
		}
	}
	if !found {
		t.Fatalf("sentence containing rắn missed entry numbers: %v", pool)
	}
}

func TestInterpretDreamResultFields(t *testing.T) {
	now := time.Date(2025, 5, 15, 10, 0, 0, 0, time.UTC)

	result := InterpretDreamAt("snake", LangEN, now)

	if result.Keyword != "Snake" {
		t.Errorf("Keyword = %q, want Snake", result.Keyword)
	}
	if result.NormalizedKeyword != "snake" {
		t.Errorf("NormalizedKeyword = %q", result.NormalizedKeyword)
	}
	if result.Type != "animal" {
		t.Errorf("Type = %q, want animal", result.Type)
	}
	if result.Omen != "Good" && result.Omen != "Bad" {
		t.Errorf("Omen = %q", result.Omen)
	}
	if len(result.NumberPool) != 6 {
		t.Errorf("NumberPool size = %d", len(result.NumberPool))
	}
	if parts := strings.Split(result.LuckyNumbers, " - "); len(parts) != 3 {
		t.Errorf("LuckyNumbers = %q, want three display numbers", result.LuckyNumbers)
	}
	if !strings.Contains(result.Description, "rebirth") {
		t.Errorf("snake story not selected: %q", result.Description)
	}
	if result.Direction == "" || result.Time == "" {
		t.Errorf("missing direction/time: %+v", result)
	}
	if result.Advice.Do == "" || result.Advice.Avoid == "" {
		t.Errorf("missing advice: %+v", result.Advice)
	}
	if result.LuckyItem.Color != strings.ToUpper(result.LuckyItem.Color) {
		t.Errorf("LuckyItem.Color not uppercased: %q", result.LuckyItem.Color)
	}
}

func TestInterpretDreamEmptyInput(t *testing.T) {
	now := time.Date(2025, 5, 15, 10, 0, 0, 0, time.UTC)

	result := InterpretDreamAt("", LangVN, now)
	if len(result.NumberPool) != 6 {
		t.Fatalf("empty input pool size = %d", len(result.NumberPool))
	}
	if result.Type != "abstract" {
		t.Errorf("empty input Type = %q", result.Type)
	}
	if result.ImageUrl == "" {
		t.Errorf("empty input should fall back to default image")
	}
}

func TestInterpretDreamLangFallback(t *testing.T) {
	now := time.Date(2025, 5, 15, 10, 0, 0, 0, time.UTC)

	unknown := InterpretDreamAt("snake", Lang("jp"), now)
	vn := InterpretDreamAt("snake", LangVN, now)
	if unknown.Description != vn.Description {
		t.Errorf("unknown lang should fall back to vn narrative")
	}
}

func TestGetDreamImage(t *testing.T) {
	if got := GetDreamImage("tiger"); got != dreamImages["tiger"] {
		t.Errorf("exact match failed: %q", got)
	}
	if got := GetDreamImage("thấy vàng trong nhà"); got != dreamImages["money"] {
		t.Errorf("money category match failed: %q", got)
	}
	if got := GetDreamImage("snake"); got != dreamImages["animal"] {
		t.Errorf("animal category match failed: %q", got)
	}
	if got := GetDreamImage("no-category-here"); got != dreamImages["default"] {
		t.Errorf("default fallback failed: %q", got)
	}
}

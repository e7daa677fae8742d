package luck_core

import (
	"reflect"
	"strings"
	"testing"
)

func TestAnalyzeFateDeterministic(t *testing.T) {
	a := AnalyzeFate("Nguyễn Văn A", "male", "15", "11", "1996", "10", "money", "đầu tư", LangVN)
	b := AnalyzeFate("Nguyễn Văn A", "male", "15", "11", "1996", "10", "money", "đầu tư", LangVN)

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("same input produced different reports:\n%+v\n%+v", a, b)
	}

	c := AnalyzeFate("Nguyễn Văn B", "male", "15", "11", "1996", "10", "money", "đầu tư", LangVN)
	if reflect.DeepEqual(a.LuckyNumbers, c.LuckyNumbers) && a.FiveElements == c.FiveElements {
		t.Errorf("different name should change the draw")
	}
}

func TestAnalyzeFateLuckyNumbers(t *testing.T) {
	result := AnalyzeFate("Test", "female", "1", "1", "2000", "0", "love", "", LangEN)

	if len(result.LuckyNumbers) != 6 {
		t.Fatalf("lucky numbers size = %d", len(result.LuckyNumbers))
	}
	seen := make(map[string]bool)
	prev := ""
	for _, s := range result.LuckyNumbers {
		if len(s) != 2 {
			t.Errorf("number %q not zero-padded", s)
		}
		if seen[s] {
			t.Errorf("duplicate number %q", s)
		}
		seen[s] = true
		if prev != "" && s < prev {
			t.Errorf("numbers not ascending: %v", result.LuckyNumbers)
		}
		prev = s
	}
}

func TestAnalyzeFateFiveElementsSum(t *testing.T) {
	// 向下取整导致合计允许略低于100
	inputs := []string{"A", "B", "C", "Long", "Hương", "민준"}
	for _, name := range inputs {
		r := AnalyzeFate(name, "male", "5", "6", "1990", "12", "career", "", LangVN)
		fe := r.FiveElements
		sum := fe.Kim + fe.Moc + fe.Thuy + fe.Hoa + fe.Tho
		if sum < 95 || sum > 100 {
			t.Errorf("%s: five elements sum = %d (%+v)", name, sum, fe)
		}
	}
}

func TestAnalyzeFateYearBranchFollowsZodiac(t *testing.T) {
	cases := []struct {
		year   string
		branch string
	}{
		{"1996", "Rat"},
		{"1999", "Cat"},
		{"1988", "Dragon"},
		{"not-a-year", "Monkey"}, // 解析失败回退 0 年
	}

	for _, c := range cases {
		r := AnalyzeFate("Test", "male", "1", "1", c.year, "0", "money", "", LangVN)
		if r.FourPillars.Year.Branch != c.branch {
			t.Errorf("year %q: branch = %q, want %q", c.year, r.FourPillars.Year.Branch, c.branch)
		}
	}
}

func TestAnalyzeFatePillarsFromTables(t *testing.T) {
	r := AnalyzeFate("Test", "female", "20", "7", "1985", "14", "health", "", LangVN)

	stems := make(map[string]bool)
	for _, s := range heavenlyStems {
		stems[s] = true
	}
	branches := make(map[string]bool)
	for _, b := range earthlyBranches {
		branches[b] = true
	}

	pillars := []Pillar{r.FourPillars.Year, r.FourPillars.Month, r.FourPillars.Day, r.FourPillars.Time}
	for i, p := range pillars {
		if !stems[p.Stem] {
			t.Errorf("pillar %d stem %q not in table", i, p.Stem)
		}
	}
	for i, p := range pillars[1:] {
		if !branches[p.Branch] {
			t.Errorf("pillar %d branch %q not in table", i+1, p.Branch)
		}
	}
}

func TestAnalyzeFateReportStructure(t *testing.T) {
	r := AnalyzeFate("Nguyễn Thị Hoa", "female", "8", "3", "1992", "6", "love", "hôn nhân", LangVN)

	for _, marker := range []string{"## ", "1. **1:**", "2. **2:**", "3. **3:**", "* **M+1:**", "* **M+2:**", "* **M+3:**", "(3 Months)"} {
		if !strings.Contains(r.Advice, marker) {
			t.Errorf("report missing %q:\n%s", marker, r.Advice)
		}
	}
	if !strings.Contains(r.Advice, "(hôn nhân)") {
		t.Errorf("concern not embedded in report")
	}
	if r.Info != "Nữ • 8/3/1992" {
		t.Errorf("Info = %q", r.Info)
	}
	if r.Name != "Nguyễn Thị Hoa" {
		t.Errorf("Name = %q", r.Name)
	}
}

func TestAnalyzeFateEmptyConcern(t *testing.T) {
	r := AnalyzeFate("Test", "male", "1", "1", "2000", "0", "money", "", LangEN)
	if strings.Contains(r.Advice, "()") {
		t.Errorf("empty concern rendered as empty parentheses")
	}
	if !strings.HasPrefix(r.Info, genderLabels["male"][LangEN]) {
		t.Errorf("Info = %q, want male label prefix", r.Info)
	}
}

func TestFiveElementsDominantWeak(t *testing.T) {
	fe := FiveElements{Kim: 30, Moc: 10, Thuy: 25, Hoa: 20, Tho: 15}
	dominant, weak := fe.DominantWeak()
	if dominant != "kim" || weak != "moc" {
		t.Errorf("DominantWeak = %q/%q", dominant, weak)
	}

	// 并列时旺相取先者，衰弱取后者
	tied := FiveElements{Kim: 20, Moc: 20, Thuy: 20, Hoa: 20, Tho: 20}
	dominant, weak = tied.DominantWeak()
	if dominant != "kim" || weak != "tho" {
		t.Errorf("tied DominantWeak = %q/%q", dominant, weak)
	}
}

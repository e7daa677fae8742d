package luck_core

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// AnalyzeFate 生成八字分析报告
// 种子只由输入字段决定，与时间无关：同样的输入永远得到同样的报告。
// 所有字符串输入都被接受，不产生错误
func AnalyzeFate(name, gender, day, month, year, hour, topic, concern string, lang Lang) FateResult {
	inputString := name + gender + day + month + year + hour + topic + concern
	rng := NewSeededRNG(HashSeed(inputString))

	// 抽取顺序是契约的一部分：
	// 幸运号码 → 五行权重 → 年干、月干、月支、日干、日支、时干、时支

	// 幸运号码：六个不重复，1-55，升序
	picked := make(map[int]bool)
	var numbers []int
	for i := 0; len(numbers) < 6 && i < maxFillRounds; i++ {
		n := rng.Range(1, 55)
		if !picked[n] {
			picked[n] = true
			numbers = append(numbers, n)
		}
	}
	for n := 1; len(numbers) < 6 && n <= 55; n++ {
		if !picked[n] {
			picked[n] = true
			numbers = append(numbers, n)
		}
	}
	sort.Ints(numbers)
	luckyNumbers := make([]string, 0, len(numbers))
	for _, n := range numbers {
		luckyNumbers = append(luckyNumbers, pad2(n))
	}

	// 五行权重各取 10-40，再按总和缩放到约100
	// 向下取整导致合计可能略小于100，保留该误差不作修正
	kim := rng.Range(10, 40)
	moc := rng.Range(10, 40)
	thuy := rng.Range(10, 40)
	hoa := rng.Range(10, 40)
	tho := rng.Range(10, 40)
	total := kim + moc + thuy + hoa + tho
	scale := 100 / float64(total)

	fiveElements := FiveElements{
		Kim:  int(math.Floor(float64(kim) * scale)),
		Moc:  int(math.Floor(float64(moc) * scale)),
		Thuy: int(math.Floor(float64(thuy) * scale)),
		Hoa:  int(math.Floor(float64(hoa) * scale)),
		Tho:  int(math.Floor(float64(tho) * scale)),
	}
	dominant, weak := fiveElements.DominantWeak()

	// 年柱地支固定为按出生年计算的生肖（与生肖模块的交叉约束），
	// 其余干支由独立抽取决定
	birthYear, err := strconv.Atoi(strings.TrimSpace(year))
	if err != nil {
		birthYear = 0
	}
	yearBranch := capitalize(GetZodiacFromYear(birthYear))

	fourPillars := FourPillars{
		Year:  Pillar{Stem: heavenlyStems[rng.Range(0, 9)], Branch: yearBranch},
		Month: Pillar{Stem: heavenlyStems[rng.Range(0, 9)], Branch: earthlyBranches[rng.Range(0, 11)]},
		Day:   Pillar{Stem: heavenlyStems[rng.Range(0, 9)], Branch: earthlyBranches[rng.Range(0, 11)]},
		Time:  Pillar{Stem: heavenlyStems[rng.Range(0, 9)], Branch: earthlyBranches[rng.Range(0, 11)]},
	}

	tmpl, ok := reportTemplates[lang]
	if !ok {
		tmpl = reportTemplates[LangVN]
	}

	concernText := ""
	if concern != "" {
		concernText = " (" + concern + ")"
	}

	labels, ok := topicLabels[topic]
	if !ok {
		labels = topicLabels["money"]
	}
	selectedTopic := labels[lang]
	if selectedTopic == "" {
		selectedTopic = labels[LangVN]
	}

	generated := generatesCycle[dominant]

	var report strings.Builder
	report.WriteString(fmt.Sprintf("## %s\n", tmpl.overview))
	report.WriteString(fmt.Sprintf(tmpl.dominantFmt, tmpl.elements[dominant], fiveElements.value(dominant)))
	report.WriteString(" ")
	report.WriteString(fmt.Sprintf(tmpl.weakFmt, tmpl.elements[weak]))
	report.WriteString("\n\n")
	report.WriteString(fmt.Sprintf("## %s: %s\n", tmpl.analysis, selectedTopic))
	report.WriteString(fmt.Sprintf(tmpl.body1Fmt, fourPillars.Year.Stem, fourPillars.Year.Branch, concernText))
	report.WriteString("\n\n")
	report.WriteString(fmt.Sprintf(tmpl.body2Fmt, tmpl.elements[dominant], tmpl.elements[generated]))
	report.WriteString("\n\n")
	report.WriteString(fmt.Sprintf("## %s\n", tmpl.advice))
	report.WriteString(fmt.Sprintf("1. **1:** %s\n", tmpl.tips[0]))
	report.WriteString(fmt.Sprintf("2. **2:** %s\n", tmpl.tips[1]))
	report.WriteString(fmt.Sprintf("3. **3:** %s\n", tmpl.tips[2]))
	report.WriteString("\n")
	report.WriteString(fmt.Sprintf("## %s (3 Months)\n", tmpl.forecast))
	report.WriteString(fmt.Sprintf("* **M+1:** %s\n", tmpl.months[0]))
	report.WriteString(fmt.Sprintf("* **M+2:** %s\n", tmpl.months[1]))
	report.WriteString(fmt.Sprintf("* **M+3:** %s", tmpl.months[2]))

	genderLabel := genderLabels["female"][lang]
	if gender == "male" {
		genderLabel = genderLabels["male"][lang]
	}
	if genderLabel == "" {
		if gender == "male" {
			genderLabel = genderLabels["male"][LangVN]
		} else {
			genderLabel = genderLabels["female"][LangVN]
		}
	}

	return FateResult{
		Name:         name,
		Info:         fmt.Sprintf("%s • %s/%s/%s", genderLabel, day, month, year),
		Advice:       report.String(),
		LuckyNumbers: luckyNumbers,
		FiveElements: fiveElements,
		FourPillars:  fourPillars,
	}
}

package luck_core

import (
	"fmt"
	"strconv"
	"time"
)

// GetDailyFortune 基于当前时间生成每日运势
// birthYear 传 0 表示未提供
func GetDailyFortune(zodiacId string, birthYear int, deep *DeepStats, lang Lang) DailyFortune {
	return GetDailyFortuneAt(zodiacId, birthYear, deep, lang, time.Now())
}

// GetDailyFortuneAt 生成每日运势
// 种子由当天日期数字、当前小时、生肖字符和（可选的）出生年共同决定，
// 同一小时内同样的输入必然得到同样的结果
func GetDailyFortuneAt(zodiacId string, birthYear int, deep *DeepStats, lang Lang, now time.Time) DailyFortune {
	dateStr := fmt.Sprintf("%d%d%d", now.Year(), int(now.Month()), now.Day())
	dateNum, _ := strconv.Atoi(dateStr)

	seed := int64(dateNum) + int64(now.Hour()) + int64(charCodeSum(zodiacId))
	if birthYear != 0 {
		seed += int64(birthYear) * 13
	}

	isDeep := false
	if deep != nil {
		isDeep = true
		// 深度混合按 32 位语义截断，与 Web 端按位异或一致
		deepMix := (deep.Month*100 + deep.Day) * (deep.Hour + 1)
		deepMask := uint32(0xDEADBEEF)
		seed = int64(int32(seed*31+int64(deepMix)) ^ int32(deepMask))
	}
	if seed < 0 {
		seed = -seed
	}

	rng := NewSeededRNG(int(seed))

	// 抽取顺序是契约的一部分：号码、星级、颜色、四段叙事、吉时
	luckyNumber := pad2(rng.Range(1, 99))

	stars := 0
	if isDeep {
		stars = rng.Range(4, 5)
	} else {
		stars = rng.Range(3, 5)
	}

	colorObj := fortunePalette[rng.Range(0, len(fortunePalette)-1)]
	colorName, ok := colorObj.names[lang]
	if !ok {
		colorName = colorObj.names[LangVN]
	}

	templates, ok := fortuneTemplates[lang]
	if !ok {
		templates = fortuneTemplates[LangVN]
	}
	opening := Pick(rng, templates.openings)
	wealth := Pick(rng, templates.wealth)
	love := Pick(rng, templates.love)
	link := Pick(rng, templates.links)

	fortuneStory := opening + "\n\n" + wealth + " " + love + "\n\n" + link
	if isDeep {
		prefix, ok := deepPrefixes[lang]
		if !ok {
			prefix = deepPrefixes[LangVN]
		}
		fortuneStory = prefix + fortuneStory
	}

	startHour := rng.Range(6, 20)
	luckyTime := fmt.Sprintf("%d:00 - %d:00", startHour, startHour+2)

	return DailyFortune{
		LuckyNumber:    luckyNumber,
		Stars:          stars,
		FortuneText:    fortuneStory,
		LuckyColor:     colorName,
		LuckyColorCode: colorObj.code,
		LuckyTime:      luckyTime,
		ForYear:        birthYear,
		IsDeep:         isDeep,
	}
}

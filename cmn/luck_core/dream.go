package luck_core

import (
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"
)

// 补位循环的防御性上限，超限后顺序扫描补齐
const maxFillRounds = 4096

// GetDreamImage 根据关键词选择梦境配图
// 精确命中优先，其次按类目词表模糊匹配，最后回退默认图
func GetDreamImage(keyword string) string {
	key := strings.ToLower(keyword)
	if url, ok := dreamImages[key]; ok {
		return url
	}
	if containsAny(key, moneyImageKeys) {
		return dreamImages["money"]
	}
	if containsAny(key, waterImageKeys) {
		return dreamImages["water"]
	}
	if containsAny(key, fireImageKeys) {
		return dreamImages["fire"]
	}
	if containsAny(key, animalImageKeys) {
		return dreamImages["animal"]
	}
	return dreamImages["default"]
}

// AnalyzeDream 基于当前时间计算梦境号码池
func AnalyzeDream(input, zodiacId string) []int {
	return AnalyzeDreamAt(input, zodiacId, time.Now())
}

// AnalyzeDreamAt 计算梦境号码池（完整六号码，升序）
// 种子由关键词、当日、当前小时、生肖共同决定：
// 同一小时内同样的输入必然得到同样的号码
func AnalyzeDreamAt(input, zodiacId string, now time.Time) []int {
	keyword := strings.ToLower(strings.TrimSpace(input))
	if zodiacId == "" {
		zodiacId = "generic"
	}

	seedString := fmt.Sprintf("%s-%d-%d-%s", keyword, now.Day(), now.Hour(), zodiacId)
	rng := NewSeededRNG(HashSeed(seedString))

	// 词条顺序即匹配优先级
	var baseNumbers []int
	for _, entry := range dreamDB {
		if strings.Contains(keyword, entry.key) {
			baseNumbers = entry.numbers
			break
		}
	}

	picked := make(map[int]bool)
	var pool []int
	add := func(n int) {
		if !picked[n] {
			picked[n] = true
			pool = append(pool, n)
		}
	}

	// 词条号码最多注入两个：首号必入，次号六成概率
	if len(baseNumbers) > 0 {
		add(baseNumbers[0])
		if len(baseNumbers) > 1 && rng.Next() > 0.4 {
			add(baseNumbers[1])
		}
	}

	for i := 0; len(pool) < 6 && i < maxFillRounds; i++ {
		add(rng.Range(1, 55))
	}
	// 上限兜底，保证总能凑满六个
	for n := 1; len(pool) < 6 && n <= 55; n++ {
		add(n)
	}

	sort.Ints(pool)
	return pool
}

// InterpretDream 基于当前时间生成解梦结果
func InterpretDream(input string, lang Lang) DreamInterpretation {
	return InterpretDreamAt(input, lang, time.Now())
}

// InterpretDreamAt 生成完整解梦结果
// 任意字符串输入（包括空串）都能得到确定且有效的结果，不产生错误
func InterpretDreamAt(input string, lang Lang, now time.Time) DreamInterpretation {
	keyword := strings.TrimSpace(input)
	lowerKey := strings.ToLower(keyword)

	numberPool := AnalyzeDreamAt(keyword, "generic", now)

	displayCount := 3
	if len(numberPool) < displayCount {
		displayCount = len(numberPool)
	}
	displayNumbers := make([]string, 0, displayCount)
	for _, n := range numberPool[:displayCount] {
		displayNumbers = append(displayNumbers, pad2(n))
	}

	poolStrs := make([]string, 0, len(numberPool))
	for _, n := range numberPool {
		poolStrs = append(poolStrs, pad2(n))
	}

	// 吉凶使用独立种子，抽取顺序：吉凶、方位、颜色、吉时
	seed := utf16Len(input) + now.Hour() + now.Day()
	rng := NewSeededRNG(seed)

	omen := "Bad"
	if rng.Next() > 0.4 {
		omen = "Good"
	}

	templates, ok := dreamTemplates[lang]
	if !ok {
		templates = dreamTemplates[LangVN]
	}
	storyParts := templates.generic
	if containsAny(lowerKey, snakeStoryKeys) {
		storyParts = templates.snake
	} else if containsAny(lowerKey, fireStoryKeys) {
		storyParts = templates.fire
	}
	description := storyParts[0] + "\n\n" + storyParts[1] + "\n\n" + storyParts[2]

	direction := Pick(rng, langList(dreamDirections, lang))
	color := Pick(rng, langList(dreamColors, lang))
	luckyHour := rng.Range(6, 22)

	var advice DreamAdvice
	var itemName, itemAction string
	switch lang {
	case LangKR:
		advice = DreamAdvice{Do: fmt.Sprintf("%s색 물건 소지하기", color), Avoid: "시끄러운 장소 피하기"}
		itemName = fmt.Sprintf("%s색 아이템", color)
		itemAction = "구매"
	case LangEN:
		advice = DreamAdvice{Do: fmt.Sprintf("Carry a %s item", color), Avoid: "Noisy crowded places"}
		itemName = fmt.Sprintf("%s Item", color)
		itemAction = "Buy"
	default:
		advice = DreamAdvice{Do: fmt.Sprintf("Mang theo vật phẩm màu %s", color), Avoid: "Nơi đông người ồn ào"}
		itemName = fmt.Sprintf("Đồ vật màu %s", color)
		itemAction = "Mua"
	}

	dreamType := "abstract"
	if containsAny(lowerKey, animalTypeKeys) {
		dreamType = "animal"
	}

	return DreamInterpretation{
		Id:                fmt.Sprintf("dream-%d", now.UnixMilli()),
		Keyword:           capitalize(keyword),
		NormalizedKeyword: lowerKey,
		Type:              dreamType,
		ImageUrl:          GetDreamImage(lowerKey),
		Icon:              "auto_awesome",
		Omen:              omen,
		Description:       description,
		LuckyNumbers:      strings.Join(displayNumbers, " - "),
		NumberPool:        poolStrs,
		Direction:         direction,
		Time:              fmt.Sprintf("%d:00", luckyHour),
		Advice:            advice,
		LuckyItem: LuckyItem{
			Name:   itemName,
			Action: itemAction,
			Color:  strings.ToUpper(color),
		},
	}
}

// containsAny 判断 s 是否包含词表中的任意词
func containsAny(s string, keys []string) bool {
	for _, k := range keys {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

// langList 按语言取候选列表，未知语言回退越南语
func langList(m map[Lang][]string, lang Lang) []string {
	if list, ok := m[lang]; ok {
		return list
	}
	return m[LangVN]
}

// capitalize 首字符大写
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// pad2 数字补零到两位
func pad2(n int) string {
	return fmt.Sprintf("%02d", n)
}

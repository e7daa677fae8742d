package luck_core

// Lang 客户端语言标识
type Lang string

const (
	LangVN Lang = "vn"
	LangEN Lang = "en"
	LangKR Lang = "kr"
)

// NormalizeLang 归一化语言标识，未知值回退到越南语
func NormalizeLang(s string) Lang {
	switch Lang(s) {
	case LangVN, LangEN, LangKR:
		return Lang(s)
	}
	return LangVN
}

// DreamAdvice 解梦宜忌建议
type DreamAdvice struct {
	Do    string `json:"do"`
	Avoid string `json:"avoid"`
}

// LuckyItem 开运物品
type LuckyItem struct {
	Name   string `json:"name"`
	Action string `json:"action"`
	Color  string `json:"color"`
}

// DreamInterpretation 解梦结果
type DreamInterpretation struct {
	Id                string      `json:"id"`
	Keyword           string      `json:"keyword"`           // 展示用关键词（首字母大写）
	NormalizedKeyword string      `json:"normalizedKeyword"` // 匹配用关键词（小写）
	Type              string      `json:"type"`              // animal / abstract
	ImageUrl          string      `json:"imageUrl"`
	Icon              string      `json:"icon"`
	Omen              string      `json:"omen"` // Good / Bad
	Description       string      `json:"description"`
	LuckyNumbers      string      `json:"luckyNumbers"` // 展示用，前三个号码
	NumberPool        []string    `json:"numberPool"`   // 完整六号码池，可作为推荐种子
	Direction         string      `json:"direction"`
	Time              string      `json:"time"`
	Advice            DreamAdvice `json:"advice"`
	LuckyItem         LuckyItem   `json:"luckyItem"`
}

// DeepStats 每日运势深度分析输入（出生月/日/时辰）
type DeepStats struct {
	Month int `json:"month"`
	Day   int `json:"day"`
	Hour  int `json:"hour"`
}

// DailyFortune 每日运势结果
type DailyFortune struct {
	LuckyNumber    string `json:"luckyNumber"`
	Stars          int    `json:"stars"`
	FortuneText    string `json:"fortuneText"`
	LuckyColor     string `json:"luckyColor"`
	LuckyColorCode string `json:"luckyColorCode"`
	LuckyTime      string `json:"luckyTime"`
	ForYear        int    `json:"forYear,omitempty"`
	IsDeep         bool   `json:"isDeep"`
}

// FiveElements 五行占比（归一化后合计接近100，取整误差不作修正）
type FiveElements struct {
	Kim  int `json:"kim"`  // 金
	Moc  int `json:"moc"`  // 木
	Thuy int `json:"thuy"` // 水
	Hoa  int `json:"hoa"`  // 火
	Tho  int `json:"tho"`  // 土
}

// DominantWeak 返回旺相与衰弱的五行键名
// 并列时按 kim/moc/thuy/hoa/tho 的固定顺序取先者，与报告文案保持一致
func (fe FiveElements) DominantWeak() (string, string) {
	entries := []struct {
		key   string
		value int
	}{
		{"kim", fe.Kim},
		{"moc", fe.Moc},
		{"thuy", fe.Thuy},
		{"hoa", fe.Hoa},
		{"tho", fe.Tho},
	}

	dominant := entries[0]
	weak := entries[0]
	for _, e := range entries[1:] {
		if e.value > dominant.value {
			dominant = e
		}
		if e.value <= weak.value {
			weak = e
		}
	}

	return dominant.key, weak.key
}

// value 按键名取五行占比
func (fe FiveElements) value(key string) int {
	switch key {
	case "kim":
		return fe.Kim
	case "moc":
		return fe.Moc
	case "thuy":
		return fe.Thuy
	case "hoa":
		return fe.Hoa
	case "tho":
		return fe.Tho
	}
	return 0
}

// Pillar 四柱中的一柱（天干+地支）
type Pillar struct {
	Stem   string `json:"stem"`
	Branch string `json:"branch"`
}

// FourPillars 四柱（年/月/日/时）
type FourPillars struct {
	Year  Pillar `json:"year"`
	Month Pillar `json:"month"`
	Day   Pillar `json:"day"`
	Time  Pillar `json:"time"`
}

// FateResult 八字分析结果
type FateResult struct {
	Name         string       `json:"name"`
	Info         string       `json:"info"`
	Advice       string       `json:"advice"` // markdown 格式的多段报告
	LuckyNumbers []string     `json:"luckyNumbers"`
	FiveElements FiveElements `json:"fiveElements"`
	FourPillars  FourPillars  `json:"fourPillars"`
}

package llm

import (
	"fmt"

	"go.uber.org/zap"
)

// 增强结果结构，字段与客户端展示层约定一致。
// 任何一步失败都返回 nil：缺增强不缺结果

// DreamEnrichment 解梦增强
type DreamEnrichment struct {
	Summary          string   `json:"summary"`
	DetailedAnalysis string   `json:"detailed_analysis"`
	LuckyNumbers     []string `json:"lucky_numbers"`
	ActionAdvice     string   `json:"action_advice"`
}

// FortuneEnrichment 每日运势增强
type FortuneEnrichment struct {
	Score        int    `json:"score"`
	Summary      string `json:"summary"`
	Health       string `json:"health"`
	Career       string `json:"career"`
	Love         string `json:"love"`
	LuckyNumber  string `json:"lucky_number"`
	LuckyColor   string `json:"lucky_color"`
	LuckyTime    string `json:"lucky_time"`
	ActionAdvice string `json:"action_advice"`
}

// SajuEnrichment 八字分析增强
type SajuEnrichment struct {
	ElementAnalysis string `json:"element_analysis"`
	MainPrediction  string `json:"main_prediction"`
	Advice          string `json:"advice"`
	LuckyDirection  string `json:"lucky_direction"`
	LuckyColor      string `json:"lucky_color"`
}

// EnrichDream 生成解梦的增强解读
func EnrichDream(dreamText, emotion, lang string) *DreamEnrichment {
	if !enable {
		return nil
	}

	prompt := fmt.Sprintf(`You are a famous Fortune Teller and Dream Expert (Thầy Giải Mã Giấc Mơ).
Interpret the user's dream based on their description and emotional state.

Input:
- Dream: "%s"
- Emotion: "%s"

%s
Tone: Mystical, respectful, empathetic.

Output Requirement:
Return ONLY valid JSON with keys: summary (one sentence), detailed_analysis,
lucky_numbers (array of number strings), action_advice. NO Markdown.`,
		dreamText, emotion, langInstruction(lang))

	output, err := NewService().Chat(prompt)
	if err != nil {
		logger.Warn("dream enrichment chat failed", zap.Error(err))
		return nil
	}

	var result DreamEnrichment
	if err := ParseOutputFormatWithMarkdown(output, &result); err != nil {
		logger.Warn("dream enrichment parse failed", zap.Error(err))
		return nil
	}

	return &result
}

// EnrichFortune 生成每日运势的增强解读
func EnrichFortune(name, gender, day, month, year, hour, zodiac, today, lang string) *FortuneEnrichment {
	if !enable {
		return nil
	}

	genderLabel := "Nữ"
	if gender == "male" {
		genderLabel = "Nam"
	}

	prompt := fmt.Sprintf(`Role:
You are "Thầy Phong Thủy" (Feng Shui Master), a respected 80-year-old sage.
Do not speak like a machine. Use deep, literary, and metaphorical language to interpret the user's fortune.

%s

User Info:
- Name: %s
- Gender: %s
- Date of Birth: %s/%s/%s at %s:00
- Zodiac Sign: %s
- Current Date: %s

Instructions:
1. Do not just say "Good" or "Bad". Explain "Why" using the Five Elements (Ngũ Hành) and nature metaphors.
2. Give specific actionable advice, not abstract concepts.
3. Mention the interaction between the user's birth data/gender and today's date (Heavenly Stems/Earthly Branches).
4. Tone: Mystical, warm, encouraging, but wise.

Output Requirement:
Return ONLY valid JSON with keys: score (integer 0-100), summary, health, career,
love, lucky_number (e.g. "09, 82"), lucky_color, lucky_time (e.g. "09:00 - 11:00"),
action_advice. NO Markdown formatting.`,
		langInstruction(lang), name, genderLabel, day, month, year, hour, zodiac, today)

	output, err := NewService().Chat(prompt)
	if err != nil {
		logger.Warn("fortune enrichment chat failed", zap.Error(err))
		return nil
	}

	var result FortuneEnrichment
	if err := ParseOutputFormatWithMarkdown(output, &result); err != nil {
		logger.Warn("fortune enrichment parse failed", zap.Error(err))
		return nil
	}

	return &result
}

// EnrichSaju 生成八字分析的增强解读
func EnrichSaju(name, gender, day, month, year, hour, category, question, today, lang string) *SajuEnrichment {
	if !enable {
		return nil
	}

	genderLabel := "Nữ"
	if gender == "male" {
		genderLabel = "Nam"
	}

	prompt := fmt.Sprintf(`You are a legendary Master of 'Bát Tự' (Four Pillars) and I Ching.

User Profile:
- Name: %s (%s)
- Born: %s/%s/%s roughly at %s:00
- Current Date: %s

Focus Context:
- Category of Interest: %s
- User's Specific Worry/Question: "%s"

Instructions:
1. Briefly calculate the Balance of Five Elements (Ngũ Hành) based on the birth date. Determine the "Day Master" (Nhật Chủ) if possible.
2. If the worry is provided, answer it directly using the element analysis; otherwise predict the category topic for the current year/month.
3. Tone: Mystical, profound, empathetic, but clear. Use metaphors of nature.
4. %s

Output Requirement:
Return ONLY valid JSON with keys: element_analysis, main_prediction (3-4 sentences),
advice, lucky_direction (e.g. Đông Nam), lucky_color. NO Markdown.`,
		name, genderLabel, day, month, year, hour, today, category, question, langInstruction(lang))

	output, err := NewService().Chat(prompt)
	if err != nil {
		logger.Warn("saju enrichment chat failed", zap.Error(err))
		return nil
	}

	var result SajuEnrichment
	if err := ParseOutputFormatWithMarkdown(output, &result); err != nil {
		logger.Warn("saju enrichment parse failed", zap.Error(err))
		return nil
	}

	return &result
}

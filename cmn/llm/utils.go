package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseOutputFormatWithMarkdown 解析模型输出为目标结构体
// 模型偶尔会把 JSON 包在 markdown 代码块里，先剥壳再解析
func ParseOutputFormatWithMarkdown(raw string, out any) error {
	// 去掉开头和结尾的 ```json 或 ```
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```json") {
		raw = strings.TrimPrefix(raw, "```json")
	} else if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```")
	}
	if strings.HasSuffix(raw, "```") {
		raw = strings.TrimSuffix(raw, "```")
	}

	// 再解析为结构体
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf(`failed to parse llm output format "%s"`, raw)
	}

	return nil
}

// langInstruction 提示词中的语言指令
func langInstruction(lang string) string {
	switch lang {
	case "kr":
		return "Language: Korean (한국어). Tone: Natural, polite, mystical."
	case "en":
		return "Language: English. Tone: Mystical."
	}
	return "Language: Vietnamese (Tiếng Việt)."
}

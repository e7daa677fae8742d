package luck_core

// ZodiacOrder 十二生肖的固定循环顺序
// 越南生肖用猫替代兔，位置不变
var ZodiacOrder = []string{
	"rat", "ox", "tiger", "cat", "dragon", "snake",
	"horse", "goat", "monkey", "rooster", "dog", "pig",
}

// GetZodiacFromYear 根据出生年份计算生肖
// 对任意整数年份（包括公元前）都返回有效生肖，模运算结果恒为非负
func GetZodiacFromYear(year int) string {
	index := (year - 4) % 12
	if index < 0 {
		index += 12
	}
	return ZodiacOrder[index]
}

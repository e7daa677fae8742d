package luck_core

import (
	"sort"
	"strconv"
	"strings"
)

// GameShape 彩票玩法形态：选号个数与号码上限
type GameShape struct {
	Count    int `json:"count"`
	MaxValue int `json:"maxValue"`
}

// 支持的玩法
var gameShapes = map[string]GameShape{
	"mega":  {Count: 6, MaxValue: 45},
	"power": {Count: 6, MaxValue: 55},
	"lotto": {Count: 5, MaxValue: 35},
}

// ShapeForType 按玩法标识取形态，未知标识回退 mega
func ShapeForType(gameType string) GameShape {
	if shape, ok := gameShapes[gameType]; ok {
		return shape
	}
	return gameShapes["mega"]
}

// GenerateSmartLotto 生成推荐号码组合
// 种子号码（通常来自解梦或运势结果）优先入选：合法且在范围内的按输入顺序采纳，
// 重复与越界的静默跳过；不足时用传入的随机源补位。
// 随机源由调用方决定：传 SystemSource 则每次补位不同（"换一组"的产品行为），
// 传 SeededRNG 则完全确定
func GenerateSmartLotto(shape GameShape, seedNumbers []string, src RandomSource) []string {
	picked := make(map[int]bool)
	var pool []int

	for _, s := range seedNumbers {
		num, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil || num <= 0 || num > shape.MaxValue {
			continue
		}
		if !picked[num] {
			picked[num] = true
			pool = append(pool, num)
		}
		if len(pool) >= shape.Count {
			break
		}
	}

	for i := 0; len(pool) < shape.Count && i < maxFillRounds; i++ {
		num := int(src.NextFloat()*float64(shape.MaxValue)) + 1
		if !picked[num] {
			picked[num] = true
			pool = append(pool, num)
		}
	}
	// 上限兜底
	for n := 1; len(pool) < shape.Count && n <= shape.MaxValue; n++ {
		if !picked[n] {
			picked[n] = true
			pool = append(pool, n)
		}
	}

	sort.Ints(pool)

	result := make([]string, 0, len(pool))
	for _, n := range pool {
		result = append(result, pad2(n))
	}
	return result
}

// GenerateBonusNumber 为 power 类玩法抽取特别号码，避开主号码组合
func GenerateBonusNumber(shape GameShape, mainNumbers []string, src RandomSource) string {
	used := make(map[int]bool)
	for _, s := range mainNumbers {
		if n, err := strconv.Atoi(s); err == nil {
			used[n] = true
		}
	}

	for i := 0; i < maxFillRounds; i++ {
		num := int(src.NextFloat()*float64(shape.MaxValue)) + 1
		if !used[num] {
			return pad2(num)
		}
	}
	for n := 1; n <= shape.MaxValue; n++ {
		if !used[n] {
			return pad2(n)
		}
	}
	return pad2(1)
}

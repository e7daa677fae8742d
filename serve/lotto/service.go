package lotto

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/spf13/viper"
)

// 内存开奖结果，按配置刷新
var atomicDrawResults atomic.Value

// 配置缺失时的兜底数据
var fallbackDrawResults = []DrawResult{
	{
		Id:             "mega",
		Name:           "Mega 6/45",
		DrawId:         "#01461",
		DrawDate:       "21/01/2026",
		Jackpot:        "29.100.546.500 VNĐ",
		WinningNumbers: []string{"02", "15", "22", "38", "41", "45"},
	},
	{
		Id:             "power",
		Name:           "Power 6/55",
		DrawId:         "#01297",
		DrawDate:       "20/01/2026",
		Jackpot:        "30.000.000.000 VNĐ",
		WinningNumbers: []string{"08", "19", "24", "31", "42", "51"},
		BonusNumber:    "09",
	},
	{
		Id:             "lotto",
		Name:           "Lotto 5/35",
		DrawId:         "#00415",
		DrawDate:       "22/01/2026",
		Jackpot:        "7.492.597.500 VNĐ",
		WinningNumbers: []string{"05", "12", "28", "33", "41"},
		BonusNumber:    "44",
	},
}

// initDrawResults 从配置加载开奖结果，按玩法标识覆盖兜底数据
// 配置里缺的玩法保留兜底值，与原有人工数据维护流程一致
func initDrawResults() error {
	configured := make([]DrawResult, 0, len(fallbackDrawResults))
	if viper.IsSet("lotto.results") {
		if err := viper.UnmarshalKey("lotto.results", &configured); err != nil {
			return fmt.Errorf("failed to unmarshal lotto.results: %w", err)
		}
	}

	byId := make(map[string]DrawResult, len(configured))
	for _, r := range configured {
		if r.Id == "" {
			return fmt.Errorf("lotto.results entry missing id")
		}
		byId[r.Id] = r
	}

	results := make([]DrawResult, 0, len(fallbackDrawResults))
	for _, fallback := range fallbackDrawResults {
		if r, ok := byId[fallback.Id]; ok {
			results = append(results, r)
		} else {
			results = append(results, fallback)
		}
	}

	atomicDrawResults.Store(results)
	return nil
}

// QueryDrawResults 返回当前开奖结果快照
func QueryDrawResults() []DrawResult {
	results, ok := atomicDrawResults.Load().([]DrawResult)
	if !ok {
		return fallbackDrawResults
	}
	return results
}

// CalculateTimeLeft 计算距下期开奖的倒计时串，已过期返回 drawing 标签
func CalculateTimeLeft(nextDrawTime, drawingLabel string, now time.Time) string {
	target, err := time.Parse(time.RFC3339, nextDrawTime)
	if err != nil {
		return drawingLabel
	}

	diff := target.Sub(now)
	if diff <= 0 {
		return drawingLabel
	}

	diff = diff % (24 * time.Hour)
	hours := int(diff / time.Hour)
	minutes := int(diff % time.Hour / time.Minute)
	seconds := int(diff % time.Minute / time.Second)

	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

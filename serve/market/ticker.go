package market

import (
	"fmt"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/mroth/weightedrand/v2"
	"github.com/spf13/viper"
)

// 行情漂移方向
const (
	driftUp   = "up"
	driftDown = "down"
	driftFlat = "flat"
)

// Rate 单个行情条目
type Rate struct {
	Symbol        string  `json:"symbol"`
	Label         string  `json:"label"`
	Value         float64 `json:"value"`
	Unit          string  `json:"unit"`
	Change        float64 `json:"change"`        // 相对基准值的变化
	ChangePercent float64 `json:"changePercent"` // 变化百分比
	Direction     string  `json:"direction"`     // up/down/flat
	UpdatedAt     int64   `json:"updatedAt"`     // 毫秒时间戳
}

// rateBaseline 行情基准值，每日零点回归
type rateBaseline struct {
	Symbol string  `mapstructure:"symbol"`
	Label  string  `mapstructure:"label"`
	Value  float64 `mapstructure:"value"`
	Unit   string  `mapstructure:"unit"`
}

// 配置缺失时的兜底基准
var fallbackBaselines = []rateBaseline{
	{Symbol: "VNINDEX", Label: "VN-INDEX", Value: 1879.13, Unit: "point"},
	{Symbol: "HNX", Label: "HNX-INDEX", Value: 342.50, Unit: "point"},
	{Symbol: "SJC", Label: "SJC Gold", Value: 87.50, Unit: "million VND"},
	{Symbol: "USDVND", Label: "USD/VND", Value: 25350, Unit: "VND"},
}

// Ticker 模拟行情机
// 行情不接真实数据源，只围绕基准值做小幅随机漂移，给首页一个"活"的观感
type Ticker struct {
	atomicRates    atomic.Value // 内存行情快照
	baselines      []rateBaseline
	refreshSeconds int
	maxStepPercent float64
	r              *rand.Rand
}

func NewTicker(refreshSeconds int) (*Ticker, error) {
	if refreshSeconds <= 0 {
		return nil, fmt.Errorf("refreshSeconds %d <= 0", refreshSeconds)
	}

	baselines := make([]rateBaseline, 0, len(fallbackBaselines))
	if viper.IsSet("market.rates") {
		if err := viper.UnmarshalKey("market.rates", &baselines); err != nil {
			return nil, fmt.Errorf("failed to unmarshal market.rates: %w", err)
		}
	}
	if len(baselines) == 0 {
		baselines = fallbackBaselines
	}
	for _, b := range baselines {
		if b.Symbol == "" || b.Value <= 0 {
			return nil, fmt.Errorf("invalid market rate baseline: %+v", b)
		}
	}

	maxStepPercent := viper.GetFloat64("market.maxStepPercent")
	if maxStepPercent <= 0 {
		maxStepPercent = 0.2
	}

	t := &Ticker{
		baselines:      baselines,
		refreshSeconds: refreshSeconds,
		maxStepPercent: maxStepPercent,
		r:              rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	t.resetToBaseline()

	return t, nil
}

// Rates 返回当前行情快照
func (t *Ticker) Rates() []Rate {
	rates, ok := t.atomicRates.Load().([]Rate)
	if !ok {
		return nil
	}
	return rates
}

// resetToBaseline 行情回归基准值
func (t *Ticker) resetToBaseline() {
	now := time.Now().UnixMilli()

	rates := make([]Rate, 0, len(t.baselines))
	for _, b := range t.baselines {
		rates = append(rates, Rate{
			Symbol:    b.Symbol,
			Label:     b.Label,
			Value:     b.Value,
			Unit:      b.Unit,
			Direction: driftFlat,
			UpdatedAt: now,
		})
	}

	t.atomicRates.Store(rates)
}

// buildDriftPool 构建漂移方向池
// 涨跌概率对称，留一成概率原地不动
func (t *Ticker) buildDriftPool() []weightedrand.Choice[string, uint] {
	return []weightedrand.Choice[string, uint]{
		{Item: driftUp, Weight: 45},
		{Item: driftDown, Weight: 45},
		{Item: driftFlat, Weight: 10},
	}
}

// drift 对全部行情做一次随机漂移
func (t *Ticker) drift() error {
	current := t.Rates()
	if len(current) == 0 {
		return fmt.Errorf("no rates to drift")
	}

	chooser, err := weightedrand.NewChooser(t.buildDriftPool()...)
	if err != nil {
		return fmt.Errorf("failed to create chooser: %w", err)
	}

	now := time.Now().UnixMilli()

	next := make([]Rate, 0, len(current))
	for i, rate := range current {
		baseline := t.baselines[i].Value

		direction := chooser.Pick()
		step := rate.Value * t.maxStepPercent / 100 * t.r.Float64()
		switch direction {
		case driftUp:
			rate.Value += step
		case driftDown:
			rate.Value -= step
		}

		rate.Change = rate.Value - baseline
		rate.ChangePercent = rate.Change / baseline * 100
		rate.Direction = direction
		rate.UpdatedAt = now

		next = append(next, rate)
	}

	t.atomicRates.Store(next)
	return nil
}

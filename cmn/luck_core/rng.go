package luck_core

import (
	"math"
	"math/rand"
	"time"
)

// RandomSource 随机源能力接口
// 推荐号码的补位既可以用确定性的 SeededRNG，也可以用非确定性的系统随机源，
// 由调用方显式选择
type RandomSource interface {
	NextFloat() float64
}

// SeededRNG 线性同余伪随机数生成器
// 参数 9301/49297/233280 与 Web 端引擎完全一致，保证同种子跨端产生相同序列。
// 追求的是可复现性而不是统计质量，这是刻意的取舍
type SeededRNG struct {
	state int64
}

func NewSeededRNG(seed int) *SeededRNG {
	return &SeededRNG{state: int64(seed)}
}

// Next 推进内部状态并返回 [0,1) 区间的浮点数
func (r *SeededRNG) Next() float64 {
	r.state = (r.state*9301 + 49297) % 233280
	return float64(r.state) / 233280
}

// Range 返回 [min,max] 闭区间内的整数
func (r *SeededRNG) Range(min, max int) int {
	return min + int(math.Floor(r.Next()*float64(max-min+1)))
}

// NextFloat 实现 RandomSource
func (r *SeededRNG) NextFloat() float64 {
	return r.Next()
}

// Pick 从候选列表中等概率取一个元素
func Pick[T any](r *SeededRNG, items []T) T {
	return items[r.Range(0, len(items)-1)]
}

// systemSource 基于系统时间种子的非确定性随机源
// 用于"换一组"场景：同样的输入每次补出不同的号码
type systemSource struct {
	r *rand.Rand
}

func NewSystemSource() RandomSource {
	return &systemSource{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (s *systemSource) NextFloat() float64 {
	return s.r.Float64()
}

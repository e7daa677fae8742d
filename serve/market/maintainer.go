package market

import (
	"VinaLuck/cmn"
	"context"
	"time"

	"go.uber.org/zap"
)

// driftMaintainer 周期性漂移行情
func (t *Ticker) driftMaintainer(ctx context.Context) {
	interval := time.Duration(t.refreshSeconds) * time.Second
	tick := time.NewTicker(interval)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			z.Info("market driftMaintainer stopped")
			return
		case <-tick.C:
			if err := t.drift(); err != nil {
				z.Error("failed to drift market rates", zap.Error(err))
			}
		}
	}
}

// midnightMaintainer 每天零点（越南时间）行情回归基准值
func (t *Ticker) midnightMaintainer(ctx context.Context) {
	for {
		// 计算距离下一次 00:00 的时间
		duration, err := cmn.GetDurationUntilNextTargetTime(0, 0, 0, "Asia/Ho_Chi_Minh")
		if err != nil {
			z.Error("failed to get duration until next target time", zap.Error(err))
			return
		}
		z.Info("market midnightMaintainer sleep until next target time", zap.Duration("duration", duration))

		timer := time.NewTimer(duration)

		select {
		case <-ctx.Done():
			z.Info("market midnightMaintainer stopped")
			timer.Stop()
			return
		case <-timer.C:
			t.resetToBaseline()
		}
	}
}

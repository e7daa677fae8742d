package market

import (
	"VinaLuck/cmn"
	"context"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	ticker *Ticker
	z      *zap.Logger
)

func Init() {
	z = cmn.GetLogger()

	refreshSeconds := viper.GetInt("market.refreshSeconds")
	if refreshSeconds <= 0 {
		refreshSeconds = 15
	}

	var err error
	ticker, err = NewTicker(refreshSeconds)
	if err != nil {
		z.Fatal("[ FAIL ] failed to create market ticker", zap.Error(err))
	}

	ctx := context.Background()
	go ticker.driftMaintainer(ctx)
	go ticker.midnightMaintainer(ctx)

	cmn.MiniLogger.Info("[ OK ] market module initialized", zap.Int("refreshSeconds", refreshSeconds))
}

package llm

import (
	"VinaLuck/cmn"
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	logger   *zap.Logger
	enable   bool
	platform string

	deepSeekConfig DeepSeekConfig
)

// DeepSeekConfig deepseek平台配置
type DeepSeekConfig struct {
	ApiKey  string
	Model   string
	BaseUrl string
}

func Init() {
	logger = cmn.GetLogger()

	enable = viper.GetBool("llm.enable")
	if !enable {
		cmn.MiniLogger.Info("[ -- ] llm module disabled")
		return
	}

	platform = viper.GetString("llm.platform")
	if platform == "" {
		logger.Fatal("[ FAIL ] llm platform not set")
	}

	switch platform {
	case "deepseek":
		err := initDeepSeek()
		if err != nil {
			logger.Fatal("[ FAIL ] failed to init deepseek", zap.Error(err))
		}
	}

	cmn.MiniLogger.Info("[ OK ] llm module initialed", zap.String("platform", platform))
}

// Enabled 模块是否启用
// 禁用时所有增强结果直接缺省，主流程不受影响
func Enabled() bool {
	return enable
}

func initDeepSeek() error {
	deepSeekConfig.ApiKey = viper.GetString("llm.data.apiKey")
	if deepSeekConfig.ApiKey == "" {
		logger.Error("api key not set")
		return fmt.Errorf("llm module api key not set")
	}

	deepSeekConfig.Model = viper.GetString("llm.data.model")
	if deepSeekConfig.Model == "" {
		logger.Error("model not set")
		return fmt.Errorf("llm module model not set")
	}

	deepSeekConfig.BaseUrl = viper.GetString("llm.data.baseUrl")
	if deepSeekConfig.BaseUrl == "" {
		logger.Error("base url not set")
		return fmt.Errorf("llm module base url not set")
	}

	return nil
}

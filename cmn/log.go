package cmn

import (
	"fmt"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	logDir = "logs"
)

var (
	logger     *zap.Logger
	MiniLogger *zap.Logger
	once       sync.Once = sync.Once{}
)

func InitLogger(debug bool) {
	once = sync.Once{}
	once.Do(func() {
		// 初始化日志文件目录
		err := InitDir(logDir)
		if err != nil {
			fmt.Printf("init log dir failed: %v\n", err)
			os.Exit(1)
		}

		// 生成当前时间戳
		now := time.Now()
		timestamp := now.Format("2006-01-02T15-04-05")

		// 将时间戳插入到文件名中
		logFileName := fmt.Sprintf("%s/%s.log", logDir, timestamp)

		// 初始化日志
		if debug {
			err = initDevLogger()
			if err != nil {
				fmt.Printf("init dev logger failed: %v\n", err)
				os.Exit(1)
			}
		} else {
			err = initProdLogger(logFileName)
			if err != nil {
				fmt.Printf("init prod logger failed: %v\n", err)
				os.Exit(1)
			}
		}

		// 初始化极简日志
		err = initMiniLogger()
		if err != nil {
			logger.Fatal("init mini logger failed" + err.Error())
		}

		logger = zap.L()
	})

	MiniLogger.Info("[ OK ] log module initialized")
}

// GetLogger 获取全局的logger
func GetLogger() *zap.Logger {
	return logger
}

// initDevLogger 初始化开发环境日志
func initDevLogger() error {
	// 使用带颜色的控制台编码器
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = "T"
	encoderConfig.CallerKey = "C"
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeCaller = zapcore.FullCallerEncoder

	consoleEncoder := zapcore.NewConsoleEncoder(encoderConfig)
	consoleCore := zapcore.NewCore(consoleEncoder, zapcore.AddSync(os.Stdout), zapcore.DebugLevel)

	core := zapcore.NewTee(consoleCore)
	logger := zap.New(core, zap.AddCaller())
	zap.ReplaceGlobals(logger)

	return nil
}

// initProdLogger 初始化生产环境日志
func initProdLogger(logFilePath string) error {
	// 参数校验
	if logFilePath == "" {
		fmt.Println("log file path is empty, init log failed")
		return nil
	}

	// 创建日志文件（如果文件已经存在，会覆盖；实际部署时配合日志切割工具使用）
	file, err := os.Create(logFilePath)
	if err != nil {
		fmt.Printf("create log file failed: %v\n", err)
		return err
	}

	// 使用生产环境的 EncoderConfig
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	encoderConfig.EncodeDuration = zapcore.StringDurationEncoder

	// 控制台仅打印 Info 及以上
	consoleEncoder := zapcore.NewJSONEncoder(encoderConfig)
	consoleCore := zapcore.NewCore(
		consoleEncoder,
		zapcore.AddSync(os.Stdout),
		zapcore.InfoLevel,
	)

	// 文件记录 Info 及以上
	fileEncoder := zapcore.NewJSONEncoder(encoderConfig)
	fileCore := zapcore.NewCore(
		fileEncoder,
		zapcore.AddSync(file),
		zapcore.InfoLevel,
	)

	core := zapcore.NewTee(consoleCore, fileCore)

	logger := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(0))
	zap.ReplaceGlobals(logger)

	return nil
}

func initMiniLogger() error {
	encoderConfig := zapcore.EncoderConfig{
		MessageKey:   "msg",
		EncodeTime:   nil,
		EncodeLevel:  nil,
		EncodeCaller: nil,
	}

	// 使用 console 输出（非 JSON）
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(zapcore.Lock(os.Stdout)),
		zapcore.InfoLevel,
	)

	MiniLogger = zap.New(core)

	return nil
}

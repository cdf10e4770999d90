package log

import (
	"fmt"
	"time"

	"github.com/liblicense/liblicense/config"
	"github.com/liblicense/liblicense/utils"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const timeLayout = "2006/01/02 15:04:05.000"

func encoderConfig(cfg *config.LogConfig) zapcore.EncoderConfig {
	if cfg.Format == config.LogFormatJson {
		encoder := zap.NewProductionEncoderConfig()
		encoder.EncodeTime = zapcore.TimeEncoderOfLayout(timeLayout)
		return encoder
	}

	encoder := zap.NewDevelopmentEncoderConfig()
	encoder.EncodeName = func(loggerName string, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(fmt.Sprintf("%-12s", "["+loggerName+"]"))
	}
	if cfg.Colored {
		encoder.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	encoder.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(utils.Colorize(t.Format(timeLayout), utils.ColorDarkGray, cfg.Colored))
	}
	return encoder
}

// NewZapLogger builds a logger from cfg. Logs go to stderr unless a file is
// configured, keeping stdout for command output.
func NewZapLogger(cfg *config.LogConfig) (*zap.SugaredLogger, error) {
	level, err := zapcore.ParseLevel(string(cfg.Level))
	if err != nil {
		return nil, err
	}

	encoding := "console"
	if cfg.Format == config.LogFormatJson {
		encoding = "json"
	}

	output := utils.DefaultIfZero(cfg.File, "stderr")
	zapConfig := zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		DisableCaller:     true,
		DisableStacktrace: true,
		Encoding:          encoding,
		EncoderConfig:     encoderConfig(cfg),
		OutputPaths:       []string{output},
		ErrorOutputPaths:  []string{"stderr"},
	}

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, err
	}

	return logger.Named("liblicense").Sugar(), nil
}

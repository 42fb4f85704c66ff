// Package logger 构建游戏使用的 zap 日志器
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options 日志选项
type Options struct {
	// Verbose 输出 debug 级别日志；否则只输出 warn 及以上
	Verbose bool
	// OutputPath 日志输出位置，默认 stderr
	// 终端前端占用了屏幕，需要写到文件
	OutputPath string
}

// Level 返回选项对应的日志级别
func (o Options) Level() zapcore.Level {
	if o.Verbose {
		return zap.DebugLevel
	}
	return zap.WarnLevel
}

// New 创建控制台格式的日志器
func New(opts Options) (*zap.Logger, error) {
	output := opts.OutputPath
	if output == "" {
		output = "stderr"
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")

	config := zap.Config{
		Level:             zap.NewAtomicLevelAt(opts.Level()),
		Development:       false,
		Encoding:          "console",
		EncoderConfig:     encoderConfig,
		OutputPaths:       []string{output},
		ErrorOutputPaths:  []string{output},
		DisableCaller:     !opts.Verbose,
		DisableStacktrace: true,
	}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}

// OrNop 为 nil 时返回不输出任何内容的日志器
func OrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}

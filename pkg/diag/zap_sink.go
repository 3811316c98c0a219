package diag

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapSink 将诊断行写入结构化日志
type ZapSink struct {
	logger *zap.Logger
}

// NewZapSink 基于已有 logger 创建 sink，诊断行统一带上 component 字段
func NewZapSink(logger *zap.Logger, component string) *ZapSink {
	return &ZapSink{logger: logger.With(zap.String("component", component))}
}

// NewDevelopmentLogger 创建控制台格式的 logger
// verbose 为 false 时只输出 Warn 及以上级别
func NewDevelopmentLogger(verbose bool) (*zap.Logger, error) {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      true,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}
	return config.Build()
}

// AppendLine 实现 Sink
func (z *ZapSink) AppendLine(line string) {
	z.logger.Info(line)
}

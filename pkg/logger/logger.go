package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger é a interface para logging
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

// ZapLogger implementa Logger usando o zap
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// NewLogger cria uma nova instância de Logger
func NewLogger() Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.DisableStacktrace = true

	zl, err := config.Build(zap.AddCallerSkip(1))
	if err != nil {
		zl = zap.NewNop()
	}

	return &ZapLogger{sugar: zl.Sugar()}
}

// NewNopLogger cria um Logger que descarta as mensagens (usado em testes)
func NewNopLogger() Logger {
	return &ZapLogger{sugar: zap.NewNop().Sugar()}
}

// Info registra uma mensagem de informação
func (l *ZapLogger) Info(msg string, keysAndValues ...interface{}) {
	l.sugar.Infow(msg, keysAndValues...)
}

// Error registra uma mensagem de erro
func (l *ZapLogger) Error(msg string, keysAndValues ...interface{}) {
	l.sugar.Errorw(msg, keysAndValues...)
}

// Debug registra uma mensagem de debug
func (l *ZapLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.sugar.Debugw(msg, keysAndValues...)
}

// Warn registra uma mensagem de aviso
func (l *ZapLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.sugar.Warnw(msg, keysAndValues...)
}

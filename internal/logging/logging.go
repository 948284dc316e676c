package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DebugEnvVar enables debug output when set to "debug" or "trace".
const DebugEnvVar = "TOOLPATH_DEBUG"

// Logger is a leveled logger. A nil *Logger is valid and discards everything.
type Logger struct {
	file  *os.File
	sugar *zap.SugaredLogger
	level zap.AtomicLevel
}

func New(path string) (*Logger, error) {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}

	l := NewWriter(file)
	l.file = file
	return l, nil
}

// NewWriter logs to w instead of a file.
func NewWriter(w io.Writer) *Logger {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if debugFromEnv() {
		level.SetLevel(zapcore.DebugLevel)
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig()), zapcore.AddSync(w), level)
	return &Logger{
		sugar: zap.New(core).Sugar(),
		level: level,
	}
}

// Nop returns a logger that writes nowhere.
func Nop() *Logger {
	return &Logger{sugar: zap.NewNop().Sugar(), level: zap.NewAtomicLevel()}
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:     "time",
		LevelKey:    "level",
		MessageKey:  "msg",
		LineEnding:  zapcore.DefaultLineEnding,
		EncodeLevel: zapcore.CapitalLevelEncoder,
		EncodeTime: func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(t.Format("2006-01-02 15:04:05"))
		},
		EncodeDuration: zapcore.StringDurationEncoder,
	}
}

func debugFromEnv() bool {
	v := os.Getenv(DebugEnvVar)
	return v == "debug" || v == "trace"
}

// SetDebug toggles debug output at runtime.
func (l *Logger) SetDebug(on bool) {
	if l == nil {
		return
	}
	if on {
		l.level.SetLevel(zapcore.DebugLevel)
	} else {
		l.level.SetLevel(zapcore.InfoLevel)
	}
}

func (l *Logger) Close() error {
	if l == nil {
		return nil
	}
	_ = l.sugar.Sync()
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

func (l *Logger) Info(msg string) {
	if l != nil {
		l.sugar.Info(msg)
	}
}

func (l *Logger) Error(msg string) {
	if l != nil {
		l.sugar.Error(msg)
	}
}

func (l *Logger) Debug(msg string) {
	if l != nil {
		l.sugar.Debug(msg)
	}
}

func (l *Logger) Infof(format string, args ...interface{}) {
	if l != nil {
		l.sugar.Infof(format, args...)
	}
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	if l != nil {
		l.sugar.Errorf(format, args...)
	}
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	if l != nil {
		l.sugar.Debugf(format, args...)
	}
}

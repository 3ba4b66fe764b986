// Package logger builds the process logger: a zap console core writing to a
// lumberjack-rotated file when debug is on, a no-op logger otherwise. The
// terminal belongs to the renderer, so nothing is ever written to stdout.
package logger

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/lixenwraith/cursor-chase/parameter"
)

// Setup returns the logger and a flush function to defer
func Setup(debug bool, dir string) (*zap.Logger, func(), error) {
	if !debug {
		return zap.NewNop(), func() {}, nil
	}
	if dir == "" {
		dir = parameter.DefaultLogDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return zap.NewNop(), func() {}, errors.Wrapf(err, "create log dir %s", dir)
	}

	lj := &lumberjack.Logger{
		Filename:   filepath.Join(dir, parameter.LogFileName),
		MaxSize:    parameter.LogMaxSizeMB,
		MaxBackups: parameter.LogMaxBackups,
	}

	encCfg := zapcore.EncoderConfig{
		TimeKey:       "ts",
		LevelKey:      "level",
		NameKey:       "logger",
		CallerKey:     "caller",
		MessageKey:    "msg",
		StacktraceKey: "stack",
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeLevel:   zapcore.CapitalLevelEncoder,
		EncodeTime:    zapcore.ISO8601TimeEncoder,
		EncodeCaller:  zapcore.ShortCallerEncoder,
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(lj), zapcore.DebugLevel)
	log := zap.New(core, zap.AddCaller())

	flush := func() {
		_ = log.Sync()
		_ = lj.Close()
	}
	return log, flush, nil
}

package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"fyyur/internal/config"
)

// New собирает zap-логгер. Вне режима разработки записи уровня info и выше
// дополнительно дописываются в файл ошибок (время, уровень, сообщение, file:line).
// Возвращаемая функция закрывает файл и сбрасывает буферы.
func New(cfg config.Config) (*zap.Logger, func(), error) {
	level, err := zapcore.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	if cfg.IsDevelopment() {
		zcfg := zap.NewDevelopmentConfig()
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		log, err := zcfg.Build()
		if err != nil {
			return nil, nil, fmt.Errorf("build logger: %w", err)
		}
		return log, func() { _ = log.Sync() }, nil
	}

	stdout := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.Lock(os.Stdout),
		level,
	)

	cores := []zapcore.Core{stdout}
	var file *os.File
	if cfg.Log.ErrorFile != "" {
		file, err = os.OpenFile(cfg.Log.ErrorFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open error log %s: %w", cfg.Log.ErrorFile, err)
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(FileEncoderConfig()),
			zapcore.AddSync(file),
			zapcore.InfoLevel,
		))
	}

	log := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	cleanup := func() {
		_ = log.Sync()
		if file != nil {
			_ = file.Close()
		}
	}
	return log, cleanup, nil
}

// FileEncoderConfig формат строки файла ошибок.
func FileEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		MessageKey:       "msg",
		CallerKey:        "caller",
		StacktraceKey:    "stacktrace",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		EncodeTime:       zapcore.ISO8601TimeEncoder,
		EncodeDuration:   zapcore.StringDurationEncoder,
		EncodeCaller:     zapcore.FullCallerEncoder,
		ConsoleSeparator: " ",
	}
}

package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	EncodingJSON    = "json"
	EncodingConsole = "console"

	// LevelOff disables logging entirely.
	LevelOff = "off"
)

type Config struct {
	Level      string
	Encoding   string
	OutputPath string // empty means stderr; the TUI owns stdout
}

func New(cfg Config) (*zap.Logger, error) {
	levelName := strings.ToLower(strings.TrimSpace(cfg.Level))
	if levelName == LevelOff {
		return zap.NewNop(), nil
	}
	if levelName == "" {
		levelName = "info"
	}

	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(levelName)); err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", cfg.Level, err)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	encoding := strings.ToLower(cfg.Encoding)
	if encoding != EncodingConsole && encoding != EncodingJSON {
		encoding = EncodingJSON
	}

	outputPath := cfg.OutputPath
	if outputPath == "" {
		outputPath = "stderr"
	} else if outputPath != "stdout" && outputPath != "stderr" {
		if err := os.MkdirAll(filepath.Dir(outputPath), 0o700); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
	}

	zapConfig := zap.Config{
		Level:             level,
		DisableCaller:     true,
		DisableStacktrace: true,
		Encoding:          encoding,
		EncoderConfig:     encoderCfg,
		OutputPaths:       []string{outputPath},
		ErrorOutputPaths:  []string{"stderr"},
	}

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	return logger, nil
}

package listeners

import (
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogOpenListener appends a line per event to a log file.
type LogOpenListener struct {
	path   string
	file   *os.File
	logger *zap.Logger
}

func NewLogOpenListener(path string) (*LogOpenListener, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, errors.Wrapf(err, "open log file %s", path)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(f),
		zapcore.InfoLevel,
	)

	return &LogOpenListener{
		path:   path,
		file:   f,
		logger: zap.New(core),
	}, nil
}

func (l *LogOpenListener) Path() string {
	return l.path
}

func (l *LogOpenListener) Update(eventType string, filename string) error {
	l.logger.Info(describe(eventType, filename),
		zap.String("event", eventType),
		zap.String("file", filename),
	)

	return errors.Wrapf(l.logger.Sync(), "sync log file %s", l.path)
}

func (l *LogOpenListener) Close() error {
	_ = l.logger.Sync()
	return l.file.Close()
}

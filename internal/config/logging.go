package config

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger builds the daemon logger. Output goes to out, as JSON or in console format,
// and additionally to a rotating file when one is configured. The returned closer
// releases the file.
func (l LoggingConfiguration) NewLogger(out io.Writer) (zerolog.Logger, io.Closer, error) {
	level := zerolog.InfoLevel

	if l.Level != "" {
		parsed, err := zerolog.ParseLevel(l.Level)
		if err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("invalid log level %q: %w", l.Level, ErrLoadConfigurationFailure)
		}

		level = parsed
	}

	writer := out
	if !l.JSON {
		writer = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Stamp}
	}

	var closer io.Closer = nopCloser{}

	if l.File.Path != "" {
		file := &lumberjack.Logger{
			Filename:   l.File.Path,
			MaxSize:    l.File.MaxSize,
			MaxBackups: l.File.MaxBackups,
			MaxAge:     l.File.MaxAge,
			Compress:   l.File.Compress,
		}

		writer = zerolog.MultiLevelWriter(writer, file)
		closer = file
	}

	return zerolog.New(writer).Level(level).With().Timestamp().Logger(), closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

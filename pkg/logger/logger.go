package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger provides functionality for logging.
type Logger struct {
	*zerolog.Logger
}

func newFileWriter(filename string) io.Writer {
	return &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
	}
}

// Options represents options for logger.
type Options struct {
	LogLevel        string
	LogFile         string
	PrettyLogOutput bool
	// ConsoleOutput enables writing logs to stderr, stdout is reserved for the interactive menu.
	ConsoleOutput bool
}

// New returns a new instance of logger.
func New(opts Options) *Logger {
	writers := make([]io.Writer, 0, 2)

	if opts.ConsoleOutput {
		var consoleWriter io.Writer = os.Stderr
		if opts.PrettyLogOutput {
			consoleWriter = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Stamp}
		}

		writers = append(writers, consoleWriter)
	}

	if opts.LogFile != "" {
		writers = append(writers, newFileWriter(opts.LogFile))
	}

	var output io.Writer = io.Discard
	if len(writers) > 0 {
		output = io.MultiWriter(writers...)
	}

	level := zerolog.DebugLevel
	if opts.LogLevel != "" {
		parsedLevel, err := zerolog.ParseLevel(opts.LogLevel)
		if err != nil {
			panic(err)
		}

		level = parsedLevel
	}

	zeroLogger := zerolog.New(output).Level(level).With().Caller().Timestamp().Logger()

	return &Logger{&zeroLogger}
}

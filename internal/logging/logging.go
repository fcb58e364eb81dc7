// Package logging configures the global logrus logger.
package logging

import (
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// SetupParams selects where and how much to log.
type SetupParams struct {
	LogFile     string // empty: stderr only
	LogToStderr bool   // with LogFile, also write to stderr
	LogLevel    string
	JSON        bool
}

// Setup applies params to the standard logger and returns the writer in
// use so callers can close a rotating file on exit.
func Setup(params SetupParams) io.Writer {
	if params.JSON {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	log.SetLevel(GetLevel(params.LogLevel))

	if params.LogFile == "" {
		log.SetOutput(os.Stderr)
		return os.Stderr
	}

	if !strings.HasSuffix(params.LogFile, ".log") {
		params.LogFile += ".log"
	}

	rotating := &lumberjack.Logger{
		Filename:   params.LogFile,
		MaxSize:    10, // megabytes
		MaxBackups: 5,
		LocalTime:  true,
		Compress:   true,
	}

	var out io.Writer = rotating
	if params.LogToStderr {
		out = NewCombinedWriter(os.Stderr, rotating)
	}
	log.SetOutput(out)
	return out
}

// Close releases a writer returned by Setup if it holds a file.
func Close(w io.Writer) error {
	switch v := w.(type) {
	case *lumberjack.Logger:
		return v.Close()
	case *CombinedWriter:
		for _, inner := range v.Writers {
			if err := Close(inner); err != nil {
				return err
			}
		}
	}
	return nil
}

// GetLevel maps a level name to a logrus level. Unknown names mean warn.
func GetLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	case "info":
		return log.InfoLevel
	case "trace":
		return log.TraceLevel
	case "warn", "warning":
		return log.WarnLevel
	default:
		return log.WarnLevel
	}
}

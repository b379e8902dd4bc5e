package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/grovetools/seshconnect/config"
	"github.com/grovetools/seshconnect/pkg/paths"
	"github.com/grovetools/seshconnect/util/pathutil"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

var (
	loggers   = make(map[string]*logrus.Entry)
	loggersMu sync.Mutex

	// stderrSinks records which loggers already write to the global output.
	stderrSinks   = make(map[*logrus.Logger]bool)
	stderrSinksMu sync.Mutex
)

// NewLogger returns the logger for a component, creating it on first use.
// Configuration comes from the 'logging' section of the preferences file.
func NewLogger(component string) *logrus.Entry {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if logger, exists := loggers[component]; exists {
		return logger
	}

	var logCfg Config
	if prefs, err := config.LoadDefault(); err == nil {
		if err := prefs.UnmarshalExtension("logging", &logCfg); err != nil {
			logrus.Warnf("Failed to parse 'logging' config: %v", err)
		}
	}

	entry := newLoggerWithConfig(component, logCfg)
	loggers[component] = entry
	return entry
}

// newLoggerWithConfig builds an uncached logger from an explicit config.
func newLoggerWithConfig(component string, logCfg Config) *logrus.Entry {
	logger := logrus.New()

	levelStr := "info"
	if os.Getenv("SESHCONNECT_LOG_LEVEL") != "" {
		levelStr = os.Getenv("SESHCONNECT_LOG_LEVEL")
	} else if logCfg.Level != "" {
		levelStr = logCfg.Level
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if os.Getenv("SESHCONNECT_LOG_CALLER") == "true" || logCfg.ReportCaller {
		logger.SetReportCaller(true)
	}

	switch logCfg.Format.Preset {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "simple":
		logger.SetFormatter(&TextFormatter{Config: FormatConfig{
			DisableTimestamp: true,
			DisableComponent: true,
		}})
	default:
		logger.SetFormatter(&TextFormatter{Config: logCfg.Format})
	}

	var writers []io.Writer

	var logFilePath string
	if logCfg.File.Enabled && logCfg.File.Path != "" {
		logFilePath = pathutil.Expand(logCfg.File.Path)
	} else if logCfg.File.Enabled {
		if dir := paths.LogDir(); dir != "" {
			dateStr := time.Now().Format("2006-01-02")
			logFilePath = filepath.Join(dir, fmt.Sprintf("%s-%s.log", component, dateStr))
		}
	}

	if logFilePath != "" {
		dir := filepath.Dir(logFilePath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			logger.Warnf("Failed to create log directory %s: %v", dir, err)
		} else {
			file, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
			if err == nil {
				writers = append(writers, file)
			} else {
				logger.Warnf("Failed to open log file %s: %v", logFilePath, err)
			}
		}
	}

	toStderr := shouldLogToStderr(logCfg.Format.StructuredToStderr, logger.GetLevel())
	if toStderr {
		writers = append(writers, GetGlobalOutput())
	}
	stderrSinksMu.Lock()
	stderrSinks[logger] = toStderr
	stderrSinksMu.Unlock()

	switch len(writers) {
	case 0:
		// Interactive use without debugging: stay quiet
		logger.SetOutput(io.Discard)
	case 1:
		logger.SetOutput(writers[0])
	default:
		logger.SetOutput(io.MultiWriter(writers...))
	}

	return logger.WithField("component", component)
}

// shouldLogToStderr resolves the structured_to_stderr mode. "auto" logs to
// stderr when debugging or when stderr is not a terminal.
func shouldLogToStderr(mode string, level logrus.Level) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		isDebug := os.Getenv("SESHCONNECT_DEBUG") == "1" || level >= logrus.DebugLevel
		isInteractive := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
		return isDebug || !isInteractive
	}
}

// EnableVerbose switches entry's logger to debug level and makes sure it
// writes to the global output. Sinks are chosen when a logger is built, so
// raising the level alone would leave an interactive session with no output.
func EnableVerbose(entry *logrus.Entry) {
	logger := entry.Logger
	logger.SetLevel(logrus.DebugLevel)

	stderrSinksMu.Lock()
	defer stderrSinksMu.Unlock()
	if stderrSinks[logger] {
		return
	}
	stderrSinks[logger] = true

	if logger.Out == io.Discard {
		logger.SetOutput(GetGlobalOutput())
		return
	}
	logger.SetOutput(io.MultiWriter(logger.Out, GetGlobalOutput()))
}

// SetLevel changes the level of every logger created so far.
func SetLevel(level logrus.Level) {
	loggersMu.Lock()
	defer loggersMu.Unlock()
	for _, entry := range loggers {
		entry.Logger.SetLevel(level)
	}
}

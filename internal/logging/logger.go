package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/2beens/trainlytics/pkg"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type LoggerSetupParams struct {
	// ServiceName tags every entry and names the sentry server and the
	// default log file.
	ServiceName string
	Environment string
	LogLevel    string
	// LogsPath is a log file, or a directory when it ends with a separator.
	// Empty means console only.
	LogsPath      string
	LogToStdout   bool
	LogFormatJSON bool
	// Console defaults to stdout. The stdio MCP server passes stderr.
	Console       io.Writer
	SentryEnabled bool
	SentryDSN     string
	// zero values keep all rotated files
	MaxBackups int
	MaxAgeDays int
}

func Setup(params LoggerSetupParams) {
	if params.LogFormatJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	logrus.SetLevel(GetLevel(params.LogLevel))
	if params.ServiceName != "" {
		logrus.AddHook(&fieldsHook{fields: logrus.Fields{
			"service": params.ServiceName,
			"env":     params.Environment,
		}})
	}

	if params.SentryEnabled {
		setupSentry(params)
	}

	console := params.Console
	if console == nil {
		console = os.Stdout
	}

	filename := logFileName(params.LogsPath, params.ServiceName)
	if filename == "" {
		logrus.SetOutput(console)
		logrus.Debugln("writing logs only to console")
		return
	}

	file := &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    50,    // megabytes
		LocalTime:  false, // UTC
		Compress:   true,
		MaxBackups: params.MaxBackups,
		MaxAge:     params.MaxAgeDays,
	}
	if params.LogToStdout {
		logrus.SetOutput(pkg.NewCombinedWriter(console, file))
		logrus.Debugf("writing logs to [%s] and console", filename)
	} else {
		logrus.SetOutput(file)
	}
}

func setupSentry(params LoggerSetupParams) {
	err := sentry.Init(sentry.ClientOptions{
		Environment:      params.Environment,
		Dsn:              params.SentryDSN,
		TracesSampleRate: 1.0,
		ServerName:       params.ServiceName,
	})
	if err != nil {
		logrus.Errorf("sentry.Init: %s", err)
		return
	}

	logrus.AddHook(NewSentryHook([]logrus.Level{
		logrus.PanicLevel,
		logrus.FatalLevel,
		logrus.ErrorLevel,
	}))
	logrus.Infoln("sentry set up")
}

// logFileName resolves the lumberjack file for path. A directory gets
// "<service>.log" inside it, a bare name gets the .log suffix.
func logFileName(path, service string) string {
	if path == "" {
		return ""
	}
	if strings.HasSuffix(path, string(filepath.Separator)) {
		if service == "" {
			service = "trainlytics"
		}
		return filepath.Join(path, service+".log")
	}
	if filepath.Ext(path) != ".log" {
		return path + ".log"
	}
	return path
}

// GetLevel parses a config log level. Unknown values log everything.
func GetLevel(level string) logrus.Level {
	l, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return logrus.TraceLevel
	}
	return l
}

// fieldsHook stamps fixed fields on entries that do not set them.
type fieldsHook struct {
	fields logrus.Fields
}

func (h *fieldsHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *fieldsHook) Fire(entry *logrus.Entry) error {
	for k, v := range h.fields {
		if _, ok := entry.Data[k]; !ok {
			entry.Data[k] = v
		}
	}
	return nil
}

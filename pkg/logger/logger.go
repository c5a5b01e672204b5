package logger

import (
	"fmt"
	"io"
	golog "log"
	"os"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/go-stack/stack"
	multierror "github.com/hashicorp/go-multierror"
	"github.com/replicatedhq/dirload/pkg/constants"
	"github.com/replicatedhq/dirload/pkg/fs"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

type compositeLogger struct {
	loggers []log.Logger
}

func (c *compositeLogger) Log(keyvals ...interface{}) error {
	var multiErr *multierror.Error
	for _, logger := range c.loggers {
		if err := logger.Log(keyvals...); err != nil {
			multiErr = multierror.Append(multiErr, err)
		}
	}
	return multiErr.ErrorOrNil()
}

// FromViper builds a logger from env using viper, writing the debug log file
// to the OS filesystem
func FromViper(v *viper.Viper) log.Logger {
	return New(v, fs.NewWritableFilesystem(), os.Stderr)
}

// New builds a logger that writes to w at the configured level and, when
// log-file is set, a full debug copy to that file on fs
func New(v *viper.Viper, debugFs afero.Afero, w io.Writer) log.Logger {
	fullPathCaller := pathCaller(6)
	format := v.GetString(constants.LogFormatFlag)

	var baseLogger log.Logger //nolint:gosimple
	baseLogger = withFormat(format, w)
	baseLogger = log.With(baseLogger, "ts", log.DefaultTimestampUTC)
	baseLogger = log.With(baseLogger, "caller", fullPathCaller)
	baseLogger = withLevel(baseLogger, v.GetString(constants.LogLevelFlag))

	debugLogFile := v.GetString(constants.LogFileFlag)
	if debugLogFile == "" {
		golog.SetOutput(log.NewStdlibAdapter(level.Debug(baseLogger)))
		return baseLogger
	}

	debugLogWriter, err := debugFs.Create(debugLogFile)
	if err != nil {
		level.Warn(baseLogger).Log("msg", "failed to initialize debug log file", "path", debugLogFile, "error", err)
		golog.SetOutput(log.NewStdlibAdapter(level.Debug(baseLogger)))
		return baseLogger
	}

	var debugLogger log.Logger
	debugLogger = withFormat(format, debugLogWriter)
	debugLogger = log.With(debugLogger, "ts", log.DefaultTimestampUTC)
	debugLogger = log.With(debugLogger, "caller", fullPathCaller)
	debugLogger = withLevel(debugLogger, "debug")

	realLogger := &compositeLogger{
		loggers: []log.Logger{
			baseLogger,
			debugLogger,
		},
	}

	golog.SetOutput(log.NewStdlibAdapter(level.Debug(realLogger)))
	return realLogger
}

func withFormat(format string, w io.Writer) log.Logger {
	switch format {
	case "json":
		return log.NewJSONLogger(w)
	case "logfmt":
		return log.NewLogfmtLogger(w)
	default:
		return log.NewLogfmtLogger(w)
	}
}

func withLevel(logger log.Logger, lvl string) log.Logger {
	switch lvl {
	case "debug":
		return level.NewFilter(logger, level.AllowDebug())
	case "info":
		return level.NewFilter(logger, level.AllowInfo())
	case "warn":
		return level.NewFilter(logger, level.AllowWarn())
	case "error":
		return level.NewFilter(logger, level.AllowError())
	case "off", "":
		return level.NewFilter(logger, level.AllowNone())
	default:
		logger.Log("msg", "Unknown log level, using debug", "received", lvl)
		return level.NewFilter(logger, level.AllowDebug())
	}
}

func pathCaller(depth int) log.Valuer {
	return func() interface{} {
		return fmt.Sprintf("%+s", stack.Caller(depth))
	}
}

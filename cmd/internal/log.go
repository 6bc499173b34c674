package internal

import (
	"fmt"
	"os"
	"strings"

	nested "github.com/antonfisher/nested-logrus-formatter"
	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
)

const (
	defaultLogLevel  = "warn"
	defaultLogFormat = "text"
	timestampFormat  = "2006-01-02 15:04:05"
)

// LogOptions are the logging flags shared by all commands.
type LogOptions struct {
	Level  string
	Format string
}

// AddLogFlags registers --log-level and --log-format with flags.
func AddLogFlags(flags *flag.FlagSet) *LogOptions {
	opts := new(LogOptions)
	flags.StringVar(&opts.Level, "log-level", defaultLogLevel, "Log level, one of trace, debug, info, warn, or error.")
	flags.StringVar(&opts.Format, "log-format", defaultLogFormat, "Log format, either text or json.")
	return opts
}

// Setup configures the standard logrus logger. Logs are always written to stderr.
func (o *LogOptions) Setup() error {
	lvl, err := logrus.ParseLevel(o.Level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(lvl)

	switch strings.ToLower(o.Format) {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: timestampFormat,
		})
	case "text", "":
		logrus.SetFormatter(&nested.Formatter{
			FieldsOrder: []string{
				"file", "port", "baud", "key", "mode", "bytes", "error",
			},
			TimestampFormat: timestampFormat,
		})
	default:
		return fmt.Errorf("invalid log format '%s', must be text or json", o.Format)
	}
	return nil
}

package config

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/m-mizutani/clog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/masq"
	"github.com/urfave/cli/v3"
)

// Settings of the logger when flags are resolved from raw arguments
var (
	LogLevelSetting = Setting{Flag: "log-level", EnvVar: "RELHOOK_LOG_LEVEL", Default: "info"}
	LogJSONSetting  = Setting{Flag: "log-json", EnvVar: "RELHOOK_LOG_JSON", Default: "false"}
)

// Logger holds logger configuration
type Logger struct {
	Level string
	JSON  bool

	// Secrets are redacted from any logged string that contains them
	Secrets []string
}

// NewLogger resolves logger configuration from parsed arguments and env
func NewLogger(args Args, env LookupEnv) *Logger {
	return &Logger{
		Level: args.Resolve(LogLevelSetting, env),
		JSON:  args.Switch(LogJSONSetting, env),
	}
}

// Flags returns CLI flags for logger configuration
func (c *Logger) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        LogLevelSetting.Flag,
			Usage:       "Log level (debug, info, warn, error)",
			Value:       LogLevelSetting.Default,
			Destination: &c.Level,
			Sources:     cli.EnvVars(LogLevelSetting.EnvVar),
		},
		&cli.BoolFlag{
			Name:        LogJSONSetting.Flag,
			Usage:       "Output logs in JSON format",
			Value:       false,
			Destination: &c.JSON,
			Sources:     cli.EnvVars(LogJSONSetting.EnvVar),
		},
	}
}

// Configure configures and returns a logger writing to w
func (c *Logger) Configure(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	switch strings.ToLower(c.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return nil, goerr.New("invalid log level", goerr.V("level", c.Level))
	}

	if w == nil {
		w = os.Stdout
	}

	filterOpts := []masq.Option{
		masq.WithTag("secret"),
		masq.WithFieldName("Secret"),
	}
	for _, s := range c.Secrets {
		if s != "" {
			filterOpts = append(filterOpts, masq.WithContain(s))
		}
	}
	filter := masq.New(filterOpts...)

	var handler slog.Handler
	if c.JSON {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:       level,
			ReplaceAttr: filter,
		})
	} else {
		handler = clog.New(
			clog.WithWriter(w),
			clog.WithLevel(level),
			clog.WithReplaceAttr(filter),
		)
	}

	return slog.New(handler), nil
}

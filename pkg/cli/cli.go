package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relhook/pkg/cli/config"
	"github.com/m-mizutani/relhook/pkg/domain/model"
	"github.com/m-mizutani/relhook/pkg/domain/types"
	"github.com/m-mizutani/relhook/pkg/infra/console"
	"github.com/m-mizutani/relhook/pkg/infra/hook"
	"github.com/m-mizutani/relhook/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// Process exit codes
const (
	ExitOK        = 0
	ExitRejected  = 1
	ExitTransport = 2
)

const usageText = `relhook [--secret=<secret>] [--url=<url>] [options]

   --secret=<secret>     HMAC key (env GITHUB_SECRET, default "mysecret")
   --url=<url>           delivery target (env EL_URL, default "http://127.0.0.1:8080")
   --tag=<tag>           release tag (env RELHOOK_TAG, default "v1.0.1")
   --commitish=<ref>     release target commitish (env RELHOOK_COMMITISH, default "production")
   --repo=<owner/name>   repository full name (env RELHOOK_REPO, default "AHMnesia/suma-ecommerce")
   --insecure            skip TLS certificate verification (env RELHOOK_INSECURE)
   --no-color            disable colored output (env RELHOOK_NO_COLOR)
   --log-level=<level>   debug, info, warn or error (env RELHOOK_LOG_LEVEL)
   --log-json            output logs in JSON format (env RELHOOK_LOG_JSON)
   --help                show this help
   --version             print the version
`

type options struct {
	stdout io.Writer
	stderr io.Writer
	env    config.LookupEnv
}

// Option is a functional option for Run
type Option func(*options)

// WithStdout replaces os.Stdout for the report
func WithStdout(w io.Writer) Option {
	return func(o *options) {
		o.stdout = w
	}
}

// WithStderr replaces os.Stderr for errors and logs
func WithStderr(w io.Writer) Option {
	return func(o *options) {
		o.stderr = w
	}
}

// WithLookupEnv replaces the process environment
func WithLookupEnv(env config.LookupEnv) Option {
	return func(o *options) {
		o.env = env
	}
}

// Run sends one release webhook. Use ExitCode to turn the result into a
// process exit status.
func Run(ctx context.Context, args []string, opts ...Option) error {
	o := &options{
		stdout: os.Stdout,
		stderr: os.Stderr,
		env:    config.OSEnv,
	}
	for _, opt := range opts {
		opt(o)
	}

	var (
		parsed  config.Args
		trigger *config.Trigger
		logger  *slog.Logger
	)

	app := &cli.Command{
		Name:      "relhook",
		Usage:     "Send a signed GitHub release webhook to an event listener",
		UsageText: usageText,
		Version:   types.Version,
		Writer:    o.stdout,
		ErrWriter: o.stderr,
		// "--key=value" and bare "--flag" are resolved by config.ParseArgs
		SkipFlagParsing: true,
		HideHelp:        true,
		HideVersion:     true,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			parsed = config.ParseArgs(c.Args().Slice())
			trigger = config.NewTrigger(parsed, o.env)

			loggerCfg := config.NewLogger(parsed, o.env)
			loggerCfg.Secrets = []string{trigger.Secret}

			var err error
			logger, err = loggerCfg.Configure(o.stderr)
			if err != nil {
				return nil, err
			}

			slog.SetDefault(logger)
			return ctx, nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			switch {
			case parsed.Has("help"):
				_, err := fmt.Fprint(o.stdout, "USAGE:\n   "+usageText)
				return err
			case parsed.Has("version"):
				_, err := fmt.Fprintln(o.stdout, "relhook version", types.Version)
				return err
			}

			return send(ctx, logger, trigger, o)
		},
	}

	if err := app.Run(ctx, args); err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("CLI execution failed", slog.Any("error", err))
		return err
	}

	return nil
}

func send(ctx context.Context, logger *slog.Logger, trigger *config.Trigger, o *options) error {
	if trigger.Insecure {
		logger.Warn("TLS certificate verification is disabled")
	}

	colored := !trigger.NoColor && !color.NoColor
	reporter := console.NewReporter(o.stdout, o.stderr, colored)
	sender := hook.NewSender(hook.WithInsecure(trigger.Insecure))

	uc := usecase.NewTrigger(sender, reporter, usecase.WithLogger(logger))
	resp, err := uc.Send(ctx, trigger.Input())
	if err != nil {
		return err
	}

	if resp.Rejected() {
		return goerr.New("webhook delivery rejected",
			goerr.V("url", trigger.URL),
			goerr.V("status", resp.StatusCode),
			goerr.T(model.ErrTagRejected))
	}

	logger.Debug("Webhook delivered", "url", trigger.URL, "status", resp.StatusCode)
	return nil
}

// ExitCode maps the error returned by Run to a process exit status: 0 on
// success, 2 when no response was obtained and 1 otherwise.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case goerr.HasTag(err, model.ErrTagTransport):
		return ExitTransport
	default:
		return ExitRejected
	}
}

// Package cli implements the blockmail command-line interface.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/blockmail/core/config"
	"github.com/dmitrymomot/blockmail/core/logger"
	"github.com/dmitrymomot/blockmail/internal/httpapi"
)

const appName = "blockmail"

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersion sets the build information shown by --version.
func SetVersion(v, c, d string) {
	version, commit, date = v, c, d
}

// CLI holds state shared by all commands.
type CLI struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	cfg       Config
	cfgLoaded bool
	verbose   bool

	Logger *slog.Logger
}

// Option configures a CLI.
type Option func(*CLI)

// WithConfig uses cfg instead of reading the environment.
func WithConfig(cfg Config) Option {
	return func(c *CLI) {
		c.cfg = cfg
		c.cfgLoaded = true
	}
}

// WithStdin sets the reader used for "-" inputs.
func WithStdin(r io.Reader) Option {
	return func(c *CLI) { c.stdin = r }
}

// New creates a CLI writing command output to stdout and logs to stderr.
func New(stdout, stderr io.Writer, opts ...Option) *CLI {
	c := &CLI{
		stdin:  eofReader{},
		stdout: stdout,
		stderr: stderr,
		Logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Render block documents into email HTML and deliver them",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup()
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("%s %s\ncommit: %s\nbuilt: %s\n", appName, version, commit, date))
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")
	root.SetOut(c.stdout)
	root.SetErr(c.stderr)

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.sendCommand())
	root.AddCommand(c.serveCommand())

	return root
}

func (c *CLI) setup() error {
	if !c.cfgLoaded {
		if err := config.Load(&c.cfg); err != nil {
			return err
		}
		c.cfgLoaded = true
	}

	level := logger.ParseLevel(c.cfg.LogLevel)
	if c.verbose {
		level = slog.LevelDebug
	}
	c.Logger = newLogger(c.stderr, c.cfg, level)
	return nil
}

// newLogger builds the process logger. The pretty format hands records to
// charmbracelet/log; text and json use the slog handlers.
func newLogger(w io.Writer, cfg Config, level slog.Level) *slog.Logger {
	opts := []logger.Option{
		logger.WithLevel(level),
		logger.WithOutput(w),
		logger.WithContextExtractors(httpapi.RequestID),
	}

	switch cfg.LogFormat {
	case formatPretty, "":
		opts = append(opts, logger.WithHandler(charmlog.NewWithOptions(w, charmlog.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           charmlog.Level(level),
		})))
	default:
		opts = append(opts, logger.WithFormat(cfg.LogFormat))
	}

	if cfg.AppEnv != "" {
		opts = append(opts, logger.WithAttr(slog.String("env", cfg.AppEnv)))
	}
	return logger.New(opts...)
}

type eofReader struct{}

func (eofReader) Read([]byte) (int, error) { return 0, io.EOF }

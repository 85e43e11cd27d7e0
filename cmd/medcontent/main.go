package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/kailas-cloud/medcontent"
	"github.com/kailas-cloud/medcontent/internal/config"
	logpkg "github.com/kailas-cloud/medcontent/internal/logger"
	"github.com/kailas-cloud/medcontent/internal/metrics"
	"github.com/kailas-cloud/medcontent/internal/version"
)

type options struct {
	ConfigPath  string
	Env         string
	ContentDir  string
	MetricsFile string
	LogLevel    string
	Output      string
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	opt := &options{Env: config.GetEnv(), Output: formatJSON}

	flags := pflag.NewFlagSet("medcontent", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&opt.ConfigPath, "config", opt.ConfigPath, "Path to a config file. Defaults to config/<env>.yaml.")
	flags.StringVar(&opt.Env, "env", opt.Env, "Environment name: local, dev or prod. Defaults to $ENV or local.")
	flags.StringVar(&opt.ContentDir, "content-dir", opt.ContentDir, "Read database files from this directory instead of the compiled-in content.")
	flags.StringVar(&opt.MetricsFile, "metrics-file", opt.MetricsFile, "Write catalog metrics in Prometheus text format to this file.")
	flags.StringVar(&opt.LogLevel, "log-level", opt.LogLevel, "Log level override: debug, info, warn, error.")
	flags.StringVarP(&opt.Output, "output", "o", opt.Output, "Output format: json or yaml.")
	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: medcontent [flags] <command> [args]\n\nCommands:\n%s\nFlags:\n%s", commandUsage(), flags.FlagUsages())
	}
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	rest := flags.Args()
	if len(rest) == 0 {
		flags.Usage()
		return errUsage
	}
	if rest[0] == "version" {
		fmt.Fprintln(stdout, version.String())
		return nil
	}

	p, err := newPrinter(stdout, opt.Output)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return err
	}

	cfg, err := loadConfig(opt)
	if err != nil {
		fmt.Fprintln(stderr, "failed to load config:", err)
		return err
	}

	logger, err := logpkg.NewLogger(opt.Env, cfg.Logging.Level)
	if err != nil {
		fmt.Fprintln(stderr, "failed to create logger:", err)
		return err
	}
	defer func() { _ = logger.Sync() }()

	if err := execute(logpkg.ContextWithLogger(context.Background(), logger), cfg, rest, p); err != nil {
		logger.Error("command failed", zap.String("command", rest[0]), zap.Error(err))
		return err
	}
	return nil
}

// loadConfig resolves configuration and applies flag overrides. A missing
// environment file falls back to defaults; an explicit --config must exist.
func loadConfig(opt *options) (config.Config, error) {
	var (
		cfg config.Config
		err error
	)
	if opt.ConfigPath != "" {
		cfg, err = config.LoadFile(opt.ConfigPath)
	} else {
		cfg, err = config.Load(opt.Env)
		if errors.Is(err, fs.ErrNotExist) {
			cfg, err = config.Parse(nil)
		}
	}
	if err != nil {
		return config.Config{}, err
	}

	if opt.ContentDir != "" {
		cfg.Content.Dir = opt.ContentDir
	}
	if opt.MetricsFile != "" {
		cfg.Metrics.Textfile = opt.MetricsFile
	}
	if opt.LogLevel != "" {
		cfg.Logging.Level = opt.LogLevel
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// execute opens the catalog, runs one command and exports metrics.
func execute(ctx context.Context, cfg config.Config, args []string, p *printer) error {
	logger := logpkg.FromContext(ctx)
	reg := prometheus.NewRegistry()

	libOpts := []medcontent.Option{
		medcontent.WithLogger(logger),
		medcontent.WithPrometheus(reg),
		medcontent.WithDatabases(cfg.EnabledDatabases()...),
	}
	if cfg.Content.Dir != "" {
		libOpts = append(libOpts, medcontent.WithContentDir(cfg.Content.Dir))
	}
	lib, err := medcontent.Open(libOpts...)
	if err != nil {
		return err
	}

	cmdErr := dispatch(logpkg.WithCommand(ctx, args[0]), lib, args, p)

	if cfg.Metrics.Textfile != "" {
		if err := metrics.WriteTextfile(cfg.Metrics.Textfile, reg); err != nil {
			return errors.Join(cmdErr, err)
		}
		logger.Debug("metrics written", zap.String("path", cfg.Metrics.Textfile))
	}
	return cmdErr
}

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	flag "github.com/spf13/pflag"

	iconcss "github.com/alnah/go-iconcss"
	"github.com/alnah/go-iconcss/internal/config"
	"github.com/alnah/go-iconcss/internal/fileutil"
	"github.com/alnah/go-iconcss/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput     = errors.New("no class names given")
	ErrReadInput   = errors.New("failed to read class names")
	ErrWriteOutput = errors.New("failed to write output")
	ErrInvalidEnv  = errors.New("invalid environment variable")
	ErrUnresolved  = errors.New("unresolved icon classes")
)

// runMain runs the command and returns the process exit code.
func runMain(args []string, env *Environment) int {
	flags, classes, err := parseFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, "error:", err)
		return ExitUsage
	}

	if flags.version {
		fmt.Fprintf(env.Stdout, "iconcss %s\n", Version)
		return ExitSuccess
	}

	if err := run(flags, classes, env); err != nil {
		fmt.Fprintln(env.Stderr, "error:", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// run resolves the class names and writes one CSS rule per resolved class.
func run(flags *cliFlags, classes []string, env *Environment) error {
	environ := env.Environ()
	logger := newLogger(env.Stderr, flags.quiet, flags.verbose)
	warnUnknownEnvVars(logger, environ)

	envCfg, err := loadEnvConfig(environ)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(flags, envCfg)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	opts, err := buildOptions(cfg, logger)
	if err != nil {
		return err
	}
	resolver, err := iconcss.NewResolver(opts...)
	if err != nil {
		if errors.Is(err, iconcss.ErrInvalidCollectionPath) {
			return fmt.Errorf("%w%s", err, hints.ForCollectionPath())
		}
		return err
	}

	if len(classes) == 0 {
		classes, err = readClasses(env.Stdin)
		if err != nil {
			return err
		}
	}
	classes = dedupe(classes)
	if len(classes) == 0 {
		return ErrNoInput
	}

	logger.Debug("resolving", "classes", len(classes), "workers", iconcss.ResolvePoolSize(cfg.Output.Workers))
	results := resolver.ResolveAll(classes, cfg.Output.Workers)

	var css strings.Builder
	var missing int
	for _, res := range results {
		switch {
		case res.Err == nil:
			css.WriteString(res.Declarations.Rule(res.Class))
		case errors.Is(res.Err, iconcss.ErrNoMatch):
			missing++
			if !flags.quiet {
				fmt.Fprintf(env.Stderr, "warning: %s: %v%s\n", res.Class, res.Err, missingHint(res, resolver, cfg))
			}
		default:
			hint := ""
			if errors.Is(res.Err, iconcss.ErrDatasetMalformed) {
				hint = hints.ForMalformedCollection()
			}
			return fmt.Errorf("%s: %w%s", res.Class, res.Err, hint)
		}
	}

	if err := writeCSS(env, cfg, environ, css.String()); err != nil {
		return err
	}

	if missing > 0 && !cfg.Output.SkipMissing {
		return fmt.Errorf("%w: %d of %d", ErrUnresolved, missing, len(results))
	}
	return nil
}

// newLogger builds the stderr logger. Default level is warn.
func newLogger(w io.Writer, quiet, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case verbose:
		level = slog.LevelDebug
	case quiet:
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// loadConfig loads the config named by --config or ICONCSS_CONFIG.
// Without either, returns the default config.
func loadConfig(flags *cliFlags, envCfg *envConfig) (*config.Config, error) {
	name := flags.config
	if name == "" {
		name = envCfg.ConfigPath
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
			return nil, fmt.Errorf("%w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
		}
		return nil, err
	}
	return cfg, nil
}

// mergeFlags applies explicitly set CLI flags over config values.
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	if flags.changed("prefix") {
		cfg.Icons.Prefix = flags.prefix
	}
	if flags.changed("scale") {
		cfg.Icons.Scale = flags.scale
	}
	if flags.changed("mode") {
		cfg.Icons.Mode = flags.mode
	}
	if flags.changed("collections") {
		cfg.Collections.BasePath = flags.collections
	}
	if flags.changed("lenient") {
		cfg.Collections.Lenient = flags.lenient
	}
	if flags.changed("workers") {
		cfg.Output.Workers = flags.workers
	}
	if flags.changed("color") {
		cfg.Output.Color = flags.color
	}
	if flags.changed("skip-missing") {
		cfg.Output.SkipMissing = flags.skipMissing
	}
}

// buildOptions converts config values to resolver options.
// Zero values keep the library defaults.
func buildOptions(cfg *config.Config, logger *slog.Logger) ([]iconcss.Option, error) {
	opts := []iconcss.Option{
		iconcss.WithLogger(logger),
		iconcss.WithLenientLoading(cfg.Collections.Lenient),
	}

	if cfg.Icons.Prefix != "" {
		opts = append(opts, iconcss.WithPrefix(cfg.Icons.Prefix))
	}
	if cfg.Icons.Scale != 0 {
		opts = append(opts, iconcss.WithScale(cfg.Icons.Scale))
	}
	if cfg.Icons.Mode != "" {
		mode, err := iconcss.ParseMode(cfg.Icons.Mode)
		if err != nil {
			return nil, err
		}
		opts = append(opts, iconcss.WithMode(mode))
	}
	if cfg.Icons.CustomProperty != "" {
		opts = append(opts, iconcss.WithCustomProperty(cfg.Icons.CustomProperty))
	}
	if len(cfg.Icons.ExtraProperties) > 0 {
		opts = append(opts, iconcss.WithExtraProperties(cfg.Icons.ExtraProperties))
	}
	if cfg.Collections.BasePath != "" {
		opts = append(opts, iconcss.WithCollectionPath(cfg.Collections.BasePath))
	}

	return opts, nil
}

// readClasses reads whitespace separated class names.
func readClasses(r io.Reader) ([]string, error) {
	if r == nil {
		return nil, nil
	}

	var classes []string
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		classes = append(classes, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadInput, err)
	}
	return classes, nil
}

// dedupe drops repeated class names, keeping first occurrences in order.
func dedupe(classes []string) []string {
	seen := make(map[string]bool, len(classes))
	out := classes[:0:0]
	for _, c := range classes {
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

// missingHint suggests a fix for classes naming an unknown collection.
func missingHint(res iconcss.Result, resolver *iconcss.Resolver, cfg *config.Config) string {
	if !errors.Is(res.Err, iconcss.ErrCollectionNotFound) {
		return ""
	}
	ref, ok := iconcss.ParseClass(res.Class, resolver.Prefix())
	if !ok {
		return ""
	}
	return hints.ForCollectionNotFound(ref.Collection, cfg.Collections.BasePath)
}

// writeCSS writes the rules, highlighted when color applies.
func writeCSS(env *Environment, cfg *config.Config, environ []string, css string) error {
	if css == "" {
		return nil
	}

	_, noColor := environMap(environ)["NO_COLOR"]
	if useColor(cfg.Output.Color, noColor, env.Stdout, env.IsTerminal) {
		if err := highlightCSS(env.Stdout, css); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		return nil
	}

	if _, err := io.WriteString(env.Stdout, css); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all command line flags.
type cliFlags struct {
	config      string
	prefix      string
	scale       float64
	mode        string
	collections string
	lenient     bool
	workers     int
	color       string
	skipMissing bool
	quiet       bool
	verbose     bool
	version     bool

	fs *flag.FlagSet
}

// changed reports whether the flag was set on the command line.
func (f *cliFlags) changed(name string) bool {
	return f.fs != nil && f.fs.Changed(name)
}

// parseFlags parses flags and returns positional args (class names).
func parseFlags(args []string, stderr io.Writer) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("iconcss", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &cliFlags{fs: fs}

	// Resolution
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVar(&f.prefix, "prefix", "", "class name prefix (default \"i-\")")
	fs.Float64VarP(&f.scale, "scale", "s", 0, "icon size in em (default 1)")
	fs.StringVarP(&f.mode, "mode", "m", "", "auto, mask, or background-img")
	fs.StringVar(&f.collections, "collections", "", "directory of icon collections")
	fs.BoolVar(&f.lenient, "lenient", false, "treat broken collections as missing")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")

	// Output
	fs.StringVar(&f.color, "color", "", "highlight output: auto, always, never")
	fs.BoolVar(&f.skipMissing, "skip-missing", false, "do not fail on unresolved classes")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show collection loading details")
	fs.BoolVar(&f.version, "version", false, "show version information")

	fs.Usage = func() { printUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

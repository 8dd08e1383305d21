package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: iconcss [flags] [class...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print CSS rules for icon class names such as i-mdi-home.")
	fmt.Fprintln(w, "Class names are read from stdin (whitespace separated) when none are given.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Resolution:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --prefix <s>          Class name prefix (default \"i-\")")
	fmt.Fprintln(w, "  -s, --scale <f>           Icon size in em (default 1)")
	fmt.Fprintln(w, "  -m, --mode <s>            Mode: auto, mask, background-img")
	fmt.Fprintln(w, "      --collections <dir>   Directory of icon collections")
	fmt.Fprintln(w, "      --lenient             Treat broken collections as missing")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "      --color <s>           Highlight CSS: auto, always, never")
	fmt.Fprintln(w, "      --skip-missing        Do not fail on unresolved classes")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show collection loading details")
	fmt.Fprintln(w, "      --version             Show version information")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  ICONCSS_CONFIG, ICONCSS_PREFIX, ICONCSS_SCALE, ICONCSS_MODE,")
	fmt.Fprintln(w, "  ICONCSS_COLLECTIONS, ICONCSS_LENIENT, ICONCSS_WORKERS, ICONCSS_COLOR")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes: 0 success, 1 unresolved classes, 2 usage or config, 3 I/O or broken collection")
}

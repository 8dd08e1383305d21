package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/mattn/go-isatty"
)

// Highlighting defaults for terminal output.
const (
	highlightFormatter = "terminal256"
	highlightStyle     = "monokai"
)

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// useColor decides whether output is highlighted.
// "auto" highlights terminals unless NO_COLOR is set.
func useColor(mode string, noColor bool, w io.Writer, isTerm func(io.Writer) bool) bool {
	switch strings.ToLower(mode) {
	case "always":
		return true
	case "never":
		return false
	default:
		return !noColor && isTerm != nil && isTerm(w)
	}
}

// highlightCSS writes css with ANSI colors.
func highlightCSS(w io.Writer, css string) error {
	lexer := lexers.Get("css")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	formatter := formatters.Get(highlightFormatter)
	if formatter == nil {
		formatter = formatters.Fallback
	}
	style := styles.Get(highlightStyle)
	if style == nil {
		style = styles.Fallback
	}

	iterator, err := lexer.Tokenise(nil, css)
	if err != nil {
		return fmt.Errorf("tokenising css: %w", err)
	}
	return formatter.Format(w, style, iterator)
}

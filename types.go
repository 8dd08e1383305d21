package iconcss

import (
	"fmt"
	"log/slog"
	"strings"
)

// Mode selects how an icon is painted.
type Mode string

const (
	// ModeAuto picks ModeMask when the icon markup uses currentColor,
	// ModeBackgroundImage otherwise.
	ModeAuto Mode = "auto"

	// ModeMask paints the icon shape with the current text color.
	ModeMask Mode = "mask"

	// ModeBackgroundImage paints the icon with its own colors.
	ModeBackgroundImage Mode = "background-img"
)

// ParseMode converts a mode name to a Mode. Matching is case-insensitive.
// Returns ErrInvalidMode for unknown names.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeAuto:
		return ModeAuto, nil
	case ModeMask:
		return ModeMask, nil
	case ModeBackgroundImage:
		return ModeBackgroundImage, nil
	default:
		return "", fmt.Errorf("%w: %q (must be auto, mask, or background-img)", ErrInvalidMode, s)
	}
}

// Defaults used when no option overrides them.
const (
	DefaultScale          = 1.0
	DefaultMode           = ModeAuto
	DefaultPrefix         = "i-"
	DefaultCustomProperty = "--un-icon"
)

// Option configures a Resolver.
type Option func(*Resolver)

// WithScale sets the icon size as a multiple of 1em. Must be positive.
func WithScale(scale float64) Option {
	return func(r *Resolver) {
		r.cfg.scale = scale
	}
}

// WithMode sets the paint mode.
func WithMode(mode Mode) Option {
	return func(r *Resolver) {
		r.cfg.mode = mode
	}
}

// WithPrefix sets the class name prefix used by ResolveClass and Pattern.
func WithPrefix(prefix string) Option {
	return func(r *Resolver) {
		r.cfg.prefix = prefix
	}
}

// WithCollectionPath adds a directory of collections that takes precedence
// over the bundled ones.
func WithCollectionPath(path string) Option {
	return func(r *Resolver) {
		r.cfg.collectionPath = path
	}
}

// WithCollectionLoader sets a custom collection provider.
// Takes precedence over WithCollectionPath.
func WithCollectionLoader(loader CollectionLoader) Option {
	return func(r *Resolver) {
		r.cfg.loader = loader
	}
}

// WithLenientLoading makes unreadable or malformed collections behave like
// missing ones: they resolve to "no match" and are never retried.
// By default such collections fail loudly and are retried on the next call.
func WithLenientLoading(lenient bool) Option {
	return func(r *Resolver) {
		r.cfg.lenient = lenient
	}
}

// WithCustomProperty sets the custom property that carries the icon URL in
// mask mode. Must start with "--".
func WithCustomProperty(name string) Option {
	return func(r *Resolver) {
		r.cfg.customProperty = name
	}
}

// WithExtraProperties adds declarations to every resolved icon, e.g.
// display or vertical-align. A property that is already emitted keeps its
// position and takes the extra value; new properties follow in name order.
func WithExtraProperties(props map[string]string) Option {
	return func(r *Resolver) {
		r.cfg.extra = props
	}
}

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// resolverConfig holds internal configuration for Resolver.
type resolverConfig struct {
	scale          float64
	mode           Mode
	prefix         string
	collectionPath string
	loader         CollectionLoader
	lenient        bool
	customProperty string
	extra          map[string]string
}

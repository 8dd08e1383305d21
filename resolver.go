package iconcss

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/alnah/go-iconcss/internal/collections"
	"github.com/alnah/go-iconcss/internal/store"
	"github.com/alnah/go-iconcss/internal/svg"
)

// Resolver turns icon references into CSS declarations.
// Create with NewResolver. A Resolver is safe for concurrent use; it owns the
// collection cache, so share one Resolver to load each collection only once.
type Resolver struct {
	cfg     resolverConfig
	logger  *slog.Logger
	store   *store.Store
	pattern *regexp.Regexp
}

// NewResolver creates a Resolver with default configuration
// (scale 1, auto mode, prefix "i-", bundled collections).
// Returns an error if an option carries an invalid value or the collection
// path cannot be used.
func NewResolver(opts ...Option) (*Resolver, error) {
	r := &Resolver{
		cfg: resolverConfig{
			scale:          DefaultScale,
			mode:           DefaultMode,
			prefix:         DefaultPrefix,
			customProperty: DefaultCustomProperty,
		},
		logger: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(r)
	}

	if err := r.cfg.validate(); err != nil {
		return nil, err
	}

	var loader collections.Loader
	switch {
	case r.cfg.loader != nil:
		loader = &publicToInternalAdapter{pub: r.cfg.loader}
	default:
		resolver, err := collections.NewResolver(r.cfg.collectionPath)
		if err != nil {
			return nil, convertCollectionError(err)
		}
		loader = resolver
	}

	r.store = store.New(loader,
		store.WithLenient(r.cfg.lenient),
		store.WithLogger(r.logger),
	)
	r.pattern = Pattern(r.cfg.prefix)

	return r, nil
}

// validate checks option values.
func (c *resolverConfig) validate() error {
	if math.IsNaN(c.scale) || math.IsInf(c.scale, 0) || c.scale <= 0 {
		return fmt.Errorf("%w: %v (must be a positive number)", ErrInvalidScale, c.scale)
	}
	mode, err := ParseMode(string(c.mode))
	if err != nil {
		return err
	}
	c.mode = mode
	if strings.ContainsAny(c.prefix, " \t\r\n") {
		return fmt.Errorf("%w: %q contains whitespace", ErrInvalidPrefix, c.prefix)
	}
	if !strings.HasPrefix(c.customProperty, "--") || len(c.customProperty) < 3 ||
		strings.ContainsAny(c.customProperty, " \t\r\n:;") {
		return fmt.Errorf("%w: %q", ErrInvalidCustomProperty, c.customProperty)
	}
	return nil
}

// Resolve returns the declarations for an icon in a collection.
//
// When the reference does not apply (empty segment, unknown collection,
// unknown icon) the error satisfies errors.Is(err, ErrNoMatch). Errors that do
// not satisfy ErrNoMatch (ErrDatasetMalformed, ErrCollectionRead) mean a
// collection exists but is broken.
func (r *Resolver) Resolve(collection, icon string) (Declarations, error) {
	ref, ok := ParseReference(collection, icon)
	if !ok {
		return nil, newNoMatch(ErrInvalidReference, collection+":"+icon)
	}
	return r.resolve(ref)
}

// ResolveClass resolves a whole class name such as "i-mdi-home".
// Class names that do not match Pattern report ErrInvalidReference.
func (r *Resolver) ResolveClass(class string) (Declarations, error) {
	ref, ok := ParseClass(class, r.cfg.prefix)
	if !ok {
		return nil, newNoMatch(ErrInvalidReference, class)
	}
	return r.resolve(ref)
}

// Pattern returns the compiled class name pattern for the configured prefix.
func (r *Resolver) Pattern() *regexp.Regexp {
	return r.pattern
}

// Scale returns the configured scale.
func (r *Resolver) Scale() float64 {
	return r.cfg.scale
}

// Mode returns the configured mode.
func (r *Resolver) Mode() Mode {
	return r.cfg.mode
}

// Prefix returns the configured class name prefix.
func (r *Resolver) Prefix() string {
	return r.cfg.prefix
}

func (r *Resolver) resolve(ref Reference) (Declarations, error) {
	set, err := r.store.Get(ref.Collection)
	if err != nil {
		if errors.Is(err, store.ErrAbsent) {
			return nil, newNoMatch(ErrCollectionNotFound, ref.Collection)
		}
		return nil, convertCollectionError(err)
	}

	icon, ok := set.Icon(ref.Icon)
	if !ok {
		r.logger.Debug("icon not found", "collection", ref.Collection, "icon", ref.Icon)
		return nil, newNoMatch(ErrIconNotFound, ref.String())
	}

	size := formatScale(r.cfg.scale) + "em"
	markup := svg.Inline(svg.Markup(svg.Build(icon, svg.Customizations{Width: size, Height: size})))
	url := svg.DataURI(markup)

	var decls Declarations
	switch selectMode(r.cfg.mode, markup) {
	case ModeMask:
		decls = buildMaskDeclarations(url, size, r.cfg.customProperty)
	default:
		decls = buildBackgroundDeclarations(url, size)
	}
	return mergeExtraProperties(decls, r.cfg.extra), nil
}

// formatScale prints the scale in its shortest decimal form (1, 1.5, 0.875).
func formatScale(scale float64) string {
	return strconv.FormatFloat(scale, 'f', -1, 64)
}

// Package iconcss resolves icon class names into inline CSS that draws the icon.
//
// # Quick Start
//
// Create a resolver and resolve a class name:
//
//	r, err := iconcss.NewResolver()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	decls, err := r.ResolveClass("i-shapes-check")
//	switch {
//	case errors.Is(err, iconcss.ErrNoMatch):
//	    // not an icon class, try other rules
//	case err != nil:
//	    log.Fatal(err) // collection exists but is broken
//	default:
//	    fmt.Print(decls.Rule("i-shapes-check"))
//	}
//
// # Resolution Pipeline
//
// Each reference goes through these stages:
//
//  1. Reference parsing: "i-mdi-home" becomes collection "mdi", icon "home"
//  2. Collection lookup: the collection is loaded on first use and cached
//     for the life of the Resolver, including the "not found" outcome
//  3. Icon lookup: direct ids first, then one level of aliases, with the
//     collection's default view box applied
//  4. Encoding: the icon becomes a standalone SVG at the configured scale,
//     embedded as a base64 data URI
//  5. Emission: mask declarations (recolorable through currentColor) or
//     background declarations (original colors)
//
// # Modes
//
// ModeAuto (the default) picks ModeMask when the icon markup contains
// "currentColor" and ModeBackgroundImage otherwise. The check is a plain
// substring search: icons that inherit the text color some other way are
// painted as background images. Set ModeMask or ModeBackgroundImage to force
// a mode.
//
// # Collections
//
// Collections use the Iconify JSON format. A small "shapes" collection is
// bundled. Point the resolver at a directory to add more:
//
//	r, err := iconcss.NewResolver(
//	    iconcss.WithCollectionPath("node_modules/@iconify-json"),
//	    iconcss.WithScale(1.2),
//	    iconcss.WithMode(iconcss.ModeMask),
//	)
//
// Implement CollectionLoader to serve collections from elsewhere.
//
// # Errors
//
// References that do not apply report errors matching ErrNoMatch, with the
// reason also matchable: ErrInvalidReference, ErrCollectionNotFound,
// ErrIconNotFound. A collection that exists but cannot be read or parsed
// reports ErrCollectionRead or ErrDatasetMalformed; those are not cached, so a
// fixed installation is picked up on the next call. WithLenientLoading treats
// them as missing instead.
//
// # Concurrency
//
// A Resolver is safe for concurrent use. Concurrent lookups of the same
// uncached collection share one load. ResolveAll resolves a batch with a
// bounded worker pool.
package iconcss

// Package iconset parses icon collections and locates icons inside them.
//
// Collections use the Iconify JSON layout:
//
//	{
//	  "prefix": "mdi",
//	  "width": 24, "height": 24,
//	  "icons":   {"home": {"body": "<path d=\"...\"/>"}},
//	  "aliases": {"house": {"parent": "home", "hFlip": true}}
//	}
//
// The same structure encoded as YAML is accepted too. Parsed sets are
// read-only and safe for concurrent use.
package iconset

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/alnah/go-iconcss/internal/yamlutil"
)

// ErrMalformed indicates the data is not a usable icon collection.
var ErrMalformed = errors.New("malformed icon collection")

// Format identifies the encoding of collection data.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Dimensions applied when neither the icon nor the collection sets them.
const (
	DefaultLeft   = 0
	DefaultTop    = 0
	DefaultWidth  = 16
	DefaultHeight = 16
)

// Props are the optional presentation properties shared by collections,
// icons and aliases. Nil means "inherit".
type Props struct {
	Left   *float64 `json:"left,omitempty" yaml:"left,omitempty"`
	Top    *float64 `json:"top,omitempty" yaml:"top,omitempty"`
	Width  *float64 `json:"width,omitempty" yaml:"width,omitempty"`
	Height *float64 `json:"height,omitempty" yaml:"height,omitempty"`
	Rotate *int     `json:"rotate,omitempty" yaml:"rotate,omitempty"`
	HFlip  *bool    `json:"hFlip,omitempty" yaml:"hFlip,omitempty"`
	VFlip  *bool    `json:"vFlip,omitempty" yaml:"vFlip,omitempty"`
}

type rawIcon struct {
	Props `yaml:",inline"`
	Body  string `json:"body" yaml:"body"`
}

type rawAlias struct {
	Props  `yaml:",inline"`
	Parent string `json:"parent" yaml:"parent"`
}

type rawSet struct {
	Props   `yaml:",inline"`
	Prefix  string              `json:"prefix" yaml:"prefix"`
	Icons   map[string]rawIcon  `json:"icons" yaml:"icons"`
	Aliases map[string]rawAlias `json:"aliases,omitempty" yaml:"aliases,omitempty"`
}

// Set is a parsed icon collection.
type Set struct {
	prefix   string
	defaults Props
	icons    map[string]rawIcon
	aliases  map[string]rawAlias
}

// Parse decodes collection data in the given format.
// Returns ErrMalformed if the data cannot be decoded or misses required parts.
func Parse(data []byte, format Format) (*Set, error) {
	var raw rawSet

	switch format {
	case FormatJSON:
		if len(data) > yamlutil.MaxDatasetSize {
			return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrMalformed, len(data), yamlutil.MaxDatasetSize)
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
	case FormatYAML:
		if err := yamlutil.UnmarshalDataset(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported format %s", ErrMalformed, format)
	}

	if raw.Icons == nil {
		return nil, fmt.Errorf("%w: missing icons", ErrMalformed)
	}
	for id, icon := range raw.Icons {
		if icon.Body == "" {
			return nil, fmt.Errorf("%w: icon %q has no body", ErrMalformed, id)
		}
	}
	for id, alias := range raw.Aliases {
		if alias.Parent == "" {
			return nil, fmt.Errorf("%w: alias %q has no parent", ErrMalformed, id)
		}
	}

	return &Set{
		prefix:   raw.Prefix,
		defaults: raw.Props,
		icons:    raw.Icons,
		aliases:  raw.Aliases,
	}, nil
}

// Prefix returns the collection prefix declared in the data (may be empty).
func (s *Set) Prefix() string {
	return s.prefix
}

// Len returns the number of icons, not counting aliases.
func (s *Set) Len() int {
	return len(s.icons)
}

package iconcss

import (
	"fmt"
	"slices"
	"strings"
)

// currentColorMarker is the keyword that makes an icon inherit the text color.
// Auto mode only looks for this literal; icons that reach the text color
// another way (CSS variables, "inherit") are painted as background images.
const currentColorMarker = "currentColor"

// Declaration is one CSS property and its value.
type Declaration struct {
	Property string
	Value    string
}

// Declarations is an ordered CSS declaration block.
type Declarations []Declaration

// Get returns the value of the first declaration for property.
func (d Declarations) Get(property string) (string, bool) {
	for _, decl := range d {
		if decl.Property == property {
			return decl.Value, true
		}
	}
	return "", false
}

// Map returns the declarations as a map. Order is lost.
func (d Declarations) Map() map[string]string {
	m := make(map[string]string, len(d))
	for _, decl := range d {
		m[decl.Property] = decl.Value
	}
	return m
}

// String returns the declarations in inline style form: "a:b;c:d;".
func (d Declarations) String() string {
	var buf strings.Builder
	for _, decl := range d {
		buf.WriteString(decl.Property)
		buf.WriteByte(':')
		buf.WriteString(decl.Value)
		buf.WriteByte(';')
	}
	return buf.String()
}

// Rule formats the declarations as a rule for the class name, one
// declaration per line. The class name is escaped for use in a selector.
func (d Declarations) Rule(class string) string {
	var buf strings.Builder
	buf.WriteString(".")
	buf.WriteString(escapeClassName(class))
	buf.WriteString(" {\n")
	for _, decl := range d {
		fmt.Fprintf(&buf, "  %s: %s;\n", decl.Property, decl.Value)
	}
	buf.WriteString("}\n")
	return buf.String()
}

// selectMode resolves ModeAuto against the inline markup.
func selectMode(mode Mode, markup string) Mode {
	if mode != ModeAuto {
		return mode
	}
	if strings.Contains(markup, currentColorMarker) {
		return ModeMask
	}
	return ModeBackgroundImage
}

// buildMaskDeclarations paints the icon shape with the current text color.
// The URL goes through a custom property so it is written once.
func buildMaskDeclarations(url, size, customProperty string) Declarations {
	ref := "var(" + customProperty + ") no-repeat"
	return Declarations{
		{Property: customProperty, Value: url},
		{Property: "-webkit-mask", Value: ref},
		{Property: "-webkit-mask-size", Value: "100% 100%"},
		{Property: "mask", Value: ref},
		{Property: "mask-size", Value: "100% 100%"},
		{Property: "background-color", Value: "currentColor"},
		{Property: "height", Value: size},
		{Property: "width", Value: size},
	}
}

// buildBackgroundDeclarations paints the icon with its own colors.
func buildBackgroundDeclarations(url, size string) Declarations {
	return Declarations{
		{Property: "background", Value: url + " no-repeat"},
		{Property: "background-size", Value: "100% 100%"},
		{Property: "background-color", Value: "transparent"},
		{Property: "height", Value: size},
		{Property: "width", Value: size},
	}
}

// mergeExtraProperties overrides existing properties in place and appends
// the others sorted by name, so output does not depend on map order.
func mergeExtraProperties(d Declarations, extra map[string]string) Declarations {
	if len(extra) == 0 {
		return d
	}

	names := make([]string, 0, len(extra))
	for name := range extra {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		idx := slices.IndexFunc(d, func(decl Declaration) bool { return decl.Property == name })
		if idx >= 0 {
			d[idx].Value = extra[name]
			continue
		}
		d = append(d, Declaration{Property: name, Value: extra[name]})
	}
	return d
}

// escapeClassName escapes a class name for use in a CSS class selector.
// Characters outside [A-Za-z0-9_-] and below U+0080 get a backslash; a
// leading digit becomes a hex escape.
func escapeClassName(class string) string {
	var buf strings.Builder
	for i, r := range class {
		switch {
		case i == 0 && r >= '0' && r <= '9':
			fmt.Fprintf(&buf, `\3%c `, r)
		case r == '-' || r == '_' || r >= 0x80,
			r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			buf.WriteRune(r)
		default:
			buf.WriteByte('\\')
			buf.WriteRune(r)
		}
	}
	return buf.String()
}

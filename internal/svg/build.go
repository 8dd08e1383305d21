// Package svg turns resolved icons into standalone SVG markup and data URIs.
//
// Output is deterministic: the same icon and customizations always produce
// byte-identical markup, so generated CSS stays stable between builds.
package svg

import (
	"strconv"
	"strings"

	"github.com/alnah/go-iconcss/internal/iconset"
)

// Namespace is the SVG XML namespace URI.
const Namespace = "http://www.w3.org/2000/svg"

// DefaultPreserveAspectRatio centers the view box and scales it to fit.
const DefaultPreserveAspectRatio = "xMidYMid meet"

// Customizations are the presentation overrides applied when rendering.
// Width and Height are CSS lengths written verbatim (e.g. "1.5em").
type Customizations struct {
	Width  string
	Height string
}

// Attribute is a single SVG root attribute.
type Attribute struct {
	Name  string
	Value string
}

// Rendered holds the root attributes and the (possibly wrapped) body.
type Rendered struct {
	Attributes []Attribute
	Body       string
}

// Build applies the icon's flips and rotation and computes the root attributes.
// Attributes are emitted in a fixed order: width, height, preserveAspectRatio, viewBox.
func Build(icon iconset.Icon, c Customizations) Rendered {
	left, top := icon.Left, icon.Top
	width, height := icon.Width, icon.Height
	rotation := icon.Rotate

	var transforms []string
	switch {
	case icon.HFlip && icon.VFlip:
		// Flipping both axes is a half turn.
		rotation += 2
	case icon.HFlip:
		transforms = append(transforms,
			"translate("+formatNumber(width+left)+" "+formatNumber(-top)+")",
			"scale(-1 1)",
		)
		left, top = 0, 0
	case icon.VFlip:
		transforms = append(transforms,
			"translate("+formatNumber(-left)+" "+formatNumber(height+top)+")",
			"scale(1 -1)",
		)
		left, top = 0, 0
	}

	rotation %= 4
	switch rotation {
	case 1:
		center := formatNumber(height/2 + top)
		transforms = append([]string{"rotate(90 " + center + " " + center + ")"}, transforms...)
	case 2:
		transforms = append([]string{
			"rotate(180 " + formatNumber(width/2+left) + " " + formatNumber(height/2+top) + ")",
		}, transforms...)
	case 3:
		center := formatNumber(width/2 + left)
		transforms = append([]string{"rotate(-90 " + center + " " + center + ")"}, transforms...)
	}

	if rotation%2 == 1 {
		left, top = top, left
		width, height = height, width
	}

	body := icon.Body
	if len(transforms) > 0 {
		body = `<g transform="` + strings.Join(transforms, " ") + `">` + body + `</g>`
	}

	return Rendered{
		Attributes: []Attribute{
			{Name: "width", Value: c.Width},
			{Name: "height", Value: c.Height},
			{Name: "preserveAspectRatio", Value: DefaultPreserveAspectRatio},
			{Name: "viewBox", Value: formatNumber(left) + " " + formatNumber(top) + " " +
				formatNumber(width) + " " + formatNumber(height)},
		},
		Body: body,
	}
}

// formatNumber prints the shortest decimal form: 24, 12.5, -0.25.
func formatNumber(v float64) string {
	if v == 0 {
		// Avoid "-0".
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

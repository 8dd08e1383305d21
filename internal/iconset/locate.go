package iconset

// Icon is a fully resolved icon: body plus effective view box and transforms.
type Icon struct {
	Body   string
	Left   float64
	Top    float64
	Width  float64
	Height float64
	Rotate int // quarter turns, 0-3
	HFlip  bool
	VFlip  bool
}

// Icon looks up id directly, then through one alias. Collection defaults are
// applied first, icon values second. Alias transforms are combined with the
// parent's: rotations add up, flips toggle, dimensions override.
// An alias whose parent is itself an alias is not followed.
func (s *Set) Icon(id string) (Icon, bool) {
	if raw, ok := s.icons[id]; ok {
		return s.resolve(raw), true
	}

	alias, ok := s.aliases[id]
	if !ok {
		return Icon{}, false
	}
	parent, ok := s.icons[alias.Parent]
	if !ok {
		return Icon{}, false
	}

	icon := s.resolve(parent)
	applyDimensions(&icon, alias.Props)
	if alias.Rotate != nil {
		icon.Rotate = normalizeRotate(icon.Rotate + *alias.Rotate)
	}
	if alias.HFlip != nil && *alias.HFlip {
		icon.HFlip = !icon.HFlip
	}
	if alias.VFlip != nil && *alias.VFlip {
		icon.VFlip = !icon.VFlip
	}
	return icon, true
}

func (s *Set) resolve(raw rawIcon) Icon {
	icon := Icon{
		Body:   raw.Body,
		Left:   DefaultLeft,
		Top:    DefaultTop,
		Width:  DefaultWidth,
		Height: DefaultHeight,
	}
	apply(&icon, s.defaults)
	apply(&icon, raw.Props)
	return icon
}

func apply(icon *Icon, p Props) {
	applyDimensions(icon, p)
	if p.Rotate != nil {
		icon.Rotate = normalizeRotate(*p.Rotate)
	}
	if p.HFlip != nil {
		icon.HFlip = *p.HFlip
	}
	if p.VFlip != nil {
		icon.VFlip = *p.VFlip
	}
}

func applyDimensions(icon *Icon, p Props) {
	if p.Left != nil {
		icon.Left = *p.Left
	}
	if p.Top != nil {
		icon.Top = *p.Top
	}
	if p.Width != nil {
		icon.Width = *p.Width
	}
	if p.Height != nil {
		icon.Height = *p.Height
	}
}

func normalizeRotate(r int) int {
	r %= 4
	if r < 0 {
		r += 4
	}
	return r
}

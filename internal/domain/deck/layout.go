package deck

// Layout is the arrangement used to render a slide's content area.
type Layout int

const (
	// LayoutEmpty shows only the title and footnote.
	LayoutEmpty Layout = iota
	// LayoutBullets is a single centered bullet column.
	LayoutBullets
	// LayoutCode is a single code panel using the full width.
	LayoutCode
	// LayoutDiagram is a single centered diagram with bounded height.
	LayoutDiagram
	// LayoutBulletsCode puts bullets on the left and the code panel on the right.
	LayoutBulletsCode
	// LayoutBulletsDiagram puts the diagram on the left and bullets on the right.
	LayoutBulletsDiagram
	// LayoutCodeDiagram puts the code panel on the left and the diagram on the right.
	LayoutCodeDiagram
)

var layoutNames = map[Layout]string{
	LayoutEmpty:          "empty",
	LayoutBullets:        "bullets",
	LayoutCode:           "code",
	LayoutDiagram:        "diagram",
	LayoutBulletsCode:    "bullets-code",
	LayoutBulletsDiagram: "bullets-diagram",
	LayoutCodeDiagram:    "code-diagram",
}

// String returns the layout name.
func (l Layout) String() string {
	if name, ok := layoutNames[l]; ok {
		return name
	}
	return "unknown"
}

// SideBySide reports whether the layout splits the content area in two.
func (l Layout) SideBySide() bool {
	return l == LayoutBulletsCode || l == LayoutBulletsDiagram || l == LayoutCodeDiagram
}

// MarshalText encodes the layout by name.
func (l Layout) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// Shape is the closed set of content combinations a slide can have.
// Each populated field contributes one bit.
type Shape uint8

const (
	ShapeBullets Shape = 1 << iota
	ShapeCode
	ShapeDiagram
)

// ShapeOf returns which layout-relevant fields of the slide are populated.
func ShapeOf(s Slide) Shape {
	var shape Shape
	if s.HasBullets() {
		shape |= ShapeBullets
	}
	if s.HasCode() {
		shape |= ShapeCode
	}
	if s.HasDiagram() {
		shape |= ShapeDiagram
	}
	return shape
}

// Has reports whether all bits of other are set.
func (sh Shape) Has(other Shape) bool {
	return sh&other == other
}

// SelectLayout picks the arrangement for a slide. An explicit hint is
// honoured when the slide has the content it names; otherwise the layout is
// inferred from the shape. When bullets, code and diagram all compete, code
// and diagram win and the bullets are not shown.
func SelectLayout(s Slide) Layout {
	shape := ShapeOf(s)

	switch s.Layout {
	case HintBulletsLeftCodeRight:
		if shape.Has(ShapeBullets | ShapeCode) {
			return LayoutBulletsCode
		}
	case HintCodeLeftDiagramRight:
		if shape.Has(ShapeCode | ShapeDiagram) {
			return LayoutCodeDiagram
		}
	}

	return inferLayout(shape)
}

func inferLayout(shape Shape) Layout {
	switch {
	case shape.Has(ShapeCode | ShapeDiagram):
		return LayoutCodeDiagram
	case shape.Has(ShapeBullets | ShapeCode):
		return LayoutBulletsCode
	case shape.Has(ShapeBullets | ShapeDiagram):
		return LayoutBulletsDiagram
	case shape.Has(ShapeBullets):
		return LayoutBullets
	case shape.Has(ShapeCode):
		return LayoutCode
	case shape.Has(ShapeDiagram):
		return LayoutDiagram
	default:
		return LayoutEmpty
	}
}

// ShowsBullets reports whether the layout renders the bullet block.
func (l Layout) ShowsBullets() bool {
	return l == LayoutBullets || l == LayoutBulletsCode || l == LayoutBulletsDiagram
}

// ShowsCode reports whether the layout renders the code panel.
func (l Layout) ShowsCode() bool {
	return l == LayoutCode || l == LayoutBulletsCode || l == LayoutCodeDiagram
}

// ShowsDiagram reports whether the layout renders the diagram.
func (l Layout) ShowsDiagram() bool {
	return l == LayoutDiagram || l == LayoutBulletsDiagram || l == LayoutCodeDiagram
}

package app

// TypeContentPane is the component type of ContentPane.
const TypeContentPane ComponentType = "ContentPane"

// ContentPane is a scrollable container that fills its parent.
// It is typically the root of a window's component tree.
type ContentPane struct {
	Base
}

// NewContentPane creates an empty ContentPane with no properties set.
func NewContentPane() *ContentPane {
	return &ContentPane{Base: NewBase(TypeContentPane)}
}

// Background returns the background color.
func (p *ContentPane) Background() (Color, bool) {
	return typedProperty[Color](p, PropertyBackground)
}

// SetBackground sets the background color.
func (p *ContentPane) SetBackground(c Color) {
	p.SetProperty(PropertyBackground, c)
}

// Foreground returns the default text color of the pane.
func (p *ContentPane) Foreground() (Color, bool) {
	return typedProperty[Color](p, PropertyForeground)
}

// SetForeground sets the default text color of the pane.
func (p *ContentPane) SetForeground(c Color) {
	p.SetProperty(PropertyForeground, c)
}

// Insets returns the inset margin applied to the pane's content.
func (p *ContentPane) Insets() (Insets, bool) {
	return typedProperty[Insets](p, PropertyInsets)
}

// SetInsets sets the inset margin applied to the pane's content.
func (p *ContentPane) SetInsets(i Insets) {
	p.SetProperty(PropertyInsets, i)
}

// HorizontalScroll returns the horizontal scroll position.
func (p *ContentPane) HorizontalScroll() (Extent, bool) {
	return typedProperty[Extent](p, PropertyHorizontalScroll)
}

// SetHorizontalScroll sets the horizontal scroll position.
func (p *ContentPane) SetHorizontalScroll(e Extent) {
	p.SetProperty(PropertyHorizontalScroll, e)
}

// VerticalScroll returns the vertical scroll position.
func (p *ContentPane) VerticalScroll() (Extent, bool) {
	return typedProperty[Extent](p, PropertyVerticalScroll)
}

// SetVerticalScroll sets the vertical scroll position.
func (p *ContentPane) SetVerticalScroll(e Extent) {
	p.SetProperty(PropertyVerticalScroll, e)
}

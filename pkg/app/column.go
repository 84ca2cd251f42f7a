package app

// TypeColumn is the component type of Column.
const TypeColumn ComponentType = "Column"

// Column lays out its children vertically.
type Column struct {
	Base
}

// NewColumn creates an empty Column with no properties set.
func NewColumn() *Column {
	return &Column{Base: NewBase(TypeColumn)}
}

// Border returns the border surrounding the column.
func (c *Column) Border() (Border, bool) {
	return typedProperty[Border](c, PropertyBorder)
}

// SetBorder sets the border surrounding the column.
func (c *Column) SetBorder(b Border) {
	c.SetProperty(PropertyBorder, b)
}

// CellSpacing returns the spacing between cells.
func (c *Column) CellSpacing() (Extent, bool) {
	return typedProperty[Extent](c, PropertyCellSpacing)
}

// SetCellSpacing sets the spacing between cells.
func (c *Column) SetCellSpacing(e Extent) {
	c.SetProperty(PropertyCellSpacing, e)
}

// Insets returns the inset margin around the column's content.
func (c *Column) Insets() (Insets, bool) {
	return typedProperty[Insets](c, PropertyInsets)
}

// SetInsets sets the inset margin around the column's content.
func (c *Column) SetInsets(i Insets) {
	c.SetProperty(PropertyInsets, i)
}

// Alignment returns the alignment of cells within the column.
func (c *Column) Alignment() (Alignment, bool) {
	return typedProperty[Alignment](c, PropertyAlignment)
}

// SetAlignment sets the alignment of cells within the column.
func (c *Column) SetAlignment(a Alignment) {
	c.SetProperty(PropertyAlignment, a)
}

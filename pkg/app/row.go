package app

// TypeRow is the component type of Row.
const TypeRow ComponentType = "Row"

// Row lays out its children horizontally.
type Row struct {
	Base
}

// NewRow creates an empty Row with no properties set.
func NewRow() *Row {
	return &Row{Base: NewBase(TypeRow)}
}

// Border returns the border surrounding the row.
func (r *Row) Border() (Border, bool) {
	return typedProperty[Border](r, PropertyBorder)
}

// SetBorder sets the border surrounding the row.
func (r *Row) SetBorder(b Border) {
	r.SetProperty(PropertyBorder, b)
}

// CellSpacing returns the spacing between cells.
func (r *Row) CellSpacing() (Extent, bool) {
	return typedProperty[Extent](r, PropertyCellSpacing)
}

// SetCellSpacing sets the spacing between cells.
func (r *Row) SetCellSpacing(e Extent) {
	r.SetProperty(PropertyCellSpacing, e)
}

// Insets returns the inset margin around the row's content.
func (r *Row) Insets() (Insets, bool) {
	return typedProperty[Insets](r, PropertyInsets)
}

// SetInsets sets the inset margin around the row's content.
func (r *Row) SetInsets(i Insets) {
	r.SetProperty(PropertyInsets, i)
}

// Alignment returns the alignment of cells within the row.
func (r *Row) Alignment() (Alignment, bool) {
	return typedProperty[Alignment](r, PropertyAlignment)
}

// SetAlignment sets the alignment of cells within the row.
func (r *Row) SetAlignment(a Alignment) {
	r.SetProperty(PropertyAlignment, a)
}

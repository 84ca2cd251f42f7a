package app

import (
	"fmt"
	"strconv"
)

// Color is an RGB color.
type Color struct {
	R, G, B uint8
}

// Common colors.
var (
	Black  = Color{0x00, 0x00, 0x00}
	White  = Color{0xff, 0xff, 0xff}
	Orange = Color{0xff, 0xc8, 0x00}
)

// NewColor creates a Color from a packed 0xRRGGBB value.
func NewColor(rgb uint32) Color {
	return Color{R: uint8(rgb >> 16), G: uint8(rgb >> 8), B: uint8(rgb)}
}

// String returns the color in #rrggbb form.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Unit is the unit of an Extent.
type Unit uint8

const (
	UnitPx Unit = iota
	UnitPercent
	UnitPt
	UnitCm
	UnitMm
	UnitIn
	UnitEm
	UnitEx
	UnitPc
)

var unitSuffixes = [...]string{
	UnitPx:      "px",
	UnitPercent: "%",
	UnitPt:      "pt",
	UnitCm:      "cm",
	UnitMm:      "mm",
	UnitIn:      "in",
	UnitEm:      "em",
	UnitEx:      "ex",
	UnitPc:      "pc",
}

// String returns the CSS suffix for the unit.
func (u Unit) String() string {
	if int(u) < len(unitSuffixes) {
		return unitSuffixes[u]
	}
	return "unit(" + strconv.Itoa(int(u)) + ")"
}

// Extent is a one-dimensional measure: a magnitude with a unit.
type Extent struct {
	Value int
	Units Unit
}

// Px returns an Extent in pixels.
func Px(v int) Extent {
	return Extent{Value: v, Units: UnitPx}
}

// Percent returns an Extent in percent.
func Percent(v int) Extent {
	return Extent{Value: v, Units: UnitPercent}
}

// String returns the extent in CSS form, e.g. "100px".
func (e Extent) String() string {
	return strconv.Itoa(e.Value) + e.Units.String()
}

// BorderStyle is the line style of a Border.
type BorderStyle uint8

const (
	BorderNone BorderStyle = iota
	BorderSolid
	BorderInset
	BorderOutset
	BorderGroove
	BorderRidge
	BorderDouble
	BorderDotted
	BorderDashed
)

var borderStyleNames = [...]string{
	BorderNone:   "none",
	BorderSolid:  "solid",
	BorderInset:  "inset",
	BorderOutset: "outset",
	BorderGroove: "groove",
	BorderRidge:  "ridge",
	BorderDouble: "double",
	BorderDotted: "dotted",
	BorderDashed: "dashed",
}

func (s BorderStyle) String() string {
	if int(s) < len(borderStyleNames) {
		return borderStyleNames[s]
	}
	return "style(" + strconv.Itoa(int(s)) + ")"
}

// Border describes a component border: thickness, line style and color.
type Border struct {
	Size  Extent
	Style BorderStyle
	Color Color
}

// String returns the border in CSS shorthand form, e.g. "20px groove #ffc800".
func (b Border) String() string {
	return b.Size.String() + " " + b.Style.String() + " " + b.Color.String()
}

// Insets are four-sided offsets.
type Insets struct {
	Top, Right, Bottom, Left Extent
}

// NewInsets returns Insets with the same extent on every side.
func NewInsets(all Extent) Insets {
	return Insets{Top: all, Right: all, Bottom: all, Left: all}
}

// NewInsetsTRBL returns Insets from four extents in top, right, bottom, left order.
func NewInsetsTRBL(top, right, bottom, left Extent) Insets {
	return Insets{Top: top, Right: right, Bottom: bottom, Left: left}
}

// String returns the insets in CSS shorthand form, e.g. "1px 2px 3px 4px".
func (i Insets) String() string {
	return i.Top.String() + " " + i.Right.String() + " " + i.Bottom.String() + " " + i.Left.String()
}

// Alignment positions content inside a cell.
type Alignment struct {
	Horizontal HorizontalAlign
	Vertical   VerticalAlign
}

// HorizontalAlign is the horizontal part of an Alignment.
type HorizontalAlign uint8

const (
	AlignDefault HorizontalAlign = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// VerticalAlign is the vertical part of an Alignment.
type VerticalAlign uint8

const (
	AlignVerticalDefault VerticalAlign = iota
	AlignTop
	AlignMiddle
	AlignBottom
)

func (h HorizontalAlign) String() string {
	switch h {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	}
	return ""
}

func (v VerticalAlign) String() string {
	switch v {
	case AlignTop:
		return "top"
	case AlignMiddle:
		return "middle"
	case AlignBottom:
		return "bottom"
	}
	return ""
}

// String returns "horizontal vertical", omitting default parts.
func (a Alignment) String() string {
	h, v := a.Horizontal.String(), a.Vertical.String()
	switch {
	case h == "":
		return v
	case v == "":
		return h
	}
	return h + " " + v
}

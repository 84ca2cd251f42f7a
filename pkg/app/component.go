package app

import (
	"fmt"
	"sort"
	"sync/atomic"
)

// ComponentType is the stable tag that identifies a component type.
// The web container dispatches components to peers by this tag.
type ComponentType string

// Property names shared by the built-in components.
const (
	PropertyAlignment        = "alignment"
	PropertyBackground       = "background"
	PropertyBorder           = "border"
	PropertyCellSpacing      = "cellSpacing"
	PropertyForeground       = "foreground"
	PropertyHorizontalScroll = "horizontalScroll"
	PropertyInsets           = "insets"
	PropertyVerticalScroll   = "verticalScroll"
)

// Component is a server-side UI element whose state is mirrored to the client.
type Component interface {
	// ComponentType returns the type tag used for peer dispatch.
	ComponentType() ComponentType

	// RenderID is the unique id of this instance within the process.
	RenderID() string

	// Property returns the stored value, or nil if unset.
	Property(name string) any

	// SetProperty stores a value verbatim. A nil value unsets the property.
	SetProperty(name string, value any)

	// PropertyNames returns the names of all set properties in sorted order.
	PropertyNames() []string

	// Children returns the child components in insertion order.
	Children() []Component
}

// renderIDCounter is used to generate unique render IDs.
var renderIDCounter atomic.Uint64

func generateRenderID() string {
	return fmt.Sprintf("c_%d", renderIDCounter.Add(1))
}

// Base implements Component and is embedded by concrete components.
type Base struct {
	componentType ComponentType
	renderID      string
	properties    map[string]any
	children      []Component
}

// NewBase creates a Base for a component type. Custom components embed
// the result to satisfy Component.
func NewBase(componentType ComponentType) Base {
	return Base{
		componentType: componentType,
		renderID:      generateRenderID(),
	}
}

func (b *Base) ComponentType() ComponentType {
	return b.componentType
}

func (b *Base) RenderID() string {
	return b.renderID
}

func (b *Base) Property(name string) any {
	return b.properties[name]
}

func (b *Base) SetProperty(name string, value any) {
	if value == nil {
		delete(b.properties, name)
		return
	}
	if b.properties == nil {
		b.properties = make(map[string]any)
	}
	b.properties[name] = value
}

func (b *Base) PropertyNames() []string {
	names := make([]string, 0, len(b.properties))
	for name := range b.properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Add appends a child component.
func (b *Base) Add(child Component) {
	b.children = append(b.children, child)
}

// Children returns a copy of the child list.
func (b *Base) Children() []Component {
	if len(b.children) == 0 {
		return nil
	}
	out := make([]Component, len(b.children))
	copy(out, b.children)
	return out
}

// typedProperty reads a property and asserts its type.
// A value of a different type reads as unset.
func typedProperty[T any](c Component, name string) (T, bool) {
	v, ok := c.Property(name).(T)
	return v, ok
}

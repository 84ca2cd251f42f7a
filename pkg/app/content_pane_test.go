package app

import "testing"

func TestContentPaneProperties(t *testing.T) {
	pane := NewContentPane()
	pane.SetBackground(Orange)
	pane.SetForeground(colorGreen)
	pane.SetInsets(insets1234)
	pane.SetHorizontalScroll(Px(10))
	pane.SetVerticalScroll(extent100Px)

	if got, ok := pane.Background(); !ok || got != Orange {
		t.Errorf("Background() = %v, %v, want %v", got, ok, Orange)
	}
	if got, ok := pane.Foreground(); !ok || got != colorGreen {
		t.Errorf("Foreground() = %v, %v, want %v", got, ok, colorGreen)
	}
	if got, ok := pane.Insets(); !ok || got != insets1234 {
		t.Errorf("Insets() = %v, %v, want %v", got, ok, insets1234)
	}
	if got, ok := pane.HorizontalScroll(); !ok || got != Px(10) {
		t.Errorf("HorizontalScroll() = %v, %v, want 10px", got, ok)
	}
	if got, ok := pane.VerticalScroll(); !ok || got != extent100Px {
		t.Errorf("VerticalScroll() = %v, %v, want %v", got, ok, extent100Px)
	}
}

func TestContentPaneUnset(t *testing.T) {
	pane := NewContentPane()
	if _, ok := pane.Background(); ok {
		t.Error("Background() should be unset")
	}
	if _, ok := pane.VerticalScroll(); ok {
		t.Error("VerticalScroll() should be unset")
	}
}

func TestContentPaneChildren(t *testing.T) {
	pane := NewContentPane()
	row := NewRow()
	col := NewColumn()
	pane.Add(row)
	pane.Add(col)

	children := pane.Children()
	if len(children) != 2 {
		t.Fatalf("Children() has %d entries, want 2", len(children))
	}
	if children[0] != Component(row) || children[1] != Component(col) {
		t.Error("Children() should preserve insertion order")
	}

	children[0] = nil
	if pane.Children()[0] == nil {
		t.Error("Children() should return a copy")
	}
}

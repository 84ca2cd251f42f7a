package app

import "testing"

func TestPropertyStrings(t *testing.T) {
	tests := []struct {
		name  string
		value interface{ String() string }
		want  string
	}{
		{"extent px", Px(100), "100px"},
		{"extent percent", Percent(50), "50%"},
		{"extent em", Extent{Value: 2, Units: UnitEm}, "2em"},
		{"unknown unit", Extent{Value: 1, Units: Unit(200)}, "1unit(200)"},
		{"color", Orange, "#ffc800"},
		{"packed color", NewColor(0x0a0b0c), "#0a0b0c"},
		{"border", borderThickOrange, "20px groove #ffc800"},
		{"insets", insets1234, "1px 2px 3px 4px"},
		{"uniform insets", NewInsets(Px(5)), "5px 5px 5px 5px"},
		{"alignment", alignCenterTop, "center top"},
		{"horizontal only", Alignment{Horizontal: AlignRight}, "right"},
		{"vertical only", Alignment{Vertical: AlignBottom}, "bottom"},
		{"default alignment", Alignment{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.value.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

package app

// Shared fixtures for property tests.
var (
	borderThickOrange = Border{Size: Px(20), Style: BorderGroove, Color: Orange}
	extent100Px       = Px(100)
	insets1234        = NewInsetsTRBL(Px(1), Px(2), Px(3), Px(4))
	alignCenterTop    = Alignment{Horizontal: AlignCenter, Vertical: AlignTop}
	colorGreen        = NewColor(0x00ff00)
)

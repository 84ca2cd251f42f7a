package main

import "github.com/panekit/panekit/pkg/app"

// demoRoot builds the component tree served by "panekit serve".
func demoRoot() []app.Component {
	pane := app.NewContentPane()
	pane.SetBackground(app.White)
	pane.SetInsets(app.NewInsets(app.Px(10)))

	column := app.NewColumn()
	column.SetCellSpacing(app.Px(8))

	row := app.NewRow()
	row.SetBorder(app.Border{Size: app.Px(2), Style: app.BorderGroove, Color: app.Orange})
	row.SetCellSpacing(app.Px(100))
	row.SetInsets(app.NewInsetsTRBL(app.Px(1), app.Px(2), app.Px(3), app.Px(4)))

	column.Add(row)
	pane.Add(column)
	return []app.Component{pane}
}

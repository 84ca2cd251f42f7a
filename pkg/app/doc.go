// Package app contains the server-side component model.
//
// Components are passive property holders. Application code creates them,
// sets typed properties through accessor pairs, and hands them to the web
// container, which mirrors their state to the browser through the
// synchronization peer registered for each component type.
//
//	row := app.NewRow()
//	row.SetBorder(app.Border{Size: app.Px(2), Style: app.BorderGroove, Color: app.Orange})
//	row.SetCellSpacing(app.Px(100))
//
//	b, ok := row.Border() // ok is false until SetBorder is called
//
// Setters perform no validation and getters never fail. Components are
// owned by a single render context at a time and are not safe for
// concurrent mutation.
package app

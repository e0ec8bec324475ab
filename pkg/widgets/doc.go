// Package widgets provides the widgets the counter shell is composed from:
// Text, Button, Column and Row.
//
// Widgets are plain struct literals. Layout widgets also have XxxOf helpers:
//
//	ColumnOf(
//	    Text{Content: "count: 5"},
//	    RowOf(
//	        ButtonOf("increment", c.Increment),
//	        ButtonOf("decrement", c.Decrement),
//	    ),
//	)
package widgets

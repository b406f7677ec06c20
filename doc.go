// Package u8tbl renders a grid of text cells as an aligned table.
//
// The central entry points are [Render], [Write] and [Marshal], which accept
// a grid of rows and a [Style]. Rows may have different lengths; short rows
// are filled with empty cells so every line has as many columns as the
// longest row.
//
//	fmt.Print(u8tbl.Render([][]string{
//		{"hostname", "server_id"},
//		{"node-001", "2"},
//	}, u8tbl.Unicode))
//
// prints
//
//	┌──────────┬───────────┐
//	│ hostname │ server_id │
//	├──────────┼───────────┤
//	│ node-001 │ 2         │
//	└──────────┴───────────┘
//
// # Styles
//
// The set of styles is fixed:
//
//   - [ASCII] — borders drawn with +, - and |
//   - [Unicode] — box drawing characters (the default)
//   - [Fancy] — box drawing mixed with legacy computing corner glyphs
//   - [None] — no borders, columns padded with spaces
//   - [TSV] — cells joined by tabs, no padding
//   - [CSV] — cells joined by commas, no padding or quoting
//
// Use [ParseStyle] to convert a flag value into a [Style], and
// [StyleFromEnv] to let $TABLE_FORMAT override it.
//
// # Width
//
// Column widths are measured in terminal columns by [Width], so CJK text and
// other wide glyphs line up. Cells that are not valid UTF-8 are measured by
// byte length instead.
//
// # Rows from other sources
//
// [WriteRowers] renders any type implementing [Rower]. [WriteIter] and
// [WriteChan] accept rows from an iterator or channel; they collect every row
// before writing since column widths depend on the whole grid.
//
// # Errors
//
// Rendering cannot fail. [ParseStyle] returns an error wrapping
// [ErrUnknownStyle] for unknown names.
package u8tbl

package u8tbl

import (
	"strings"
)

// ColumnWidths returns the display width of every column of rows. Column i is
// as wide as the widest cell at index i; rows that are too short to have a
// cell there do not take part. The result has one entry per cell of the
// longest row and is empty for an empty grid.
func ColumnWidths(rows [][]string) []int {
	var widths []int
	for _, row := range rows {
		if len(row) > len(widths) {
			widths = append(widths, make([]int, len(row)-len(widths))...)
		}
		for i, cell := range row {
			if w := Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// Render lays out rows as a table drawn with the glyphs of s.
//
// Border and separator lines end with the style's newline glyph, data lines
// always end with "\n". Short rows are filled with empty cells. An empty grid
// renders as a top border directly followed by a bottom border.
func Render(rows [][]string, s Style) string {
	g := s.Glyphs()
	widths := ColumnWidths(rows)

	var sb strings.Builder
	drawHLine(&sb, widths, g.TopLeft, g.TopHorizontal, g.TopMiddle, g.TopRight, g.Newline)
	for r, row := range rows {
		if r > 0 {
			drawHLine(&sb, widths, g.LeftMiddle, g.MiddleHorizontal, g.MiddleMiddle, g.RightMiddle, g.Newline)
		}
		drawRow(&sb, row, widths, g)
	}
	drawHLine(&sb, widths, g.BottomLeft, g.BottomHorizontal, g.BottomMiddle, g.BottomRight, g.Newline)
	return sb.String()
}

// drawHLine writes a horizontal rule. Each column contributes its width plus
// two padding positions of fill.
func drawHLine(sb *strings.Builder, widths []int, left, fill, mid, right, newline string) {
	sb.WriteString(left)
	for i, width := range widths {
		if i > 0 {
			sb.WriteString(mid)
		}
		sb.WriteString(strings.Repeat(fill, width+2))
	}
	sb.WriteString(right)
	sb.WriteString(newline)
}

func drawRow(sb *strings.Builder, cells []string, widths []int, g Glyphs) {
	sb.WriteString(g.LeftVertical)
	for i, width := range widths {
		if i > 0 {
			sb.WriteString(g.MiddleVertical)
		}
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		sb.WriteString(g.Padding)
		sb.WriteString(cell)
		sb.WriteString(g.Padding)
		sb.WriteString(strings.Repeat(g.Padding, width-Width(cell)))
	}
	sb.WriteString(g.RightVertical)
	sb.WriteString("\n")
}

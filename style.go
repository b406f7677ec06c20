package u8tbl

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStyle is returned by ParseStyle for names outside the fixed set.
var ErrUnknownStyle = errors.New("unknown style")

// Style names one of the fixed table layouts.
type Style string

const (
	ASCII   Style = "ascii"   // +---+ borders
	Unicode Style = "unicode" // ┌─┬─┐ box drawing
	Fancy   Style = "fancy"   // 🮣─🮦─🮢 mixed legacy-computing glyphs
	None    Style = "none"    // no borders, space padded columns
	TSV     Style = "tsv"     // tab separated
	CSV     Style = "csv"     // comma separated
)

// DefaultStyle is used when nothing else selects a style.
const DefaultStyle = Unicode

var styles = []Style{ASCII, Unicode, Fancy, None, TSV, CSV}

// String returns the style name.
func (s Style) String() string { return string(s) }

// Styles returns all supported styles in their canonical order.
func Styles() []Style {
	out := make([]Style, len(styles))
	copy(out, styles)
	return out
}

// ParseStyle parses a style name. Matching ignores case, so "UNICODE" and
// "unicode" are the same style.
func ParseStyle(name string) (Style, error) {
	for _, s := range styles {
		if strings.EqualFold(string(s), name) {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStyle, name)
}

// Glyphs is the complete set of symbols that draws one style.
//
// The Top and Bottom groups frame the table, the Left, Middle and Right
// groups draw data lines (Vertical) and row separator lines (Middle and
// Horizontal). Newline terminates border and separator lines only. Padding
// surrounds every cell and fills it to the column width.
type Glyphs struct {
	TopLeft       string
	TopHorizontal string
	TopMiddle     string
	TopRight      string

	LeftMiddle   string
	LeftVertical string

	MiddleVertical   string
	MiddleHorizontal string
	MiddleMiddle     string

	RightMiddle   string
	RightVertical string

	BottomLeft       string
	BottomHorizontal string
	BottomMiddle     string
	BottomRight      string

	Newline string
	Padding string
}

var glyphSets = map[Style]Glyphs{
	ASCII: {
		TopLeft: "+", TopHorizontal: "-", TopMiddle: "+", TopRight: "+",
		LeftMiddle: "+", LeftVertical: "|",
		MiddleVertical: "|", MiddleHorizontal: "-", MiddleMiddle: "+",
		RightMiddle: "+", RightVertical: "|",
		BottomLeft: "+", BottomHorizontal: "-", BottomMiddle: "+", BottomRight: "+",
		Newline: "\n", Padding: " ",
	},
	Unicode: {
		TopLeft: "┌", TopHorizontal: "─", TopMiddle: "┬", TopRight: "┐",
		LeftMiddle: "├", LeftVertical: "│",
		MiddleVertical: "│", MiddleHorizontal: "─", MiddleMiddle: "┼",
		RightMiddle: "┤", RightVertical: "│",
		BottomLeft: "└", BottomHorizontal: "─", BottomMiddle: "┴", BottomRight: "┘",
		Newline: "\n", Padding: " ",
	},
	Fancy: {
		TopLeft: "🮣", TopHorizontal: "─", TopMiddle: "🮦", TopRight: "🮢",
		LeftMiddle: "🮥", LeftVertical: "🮤",
		MiddleVertical: "│", MiddleHorizontal: "─", MiddleMiddle: "┼",
		RightMiddle: "🮤", RightVertical: "🮥",
		BottomLeft: "🮡", BottomHorizontal: "─", BottomMiddle: "🮧", BottomRight: "🮠",
		Newline: "\n", Padding: " ",
	},
	None: {
		Padding: " ",
	},
	TSV: {
		MiddleVertical: "\t",
	},
	CSV: {
		MiddleVertical: ",",
	},
}

// Glyphs returns the symbols for s. An unknown style has no glyphs at all.
func (s Style) Glyphs() Glyphs {
	return glyphSets[s]
}

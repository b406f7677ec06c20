package u8tbl

import (
	"sync"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

var (
	widthOnce sync.Once
	widthCond *runewidth.Condition
)

// condition returns the shared width table. It is built from fixed settings
// rather than runewidth.DefaultCondition, which is derived from the locale
// environment at init time.
func condition() *runewidth.Condition {
	widthOnce.Do(func() {
		widthCond = &runewidth.Condition{
			EastAsianWidth:     false,
			StrictEmojiNeutral: true,
		}
	})
	return widthCond
}

// Width returns the number of terminal columns s occupies. Wide glyphs such
// as CJK ideographs count as 2, combining marks and control characters as 0.
//
// Strings that are not valid UTF-8 are measured by their byte length. The
// result is an approximation in that case and never an error.
func Width(s string) int {
	if !utf8.ValidString(s) {
		return len(s)
	}
	return condition().StringWidth(s)
}

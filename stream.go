package u8tbl

import (
	"io"
	"iter"
)

// WriteIter collects every row from seq and then writes the table to w.
// Nothing is written until seq is exhausted because every column width
// depends on every row.
func WriteIter(w io.Writer, s Style, seq iter.Seq[[]string]) error {
	var rows [][]string
	for row := range seq {
		rows = append(rows, row)
	}
	return Write(w, s, rows)
}

// WriteChan collects rows from ch until it is closed and writes the table to w.
// It is a thin wrapper around [WriteIter].
func WriteChan(w io.Writer, s Style, ch <-chan []string) error {
	return WriteIter(w, s, chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}

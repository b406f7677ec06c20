package u8tbl

import (
	"io"
)

// Rower provides the cells of one table row.
type Rower interface {
	Row() []string
}

// Write renders rows in style s and writes the table to w.
func Write(w io.Writer, s Style, rows [][]string) error {
	_, err := io.WriteString(w, Render(rows, s))
	return err
}

// Marshal renders rows in style s and returns the bytes.
func Marshal(s Style, rows [][]string) []byte {
	return []byte(Render(rows, s))
}

// WriteRowers renders one row per item and writes the table to w.
func WriteRowers[T Rower](w io.Writer, s Style, items ...T) error {
	rows := make([][]string, len(items))
	for i, item := range items {
		rows[i] = item.Row()
	}
	return Write(w, s, rows)
}

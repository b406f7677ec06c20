// Package input turns delimited text into a grid of cells.
package input

import (
	"bufio"
	"context"
	"io"
	"strings"
)

// maxLineSize bounds a single input line.
const maxLineSize = 16 * 1024 * 1024

// SplitLine splits line on every occurrence of delim. Empty fields between
// delimiters are kept, a trailing empty field is not, so "a,,b," yields
// ["a" "" "b"] and an empty line yields no cells. An empty delim returns the
// whole line as one cell.
func SplitLine(line, delim string) []string {
	if line == "" {
		return nil
	}
	if delim == "" {
		return []string{line}
	}
	var cells []string
	for {
		before, after, found := strings.Cut(line, delim)
		if !found {
			break
		}
		cells = append(cells, before)
		line = after
	}
	if line != "" {
		cells = append(cells, line)
	}
	return cells
}

// ReadGrid reads r line by line and splits each line with SplitLine. Every
// line becomes one row, including empty lines, which become empty rows.
func ReadGrid(ctx context.Context, r io.Reader, delim string) ([][]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	var rows [][]string
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line := strings.TrimSuffix(sc.Text(), "\r")
		rows = append(rows, SplitLine(line, delim))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}

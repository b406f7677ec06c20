package input_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/bjaus/u8tbl/internal/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitLine(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		line  string
		delim string
		want  []string
	}{
		"single space":      {line: "a b c", delim: " ", want: []string{"a", "b", "c"}},
		"no delimiter":      {line: "abc", delim: ",", want: []string{"abc"}},
		"empty line":        {line: "", delim: " ", want: nil},
		"interior empty":    {line: "a,,b", delim: ",", want: []string{"a", "", "b"}},
		"leading delimiter": {line: ",a", delim: ",", want: []string{"", "a"}},
		"trailing dropped":  {line: "a,b,", delim: ",", want: []string{"a", "b"}},
		"only delimiter":    {line: ",", delim: ",", want: []string{""}},
		"multi char":        {line: "a::b::c", delim: "::", want: []string{"a", "b", "c"}},
		"double space":      {line: "a  b", delim: " ", want: []string{"a", "", "b"}},
		"empty delimiter":   {line: "a b", delim: "", want: []string{"a b"}},
		"utf8":              {line: "日本|ab", delim: "|", want: []string{"日本", "ab"}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, input.SplitLine(tt.line, tt.delim))
		})
	}
}

func TestReadGrid(t *testing.T) {
	t.Parallel()
	r := strings.NewReader("host id\nnode-001 2\n\nnode-002 3\r\n")
	rows, err := input.ReadGrid(context.Background(), r, " ")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"host", "id"},
		{"node-001", "2"},
		nil,
		{"node-002", "3"},
	}, rows)
}

func TestReadGridEmpty(t *testing.T) {
	t.Parallel()
	rows, err := input.ReadGrid(context.Background(), strings.NewReader(""), " ")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReadGridNoTrailingNewline(t *testing.T) {
	t.Parallel()
	rows, err := input.ReadGrid(context.Background(), strings.NewReader("a,b\nc"), ",")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b"}, {"c"}}, rows)
}

func TestReadGridCanceled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := input.ReadGrid(ctx, strings.NewReader("a\nb\n"), " ")
	assert.ErrorIs(t, err, context.Canceled)
}

var errRead = errors.New("read failed")

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errRead }

func TestReadGridReaderError(t *testing.T) {
	t.Parallel()
	_, err := input.ReadGrid(context.Background(), errReader{}, " ")
	assert.ErrorIs(t, err, errRead)
}

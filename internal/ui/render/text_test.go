package render

import (
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean text unchanged", "Release notes", "Release notes"},
		{"escape sequences removed", "bad\x1b[2Jtitle", "bad[2Jtitle"},
		{"carriage return removed", "a\rb", "ab"},
		{"tab kept", "a\tb", "a\tb"},
		{"nbsp replaced", "a\u00a0b", "a b"},
		{"invalid utf8 dropped", "a\xffb", "ab"},
		{"c1 control removed", "a\u0085b", "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.input))
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"no truncation needed", "hello", 10, "hello"},
		{"exact fit", "hello", 5, "hello"},
		{"truncation with ellipsis", "hello world", 8, "hello w…"},
		{"zero width", "hello", 0, ""},
		{"wide characters", "日本語テキスト", 7, "日本語…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.input, tt.maxWidth)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, runewidth.StringWidth(got), max(tt.maxWidth, 0))
		})
	}
}

func TestTruncateAndPad(t *testing.T) {
	tests := []struct {
		input string
		width int
		want  string
	}{
		{"hi", 5, "hi   "},
		{"hello world", 6, "hello…"},
		{"", 3, "   "},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, TruncateAndPad(tt.input, tt.width))
		})
	}
}

func TestRow(t *testing.T) {
	assert.Equal(t, "left   right", Row("left", "right", 12))
	assert.Equal(t, "left", Row("left", "right", 9), "right side dropped when it does not fit")
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		width    int
		maxLines int
		want     []string
	}{
		{
			name:  "fits on one line",
			text:  "short text",
			width: 20,
			want:  []string{"short text"},
		},
		{
			name:  "breaks on spaces",
			text:  "the quick brown fox jumps",
			width: 10,
			want:  []string{"the quick", "brown fox", "jumps"},
		},
		{
			name:  "keeps paragraphs",
			text:  "one\n\ntwo",
			width: 10,
			want:  []string{"one", "", "two"},
		},
		{
			name:  "long word truncated",
			text:  "supercalifragilistic",
			width: 8,
			want:  []string{"superca…"},
		},
		{
			name:     "line limit adds ellipsis",
			text:     "aaa bbb ccc ddd",
			width:    7,
			maxLines: 1,
			want:     []string{"aaa bb…"},
		},
		{
			name:     "line limit with room for ellipsis",
			text:     "aa bb cc",
			width:    5,
			maxLines: 2,
			want:     []string{"aa bb", "cc"},
		},
		{
			name:  "zero width",
			text:  "anything",
			width: 0,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Wrap(tt.text, tt.width, tt.maxLines))
		})
	}
}

func TestFitHeight(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, FitHeight([]string{"a", "b", "c"}, 2))
	assert.Equal(t, []string{"a", "", ""}, FitHeight([]string{"a"}, 3))
	assert.Nil(t, FitHeight([]string{"a"}, 0))
}

func TestEmptyLine(t *testing.T) {
	assert.Equal(t, "   ", EmptyLine(3))
	assert.Empty(t, EmptyLine(-1))
}

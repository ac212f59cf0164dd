package surface

import (
	"reflect"
	"testing"

	"github.com/1broseidon/termstack/internal/tiling"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"fits", "hello world", 20, []string{"hello world"}},
		{"breaks on words", "hello big world", 9, []string{"hello big", "world"}},
		{"splits long word", "abcdefgh", 3, []string{"abc", "def", "gh"}},
		{"newline", "a\nb", 5, []string{"a", "b"}},
		{"zero width", "abc", 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Wrap(tt.text, tt.width); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Wrap(%q,%d)=%q, want %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}

func TestTextHeight(t *testing.T) {
	if got := TextHeight(5, "one two three"); got != 3 {
		t.Fatalf("expected 3 lines, got %d", got)
	}
}

func TestPrintRectStopsAtBottom(t *testing.T) {
	b := NewBuffer(5, 2)
	n := b.PrintRect(tiling.Rect{Width: 5, Height: 2}, "one two three", White, Black)
	if n != 2 {
		t.Fatalf("expected 2 rows written, got %d", n)
	}
	if got := b.String(); got != "one\ntwo" {
		t.Fatalf("unexpected content %q", got)
	}
}

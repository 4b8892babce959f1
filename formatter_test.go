package panes

import (
	"slices"
	"strings"
	"testing"
)

func renderFormatter(f *Formatter, w, h int) []string {
	c := NewCanvas(w, h)
	f.Render(c)
	return c.Lines()
}

func TestFormatterWrap(t *testing.T) {
	f := NewFormatter(Text("abcdefghij"))
	got := renderFormatter(f, 4, 5)
	want := []string{"abcd", "efgh", "ij  ", "    ", "    "}
	if !slices.Equal(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatterWrapLineCount(t *testing.T) {
	for _, n := range []int{1, 4, 5, 9, 12, 13} {
		text := strings.Repeat("x", n)
		got := NewFormatter(Text(text)).lines(4)
		want := (n + 3) / 4
		if len(got) != want {
			t.Errorf("len %d: %d lines, want %d", n, len(got), want)
		}
	}
}

func TestFormatterBottomAnchor(t *testing.T) {
	f := NewFormatter(Text("abcdefghij")).Align(AlignLeft, AlignBottom)
	got := renderFormatter(f, 4, 5)
	want := []string{"    ", "    ", "abcd", "efgh", "ij  "}
	if !slices.Equal(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatterBottomAnchorClipsOldest(t *testing.T) {
	f := NewFormatter(Lines("one", "two", "three")).Align(AlignLeft, AlignBottom)
	got := renderFormatter(f, 5, 2)
	want := []string{"two  ", "three"}
	if !slices.Equal(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatterMiddleAnchor(t *testing.T) {
	f := NewFormatter(Text("hi")).Align(AlignCenter, AlignMiddle)
	got := renderFormatter(f, 6, 5)
	if got[2] != "  hi  " {
		t.Errorf("middle row = %q, want %q", got[2], "  hi  ")
	}
}

func TestFormatterAlign(t *testing.T) {
	tests := []struct {
		name  string
		align Align
		pad   rune
		want  string
	}{
		{"left", AlignLeft, ' ', "abc    "},
		{"center", AlignCenter, ' ', "  abc  "},
		{"right", AlignRight, ' ', "    abc"},
		{"pad", AlignLeft, '.', "abc...."},
		{"center pad", AlignCenter, '-', "--abc--"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFormatter(Text("abc")).Align(tt.align, AlignTop).Pad(tt.pad)
			if got := renderFormatter(f, 7, 1)[0]; got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatterNulPadIsTransparent(t *testing.T) {
	c := NewCanvas(5, 1)
	c.Fill(RuneCell('#'))
	NewFormatter(Text("ab")).Align(AlignRight, AlignTop).Pad(0).Render(c)
	if got := c.String(); got != "###ab" {
		t.Errorf("got %q, want %q", got, "###ab")
	}
}

func TestFormatterNumbers(t *testing.T) {
	tests := []struct {
		name  string
		f     *Formatter
		width int
		want  string
	}{
		{"int", NewFormatter(Int(42)), 5, "42   "},
		{"float precision", NewFormatter(Float(3.14159)).Precision(2), 6, "3.14  "},
		{"float width precision", NewFormatter(Float(1.5)), 5, "1.500"},
		{"int grouping", NewFormatter(Int(1234567)).Grouping(true), 9, "1,234,567"},
		{"right aligned", NewFormatter(Int(7)).Align(AlignRight, AlignTop), 3, "  7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := renderFormatter(tt.f, tt.width, 1)[0]; got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatterWordWrap(t *testing.T) {
	f := NewFormatter(Text("hello world foo")).WordWrap(true)
	got := f.lines(8)
	want := []string{"hello", "world", "foo"}
	if !slices.Equal(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatterAppend(t *testing.T) {
	f := NewFormatter(Text(""))
	f.Append("one").Append("two")
	got := renderFormatter(f.Align(AlignLeft, AlignBottom), 5, 3)
	want := []string{"     ", "one  ", "two  "}
	if !slices.Equal(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}

	f = NewFormatter(Text("first"))
	f.Append("second")
	if v := f.Value(); !slices.Equal(v.lines, []string{"first", "second"}) {
		t.Errorf("lines = %q", v.lines)
	}
}

func TestFormatterKeep(t *testing.T) {
	f := NewFormatter(Lines("a", "b", "c", "d")).Keep(2)
	if v := f.Value(); !slices.Equal(v.lines, []string{"c", "d"}) {
		t.Errorf("lines = %q", v.lines)
	}
	f.Keep(5)
	if v := f.Value(); !slices.Equal(v.lines, []string{"c", "d"}) {
		t.Errorf("lines after larger keep = %q", v.lines)
	}
	if v := NewFormatter(Text("x")).Keep(0).Value(); v.text != "x" {
		t.Errorf("text value changed to %+v", v)
	}
}

func TestFormatterBorder(t *testing.T) {
	got := renderFormatter(NewItem(), 15, 3)
	want := []string{
		"┌─────────────┐",
		"│This is me.  │",
		"└─────────────┘",
	}
	if !slices.Equal(got, want) {
		t.Errorf("got\n%s\nwant\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}
}

func TestValueOf(t *testing.T) {
	type point struct{ X, Y int }
	tests := []struct {
		in   any
		kind valueKind
	}{
		{"x", valueText},
		{42, valueInt},
		{uint8(3), valueInt},
		{2.5, valueFloat},
		{[]string{"a"}, valueLines},
		{point{1, 2}, valueText},
		{nil, valueText},
	}
	for _, tt := range tests {
		if got := ValueOf(tt.in); got.kind != tt.kind {
			t.Errorf("ValueOf(%#v).kind = %d, want %d", tt.in, got.kind, tt.kind)
		}
	}
	if got := ValueOf(struct{ X, Y int }{1, 2}).text; got != "{1 2}" {
		t.Errorf("fallback text = %q", got)
	}
}

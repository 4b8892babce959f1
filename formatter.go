package panes

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/mitchellh/go-wordwrap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type valueKind uint8

const (
	valueText valueKind = iota
	valueInt
	valueFloat
	valueLines
)

// Value is the content of a Formatter: text, an integer, a float, or a
// sequence of lines.
type Value struct {
	kind  valueKind
	text  string
	i     int64
	f     float64
	lines []string
}

// Text returns a text value.
func Text(s string) Value {
	return Value{kind: valueText, text: s}
}

// Int returns an integer value.
func Int(n int64) Value {
	return Value{kind: valueInt, i: n}
}

// Float returns a floating point value.
func Float(f float64) Value {
	return Value{kind: valueFloat, f: f}
}

// Lines returns a sequence value, one entry per line.
func Lines(lines ...string) Value {
	return Value{kind: valueLines, lines: lines}
}

// ValueOf converts v to a Value. Strings, integers, floats and string slices
// map to their own kind; anything else is formatted with fmt.Sprint.
func ValueOf(v any) Value {
	switch v := v.(type) {
	case Value:
		return v
	case string:
		return Text(v)
	case []string:
		return Lines(v...)
	case int:
		return Int(int64(v))
	case int8:
		return Int(int64(v))
	case int16:
		return Int(int64(v))
	case int32:
		return Int(int64(v))
	case int64:
		return Int(v)
	case uint:
		return Int(int64(v))
	case uint8:
		return Int(int64(v))
	case uint16:
		return Int(int64(v))
	case uint32:
		return Int(int64(v))
	case float32:
		return Float(float64(v))
	case float64:
		return Float(v)
	case nil:
		return Text("")
	}
	return Text(fmt.Sprint(v))
}

// Formatter renders a value aligned inside its area.
type Formatter struct {
	Frame
	value     Value
	halign    Align
	valign    VAlign
	pad       rune
	precision int
	wordWrap  bool
	grouping  bool
}

// NewFormatter creates a top-left aligned formatter padded with spaces.
func NewFormatter(v Value) *Formatter {
	return &Formatter{
		value:     v,
		pad:       ' ',
		precision: -1,
	}
}

// Set replaces the value.
func (f *Formatter) Set(v Value) *Formatter {
	f.value = v
	return f
}

// SetText replaces the value with text.
func (f *Formatter) SetText(s string) *Formatter {
	f.value = Text(s)
	return f
}

// Value returns the current value.
func (f *Formatter) Value() Value {
	return f.value
}

// Append adds a line to a sequence value. A non-empty text value becomes the
// first line of the sequence; any other value is replaced.
func (f *Formatter) Append(line string) *Formatter {
	switch {
	case f.value.kind == valueLines:
	case f.value.kind == valueText && f.value.text != "":
		f.value = Lines(f.value.text)
	default:
		f.value = Lines()
	}
	f.value.lines = append(f.value.lines, line)
	return f
}

// Keep drops all but the last n lines of a sequence value. Other values
// are left alone.
func (f *Formatter) Keep(n int) *Formatter {
	n = max(n, 0)
	if f.value.kind == valueLines && len(f.value.lines) > n {
		f.value.lines = slices.Clone(f.value.lines[len(f.value.lines)-n:])
	}
	return f
}

// Align sets the horizontal and vertical anchors.
func (f *Formatter) Align(h Align, v VAlign) *Formatter {
	f.halign, f.valign = h, v
	return f
}

// Pad sets the rune used to fill each line to the area width.
// A NUL pad leaves the gap transparent.
func (f *Formatter) Pad(r rune) *Formatter {
	f.pad = r
	return f
}

// Precision sets the number of decimals for float values.
// A negative precision uses the area width.
func (f *Formatter) Precision(n int) *Formatter {
	f.precision = n
	return f
}

// WordWrap breaks text on spaces before splitting long lines.
func (f *Formatter) WordWrap(on bool) *Formatter {
	f.wordWrap = on
	return f
}

// Grouping renders numbers with thousands separators.
func (f *Formatter) Grouping(on bool) *Formatter {
	f.grouping = on
	return f
}

// Border sets the border line style.
func (f *Formatter) Border(s LineStyle) *Formatter {
	f.SetBorder(s)
	return f
}

// Margin sets the inset between border and content.
func (f *Formatter) Margin(n int) *Formatter {
	f.SetMargin(n)
	return f
}

// Title sets a border title.
func (f *Formatter) Title(pos TitlePos, text string) *Formatter {
	f.SetTitle(pos, text)
	return f
}

// Render draws the value. Text longer than the area wraps onto following
// rows. Bottom anchored content ends on the last row, so the oldest lines
// are the ones clipped.
func (f *Formatter) Render(c *Canvas) {
	defer f.begin(c)()

	w, h := c.Size()
	if w <= 0 || h <= 0 {
		return
	}

	lines := f.lines(w)
	var y int
	switch f.valign {
	case AlignMiddle:
		y = h/2 - (len(lines)-1)/2
	case AlignBottom:
		y = h - 1 - (len(lines) - 1)
	}
	for i, line := range lines {
		if row := y + i; row >= 0 && row < h {
			c.DrawText(0, row, f.fit(line, w), AlignLeft)
		}
	}
}

// lines returns the value broken into rows no wider than w.
func (f *Formatter) lines(w int) []string {
	switch f.value.kind {
	case valueInt, valueFloat:
		return []string{runewidth.Truncate(f.number(w), w, "")}
	case valueLines:
		var out []string
		for _, l := range f.value.lines {
			out = append(out, f.wrap(l, w)...)
		}
		return out
	}
	var out []string
	for _, l := range strings.Split(f.value.text, "\n") {
		out = append(out, f.wrap(l, w)...)
	}
	return out
}

// number formats an int or float value.
func (f *Formatter) number(w int) string {
	var p *message.Printer
	if f.grouping {
		p = message.NewPrinter(language.English)
	}

	if f.value.kind == valueInt {
		if p != nil {
			return p.Sprintf("%d", f.value.i)
		}
		return strconv.FormatInt(f.value.i, 10)
	}

	prec := f.precision
	if prec < 0 {
		prec = w
	}
	if p != nil {
		return p.Sprintf("%.*f", prec, f.value.f)
	}
	return strconv.FormatFloat(f.value.f, 'f', prec, 64)
}

// wrap splits one logical line into chunks of at most w columns.
func (f *Formatter) wrap(s string, w int) []string {
	if f.wordWrap && runewidth.StringWidth(s) > w {
		var out []string
		for _, l := range strings.Split(wordwrap.WrapString(s, uint(w)), "\n") {
			out = append(out, chunk(l, w)...)
		}
		return out
	}
	return chunk(s, w)
}

// chunk hard-splits s every w display columns. An empty string is one
// empty chunk.
func chunk(s string, w int) []string {
	if runewidth.StringWidth(s) <= w {
		return []string{s}
	}
	var out []string
	var b strings.Builder
	used := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if used+rw > w && used > 0 {
			out = append(out, b.String())
			b.Reset()
			used = 0
		}
		b.WriteRune(r)
		used += rw
	}
	if b.Len() > 0 {
		out = append(out, b.String())
	}
	return out
}

// fit pads line to w columns according to the horizontal anchor.
func (f *Formatter) fit(line string, w int) string {
	gap := w - runewidth.StringWidth(line)
	if gap <= 0 {
		return line
	}
	var lead int
	switch f.halign {
	case AlignCenter:
		lead = gap / 2
	case AlignRight:
		lead = gap
	}
	pad := string(f.pad)
	return strings.Repeat(pad, lead) + line + strings.Repeat(pad, gap-lead)
}

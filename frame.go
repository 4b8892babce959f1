package panes

import "github.com/mattn/go-runewidth"

// TitlePos selects one of the six title slots on a frame's border.
type TitlePos uint8

const (
	TitleTopLeft TitlePos = iota
	TitleTopCenter
	TitleTopRight
	TitleBottomLeft
	TitleBottomCenter
	TitleBottomRight
)

// Frame is the border and margin shared by every node. It is embedded by
// Plain, Formatter, ProgressBar, Layout and Table.
type Frame struct {
	border LineStyle
	margin int
	titles [6]string
}

// SetBorder sets the border line style. None removes the border.
func (f *Frame) SetBorder(s LineStyle) {
	f.border = s
}

// SetMargin sets the blank inset kept inside the border on every side.
func (f *Frame) SetMargin(n int) {
	if n < 0 {
		n = 0
	}
	f.margin = n
}

// SetTitle sets the text shown in a border slot. Titles only render on
// bordered frames.
func (f *Frame) SetTitle(pos TitlePos, text string) {
	f.titles[pos] = text
}

// BorderStyle returns the border line style.
func (f *Frame) BorderStyle() LineStyle {
	return f.border
}

// begin stamps the border and titles over the current area and pushes the
// content area inside them. The returned function pops everything begin
// pushed and then resolves the border over the restored area.
func (f *Frame) begin(c *Canvas) (end func()) {
	bordered := f.border != None

	var popBorder, popMargin func()
	if bordered {
		w, h := c.Size()
		c.DrawRectangle(0, 0, w, h, MarkerCell(f.border))
		f.drawTitles(c, w, h)
		popBorder = c.Push(1, 1, max(w-2, 0), max(h-2, 0))
	}
	if m := f.margin; m > 0 {
		w, h := c.Size()
		popMargin = c.Push(m, m, max(w-2*m, 0), max(h-2*m, 0))
	}

	return func() {
		if popMargin != nil {
			popMargin()
		}
		if popBorder != nil {
			popBorder()
		}
		if bordered {
			Boxify(c)
		}
	}
}

// drawTitles writes the titles onto the border rows. Titles keep two cells
// clear at each end so the corners and the line stub beside them survive.
func (f *Frame) drawTitles(c *Canvas, w, h int) {
	room := w - 4
	if room <= 0 {
		return
	}
	rows := [2]int{0, h - 1}
	for i, text := range f.titles {
		if text == "" {
			continue
		}
		text = runewidth.Truncate(text, room, "")
		y := rows[i/3]
		switch TitlePos(i % 3) {
		case TitleTopLeft:
			c.DrawText(2, y, text, AlignLeft)
		case TitleTopCenter:
			c.DrawText(w/2, y, text, AlignCenter)
		case TitleTopRight:
			c.DrawText(w-3, y, text, AlignRight)
		}
	}
}

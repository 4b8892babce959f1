package panes

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Area is a rectangle in absolute buffer coordinates.
type Area struct {
	X, Y          int
	Width, Height int
}

// Canvas is a fixed-size grid of cells with a stack of clipping areas.
// All drawing coordinates are relative to the current area and anything
// outside it is silently dropped.
type Canvas struct {
	cells  []Cell
	width  int
	height int

	area  Area
	stack []Area
}

// NewCanvas creates a canvas of the given size. Negative sizes panic.
func NewCanvas(width, height int) *Canvas {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("panes: invalid canvas size %dx%d", width, height))
	}
	return &Canvas{
		cells:  make([]Cell, width*height),
		width:  width,
		height: height,
		area:   Area{Width: width, Height: height},
	}
}

// Width returns the width of the current area.
func (c *Canvas) Width() int {
	return c.area.Width
}

// Height returns the height of the current area.
func (c *Canvas) Height() int {
	return c.area.Height
}

// Size returns the dimensions of the current area.
func (c *Canvas) Size() (width, height int) {
	return c.area.Width, c.area.Height
}

// BufferSize returns the dimensions of the whole buffer.
func (c *Canvas) BufferSize() (width, height int) {
	return c.width, c.height
}

// Area returns the current area in absolute coordinates.
func (c *Canvas) Area() Area {
	return c.area
}

// Depth returns the number of pushed areas.
func (c *Canvas) Depth() int {
	return len(c.stack)
}

// PushArea makes (x, y, w, h), relative to the current area, the new current
// area. The new area is not clipped against its parent. Negative sizes
// panic.
func (c *Canvas) PushArea(x, y, w, h int) {
	if w < 0 || h < 0 {
		panic(fmt.Sprintf("panes: negative area size %dx%d", w, h))
	}
	c.stack = append(c.stack, c.area)
	c.area = Area{X: c.area.X + x, Y: c.area.Y + y, Width: w, Height: h}
}

// PopArea restores the area that was current before the matching PushArea.
// Popping with nothing pushed is a programming error and panics.
func (c *Canvas) PopArea() {
	if len(c.stack) == 0 {
		panic("panes: PopArea without matching PushArea")
	}
	c.area = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// Push pushes an area and returns the function that pops it, so callers can
// write defer c.Push(x, y, w, h)().
func (c *Canvas) Push(x, y, w, h int) (pop func()) {
	c.PushArea(x, y, w, h)
	depth := len(c.stack)
	return func() {
		if len(c.stack) != depth {
			panic(fmt.Sprintf("panes: area stack depth %d, want %d", len(c.stack), depth))
		}
		c.PopArea()
	}
}

// Within runs fn with (x, y, w, h) as the current area. The area is restored
// on every exit path, panics included.
func (c *Canvas) Within(x, y, w, h int, fn func()) {
	defer c.Push(x, y, w, h)()
	fn()
}

// parentSize returns the size of the area below the current one on the
// stack, or of the current area when nothing is pushed.
func (c *Canvas) parentSize() (width, height int) {
	a := c.area
	if n := len(c.stack); n > 0 {
		a = c.stack[n-1]
	}
	return a.Width, a.Height
}

// ResetArea discards all pushed areas and makes the whole buffer current.
func (c *Canvas) ResetArea() {
	c.stack = c.stack[:0]
	c.area = Area{Width: c.width, Height: c.height}
}

// InBounds returns true if (x, y) lies inside the current area and the buffer.
func (c *Canvas) InBounds(x, y int) bool {
	if x < 0 || y < 0 || x >= c.area.Width || y >= c.area.Height {
		return false
	}
	ax, ay := c.area.X+x, c.area.Y+y
	return ax >= 0 && ay >= 0 && ax < c.width && ay < c.height
}

func (c *Canvas) index(x, y int) int {
	return (c.area.Y+y)*c.width + c.area.X + x
}

// Get returns the cell at (x, y), or the empty cell when out of bounds.
func (c *Canvas) Get(x, y int) Cell {
	if !c.InBounds(x, y) {
		return EmptyCell()
	}
	return c.cells[c.index(x, y)]
}

// Set writes the cell at (x, y). Out of bounds writes are ignored.
func (c *Canvas) Set(x, y int, cell Cell) {
	if !c.InBounds(x, y) {
		return
	}
	c.cells[c.index(x, y)] = cell
}

// SetRune writes a printable rune at (x, y).
func (c *Canvas) SetRune(x, y int, r rune) {
	c.Set(x, y, RuneCell(r))
}

// SetMarker writes a line marker at (x, y).
func (c *Canvas) SetMarker(x, y int, s LineStyle) {
	c.Set(x, y, MarkerCell(s))
}

// Marker returns the marker style at (x, y), None for any other cell.
func (c *Canvas) Marker(x, y int) LineStyle {
	return c.Get(x, y).Marker()
}

// DrawText writes text on row y so that the anchor point of the text lands
// on column x. A NUL rune advances one column without writing, which lets
// formatted strings carry transparent gaps.
func (c *Canvas) DrawText(x, y int, text string, anchor Align) {
	switch anchor {
	case AlignCenter:
		x -= runewidth.StringWidth(text) / 2
	case AlignRight:
		x -= runewidth.StringWidth(text) - 1
	}
	for _, r := range text {
		if r == 0 {
			x++
			continue
		}
		w := runewidth.RuneWidth(r)
		switch {
		case w == 2 && c.InBounds(x+1, y):
			c.Set(x, y, RuneCell(r))
			c.Set(x+1, y, Cell{kind: kindWide})
		case w == 2:
			// half a wide rune would not line up with the row
			c.Set(x, y, RuneCell(' '))
		default:
			w = 1
			c.Set(x, y, RuneCell(r))
		}
		x += w
	}
}

// DrawHorizontal stamps cell along row y for length columns.
func (c *Canvas) DrawHorizontal(x, y, length int, cell Cell) {
	for i := 0; i < length; i++ {
		c.Set(x+i, y, cell)
	}
}

// DrawVertical stamps cell down column x for length rows.
func (c *Canvas) DrawVertical(x, y, length int, cell Cell) {
	for i := 0; i < length; i++ {
		c.Set(x, y+i, cell)
	}
}

// DrawRectangle stamps cell along the perimeter of the rectangle.
func (c *Canvas) DrawRectangle(x, y, w, h int, cell Cell) {
	if w <= 0 || h <= 0 {
		return
	}
	c.DrawHorizontal(x, y, w, cell)
	c.DrawHorizontal(x, y+h-1, w, cell)
	c.DrawVertical(x, y, h, cell)
	c.DrawVertical(x+w-1, y, h, cell)
}

// Fill stamps cell over the whole current area.
func (c *Canvas) Fill(cell Cell) {
	for y := 0; y < c.area.Height; y++ {
		c.DrawHorizontal(0, y, c.area.Width, cell)
	}
}

// Clear empties the current area.
func (c *Canvas) Clear() {
	c.Fill(EmptyCell())
}

// Insert draws a block of text rows with its top-left corner at (x, y).
func (c *Canvas) Insert(x, y int, rows []string) {
	for i, row := range rows {
		c.DrawText(x, y+i, row, AlignLeft)
	}
}

// appendRow appends the printable form of buffer row y.
func (c *Canvas) appendRow(buf *bytes.Buffer, y int) {
	row := c.cells[y*c.width : (y+1)*c.width]
	for _, cell := range row {
		if r := cell.Printable(); r != 0 {
			buf.WriteRune(r)
		}
	}
}

// Print writes the whole buffer to w, one line per row. With overdraw set
// the cursor is first moved up one line per row, so consecutive frames
// replace each other in place.
func (c *Canvas) Print(w io.Writer, overdraw bool) error {
	var buf bytes.Buffer
	if overdraw {
		buf.WriteString(strings.Repeat(ansi.CursorUp(1), c.height))
	}
	for y := 0; y < c.height; y++ {
		c.appendRow(&buf, y)
		buf.WriteByte('\n')
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("print canvas: %w", err)
	}
	return nil
}

// Lines returns the buffer rows as strings.
func (c *Canvas) Lines() []string {
	lines := make([]string, c.height)
	var buf bytes.Buffer
	for y := 0; y < c.height; y++ {
		buf.Reset()
		c.appendRow(&buf, y)
		lines[y] = buf.String()
	}
	return lines
}

// String returns the buffer contents with rows separated by newlines.
func (c *Canvas) String() string {
	return strings.Join(c.Lines(), "\n")
}

package panes

import "fmt"

// Direction is the axis a Layout places its children along.
type Direction uint8

const (
	// Row places children side by side, separated by vertical dividers.
	Row Direction = iota
	// Column stacks children top to bottom, separated by horizontal dividers.
	Column
)

// String returns the direction name.
func (d Direction) String() string {
	if d == Column {
		return "column"
	}
	return "row"
}

type layoutItem struct {
	weight float64
	node   Node
}

// Layout splits its area among child nodes by weight. See Distribute for how
// weights turn into lengths.
type Layout struct {
	Frame
	dir     Direction
	divider LineStyle
	items   []layoutItem
}

// NewLayout creates an empty layout.
func NewLayout(dir Direction) *Layout {
	return &Layout{dir: dir}
}

// Add appends a child with the given weight. A weight above 1.0 is a fixed
// length in cells; 1.0 or less is a proportional share. Adding a node that
// contains the layout, or the layout itself, panics, as does a weight that
// is not positive.
func (l *Layout) Add(n Node, weight float64) *Layout {
	if !(weight > 0) {
		panic(fmt.Sprintf("panes: layout weight %v, must be positive", weight))
	}
	mustAdopt(l, n)
	l.items = append(l.items, layoutItem{weight: weight, node: n})
	return l
}

// Divider sets the line drawn between consecutive children.
// None disables dividers.
func (l *Layout) Divider(s LineStyle) *Layout {
	l.divider = s
	return l
}

// Border sets the border line style.
func (l *Layout) Border(s LineStyle) *Layout {
	l.SetBorder(s)
	return l
}

// Margin sets the inset between border and children.
func (l *Layout) Margin(n int) *Layout {
	l.SetMargin(n)
	return l
}

// Title sets a border title.
func (l *Layout) Title(pos TitlePos, text string) *Layout {
	l.SetTitle(pos, text)
	return l
}

// Direction returns the layout axis.
func (l *Layout) Direction() Direction {
	return l.dir
}

// Len returns the number of children.
func (l *Layout) Len() int {
	return len(l.items)
}

func (l *Layout) children() []Node {
	nodes := make([]Node, len(l.items))
	for i, it := range l.items {
		nodes[i] = it.node
	}
	return nodes
}

// Render draws the frame, then each child in its own sub-area with a
// divider line before every child but the first.
func (l *Layout) Render(c *Canvas) {
	defer l.begin(c)()

	if len(l.items) == 0 {
		return
	}
	w, h := c.Size()
	length := w
	if l.dir == Column {
		length = h
	}

	weights := make([]float64, len(l.items))
	for i, it := range l.items {
		weights[i] = it.weight
	}
	lengths := Distribute(length, weights, l.divider != None)

	pos := 0
	for i, it := range l.items {
		if i > 0 && l.divider != None {
			l.divide(c, pos)
			pos++
		}
		n := lengths[i]
		if l.dir == Row {
			c.Within(pos, 0, n, h, func() { it.node.Render(c) })
		} else {
			c.Within(0, pos, w, n, func() { it.node.Render(c) })
		}
		pos += n
	}
}

// divide strokes the divider at pos across the whole cross axis. With a
// margin the stroke also covers the margin, so it meets the border.
func (l *Layout) divide(c *Canvas, pos int) {
	m := l.margin
	w, h := c.Size()
	if m > 0 {
		w, h = c.parentSize()
	}
	div := MarkerCell(l.divider)
	c.Within(-m, -m, w, h, func() {
		if l.dir == Row {
			c.DrawVertical(pos+m, 0, h, div)
		} else {
			c.DrawHorizontal(0, pos+m, w, div)
		}
	})
}

package panes

// glyphKey is the line style of the four neighbours of a cell,
// in the order up, down, left, right.
type glyphKey [4]LineStyle

const (
	up = iota
	down
	left
	right
)

// glyphs maps neighbour styles to the box-drawing rune for the cell between
// them. The table is closed and never modified at runtime.
var glyphs = map[glyphKey]rune{
	// single
	{0, 0, 1, 1}: '─',
	{1, 1, 0, 0}: '│',
	{0, 1, 0, 1}: '┌',
	{0, 1, 1, 0}: '┐',
	{1, 0, 0, 1}: '└',
	{1, 0, 1, 0}: '┘',
	{1, 1, 0, 1}: '├',
	{1, 1, 1, 0}: '┤',
	{0, 1, 1, 1}: '┬',
	{1, 0, 1, 1}: '┴',
	{1, 1, 1, 1}: '┼',
	{0, 0, 1, 0}: '┤',
	{0, 0, 0, 1}: '├',
	{1, 0, 0, 0}: '┴',
	{0, 1, 0, 0}: '┬',

	// double
	{0, 0, 2, 2}: '═',
	{2, 2, 0, 0}: '║',
	{0, 2, 0, 2}: '╔',
	{0, 2, 2, 0}: '╗',
	{2, 0, 0, 2}: '╚',
	{2, 0, 2, 0}: '╝',
	{2, 2, 0, 2}: '╠',
	{2, 2, 2, 0}: '╣',
	{0, 2, 2, 2}: '╦',
	{2, 0, 2, 2}: '╩',
	{2, 2, 2, 2}: '╬',
	{0, 0, 2, 0}: '╣',
	{0, 0, 0, 2}: '╠',
	{2, 0, 0, 0}: '╩',
	{0, 2, 0, 0}: '╦',

	// dashed, and single/double running into dashed
	{0, 0, 3, 3}: '╌',
	{3, 3, 0, 0}: '╎',
	{0, 0, 1, 3}: '┤',
	{0, 0, 3, 1}: '├',
	{1, 3, 0, 0}: '┴',
	{3, 1, 0, 0}: '┬',
	{0, 0, 2, 3}: '╡',
	{0, 0, 3, 2}: '╞',
	{2, 3, 0, 0}: '╨',
	{3, 2, 0, 0}: '╥',

	// single and double mixed
	{0, 1, 0, 2}: '╒',
	{0, 2, 0, 1}: '╓',
	{0, 1, 2, 0}: '╕',
	{0, 2, 1, 0}: '╖',
	{1, 0, 0, 2}: '╘',
	{2, 0, 0, 1}: '╙',
	{1, 0, 2, 0}: '╛',
	{2, 0, 1, 0}: '╜',
	{1, 1, 0, 2}: '╞',
	{2, 2, 0, 1}: '╟',
	{1, 1, 2, 0}: '╡',
	{2, 2, 1, 0}: '╢',
	{0, 1, 2, 2}: '╤',
	{0, 2, 1, 1}: '╥',
	{1, 0, 2, 2}: '╧',
	{2, 0, 1, 1}: '╨',
	{1, 1, 2, 2}: '╪',
	{2, 2, 1, 1}: '╫',
}

// straights holds the plain line segment for each style, indexed
// [style][vertical].
var straights = [4][2]rune{
	None:   {' ', ' '},
	Single: {'─', '│'},
	Double: {'═', '║'},
	Dashed: {'╌', '╎'},
}

// arms returns the number of neighbours carrying a line.
func (k glyphKey) arms() int {
	n := 0
	for _, s := range k {
		if s != None {
			n++
		}
	}
	return n
}

// lookupGlyph resolves a neighbourhood to a rune. When the exact combination
// is not tabulated it retries with dashed arms read as single, then with
// every arm read as the cell's own style.
func lookupGlyph(k glyphKey, own LineStyle) (rune, bool) {
	if g, ok := glyphs[k]; ok {
		return g, true
	}

	undashed := k
	for i, s := range undashed {
		if s == Dashed {
			undashed[i] = Single
		}
	}
	if g, ok := glyphs[undashed]; ok {
		return g, true
	}

	if own == Dashed {
		own = Single
	}
	uniform := k
	for i, s := range uniform {
		if s != None {
			uniform[i] = own
		}
	}
	g, ok := glyphs[uniform]
	return g, ok
}

// Boxify replaces every line marker in the current area with the box-drawing
// glyph implied by its four neighbours. Neighbours are read from a snapshot
// taken before the pass and all results go to a separate copy, so no
// resolved cell is visible to a lookup in the same pass. Cells fed into a tee
// or cross are rewritten as straight segments of their own style.
//
// Boxify only reads inside the current area: markers beyond its edges count
// as no line. Running it on an area without markers changes nothing.
func Boxify(c *Canvas) {
	w, h := c.Size()
	if w <= 0 || h <= 0 {
		return
	}

	read := make([]Cell, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			read[y*w+x] = c.Get(x, y)
		}
	}
	write := make([]Cell, len(read))
	copy(write, read)

	marker := func(x, y int) LineStyle {
		if x < 0 || y < 0 || x >= w || y >= h {
			return None
		}
		return read[y*w+x].Marker()
	}

	changed := false
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cell := read[y*w+x]
			if !cell.IsMarker() {
				continue
			}
			changed = true

			k := glyphKey{
				up:    marker(x, y-1),
				down:  marker(x, y+1),
				left:  marker(x-1, y),
				right: marker(x+1, y),
			}
			if g, ok := lookupGlyph(k, cell.style); ok {
				write[y*w+x] = RuneCell(g)
			} else {
				logger.Debug().
					Int("x", c.area.X+x).Int("y", c.area.Y+y).
					Stringer("style", cell.style).
					Ints("neighbours", []int{int(k[up]), int(k[down]), int(k[left]), int(k[right])}).
					Msg("no glyph for marker")
			}

			if k.arms() < 3 {
				continue
			}
			if s := k[up]; s != None {
				write[(y-1)*w+x] = RuneCell(straights[s][1])
			}
			if s := k[down]; s != None {
				write[(y+1)*w+x] = RuneCell(straights[s][1])
			}
			if s := k[left]; s != None {
				write[y*w+x-1] = RuneCell(straights[s][0])
			}
			if s := k[right]; s != None {
				write[y*w+x+1] = RuneCell(straights[s][0])
			}
		}
	}
	if !changed {
		return
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c.Set(x, y, write[y*w+x])
		}
	}
}

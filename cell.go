// Package panes renders nested terminal layouts into a character grid.
//
// A Canvas holds a fixed-size buffer of cells and a stack of clipping areas.
// Nodes (Plain, Formatter, ProgressBar, Layout, Table) render into the
// current area and stamp line-style markers for their borders and dividers.
// Boxify turns those markers into box-drawing glyphs, joining borders from
// different nodes into tees and crosses where they meet.
package panes

// LineStyle is the style of a border or divider line.
type LineStyle uint8

const (
	None LineStyle = iota
	Single
	Double
	Dashed
)

// String returns the style name.
func (s LineStyle) String() string {
	switch s {
	case None:
		return "none"
	case Single:
		return "single"
	case Double:
		return "double"
	case Dashed:
		return "dashed"
	}
	return "invalid"
}

// cellKind tags the variant held by a Cell.
type cellKind uint8

const (
	kindEmpty cellKind = iota
	kindRune
	kindMarker
	kindWide // second column of a double-width rune
)

// Cell is one position in the canvas buffer: empty, a printable rune, or an
// unresolved line-style marker.
type Cell struct {
	kind  cellKind
	r     rune
	style LineStyle
}

// EmptyCell returns a blank cell.
func EmptyCell() Cell {
	return Cell{}
}

// RuneCell returns a cell holding a printable rune.
func RuneCell(r rune) Cell {
	return Cell{kind: kindRune, r: r}
}

// MarkerCell returns a cell holding an unresolved line marker.
// A None marker is the empty cell.
func MarkerCell(s LineStyle) Cell {
	if s == None {
		return Cell{}
	}
	return Cell{kind: kindMarker, style: s}
}

// IsEmpty reports whether the cell is blank.
func (c Cell) IsEmpty() bool {
	return c.kind == kindEmpty
}

// IsMarker reports whether the cell is an unresolved line marker.
func (c Cell) IsMarker() bool {
	return c.kind == kindMarker
}

// Marker returns the line style of a marker cell, None for anything else.
func (c Cell) Marker() LineStyle {
	if c.kind != kindMarker {
		return None
	}
	return c.style
}

// Rune returns the rune of a printable cell, 0 for anything else.
func (c Cell) Rune() rune {
	if c.kind != kindRune {
		return 0
	}
	return c.r
}

// Printable returns what the cell prints as. Empty cells print as a space,
// markers as their style digit, and wide continuations as 0 (nothing).
func (c Cell) Printable() rune {
	switch c.kind {
	case kindRune:
		return c.r
	case kindMarker:
		return '0' + rune(c.style)
	case kindWide:
		return 0
	}
	return ' '
}

// Equal returns true if two cells are equal.
func (c Cell) Equal(other Cell) bool {
	return c == other
}

// Align is a horizontal anchor for text.
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// VAlign is a vertical anchor for formatted content.
type VAlign uint8

const (
	AlignTop VAlign = iota
	AlignMiddle
	AlignBottom
)

package panes

// Table lays out a header row and data rows in aligned columns. Cells that
// are Nodes render as themselves; anything else is shown through a
// Formatter using the column alignment.
//
// The node tree behind a table is rebuilt on every Render, so rows can be
// changed freely between frames.
type Table struct {
	Frame
	header        []string
	rows          [][]any
	aligns        []Align
	weights       []float64
	divider       LineStyle
	headerDivider LineStyle
}

// NewTable creates a table with the given column headers. A table without
// headers has no header row.
func NewTable(header ...string) *Table {
	return &Table{header: header}
}

// AddRow appends a row of cell values.
func (t *Table) AddRow(cells ...any) *Table {
	for _, v := range cells {
		if n, ok := v.(Node); ok {
			mustAdopt(t, n)
		}
	}
	t.rows = append(t.rows, cells)
	return t
}

// SetRows replaces all rows.
func (t *Table) SetRows(rows [][]any) *Table {
	t.rows = t.rows[:0]
	for _, r := range rows {
		t.AddRow(r...)
	}
	return t
}

// ClearRows removes all rows, keeping the header.
func (t *Table) ClearRows() *Table {
	t.rows = t.rows[:0]
	return t
}

// Rows returns the number of data rows.
func (t *Table) Rows() int {
	return len(t.rows)
}

// Aligns sets per-column alignment. Columns without an entry align left.
func (t *Table) Aligns(a ...Align) *Table {
	t.aligns = a
	return t
}

// Weights sets per-column weights. Columns without an entry get 1.0.
func (t *Table) Weights(w ...float64) *Table {
	t.weights = w
	return t
}

// Divider sets the line drawn between columns.
func (t *Table) Divider(s LineStyle) *Table {
	t.divider = s
	return t
}

// HeaderDivider sets the line drawn under the header row.
func (t *Table) HeaderDivider(s LineStyle) *Table {
	t.headerDivider = s
	return t
}

// Border sets the border line style.
func (t *Table) Border(s LineStyle) *Table {
	t.SetBorder(s)
	return t
}

// Margin sets the inset between border and cells.
func (t *Table) Margin(n int) *Table {
	t.SetMargin(n)
	return t
}

// Title sets a border title.
func (t *Table) Title(pos TitlePos, text string) *Table {
	t.SetTitle(pos, text)
	return t
}

func (t *Table) children() []Node {
	var nodes []Node
	for _, row := range t.rows {
		for _, v := range row {
			if n, ok := v.(Node); ok {
				nodes = append(nodes, n)
			}
		}
	}
	return nodes
}

// Render rebuilds the table layout and draws it.
func (t *Table) Render(c *Canvas) {
	t.build().Render(c)
}

// ----------------------------------------------------------------------------
// layout construction
// ----------------------------------------------------------------------------

// build returns a fresh column layout: the header row, then a body holding
// one single-line row per data row and a filler row taking the remaining
// height so column dividers reach the bottom edge.
func (t *Table) build() *Layout {
	root := NewLayout(Column).Divider(t.headerDivider)
	root.Frame = t.Frame

	cols := t.columns()
	if len(t.header) > 0 {
		labels := make([]any, len(t.header))
		for i, h := range t.header {
			labels[i] = h
		}
		root.Add(t.row(labels, cols), 1.1)
	}

	body := NewLayout(Column)
	for _, cells := range t.rows {
		body.Add(t.row(cells, cols), 1.1)
	}
	body.Add(t.row(nil, cols), 1.0)
	root.Add(body, 1.0)
	return root
}

// columns returns the widest of the header and every row.
func (t *Table) columns() int {
	n := len(t.header)
	for _, r := range t.rows {
		n = max(n, len(r))
	}
	return n
}

// row builds a row layout of cols cells. Missing cells are blank.
func (t *Table) row(cells []any, cols int) *Layout {
	l := NewLayout(Row).Divider(t.divider)
	for i := 0; i < cols; i++ {
		var v any
		if i < len(cells) {
			v = cells[i]
		}
		l.items = append(l.items, layoutItem{weight: t.weight(i), node: t.cell(v, i)})
	}
	return l
}

func (t *Table) cell(v any, col int) Node {
	if n, ok := v.(Node); ok {
		return n
	}
	f := NewFormatter(ValueOf(v))
	if col < len(t.aligns) {
		f.Align(t.aligns[col], AlignTop)
	}
	return f
}

func (t *Table) weight(col int) float64 {
	if col < len(t.weights) && t.weights[col] > 0 {
		return t.weights[col]
	}
	return 1.0
}

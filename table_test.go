package panes

import "testing"

func sampleTable() *Table {
	return NewTable("a", "b").
		AddRow(1, "x").
		Divider(Single).
		HeaderDivider(Single).
		Border(Single)
}

func TestTableRender(t *testing.T) {
	c := NewCanvas(20, 5)
	Render(c, sampleTable())

	assertLines(t, c, []string{
		"┌────────┬─────────┐",
		"│a       │b        │",
		"├────────┼─────────┤",
		"│1       │x        │",
		"└────────┴─────────┘",
	})
	assertNoMarkers(t, c)
}

func TestTableRenderIdempotent(t *testing.T) {
	tbl := sampleTable().AddRow(2.5, "y").AddRow("long cell value", NewProgressBar(1).Set(0.5))

	once := NewCanvas(24, 8)
	Render(once, tbl)

	twice := NewCanvas(24, 8)
	Render(twice, tbl)
	Render(twice, tbl)

	if once.String() != twice.String() {
		t.Errorf("second render differs:\n%s\nfirst:\n%s", twice, once)
	}
	if tbl.Rows() != 3 {
		t.Errorf("rows = %d after renders, want 3", tbl.Rows())
	}
}

func TestTableFillerExtendsDividers(t *testing.T) {
	c := NewCanvas(9, 5)
	Render(c, NewTable().AddRow("p", "q").Divider(Single).Border(Single))

	assertLines(t, c, []string{
		"┌───┬───┐",
		"│p  │q  │",
		"│   │   │",
		"│   │   │",
		"└───┴───┘",
	})
}

func TestTableAlignsAndWeights(t *testing.T) {
	c := NewCanvas(10, 2)
	tbl := NewTable("n", "v").
		Aligns(AlignLeft, AlignRight).
		Weights(4, 1).
		AddRow("id", 7)
	Render(c, tbl)

	assertLines(t, c, []string{
		"n        v",
		"id       7",
	})
}

func TestTableShortRowsPadded(t *testing.T) {
	c := NewCanvas(7, 2)
	tbl := NewTable("a", "b", "c").AddRow("1")
	Render(c, tbl)

	assertLines(t, c, []string{
		"a b c  ",
		"1      ",
	})
}

func TestTableClearRows(t *testing.T) {
	tbl := sampleTable()
	tbl.ClearRows()
	if tbl.Rows() != 0 {
		t.Fatalf("rows = %d, want 0", tbl.Rows())
	}
	tbl.SetRows([][]any{{"r1"}, {"r2"}})
	if tbl.Rows() != 2 {
		t.Errorf("rows = %d, want 2", tbl.Rows())
	}
}

func TestTableRejectsCycles(t *testing.T) {
	tbl := NewTable("x")
	wrapper := NewLayout(Row).Add(tbl, 1)
	defer func() {
		if recover() == nil {
			t.Error("expected panic adding an ancestor as a cell")
		}
	}()
	tbl.AddRow(wrapper)
}

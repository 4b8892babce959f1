package panes

// Plain is a panel with an optional border and an optional background fill.
type Plain struct {
	Frame
	fill rune
}

// NewPlain creates an empty, borderless panel.
func NewPlain() *Plain {
	return &Plain{}
}

// NewItem creates the stock demo panel: a single border around a short
// greeting.
func NewItem() *Formatter {
	return NewFormatter(Text("This is me.")).Border(Single)
}

// Fill sets the background rune. Zero leaves the area untouched.
func (p *Plain) Fill(r rune) *Plain {
	p.fill = r
	return p
}

// Border sets the border line style.
func (p *Plain) Border(s LineStyle) *Plain {
	p.SetBorder(s)
	return p
}

// Margin sets the inset between border and content.
func (p *Plain) Margin(n int) *Plain {
	p.SetMargin(n)
	return p
}

// Title sets a border title.
func (p *Plain) Title(pos TitlePos, text string) *Plain {
	p.SetTitle(pos, text)
	return p
}

// Render draws the border and fill.
func (p *Plain) Render(c *Canvas) {
	defer p.begin(c)()
	if p.fill != 0 {
		c.Fill(RuneCell(p.fill))
	}
}

package panes

import "math"

// ProgressBar draws progress as a line that runs solid up to the filled
// point and dashed after it.
type ProgressBar struct {
	Frame
	progress float64
	total    float64
}

// NewProgressBar creates a bar measuring progress out of total.
func NewProgressBar(total float64) *ProgressBar {
	return &ProgressBar{total: total}
}

// Set updates the progress.
func (p *ProgressBar) Set(progress float64) *ProgressBar {
	p.progress = progress
	return p
}

// Add advances the progress by delta.
func (p *ProgressBar) Add(delta float64) *ProgressBar {
	p.progress += delta
	return p
}

// Total updates the total.
func (p *ProgressBar) Total(total float64) *ProgressBar {
	p.total = total
	return p
}

// Progress returns the current progress.
func (p *ProgressBar) Progress() float64 {
	return p.progress
}

// Border sets the border line style.
func (p *ProgressBar) Border(s LineStyle) *ProgressBar {
	p.SetBorder(s)
	return p
}

// Margin sets the inset between border and content.
func (p *ProgressBar) Margin(n int) *ProgressBar {
	p.SetMargin(n)
	return p
}

// Title sets a border title.
func (p *ProgressBar) Title(pos TitlePos, text string) *ProgressBar {
	p.SetTitle(pos, text)
	return p
}

// filled returns how many of w cells are solid.
func (p *ProgressBar) filled(w int) int {
	if p.total <= 0 {
		return 0
	}
	f := math.Floor(float64(w) * p.progress / p.total)
	switch {
	case math.IsNaN(f) || f < 0:
		return 0
	case f > float64(w):
		return w
	}
	return int(f)
}

// stamp marks row y with single cells up to the filled point and dashed
// cells after it.
func (p *ProgressBar) stamp(c *Canvas, y int) {
	w := c.Width()
	n := p.filled(w)
	c.DrawHorizontal(0, y, n, MarkerCell(Single))
	c.DrawHorizontal(n, y, w-n, MarkerCell(Dashed))
}

// Render draws the bar across the middle row and resolves it at once, so it
// never joins the lines around it.
func (p *ProgressBar) Render(c *Canvas) {
	defer p.begin(c)()

	w, h := c.Size()
	if w <= 0 || h <= 0 {
		return
	}
	c.Within(0, h/2, w, 1, func() {
		p.stamp(c, 0)
		Boxify(c)
	})
}

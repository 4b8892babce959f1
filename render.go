package panes

// Render draws n into the current area of c, then resolves every marker left
// anywhere on the canvas. Layouts without a bordered ancestor leave their
// dividers unresolved, so this is the entry point for whole frames.
func Render(c *Canvas, n Node) {
	n.Render(c)

	a := c.Area()
	w, h := c.BufferSize()
	c.Within(-a.X, -a.Y, w, h, func() { Boxify(c) })
}

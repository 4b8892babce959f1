// Package tcellscreen shows panes canvases on a tcell screen and reads keys
// from it.
package tcellscreen

import (
	"github.com/gdamore/tcell/v2"
	"github.com/kungfusheep/panes"
	"github.com/mattn/go-runewidth"
)

// Blit copies the canvas onto the screen with its top-left corner at (x, y).
// It does not call Show.
func Blit(s tcell.Screen, c *panes.Canvas, x, y int, style tcell.Style) {
	for row, line := range c.Lines() {
		col := 0
		for _, r := range line {
			s.SetContent(x+col, y+row, r, nil, style)
			col += max(runewidth.RuneWidth(r), 1)
		}
	}
}

// Draw renders root into a cleared canvas, copies it to the top-left of the
// screen and shows it.
func Draw(s tcell.Screen, c *panes.Canvas, root panes.Node) {
	c.ResetArea()
	c.Clear()
	panes.Render(c, root)
	s.Clear()
	Blit(s, c, 0, 0, tcell.StyleDefault)
	s.Show()
}

// Keys is a panes.KeySource reading key events from a tcell screen.
// Events other than keys, and keys with no single rune equivalent, are
// dropped, as are keys that arrive while the buffer is full. Resize events
// are reported on Resized.
type Keys struct {
	keys    panes.KeyChan
	resized chan struct{}
	done    chan struct{}
}

// NewKeys starts reading events from s. Reading stops when the screen is
// finalized, after which PollKey reports io.EOF.
func NewKeys(s tcell.Screen) *Keys {
	k := &Keys{
		keys:    make(panes.KeyChan, 64),
		resized: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	go k.run(s)
	return k
}

func (k *Keys) run(s tcell.Screen) {
	defer close(k.done)
	defer close(k.keys)
	for {
		switch ev := s.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			select {
			case k.resized <- struct{}{}:
			default:
			}
		case *tcell.EventKey:
			r, ok := keyRune(ev)
			if !ok {
				continue
			}
			select {
			case k.keys <- r:
			default:
			}
		}
	}
}

// PollKey implements panes.KeySource.
func (k *Keys) PollKey() (rune, bool, error) {
	return k.keys.PollKey()
}

// Resized receives a value after the screen size changes.
func (k *Keys) Resized() <-chan struct{} {
	return k.resized
}

func keyRune(ev *tcell.EventKey) (rune, bool) {
	switch ev.Key() {
	case tcell.KeyRune:
		return ev.Rune(), true
	case tcell.KeyEnter:
		return panes.KeyEnter, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return panes.KeyBackspace, true
	case tcell.KeyEscape:
		return panes.KeyEscape, true
	case tcell.KeyCtrlC:
		return panes.KeyCtrlC, true
	case tcell.KeyCtrlD:
		return panes.KeyCtrlD, true
	case tcell.KeyTab:
		return '\t', true
	}
	return 0, false
}

package layoutfile

import (
	"fmt"
	"strings"

	"github.com/kungfusheep/panes"
	"github.com/pkg/errors"
)

var styles = map[string]panes.LineStyle{
	"":       panes.None,
	"none":   panes.None,
	"single": panes.Single,
	"double": panes.Double,
	"dashed": panes.Dashed,
}

var aligns = map[string]panes.Align{
	"":       panes.AlignLeft,
	"left":   panes.AlignLeft,
	"center": panes.AlignCenter,
	"right":  panes.AlignRight,
}

var valigns = map[string]panes.VAlign{
	"":       panes.AlignTop,
	"top":    panes.AlignTop,
	"middle": panes.AlignMiddle,
	"bottom": panes.AlignBottom,
}

var titles = map[string]panes.TitlePos{
	"top-left":      panes.TitleTopLeft,
	"top-center":    panes.TitleTopCenter,
	"top-right":     panes.TitleTopRight,
	"bottom-left":   panes.TitleBottomLeft,
	"bottom-center": panes.TitleBottomCenter,
	"bottom-right":  panes.TitleBottomRight,
}

// Build turns the document's root node into a panes node tree.
func Build(doc *Document) (panes.Node, error) {
	return build(&doc.Root, "root")
}

func build(n *Node, path string) (panes.Node, error) {
	frame, err := frameOf(n, path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(n.Type) {
	case "plain", "":
		p := panes.NewPlain()
		p.Frame = frame
		if n.Fill != "" {
			p.Fill([]rune(n.Fill)[0])
		}
		return p, nil

	case "text":
		return formatter(n, frame, path)

	case "progress":
		p := panes.NewProgressBar(n.Total).Set(n.Progress)
		p.Frame = frame
		return p, nil

	case "layout":
		return layout(n, frame, path)

	case "table":
		return table(n, frame, path)
	}
	return nil, errors.Wrapf(ErrUnknownNode, "%s: %q", path, n.Type)
}

func frameOf(n *Node, path string) (panes.Frame, error) {
	var f panes.Frame
	border, err := style(n.Border, path+".border")
	if err != nil {
		return f, err
	}
	f.SetBorder(border)
	f.SetMargin(n.Margin)
	for name, text := range n.Titles {
		pos, ok := titles[strings.ToLower(name)]
		if !ok {
			return f, errors.Wrapf(ErrUnknownTitle, "%s.titles: %q", path, name)
		}
		f.SetTitle(pos, text)
	}
	return f, nil
}

func formatter(n *Node, frame panes.Frame, path string) (*panes.Formatter, error) {
	var v panes.Value
	switch {
	case n.Lines != nil:
		v = panes.Lines(n.Lines...)
	case n.Int != nil:
		v = panes.Int(*n.Int)
	case n.Float != nil:
		v = panes.Float(*n.Float)
	default:
		v = panes.Text(n.Text)
	}

	h, ok := aligns[strings.ToLower(n.Align)]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownStyle, "%s.align: %q", path, n.Align)
	}
	va, ok := valigns[strings.ToLower(n.VAlign)]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownStyle, "%s.valign: %q", path, n.VAlign)
	}

	f := panes.NewFormatter(v).
		Align(h, va).
		WordWrap(n.WordWrap).
		Grouping(n.Grouping)
	f.Frame = frame
	if n.Pad != "" {
		f.Pad([]rune(n.Pad)[0])
	}
	if n.Precision != nil {
		f.Precision(*n.Precision)
	}
	return f, nil
}

func layout(n *Node, frame panes.Frame, path string) (*panes.Layout, error) {
	var dir panes.Direction
	switch strings.ToLower(n.Direction) {
	case "", "row":
		dir = panes.Row
	case "column", "col":
		dir = panes.Column
	default:
		return nil, errors.Wrapf(ErrUnknownStyle, "%s.direction: %q", path, n.Direction)
	}
	divider, err := style(n.Divider, path+".divider")
	if err != nil {
		return nil, err
	}

	l := panes.NewLayout(dir).Divider(divider)
	l.Frame = frame
	for i := range n.Children {
		childPath := fmt.Sprintf("%s.children[%d]", path, i)
		child, err := build(&n.Children[i], childPath)
		if err != nil {
			return nil, err
		}
		w, err := weight(n.Children[i].Weight, childPath)
		if err != nil {
			return nil, err
		}
		l.Add(child, w)
	}
	return l, nil
}

func table(n *Node, frame panes.Frame, path string) (*panes.Table, error) {
	divider, err := style(n.Divider, path+".divider")
	if err != nil {
		return nil, err
	}
	headerDivider, err := style(n.HeaderDivider, path+".header_divider")
	if err != nil {
		return nil, err
	}

	cols := make([]panes.Align, len(n.Aligns))
	for i, name := range n.Aligns {
		a, ok := aligns[strings.ToLower(name)]
		if !ok {
			return nil, errors.Wrapf(ErrUnknownStyle, "%s.aligns[%d]: %q", path, i, name)
		}
		cols[i] = a
	}
	for i, w := range n.Weights {
		if _, err := weight(w, fmt.Sprintf("%s.weights[%d]", path, i)); err != nil {
			return nil, err
		}
	}

	t := panes.NewTable(n.Header...).
		Divider(divider).
		HeaderDivider(headerDivider).
		Aligns(cols...).
		Weights(n.Weights...).
		SetRows(n.Rows)
	t.Frame = frame
	return t, nil
}

func style(name, path string) (panes.LineStyle, error) {
	s, ok := styles[strings.ToLower(name)]
	if !ok {
		return panes.None, errors.Wrapf(ErrUnknownStyle, "%s: %q", path, name)
	}
	return s, nil
}

// weight defaults a missing weight to an equal share.
func weight(w float64, path string) (float64, error) {
	switch {
	case w == 0:
		return 1, nil
	case !(w > 0):
		return 0, errors.Errorf("%s: weight %v must be positive", path, w)
	}
	return w, nil
}

// Size returns the document canvas size, using fallback for any dimension
// the document leaves at zero.
func (d *Document) Size(fallbackWidth, fallbackHeight int) (width, height int) {
	width, height = d.Width, d.Height
	if width <= 0 {
		width = fallbackWidth
	}
	if height <= 0 {
		height = fallbackHeight
	}
	return width, height
}

// Summary describes the document's root in one line, for logging.
func (d *Document) Summary() string {
	kind := d.Root.Type
	if kind == "" {
		kind = "plain"
	}
	return fmt.Sprintf("%dx%d %s with %d children", d.Width, d.Height, kind, len(d.Root.Children))
}

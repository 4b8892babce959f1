package layoutfile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/kungfusheep/panes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var splitFrame = []string{
	"┌────────┬─────────┐",
	"│        │         │",
	"│        │         │",
	"│        │         │",
	"└────────┴─────────┘",
}

func render(t *testing.T, doc *Document) []string {
	t.Helper()
	root, err := Build(doc)
	require.NoError(t, err)

	w, h := doc.Size(80, 24)
	c := panes.NewCanvas(w, h)
	panes.Render(c, root)
	return c.Lines()
}

func TestLoadSplit(t *testing.T) {
	for _, name := range []string{"split.yaml", "split.toml"} {
		t.Run(name, func(t *testing.T) {
			doc, err := Load(filepath.Join("testdata", name))
			require.NoError(t, err)
			assert.Equal(t, 20, doc.Width)
			assert.Equal(t, 5, doc.Height)
			assert.Len(t, doc.Root.Children, 2)

			assert.Equal(t, splitFrame, render(t, doc))
		})
	}
}

func TestLoadDashboard(t *testing.T) {
	doc, err := Load(filepath.Join("testdata", "dashboard.yaml"))
	require.NoError(t, err)

	lines := render(t, doc)
	require.Len(t, lines, 14)
	assert.True(t, strings.HasPrefix(lines[0], "╔╣jobs╠"), "top row %q", lines[0])
	assert.Contains(t, lines[1], "name")
	assert.Contains(t, lines[3], "running")
	assert.Contains(t, lines[4], "queued")
	assert.Contains(t, lines[11], "all systems nominal")
	for _, l := range lines {
		assert.NotContains(t, l, "1", "unresolved marker in %q", l)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"unknown node", "root: {type: gauge}", ErrUnknownNode},
		{"unknown border", "root: {type: plain, border: wavy}", ErrUnknownStyle},
		{"unknown divider", "root: {type: layout, divider: zigzag}", ErrUnknownStyle},
		{"unknown direction", "root: {type: layout, direction: diagonal}", ErrUnknownStyle},
		{"unknown align", "root: {type: text, align: justify}", ErrUnknownStyle},
		{"unknown title", "root: {type: plain, titles: {middle: x}}", ErrUnknownTitle},
		{"nested", "root: {type: layout, children: [{type: plain}, {type: knob}]}", ErrUnknownNode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse([]byte(tt.doc), YAML)
			require.NoError(t, err)
			_, err = Build(doc)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestBuildReportsPath(t *testing.T) {
	doc, err := Parse([]byte("root: {type: layout, children: [{type: plain}, {type: knob}]}"), YAML)
	require.NoError(t, err)
	_, err = Build(doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "root.children[1]")
}

func TestBuildRejectsNegativeWeight(t *testing.T) {
	doc, err := Parse([]byte("root: {type: layout, children: [{type: plain, weight: -2}]}"), YAML)
	require.NoError(t, err)
	_, err = Build(doc)
	assert.ErrorContains(t, err, "must be positive")
}

func TestFormatOf(t *testing.T) {
	f, err := FormatOf("a/b.YML")
	require.NoError(t, err)
	assert.Equal(t, YAML, f)

	f, err = FormatOf("c.toml")
	require.NoError(t, err)
	assert.Equal(t, TOML, f)

	_, err = FormatOf("layout.json")
	assert.ErrorIs(t, err, ErrFormat)

	_, err = Parse(nil, Format("xml"))
	assert.ErrorIs(t, err, ErrFormat)
}

func TestParseSyntaxError(t *testing.T) {
	_, err := Parse([]byte("root: [unterminated"), YAML)
	assert.ErrorContains(t, err, "yaml")

	_, err = Parse([]byte("root = {"), TOML)
	assert.ErrorContains(t, err, "toml")
}

func TestDocumentSize(t *testing.T) {
	doc := &Document{Width: 30}
	w, h := doc.Size(80, 24)
	assert.Equal(t, 30, w)
	assert.Equal(t, 24, h)
}

func TestWatchReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "live.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: 10\nroot: {type: plain}\n"), 0o644))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	docs := make(chan *Document, 8)
	go w.Run(ctx, func(doc *Document, err error) {
		if err != nil {
			return
		}
		select {
		case docs <- doc:
		default:
		}
	})

	require.NoError(t, os.WriteFile(path, []byte("width: 33\nroot: {type: plain}\n"), 0o644))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case doc := <-docs:
			if doc.Width == 33 {
				return
			}
		case <-deadline:
			t.Fatal("no reload after write")
		}
	}
}

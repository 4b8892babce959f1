// Package layoutfile describes panes node trees in YAML or TOML files.
//
// A document names the canvas size and a root node. Each node has a type
// (plain, text, progress, layout or table), the frame settings shared by
// every node, and the fields of its own type:
//
//	width: 40
//	height: 10
//	root:
//	  type: layout
//	  direction: row
//	  border: single
//	  divider: single
//	  children:
//	    - type: text
//	      text: hello
//	    - type: progress
//	      progress: 0.3
//	      total: 1
package layoutfile

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownNode is returned for a node type Build does not know.
	ErrUnknownNode = errors.New("unknown node type")
	// ErrUnknownStyle is returned for an unknown line style, alignment or
	// direction name.
	ErrUnknownStyle = errors.New("unknown style")
	// ErrUnknownTitle is returned for a title slot other than the six
	// top and bottom positions.
	ErrUnknownTitle = errors.New("unknown title position")
	// ErrFormat is returned for a file format other than YAML or TOML.
	ErrFormat = errors.New("unsupported layout format")
)

// Format is the encoding of a layout document.
type Format string

const (
	YAML Format = "yaml"
	TOML Format = "toml"
)

// Document is a parsed layout file.
type Document struct {
	Width  int  `yaml:"width" toml:"width"`
	Height int  `yaml:"height" toml:"height"`
	Root   Node `yaml:"root" toml:"root"`
}

// Node is one node of a layout document. Fields that do not apply to the
// node's type are ignored.
type Node struct {
	Type   string            `yaml:"type" toml:"type"`
	Weight float64           `yaml:"weight,omitempty" toml:"weight,omitempty"`
	Border string            `yaml:"border,omitempty" toml:"border,omitempty"`
	Margin int               `yaml:"margin,omitempty" toml:"margin,omitempty"`
	Titles map[string]string `yaml:"titles,omitempty" toml:"titles,omitempty"`

	// plain
	Fill string `yaml:"fill,omitempty" toml:"fill,omitempty"`

	// text
	Text      string   `yaml:"text,omitempty" toml:"text,omitempty"`
	Lines     []string `yaml:"lines,omitempty" toml:"lines,omitempty"`
	Int       *int64   `yaml:"int,omitempty" toml:"int,omitempty"`
	Float     *float64 `yaml:"float,omitempty" toml:"float,omitempty"`
	Align     string   `yaml:"align,omitempty" toml:"align,omitempty"`
	VAlign    string   `yaml:"valign,omitempty" toml:"valign,omitempty"`
	Pad       string   `yaml:"pad,omitempty" toml:"pad,omitempty"`
	Precision *int     `yaml:"precision,omitempty" toml:"precision,omitempty"`
	WordWrap  bool     `yaml:"wordwrap,omitempty" toml:"wordwrap,omitempty"`
	Grouping  bool     `yaml:"grouping,omitempty" toml:"grouping,omitempty"`

	// progress
	Progress float64 `yaml:"progress,omitempty" toml:"progress,omitempty"`
	Total    float64 `yaml:"total,omitempty" toml:"total,omitempty"`

	// layout
	Direction string `yaml:"direction,omitempty" toml:"direction,omitempty"`
	Divider   string `yaml:"divider,omitempty" toml:"divider,omitempty"`
	Children  []Node `yaml:"children,omitempty" toml:"children,omitempty"`

	// table
	Header        []string  `yaml:"header,omitempty" toml:"header,omitempty"`
	Rows          [][]any   `yaml:"rows,omitempty" toml:"rows,omitempty"`
	Aligns        []string  `yaml:"aligns,omitempty" toml:"aligns,omitempty"`
	Weights       []float64 `yaml:"weights,omitempty" toml:"weights,omitempty"`
	HeaderDivider string    `yaml:"header_divider,omitempty" toml:"header_divider,omitempty"`
}

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	}
	return "", errors.Wrapf(ErrFormat, "file %s", path)
}

// Parse decodes a layout document.
func Parse(data []byte, format Format) (*Document, error) {
	var doc Document
	switch format {
	case YAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, errors.Wrap(err, "failed to parse yaml layout")
		}
	case TOML:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, errors.Wrap(err, "failed to parse toml layout")
		}
	default:
		return nil, errors.Wrapf(ErrFormat, "format %q", format)
	}
	return &doc, nil
}

// Load reads and parses the layout file at path.
func Load(path string) (*Document, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read layout file")
	}
	doc, err := Parse(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, "layout file %s", path)
	}
	return doc, nil
}

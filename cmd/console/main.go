// console: a line-input console drawn in place in the terminal.
//
// Typed keys go to the command line at the bottom; enter moves the line
// into the history pane above it. Ctrl-D on an empty line or Ctrl-C exits.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kungfusheep/panes"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

const cursor = "|"

// console holds the two panes the keys edit.
type console struct {
	root *panes.Layout
	hist *panes.Formatter
	cmd  *panes.Formatter
	line []rune
	keep int
}

// newConsole builds the console panes. The history never holds more lines
// than rows, the height of the whole console.
func newConsole(title string, rows int) *console {
	c := &console{
		keep: rows,
		hist: panes.NewFormatter(panes.Lines()).Align(panes.AlignLeft, panes.AlignBottom),
		cmd:  panes.NewFormatter(panes.Text(cursor)),
	}
	c.root = panes.NewLayout(panes.Column).
		Border(panes.Single).
		Divider(panes.Single).
		Title(panes.TitleTopLeft, title).
		Add(c.hist, 1).
		Add(c.cmd, 1.1)
	return c
}

// key applies one key press. It returns false when the console should exit.
func (c *console) key(r rune) bool {
	switch r {
	case panes.KeyEnter, panes.KeyReturn:
		c.hist.Append(string(c.line)).Keep(c.keep)
		c.line = c.line[:0]
	case panes.KeyBackspace, '\b':
		if len(c.line) > 0 {
			c.line = c.line[:len(c.line)-1]
		}
	case panes.KeyCtrlD:
		if len(c.line) == 0 {
			return false
		}
	case panes.KeyCtrlC:
		return false
	default:
		if r >= ' ' {
			c.line = append(c.line, r)
		}
	}
	c.cmd.SetText(string(c.line) + cursor)
	return true
}

func main() {
	var (
		width    = pflag.Int("width", 80, "console width in columns")
		height   = pflag.Int("height", 20, "console height in rows")
		title    = pflag.String("title", "Test Console", "title shown on the top border")
		logFile  = pflag.String("log-file", "", "write debug logs to this file")
		logLevel = pflag.String("log-level", "info", "log level (debug, info, warn, error)")
	)
	pflag.Parse()

	if err := run(*width, *height, *title, *logFile, *logLevel); err != nil {
		fmt.Fprintln(os.Stderr, "console:", err)
		os.Exit(1)
	}
}

func run(width, height int, title, logFile, logLevel string) error {
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()

		level, err := zerolog.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("log level: %w", err)
		}
		panes.SetLogger(zerolog.New(f).Level(level).With().Timestamp().Logger())
	}

	tty, err := panes.OpenTTY(os.Stdin)
	if err != nil {
		return err
	}
	if err := tty.Cbreak(); err != nil {
		return err
	}
	defer tty.Restore()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	con := newConsole(title, height)
	loop := &panes.Loop{
		Canvas: panes.NewCanvas(width, height),
		Root:   con.root,
		Keys:   tty,
		Out:    os.Stdout,
		OnKey:  con.key,
	}
	return loop.Run(ctx)
}

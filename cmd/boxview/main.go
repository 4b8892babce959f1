// boxview: render a YAML or TOML layout file to the terminal.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/gdamore/tcell/v2"
	"github.com/kungfusheep/panes"
	"github.com/kungfusheep/panes/layoutfile"
	"github.com/kungfusheep/panes/tcellscreen"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type options struct {
	watch    bool
	tcell    bool
	width    int
	height   int
	logLevel string
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "boxview FILE",
		Short: "Render a layout file as box-drawn panes",
		Long: `boxview reads a layout description (.yaml, .yml or .toml) and prints the
rendered panes. With --watch it redraws whenever the file changes; with
--tcell it takes over the terminal until q or escape is pressed.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(cmd.ErrOrStderr(), opts.logLevel)
			if err != nil {
				return err
			}
			panes.SetLogger(log)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if opts.tcell {
				return runScreen(ctx, args[0], opts, log)
			}
			return runPrint(ctx, cmd.OutOrStdout(), args[0], opts, log)
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&opts.watch, "watch", "w", false, "redraw when the file changes")
	flags.BoolVar(&opts.tcell, "tcell", false, "draw full screen with tcell")
	flags.IntVar(&opts.width, "width", 0, "canvas width when the file sets none (default: terminal width)")
	flags.IntVar(&opts.height, "height", 0, "canvas height when the file sets none (default: terminal height)")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	return cmd
}

func newLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("log level: %w", err)
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w}).Level(lvl).With().Timestamp().Logger(), nil
}

// fallbackSize is the canvas size used when the document sets none.
func fallbackSize(opts options) (int, int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		w, h = 80, 24
	}
	if opts.width > 0 {
		w = opts.width
	}
	if opts.height > 0 {
		h = opts.height
	}
	return w, h
}

// frame loads path and renders it onto a canvas sized for the document.
func frame(path string, opts options) (*panes.Canvas, error) {
	doc, err := layoutfile.Load(path)
	if err != nil {
		return nil, err
	}
	root, err := layoutfile.Build(doc)
	if err != nil {
		return nil, err
	}
	c := panes.NewCanvas(doc.Size(fallbackSize(opts)))
	panes.Render(c, root)
	return c, nil
}

func runPrint(ctx context.Context, out io.Writer, path string, opts options, log zerolog.Logger) error {
	c, err := frame(path, opts)
	if err != nil {
		return err
	}
	if err := c.Print(out, false); err != nil {
		return err
	}
	if !opts.watch {
		return nil
	}

	_, lastHeight := c.BufferSize()
	return layoutfile.Watch(ctx, path, func(_ *layoutfile.Document, err error) {
		if err != nil {
			log.Warn().Err(err).Str("file", path).Msg("reload failed")
			return
		}
		next, err := frame(path, opts)
		if err != nil {
			log.Warn().Err(err).Str("file", path).Msg("reload failed")
			return
		}
		// rewind over the previous frame, which may differ in height
		fmt.Fprint(out, ansi.CursorUp(lastHeight))
		if err := next.Print(out, false); err != nil {
			log.Error().Err(err).Msg("print failed")
		}
		_, lastHeight = next.BufferSize()
	})
}

func runScreen(ctx context.Context, path string, opts options, log zerolog.Logger) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer s.Fini()

	load := func() (panes.Node, *panes.Canvas, error) {
		doc, err := layoutfile.Load(path)
		if err != nil {
			return nil, nil, err
		}
		root, err := layoutfile.Build(doc)
		if err != nil {
			return nil, nil, err
		}
		return root, panes.NewCanvas(doc.Size(s.Size())), nil
	}

	root, c, err := load()
	if err != nil {
		return err
	}
	tcellscreen.Draw(s, c, root)

	redraw := func() {
		next, nc, err := load()
		if err != nil {
			log.Warn().Err(err).Str("file", path).Msg("reload failed")
			return
		}
		root, c = next, nc
		tcellscreen.Draw(s, c, root)
	}

	reloads := make(chan struct{}, 1)
	if opts.watch {
		w, err := layoutfile.NewWatcher(path)
		if err != nil {
			return err
		}
		defer w.Close()
		go w.Run(ctx, func(*layoutfile.Document, error) {
			select {
			case reloads <- struct{}{}:
			default:
			}
		})
	}

	keys := tcellscreen.NewKeys(s)
	tick := time.NewTicker(panes.DefaultPollInterval)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-keys.Resized():
			s.Sync()
			redraw()
		case <-reloads:
			redraw()
		case <-tick.C:
			for {
				r, ok, err := keys.PollKey()
				if err != nil {
					return nil
				}
				if !ok {
					break
				}
				if r == 'q' || r == panes.KeyEscape || r == panes.KeyCtrlC {
					return nil
				}
			}
		}
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "boxview:", err)
		os.Exit(1)
	}
}

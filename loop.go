package panes

import (
	"context"
	"fmt"
	"io"
	"time"
)

// DefaultPollInterval is how long Loop sleeps after an empty key poll.
const DefaultPollInterval = 5 * time.Millisecond

// Loop drives a render cycle from key presses. Each key is handed to OnKey,
// which may change the tree's leaf data, and the frame is then redrawn in
// place. The canvas and tree are only touched from the goroutine calling Run.
type Loop struct {
	Canvas *Canvas
	Root   Node
	Keys   KeySource
	Out    io.Writer

	// OnKey handles a key press. Returning false stops the loop.
	OnKey func(r rune) bool

	// Interval between polls when no key is waiting. Zero means
	// DefaultPollInterval.
	Interval time.Duration

	drawn bool
}

// Draw clears the canvas, renders the tree and prints it. Every frame after
// the first is drawn over the previous one.
func (l *Loop) Draw() error {
	l.Canvas.ResetArea()
	l.Canvas.Clear()
	Render(l.Canvas, l.Root)
	if err := l.Canvas.Print(l.Out, l.drawn); err != nil {
		return err
	}
	l.drawn = true
	return nil
}

// Run draws the first frame and then processes keys until OnKey returns
// false, the key source ends, or ctx is cancelled.
func (l *Loop) Run(ctx context.Context) error {
	interval := l.Interval
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	logger.Debug().Int("width", l.Canvas.width).Int("height", l.Canvas.height).Msg("loop start")
	defer logger.Debug().Msg("loop stop")

	if err := l.Draw(); err != nil {
		return err
	}

	timer := time.NewTimer(interval)
	defer timer.Stop()

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		r, ok, err := l.Keys.PollKey()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			logger.Error().Err(err).Msg("key poll failed")
			return fmt.Errorf("poll key: %w", err)
		}

		if !ok {
			timer.Reset(interval)
			select {
			case <-ctx.Done():
				return nil
			case <-timer.C:
			}
			continue
		}

		if l.OnKey != nil && !l.OnKey(r) {
			return nil
		}
		if err := l.Draw(); err != nil {
			return err
		}
	}
}

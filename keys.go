package panes

import "io"

// Keys the console and loop treat specially.
const (
	KeyCtrlC     rune = 0x03
	KeyCtrlD     rune = 0x04
	KeyEnter     rune = '\n'
	KeyReturn    rune = '\r'
	KeyEscape    rune = 0x1b
	KeyBackspace rune = 0x7f
)

// KeySource delivers single key presses without blocking. PollKey returns
// ok false when no key is waiting. Once the source is exhausted it returns
// io.EOF.
type KeySource interface {
	PollKey() (r rune, ok bool, err error)
}

// KeyChan is a KeySource fed by sending on the channel. Closing the channel
// ends the source.
type KeyChan chan rune

// PollKey implements KeySource.
func (k KeyChan) PollKey() (rune, bool, error) {
	select {
	case r, open := <-k:
		if !open {
			return 0, false, io.EOF
		}
		return r, true, nil
	default:
		return 0, false, nil
	}
}

// Send queues the runes of s, blocking while the channel is full.
func (k KeyChan) Send(s string) {
	for _, r := range s {
		k <- r
	}
}

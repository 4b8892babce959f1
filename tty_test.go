//go:build linux || darwin

package panes

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestOpenTTYRejectsRegularFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "keys"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if _, err := OpenTTY(f); !errors.Is(err, ErrNotTerminal) {
		t.Errorf("err = %v, want ErrNotTerminal", err)
	}
}

func TestTTYDecodeWaitsForFullRune(t *testing.T) {
	b := []byte("é!")
	tty := &TTY{pending: append([]byte(nil), b[:1]...)}

	if _, ok := tty.decode(); ok {
		t.Fatal("decoded a partial rune")
	}

	tty.pending = append(tty.pending, b[1:]...)
	for _, want := range []rune{'é', '!'} {
		r, ok := tty.decode()
		if !ok || r != want {
			t.Errorf("decode = %q, %v; want %q", r, ok, want)
		}
	}
	if _, ok := tty.decode(); ok {
		t.Error("decoded from empty buffer")
	}
}

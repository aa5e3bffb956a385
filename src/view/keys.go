package view

import (
	"context"
	"sync/atomic"

	"github.com/pkg/errors"
)

// Key is the discrete key press event the game reacts to
type Key int

const (
	KeyUnknown Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyDelete
	KeyEscape
	KeyHelp
	KeySoup
	KeyQuit
)

// ErrInterrupted is returned by the key pump when the user requested the termination
var ErrInterrupted = errors.New("interrupted")

// Keyboard queues the key presses read by the terminal
// Next blocks until a key is pressed, Poll never blocks
type Keyboard struct {
	keys    chan Key
	dropped int64
}

// NewKeyboard creates the Keyboard with the queue of the size capacity
func NewKeyboard(capacity int) *Keyboard {
	return &Keyboard{keys: make(chan Key, capacity)}
}

// Press queues the key, the key is dropped and counted if the queue is full
func (k *Keyboard) Press(key Key) bool {
	select {
	case k.keys <- key:
		return true
	default:
		atomic.AddInt64(&k.dropped, 1)
		return false
	}
}

// Dropped returns the count of the keys dropped since the last call
func (k *Keyboard) Dropped() int {
	return int(atomic.SwapInt64(&k.dropped, 0))
}

// Next waits for the next key press or the context cancellation
func (k *Keyboard) Next(ctx context.Context) (Key, error) {
	select {
	case key := <-k.keys:
		return key, nil
	case <-ctx.Done():
		return KeyUnknown, ctx.Err()
	}
}

// Poll returns the pending key press if any
func (k *Keyboard) Poll() (Key, bool) {
	select {
	case key := <-k.keys:
		return key, true
	default:
		return KeyUnknown, false
	}
}

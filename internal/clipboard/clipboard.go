// Package clipboard is the port used to hand share links to the system
// clipboard.
package clipboard

import (
	"context"
	"errors"
	"fmt"
	"sync"

	sysclip "github.com/atotto/clipboard"
)

// ErrUnavailable is returned when no clipboard utility is present.
var ErrUnavailable = errors.New("clipboard unavailable")

// Writer copies text somewhere the user can paste it from.
type Writer interface {
	WriteText(ctx context.Context, text string) error
}

// System writes to the OS clipboard.
type System struct{}

func (System) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if sysclip.Unsupported {
		return ErrUnavailable
	}
	if err := sysclip.WriteAll(text); err != nil {
		return fmt.Errorf("writing clipboard: %w", err)
	}
	return nil
}

// Recorder keeps every write in memory. A non-nil Err makes every write fail.
type Recorder struct {
	mu     sync.Mutex
	Err    error
	writes []string
}

func (r *Recorder) WriteText(_ context.Context, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.writes = append(r.writes, text)
	return nil
}

// Writes returns a copy of everything written so far.
func (r *Recorder) Writes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.writes...)
}

// Last returns the most recent write, or "" when nothing was written.
func (r *Recorder) Last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.writes) == 0 {
		return ""
	}
	return r.writes[len(r.writes)-1]
}

// Discard accepts every write and keeps nothing. Used by `share --no-copy`.
type Discard struct{}

func (Discard) WriteText(context.Context, string) error { return nil }

// Package mainloop schedules work onto the GTK main thread.
package mainloop

import "github.com/diamondburned/gotk4/pkg/glib/v2"

// Poster runs fn on the main loop at some later point.
// Implementations must be safe to call from any goroutine.
type Poster func(fn func())

// IdlePoster queues fn as a one-shot GLib idle source.
func IdlePoster(fn func()) {
	if fn == nil {
		return
	}
	glib.IdleAdd(func() bool {
		fn()
		return false
	})
}

// Immediate runs fn synchronously. Tests and the CLI use it where no main
// loop exists.
func Immediate(fn func()) {
	if fn != nil {
		fn()
	}
}

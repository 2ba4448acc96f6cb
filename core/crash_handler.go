package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"

	"github.com/lixenwraith/vi-pong/terminal"
)

// Finisher restores the screen it owns; Fini must be safe to call twice
type Finisher interface {
	Fini()
}

var crashTerminal atomic.Pointer[Finisher]

// SetCrashTerminal registers the active terminal for cleanup on panic
func SetCrashTerminal(f Finisher) {
	if f == nil {
		crashTerminal.Store(nil)
		return
	}
	crashTerminal.Store(&f)
}

// HandleCrash restores the terminal, prints the panic with its stack trace and exits
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if f := crashTerminal.Load(); f != nil {
		(*f).Fini()
	} else {
		terminal.EmergencyReset(os.Stdout)
	}

	os.Stdout.Sync()

	// Raw mode may still be active on some terminals, so lines end in \r\n
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mVI-PONG CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs fn in a new goroutine that routes panics to HandleCrash
// Use this instead of the go keyword so a crash never leaves the terminal raw
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}

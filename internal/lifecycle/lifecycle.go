// Package lifecycle runs cleanup handlers when the process receives SIGINT or SIGTERM
// and then exits with the conventional 128+signal status.
package lifecycle

import (
	"os"
	"os/signal"
	"slices"
	"sync"
	"syscall"
)

// Handler receives the OS signal that triggered shutdown.
type Handler func(os.Signal)

// HandlerID identifies a registered handler. The zero value is never issued.
type HandlerID int64

type entry struct {
	id      HandlerID
	handler Handler
}

// Registry keeps handlers in registration order.
type Registry struct {
	mu      sync.Mutex
	nextID  HandlerID
	entries []entry
}

func (registry *Registry) Add(handler Handler) HandlerID {
	if handler == nil {
		return 0
	}

	registry.mu.Lock()
	defer registry.mu.Unlock()

	registry.nextID++
	registry.entries = append(registry.entries, entry{id: registry.nextID, handler: handler})
	return registry.nextID
}

func (registry *Registry) Remove(id HandlerID) {
	if id == 0 {
		return
	}

	registry.mu.Lock()
	defer registry.mu.Unlock()

	registry.entries = slices.DeleteFunc(registry.entries, func(e entry) bool {
		return e.id == id
	})
}

// Run calls every handler, newest first. A panicking handler does not stop the others.
func (registry *Registry) Run(sig os.Signal) {
	registry.mu.Lock()
	snapshot := slices.Clone(registry.entries)
	registry.mu.Unlock()

	for i := len(snapshot) - 1; i >= 0; i-- {
		callHandler(snapshot[i].handler, sig)
	}
}

func (registry *Registry) Len() int {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	return len(registry.entries)
}

func callHandler(handler Handler, sig os.Signal) {
	defer func() {
		_ = recover()
	}()
	handler(sig)
}

var (
	shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

	defaultRegistry = &Registry{}

	listenOnce sync.Once
	signals    chan os.Signal

	newSignalChan = func() chan os.Signal { return make(chan os.Signal, 1) }
	notify        = signal.Notify
	stopNotify    = signal.Stop
	exit          = os.Exit
)

// Register adds handler to the process-wide registry and starts listening for shutdown
// signals on first use.
func Register(handler Handler) HandlerID {
	if handler == nil {
		return 0
	}
	listenOnce.Do(listen)
	return defaultRegistry.Add(handler)
}

func Unregister(id HandlerID) {
	defaultRegistry.Remove(id)
}

func listen() {
	signals = newSignalChan()
	notify(signals, shutdownSignals...)

	go func(ch chan os.Signal) {
		sig := <-ch
		defaultRegistry.Run(sig)
		exit(exitCode(sig))
	}(signals)
}

func exitCode(sig os.Signal) int {
	switch sig {
	case os.Interrupt:
		return 130
	case syscall.SIGTERM:
		return 143
	default:
		return 1
	}
}

// reset restores the process-wide state (tests only).
func reset() {
	if signals != nil {
		stopNotify(signals)
	}
	signals = nil
	listenOnce = sync.Once{}
	defaultRegistry = &Registry{}

	newSignalChan = func() chan os.Signal { return make(chan os.Signal, 1) }
	notify = signal.Notify
	stopNotify = signal.Stop
	exit = os.Exit
}

package lifecycle

import (
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRegistryRunsNewestFirst(t *testing.T) {
	registry := &Registry{}
	var calls []string
	registry.Add(func(os.Signal) { calls = append(calls, "first") })
	registry.Add(func(os.Signal) { calls = append(calls, "second") })

	registry.Run(os.Interrupt)
	assert.Equal(t, []string{"second", "first"}, calls)
}

func TestRegistryRemove(t *testing.T) {
	registry := &Registry{}
	var calls []string
	first := registry.Add(func(os.Signal) { calls = append(calls, "first") })
	registry.Add(func(os.Signal) { calls = append(calls, "second") })

	registry.Remove(first)
	registry.Remove(first)
	registry.Remove(0)

	assert.Equal(t, 1, registry.Len())
	registry.Run(os.Interrupt)
	assert.Equal(t, []string{"second"}, calls)
}

func TestRegistryIssuesDistinctIDs(t *testing.T) {
	registry := &Registry{}
	first := registry.Add(func(os.Signal) {})
	second := registry.Add(func(os.Signal) {})

	assert.NotEqual(t, HandlerID(0), first)
	assert.NotEqual(t, first, second)
	assert.Equal(t, HandlerID(0), registry.Add(nil))
}

func TestRegistryPassesSignal(t *testing.T) {
	registry := &Registry{}
	var received os.Signal
	registry.Add(func(sig os.Signal) { received = sig })

	registry.Run(syscall.SIGTERM)
	assert.Equal(t, syscall.SIGTERM, received)
}

func TestSignalRunsHandlersAndExits(t *testing.T) {
	withSignalHarness(t, func(sigCh chan os.Signal, exitCh chan int) {
		var calls []string
		Register(func(os.Signal) { calls = append(calls, "first") })
		Register(func(os.Signal) { calls = append(calls, "second") })

		sigCh <- syscall.SIGINT
		waitExit(t, exitCh, syscall.SIGINT)
		assert.Equal(t, []string{"second", "first"}, calls)
	})
}

func TestUnregisterPreventsInvocation(t *testing.T) {
	withSignalHarness(t, func(sigCh chan os.Signal, exitCh chan int) {
		var called bool
		id := Register(func(os.Signal) { called = true })
		Unregister(id)

		sigCh <- syscall.SIGTERM
		waitExit(t, exitCh, syscall.SIGTERM)
		assert.False(t, called)
	})
}

func TestPanickingHandlerDoesNotStopOthers(t *testing.T) {
	withSignalHarness(t, func(sigCh chan os.Signal, exitCh chan int) {
		var called bool
		Register(func(os.Signal) { called = true })
		Register(func(os.Signal) { panic("boom") })

		sigCh <- syscall.SIGINT
		waitExit(t, exitCh, syscall.SIGINT)
		assert.True(t, called)
	})
}

func TestRegisterNilDoesNotListen(t *testing.T) {
	reset()
	t.Cleanup(reset)

	notified := false
	notify = func(chan<- os.Signal, ...os.Signal) { notified = true }

	assert.Equal(t, HandlerID(0), Register(nil))
	assert.False(t, notified)
}

func TestListenerSubscribesToShutdownSignals(t *testing.T) {
	withSignalHarness(t, func(chan os.Signal, chan int) {
		var subscribed []os.Signal
		notify = func(_ chan<- os.Signal, sigs ...os.Signal) { subscribed = sigs }

		Register(func(os.Signal) {})
		assert.Equal(t, []os.Signal{os.Interrupt, syscall.SIGTERM}, subscribed)
	})
}

func TestExitCodeMappings(t *testing.T) {
	assert.Equal(t, 130, exitCode(os.Interrupt))
	assert.Equal(t, 143, exitCode(syscall.SIGTERM))
	assert.Equal(t, 1, exitCode(syscall.Signal(0)))
}

func TestResetStopsSignalListener(t *testing.T) {
	withSignalHarness(t, func(chan os.Signal, chan int) {
		stopped := false
		stopNotify = func(chan<- os.Signal) { stopped = true }

		Register(func(os.Signal) {})
		reset()

		assert.True(t, stopped)
	})
}

func TestResetWithoutListener(t *testing.T) {
	reset()
	t.Cleanup(reset)

	stopped := false
	stopNotify = func(chan<- os.Signal) { stopped = true }
	reset()

	assert.False(t, stopped)
}

func withSignalHarness(t *testing.T, fn func(chan os.Signal, chan int)) {
	reset()
	t.Cleanup(reset)

	sigCh := make(chan os.Signal, 1)
	newSignalChan = func() chan os.Signal { return sigCh }
	notify = func(chan<- os.Signal, ...os.Signal) {}

	exitCh := make(chan int, 1)
	exit = func(code int) { exitCh <- code }

	fn(sigCh, exitCh)
}

func waitExit(t *testing.T, exitCh chan int, sig os.Signal) {
	t.Helper()
	select {
	case code := <-exitCh:
		assert.Equal(t, exitCode(sig), code)
	case <-time.After(time.Second):
		t.Fatalf("signal %v not handled", sig)
	}
}

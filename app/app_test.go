// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/glimmerui/glimmer/core"
	"github.com/glimmerui/glimmer/geom"
	"github.com/glimmerui/glimmer/input"
	"github.com/glimmerui/glimmer/styles"
	"github.com/glimmerui/glimmer/tree"
)

// rootWidget is a minimal concrete widget used only by this package's
// tests, standing in for whatever real root widget a host program builds.
type rootWidget struct{ core.WidgetBase }

func newTestTree() *core.Tree {
	root := tree.NewRoot[*rootWidget]("root")
	root.Init()
	return &core.Tree{
		Root:             root,
		Stylesheet:       styles.NewStylesheet(),
		Input:            &input.Queue{},
		DevicePixelRatio: 1,
		Viewport:         [2]float32{800, 600},
	}
}

// fakePlatform is a stand-in [PlatformWindow] driven entirely from test
// code via WakeUp and RequestClose.
type fakePlatform struct {
	mu     sync.Mutex
	closed bool
	waitCh chan input.Event
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{waitCh: make(chan input.Event, 8)}
}

func (p *fakePlatform) FramebufferSize() geom.SizeOf[float32] { return geom.Sz[float32](800, 600) }
func (p *fakePlatform) Handle() any                           { return nil }

func (p *fakePlatform) HasPendingEvents() bool { return len(p.waitCh) > 0 }

func (p *fakePlatform) PollEvent() (input.Event, bool) {
	select {
	case ev := <-p.waitCh:
		return ev, true
	default:
		return input.Event{}, false
	}
}

func (p *fakePlatform) WaitEvent() input.Event { return <-p.waitCh }

func (p *fakePlatform) WakeUp() {
	select {
	case p.waitCh <- input.Event{Type: input.NoOp}:
	default:
	}
}

func (p *fakePlatform) Closed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closed
}

func (p *fakePlatform) RequestClose() {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
}

func (p *fakePlatform) DoubleClickInterval() time.Duration { return 400 * time.Millisecond }
func (p *fakePlatform) DoubleClickDistance() float32       { return 5 }

func TestQuitConditionFirstWindowClosed(t *testing.T) {
	a := NewWindowApplication(Unified)
	a.SetQuitCondition(FirstWindowClosed)
	platform := newFakePlatform()
	win := NewWindow(platform, newTestTree(), nil)
	a.AddWindow(win)

	platform.RequestClose()

	code := a.RunWindow(NewWindow(newFakePlatform(), newTestTree(), nil))
	require.Equal(t, 0, code)
	require.True(t, win.closed)
}

func TestQuitStoresExitCode(t *testing.T) {
	a := NewWindowApplication(Unified)
	a.SetQuitCondition(PlatformDependent)
	platform := newFakePlatform()
	win := NewWindow(platform, newTestTree(), nil)

	go func() {
		a.Quit(7)
	}()

	code := a.RunWindow(win)
	require.Equal(t, 7, code)
}

func TestModalRunExitsWhenModalCloses(t *testing.T) {
	a := NewWindowApplication(Unified)
	a.SetQuitCondition(PlatformDependent)

	mainPlatform := newFakePlatform()
	mainWin := NewWindow(mainPlatform, newTestTree(), nil)
	a.AddWindow(mainWin)

	modalPlatform := newFakePlatform()
	modalWin := NewWindow(modalPlatform, newTestTree(), nil)

	done := make(chan struct{})
	go func() {
		a.ModalRun(modalWin)
		close(done)
	}()

	modalPlatform.RequestClose()
	// pumpOSEvents blocks on the first-added window (mainWin); nudge it so
	// the loop takes another turn and removeClosedWindows notices modalWin.
	mainPlatform.WakeUp()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("ModalRun did not return after its window closed")
	}
}

func TestQuitConditionAllWindowsClosed(t *testing.T) {
	a := NewWindowApplication(Unified)
	a.SetQuitCondition(AllWindowsClosed)

	p1, p2 := newFakePlatform(), newFakePlatform()
	w1 := NewWindow(p1, newTestTree(), nil)
	w2 := NewWindow(p2, newTestTree(), nil)
	a.AddWindow(w2)

	p1.RequestClose()

	done := make(chan int, 1)
	go func() { done <- a.RunWindow(w1) }()

	select {
	case <-done:
		t.Fatal("quit fired before every window had closed")
	case <-time.After(100 * time.Millisecond):
	}

	p2.RequestClose()
	p2.WakeUp()

	select {
	case code := <-done:
		require.Equal(t, 0, code)
	case <-time.After(time.Second):
		t.Fatal("RunWindow did not return once all windows had closed")
	}
}

func TestDualSchedulingProcessesTasksOnRenderThread(t *testing.T) {
	a := NewWindowApplication(Dual)
	platform := newFakePlatform()
	win := NewWindow(platform, newTestTree(), nil)

	taskRan := make(chan int, 1)
	go func() {
		err := a.Tasks.DispatchAndWait(func() error {
			taskRan <- 99
			return nil
		})
		require.NoError(t, err)
	}()

	runDone := make(chan int, 1)
	go func() { runDone <- a.RunWindow(win) }()

	select {
	case v := <-taskRan:
		require.Equal(t, 99, v)
	case <-time.After(time.Second):
		t.Fatal("task dispatched under Dual scheduling never ran on the render thread")
	}

	platform.RequestClose()
	platform.WakeUp()

	select {
	case code := <-runDone:
		require.Equal(t, 0, code)
	case <-time.After(time.Second):
		t.Fatal("RunWindow did not return after its window closed")
	}
}

func TestTaskQueueDispatchAndWait(t *testing.T) {
	q := &TaskQueue{}
	results := make(chan int, 1)

	go func() {
		err := q.DispatchAndWait(func() error {
			results <- 42
			return nil
		})
		require.NoError(t, err)
	}()

	// Give the goroutine a moment to enqueue, then drain on "the main
	// thread" — mirroring how WindowApplication.runLoop calls Process.
	require.Eventually(t, func() bool { return q.Len() == 1 }, time.Second, time.Millisecond)
	q.Process()

	select {
	case v := <-results:
		require.Equal(t, 42, v)
	case <-time.After(time.Second):
		t.Fatal("dispatched function never ran")
	}
}

func TestWaitFutureRunsIdleFnUntilResolved(t *testing.T) {
	q := &TaskQueue{}
	future := q.Dispatch(func() error { return nil })

	ticks := 0
	var once sync.Once
	err := WaitFuture(func() {
		ticks++
		once.Do(func() { q.Process() })
	}, future)

	require.NoError(t, err)
	require.GreaterOrEqual(t, ticks, 1)
}

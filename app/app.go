// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/glimmerui/glimmer/canvas"
	"github.com/glimmerui/glimmer/core"
	"github.com/glimmerui/glimmer/input"
	"github.com/glimmerui/glimmer/layout"
)

// QuitCondition governs when the main loop signals quit on its own,
// without an explicit [WindowApplication.Quit] call.
type QuitCondition int

const (
	// FirstWindowClosed quits as soon as any window closes — the typical
	// choice for a single-document or dialog-style app.
	FirstWindowClosed QuitCondition = iota
	// AllWindowsClosed quits only once every window has closed.
	AllWindowsClosed
	// PlatformDependent leaves the decision to the platform layer (e.g.
	// macOS apps conventionally keep running with no windows open); the
	// main loop never quits on its own under this condition.
	PlatformDependent
)

// SchedulingModel selects how OS events, the scheduler, and rendering are
// split across threads.
type SchedulingModel int

const (
	// Unified runs the OS event pump, the scheduler, and rendering all on
	// one thread, one after another each iteration.
	Unified SchedulingModel = iota
	// Dual runs OS events on the main thread and rendering on a dedicated
	// UI thread, the two communicating only through a [TaskQueue].
	Dual
)

// Window pairs a [PlatformWindow] with the widget [core.Tree] it drives.
type Window struct {
	Platform PlatformWindow
	Tree     *core.Tree
	Canvas   *canvas.Canvas

	closed            bool
	needsAnotherFrame bool
}

// NewWindow wraps platform and tree into a Window ready to add to a
// [WindowApplication], adopting the platform's double-click parameters
// for input.Queue's click-count detection.
func NewWindow(platform PlatformWindow, tree *core.Tree, cv *canvas.Canvas) *Window {
	if d := platform.DoubleClickInterval(); d > 0 {
		input.DoubleClickTime = d
	}
	if d := platform.DoubleClickDistance(); d > 0 {
		input.DoubleClickDistance = d
	}
	return &Window{Platform: platform, Tree: tree, Canvas: cv}
}

// renderFrame drains this window's pending input then runs one widget-tree
// frame, recording whether its animations are still active.
func (w *Window) renderFrame(frameTime float32) {
	q := w.Tree.Input
	q.DrainReinjected()
	for {
		ev, ok := q.Dequeue()
		if !ok {
			break
		}
		dispatch(q, ev)
	}

	size := w.Platform.FramebufferSize()
	w.Tree.Viewport = [2]float32{size.Width, size.Height}
	available := layout.AvailableSize{
		Width:  layout.Exact(size.Width),
		Height: layout.Exact(size.Height),
	}

	w.needsAnotherFrame = w.Tree.RunFrame(available, frameTime, w.Canvas)
	if w.Canvas != nil {
		w.Canvas.Raw().Flush()
	}
}

// dispatch routes a raw platform event to the Queue method for its
// category — pointer events to HandleMouse, keyboard events to HandleKey.
// Synthetic events the Queue itself generates (Focused, drag phases, …)
// never reach here; they only ever originate from within those handlers.
func dispatch(q *input.Queue, ev input.Event) {
	switch ev.Type {
	case input.MouseMoved, input.MouseEntered, input.MouseExited,
		input.WheelX, input.WheelY,
		input.ButtonPressed, input.ButtonReleased,
		input.DoubleClicked, input.TripleClicked:
		q.HandleMouse(ev)
	case input.KeyPressed, input.KeyReleased, input.CharTyped:
		q.HandleKey(ev)
	}
}

// WindowApplication owns the main loop, the window list, the quit
// condition, and the cross-thread [TaskQueue] described in spec.md §4.M.
type WindowApplication struct {
	Scheduling SchedulingModel
	Tasks      *TaskQueue

	mu      sync.Mutex
	windows []*Window

	quitCondition QuitCondition
	quitRequested atomic.Bool
	exitCode      atomic.Int32

	// wake unblocks a WaitEvent-less, windowless main loop (or, per spec,
	// is what a cross-thread Quit/Dispatch call pings to wake the main
	// thread up, mirroring the teacher's App.SendEmptyEvent).
	wake chan struct{}

	// dualOnce guards starting the Dual scheduling model's dedicated
	// render goroutine exactly once, even across a nested ModalRun.
	dualOnce sync.Once

	startTime time.Time
}

// NewWindowApplication constructs an application using the given
// scheduling model, with [FirstWindowClosed] as the default quit
// condition.
func NewWindowApplication(model SchedulingModel) *WindowApplication {
	a := &WindowApplication{
		Scheduling: model,
		Tasks:      &TaskQueue{},
		wake:       make(chan struct{}, 1),
		startTime:  time.Now(),
	}
	a.Tasks.onDispatch = a.wakeMain
	return a
}

// SetQuitCondition changes when the main loop quits on its own.
func (a *WindowApplication) SetQuitCondition(c QuitCondition) { a.quitCondition = c }

// AddWindow adds w to the application's window list; Run/RunWindow/
// ModalRun all add their argument automatically.
func (a *WindowApplication) AddWindow(w *Window) {
	a.mu.Lock()
	a.windows = append(a.windows, w)
	a.mu.Unlock()
}

func (a *WindowApplication) snapshotWindows() []*Window {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]*Window(nil), a.windows...)
}

// Quit stores code as the eventual exit code, requests the main loop stop,
// and wakes it if it is currently blocked waiting for an OS event.
func (a *WindowApplication) Quit(code int) {
	a.exitCode.Store(int32(code))
	a.quitRequested.Store(true)
	a.wakeMain()
}

// wakeMain gets a blocked main thread's attention: with live windows, it
// posts a synthetic [input.NoOp] event to each (the mechanism spec.md §5
// describes — "the main thread wakes up posting a synthetic empty OS
// event"); with none yet, it falls back to a plain Go channel.
func (a *WindowApplication) wakeMain() {
	windows := a.snapshotWindows()
	if len(windows) == 0 {
		select {
		case a.wake <- struct{}{}:
		default:
		}
		return
	}
	for _, w := range windows {
		w.Platform.WakeUp()
	}
}

// Run starts the main loop with no initial window (a caller that creates
// windows lazily from within task dispatches) and blocks until quit,
// returning the stored exit code.
func (a *WindowApplication) Run() int {
	return a.runLoop(nil)
}

// RunWindow adds mainWindow then runs exactly like Run.
func (a *WindowApplication) RunWindow(mainWindow *Window) int {
	a.AddWindow(mainWindow)
	return a.runLoop(nil)
}

// ModalRun adds modal and nests an inner main loop that returns as soon as
// modal closes or the application quits globally — the outer Run/RunWindow
// loop the caller is already inside resumes once this returns.
func (a *WindowApplication) ModalRun(modal *Window) {
	a.AddWindow(modal)
	a.runLoop(modal)
}

// runLoop is the per-iteration main loop spec.md §4.M describes: remove
// closed windows (checking the quit condition), process OS events, run
// scheduled tasks, and — in Unified mode — render every window. exitWhen,
// if non-nil, additionally ends the loop once that one window closes,
// without touching global quit state; that is what makes ModalRun a
// strictly nested loop rather than a second top-level Run.
func (a *WindowApplication) runLoop(exitWhen *Window) int {
	if a.Scheduling == Dual {
		a.dualOnce.Do(func() { go a.dualRenderLoop() })
	}

	for {
		a.removeClosedWindows()
		if exitWhen != nil && exitWhen.closed {
			return int(a.exitCode.Load())
		}
		if a.quitRequested.Load() {
			return int(a.exitCode.Load())
		}

		a.pumpOSEvents()

		if a.Scheduling == Unified {
			a.Tasks.Process()
			a.renderAll()
		}
	}
}

// dualRenderInterval paces the Dual scheduling model's dedicated render
// thread in the absence of a real GPU present-timing hook to wait on.
const dualRenderInterval = 8 * time.Millisecond

// dualRenderLoop is the UI/render thread Dual scheduling runs on its own
// goroutine: it drains tasks the main thread dispatched (including queued
// input, via deliverEvent) and renders every window, communicating with
// the main thread only through the TaskQueue and the atomic quit flag —
// the two threads spec.md §5 allows, never touching each other's state
// directly.
func (a *WindowApplication) dualRenderLoop() {
	for !a.quitRequested.Load() {
		a.Tasks.Process()
		a.renderAll()
		time.Sleep(dualRenderInterval)
	}
}

// removeClosedWindows drops every window whose platform layer reports
// Closed, and applies the configured QuitCondition.
func (a *WindowApplication) removeClosedWindows() {
	a.mu.Lock()
	defer a.mu.Unlock()

	hadWindows := len(a.windows) > 0
	anyClosed := false
	kept := a.windows[:0]
	for _, w := range a.windows {
		if w.Platform.Closed() {
			w.closed = true
			anyClosed = true
			continue
		}
		kept = append(kept, w)
	}
	a.windows = kept

	switch a.quitCondition {
	case FirstWindowClosed:
		if anyClosed {
			a.quitRequested.Store(true)
		}
	case AllWindowsClosed:
		if hadWindows && len(a.windows) == 0 {
			a.quitRequested.Store(true)
		}
	case PlatformDependent:
		// left entirely to the platform layer to call Quit directly.
	}
}

// pumpOSEvents polls every window's platform layer if any has pending
// events or tasks are already queued, otherwise blocks on the first
// window's WaitEvent (or, with no windows at all, on a cross-thread wake).
func (a *WindowApplication) pumpOSEvents() {
	windows := a.snapshotWindows()

	hasPending := a.Tasks.Len() > 0
	if !hasPending {
		for _, w := range windows {
			if w.Platform.HasPendingEvents() {
				hasPending = true
				break
			}
		}
	}

	if hasPending {
		for _, w := range windows {
			for w.Platform.HasPendingEvents() {
				ev, ok := w.Platform.PollEvent()
				if !ok {
					break
				}
				if ev.Type != input.NoOp {
					a.deliverEvent(w, ev)
				}
			}
		}
		return
	}

	if len(windows) == 0 {
		<-a.wake
		return
	}
	if ev := windows[0].Platform.WaitEvent(); ev.Type != input.NoOp {
		a.deliverEvent(windows[0], ev)
	}
}

// deliverEvent hands ev to w's input queue. Under Unified scheduling the
// main thread owns that queue outright and enqueues directly; under Dual
// scheduling the queue belongs to the render thread, so the main thread
// dispatches the enqueue through the TaskQueue instead of touching it —
// the only channel spec.md §5 allows between the two threads.
func (a *WindowApplication) deliverEvent(w *Window, ev input.Event) {
	if a.Scheduling == Dual {
		a.Tasks.Dispatch(func() error {
			w.Tree.Input.Enqueue(ev)
			return nil
		})
		return
	}
	w.Tree.Input.Enqueue(ev)
}

// renderAll runs one widget-tree frame on every window, using elapsed time
// since the application started as the frame's animation clock. A window
// whose frame reports a still-active animation has its platform woken
// immediately, so the next loop iteration renders again without waiting on
// a real OS event — the "re-request animation frame if still active" half
// of the widget tree's Animation phase.
func (a *WindowApplication) renderAll() {
	frameTime := float32(time.Since(a.startTime).Seconds())
	for _, w := range a.snapshotWindows() {
		w.renderFrame(frameTime)
		if w.needsAnotherFrame {
			w.Platform.WakeUp()
		}
	}
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import "sync"

// BindType selects how a bidirectional binding propagates an update from
// its remote [Value] to the bound property.
type BindType int

const (
	// Immediate applies the remote value synchronously, on the same
	// goroutine that changed it.
	Immediate BindType = iota
	// Deferred queues the application for the next call to
	// [Registry.Flush], letting a render thread apply it at a safe point.
	Deferred
)

// Value is a bidirectional accessor pair a property can be bound to: get
// reads the external value, set writes it back. A plain field binding sets
// set to nil.
type Value[T any] struct {
	Get func() T
	Set func(T)
}

// NewValue returns a [Value] backed by get/set.
func NewValue[T any](get func() T, set func(T)) Value[T] { return Value[T]{Get: get, Set: set} }

// Registry is a widget's binding table: it maps a property's stable field
// address to the observers notified whenever that property changes, and
// holds the queue of deferred pushes waiting for [Registry.Flush].
type Registry struct {
	mu        sync.Mutex
	observers map[any][]func()
	deferred  []func()
}

// NewRegistry returns an empty binding registry.
func NewRegistry() *Registry { return &Registry{observers: map[any][]func(){}} }

// Observe registers fn to run whenever addr's property changes. addr is
// typically the property's field pointer (e.g. &style.width), giving each
// property a stable identity independent of its current value.
func (r *Registry) Observe(addr any, fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observers[addr] = append(r.observers[addr], fn)
}

// Notify runs every observer registered against addr.
func (r *Registry) Notify(addr any) {
	r.mu.Lock()
	fns := append([]func(){}, r.observers[addr]...)
	r.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// Flush runs and clears every pending [Deferred] push.
func (r *Registry) Flush() {
	r.mu.Lock()
	pending := r.deferred
	r.deferred = nil
	r.mu.Unlock()
	for _, fn := range pending {
		fn()
	}
}

func (r *Registry) enqueue(fn func()) {
	r.mu.Lock()
	r.deferred = append(r.deferred, fn)
	r.mu.Unlock()
}

// ConnectBidir binds addr's property to remote: whenever remote's own
// change notification fires (the caller is responsible for calling
// remote.Set and then r.Notify(remoteAddr) on its side), local is updated
// from remote.Get, either immediately or queued for [Registry.Flush]
// depending on bind.
func ConnectBidir[T any](r *Registry, addr any, local Value[T], remote Value[T], remoteAddr any, bind BindType) {
	push := func() {
		v := remote.Get()
		switch bind {
		case Immediate:
			local.Set(v)
		case Deferred:
			r.enqueue(func() { local.Set(v) })
		}
	}
	r.Observe(remoteAddr, push)
	push()
}

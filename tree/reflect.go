// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import "reflect"

// newOf allocates a new zero-valued T. T is constrained to Node and is
// always, in practice, a pointer to a struct embedding NodeBase; reflect
// is the only way to allocate that struct generically since Go generics
// give no way to say "the type T points to".
func newOf[T Node]() T {
	var zero T
	rt := reflect.TypeOf(zero).Elem()
	return reflect.New(rt).Interface().(T)
}

// shallowCopy allocates a new node of orig's concrete type and copies
// every field, including the embedded NodeBase, verbatim. Callers that
// need a detached copy (Clone) reset Parent/Children/This afterward.
func shallowCopy(orig Node) Node {
	rv := reflect.ValueOf(orig)
	newPtr := reflect.New(rv.Elem().Type())
	newPtr.Elem().Set(rv.Elem())
	return newPtr.Interface().(Node)
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plan provides an efficient mechanism for updating a slice
// to contain a target list of elements, generating minimal edits to
// modify the current slice contents to match the target.
// The mechanism depends on the use of unique name string identifiers
// to determine whether an element is currently configured correctly.
// These could be algorithmically generated hash strings or any other
// such unique identifier. This is what the widget tree's Rebuild phase
// runs children through instead of tearing a subtree down and rebuilding
// it from scratch on every request.
package plan

import (
	"log/slog"
	"slices"
)

// Namer is an interface that types can implement to specify their name in
// a plan context.
type Namer interface {
	// PlanName returns the name of the object in a plan context.
	PlanName() string
}

// searchFrom finds the index of the element named name, starting the
// scan at hint (the index it was found at last time, when known) and
// wrapping around; this keeps the common case, where nothing moved,
// to a single comparison.
func searchFrom[T Namer](s []T, name string, hint int) int {
	n := len(s)
	if n == 0 {
		return -1
	}
	if hint < 0 || hint >= n {
		hint = 0
	}
	for i := 0; i < n; i++ {
		idx := (hint + i) % n
		if s[idx].PlanName() == name {
			return idx
		}
	}
	return -1
}

// Build ensures that the elements of s match the target list specified
// by n and name, reusing existing elements in s wherever their name
// still appears in the target and only calling new/destroy for items
// that must actually be added or removed. It returns the rebuilt slice
// and whether anything changed.
func Build[T Namer](s []T, n int, name func(i int) string, new func(name string, i int) T, destroy func(e T)) (r []T, mods bool) {
	names := make([]string, n)
	nmap := make(map[string]int, n)
	smap := make(map[string]int, n)
	for i := range n {
		nm := name(i)
		names[i] = nm
		if _, has := nmap[nm]; has {
			slog.Error("plan.Build: duplicate name", "name", nm)
		}
		nmap[nm] = i
	}

	// remove anything not wanted
	r = s
	rn := len(r)
	for i := rn - 1; i >= 0; i-- {
		nm := r[i].PlanName()
		if _, ok := nmap[nm]; !ok {
			mods = true
			if destroy != nil {
				destroy(r[i])
			}
			r = slices.Delete(r, i, i+1)
		} else {
			smap[nm] = i
		}
	}

	// add and move items into position, in target order
	for i, tn := range names {
		ci := searchFrom(r, tn, smap[tn])
		if ci < 0 {
			mods = true
			ne := new(tn, i)
			r = slices.Insert(r, i, ne)
		} else if ci != i {
			mods = true
			e := r[ci]
			r = slices.Delete(r, ci, ci+1)
			r = slices.Insert(r, i, e)
		}
	}
	return
}

// Update is Build applied in place through a pointer to the slice: it
// rebuilds *sp to match the target list and, if anything changed, calls
// updt (when non-nil). It returns whether anything changed.
func Update[T Namer](sp *[]T, n int, name func(i int) string, new func(name string, i int) T, destroy func(e T), updt func()) bool {
	r, mods := Build(*sp, n, name, new, destroy)
	*sp = r
	if mods && updt != nil {
		updt()
	}
	return mods
}

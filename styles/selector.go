// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

// Matchable is the subset of widget identity a Selector needs to decide
// whether a rule applies. A widget tree node implements it directly rather
// than Selector reaching into tree internals.
type Matchable interface {
	Type() string
	Role() string
	ID() string
	HasClass(name string) bool
	State() WidgetState
	Parent() (Matchable, bool)
	// IndexInParent reports this node's position among its parent's
	// children (0-based) and the total child count. ok is false for the
	// root, which has no parent to index within.
	IndexInParent() (index, count int, ok bool)
}

// MatchFlags carries context a Selector can't derive from Matchable alone.
type MatchFlags uint8

const (
	MatchNone   MatchFlags = 0
	MatchIsRoot MatchFlags = 1 << iota
)

// Selector reports whether w satisfies a rule's applicability condition.
type Selector func(w Matchable, flags MatchFlags) bool

// Universal matches every widget.
func Universal() Selector {
	return func(w Matchable, flags MatchFlags) bool { return true }
}

// Root matches only the tree root.
func Root() Selector {
	return func(w Matchable, flags MatchFlags) bool { return flags&MatchIsRoot != 0 }
}

// OfState matches widgets whose current interaction state has every bit in
// want set.
func OfState(want WidgetState) Selector {
	return func(w Matchable, flags MatchFlags) bool { return w.State().Has(want) }
}

// OfType matches widgets of the given tag name.
func OfType(name string) Selector {
	return func(w Matchable, flags MatchFlags) bool { return w.Type() == name }
}

// OfRole matches widgets with the given accessibility role.
func OfRole(role string) Selector {
	return func(w Matchable, flags MatchFlags) bool { return w.Role() == role }
}

// OfID matches the single widget with the given id.
func OfID(id string) Selector {
	return func(w Matchable, flags MatchFlags) bool { return w.ID() == id }
}

// OfClass matches widgets carrying the given class name.
func OfClass(class string) Selector {
	return func(w Matchable, flags MatchFlags) bool { return w.HasClass(class) }
}

// Parent matches a widget whose parent satisfies sel (i.e. "sel > *").
func Parent(sel Selector) Selector {
	return func(w Matchable, flags MatchFlags) bool {
		p, ok := w.Parent()
		if !ok {
			return false
		}
		return sel(p, MatchNone)
	}
}

// All matches when every one of sels matches (logical AND).
func All(sels ...Selector) Selector {
	return func(w Matchable, flags MatchFlags) bool {
		for _, sel := range sels {
			if !sel(w, flags) {
				return false
			}
		}
		return true
	}
}

// Any matches when at least one of sels matches (logical OR).
func Any(sels ...Selector) Selector {
	return func(w Matchable, flags MatchFlags) bool {
		for _, sel := range sels {
			if sel(w, flags) {
				return true
			}
		}
		return false
	}
}

// Not inverts sel.
func Not(sel Selector) Selector {
	return func(w Matchable, flags MatchFlags) bool { return !sel(w, flags) }
}

// NthChild matches a widget whose (1-based) position among its siblings
// equals a*n+b for some non-negative integer n, mirroring CSS :nth-child(an+b).
// reverse counts from the end of the sibling list instead of the start.
func NthChild(a, b int, reverse bool) Selector {
	return func(w Matchable, flags MatchFlags) bool {
		index, count, ok := w.IndexInParent()
		if !ok {
			return false
		}
		pos := index + 1
		if reverse {
			pos = count - index
		}
		if a == 0 {
			return pos == b
		}
		diff := pos - b
		return diff%a == 0 && diff/a >= 0
	}
}

// FirstChild matches the first child of its parent.
func FirstChild() Selector { return NthChild(0, 1, false) }

// LastChild matches the last child of its parent.
func LastChild() Selector { return NthChild(0, 1, true) }

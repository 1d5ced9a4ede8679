// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import "github.com/glimmerui/glimmer/base/keylist"

// Setting is a single state-scoped property assignment: Apply runs only
// when the widget's current State has every bit in State set. A plain,
// always-applying assignment uses State == StateNone.
type Setting struct {
	Index PropertyIndex
	State WidgetState
	Apply func(s *Style)
}

// Rules is an ordered list of Settings belonging to one matched Style. Two
// Settings with the same (Index, State) are duplicates; Merge resolves them
// by letting the later list win, the same rule Rules::merge documents for
// the source's sorted-rule-list merge.
type Rules []Setting

// Merge returns the rules of r combined with other, with other's entries
// overriding any in r that share both Index and State. Both inputs are
// assumed to already be internally deduplicated; the result preserves r's
// relative order for entries it keeps, with other's entries appended or
// substituted in place.
func (r Rules) Merge(other Rules) Rules {
	out := make(Rules, 0, len(r)+len(other))
	out = append(out, r...)
	for _, o := range other {
		replaced := false
		for i := range out {
			if out[i].Index == o.Index && out[i].State == o.State {
				out[i] = o
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, o)
		}
	}
	return out
}

// StyleRule pairs a Selector with the Settings it contributes when it
// matches a widget.
type StyleRule struct {
	Selector   Selector
	Properties Rules
}

// Stylesheet is an ordered, id-keyed collection of StyleRules, evaluated in
// source order so later rules override earlier ones for the same property
// and state. It is built on [keylist.List] rather than a plain slice so a
// hot-reload can replace a single rule by id (Set) without losing the
// ordering of the rest, the same list shape the teacher uses wherever
// ordered-plus-keyed storage is needed (see base/keylist's own doc comment).
type Stylesheet struct {
	rules keylist.List[string, StyleRule]
}

// NewStylesheet returns an empty Stylesheet ready for Set calls.
func NewStylesheet() *Stylesheet { return &Stylesheet{} }

// Set adds or replaces the rule stored under id, preserving id's original
// position in source order when replacing.
func (sheet *Stylesheet) Set(id string, rule StyleRule) { sheet.rules.Set(id, rule) }

// Delete removes the rule stored under id, if any.
func (sheet *Stylesheet) Delete(id string) {
	if idx := sheet.rules.IndexByKey(id); idx >= 0 {
		sheet.rules.DeleteByIndex(idx, idx+1)
	}
}

// Len returns the number of rules in the sheet.
func (sheet *Stylesheet) Len() int { return sheet.rules.Len() }

// Apply matches each rule in sheet against w, merges the Settings of every
// matching rule in source order, and assigns the ones whose State is
// satisfied by w's current interaction state onto s. Assignment is bracketed
// by BeginApplyingRules/EndApplyingRules so Style's setters know not to mark
// properties Overridden on account of stylesheet-driven values, matching
// the source's styleApplying scope around rule application.
func (sheet *Stylesheet) Apply(w Matchable, s *Style, flags MatchFlags) {
	var merged Rules
	for _, rule := range sheet.rules.Values {
		if !rule.Selector(w, flags) {
			continue
		}
		merged = merged.Merge(rule.Properties)
	}
	state := w.State()
	s.BeginApplyingRules()
	defer s.EndApplyingRules()
	for _, setting := range merged {
		if !state.Has(setting.State) {
			continue
		}
		setting.Apply(s)
	}
}

// Copyright 2026 The Langtag Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package langtag

import (
	"fmt"
	"strings"

	"github.com/tagtools/langtag/internal/registry"
)

// CheckType selects which checks Validate performs beyond well-formedness.
type CheckType int

const (
	// CheckRegistry looks registered-code subtags up in the registries;
	// without it validity is syntax-only.
	CheckRegistry CheckType = 1 << iota
	// WarnDeprecated emits a warning for each subtag that has a registered
	// preferred replacement.
	WarnDeprecated
	// WarnRedundantScript emits a warning when the script subtag equals the
	// language's suppress-script default.
	WarnRedundantScript

	// SyntaxOnly disables all registry checks and warnings.
	SyntaxOnly CheckType = 0
	// Default enables all checks and warnings.
	Default = CheckRegistry | WarnDeprecated | WarnRedundantScript
)

// ProblemKind classifies a registry problem.
type ProblemKind int

const (
	UnknownLanguage ProblemKind = iota
	UnknownExtlang
	UnknownScript
	UnknownRegion
)

// Problem reports a subtag that is well-formed but not registered. Problems
// never prevent a Tag from being returned; they make the tag semantically
// invalid.
type Problem struct {
	Kind    ProblemKind
	Subtag  string
	Role    Role
	Message string
	// Suggestion is a likely intended replacement drawn from the
	// common-mistake tables, or empty. Populated for language and region
	// problems only.
	Suggestion string
}

// WarningKind classifies an advisory warning.
type WarningKind int

const (
	// DeprecatedSubtag marks a registered subtag that has a preferred
	// replacement.
	DeprecatedSubtag WarningKind = iota
	// RedundantScript marks a script subtag equal to the language's
	// suppress-script default.
	RedundantScript
)

// Warning is advisory only; it never affects well-formedness or validity.
type Warning struct {
	Kind    WarningKind
	Subtag  string
	Role    Role
	Message string
	// Preferred carries the replacement for DeprecatedSubtag warnings.
	Preferred string
}

// Result is the detailed outcome of Validate.
type Result struct {
	WellFormed bool
	Valid      bool
	// Tag is the structured form of the input; nil when not well-formed.
	Tag *Tag
	// Errors holds the syntax error that stopped parsing. Parsing fails
	// fast, so the slice carries at most one entry.
	Errors []*SyntaxError
	// Problems holds every registry problem found; they are independent of
	// one another and all are collected.
	Problems []Problem
	Warnings []Warning
}

// CheckRegistry looks each registered-code subtag of t up in its registry
// and returns a problem for every code that is absent, with a suggested
// replacement where a common-mistake table has one. The lookups are
// independent and stateless; no cross-field consistency is judged. A
// grandfathered tag's validity predates the registries and always yields
// an empty list.
func (t Tag) CheckRegistry() []Problem {
	if t.Grandfathered || t.PrivateUseOnly {
		return nil
	}
	var problems []Problem
	if t.Language != "" {
		if _, ok := registry.LookupLanguage(t.Language); !ok {
			p := Problem{
				Kind:    UnknownLanguage,
				Subtag:  t.Language,
				Role:    RoleLanguage,
				Message: fmt.Sprintf("unknown language %q", t.Language),
			}
			if sug, ok := registry.SuggestLanguage(t.Language); ok {
				p.Suggestion = sug
				p.Message = fmt.Sprintf("unknown language %q; did you mean %q?", t.Language, sug)
			}
			problems = append(problems, p)
		}
	}
	for _, e := range t.Extlangs {
		if _, ok := registry.LookupExtlang(e); !ok {
			problems = append(problems, Problem{
				Kind:    UnknownExtlang,
				Subtag:  e,
				Role:    RoleExtlang,
				Message: fmt.Sprintf("unknown extended language %q", e),
			})
		}
	}
	if t.Script != "" {
		if _, ok := registry.LookupScript(t.Script); !ok {
			problems = append(problems, Problem{
				Kind:    UnknownScript,
				Subtag:  t.Script,
				Role:    RoleScript,
				Message: fmt.Sprintf("unknown script %q", t.Script),
			})
		}
	}
	if t.Region != "" {
		if _, ok := registry.LookupRegion(t.Region); !ok {
			p := Problem{
				Kind:    UnknownRegion,
				Subtag:  t.Region,
				Role:    RoleRegion,
				Message: fmt.Sprintf("unknown region %q", t.Region),
			}
			if sug, ok := registry.SuggestRegion(t.Region); ok {
				p.Suggestion = sug
				p.Message = fmt.Sprintf("unknown region %q; did you mean %q?", t.Region, sug)
			}
			problems = append(problems, p)
		}
	}
	return problems
}

// Validate parses s and, per checks, validates its subtags against the
// registries. The zero CheckType (SyntaxOnly) reduces validity to
// well-formedness.
func Validate(s string, checks CheckType) Result {
	t, err := Parse(s)
	if err != nil {
		return Result{Errors: []*SyntaxError{err.(*SyntaxError)}}
	}
	r := Result{WellFormed: true, Valid: true, Tag: &t}
	if checks&CheckRegistry != 0 {
		r.Problems = t.CheckRegistry()
		r.Valid = len(r.Problems) == 0
	}
	if checks&WarnDeprecated != 0 {
		r.Warnings = append(r.Warnings, deprecationWarnings(t)...)
	}
	if checks&WarnRedundantScript != 0 {
		if w, ok := redundantScriptWarning(t); ok {
			r.Warnings = append(r.Warnings, w)
		}
	}
	return r
}

// IsWellFormed reports whether s satisfies the subtag grammar.
func IsWellFormed(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// IsValid reports whether s is well-formed and every registered-code subtag
// is present in its registry.
func IsValid(s string) bool {
	return Validate(s, CheckRegistry).Valid
}

func deprecationWarnings(t Tag) []Warning {
	var ws []Warning
	add := func(subtag string, role Role, preferred string) {
		name := role.String()
		if role == RoleUnclassified {
			name = "tag"
		}
		ws = append(ws, Warning{
			Kind:      DeprecatedSubtag,
			Subtag:    subtag,
			Role:      role,
			Message:   fmt.Sprintf("%s %q is deprecated; use %q", name, subtag, preferred),
			Preferred: preferred,
		})
	}
	if t.Grandfathered {
		if g, ok := registry.LookupGrandfathered(t.str); ok && g.Preferred != "" {
			add(g.Tag, RoleUnclassified, g.Preferred)
		}
		return ws
	}
	if l, ok := registry.LookupLanguage(t.Language); ok && l.Preferred != "" {
		add(t.Language, RoleLanguage, l.Preferred)
	}
	if t.Script != "" {
		if sc, ok := registry.LookupScript(t.Script); ok && sc.Preferred != "" {
			add(t.Script, RoleScript, sc.Preferred)
		}
	}
	if t.Region != "" {
		if r, ok := registry.LookupRegion(t.Region); ok && r.Preferred != "" {
			add(t.Region, RoleRegion, r.Preferred)
		}
	}
	return ws
}

func redundantScriptWarning(t Tag) (Warning, bool) {
	if t.Script == "" {
		return Warning{}, false
	}
	l, ok := registry.LookupLanguage(t.Language)
	if !ok || l.SuppressScript == "" || !strings.EqualFold(l.SuppressScript, t.Script) {
		return Warning{}, false
	}
	return Warning{
		Kind:   RedundantScript,
		Subtag: t.Script,
		Role:   RoleScript,
		Message: fmt.Sprintf("script %q is implied by language %q and is redundant",
			t.Script, t.Language),
	}, true
}

// Copyright 2026 The Langtag Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package langtag

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestValidateWellFormedAndValid(t *testing.T) {
	tests := []struct {
		in         string
		wellFormed bool
		valid      bool
	}{
		{"en", true, true},
		{"en-US", true, true},
		{"sr-Latn-RS", true, true},
		{"zh-yue-HK", true, true},
		{"x-anything", true, true},
		{"i-klingon", true, true},
		{"en-GB-oxendict", true, true},
		{"qaa-QM", true, false},   // well-formed, unregistered codes
		{"ch-DE", true, false},    // country code in language position
		{"en-Qabc", true, false},  // unknown script
		{"en--US", false, false},  // empty subtag
		{"en-a", false, false},    // empty extension
		{"", false, false},
	}
	for _, tt := range tests {
		r := Validate(tt.in, Default)
		if r.WellFormed != tt.wellFormed || r.Valid != tt.valid {
			t.Errorf("Validate(%q) = wellFormed %v, valid %v; want %v, %v",
				tt.in, r.WellFormed, r.Valid, tt.wellFormed, tt.valid)
		}
		if tt.wellFormed && r.Tag == nil {
			t.Errorf("Validate(%q): well-formed but Tag is nil", tt.in)
		}
		if !tt.wellFormed && (r.Tag != nil || len(r.Errors) != 1) {
			t.Errorf("Validate(%q): Tag = %v, Errors = %v; want nil Tag and one error",
				tt.in, r.Tag, r.Errors)
		}
		if gotWF, gotV := IsWellFormed(tt.in), IsValid(tt.in); gotWF != tt.wellFormed || gotV != tt.valid {
			t.Errorf("IsWellFormed/IsValid(%q) = %v, %v; want %v, %v",
				tt.in, gotWF, gotV, tt.wellFormed, tt.valid)
		}
	}
}

func TestValidateSuggestions(t *testing.T) {
	r := Validate("ch-DE", Default)
	if !r.WellFormed || r.Valid {
		t.Fatalf("Validate(ch-DE) = wellFormed %v, valid %v; want true, false", r.WellFormed, r.Valid)
	}
	want := []Problem{{
		Kind:       UnknownLanguage,
		Subtag:     "ch",
		Role:       RoleLanguage,
		Message:    `unknown language "ch"; did you mean "zh"?`,
		Suggestion: "zh",
	}}
	if diff := cmp.Diff(want, r.Problems); diff != "" {
		t.Errorf("Validate(ch-DE) problems (-want +got):\n%s", diff)
	}

	r = Validate("en-UK", Default)
	if len(r.Problems) != 1 || r.Problems[0].Suggestion != "GB" {
		t.Errorf("Validate(en-UK) problems = %+v; want one UnknownRegion suggesting GB", r.Problems)
	}
}

func TestValidateCollectsAllProblems(t *testing.T) {
	r := Validate("qq-Qabc-ZY", Default)
	if !r.WellFormed || r.Valid {
		t.Fatalf("wellFormed %v, valid %v; want true, false", r.WellFormed, r.Valid)
	}
	kinds := make([]ProblemKind, len(r.Problems))
	for i, p := range r.Problems {
		kinds[i] = p.Kind
	}
	want := []ProblemKind{UnknownLanguage, UnknownScript, UnknownRegion}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Errorf("problem kinds (-want +got):\n%s", diff)
	}
}

func TestValidateSyntaxOnly(t *testing.T) {
	r := Validate("ch-DE", SyntaxOnly)
	if !r.WellFormed || !r.Valid {
		t.Errorf("Validate(ch-DE, SyntaxOnly) = wellFormed %v, valid %v; want true, true",
			r.WellFormed, r.Valid)
	}
	if len(r.Problems) != 0 || len(r.Warnings) != 0 {
		t.Errorf("Validate(ch-DE, SyntaxOnly) problems %v warnings %v; want none",
			r.Problems, r.Warnings)
	}
}

func TestValidateWarnings(t *testing.T) {
	r := Validate("iw", Default)
	if !r.Valid {
		t.Fatalf("Validate(iw): valid = false, want true (deprecation is advisory)")
	}
	if len(r.Warnings) != 1 || r.Warnings[0].Kind != DeprecatedSubtag || r.Warnings[0].Preferred != "he" {
		t.Errorf("Validate(iw) warnings = %+v; want one DeprecatedSubtag preferring he", r.Warnings)
	}

	r = Validate("en-Latn-US", Default)
	if !r.Valid {
		t.Fatalf("Validate(en-Latn-US): valid = false, want true")
	}
	if len(r.Warnings) != 1 || r.Warnings[0].Kind != RedundantScript || r.Warnings[0].Subtag != "latn" {
		t.Errorf("Validate(en-Latn-US) warnings = %+v; want one RedundantScript for latn", r.Warnings)
	}

	// Both warning classes can fire on one tag.
	r = Validate("iw-Hebr-BU", Default)
	var deprecated, redundant int
	for _, w := range r.Warnings {
		switch w.Kind {
		case DeprecatedSubtag:
			deprecated++
		case RedundantScript:
			redundant++
		}
	}
	if deprecated != 2 || redundant != 0 {
		t.Errorf("Validate(iw-Hebr-BU) warnings = %+v; want two DeprecatedSubtag", r.Warnings)
	}

	// Grandfathered tags are valid; deprecated ones still warn.
	r = Validate("i-klingon", Default)
	if !r.Valid || len(r.Problems) != 0 {
		t.Errorf("Validate(i-klingon) = valid %v, problems %v; want valid, none", r.Valid, r.Problems)
	}
	if len(r.Warnings) != 1 || r.Warnings[0].Preferred != "tlh" {
		t.Errorf("Validate(i-klingon) warnings = %+v; want one preferring tlh", r.Warnings)
	}
}

func TestCheckRegistryDirectTag(t *testing.T) {
	// Tags assembled by hand are validated as-is; an extlang unknown to the
	// registry is reported even though Parse would not produce one.
	tag := Tag{Language: "zh", Extlangs: []string{"zzz"}}
	probs := tag.CheckRegistry()
	if len(probs) != 1 || probs[0].Kind != UnknownExtlang || probs[0].Subtag != "zzz" {
		t.Errorf("CheckRegistry = %+v; want one UnknownExtlang for zzz", probs)
	}

	if probs := (Tag{Grandfathered: true, str: "i-default"}).CheckRegistry(); len(probs) != 0 {
		t.Errorf("CheckRegistry(grandfathered) = %+v; want none", probs)
	}
}

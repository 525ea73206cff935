// Copyright 2026 The Langtag Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package langtag parses, validates and canonicalizes BCP 47 language tags
// as defined in RFC 5646.
//
// The package distinguishes two notions of correctness. A tag is well-formed
// when it satisfies the subtag grammar; Parse reports this, returning either
// a structured Tag or a *SyntaxError. A well-formed tag is additionally
// valid when every registered-code subtag (language, extlang, script,
// region) appears in the subtag registry; Validate reports both notions
// together with the full list of registry problems and advisory warnings.
//
// Canonicalize rewrites a well-formed tag into its single canonical string:
// case is folded per subtag role, deprecated subtags are replaced by their
// preferred values, a redundant script is dropped, and variants and
// extensions are put in a deterministic order.
//
// All operations are pure functions over immutable registry tables and are
// safe for concurrent use.
//
// Typical use:
//
//	r := langtag.Validate("ch-DE", langtag.Default)
//	if !r.Valid {
//		for _, p := range r.Problems {
//			fmt.Println(p.Message) // unknown language "ch"; did you mean "zh"?
//		}
//	}
//	s, err := langtag.Canonicalize("en-latn-us")
//	// s == "en-US"
package langtag

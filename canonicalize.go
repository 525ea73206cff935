// Copyright 2026 The Langtag Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package langtag

import (
	"sort"
	"strings"

	"github.com/tagtools/langtag/internal/registry"
)

// Canonicalize rewrites s into its single canonical string form. It returns
// a non-nil error exactly when s is not well-formed; canonicalization
// presupposes syntactic validity and does not repair broken input.
//
// The rewrite applies, in order: role-based case folding (language, extlang,
// variant, extension and private-use subtags lowercase; script title case;
// letter regions upper case), preferred-value substitution for deprecated
// language, script and region codes, registry-driven collapsing of a
// language+extlang pair into the extlang's preferred primary language,
// removal of a script equal to the language's suppress-script default, and
// deterministic reassembly with variants sorted lexicographically and
// extensions sorted by singleton. Private-use subtags keep their original
// order; their internal meaning is opaque.
//
// The result is idempotent: canonicalizing a canonical tag returns it
// unchanged.
func Canonicalize(s string) (string, error) {
	// Parse already classifies on a lowercase copy, so the fold-then-reparse
	// of the raw sequence reduces to a single parse here.
	t, err := Parse(s)
	if err != nil {
		return "", err
	}

	if t.Grandfathered {
		g, _ := registry.LookupGrandfathered(t.str)
		if g.Preferred != "" {
			return g.Preferred, nil
		}
		return g.Tag, nil
	}
	if t.PrivateUseOnly {
		return "x-" + strings.Join(t.PrivateUse, "-"), nil
	}

	if l, ok := registry.LookupLanguage(t.Language); ok && l.Preferred != "" {
		t.Language = l.Preferred
	}
	if t.Script != "" {
		if sc, ok := registry.LookupScript(t.Script); ok && sc.Preferred != "" {
			t.Script = strings.ToLower(sc.Preferred)
		}
	}
	if t.Region != "" {
		if r, ok := registry.LookupRegion(t.Region); ok && r.Preferred != "" {
			t.Region = strings.ToLower(r.Preferred)
		}
	}

	// A language-extlang pair collapses to the extlang's preferred primary
	// language, e.g. zh-yue to yue. The collapse repeats while the leading
	// extlang carries a preferred value, so a tag with several extlangs
	// still reaches its fixed point in one call.
	for len(t.Extlangs) > 0 {
		e, ok := registry.LookupExtlang(t.Extlangs[0])
		if !ok || e.Preferred == "" {
			break
		}
		t.Language = e.Preferred
		t.Extlangs = t.Extlangs[1:]
	}

	// Drop a script that merely restates the language's default.
	if t.Script != "" {
		if l, ok := registry.LookupLanguage(t.Language); ok &&
			l.SuppressScript != "" && strings.EqualFold(l.SuppressScript, t.Script) {
			t.Script = ""
		}
	}

	sub := make([]string, 0, 8)
	sub = append(sub, t.Language)
	sub = append(sub, t.Extlangs...)
	if t.Script != "" {
		sub = append(sub, titleCase(t.Script))
	}
	if t.Region != "" {
		sub = append(sub, upperRegion(t.Region))
	}
	variants := append([]string(nil), t.Variants...)
	sort.Strings(variants)
	sub = append(sub, variants...)
	exts := append([]Extension(nil), t.Extensions...)
	sort.Slice(exts, func(i, j int) bool { return exts[i].Singleton < exts[j].Singleton })
	for _, e := range exts {
		sub = append(sub, string(e.Singleton))
		sub = append(sub, e.Values...)
	}
	if len(t.PrivateUse) > 0 {
		sub = append(sub, "x")
		sub = append(sub, t.PrivateUse...)
	}
	return strings.Join(sub, "-"), nil
}

// MustCanonicalize is like Canonicalize but panics if s is not well-formed.
// It simplifies safe initialization of canonical tag values.
func MustCanonicalize(s string) string {
	c, err := Canonicalize(s)
	if err != nil {
		panic(err)
	}
	return c
}

// titleCase folds a script subtag to its canonical casing: first letter
// upper, remainder lower.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// upperRegion folds a region subtag to its canonical casing. Numeric codes
// have no case.
func upperRegion(s string) string {
	if len(s) > 0 && '0' <= s[0] && s[0] <= '9' {
		return s
	}
	return strings.ToUpper(s)
}

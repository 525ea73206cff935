// Copyright 2026 The Langtag Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package langtag

import "strings"

// Role identifies the grammatical position of a subtag within a tag.
type Role int

const (
	RoleUnclassified Role = iota
	RoleLanguage
	RoleExtlang
	RoleScript
	RoleRegion
	RoleVariant
	RoleSingleton
	RoleExtensionValue
	RolePrivateUse
)

var roleNames = []string{
	"unclassified",
	"language",
	"extlang",
	"script",
	"region",
	"variant",
	"singleton",
	"extension value",
	"private use",
}

func (r Role) String() string {
	if r < 0 || int(r) >= len(roleNames) {
		return "unclassified"
	}
	return roleNames[r]
}

// Extension is a singleton character together with its value subtags.
// The value list is never empty for a Tag produced by Parse.
type Extension struct {
	Singleton byte
	Values    []string
}

// Tag is the structured form of a well-formed BCP 47 language tag.
// All subtag values are stored lowercase, the case-insensitive form used
// for classification and registry lookup; canonical casing is applied by
// Canonicalize only.
//
// Exactly one of Grandfathered, PrivateUseOnly, or a non-empty Language
// holds for a Tag produced by Parse. A grandfathered or private-use-only
// tag carries none of the other structural fields.
type Tag struct {
	Language   string
	Extlangs   []string // at most three, in order of appearance
	Script     string
	Region     string
	Variants   []string    // in order of appearance, no duplicates
	Extensions []Extension // in order of appearance, singletons unique
	PrivateUse []string    // in order of appearance

	Grandfathered  bool
	PrivateUseOnly bool

	// str is the lowercase as-parsed form, kept so String can round-trip
	// grandfathered tags, which carry no structural fields.
	str string
}

// String returns the tag in its lowercase as-parsed form.
func (t Tag) String() string {
	if t.str != "" {
		return t.str
	}
	sub := make([]string, 0, 8)
	if t.Language != "" {
		sub = append(sub, t.Language)
	}
	sub = append(sub, t.Extlangs...)
	if t.Script != "" {
		sub = append(sub, t.Script)
	}
	if t.Region != "" {
		sub = append(sub, t.Region)
	}
	sub = append(sub, t.Variants...)
	for _, e := range t.Extensions {
		sub = append(sub, string(e.Singleton))
		sub = append(sub, e.Values...)
	}
	if len(t.PrivateUse) > 0 {
		sub = append(sub, "x")
		sub = append(sub, t.PrivateUse...)
	}
	return strings.Join(sub, "-")
}

// Extension returns the value subtags of the extension identified by
// singleton, and whether that extension is present.
func (t Tag) Extension(singleton byte) ([]string, bool) {
	for _, e := range t.Extensions {
		if e.Singleton == singleton {
			return e.Values, true
		}
	}
	return nil, false
}

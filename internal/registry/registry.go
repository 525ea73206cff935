// Copyright 2026 The Langtag Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package registry holds the closed subtag code tables used for validating
// and canonicalizing BCP 47 language tags: primary languages, extended
// languages, scripts, regions, and the grandfathered whole-tag forms, plus
// suggestion tables for common mistakes.
//
// The tables are a representative subset of the IANA Language Subtag
// Registry. They are initialized at program start and never mutated, so all
// lookups are safe for concurrent use.
package registry

import "strings"

// Language is a primary language record.
type Language struct {
	Code string // canonical form, lowercase
	Name string
	// Preferred is the replacement subtag for deprecated codes, if any.
	Preferred string
	// SuppressScript is the script implied by default for this language.
	// A tag carrying it explicitly is redundant.
	SuppressScript string
}

// Extlang is an extended language record. Its Preferred value names the
// primary language subtag that replaces the prefix+extlang pair.
type Extlang struct {
	Code      string
	Name      string
	Preferred string
	Prefix    string
}

// Script is a script record. Canonical form is title case.
type Script struct {
	Code      string
	Name      string
	Preferred string
}

// Region is a region record. Canonical form is upper case for letter codes
// and unchanged for numeric codes.
type Region struct {
	Code      string
	Name      string
	Preferred string
}

// Grandfathered is a whole-tag form registered before RFC 4646.
type Grandfathered struct {
	Tag       string // registered spelling
	Name      string
	Preferred string
}

// LookupLanguage reports the language record for code, matched
// case-insensitively.
func LookupLanguage(code string) (Language, bool) {
	l, ok := languages[strings.ToLower(code)]
	return l, ok
}

// LookupExtlang reports the extended language record for code, matched
// case-insensitively.
func LookupExtlang(code string) (Extlang, bool) {
	e, ok := extlangs[strings.ToLower(code)]
	return e, ok
}

// LookupScript reports the script record for code, matched
// case-insensitively.
func LookupScript(code string) (Script, bool) {
	s, ok := scripts[strings.ToLower(code)]
	return s, ok
}

// LookupRegion reports the region record for code, matched
// case-insensitively.
func LookupRegion(code string) (Region, bool) {
	r, ok := regions[strings.ToLower(code)]
	return r, ok
}

// LookupGrandfathered reports the grandfathered record whose registered
// form equals tag, matched case-insensitively against the whole tag.
func LookupGrandfathered(tag string) (Grandfathered, bool) {
	g, ok := grandfathered[strings.ToLower(tag)]
	return g, ok
}

// SuggestLanguage reports the likely intended language code for a string
// commonly mistaken for one, such as a country code used in language
// position.
func SuggestLanguage(code string) (string, bool) {
	s, ok := languageSuggestions[strings.ToLower(code)]
	return s, ok
}

// SuggestRegion reports the likely intended region code for a string
// commonly mistaken for one, such as an obsolete country abbreviation.
func SuggestRegion(code string) (string, bool) {
	s, ok := regionSuggestions[strings.ToLower(code)]
	return s, ok
}

// Copyright 2026 The Langtag Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package registry

import "testing"

func TestLookupCaseInsensitive(t *testing.T) {
	for _, code := range []string{"en", "EN", "En"} {
		l, ok := LookupLanguage(code)
		if !ok || l.Code != "en" {
			t.Errorf("LookupLanguage(%q) = %+v, %v; want en record", code, l, ok)
		}
	}
	for _, code := range []string{"latn", "Latn", "LATN"} {
		s, ok := LookupScript(code)
		if !ok || s.Code != "Latn" {
			t.Errorf("LookupScript(%q) = %+v, %v; want Latn record", code, s, ok)
		}
	}
	for _, code := range []string{"us", "US", "uS"} {
		r, ok := LookupRegion(code)
		if !ok || r.Code != "US" {
			t.Errorf("LookupRegion(%q) = %+v, %v; want US record", code, r, ok)
		}
	}
}

func TestLookupAbsent(t *testing.T) {
	if _, ok := LookupLanguage("qq"); ok {
		t.Error("LookupLanguage(qq): present, want absent")
	}
	if _, ok := LookupScript("qabc"); ok {
		t.Error("LookupScript(qabc): present, want absent")
	}
	if _, ok := LookupRegion("zy"); ok {
		t.Error("LookupRegion(zy): present, want absent")
	}
	if _, ok := LookupExtlang("zzz"); ok {
		t.Error("LookupExtlang(zzz): present, want absent")
	}
}

func TestPreferredValues(t *testing.T) {
	tests := []struct {
		lookup string
		code   string
		want   string
	}{
		{"language", "iw", "he"},
		{"language", "in", "id"},
		{"language", "mo", "ro"},
		{"script", "Qaai", "Zinh"},
		{"region", "BU", "MM"},
		{"region", "ZR", "CD"},
	}
	for _, tt := range tests {
		var got string
		var ok bool
		switch tt.lookup {
		case "language":
			var l Language
			l, ok = LookupLanguage(tt.code)
			got = l.Preferred
		case "script":
			var s Script
			s, ok = LookupScript(tt.code)
			got = s.Preferred
		case "region":
			var r Region
			r, ok = LookupRegion(tt.code)
			got = r.Preferred
		}
		if !ok || got != tt.want {
			t.Errorf("%s %q: preferred = %q, %v; want %q", tt.lookup, tt.code, got, ok, tt.want)
		}
	}
}

func TestPreferredTargetsRegistered(t *testing.T) {
	// Canonicalization must terminate: every preferred value must name a
	// registered, non-deprecated entry of the same registry.
	for code, l := range languages {
		if l.Preferred == "" {
			continue
		}
		target, ok := LookupLanguage(l.Preferred)
		if !ok || target.Preferred != "" {
			t.Errorf("language %q: preferred %q is unregistered or itself deprecated", code, l.Preferred)
		}
	}
	for code, e := range extlangs {
		if e.Preferred == "" {
			continue
		}
		if _, ok := LookupLanguage(e.Preferred); !ok {
			t.Errorf("extlang %q: preferred %q is not a registered language", code, e.Preferred)
		}
	}
	for code, s := range scripts {
		if s.Preferred == "" {
			continue
		}
		target, ok := LookupScript(s.Preferred)
		if !ok || target.Preferred != "" {
			t.Errorf("script %q: preferred %q is unregistered or itself deprecated", code, s.Preferred)
		}
	}
	for code, r := range regions {
		if r.Preferred == "" {
			continue
		}
		target, ok := LookupRegion(r.Preferred)
		if !ok || target.Preferred != "" {
			t.Errorf("region %q: preferred %q is unregistered or itself deprecated", code, r.Preferred)
		}
	}
}

func TestSuppressScriptsRegistered(t *testing.T) {
	for code, l := range languages {
		if l.SuppressScript == "" {
			continue
		}
		if _, ok := LookupScript(l.SuppressScript); !ok {
			t.Errorf("language %q: suppress script %q is not registered", code, l.SuppressScript)
		}
	}
}

func TestGrandfathered(t *testing.T) {
	g, ok := LookupGrandfathered("I-KLINGON")
	if !ok || g.Tag != "i-klingon" || g.Preferred != "tlh" {
		t.Errorf("LookupGrandfathered(I-KLINGON) = %+v, %v", g, ok)
	}
	if _, ok := LookupGrandfathered("en-US"); ok {
		t.Error("LookupGrandfathered(en-US): present, want absent")
	}
	// Preferred grandfathered replacements parse under the subtag grammar,
	// so they must be registered languages (whole-tag replacements aside).
	for key, g := range grandfathered {
		if g.Preferred == "" || g.Preferred == "en-GB-oxendict" {
			continue
		}
		if _, ok := LookupLanguage(g.Preferred); !ok {
			t.Errorf("grandfathered %q: preferred %q is not a registered language", key, g.Preferred)
		}
	}
}

func TestSuggestions(t *testing.T) {
	if s, ok := SuggestLanguage("CH"); !ok || s != "zh" {
		t.Errorf(`SuggestLanguage(CH) = %q, %v; want "zh", true`, s, ok)
	}
	if s, ok := SuggestRegion("uk"); !ok || s != "GB" {
		t.Errorf(`SuggestRegion(uk) = %q, %v; want "GB", true`, s, ok)
	}
	if _, ok := SuggestLanguage("en"); ok {
		t.Error("SuggestLanguage(en): present, want absent")
	}
	// A suggestion must never shadow a registered code: the validator only
	// consults suggestions for codes absent from the registry.
	for code := range languageSuggestions {
		if _, ok := LookupLanguage(code); ok {
			t.Errorf("language suggestion key %q is itself a registered language", code)
		}
	}
	for code := range regionSuggestions {
		if _, ok := LookupRegion(code); ok {
			t.Errorf("region suggestion key %q is itself a registered region", code)
		}
	}
}

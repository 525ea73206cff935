// Copyright 2026 The Langtag Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package langtag

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/tagtools/langtag/internal/registry"
)

// phase tracks the parser's position in the subtag grammar. Subtag shapes
// overlap across roles, so a token is classified by shape plus the current
// phase. Phases only ever advance; a well-shaped subtag belonging to a
// phase that has already been passed is a syntax error, not a reordering.
type phase int

const (
	phaseExtlang phase = iota
	phaseScript
	phaseRegion
	phaseVariant
	phaseExtension
	phasePrivateUse
)

func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c < 'a' || 'z' < c {
			return false
		}
	}
	return true
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c < '0' || '9' < c {
			return false
		}
	}
	return true
}

func isAlphaNum(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('a' <= c && c <= 'z' || '0' <= c && c <= '9') {
			return false
		}
	}
	return true
}

// isLanguage reports whether s has a legal primary-language shape:
// 2–3 letters, 4 letters (reserved), or 5–8 letters (registered).
func isLanguage(s string) bool {
	return 2 <= len(s) && len(s) <= 8 && isAlpha(s)
}

func isScript(s string) bool {
	return len(s) == 4 && isAlpha(s)
}

func isRegion(s string) bool {
	return len(s) == 2 && isAlpha(s) || len(s) == 3 && isDigits(s)
}

// isVariant reports whether s has variant shape: 5–8 alphanumerics, or a
// digit followed by 3 alphanumerics.
func isVariant(s string) bool {
	if 5 <= len(s) && len(s) <= 8 && isAlphaNum(s) {
		return true
	}
	return len(s) == 4 && '0' <= s[0] && s[0] <= '9' && isAlphaNum(s)
}

// scanner splits a lowercased tag into hyphen-delimited tokens. Any token
// that is empty, longer than 8 bytes, or not ASCII alphanumeric stops the
// scan with an error; a broken token invalidates the whole tag.
type scanner struct {
	s     string
	token string
	start int // offset of token in s
	next  int
	done  bool
	err   *SyntaxError
}

func makeScanner(s string) scanner {
	scan := scanner{s: s}
	scan.scan()
	return scan
}

func (s *scanner) scan() {
	if s.err != nil || s.next > len(s.s) {
		s.done, s.token = true, ""
		return
	}
	s.start = s.next
	end := strings.IndexByte(s.s[s.next:], '-')
	if end < 0 {
		end = len(s.s)
	} else {
		end += s.next
	}
	token := s.s[s.start:end]
	s.next = end + 1
	switch {
	case token == "":
		s.err = syntaxErr(ErrInvalidSyntax, "", s.start)
	case len(token) > 8:
		s.err = syntaxErr(ErrInvalidSyntax, token, s.start)
	case !isAlphaNum(token):
		s.err = syntaxErr(ErrMalformed, token, s.start)
	}
	if s.err != nil {
		s.done, s.token = true, ""
		return
	}
	s.token = token
}

// Parse parses s as a BCP 47 language tag and returns its structured form.
// If s violates the subtag grammar, Parse returns the zero Tag and a
// *SyntaxError describing the first violation; a structure and an error are
// never returned together. Classification is case-insensitive and the
// returned subtag values are lowercase.
func Parse(s string) (Tag, error) {
	lower := strings.ToLower(s)
	if strings.TrimSpace(lower) == "" {
		return Tag{}, syntaxErr(ErrMalformed, "", 0)
	}
	if _, ok := registry.LookupGrandfathered(lower); ok {
		return Tag{Grandfathered: true, str: lower}, nil
	}

	scan := makeScanner(lower)
	if scan.err != nil {
		return Tag{}, scan.err
	}

	if scan.token == "x" {
		pu, err := parsePrivateUse(&scan)
		if err != nil {
			return Tag{}, err
		}
		return Tag{PrivateUseOnly: true, PrivateUse: pu, str: lower}, nil
	}

	if !isLanguage(scan.token) {
		return Tag{}, syntaxErr(ErrInvalidSyntax, scan.token, scan.start)
	}
	t := Tag{Language: scan.token}

	cur := phaseExtlang
	open := -1 // index into t.Extensions of the open extension, or -1
	for scan.scan(); !scan.done; scan.scan() {
		tok := scan.token

		if tok == "x" {
			if err := closeExtension(&t, open, &scan); err != nil {
				return Tag{}, err
			}
			pu, err := parsePrivateUse(&scan)
			if err != nil {
				return Tag{}, err
			}
			t.PrivateUse = pu
			cur = phasePrivateUse
			break
		}

		if len(tok) == 1 {
			for _, e := range t.Extensions {
				if e.Singleton == tok[0] {
					return Tag{}, syntaxErr(ErrDuplicateSingleton, tok, scan.start)
				}
			}
			if err := closeExtension(&t, open, &scan); err != nil {
				return Tag{}, err
			}
			t.Extensions = append(t.Extensions, Extension{Singleton: tok[0]})
			open = len(t.Extensions) - 1
			cur = phaseExtension
			continue
		}

		if cur == phaseExtension {
			// Any 2–8 alphanumeric token extends the open extension.
			t.Extensions[open].Values = append(t.Extensions[open].Values, tok)
			continue
		}

		if cur == phaseExtlang && len(t.Extlangs) < 3 && len(tok) == 3 && isAlpha(tok) {
			if _, ok := registry.LookupExtlang(tok); ok {
				t.Extlangs = append(t.Extlangs, tok)
				continue
			}
		}

		if isScript(tok) {
			if t.Script != "" {
				return Tag{}, syntaxErr(ErrInvalidSyntax, tok, scan.start)
			}
			if cur > phaseScript {
				return Tag{}, syntaxErr(ErrInvalidOrder, tok, scan.start)
			}
			t.Script = tok
			cur = phaseRegion
			continue
		}

		if isRegion(tok) {
			if t.Region != "" {
				return Tag{}, syntaxErr(ErrInvalidSyntax, tok, scan.start)
			}
			if cur > phaseRegion {
				return Tag{}, syntaxErr(ErrInvalidOrder, tok, scan.start)
			}
			t.Region = tok
			cur = phaseVariant
			continue
		}

		if isVariant(tok) {
			for _, v := range t.Variants {
				if v == tok {
					return Tag{}, syntaxErr(ErrDuplicateVariant, tok, scan.start)
				}
			}
			t.Variants = append(t.Variants, tok)
			cur = phaseVariant
			continue
		}

		return Tag{}, syntaxErr(ErrInvalidSyntax, tok, scan.start)
	}
	if scan.err != nil {
		return Tag{}, scan.err
	}
	if cur != phasePrivateUse {
		if err := closeExtension(&t, open, &scan); err != nil {
			return Tag{}, err
		}
	}
	t.str = lower
	return t, nil
}

// closeExtension checks that the open extension, if any, accumulated at
// least one value subtag before the tag moves on or ends.
func closeExtension(t *Tag, open int, scan *scanner) error {
	if open >= 0 && len(t.Extensions[open].Values) == 0 {
		return syntaxErr(ErrInvalidExtension, string(t.Extensions[open].Singleton), scan.start)
	}
	return nil
}

// parsePrivateUse consumes the remainder of the scan following an "x"
// marker. At least one subtag must follow; scanner-level violations inside
// the section are reported as ErrInvalidPrivateUse.
func parsePrivateUse(scan *scanner) ([]string, error) {
	var pu []string
	for scan.scan(); !scan.done; scan.scan() {
		pu = append(pu, scan.token)
	}
	if scan.err != nil {
		return nil, syntaxErr(ErrInvalidPrivateUse, scan.err.Subtag, scan.err.Offset)
	}
	if len(pu) == 0 {
		return nil, syntaxErr(ErrInvalidPrivateUse, "x", scan.start)
	}
	return pu, nil
}

var errInvalidWeight = errors.New("langtag: invalid Accept-Language weight")

// ParseAcceptLanguage parses the contents of an Accept-Language header as
// defined in RFC 9110 and returns a list of tags and corresponding quality
// weights, sorted by highest weight first and then by first occurrence.
// Entries with a weight of zero are dropped. An error is returned if an
// entry is not a well-formed tag or carries an unparsable weight.
func ParseAcceptLanguage(s string) ([]Tag, []float32, error) {
	var (
		tags []Tag
		qs   []float32
	)
	for s != "" {
		var entry string
		if entry, s = split(s, ','); entry == "" {
			continue
		}
		entry, weight := split(entry, ';')

		var t Tag
		if entry == "*" {
			// Defined by the spec to match any language.
			t = Tag{Language: "mul", str: "mul"}
		} else {
			var err error
			if t, err = Parse(entry); err != nil {
				return nil, nil, err
			}
		}

		w := 1.0
		if weight != "" {
			weight = consume(weight, 'q')
			weight = consume(weight, '=')
			// consume returns the empty string when a token could not be
			// consumed, resulting in an error for ParseFloat.
			var err error
			if w, err = strconv.ParseFloat(weight, 32); err != nil {
				return nil, nil, errInvalidWeight
			}
			if w <= 0 {
				continue
			}
		}
		tags = append(tags, t)
		qs = append(qs, float32(w))
	}
	// sort.SliceStable cannot swap two slices in step; sort an index
	// permutation instead.
	idx := make([]int, len(tags))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool { return qs[idx[i]] > qs[idx[j]] })
	outT := make([]Tag, len(tags))
	outQ := make([]float32, len(qs))
	for i, j := range idx {
		outT[i], outQ[i] = tags[j], qs[j]
	}
	return outT, outQ, nil
}

// consume strips a leading c from s and trims the remainder; it returns ""
// when s does not start with c.
func consume(s string, c byte) string {
	if s == "" || s[0] != c {
		return ""
	}
	return strings.TrimSpace(s[1:])
}

// split cuts s at the first c into a trimmed head and tail; the tail is
// empty when c is absent.
func split(s string, c byte) (head, tail string) {
	i := strings.IndexByte(s, c)
	if i < 0 {
		return strings.TrimSpace(s), ""
	}
	return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+1:])
}

// Copyright 2026 The Langtag Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package langtag

import "fmt"

// SyntaxErrorKind classifies the grammar violation that stopped a parse.
type SyntaxErrorKind int

const (
	// ErrMalformed marks input that is not a tag at all, such as an empty
	// string or one containing characters outside ASCII letters, digits
	// and hyphens.
	ErrMalformed SyntaxErrorKind = iota
	// ErrInvalidSyntax marks a subtag whose shape is not legal for its
	// position.
	ErrInvalidSyntax
	// ErrDuplicateVariant marks a repeated variant subtag.
	ErrDuplicateVariant
	// ErrDuplicateSingleton marks a repeated extension singleton.
	ErrDuplicateSingleton
	// ErrInvalidExtension marks an extension singleton with no value
	// subtags.
	ErrInvalidExtension
	// ErrInvalidPrivateUse marks a private-use section that is empty or
	// contains an ill-shaped subtag.
	ErrInvalidPrivateUse
	// ErrInvalidOrder marks a well-shaped subtag appearing after its
	// grammatical position has already been passed.
	ErrInvalidOrder
)

var syntaxErrorText = []string{
	"malformed tag",
	"invalid subtag",
	"duplicate variant",
	"duplicate singleton",
	"empty extension",
	"invalid private-use subtag",
	"misordered subtag",
}

func (k SyntaxErrorKind) String() string {
	if k < 0 || int(k) >= len(syntaxErrorText) {
		return "invalid subtag"
	}
	return syntaxErrorText[k]
}

// SyntaxError reports the first grammar violation found in a tag. Parsing
// stops at the first violation; a broken tag has no trustworthy partial
// reading, so no Tag accompanies a SyntaxError.
type SyntaxError struct {
	Kind   SyntaxErrorKind
	Subtag string // offending subtag text, may be empty
	Offset int    // byte offset of the offending subtag, or -1
}

func (e *SyntaxError) Error() string {
	switch {
	case e.Subtag == "" && e.Offset < 0:
		return fmt.Sprintf("langtag: %v", e.Kind)
	case e.Subtag == "":
		return fmt.Sprintf("langtag: %v at offset %d", e.Kind, e.Offset)
	case e.Offset < 0:
		return fmt.Sprintf("langtag: %v %q", e.Kind, e.Subtag)
	}
	return fmt.Sprintf("langtag: %v %q at offset %d", e.Kind, e.Subtag, e.Offset)
}

func syntaxErr(kind SyntaxErrorKind, subtag string, offset int) *SyntaxError {
	return &SyntaxError{Kind: kind, Subtag: subtag, Offset: offset}
}

// Copyright 2026 The Langtag Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package langtag

// MustParse is like Parse, but panics if the given tag cannot be parsed.
// It simplifies safe initialization of Tag values.
func MustParse(s string) Tag {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

var (
	English            = MustParse("en")
	AmericanEnglish    = MustParse("en-US")
	BritishEnglish     = MustParse("en-GB")
	German             = MustParse("de")
	French             = MustParse("fr")
	Spanish            = MustParse("es")
	Portuguese         = MustParse("pt")
	Italian            = MustParse("it")
	Dutch              = MustParse("nl")
	Russian            = MustParse("ru")
	Japanese           = MustParse("ja")
	Korean             = MustParse("ko")
	Chinese            = MustParse("zh")
	SimplifiedChinese  = MustParse("zh-Hans")
	TraditionalChinese = MustParse("zh-Hant")
	Arabic             = MustParse("ar")
	Hindi              = MustParse("hi")
)

// Copyright 2026 The Langtag Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package langtag

import "fmt"

func ExampleParse() {
	t, _ := Parse("zh-yue-Hant-HK")
	fmt.Println(t.Language, t.Extlangs, t.Script, t.Region)
	// Output: zh [yue] hant hk
}

func ExampleCanonicalize() {
	fmt.Println(MustCanonicalize("en-latn-us"))
	fmt.Println(MustCanonicalize("iw"))
	fmt.Println(MustCanonicalize("zh-yue-HK"))
	// Output:
	// en-US
	// he
	// yue-HK
}

func ExampleValidate() {
	r := Validate("ch-DE", Default)
	fmt.Println(r.WellFormed, r.Valid)
	for _, p := range r.Problems {
		fmt.Println(p.Message)
	}
	// Output:
	// true false
	// unknown language "ch"; did you mean "zh"?
}

func ExampleIsWellFormed() {
	fmt.Println(IsWellFormed("en-US"))
	fmt.Println(IsWellFormed("en--US"))
	// Output:
	// true
	// false
}

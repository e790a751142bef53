// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package compare

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

var statReplacer = strings.NewReplacer(
	"special-attack", "Sp. Atk",
	"special-defense", "Sp. Def",
)

// FormatStatName - "special-attack" → "Sp. Atk", "hp" → "Hp"
func FormatStatName(name string) string {
	words := strings.Split(statReplacer.Replace(name), "-")
	for i, w := range words {
		words[i] = FormatName(w)
	}
	return strings.Join(words, " ")
}

// FormatName - upper case first letter
func FormatName(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if utf8.RuneError == r {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}

// FormatID - "#025"
func FormatID(id int) string {
	return fmt.Sprintf("#%03d", id)
}

// Copyright 2023 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

// A TokenKind discriminates the two classes of token the scanner emits.
type TokenKind int8

const (
	Number TokenKind = iota // a maximal run of ASCII digits
	Word                    // a maximal run of ASCII letters
)

func (k TokenKind) String() string {
	if k == Number {
		return "number"
	}
	return "word"
}

// A Token is one lexical element of a date/time input.
// Pos is the byte offset of the token's first character.
type Token struct {
	Kind TokenKind
	Text string
	Pos  int
}

// Scan splits text into Number and Word tokens. Digit runs and letter
// runs each form one token; every other byte is a separator and is
// discarded. Scan never fails: input containing no digits or letters
// yields an empty slice.
//
// The scanner is deliberately byte-oriented. Date/time inputs are
// ASCII in every format this module accepts; multi-byte runes act as
// separators, which is the desired treatment for exotic punctuation.
func Scan(text string) []Token {
	var tokens []Token
	i := 0
	for i < len(text) {
		c := text[i]
		switch {
		case isDigit(c):
			start := i
			for i < len(text) && isDigit(text[i]) {
				i++
			}
			tokens = append(tokens, Token{Number, text[start:i], start})
		case isAlpha(c):
			start := i
			for i < len(text) && isAlpha(text[i]) {
				i++
			}
			tokens = append(tokens, Token{Word, text[start:i], start})
		default:
			i++
		}
	}
	return tokens
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isAlpha(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides the token list model for renum.
package token

import "strings"

// Token is one comma-delimited, whitespace-trimmed entry of an input list.
type Token struct {
	// Raw is the trimmed token text, used verbatim in rename attributes.
	Raw string `json:"raw"`
}

// Parse splits input on commas and trims surrounding whitespace from each
// part. Splitting an input with N commas always yields N+1 tokens: the empty
// string parses to a single empty token, and consecutive commas produce
// empty tokens. Order and duplicates are preserved.
func Parse(input string) []Token {
	parts := strings.Split(input, ",")
	tokens := make([]Token, 0, len(parts))
	for _, part := range parts {
		tokens = append(tokens, Token{Raw: strings.TrimSpace(part)})
	}
	return tokens
}

// IsEmpty reports whether the token has no text.
func (t Token) IsEmpty() bool {
	return t.Raw == ""
}

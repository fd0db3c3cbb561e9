/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package typescript provides TypeScript string-literal union formatting
// for token lists.
package typescript

import (
	"fmt"
	"strings"

	"bennypowers.dev/renum/generate/formatter"
	"bennypowers.dev/renum/token"
)

// Formatter outputs a TypeScript string-literal union type.
type Formatter struct{}

// New creates a new TypeScript formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format renders an exported union type with one quoted raw token per line.
// Raw token text is inserted verbatim, matching the tool's no-validation
// stance.
func (f *Formatter) Format(tokens []token.Token, opts formatter.Options) ([]byte, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "export type %s =\n", opts.EnumName())
	for i, tok := range tokens {
		terminator := ""
		if i == len(tokens)-1 {
			terminator = ";"
		}
		fmt.Fprintf(&sb, "  | '%s'%s\n", tok.Raw, terminator)
	}
	return []byte(sb.String()), nil
}

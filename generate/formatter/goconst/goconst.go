/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package goconst provides Go string-constant formatting for token lists.
package goconst

import (
	"fmt"
	"strings"

	"bennypowers.dev/renum/generate/formatter"
	"bennypowers.dev/renum/token"
)

// Formatter outputs a Go string type with one constant per token.
type Formatter struct{}

// New creates a new Go constant formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format renders a named string type and a const block, one constant per
// token. Constant names are the type name joined with the PascalCase
// identifier, so values stay grouped and collision-free across types.
func (f *Formatter) Format(tokens []token.Token, opts formatter.Options) ([]byte, error) {
	name := opts.EnumName()

	var sb strings.Builder
	fmt.Fprintf(&sb, "type %s string\n\n", name)
	sb.WriteString("const (\n")
	for _, tok := range tokens {
		fmt.Fprintf(&sb, "\t%s%s %s = %q\n", name, formatter.PascalIdent(tok.Raw), name, tok.Raw)
	}
	sb.WriteString(")\n")
	return []byte(sb.String()), nil
}

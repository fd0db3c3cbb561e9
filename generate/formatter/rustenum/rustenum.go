/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package rustenum provides a complete Rust enum declaration wrapping the
// serde variant pairs.
package rustenum

import (
	"strings"

	"bennypowers.dev/renum/generate/formatter"
	"bennypowers.dev/renum/generate/formatter/serde"
	"bennypowers.dev/renum/token"
)

// Formatter outputs a full Rust enum declaration.
type Formatter struct{}

// New creates a new Rust enum formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format renders a derive attribute and a pub enum declaration whose body
// is the serde attribute/variant pair for each token, indented four spaces.
func (f *Formatter) Format(tokens []token.Token, opts formatter.Options) ([]byte, error) {
	var sb strings.Builder
	sb.WriteString("#[derive(")
	sb.WriteString(strings.Join(opts.DeriveList(), ", "))
	sb.WriteString(")]\n")
	sb.WriteString("pub enum ")
	sb.WriteString(opts.EnumName())
	sb.WriteString(" {\n")
	for _, tok := range tokens {
		serde.WriteVariant(&sb, tok, "    ")
	}
	sb.WriteString("}\n")
	return []byte(sb.String()), nil
}

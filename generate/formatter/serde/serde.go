/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package serde provides the serde enum-variant format, one rename
// attribute and one variant line per token.
package serde

import (
	"strings"

	"bennypowers.dev/renum/generate/formatter"
	"bennypowers.dev/renum/token"
)

// Formatter outputs serde rename attributes with PascalCase variants.
type Formatter struct{}

// New creates a new serde formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format renders one attribute/variant pair per token, in input order.
// Raw token text is inserted verbatim: embedded quotes or backslashes pass
// through unescaped.
func (f *Formatter) Format(tokens []token.Token, opts formatter.Options) ([]byte, error) {
	var sb strings.Builder
	for _, tok := range tokens {
		WriteVariant(&sb, tok, "")
	}
	return []byte(sb.String()), nil
}

// WriteVariant writes the attribute/variant pair for a single token,
// prefixing each line with indent. Shared with the enum format, which emits
// the same pairs inside a declaration body.
func WriteVariant(sb *strings.Builder, tok token.Token, indent string) {
	sb.WriteString(indent)
	sb.WriteString(`#[serde(rename = "`)
	sb.WriteString(tok.Raw)
	sb.WriteString("\")]\n")
	sb.WriteString(indent)
	sb.WriteString(formatter.PascalIdent(tok.Raw))
	sb.WriteString(",\n")
}

/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package formatter provides the interface and common utilities for renum
// output formatters.
package formatter

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/renum/token"
)

// Formatter defines the interface for output formatters.
type Formatter interface {
	// Format renders the token list in the target format.
	Format(tokens []token.Token, opts Options) ([]byte, error)
}

// Options configures formatter behavior.
type Options struct {
	// Name is the enum or type name for declaration-producing formats.
	Name string

	// Derives are the Rust derive traits for the enum format.
	Derives []string
}

// DefaultName is used when no enum/type name is configured.
const DefaultName = "Values"

// DefaultDerives matches the derive list of the enums this tool's output
// is pasted into.
var DefaultDerives = []string{"Debug", "Clone", "Copy", "PartialEq", "Serialize", "Deserialize"}

// EnumName returns the configured name, falling back to DefaultName.
func (o Options) EnumName() string {
	if o.Name == "" {
		return DefaultName
	}
	return o.Name
}

// DeriveList returns the configured derives, falling back to DefaultDerives.
func (o Options) DeriveList() []string {
	if len(o.Derives) == 0 {
		return DefaultDerives
	}
	return o.Derives
}

// PascalIdent derives the identifier form of a token: underscores become
// word breaks, each word is title-cased, and the words are concatenated.
// Title-casing lowercases word remainders, so SCREAMING_SNAKE inputs come
// out as PascalCase ("TYPE_NAME" -> "TypeName").
func PascalIdent(raw string) string {
	spaced := strings.ReplaceAll(raw, "_", " ")
	titled := cases.Title(language.English).String(spaced)
	return strings.ReplaceAll(titled, " ", "")
}

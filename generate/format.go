/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package generate renders parsed token lists into code boilerplate.
package generate

import (
	"fmt"
	"strings"

	"bennypowers.dev/renum/generate/formatter"
	"bennypowers.dev/renum/generate/formatter/goconst"
	"bennypowers.dev/renum/generate/formatter/rustenum"
	"bennypowers.dev/renum/generate/formatter/serde"
	"bennypowers.dev/renum/generate/formatter/typescript"
	"bennypowers.dev/renum/token"
)

// Format represents an output format for token boilerplate.
type Format string

const (
	// FormatSerde outputs serde rename attributes with PascalCase variants
	// (default).
	FormatSerde Format = "serde"

	// FormatEnum outputs a complete Rust enum declaration.
	FormatEnum Format = "enum"

	// FormatGo outputs a Go string type with a const block.
	FormatGo Format = "go"

	// FormatTypeScript outputs a TypeScript string-literal union.
	FormatTypeScript Format = "ts"
)

// ValidFormats returns all valid format strings.
func ValidFormats() []string {
	return []string{
		string(FormatSerde),
		string(FormatEnum),
		string(FormatGo),
		string(FormatTypeScript),
	}
}

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "serde", "":
		return FormatSerde, nil
	case "enum", "rust-enum":
		return FormatEnum, nil
	case "go", "golang":
		return FormatGo, nil
	case "ts", "typescript":
		return FormatTypeScript, nil
	default:
		return "", fmt.Errorf("unknown format: %s (valid: %s)", s, strings.Join(ValidFormats(), ", "))
	}
}

// Options configures boilerplate generation.
type Options struct {
	// Name is the enum or type name for declaration-producing formats.
	Name string

	// Derives are the Rust derive traits for the enum format.
	Derives []string
}

// FormatTokens renders tokens in the specified output format.
func FormatTokens(tokens []token.Token, format Format, opts Options) ([]byte, error) {
	fmtOpts := formatter.Options{
		Name:    opts.Name,
		Derives: opts.Derives,
	}

	var f formatter.Formatter
	switch format {
	case FormatSerde:
		f = serde.New()
	case FormatEnum:
		f = rustenum.New()
	case FormatGo:
		f = goconst.New()
	case FormatTypeScript:
		f = typescript.New()
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	return f.Format(tokens, fmtOpts)
}

// Render parses a raw comma-separated input string and formats the result.
// This is the whole pipeline of the original tool behind one call.
func Render(input string, format Format, opts Options) ([]byte, error) {
	return FormatTokens(token.Parse(input), format, opts)
}

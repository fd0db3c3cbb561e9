/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package rustenum_test

import (
	"strings"
	"testing"

	"bennypowers.dev/renum/generate/formatter"
	"bennypowers.dev/renum/generate/formatter/rustenum"
	"bennypowers.dev/renum/token"
)

func TestFormat_Declaration(t *testing.T) {
	tokens := token.Parse("SYMBOL, TYPE_NAME")
	out, err := rustenum.New().Format(tokens, formatter.Options{Name: "PortfolioColumn", Derives: []string{"Debug", "Serialize", "Deserialize"}})
	if err != nil {
		t.Fatalf("format failed: %v", err)
	}

	expected := "#[derive(Debug, Serialize, Deserialize)]\n" +
		"pub enum PortfolioColumn {\n" +
		"    #[serde(rename = \"SYMBOL\")]\n" +
		"    Symbol,\n" +
		"    #[serde(rename = \"TYPE_NAME\")]\n" +
		"    TypeName,\n" +
		"}\n"
	if string(out) != expected {
		t.Errorf("expected:\n%s\ngot:\n%s", expected, out)
	}
}

func TestFormat_Defaults(t *testing.T) {
	out, err := rustenum.New().Format(token.Parse("foo_bar"), formatter.Options{})
	if err != nil {
		t.Fatalf("format failed: %v", err)
	}
	got := string(out)

	if !strings.HasPrefix(got, "#[derive(Debug, Clone, Copy, PartialEq, Serialize, Deserialize)]\n") {
		t.Errorf("expected default derives, got %q", got)
	}
	if !strings.Contains(got, "pub enum Values {\n") {
		t.Errorf("expected default enum name, got %q", got)
	}
	if !strings.HasSuffix(got, "}\n") {
		t.Errorf("expected closing brace, got %q", got)
	}
}

func TestFormat_EmptyTokenStillEmitsPair(t *testing.T) {
	out, err := rustenum.New().Format(token.Parse(""), formatter.Options{})
	if err != nil {
		t.Fatalf("format failed: %v", err)
	}
	if !strings.Contains(string(out), "    #[serde(rename = \"\")]\n    ,\n") {
		t.Errorf("expected empty-token pair inside body, got %q", out)
	}
}

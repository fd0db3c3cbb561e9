/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package formatter_test

import (
	"strings"
	"testing"

	"bennypowers.dev/renum/generate/formatter"
)

func TestPascalIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"foo_bar", "FooBar"},
		{"baz_qux", "BazQux"},
		{"already_snake_case_long_name", "AlreadySnakeCaseLongName"},
		{"TYPE_NAME", "TypeName"},
		{"EXCHANGE_NAME", "ExchangeName"},
		{"SYMBOL", "Symbol"},
		{"single", "Single"},
		{"", ""},
		{"_", ""},
		{"a__b", "AB"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := formatter.PascalIdent(tt.input); got != tt.expected {
				t.Errorf("PascalIdent(%q): expected %q, got %q", tt.input, tt.expected, got)
			}
		})
	}
}

func TestPascalIdent_NoSeparatorsRemain(t *testing.T) {
	inputs := []string{"foo_bar", "a_b_c_d", "long_or_short", "date_acquired"}
	for _, input := range inputs {
		got := formatter.PascalIdent(input)
		if strings.ContainsAny(got, "_ ") {
			t.Errorf("PascalIdent(%q) = %q contains a separator", input, got)
		}
	}
}

func TestOptionsDefaults(t *testing.T) {
	var opts formatter.Options
	if got := opts.EnumName(); got != formatter.DefaultName {
		t.Errorf("expected default name %q, got %q", formatter.DefaultName, got)
	}
	if got := opts.DeriveList(); len(got) == 0 {
		t.Error("expected non-empty default derives")
	}

	opts = formatter.Options{Name: "SortColumn", Derives: []string{"Debug"}}
	if got := opts.EnumName(); got != "SortColumn" {
		t.Errorf("expected SortColumn, got %q", got)
	}
	if got := opts.DeriveList(); len(got) != 1 || got[0] != "Debug" {
		t.Errorf("expected [Debug], got %v", got)
	}
}

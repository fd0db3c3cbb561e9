/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package cmd

import (
	"bytes"
	"strings"
	"testing"
)

// execute runs the root command with the given args, capturing stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestBareInvocation_SingleToken(t *testing.T) {
	out, err := execute(t, "foo_bar")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := "#[serde(rename = \"foo_bar\")]\nFooBar,\n"
	if out != expected {
		t.Errorf("expected %q, got %q", expected, out)
	}
}

func TestBareInvocation_TwoTokens(t *testing.T) {
	out, err := execute(t, "foo_bar, baz_qux")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(out, "#[serde(rename = \"baz_qux\")]\nBazQux,\n") {
		t.Errorf("expected trailing baz_qux pair, got %q", out)
	}
	if strings.Count(out, "#[serde(rename = ") != 2 {
		t.Errorf("expected two attribute lines, got %q", out)
	}
}

func TestBareInvocation_EmptyString(t *testing.T) {
	out, err := execute(t, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := "#[serde(rename = \"\")]\n,\n"
	if out != expected {
		t.Errorf("expected %q, got %q", expected, out)
	}
}

func TestBareInvocation_MissingInput(t *testing.T) {
	out, err := execute(t)
	if err == nil {
		t.Fatal("expected an error when no input is given")
	}
	if !strings.Contains(out, "you need to specify the input string") {
		t.Errorf("expected advisory line on stdout, got %q", out)
	}
}

func TestGenerate_EnumFormat(t *testing.T) {
	out, err := execute(t, "generate", "-f", "enum", "-n", "PortfolioColumn", "SYMBOL, TYPE_NAME")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "pub enum PortfolioColumn {") {
		t.Errorf("expected enum declaration, got %q", out)
	}
	if !strings.Contains(out, "    TypeName,\n") {
		t.Errorf("expected indented TypeName variant, got %q", out)
	}
}

func TestGenerate_SerdeDefault(t *testing.T) {
	out, err := execute(t, "generate", "-f", "serde", "-n", "", "foo_bar")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := "#[serde(rename = \"foo_bar\")]\nFooBar,\n"
	if out != expected {
		t.Errorf("expected %q, got %q", expected, out)
	}
}

func TestGenerate_MissingInput(t *testing.T) {
	out, err := execute(t, "generate", "-f", "serde")
	if err == nil {
		t.Fatal("expected an error when no input is given")
	}
	if !strings.Contains(out, "you need to specify the input string") {
		t.Errorf("expected advisory line on stdout, got %q", out)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "renum ") {
		t.Errorf("expected version output, got %q", out)
	}
}

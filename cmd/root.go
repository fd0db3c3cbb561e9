/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for renum.
package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"bennypowers.dev/renum/cmd/generate"
	"bennypowers.dev/renum/cmd/version"
	generatelib "bennypowers.dev/renum/generate"
)

var rootCmd = &cobra.Command{
	Use:   "renum [tokens]",
	Short: "Generate enum boilerplate from comma-separated token lists",
	Long: `renum turns comma-separated snake_case token lists into code-generation
boilerplate. Called with a bare argument it prints serde enum-variant pairs:

  renum "foo_bar, baz_qux"
  #[serde(rename = "foo_bar")]
  FooBar,
  #[serde(rename = "baz_qux")]
  BazQux,

The generate subcommand adds output formats, file input, and file output.`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE:         run,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// run is the bare invocation path: serde format, stdout, first argument
// only. With no argument it prints the advisory line to stdout and then
// fails, so the process still terminates non-zero with a diagnostic on
// stderr.
func run(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "you need to specify the input string")
		return errors.New("no input string given")
	}

	out, err := generatelib.Render(args[0], generatelib.FormatSerde, generatelib.Options{})
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), string(out))
	return nil
}

func init() {
	rootCmd.AddCommand(generate.Cmd)
	rootCmd.AddCommand(version.Cmd)
}

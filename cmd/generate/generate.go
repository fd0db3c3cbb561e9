/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package generate provides the generate command for renum.
package generate

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/renum/config"
	"bennypowers.dev/renum/fs"
	generatelib "bennypowers.dev/renum/generate"
	"bennypowers.dev/renum/input"
	"bennypowers.dev/renum/internal/logger"
	"bennypowers.dev/renum/token"
)

// Cmd is the generate cobra command.
var Cmd = &cobra.Command{
	Use:   "generate [tokens...]",
	Short: "Generate boilerplate from token lists",
	Long: `Generate code boilerplate from comma-separated snake_case token lists.

Output Formats:
  serde  serde rename attributes with PascalCase variants (default)
  enum   complete Rust enum declaration
  go     Go string type with a const block
  ts     TypeScript string-literal union

Examples:
  # serde variant pairs to stdout
  renum generate "foo_bar, baz_qux"

  # Complete Rust enum with a custom name
  renum generate --format enum --name SortColumn "SYMBOL, TYPE_NAME"

  # Custom derive list
  renum generate -f enum --derive Debug --derive Serialize "foo_bar"

  # Read token lists from files (globs supported)
  renum generate --input "columns/**/*.txt" -f enum -o columns.rs

  # Use format, name, and inputs from config (.config/renum.yaml)
  renum generate`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "serde", "Output format: "+strings.Join(generatelib.ValidFormats(), ", "))
	Cmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")
	Cmd.Flags().StringArrayP("input", "i", nil, "Token-list file or glob pattern (repeatable)")
	Cmd.Flags().StringP("name", "n", "", "Enum or type name for declaration formats")
	Cmd.Flags().StringSlice("derive", nil, "Rust derive trait for the enum format (repeatable)")

	viper.BindPFlag("format", Cmd.Flags().Lookup("format"))
	viper.BindPFlag("name", Cmd.Flags().Lookup("name"))
}

func run(cmd *cobra.Command, args []string) error {
	outputFlag, _ := cmd.Flags().GetString("output")
	inputsFlag, _ := cmd.Flags().GetStringArray("input")
	derivesFlag, _ := cmd.Flags().GetStringSlice("derive")

	filesystem := fs.NewOSFileSystem()

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	// Load config from .config/renum.{yaml,yml,json,jsonc}
	cfg, err := config.Load(filesystem, cwd)
	if err != nil {
		logger.Warn("ignoring config: %v", err)
	}
	if cfg == nil {
		cfg = config.Default()
	}

	// Flags take precedence over config; config over defaults.
	formatName := viper.GetString("format")
	if !cmd.Flags().Changed("format") && cfg.Format != "" {
		formatName = cfg.Format
	}
	format, err := generatelib.ParseFormat(formatName)
	if err != nil {
		return err
	}

	name := viper.GetString("name")
	if !cmd.Flags().Changed("name") && cfg.Name != "" {
		name = cfg.Name
	}

	derives := derivesFlag
	if len(derives) == 0 {
		derives = cfg.Derives
	}

	output := outputFlag
	if output == "" {
		output = cfg.Output
	}

	inputs := inputsFlag
	if len(inputs) == 0 && len(args) == 0 {
		inputs = cfg.Inputs
	}

	if len(args) == 0 && len(inputs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "you need to specify the input string")
		return errors.New("no input tokens given")
	}

	var tokens []token.Token
	for _, arg := range args {
		tokens = append(tokens, token.Parse(arg)...)
	}
	if len(inputs) > 0 {
		paths, err := input.Expand(filesystem, cwd, inputs)
		if err != nil {
			return fmt.Errorf("expanding input patterns: %w", err)
		}
		if len(paths) == 0 {
			logger.Warn("no files matched input patterns %v", inputs)
		}
		fileTokens, err := input.Load(filesystem, paths)
		if err != nil {
			return err
		}
		tokens = append(tokens, fileTokens...)
	}

	out, err := generatelib.FormatTokens(tokens, format, generatelib.Options{
		Name:    name,
		Derives: derives,
	})
	if err != nil {
		return err
	}

	if output == "" {
		fmt.Fprint(cmd.OutOrStdout(), string(out))
		return nil
	}

	if err := filesystem.WriteFile(output, out, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	return nil
}

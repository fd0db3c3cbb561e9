/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package input loads token lists from files and glob patterns.
package input

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	renumfs "bennypowers.dev/renum/fs"
	"bennypowers.dev/renum/token"
)

// Expand resolves file patterns against the filesystem. Non-glob patterns
// pass through unchanged; glob patterns (including **) expand to every
// matching file under their non-glob base directory.
func Expand(filesystem renumfs.FileSystem, rootDir string, patterns []string) ([]string, error) {
	var result []string
	for _, pattern := range patterns {
		expanded, err := expandPattern(filesystem, rootDir, pattern)
		if err != nil {
			return nil, err
		}
		result = append(result, expanded...)
	}
	return result, nil
}

// Load reads token-list files and parses their contents. Newlines and
// carriage returns are treated as commas, so one-token-per-line files and
// comma-separated files parse the same way. Blank segments from trailing
// newlines are dropped; only argument strings keep literal empty tokens.
func Load(filesystem renumfs.FileSystem, paths []string) ([]token.Token, error) {
	var tokens []token.Token
	for _, path := range paths {
		data, err := filesystem.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}

		normalized := strings.NewReplacer("\r\n", ",", "\n", ",", "\r", ",").Replace(string(data))
		for _, tok := range token.Parse(normalized) {
			if tok.IsEmpty() {
				continue
			}
			tokens = append(tokens, tok)
		}
	}
	return tokens, nil
}

// expandPattern expands a single file pattern which may contain globs.
func expandPattern(filesystem renumfs.FileSystem, rootDir, pattern string) ([]string, error) {
	if !filepath.IsAbs(pattern) {
		pattern = filepath.Join(rootDir, pattern)
	}

	if !containsGlob(pattern) {
		// Not a glob, return the path directly (errors handled when file is read)
		return []string{pattern}, nil
	}

	return expandGlob(filesystem, pattern)
}

// containsGlob returns true if the pattern contains glob characters.
func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[")
}

// expandGlob expands a glob pattern against the filesystem.
func expandGlob(filesystem renumfs.FileSystem, pattern string) ([]string, error) {
	// Find the base directory (non-glob prefix)
	baseDir := pattern
	for containsGlob(baseDir) {
		baseDir = filepath.Dir(baseDir)
	}

	relPattern := strings.TrimPrefix(pattern, baseDir)
	relPattern = strings.TrimPrefix(relPattern, string(filepath.Separator))

	var matches []string

	err := fs.WalkDir(filesystem, baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Skip directories we can't read
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}

		relPath := strings.TrimPrefix(path, baseDir)
		relPath = strings.TrimPrefix(relPath, string(filepath.Separator))

		// doublestar handles both simple and ** globs
		if matched, _ := doublestar.Match(relPattern, relPath); matched {
			matches = append(matches, path)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return matches, nil
}

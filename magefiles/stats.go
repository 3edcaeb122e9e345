//go:build mage

// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// sourceRoots are the directories whose Go files count as project code.
var sourceRoots = []string{"cmd", "internal", "pkg", "tests"}

// pkgLines holds line counts for one package directory.
type pkgLines struct {
	Prod int `json:"prod"`
	Test int `json:"test"`
}

// Stats prints per-package Go line counts, the test-to-prod ratio, and the
// word count of the top-level Markdown docs as one JSON record.
func Stats() error {
	perPkg := map[string]*pkgLines{}

	for _, root := range sourceRoots {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if os.IsNotExist(err) {
					return filepath.SkipDir
				}
				return err
			}
			if d.IsDir() || !strings.HasSuffix(path, ".go") {
				return nil
			}
			count, err := countLines(path)
			if err != nil {
				return fmt.Errorf("counting %s: %w", path, err)
			}

			dir := filepath.ToSlash(filepath.Dir(path))
			p := perPkg[dir]
			if p == nil {
				p = &pkgLines{}
				perPkg[dir] = p
			}
			if strings.HasSuffix(path, "_test.go") {
				p.Test += count
			} else {
				p.Prod += count
			}
			return nil
		})
		if err != nil {
			return err
		}
	}

	var total pkgLines
	packages := make(map[string]pkgLines, len(perPkg))
	for dir, p := range perPkg {
		packages[dir] = *p
		total.Prod += p.Prod
		total.Test += p.Test
	}

	docWords, err := countWordsInGlob("*.md")
	if err != nil {
		return err
	}

	ratio := 0.0
	if total.Prod > 0 {
		ratio = float64(total.Test) / float64(total.Prod)
	}

	record := struct {
		Packages  map[string]pkgLines `json:"packages"`
		Prod      int                 `json:"go_loc_prod"`
		Test      int                 `json:"go_loc_test"`
		TestRatio string              `json:"test_ratio"`
		DocWords  int                 `json:"doc_wc"`
	}{
		Packages:  packages,
		Prod:      total.Prod,
		Test:      total.Test,
		TestRatio: fmt.Sprintf("%.2f", ratio),
		DocWords:  docWords,
	}
	line, err := json.Marshal(record)
	if err != nil {
		return err
	}
	fmt.Println(string(line))
	return nil
}

func countLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	count := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		count++
	}
	return count, scanner.Err()
}

// countWordsInGlob sums whitespace-separated words over every file matching
// pattern. Unreadable files are skipped.
func countWordsInGlob(pattern string) (int, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, path := range matches {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		inWord := false
		for _, r := range string(data) {
			if unicode.IsSpace(r) {
				inWord = false
			} else if !inWord {
				inWord = true
				total++
			}
		}
	}
	return total, nil
}

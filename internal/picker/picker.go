// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package picker implements the interactive PDF selection prompt used when
// no input file is given on the command line. It is a thin adapter over
// injected reader/writer pairs; the pipeline itself never touches the
// terminal.
package picker

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// ErrQuit is returned when the user quits the prompt with "q".
var ErrQuit = errors.New("selection cancelled")

// ListPDFs returns the sorted *.pdf files in dir.
func ListPDFs(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.pdf"))
	if err != nil {
		return nil, fmt.Errorf("listing PDFs in %s: %w", dir, err)
	}
	sort.Strings(matches)
	return matches, nil
}

// Choose prints a numbered list of candidates to out and reads a selection
// from in. An invalid selection is reported and re-prompted; "q" returns
// ErrQuit.
func Choose(candidates []string, in io.Reader, out io.Writer) (string, error) {
	if len(candidates) == 0 {
		return "", errors.New("no PDF files found in the working directory")
	}

	fmt.Fprintln(out, "Available PDF files:")
	for i, c := range candidates {
		fmt.Fprintf(out, "  %d) %s\n", i+1, filepath.Base(c))
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintf(out, "Select a file (1-%d, q to quit): ", len(candidates))
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", fmt.Errorf("reading selection: %w", err)
			}
			return "", ErrQuit
		}
		input := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(input, "q") {
			return "", ErrQuit
		}
		n, err := strconv.Atoi(input)
		if err != nil || n < 1 || n > len(candidates) {
			fmt.Fprintf(out, "invalid selection %q\n", input)
			continue
		}
		return candidates[n-1], nil
	}
}

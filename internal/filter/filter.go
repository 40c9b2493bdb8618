// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package filter discards non-substantive paragraphs from normalized page
// text: fragments too short to carry content, purely symbolic runs, and
// navigation boilerplate left behind by extraction.
package filter

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/pdf-distill/pkg/types"
)

// DefaultMinParagraphLen is the minimum trimmed length a paragraph must have
// to be retained.
const DefaultMinParagraphLen = 10

// DefaultBoilerplateTokens are short navigation artifacts that are never
// substantive content on their own. Matching is case-insensitive; bare
// numbers are handled separately.
var DefaultBoilerplateTokens = []string{"next", "previous", "page", "chapter"}

var (
	paragraphBoundary = regexp.MustCompile(`\n[ \t]*\n`)
	alphabetic        = regexp.MustCompile(`[a-zA-Z]`)
	bareNumber        = regexp.MustCompile(`^\d+$`)
)

// Filter splits page text into paragraph units and keeps only the
// substantive ones, preserving their original relative order.
type Filter struct {
	minLen int
	tokens map[string]bool
}

// New returns a Filter with the default thresholds.
func New() *Filter {
	return NewWithRules(Rules{})
}

// NewWithRules returns a Filter with the defaults adjusted by r: a positive
// MinParagraphLen replaces the default, and ExtraBoilerplate tokens are added
// to the built-in set.
func NewWithRules(r Rules) *Filter {
	minLen := DefaultMinParagraphLen
	if r.MinParagraphLen > 0 {
		minLen = r.MinParagraphLen
	}
	tokens := make(map[string]bool, len(DefaultBoilerplateTokens)+len(r.ExtraBoilerplate))
	for _, t := range DefaultBoilerplateTokens {
		tokens[strings.ToLower(t)] = true
	}
	for _, t := range r.ExtraBoilerplate {
		tokens[strings.ToLower(strings.TrimSpace(t))] = true
	}
	return &Filter{minLen: minLen, tokens: tokens}
}

// Document derives a new document with every page filtered.
func (f *Filter) Document(doc types.Document) types.Document {
	out := make(types.Document, len(doc))
	for i, p := range doc {
		out[i] = types.Page{Index: p.Index, Text: f.Page(p.Text)}
	}
	return out
}

// Page splits text on blank-line boundaries, drops paragraphs that fail the
// validity predicates, and rejoins the survivors with a blank-line separator
// in their original order.
func (f *Filter) Page(text string) string {
	var kept []string
	for _, para := range paragraphBoundary.Split(text, -1) {
		trimmed := strings.TrimSpace(para)
		if f.keep(trimmed) {
			kept = append(kept, trimmed)
		}
	}
	return strings.Join(kept, "\n\n")
}

// keep reports whether a trimmed paragraph is substantive. A paragraph is
// discarded if it is shorter than the minimum length, is a boilerplate token
// or bare number, or contains no alphabetic content at all.
func (f *Filter) keep(trimmed string) bool {
	if utf8.RuneCountInString(trimmed) < f.minLen {
		return false
	}
	if f.tokens[strings.ToLower(trimmed)] || bareNumber.MatchString(trimmed) {
		return false
	}
	return alphabetic.MatchString(trimmed)
}

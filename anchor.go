package nbtoc

import (
	"regexp"
	"strconv"
	"strings"
)

// whitespaceClass is the set of characters treated as whitespace in heading
// lines and anchors. RE2's \s is ASCII-only; vertical tab, NEL and the
// Unicode separators are added so non-breaking and wide spaces behave the
// same as ASCII ones.
const whitespaceClass = `\s\v\x{85}\p{Z}`

var (
	// anchorDisallowed matches everything except word characters
	// (letters, digits, underscore), whitespace, colon and hyphen.
	anchorDisallowed = regexp.MustCompile(`[^\p{L}\p{N}_` + whitespaceClass + `:\-]`)

	// anchorWhitespace matches runs of whitespace replaced by a single hyphen.
	anchorWhitespace = regexp.MustCompile(`[` + whitespaceClass + `]+`)
)

// AnchorTable tracks how many times each base anchor was generated within
// one document. The zero value is not usable; create one with NewAnchorTable
// for every document.
type AnchorTable struct {
	counts map[string]int
}

// NewAnchorTable returns an empty table.
func NewAnchorTable() *AnchorTable {
	return &AnchorTable{counts: make(map[string]int)}
}

// Anchor returns a fragment identifier for heading text. The first
// occurrence of a base anchor is returned unchanged; the Nth repeat gets
// a "-N" suffix. Every call increments the counter of its base anchor.
func (t *AnchorTable) Anchor(text string) string {
	base := BaseAnchor(text)
	count := t.counts[base]
	t.counts[base] = count + 1
	if count == 0 {
		return base
	}
	return base + "-" + strconv.Itoa(count)
}

// Count returns how many anchors were generated for base.
func (t *AnchorTable) Count(base string) int {
	return t.counts[base]
}

// BaseAnchor sanitizes heading text into an anchor without disambiguation.
// Case is preserved.
func BaseAnchor(text string) string {
	anchor := anchorDisallowed.ReplaceAllString(text, "")
	anchor = strings.TrimSpace(anchor)
	return anchorWhitespace.ReplaceAllString(anchor, "-")
}

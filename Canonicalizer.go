package main

import (
	"regexp"
	"strings"
)

type Canonicalizer struct {
	replacer          *strings.Replacer
	sheetIdCharsRegex *regexp.Regexp
}

func NewCanonicalizer() *Canonicalizer {
	return &Canonicalizer{
		replacer: strings.NewReplacer(" ", "", "\t", "", "$", ""),
		// bbolt bucket names are raw bytes, but keep ids URL-friendly
		sheetIdCharsRegex: regexp.MustCompile(`[^a-z0-9_\-]+`),
	}
}

func (c *Canonicalizer) CanonicalizeSheetId(sheetId string) string {
	return c.sheetIdCharsRegex.ReplaceAllString(strings.ToLower(strings.TrimSpace(sheetId)), "_")
}

// CanonicalizeReference `a1`, ` A1 `, `$A$1` and `A01` all become `A1`
func (c *Canonicalizer) CanonicalizeReference(reference string) string {
	reference = strings.ToUpper(c.replacer.Replace(reference))

	if row, col, err := ParseReference(reference); err == nil {
		return FormatReference(row, col)
	}

	return reference
}

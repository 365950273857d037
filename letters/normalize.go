package letters

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalizer prepares raw player input for validation. Surrounding
// whitespace is trimmed and the result is lowercased with the casing rules
// of the normalizer's language.
type Normalizer struct {
	tag   language.Tag
	lower cases.Caser
}

// NewNormalizer creates a normalizer for the given language tag.
func NewNormalizer(tag language.Tag) *Normalizer {
	return &Normalizer{tag: tag, lower: cases.Lower(tag)}
}

// Normalize returns the canonical form of raw. Normalization is idempotent.
func (n *Normalizer) Normalize(raw string) string {
	return n.lower.String(strings.TrimSpace(raw))
}

func (n *Normalizer) Tag() language.Tag {
	return n.tag
}

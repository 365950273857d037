// Package lexicon is the dictionary capability boundary: given a word and a
// language, is it a recognized word? The game core treats the answer as
// authoritative and never looks inside.
package lexicon

import (
	"golang.org/x/text/language"
)

type Checker interface {
	Name() string
	HasWord(word string, lang language.Tag) bool
}

// AcceptAll recognizes every word. Useful for tests and for running without
// any dictionary data.
type AcceptAll struct{}

func (lex AcceptAll) Name() string {
	return "AcceptAll"
}

func (lex AcceptAll) HasWord(word string, lang language.Tag) bool {
	return true
}

package game

import (
	"golang.org/x/text/language"

	"github.com/domino14/silkworm/config"
	"github.com/domino14/silkworm/letters"
	"github.com/domino14/silkworm/lexicon"
)

// Rules is a simple struct that encapsulates the instantiated objects
// needed to actually play a game: the dictionary checker, the language it
// is consulted in, and the normalizer for player input.
type Rules struct {
	cfg        *config.Config
	checker    lexicon.Checker
	tag        language.Tag
	normalizer *letters.Normalizer
	minLength  int
}

func NewRules(cfg *config.Config, checker lexicon.Checker, tag language.Tag) *Rules {
	minLength := 0
	if cfg != nil {
		minLength = cfg.GetInt(config.ConfigMinWordLength)
	}
	return &Rules{
		cfg:        cfg,
		checker:    checker,
		tag:        tag,
		normalizer: letters.NewNormalizer(tag),
		minLength:  minLength,
	}
}

func (r *Rules) Config() *config.Config {
	return r.cfg
}

func (r *Rules) Checker() lexicon.Checker {
	return r.checker
}

func (r *Rules) Lang() language.Tag {
	return r.tag
}

func (r *Rules) Normalizer() *letters.Normalizer {
	return r.normalizer
}

// MinLength is the minimum accepted candidate length. Values below 2
// disable the check; emptiness is its own rule.
func (r *Rules) MinLength() int {
	return r.minLength
}

// SetMinLength overrides the configured minimum word length. Sessions hold
// their Rules by pointer, so the change applies immediately, live sessions
// included.
func (r *Rules) SetMinLength(n int) {
	r.minLength = n
}

// Package game implements the session core of the word game: a root word,
// the ordered list of accepted words, and the submission rules that guard
// it. Dictionary membership and randomness are injected capabilities.
package game

import (
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"

	"github.com/domino14/silkworm/letters"
)

// DefaultRoot is the fallback root word used when no word list is
// available. A session can always be started.
const DefaultRoot = "silkworm"

// PickRoot selects a root word uniformly at random from words. An empty or
// nil list falls back to DefaultRoot; PickRoot never fails.
func PickRoot(words []string, rng RandSource) string {
	if len(words) == 0 {
		log.Debug().Msg("no root words available; falling back to default")
		return DefaultRoot
	}
	return words[rng.Intn(len(words))]
}

// Session owns one game's state: the immutable root word and the accepted
// words in most-recent-first order. It is exclusively owned by its caller;
// there is no internal locking.
type Session struct {
	rules *Rules
	root  string
	pool  *letters.Pool
	used  []string

	logger *sessionLogger
}

// NewSession creates an active session for the given root word. The zero
// Session is not valid; this constructor and a root word are the only way
// in.
func NewSession(rules *Rules, root string) *Session {
	root = rules.Normalizer().Normalize(root)
	return &Session{
		rules: rules,
		root:  root,
		pool:  letters.PoolFromWord(root),
	}
}

// Submit normalizes raw and evaluates the submission rules in fixed order,
// short-circuiting on the first failure. On success the normalized word is
// prepended to the used list and returned. On failure the session is
// unchanged and the returned error is a *Rejection carrying the reason.
func (s *Session) Submit(raw string) (string, error) {
	word := s.rules.Normalizer().Normalize(raw)

	if err := s.validate(word); err != nil {
		s.logger.log(s.root, word, err)
		return "", err
	}

	s.used = append([]string{word}, s.used...)
	s.logger.log(s.root, word, nil)
	return word, nil
}

func (s *Session) validate(word string) error {
	reject := func(reason Reason) error {
		return &Rejection{
			Word:      word,
			Root:      s.root,
			Reason:    reason,
			MinLength: s.rules.MinLength(),
		}
	}

	if len(word) == 0 {
		return reject(ReasonEmpty)
	}
	if min := s.rules.MinLength(); min > 1 && len([]rune(word)) < min {
		return reject(ReasonTooShort)
	}
	if word == s.root {
		return reject(ReasonSameAsRoot)
	}
	for _, u := range s.used {
		if u == word {
			return reject(ReasonAlreadyUsed)
		}
	}
	if !s.pool.Covers(word) {
		return reject(ReasonNotSpellable)
	}
	if !s.rules.Checker().HasWord(word, s.rules.Lang()) {
		return reject(ReasonNotRecognized)
	}
	return nil
}

// Root returns the session's root word.
func (s *Session) Root() string {
	return s.root
}

// Used returns a copy of the accepted words, most recent first.
func (s *Session) Used() []string {
	used := make([]string, len(s.used))
	copy(used, s.used)
	return used
}

func (s *Session) NumUsed() int {
	return len(s.used)
}

// Lang is the language the dictionary is consulted in, fixed at
// construction.
func (s *Session) Lang() language.Tag {
	return s.rules.Lang()
}

func (s *Session) Rules() *Rules {
	return s.rules
}

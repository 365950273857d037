package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"

	"github.com/domino14/silkworm/cache"
	"github.com/domino14/silkworm/config"
)

// Set is a word-set checker backed by a plain newline-separated word list.
// Lines may carry extra whitespace-separated fields (definitions, counts);
// only the first field matters. Lines starting with # are skipped.
type Set struct {
	name        string
	tag         language.Tag
	words       map[string]struct{}
	fingerprint uint64
}

// NewSetFromReader scans a word list from r. Words are lowercased on the
// way in so lookups of normalized candidates hit directly.
func NewSetFromReader(name string, tag language.Tag, r io.Reader) (*Set, error) {
	s := &Set{
		name:  name,
		tag:   tag,
		words: make(map[string]struct{}),
	}
	digest := xxhash.New()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		word := strings.ToLower(fields[0])
		if _, ok := s.words[word]; ok {
			continue
		}
		s.words[word] = struct{}{}
		digest.Write([]byte(word + "\n"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan word set %v: %w", name, err)
	}
	if len(s.words) == 0 {
		return nil, fmt.Errorf("word set %v is empty", name)
	}
	s.fingerprint = digest.Sum64()
	log.Debug().Str("name", name).Int("words", len(s.words)).
		Str("fingerprint", fmt.Sprintf("%x", s.fingerprint)).
		Msg("loaded word set")
	return s, nil
}

// LoadSet reads a word set from a file on disk.
func LoadSet(name string, tag language.Tag, path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return NewSetFromReader(name, tag, f)
}

func (s *Set) Name() string {
	return s.name
}

// HasWord reports membership. A lookup in a language whose base differs
// from the set's language is answered false; regional variants of the same
// base are accepted.
func (s *Set) HasWord(word string, lang language.Tag) bool {
	base, _ := lang.Base()
	setBase, _ := s.tag.Base()
	if base != setBase {
		return false
	}
	_, ok := s.words[word]
	return ok
}

func (s *Set) NumWords() int {
	return len(s.words)
}

// Fingerprint is an xxhash over the set's contents, for cache and log
// identity.
func (s *Set) Fingerprint() uint64 {
	return s.fingerprint
}

// CachedSet loads the named set from the configured lexicon path, going
// through the global object cache so that front-ends sharing a process
// share the loaded set. The cache key carries the configured language and
// the resolved file path, so a config change loads fresh rather than
// serving a stale set under the same name.
func CachedSet(cfg *config.Config, name string) (*Set, error) {
	tag := language.Make(cfg.GetString(config.ConfigDefaultLanguage))
	path := filepath.Join(cfg.GetString(config.ConfigLexiconPath), name+".txt")
	cacheKey := "lexicon:" + tag.String() + ":" + path
	obj, err := cache.Load(cfg, cacheKey, func(cfg *config.Config, key string) (interface{}, error) {
		return LoadSet(name, tag, path)
	})
	if err != nil {
		return nil, err
	}
	set, ok := obj.(*Set)
	if !ok {
		return nil, fmt.Errorf("could not read word set from file for %v", name)
	}
	return set, nil
}

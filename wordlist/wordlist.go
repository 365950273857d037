// Package wordlist loads the pool of candidate root words. The hosting
// environment hands the parsed list to the game; splitting and cleaning
// happen here.
package wordlist

import (
	"bufio"
	_ "embed"
	"io"
	"os"
	"strings"

	"github.com/samber/lo"
)

//go:embed default_words.txt
var defaultWords string

// Parse reads newline-separated words from r and returns a cleaned,
// lowercased, de-duplicated slice in file order. Blank lines and lines
// starting with # are dropped.
func Parse(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	words = lo.Map(words, func(w string, _ int) string {
		return strings.ToLower(strings.TrimSpace(w))
	})
	words = lo.Filter(words, func(w string, _ int) bool {
		return w != "" && !strings.HasPrefix(w, "#")
	})
	return lo.Uniq(words), nil
}

// Load reads a root-word list from a file on disk.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Default returns the embedded root-word list, so the game is playable even
// when no word-list file is configured.
func Default() []string {
	words, err := Parse(strings.NewReader(defaultWords))
	if err != nil {
		// The embedded list is compiled in; a parse failure here is a
		// build defect, not a runtime condition.
		panic(err)
	}
	return words
}

package shell

import (
	"strings"

	"github.com/kballard/go-shellquote"
)

// ShellCompleter provides context-aware autocomplete for shell commands
type ShellCompleter struct {
	sc *ShellController
}

func NewShellCompleter(sc *ShellController) *ShellCompleter {
	return &ShellCompleter{sc: sc}
}

// CommandMetadata holds autocomplete information for a command
type CommandMetadata struct {
	Options []string // Available options for this command (e.g., "-seed")
	Args    []string // Possible argument values (for non-option arguments)
}

// commandMetadata maps command names to their options and arguments
var commandMetadata = map[string]CommandMetadata{
	"new": {
		Options: []string{"-seed"},
	},
	"set": {
		Args: settableOptions,
	},
	"setconfig": {
		Args: []string{
			"default-lexicon", "default-language", "word-list-path",
			"lexicon-path", "dictionary-url", "min-word-length",
			"session-log", "seed",
		},
	},
	"help": {
		Args: []string{
			"new", "play", "show", "check", "set", "setconfig",
			"lexicons", "exit",
		},
	},
}

// Common command names for command completion
var commandNames = []string{
	"help", "new", "play", "show", "check", "set", "setconfig",
	"lexicons", "exit", "bye",
}

// Do implements the readline.AutoComplete interface. It completes command
// names at the start of the line and per-command options/arguments after.
func (c *ShellCompleter) Do(line []rune, pos int) ([][]rune, int) {
	text := string(line[:pos])

	fields, err := shellquote.Split(text)
	if err != nil {
		fields = strings.Fields(text)
	}
	endsWithSpace := len(text) > 0 && text[len(text)-1] == ' '

	var prefix string
	var completions []string

	if len(fields) == 0 || (len(fields) == 1 && !endsWithSpace) {
		if len(fields) == 1 {
			prefix = fields[0]
		}
		completions = commandNames
	} else {
		meta, ok := commandMetadata[fields[0]]
		if !ok {
			return nil, 0
		}
		if !endsWithSpace {
			prefix = fields[len(fields)-1]
		}
		if strings.HasPrefix(prefix, "-") {
			completions = meta.Options
		} else {
			completions = append(completions, meta.Args...)
			completions = append(completions, meta.Options...)
		}
	}

	var matches [][]rune
	for _, candidate := range completions {
		if strings.HasPrefix(candidate, prefix) {
			matches = append(matches, []rune(candidate[len(prefix):]))
		}
	}
	return matches, len(prefix)
}

package shell

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/silkworm/config"
	"github.com/domino14/silkworm/game"
	"github.com/domino14/silkworm/lexicon"
)

type Response struct {
	message string
}

func msg(message string) *Response {
	return &Response{message: message}
}

func (sc *ShellController) gameText() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "root word: %v\n", sc.session.Root())
	used := sc.session.Used()
	if len(used) == 0 {
		sb.WriteString("no words played yet")
		return sb.String()
	}
	fmt.Fprintf(&sb, "words played (%d, most recent first):\n", len(used))
	for i, w := range used {
		fmt.Fprintf(&sb, "%3d: %v\n", i+1, w)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (sc *ShellController) newGame(cmd *shellcmd) (*Response, error) {
	if seed := cmd.options.String("seed"); seed != "" {
		sc.rng = game.NewSeededRandSource(seed)
	}
	sc.startSession()
	log.Debug().Str("root", sc.session.Root()).Msg("started new session")
	return msg("new game started\n" + sc.gameText()), nil
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	return msg(sc.gameText()), nil
}

func (sc *ShellController) play(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: play <word>")
	}
	word, err := sc.session.Submit(cmd.args[0])
	if err != nil {
		return nil, err
	}
	return msg("accepted: " + word + "\n" + sc.gameText()), nil
}

func (sc *ShellController) check(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: check <word>")
	}
	word := sc.rules.Normalizer().Normalize(cmd.args[0])
	if word == "" {
		return nil, errors.New("usage: check <word>")
	}
	if sc.checker.HasWord(word, sc.rules.Lang()) {
		return msg(fmt.Sprintf("%v is recognized by %v", word, sc.checker.Name())), nil
	}
	return msg(fmt.Sprintf("%v is not recognized by %v", word, sc.checker.Name())), nil
}

// settable options; config keys double as option names.
var settableOptions = []string{
	config.ConfigMinWordLength,
	config.ConfigDefaultLexicon,
	config.ConfigSessionLog,
	config.ConfigSeed,
}

func (sc *ShellController) optionsDisplayText() string {
	var sb strings.Builder
	for _, opt := range settableOptions {
		fmt.Fprintf(&sb, "%v: %v\n", opt, sc.config.GetString(opt))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (sc *ShellController) set(cmd *shellcmd) (*Response, error) {
	if cmd.args == nil {
		return msg(sc.optionsDisplayText()), nil
	}
	opt := cmd.args[0]
	if len(cmd.args) == 1 {
		return msg(sc.config.GetString(opt)), nil
	}
	value := cmd.args[1]
	ret, err := sc.applyOption(opt, value)
	if err != nil {
		return nil, err
	}
	return msg("set " + opt + " to " + ret), nil
}

func (sc *ShellController) applyOption(opt, value string) (string, error) {
	switch opt {
	case config.ConfigMinWordLength:
		n, err := strconv.Atoi(value)
		if err != nil {
			return "", err
		}
		if n < 0 {
			return "", errors.New("minimum word length cannot be negative")
		}
		sc.config.Set(opt, n)
		sc.rules.SetMinLength(n)
		// applies to the current session as well; rules are shared
		return value, nil
	case config.ConfigDefaultLexicon:
		checker, err := lexicon.CachedSet(sc.config, value)
		if err != nil {
			return "", err
		}
		sc.config.Set(opt, value)
		sc.checker = checker
		sc.rules = game.NewRules(sc.config, checker, sc.rules.Lang())
		sc.startSession()
		return value + " (new game started)", nil
	case config.ConfigSessionLog:
		f, err := os.Create(value)
		if err != nil {
			return "", err
		}
		if sc.logFile != nil {
			sc.logFile.Close()
		}
		sc.logFile = f
		sc.config.Set(opt, value)
		sc.session.SetLogStream(f)
		return value, nil
	case config.ConfigSeed:
		sc.config.Set(opt, value)
		sc.rng = newRandSource(value)
		return value, nil
	}
	return "", fmt.Errorf("option %q is not settable", opt)
}

func (sc *ShellController) setConfig(cmd *shellcmd) (*Response, error) {
	if cmd.args == nil || len(cmd.args) < 2 {
		return nil, errors.New("usage: setconfig <key> <value>")
	}

	key := cmd.args[0]
	value := cmd.args[1]

	sc.config.Set(key, value)

	err := sc.config.Write()
	if err != nil {
		return nil, fmt.Errorf("failed to save config: %w", err)
	}

	return msg(fmt.Sprintf("set config %s to %s and saved to file", key, value)), nil
}

func (sc *ShellController) lexicons(cmd *shellcmd) (*Response, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "current: %v\n", sc.checker.Name())

	path := sc.config.GetString(config.ConfigLexiconPath)
	entries, err := os.ReadDir(path)
	if err != nil {
		sb.WriteString("no loadable lexica (" + err.Error() + ")")
		return msg(sb.String()), nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".txt") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".txt"))
	}
	sort.Strings(names)
	if len(names) == 0 {
		sb.WriteString("no loadable lexica in " + filepath.Clean(path))
		return msg(sb.String()), nil
	}
	sb.WriteString("loadable:")
	for _, n := range names {
		sb.WriteString("\n  " + n)
	}
	return msg(sb.String()), nil
}

func (sc *ShellController) help(cmd *shellcmd) (*Response, error) {
	if cmd.args == nil {
		return usage("standard")
	}
	return usageTopic(cmd.args[0])
}

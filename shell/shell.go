// Package shell is the readline REPL front-end for the word game. Anything
// typed that is not a known command is submitted as a candidate word.
package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"

	"github.com/domino14/silkworm/config"
	"github.com/domino14/silkworm/game"
	"github.com/domino14/silkworm/lexicon"
)

var errExiting = errors.New("sending quit signal")

type ShellController struct {
	l *readline.Instance

	config   *config.Config
	execPath string
	version  string

	words   []string
	checker lexicon.Checker
	rng     game.RandSource

	rules   *game.Rules
	session *game.Session
	logFile *os.File
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func NewShellController(cfg *config.Config, execPath, gitVersion string,
	words []string, checker lexicon.Checker) *ShellController {

	sc := &ShellController{
		config:   cfg,
		execPath: execPath,
		version:  gitVersion,
		words:    words,
		checker:  checker,
	}

	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31msilkworm>\033[0m ",
		HistoryFile:     "/tmp/readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
		AutoComplete:        NewShellCompleter(sc),
	})
	if err != nil {
		panic(err)
	}
	sc.l = l

	tag := language.Make(cfg.GetString(config.ConfigDefaultLanguage))
	sc.rules = game.NewRules(cfg, checker, tag)
	sc.rng = newRandSource(cfg.GetString(config.ConfigSeed))
	sc.startSession()
	return sc
}

func newRandSource(seed string) game.RandSource {
	if seed != "" {
		log.Debug().Str("seed", seed).Msg("using seeded random source")
		return game.NewSeededRandSource(seed)
	}
	return game.NewRandSource()
}

// startSession picks a fresh root word and replaces the current session.
// The configured session log, if any, carries over to the new session.
func (sc *ShellController) startSession() {
	root := game.PickRoot(sc.words, sc.rng)
	sc.session = game.NewSession(sc.rules, root)
	if sc.logFile != nil {
		sc.session.SetLogStream(sc.logFile)
	} else if path := sc.config.GetString(config.ConfigSessionLog); path != "" {
		f, err := os.Create(path)
		if err != nil {
			log.Err(err).Str("path", path).Msg("could not create session log")
		} else {
			sc.logFile = f
			sc.session.SetLogStream(f)
		}
	}
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.l.Stderr())
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

// showRejection renders an expected rejection as a title/message pair, not
// as an error.
func (sc *ShellController) showRejection(rej *game.Rejection) {
	sc.showMessage(rej.Title() + ": " + rej.Message())
}

func (sc *ShellController) executeLine(line string, sig chan os.Signal) (*Response, error) {
	cmd, err := extractFields(line)
	if err != nil {
		return nil, err
	}
	switch cmd.cmd {
	case "new":
		return sc.newGame(cmd)
	case "show", "s":
		return sc.show(cmd)
	case "play", "submit":
		return sc.play(cmd)
	case "check":
		return sc.check(cmd)
	case "set":
		return sc.set(cmd)
	case "setconfig":
		return sc.setConfig(cmd)
	case "lexicons":
		return sc.lexicons(cmd)
	case "help":
		return sc.help(cmd)
	case "exit", "bye", "quit":
		sig <- syscall.SIGINT
		return nil, errExiting
	default:
		// Any unrecognized single token is a candidate word.
		if len(cmd.args) == 0 && len(cmd.options) == 0 {
			return sc.play(&shellcmd{cmd: "play", args: []string{cmd.cmd}})
		}
		return nil, fmt.Errorf("command %q not found", cmd.cmd)
	}
}

func (sc *ShellController) Execute(sig chan os.Signal, line string) {
	defer sc.l.Close()
	resp, err := sc.executeLine(line, sig)
	if err != nil {
		if err == errExiting {
			return
		}
		var rej *game.Rejection
		if errors.As(err, &rej) {
			sc.showRejection(rej)
			return
		}
		sc.showError(err)
	} else if resp != nil {
		sc.showMessage(resp.message)
	}
}

func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		resp, err := sc.executeLine(line, sig)
		if err != nil {
			if err == errExiting {
				break
			}
			var rej *game.Rejection
			if errors.As(err, &rej) {
				sc.showRejection(rej)
				continue
			}
			sc.showError(err)
			continue
		}
		if resp != nil {
			sc.showMessage(resp.message)
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}

func (sc *ShellController) Cleanup() {
	if sc.logFile != nil {
		err := sc.logFile.Close()
		if err != nil {
			log.Err(err).Msg("closing session log")
		}
	}
}

package main

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"

	"github.com/domino14/silkworm/config"
	"github.com/domino14/silkworm/lexicon"
	"github.com/domino14/silkworm/shell"
	"github.com/domino14/silkworm/tui"
	"github.com/domino14/silkworm/wordlist"
)

var (
	GitVersion string
)

//go:embed silkworm.txt
var silkwormbanner string

// loadResources fetches the root-word list and the dictionary checker
// concurrently. Neither absence is fatal: the embedded word list and the
// accept-everything checker keep the game playable, with a warning.
func loadResources(cfg *config.Config) ([]string, lexicon.Checker) {
	var words []string
	var checker lexicon.Checker

	g, _ := errgroup.WithContext(context.Background())
	g.Go(func() error {
		w, err := wordlist.Load(cfg.GetString(config.ConfigWordListPath))
		if err != nil || len(w) == 0 {
			log.Warn().Err(err).Msg("no word list file; using embedded list")
			w = wordlist.Default()
		}
		words = w
		return nil
	})
	g.Go(func() error {
		if u := cfg.GetString(config.ConfigDictionaryURL); u != "" {
			checker = lexicon.NewDict("remote", u)
			return nil
		}
		if name := cfg.GetString(config.ConfigDefaultLexicon); name != "" {
			set, err := lexicon.CachedSet(cfg, name)
			if err != nil {
				return fmt.Errorf("load lexicon %v: %w", name, err)
			}
			checker = set
			return nil
		}
		log.Warn().Msg("no lexicon configured; every spellable word will be accepted")
		checker = lexicon.AcceptAll{}
		return nil
	})
	if err := g.Wait(); err != nil {
		// A configured lexicon that cannot be loaded is a configuration
		// error; refusing to guess is better than silently accepting
		// everything.
		log.Fatal().Err(err).Msg("could not load resources")
	}
	if len(words) == 0 {
		log.Fatal().Msg("no root words available; cannot start a session")
	}
	return words, checker
}

func main() {

	// Determine the directory of the executable. We will use this
	// directory to find the data files if an absolute path is not
	// provided for these!
	ex, err := os.Executable()
	if err != nil {
		panic(err)
	}
	exPath := filepath.Dir(ex)
	fmt.Println(silkwormbanner)
	fmt.Println(GitVersion)

	log.Info().Msgf("executable path: %v", exPath)

	cfg := &config.Config{}
	args := os.Args[1:]
	err = cfg.Load(args)
	if err != nil {
		log.Fatal().Err(err).Msg("could not load config")
	}
	log.Info().Msgf("Loaded config: %v", cfg.SanitizedSettings())
	cfg.AdjustRelativePaths(exPath)

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	output.FormatMessage = func(i interface{}) string {
		return fmt.Sprintf("%s", i)
	}
	output.FormatFieldName = func(i interface{}) string {
		return fmt.Sprintf("%s:", i)
	}

	var logger zerolog.Logger
	if cfg.GetBool(config.ConfigDebug) {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		logger = zerolog.New(output).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		logger = zerolog.New(output).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	}
	zerolog.DefaultContextLogger = &logger
	log.Logger = logger
	logger.Debug().Msg("Debug logging is on")

	words, checker := loadResources(cfg)
	log.Info().Int("words", len(words)).Str("lexicon", checker.Name()).
		Str("language", language.Make(cfg.GetString(config.ConfigDefaultLanguage)).String()).
		Msg("resources loaded")

	if cfg.GetBool(config.ConfigTUI) {
		if _, err := tea.NewProgram(tui.New(cfg, words, checker)).Run(); err != nil {
			log.Fatal().Err(err).Msg("could not start program")
		}
		return
	}

	idleConnsClosed := make(chan struct{})
	sig := make(chan os.Signal, 1)
	go func() {
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		// We received an interrupt signal, shut down.
		log.Info().Msg("got quit signal...")
		close(idleConnsClosed)
	}()

	sc := shell.NewShellController(cfg, exPath, GitVersion, words, checker)

	argsLine := strings.TrimSpace(strings.Join(cfg.Args(), " "))
	if argsLine == "" {
		go sc.Loop(sig)
	} else {
		sc.Execute(sig, argsLine)
		sig <- syscall.SIGINT
	}

	log.Info().Msg("started loop")

	<-idleConnsClosed

	sc.Cleanup()
	log.Info().Msg("gracefully shutting down")
}

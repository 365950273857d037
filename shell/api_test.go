package shell

import (
	"strings"
	"testing"

	"github.com/matryer/is"
	"golang.org/x/text/language"

	"github.com/domino14/silkworm/config"
	"github.com/domino14/silkworm/game"
	"github.com/domino14/silkworm/lexicon"
)

// testController builds a controller around a fixed session without the
// readline machinery, which the handlers never touch.
func testController(t *testing.T, root string) *ShellController {
	t.Helper()
	cfg := &config.Config{}
	if err := cfg.Load(nil); err != nil {
		t.Fatal(err)
	}
	checker := lexicon.AcceptAll{}
	session := game.NewSession(game.NewRules(cfg, checker, language.English), root)
	sc := &ShellController{
		config:  cfg,
		words:   []string{root},
		checker: checker,
		rng:     game.NewSeededRandSource("test"),
		rules:   session.Rules(),
		session: session,
	}
	return sc
}

func TestPlayCommand(t *testing.T) {
	is := is.New(t)
	sc := testController(t, "silkworm")
	resp, err := sc.play(&shellcmd{cmd: "play", args: []string{"silk"}})
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "accepted: silk"))
	is.Equal(sc.session.Used(), []string{"silk"})
}

func TestPlayRejectionIsTyped(t *testing.T) {
	is := is.New(t)
	sc := testController(t, "silkworm")
	_, err := sc.play(&shellcmd{cmd: "play", args: []string{"zebra"}})
	rej, ok := err.(*game.Rejection)
	is.True(ok)
	is.Equal(rej.Reason, game.ReasonNotSpellable)
}

func TestShowCommand(t *testing.T) {
	is := is.New(t)
	sc := testController(t, "silkworm")
	resp, err := sc.show(&shellcmd{cmd: "show"})
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "root word: silkworm"))
	is.True(strings.Contains(resp.message, "no words played yet"))

	_, err = sc.play(&shellcmd{cmd: "play", args: []string{"worm"}})
	is.NoErr(err)
	resp, err = sc.show(&shellcmd{cmd: "show"})
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "worm"))
}

func TestNewGameCommand(t *testing.T) {
	is := is.New(t)
	sc := testController(t, "silkworm")
	_, err := sc.play(&shellcmd{cmd: "play", args: []string{"silk"}})
	is.NoErr(err)

	resp, err := sc.newGame(&shellcmd{cmd: "new", options: CmdOptions{}})
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "new game started"))
	is.Equal(sc.session.NumUsed(), 0)
}

func TestCheckCommand(t *testing.T) {
	is := is.New(t)
	sc := testController(t, "silkworm")
	resp, err := sc.check(&shellcmd{cmd: "check", args: []string{"Anything"}})
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "anything is recognized"))
	is.Equal(sc.session.NumUsed(), 0)
}

func TestSetMinWordLength(t *testing.T) {
	is := is.New(t)
	sc := testController(t, "silkworm")
	_, err := sc.set(&shellcmd{cmd: "set", args: []string{config.ConfigMinWordLength, "4"}})
	is.NoErr(err)

	_, err = sc.play(&shellcmd{cmd: "play", args: []string{"ik"}})
	rej, ok := err.(*game.Rejection)
	is.True(ok)
	is.Equal(rej.Reason, game.ReasonTooShort)
}

func TestSetUnknownOption(t *testing.T) {
	is := is.New(t)
	sc := testController(t, "silkworm")
	_, err := sc.set(&shellcmd{cmd: "set", args: []string{"no-such-option", "1"}})
	is.True(err != nil)
}

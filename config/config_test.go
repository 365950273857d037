package config

import (
	"testing"

	"github.com/matryer/is"
)

func TestLoadDefaults(t *testing.T) {
	is := is.New(t)
	cfg := &Config{}
	err := cfg.Load(nil)
	is.NoErr(err)
	is.Equal(cfg.GetString(ConfigDefaultLanguage), "en")
	is.Equal(cfg.GetInt(ConfigMinWordLength), 0)
	is.Equal(cfg.GetBool(ConfigDebug), false)
}

func TestLoadArgs(t *testing.T) {
	is := is.New(t)
	cfg := &Config{}
	err := cfg.Load([]string{
		"-min-word-length", "3",
		"-seed=fixed",
		"-debug",
		"-word-list-path", "/opt/silkworm/words.txt",
	})
	is.NoErr(err)
	is.Equal(cfg.GetInt(ConfigMinWordLength), 3)
	is.Equal(cfg.GetString(ConfigSeed), "fixed")
	is.True(cfg.GetBool(ConfigDebug))
	is.Equal(cfg.GetString(ConfigWordListPath), "/opt/silkworm/words.txt")
}

func TestLoadTrailingValueFlag(t *testing.T) {
	is := is.New(t)
	cfg := &Config{}
	// a value flag with nothing after it is an error, not a boolean
	err := cfg.Load([]string{"-seed"})
	is.True(err != nil)

	// boolean switches are still fine in last position
	cfg = &Config{}
	is.NoErr(cfg.Load([]string{"-debug"}))
	is.True(cfg.GetBool(ConfigDebug))
}

func TestLoadStopsAtFirstNonFlag(t *testing.T) {
	is := is.New(t)
	cfg := &Config{}
	err := cfg.Load([]string{"-debug", "play", "silk"})
	is.NoErr(err)
	is.True(cfg.GetBool(ConfigDebug))
	is.Equal(cfg.Args(), []string{"play", "silk"})
}

func TestSetRoundTrip(t *testing.T) {
	is := is.New(t)
	cfg := &Config{}
	is.NoErr(cfg.Load(nil))
	cfg.Set(ConfigDefaultLexicon, "CSW24")
	is.Equal(cfg.GetString(ConfigDefaultLexicon), "CSW24")
	settings := cfg.AllSettings()
	is.Equal(settings[ConfigDefaultLexicon], "CSW24")
}

func TestAdjustRelativePaths(t *testing.T) {
	is := is.New(t)
	cfg := &Config{}
	is.NoErr(cfg.Load([]string{"-lexicon-path", "/abs/lexica"}))
	cfg.AdjustRelativePaths("/home/player/silkworm")
	// relative default gets anchored, absolute override does not
	is.Equal(cfg.GetString(ConfigWordListPath), "/home/player/silkworm/data/words.txt")
	is.Equal(cfg.GetString(ConfigLexiconPath), "/abs/lexica")
}

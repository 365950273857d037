package shell

import (
	"testing"

	"github.com/matryer/is"
)

func TestExtractFields(t *testing.T) {
	is := is.New(t)
	type testdata struct {
		line   string
		expCmd *shellcmd
		expErr error
	}
	cases := []testdata{
		{"", nil, errNoData},
		{"new -seed myseed",
			&shellcmd{"new", nil, CmdOptions{"seed": []string{"myseed"}}},
			nil},
		{"play silk",
			&shellcmd{"play", []string{"silk"}, CmdOptions{}},
			nil},
		{"set session-log /tmp/session.yml ",
			&shellcmd{"set",
				[]string{"session-log", "/tmp/session.yml"},
				CmdOptions{}},
			nil,
		},
		{"set min-word-length 4",
			&shellcmd{"set", []string{"min-word-length", "4"}, CmdOptions{}},
			nil,
		},
		{"new -seed",
			nil, errWrongOptionSyntax},
		{"PLAY silk",
			&shellcmd{"play", []string{"silk"}, CmdOptions{}},
			nil},
	}
	for _, tc := range cases {
		cmd, err := extractFields(tc.line)
		is.Equal(cmd, tc.expCmd)
		is.Equal(err, tc.expErr)
	}
}

func TestCmdOptions(t *testing.T) {
	is := is.New(t)
	opts := CmdOptions{
		"seed":  []string{"abc"},
		"count": []string{"5"},
		"on":    []string{"true"},
	}
	is.Equal(opts.String("seed"), "abc")
	is.Equal(opts.String("missing"), "")
	n, err := opts.Int("count")
	is.NoErr(err)
	is.Equal(n, 5)
	n, err = opts.IntDefault("missing", 7)
	is.NoErr(err)
	is.Equal(n, 7)
	is.True(opts.Bool("on"))
	is.True(!opts.Bool("missing"))
}

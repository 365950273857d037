package shell

import (
	"errors"
	"strconv"
	"strings"

	"github.com/kballard/go-shellquote"
)

var (
	errNoData            = errors.New("no data in command")
	errWrongOptionSyntax = errors.New("options need to have values after them")
)

type shellcmd struct {
	cmd     string
	args    []string
	options CmdOptions
}

type CmdOptions map[string][]string

func (c CmdOptions) String(key string) string {
	v := c[key]
	if len(v) > 0 {
		return v[0]
	}
	return ""
}

func (c CmdOptions) Int(key string) (int, error) {
	v := c[key]
	if len(v) == 0 {
		return 0, errors.New(key + " not found in options")
	}
	return strconv.Atoi(v[0])
}

func (c CmdOptions) IntDefault(key string, defaultI int) (int, error) {
	v := c[key]
	if len(v) == 0 {
		return defaultI, nil
	}
	return strconv.Atoi(v[0])
}

func (c CmdOptions) Bool(key string) bool {
	v := c[key]
	if len(v) == 0 {
		return false
	}
	return strings.ToLower(v[0]) == "true"
}

// extractFields parses a shell line into a command, its positional args,
// and its -opt value options. Quoted strings survive intact.
func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := strings.ToLower(fields[0])
	var args []string
	options := CmdOptions{}

	lastWasOption := false
	lastOption := ""
	for _, token := range fields[1:] {
		if strings.HasPrefix(token, "-") && len(token) > 1 && !isNumeric(token[1:]) {
			lastWasOption = true
			lastOption = strings.ToLower(token[1:])
			continue
		}
		if lastWasOption {
			options[lastOption] = append(options[lastOption], token)
			lastWasOption = false
			continue
		}
		args = append(args, token)
	}
	if lastWasOption {
		return nil, errWrongOptionSyntax
	}
	return &shellcmd{cmd: cmd, args: args, options: options}, nil
}

func isNumeric(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

package shell

import (
	"embed"
	"errors"
)

//go:embed helptext
var helptextFS embed.FS

func usage(mode string) (*Response, error) {
	dat, err := helptextFS.ReadFile("helptext/usage-" + mode + ".txt")
	if err != nil {
		return nil, errors.New("could not load usage text")
	}
	return msg(string(dat)), nil
}

func usageTopic(topic string) (*Response, error) {
	dat, err := helptextFS.ReadFile("helptext/" + topic + ".txt")
	if err != nil {
		return nil, errors.New("there is no help text for the topic " + topic)
	}
	return msg(string(dat)), nil
}

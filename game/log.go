package game

import (
	"io"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// LogRecord is one submission in the session log stream, emitted as a
// standalone YAML document.
type LogRecord struct {
	Ordinal int    `yaml:"ordinal"`
	Root    string `yaml:"root"`
	Word    string `yaml:"word"`
	Outcome string `yaml:"outcome"`
	Reason  string `yaml:"reason,omitempty"`
}

type sessionLogger struct {
	w       io.Writer
	ordinal int
}

// SetLogStream attaches a writer that receives one YAML document per
// submission, accepted or rejected, in submission order. Logging never
// affects validation outcomes.
func (s *Session) SetLogStream(w io.Writer) {
	s.logger = &sessionLogger{w: w}
}

func (l *sessionLogger) log(root, word string, rejErr error) {
	if l == nil || l.w == nil {
		return
	}
	l.ordinal++
	record := LogRecord{
		Ordinal: l.ordinal,
		Root:    root,
		Word:    word,
		Outcome: "accepted",
	}
	if rejErr != nil {
		record.Outcome = "rejected"
		if rej, ok := rejErr.(*Rejection); ok {
			record.Reason = rej.Reason.String()
		}
	}
	out, err := yaml.Marshal(record)
	if err != nil {
		log.Error().Err(err).Msg("could not marshal log record")
		return
	}
	l.w.Write([]byte("---\n"))
	l.w.Write(out)
}

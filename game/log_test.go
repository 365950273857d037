package game

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSessionLogStream(t *testing.T) {
	var buf bytes.Buffer
	s := NewSession(testRules(t, wormChecker{}), "silkworm")
	s.SetLogStream(&buf)

	_, err := s.Submit("silk")
	require.NoError(t, err)
	_, err = s.Submit("silk")
	require.Error(t, err)
	_, err = s.Submit("worm")
	require.NoError(t, err)

	docs := strings.Split(buf.String(), "---\n")
	var records []LogRecord
	for _, doc := range docs {
		if strings.TrimSpace(doc) == "" {
			continue
		}
		var rec LogRecord
		require.NoError(t, yaml.Unmarshal([]byte(doc), &rec))
		records = append(records, rec)
	}

	require.Len(t, records, 3)
	assert.Equal(t, LogRecord{Ordinal: 1, Root: "silkworm", Word: "silk", Outcome: "accepted"}, records[0])
	assert.Equal(t, LogRecord{Ordinal: 2, Root: "silkworm", Word: "silk", Outcome: "rejected", Reason: "already_used"}, records[1])
	assert.Equal(t, LogRecord{Ordinal: 3, Root: "silkworm", Word: "worm", Outcome: "accepted"}, records[2])
}

func TestLogStreamDoesNotAffectOutcomes(t *testing.T) {
	plain := NewSession(testRules(t, wormChecker{}), "silkworm")
	logged := NewSession(testRules(t, wormChecker{}), "silkworm")
	logged.SetLogStream(&bytes.Buffer{})

	for _, w := range []string{"silk", "", "worm", "silk", "zzz"} {
		_, errPlain := plain.Submit(w)
		_, errLogged := logged.Submit(w)
		assert.Equal(t, errPlain == nil, errLogged == nil)
	}
	assert.Equal(t, plain.Used(), logged.Used())
}

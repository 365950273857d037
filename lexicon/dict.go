package lexicon

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
)

const (
	dictTimeout  = 5 * time.Second
	dictAttempts = 3
)

// Dict checks words against a dictionaryapi-style HTTP endpoint:
// GET <base>/<lang>/<word>, where 200 means recognized and 404 means not.
// Transient failures are retried; if retries are exhausted the word is
// reported as not recognized, with a warning, rather than failing the
// submission.
type Dict struct {
	name    string
	baseURL string
	client  *http.Client
}

func NewDict(name, baseURL string) *Dict {
	return &Dict{
		name:    name,
		baseURL: baseURL,
		client:  &http.Client{Timeout: dictTimeout},
	}
}

func (d *Dict) Name() string {
	return d.name
}

func (d *Dict) HasWord(word string, lang language.Tag) bool {
	base, _ := lang.Base()
	lookupURL := d.baseURL + "/" + base.String() + "/" + url.PathEscape(word)

	var found bool
	err := retry.Do(
		func() error {
			resp, err := d.client.Get(lookupURL)
			if err != nil {
				return err
			}
			defer resp.Body.Close()
			io.Copy(io.Discard, resp.Body)
			switch {
			case resp.StatusCode == http.StatusOK:
				found = true
				return nil
			case resp.StatusCode == http.StatusNotFound:
				found = false
				return nil
			default:
				return fmt.Errorf("dictionary lookup returned status %d", resp.StatusCode)
			}
		},
		retry.Attempts(dictAttempts),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		log.Warn().Err(err).Str("word", word).Msg("dictionary lookup failed; treating as not recognized")
		return false
	}
	return found
}

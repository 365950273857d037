package lexicon

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/matryer/is"
	"golang.org/x/text/language"
)

func TestDictHasWord(t *testing.T) {
	is := is.New(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/en/silk":
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	d := NewDict("remote", srv.URL)
	is.True(d.HasWord("silk", language.English))
	is.True(!d.HasWord("xyzzy", language.English))
}

func TestDictRetriesTransientFailures(t *testing.T) {
	is := is.New(t)
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	d := NewDict("remote", srv.URL)
	is.True(d.HasWord("silk", language.English))
	is.Equal(calls, 3)
}

func TestDictExhaustedRetriesAnswerFalse(t *testing.T) {
	is := is.New(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	d := NewDict("remote", srv.URL)
	is.True(!d.HasWord("silk", language.English))
}

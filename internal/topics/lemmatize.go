package topics

import (
	"strings"
	"unicode"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/clipperhouse/uax29/v2/words"
)

// Lemmatizer reduces a lower-cased word to its dictionary form.
// Implementations must be safe for concurrent use.
type Lemmatizer interface {
	Lemma(word string) string
}

// LemmatizerFunc adapts a function to Lemmatizer.
type LemmatizerFunc func(word string) string

// Lemma calls f.
func (f LemmatizerFunc) Lemma(word string) string { return f(word) }

// Identity leaves words unchanged.
var Identity = LemmatizerFunc(func(w string) string { return w })

// NewEnglishLemmatizer loads golem's English dictionary.
func NewEnglishLemmatizer() (Lemmatizer, error) {
	l, err := golem.New(en.New())
	if err != nil {
		return nil, err
	}
	return l, nil
}

// Tokenize splits s into UAX #29 words, dropping whitespace and
// punctuation segments.
func Tokenize(s string) []string {
	var out []string
	seg := words.FromString(s)
	for seg.Next() {
		if tok := seg.Value(); isAlpha(tok) {
			out = append(out, tok)
		}
	}
	return out
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// lemmatize lower-cases body, keeps alphabetic non-stop-word tokens and
// joins their lemmas with single spaces.
func (d *Discoverer) lemmatize(body string) string {
	toks := Tokenize(strings.ToLower(body))
	out := toks[:0]
	for _, t := range toks {
		if d.cfg.stopwords.Contains(t) {
			continue
		}
		out = append(out, d.cfg.lemmatizer.Lemma(t))
	}
	return strings.Join(out, " ")
}

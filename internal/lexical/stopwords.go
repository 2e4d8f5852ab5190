package lexical

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// StopWords is an immutable set of tokens to ignore. Lookups are exact:
// callers compare already lower-cased tokens. The zero value is an empty set
// and all methods are safe for concurrent use.
type StopWords struct {
	set map[string]struct{}
}

// NewStopWords builds a set from words. Surrounding whitespace is trimmed
// and blank entries are skipped.
func NewStopWords(words ...string) StopWords {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		if w = strings.TrimSpace(w); w != "" {
			m[w] = struct{}{}
		}
	}
	return StopWords{set: m}
}

// LoadStopWords reads one token per line (UTF-8, optional BOM).
func LoadStopWords(r io.Reader) (StopWords, error) {
	sc := bufio.NewScanner(transform.NewReader(r, unicode.UTF8BOM.NewDecoder()))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var words []string
	for sc.Scan() {
		words = append(words, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return StopWords{}, fmt.Errorf("lexical: read stop words: %w", err)
	}
	return NewStopWords(words...), nil
}

// LoadStopWordsFile opens path and delegates to LoadStopWords.
func LoadStopWordsFile(path string) (StopWords, error) {
	f, err := os.Open(path)
	if err != nil {
		return StopWords{}, fmt.Errorf("lexical: open stop words: %w", err)
	}
	defer f.Close()
	return LoadStopWords(f)
}

// Contains reports whether tok is a stop word.
func (s StopWords) Contains(tok string) bool {
	_, ok := s.set[tok]
	return ok
}

// Len is the number of stop words.
func (s StopWords) Len() int { return len(s.set) }

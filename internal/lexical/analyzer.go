// Package lexical builds word-level views of a chat: the word-cloud corpus
// and the most common words.
//
// Only authored text is considered: group notifications and media
// placeholders are filtered out first. Bodies are lower-cased and split on
// whitespace; tokens found in the stop-word set are dropped.
package lexical

import (
	"strings"

	"github.com/tbourn/chatlens/internal/chatlog"
	"github.com/tbourn/chatlens/internal/domain"
	"github.com/tbourn/chatlens/internal/utils"
)

// DefaultTopWords is how many rows MostCommon returns by default.
const DefaultTopWords = 20

// Option configures an Analyzer.
type Option func(*config)

type config struct {
	stopwords StopWords
	topN      int
}

func defaultConfig() config {
	return config{topN: DefaultTopWords}
}

// WithStopWords sets the tokens to discard.
func WithStopWords(sw StopWords) Option {
	return func(c *config) { c.stopwords = sw }
}

// WithTopN overrides the MostCommon row count. Non-positive values are ignored.
func WithTopN(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.topN = n
		}
	}
}

// Analyzer is immutable after construction and safe for concurrent use.
type Analyzer struct {
	cfg config
}

// NewAnalyzer returns an Analyzer configured by opts.
func NewAnalyzer(opts ...Option) *Analyzer {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return &Analyzer{cfg: cfg}
}

// Tokens lower-cases body, splits on whitespace and removes stop words.
func (a *Analyzer) Tokens(body string) []string {
	fields := strings.Fields(strings.ToLower(body))
	out := fields[:0]
	for _, f := range fields {
		if !a.cfg.stopwords.Contains(f) {
			out = append(out, f)
		}
	}
	return out
}

// WordCloud returns the space-joined filtered corpus (one segment per
// message) and the weight of every surviving token.
func (a *Analyzer) WordCloud(c *chatlog.Collection) domain.WordCloud {
	counts := utils.NewCounter()
	var parts []string
	for _, r := range c.Records() {
		if !r.HasText() {
			continue
		}
		toks := a.Tokens(r.Body)
		for _, t := range toks {
			counts.Add(t)
		}
		parts = append(parts, strings.Join(toks, " "))
	}
	return domain.WordCloud{
		Corpus:  strings.Join(parts, " "),
		Weights: toTokenCounts(counts.MostCommon(0)),
	}
}

// MostCommon returns the top-N tokens by count, ties in first-seen order.
func (a *Analyzer) MostCommon(c *chatlog.Collection) []domain.TokenCount {
	counts := utils.NewCounter()
	for _, r := range c.Records() {
		if !r.HasText() {
			continue
		}
		for _, t := range a.Tokens(r.Body) {
			counts.Add(t)
		}
	}
	return toTokenCounts(counts.MostCommon(a.cfg.topN))
}

func toTokenCounts(kcs []utils.KeyCount) []domain.TokenCount {
	out := make([]domain.TokenCount, len(kcs))
	for i, kc := range kcs {
		out[i] = domain.TokenCount{Token: kc.Key, Count: kc.Count}
	}
	return out
}

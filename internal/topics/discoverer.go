// Package topics groups chat messages into labeled topics.
//
// Discover lemmatizes authored bodies, builds a pruned document-term matrix
// and hands it to a Model. Any shortage of data yields an empty result
// rather than an error, so callers can show "not enough data".
package topics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tbourn/chatlens/internal/chatlog"
	"github.com/tbourn/chatlens/internal/lexical"
)

// Defaults for Discoverer.
const (
	DefaultTopics        = 5
	DefaultTermsPerTopic = 10
	DefaultMinDF         = 2
	DefaultMaxDF         = 0.95
)

// Model fits k topics on a matrix and returns one weight row per topic,
// one column per Matrix term. Fits must be deterministic for identical input.
type Model interface {
	Fit(m *Matrix, k int) ([][]float64, error)
}

// Option configures a Discoverer.
type Option func(*config)

type config struct {
	topics     int
	terms      int
	minDF      int
	maxDF      float64
	stopwords  lexical.StopWords
	lemmatizer Lemmatizer
}

func defaultConfig() config {
	return config{
		topics:     DefaultTopics,
		terms:      DefaultTermsPerTopic,
		minDF:      DefaultMinDF,
		maxDF:      DefaultMaxDF,
		lemmatizer: Identity,
	}
}

// WithTopics sets the topic count. Non-positive values are ignored.
func WithTopics(k int) Option {
	return func(c *config) {
		if k > 0 {
			c.topics = k
		}
	}
}

// WithTermsPerTopic sets how many terms label each topic. Non-positive
// values are ignored.
func WithTermsPerTopic(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.terms = n
		}
	}
}

// WithStopWords sets tokens removed before lemmatization.
func WithStopWords(sw lexical.StopWords) Option {
	return func(c *config) { c.stopwords = sw }
}

// WithLemmatizer sets the lemmatizer (default Identity).
func WithLemmatizer(l Lemmatizer) Option {
	return func(c *config) {
		if l != nil {
			c.lemmatizer = l
		}
	}
}

// WithDocumentFrequency overrides the pruning bounds.
func WithDocumentFrequency(minDF int, maxDF float64) Option {
	return func(c *config) {
		c.minDF = minDF
		c.maxDF = maxDF
	}
}

// Discoverer is immutable after construction. It is safe for concurrent
// use when its Model and Lemmatizer are.
type Discoverer struct {
	model Model
	cfg   config
}

// NewDiscoverer returns a Discoverer that fits topics with model.
func NewDiscoverer(model Model, opts ...Option) *Discoverer {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return &Discoverer{model: model, cfg: cfg}
}

// Documents returns the lemmatized corpus, one entry per authored message.
func (d *Discoverer) Documents(c *chatlog.Collection) []string {
	var docs []string
	for _, r := range c.Records() {
		if r.HasText() {
			docs = append(docs, d.lemmatize(r.Body))
		}
	}
	return docs
}

// Discover returns labels of the form "Topic 1: a, b, c". It never fails:
// too little data or a model error yields an empty, non-nil slice.
func (d *Discoverer) Discover(c *chatlog.Collection) []string {
	out := []string{}
	m, err := BuildMatrix(d.Documents(c), d.cfg.minDF, d.cfg.maxDF)
	if err != nil {
		return out
	}
	weights, err := d.model.Fit(m, d.cfg.topics)
	if err != nil {
		return out
	}
	for k, row := range weights {
		top := topTerms(row, m.Terms, d.cfg.terms)
		out = append(out, fmt.Sprintf("Topic %d: %s", k+1, strings.Join(top, ", ")))
	}
	return out
}

// topTerms picks the n heaviest terms, ties resolved by term order.
func topTerms(row []float64, terms []string, n int) []string {
	idx := make([]int, 0, len(row))
	for i := range row {
		if i < len(terms) {
			idx = append(idx, i)
		}
	}
	sort.SliceStable(idx, func(a, b int) bool { return row[idx[a]] > row[idx[b]] })
	if n < len(idx) {
		idx = idx[:n]
	}
	out := make([]string, len(idx))
	for i, j := range idx {
		out[i] = terms[j]
	}
	return out
}

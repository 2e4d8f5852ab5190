// Package sentiment labels each record with a polarity score.
//
// Scoring itself is delegated to a Scorer (VADER by default); this package
// only fixes how a compound score maps to a label and how results are
// aggregated for display.
package sentiment

import (
	"github.com/tbourn/chatlens/internal/chatlog"
	"github.com/tbourn/chatlens/internal/domain"
)

// Label thresholds on the compound score.
const (
	PositiveThreshold = 0.05
	NegativeThreshold = -0.05
)

// Scorer returns a compound polarity in [-1, 1] for a body.
// Implementations must be safe for concurrent use.
type Scorer interface {
	ScoreText(body string) float64
}

// ScorerFunc adapts a plain function to Scorer.
type ScorerFunc func(body string) float64

// ScoreText calls f.
func (f ScorerFunc) ScoreText(body string) float64 { return f(body) }

// Label maps a compound score to Positive, Negative or Neutral.
func Label(compound float64) string {
	switch {
	case compound >= PositiveThreshold:
		return domain.Positive
	case compound <= NegativeThreshold:
		return domain.Negative
	default:
		return domain.Neutral
	}
}

// Analyzer applies a Scorer to a collection.
type Analyzer struct {
	scorer Scorer
}

// NewAnalyzer returns an Analyzer backed by s.
func NewAnalyzer(s Scorer) *Analyzer {
	return &Analyzer{scorer: s}
}

// Score rates every record, in source order. Scores outside [-1, 1] are
// clamped.
func (a *Analyzer) Score(c *chatlog.Collection) []domain.ScoredRecord {
	recs := c.Records()
	out := make([]domain.ScoredRecord, len(recs))
	for i, r := range recs {
		v := clamp(a.scorer.ScoreText(r.Body))
		out[i] = domain.ScoredRecord{
			Sender:   r.Sender,
			Body:     r.Body,
			Compound: v,
			Label:    Label(v),
		}
	}
	return out
}

// Summarize counts labels and picks the first most positive and first most
// negative record.
func Summarize(scored []domain.ScoredRecord) domain.SentimentSummary {
	sum := domain.SentimentSummary{
		Distribution: map[string]int{domain.Positive: 0, domain.Negative: 0, domain.Neutral: 0},
	}
	for i := range scored {
		s := &scored[i]
		sum.Distribution[s.Label]++
		if sum.MostPositive == nil || s.Compound > sum.MostPositive.Compound {
			sum.MostPositive = s
		}
		if sum.MostNegative == nil || s.Compound < sum.MostNegative.Compound {
			sum.MostNegative = s
		}
	}
	return sum
}

func clamp(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}

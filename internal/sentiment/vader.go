package sentiment

import "github.com/jonreiter/govader"

// VaderScorer scores text with the VADER lexicon. Build it once and share
// it: loading the lexicon is the expensive part.
type VaderScorer struct {
	sia *govader.SentimentIntensityAnalyzer
}

// NewVaderScorer loads the bundled VADER lexicon.
func NewVaderScorer() *VaderScorer {
	return &VaderScorer{sia: govader.NewSentimentIntensityAnalyzer()}
}

// ScoreText returns VADER's compound score.
func (v *VaderScorer) ScoreText(body string) float64 {
	return v.sia.PolarityScores(body).Compound
}

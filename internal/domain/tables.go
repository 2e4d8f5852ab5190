package domain

// Stats is the headline counter block.
type Stats struct {
	Messages int `json:"messages"`
	Words    int `json:"words"`
	Media    int `json:"media"`
	Links    int `json:"links"`
}

// SenderCount is a sender with its number of records.
type SenderCount struct {
	Sender string `json:"sender"`
	Count  int    `json:"count"`
}

// SenderShare is a sender's share of all records, in percent (2 decimals).
type SenderShare struct {
	Sender  string  `json:"name"`
	Percent float64 `json:"percent"`
}

// TimelinePoint is one period of a timeline, ordered by time.
type TimelinePoint struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// CategoryCount is a count for a categorical key such as a weekday name.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// TokenCount is a frequency table row (words or emoji).
type TokenCount struct {
	Token string `json:"token"`
	Count int    `json:"count"`
}

// Heatmap is a weekday × hour-bucket count matrix. Cells[i][j] is the count
// for Days[i] and Periods[j]; combinations absent from the data are 0.
type Heatmap struct {
	Days    []string `json:"days"`
	Periods []string `json:"periods"`
	Cells   [][]int  `json:"cells"`
}

// Cell returns the count for (day, period), or 0 when either is absent.
func (h Heatmap) Cell(day, period string) int {
	for i, d := range h.Days {
		if d != day {
			continue
		}
		for j, p := range h.Periods {
			if p == period {
				return h.Cells[i][j]
			}
		}
	}
	return 0
}

// WordCloud is the input a word-cloud renderer needs.
type WordCloud struct {
	Corpus  string       `json:"corpus"`
	Weights []TokenCount `json:"weights"`
}

// Sentiment labels.
const (
	Positive = "Positive"
	Negative = "Negative"
	Neutral  = "Neutral"
)

// ScoredRecord pairs a record with its polarity.
type ScoredRecord struct {
	Sender   string  `json:"sender"`
	Body     string  `json:"body"`
	Compound float64 `json:"compound"`
	Label    string  `json:"label"`
}

// SentimentSummary aggregates per-record scores for display.
// MostPositive and MostNegative are nil for an empty collection.
type SentimentSummary struct {
	Distribution map[string]int `json:"distribution"`
	MostPositive *ScoredRecord  `json:"most_positive,omitempty"`
	MostNegative *ScoredRecord  `json:"most_negative,omitempty"`
}

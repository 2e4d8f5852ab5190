package services

import (
	"github.com/tbourn/chatlens/internal/analytics"
	"github.com/tbourn/chatlens/internal/chatlog"
	"github.com/tbourn/chatlens/internal/domain"
	"github.com/tbourn/chatlens/internal/emoji"
	"github.com/tbourn/chatlens/internal/lexical"
	"github.com/tbourn/chatlens/internal/sentiment"
	"github.com/tbourn/chatlens/internal/topics"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Table names accepted by Analysis.Table.
const (
	TableStats           = "stats"
	TableBusySenders     = "busy-senders"
	TableMonthlyTimeline = "monthly-timeline"
	TableDailyTimeline   = "daily-timeline"
	TableWeekActivity    = "week-activity"
	TableMonthActivity   = "month-activity"
	TableHeatmap         = "heatmap"
	TableWordCloud       = "wordcloud"
	TableCommonWords     = "common-words"
	TableEmojis          = "emojis"
	TableSentiment       = "sentiment"
	TableTopics          = "topics"
)

// Tables lists every table name in report order.
var Tables = []string{
	TableStats, TableBusySenders, TableMonthlyTimeline, TableDailyTimeline,
	TableWeekActivity, TableMonthActivity, TableHeatmap, TableWordCloud,
	TableCommonWords, TableEmojis, TableSentiment, TableTopics,
}

// BusySenders is the top-senders table plus every sender's share.
type BusySenders struct {
	Top    []domain.SenderCount `json:"top"`
	Shares []domain.SenderShare `json:"shares"`
}

// EmojiTable carries emoji frequencies; InsufficientData is set when none
// were found.
type EmojiTable struct {
	Emojis           []domain.TokenCount `json:"emojis"`
	InsufficientData bool                `json:"insufficient_data"`
}

// SentimentTable carries per-record scores and their summary.
type SentimentTable struct {
	Records []domain.ScoredRecord   `json:"records"`
	Summary domain.SentimentSummary `json:"summary"`
}

// TopicsTable carries topic labels; InsufficientData is set when the corpus
// could not support a model.
type TopicsTable struct {
	Topics           []string `json:"topics"`
	InsufficientData bool     `json:"insufficient_data"`
}

// Report bundles every table for one view.
type Report struct {
	Sender          string                 `json:"sender"`
	Senders         []string               `json:"senders"`
	Records         int                    `json:"records"`
	SkippedLines    int                    `json:"skipped_lines"`
	Stats           domain.Stats           `json:"stats"`
	BusySenders     *BusySenders           `json:"busy_senders,omitempty"`
	MonthlyTimeline []domain.TimelinePoint `json:"monthly_timeline"`
	DailyTimeline   []domain.TimelinePoint `json:"daily_timeline"`
	WeekActivity    []domain.CategoryCount `json:"week_activity"`
	MonthActivity   []domain.CategoryCount `json:"month_activity"`
	Heatmap         domain.Heatmap         `json:"heatmap"`
	WordCloud       domain.WordCloud       `json:"wordcloud"`
	CommonWords     []domain.TokenCount    `json:"common_words"`
	Emojis          EmojiTable             `json:"emojis"`
	Sentiment       SentimentTable         `json:"sentiment"`
	Topics          TopicsTable            `json:"topics"`
}

// Analysis is one parsed export viewed through a sender filter. Tables are
// computed on demand and never mutate the underlying collections.
type Analysis struct {
	svc    *AnalysisService
	full   *chatlog.Collection
	view   *chatlog.Collection
	sender string
	topics int
	terms  int
}

// Sender is the active filter (Overall when unfiltered).
func (a *Analysis) Sender() string { return a.sender }

// IsOverall reports whether the view is unfiltered.
func (a *Analysis) IsOverall() bool { return a.sender == Overall }

// Collection is the filtered view.
func (a *Analysis) Collection() *chatlog.Collection { return a.view }

// Senders lists authors of the full export, notifications excluded, in
// English collation order.
func (a *Analysis) Senders() []string {
	var out []string
	for _, s := range a.full.Senders() {
		if s != domain.GroupNotification {
			out = append(out, s)
		}
	}
	collate.New(language.English).SortStrings(out)
	if out == nil {
		out = []string{}
	}
	return out
}

// Stats counts messages, words, media and links in the view.
func (a *Analysis) Stats() domain.Stats {
	return analytics.FetchStats(a.view, a.svc.urls())
}

// BusySenders is computed on the full export; it returns nil for a
// filtered view.
func (a *Analysis) BusySenders() *BusySenders {
	if !a.IsOverall() {
		return nil
	}
	top, shares := analytics.MostBusySenders(a.full)
	return &BusySenders{Top: top, Shares: shares}
}

// MonthlyTimeline counts view records per calendar month, oldest first.
func (a *Analysis) MonthlyTimeline() []domain.TimelinePoint {
	return analytics.MonthlyTimeline(a.view)
}

// DailyTimeline counts view records per date, oldest first.
func (a *Analysis) DailyTimeline() []domain.TimelinePoint {
	return analytics.DailyTimeline(a.view)
}

// WeekActivity counts view records per weekday, busiest first.
func (a *Analysis) WeekActivity() []domain.CategoryCount {
	return analytics.WeekActivityMap(a.view)
}

// MonthActivity counts view records per month name, busiest first.
func (a *Analysis) MonthActivity() []domain.CategoryCount {
	return analytics.MonthActivityMap(a.view)
}

// Heatmap pivots the view into weekday × hour-bucket counts.
func (a *Analysis) Heatmap() domain.Heatmap {
	return analytics.ActivityHeatmap(a.view)
}

// WordCloud builds the stop-word-filtered corpus of the view.
func (a *Analysis) WordCloud() domain.WordCloud {
	return a.lexical().WordCloud(a.view)
}

// CommonWords ranks the view's most frequent non-stop words.
func (a *Analysis) CommonWords() []domain.TokenCount {
	return a.lexical().MostCommon(a.view)
}

// Emojis ranks emoji usage in the view.
func (a *Analysis) Emojis() EmojiTable {
	freq := emoji.NewExtractor(a.svc.Emoji).Frequencies(a.view)
	return EmojiTable{Emojis: freq, InsufficientData: len(freq) == 0}
}

// Sentiment scores every view record and summarizes the labels.
func (a *Analysis) Sentiment() SentimentTable {
	scored := sentiment.NewAnalyzer(a.svc.Scorer).Score(a.view)
	return SentimentTable{Records: scored, Summary: sentiment.Summarize(scored)}
}

// Topics fits the topic model over the view's authored text.
func (a *Analysis) Topics() TopicsTable {
	d := topics.NewDiscoverer(a.svc.Model,
		topics.WithTopics(a.topics),
		topics.WithTermsPerTopic(a.terms),
		topics.WithStopWords(a.svc.StopWords),
		topics.WithLemmatizer(a.svc.Lemmatizer),
	)
	labels := d.Discover(a.view)
	return TopicsTable{Topics: labels, InsufficientData: len(labels) == 0}
}

// Table returns the named table, or ErrUnknownTable.
func (a *Analysis) Table(name string) (any, error) {
	switch name {
	case TableStats:
		return a.Stats(), nil
	case TableBusySenders:
		return a.BusySenders(), nil
	case TableMonthlyTimeline:
		return a.MonthlyTimeline(), nil
	case TableDailyTimeline:
		return a.DailyTimeline(), nil
	case TableWeekActivity:
		return a.WeekActivity(), nil
	case TableMonthActivity:
		return a.MonthActivity(), nil
	case TableHeatmap:
		return a.Heatmap(), nil
	case TableWordCloud:
		return a.WordCloud(), nil
	case TableCommonWords:
		return a.CommonWords(), nil
	case TableEmojis:
		return a.Emojis(), nil
	case TableSentiment:
		return a.Sentiment(), nil
	case TableTopics:
		return a.Topics(), nil
	}
	return nil, ErrUnknownTable
}

// Report computes every table.
func (a *Analysis) Report() Report {
	return Report{
		Sender:          a.sender,
		Senders:         a.Senders(),
		Records:         a.view.Len(),
		SkippedLines:    a.full.Skipped(),
		Stats:           a.Stats(),
		BusySenders:     a.BusySenders(),
		MonthlyTimeline: a.MonthlyTimeline(),
		DailyTimeline:   a.DailyTimeline(),
		WeekActivity:    a.WeekActivity(),
		MonthActivity:   a.MonthActivity(),
		Heatmap:         a.Heatmap(),
		WordCloud:       a.WordCloud(),
		CommonWords:     a.CommonWords(),
		Emojis:          a.Emojis(),
		Sentiment:       a.Sentiment(),
		Topics:          a.Topics(),
	}
}

func (a *Analysis) lexical() *lexical.Analyzer {
	return lexical.NewAnalyzer(lexical.WithStopWords(a.svc.StopWords))
}

func (s *AnalysisService) urls() analytics.URLFinder {
	if s.URLs == nil {
		return analytics.DefaultURLFinder()
	}
	return s.URLs
}

// Package services – AnalysisService
//
// AnalysisService turns a raw chat export into an Analysis. It owns the
// shared, read-only capabilities (stop words, URL finder, sentiment scorer,
// lemmatizer, topic model) built once at startup, and parses a fresh
// Collection per call, so a single service may serve concurrent requests.
//
// Observability: Analyze is OpenTelemetry-instrumented and feeds the
// chatlens_* Prometheus collectors.
package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tbourn/chatlens/internal/analytics"
	"github.com/tbourn/chatlens/internal/chatlog"
	"github.com/tbourn/chatlens/internal/emoji"
	"github.com/tbourn/chatlens/internal/lexical"
	"github.com/tbourn/chatlens/internal/sentiment"
	"github.com/tbourn/chatlens/internal/topics"
)

// Overall selects the unfiltered view, as does an empty sender.
const Overall = "Overall"

// Limits and defaults applied by Analyze.
const (
	DefaultMaxExportBytes = 16 << 20
	MaxTopics             = 50
	MaxTermsPerTopic      = 100
)

// AnalyzeOptions are per-request knobs. Zero values fall back to the
// service defaults.
type AnalyzeOptions struct {
	// Sender restricts per-user tables to one sender ("" or Overall for all).
	Sender string
	// Topics is the number of topics to fit.
	Topics int
	// Terms is the number of terms labeling each topic.
	Terms int
	// Lenient skips malformed lines instead of failing the export.
	Lenient bool
}

// AnalysisService is safe for concurrent use once constructed.
type AnalysisService struct {
	StopWords  lexical.StopWords
	URLs       analytics.URLFinder
	Scorer     sentiment.Scorer
	Lemmatizer topics.Lemmatizer
	Model      topics.Model
	Emoji      emoji.Classifier

	// MaxExportBytes caps accepted exports (<= 0 disables the cap).
	MaxExportBytes int64
	// DefaultTopics and DefaultTerms apply when AnalyzeOptions leaves them 0.
	DefaultTopics int
	DefaultTerms  int
	// Lenient makes lenient parsing the default for every call.
	Lenient bool
	// Location interprets export timestamps (nil = UTC).
	Location *time.Location
}

// NewAnalysisService wires the pipeline capabilities with default limits.
// A nil URL finder or emoji classifier uses the package defaults.
func NewAnalysisService(sw lexical.StopWords, scorer sentiment.Scorer, lem topics.Lemmatizer, model topics.Model) *AnalysisService {
	return &AnalysisService{
		StopWords:      sw,
		URLs:           analytics.DefaultURLFinder(),
		Scorer:         scorer,
		Lemmatizer:     lem,
		Model:          model,
		MaxExportBytes: DefaultMaxExportBytes,
		DefaultTopics:  topics.DefaultTopics,
		DefaultTerms:   topics.DefaultTermsPerTopic,
	}
}

// Analyze validates, decodes and parses raw, then returns an Analysis
// scoped to opts.Sender. Parse failures wrap chatlog.ErrParse.
func (s *AnalysisService) Analyze(ctx context.Context, raw []byte, opts AnalyzeOptions) (*Analysis, error) {
	tr := otel.Tracer("services/AnalysisService")
	ctx, span := tr.Start(ctx, "Analyze",
		trace.WithAttributes(
			attribute.Int("export.bytes", len(raw)),
			attribute.Bool("parse.lenient", opts.Lenient || s.Lenient),
		),
	)
	defer span.End()
	lg := zerolog.Ctx(ctx)

	k, n, err := s.resolveCounts(opts)
	if err != nil {
		analysesTotal.WithLabelValues(outcomeRejected).Inc()
		return nil, err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		analysesTotal.WithLabelValues(outcomeRejected).Inc()
		return nil, ErrEmptyExport
	}
	if s.MaxExportBytes > 0 && int64(len(raw)) > s.MaxExportBytes {
		analysesTotal.WithLabelValues(outcomeRejected).Inc()
		return nil, ErrExportTooLarge
	}

	start := time.Now()
	full, err := s.parse(ctx, raw, opts.Lenient || s.Lenient)
	parseDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "parse failed")
		analysesTotal.WithLabelValues(outcomeParse).Inc()
		lg.Debug().Err(err).Msg("export rejected")
		return nil, err
	}

	recordsParsed.Add(float64(full.Len()))
	linesSkipped.Add(float64(full.Skipped()))
	analysesTotal.WithLabelValues(outcomeOK).Inc()
	span.SetAttributes(
		attribute.Int("records", full.Len()),
		attribute.Int("lines.skipped", full.Skipped()),
	)
	lg.Debug().Int("records", full.Len()).Int("skipped", full.Skipped()).Msg("export parsed")

	sender := strings.TrimSpace(opts.Sender)
	view := full
	if sender == "" || sender == Overall {
		sender = Overall
	} else {
		view = full.BySender(sender)
	}

	return &Analysis{
		svc:    s,
		full:   full,
		view:   view,
		sender: sender,
		topics: k,
		terms:  n,
	}, nil
}

func (s *AnalysisService) parse(ctx context.Context, raw []byte, lenient bool) (*chatlog.Collection, error) {
	_, span := otel.Tracer("services/AnalysisService").Start(ctx, "parse")
	defer span.End()

	text, err := chatlog.Decode(raw)
	if err != nil {
		return nil, err
	}
	var popts []chatlog.Option
	if lenient {
		popts = append(popts, chatlog.WithLenient())
	}
	if s.Location != nil {
		popts = append(popts, chatlog.WithLocation(s.Location))
	}
	c, err := chatlog.Parse(text, popts...)
	if err != nil {
		var pe *chatlog.ParseError
		if errors.As(err, &pe) {
			span.SetAttributes(attribute.Int("parse.index", pe.Index))
		}
		return nil, fmt.Errorf("services: parse export: %w", err)
	}
	return c, nil
}

func (s *AnalysisService) resolveCounts(opts AnalyzeOptions) (int, int, error) {
	k, n := opts.Topics, opts.Terms
	if k < 0 || k > MaxTopics {
		return 0, 0, ErrInvalidTopicCount
	}
	if n < 0 || n > MaxTermsPerTopic {
		return 0, 0, ErrInvalidTermCount
	}
	if k == 0 {
		k = s.DefaultTopics
	}
	if n == 0 {
		n = s.DefaultTerms
	}
	return k, n, nil
}

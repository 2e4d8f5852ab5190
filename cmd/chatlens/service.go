package main

import (
	"fmt"

	"github.com/tbourn/chatlens/internal/config"
	"github.com/tbourn/chatlens/internal/lexical"
	"github.com/tbourn/chatlens/internal/sentiment"
	"github.com/tbourn/chatlens/internal/services"
	"github.com/tbourn/chatlens/internal/topics"
	"github.com/tbourn/chatlens/internal/topics/lda"
)

// newService loads the shared analysis resources once. An empty
// stopWordsPath disables stop-word filtering.
func newService(cfg config.Config, stopWordsPath string) (*services.AnalysisService, error) {
	sw := lexical.NewStopWords()
	if stopWordsPath != "" {
		loaded, err := lexical.LoadStopWordsFile(stopWordsPath)
		if err != nil {
			return nil, err
		}
		sw = loaded
	}

	lem, err := topics.NewEnglishLemmatizer()
	if err != nil {
		return nil, fmt.Errorf("load lemmatizer: %w", err)
	}

	svc := services.NewAnalysisService(sw, sentiment.NewVaderScorer(), lem, lda.New())
	svc.MaxExportBytes = cfg.MaxExportBytes
	svc.DefaultTopics = cfg.TopicCount
	svc.DefaultTerms = cfg.TopicTerms
	svc.Lenient = cfg.LenientParse
	svc.Location = cfg.Location()
	return svc, nil
}

// Package emoji tallies emoji usage across a chat.
package emoji

import (
	"github.com/forPelevin/gomoji"

	"github.com/tbourn/chatlens/internal/chatlog"
	"github.com/tbourn/chatlens/internal/domain"
	"github.com/tbourn/chatlens/internal/utils"
)

// Classifier reports whether a single code point is an emoji.
type Classifier func(r rune) bool

// Fitzpatrick skin-tone modifiers. gomoji only lists them inside modified
// sequences, but a body is scanned one code point at a time.
const (
	skinToneFirst = 0x1F3FB
	skinToneLast  = 0x1F3FF
)

// IsEmoji classifies r against the Unicode emoji table shipped with gomoji.
// ASCII is never an emoji even though keycap bases ('#', '0'-'9') appear in
// the table. Skin-tone modifiers count as emoji of their own.
func IsEmoji(r rune) bool {
	if r < 0x80 {
		return false
	}
	if r >= skinToneFirst && r <= skinToneLast {
		return true
	}
	return gomoji.ContainsEmoji(string(r))
}

// Extractor is stateless and safe for concurrent use.
type Extractor struct {
	classify Classifier
}

// NewExtractor returns an Extractor; a nil classifier means IsEmoji.
func NewExtractor(classify Classifier) *Extractor {
	if classify == nil {
		classify = IsEmoji
	}
	return &Extractor{classify: classify}
}

// Frequencies scans authored bodies code point by code point and returns
// every emoji found with its count, most used first (ties in first-seen
// order). The result is empty, never nil, when no emoji occur; callers
// should skip the section in that case.
func (e *Extractor) Frequencies(c *chatlog.Collection) []domain.TokenCount {
	counts := utils.NewCounter()
	for _, r := range c.Records() {
		if !r.HasText() {
			continue
		}
		for _, ch := range r.Body {
			if e.classify(ch) {
				counts.Add(string(ch))
			}
		}
	}
	ranked := counts.MostCommon(0)
	out := make([]domain.TokenCount, len(ranked))
	for i, kc := range ranked {
		out[i] = domain.TokenCount{Token: kc.Key, Count: kc.Count}
	}
	return out
}

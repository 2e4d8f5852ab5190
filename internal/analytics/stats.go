// Package analytics provides the read-only aggregations over a parsed chat:
// headline stats, busiest senders, timelines, activity maps and the
// weekday × hour heatmap.
//
// Every function is pure: it reads the collection and returns a freshly
// allocated table. Rankings break ties by first appearance in the export.
package analytics

import (
	"strings"

	"mvdan.cc/xurls/v2"

	"github.com/tbourn/chatlens/internal/chatlog"
)

// URLFinder extracts URLs from a body. *regexp.Regexp satisfies it.
type URLFinder interface {
	FindAllString(s string, n int) []string
}

// DefaultURLFinder matches URLs with or without a scheme (e.g. "go.dev/doc").
// The returned value is safe for concurrent use.
func DefaultURLFinder() URLFinder { return xurls.Relaxed() }

// FetchStats counts records, words, media placeholders and links.
//
// Words and links are only counted over authored text: group notifications
// and media placeholders contribute 0. A nil urls disables link counting.
func FetchStats(c *chatlog.Collection, urls URLFinder) Stats {
	var st Stats
	st.Messages = c.Len()
	for _, r := range c.Records() {
		if r.IsMedia() {
			st.Media++
		}
		if !r.HasText() {
			continue
		}
		st.Words += len(strings.Fields(r.Body))
		if urls != nil {
			st.Links += len(urls.FindAllString(r.Body, -1))
		}
	}
	return st
}

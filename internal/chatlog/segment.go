// Package chatlog turns the raw text of a chat export into an immutable,
// ordered collection of domain.Record values.
//
// Parsing happens in two stages:
//
//   - Segment locates every "M/D/YY, H:MM AM - " prefix and returns the text
//     between consecutive prefixes as one Line.
//   - Build parses each Line's timestamp, splits sender from body, and derives
//     the calendar fields.
//
// The package does no logging and holds no global mutable state; everything
// it returns is safe to share between goroutines once built.
package chatlog

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// timestampRE matches the export's line prefix. The whitespace class also
// covers U+202F and U+00A0, which some exporters put before AM/PM.
var timestampRE = regexp.MustCompile(
	`\d{1,2}/\d{1,2}/\d{2,4},[\s\x{202F}\x{00A0}]\d{1,2}:\d{2}[\s\x{202F}\x{00A0}]?[AP]M[\s\x{202F}\x{00A0}]-[\s\x{202F}\x{00A0}]`,
)

var spaceNormalizer = strings.NewReplacer("\u202f", " ", "\u00a0", " ")

// Line is one segmented entry: the matched timestamp prefix (spaces
// normalized) and everything up to the next prefix.
type Line struct {
	Timestamp string
	Rest      string
}

// Segment splits text into Lines in source order. Text before the first
// timestamp is discarded; text without any timestamp yields no Lines.
func Segment(text string) []Line {
	locs := timestampRE.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}
	out := make([]Line, 0, len(locs))
	for i, loc := range locs {
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		out = append(out, Line{
			Timestamp: spaceNormalizer.Replace(text[loc[0]:loc[1]]),
			Rest:      text[loc[1]:end],
		})
	}
	return out
}

// SplitSender separates "Name: text" into its parts. The separator is the
// first ": " on the first line that follows at least one name character.
// Without a separator the sender is empty and the whole remainder is body.
// Trailing line terminators are removed from the body.
func SplitSender(rest string) (sender, body string) {
	firstLine := rest
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		firstLine = rest[:nl]
	}
	if firstLine != "" {
		_, size := utf8.DecodeRuneInString(firstLine)
		if i := strings.Index(firstLine[size:], ": "); i >= 0 {
			i += size
			return rest[:i], trimEOL(rest[i+2:])
		}
	}
	return "", trimEOL(rest)
}

func trimEOL(s string) string {
	return strings.TrimRight(s, "\r\n")
}

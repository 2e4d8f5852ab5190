// Package domain defines the data model produced by parsing a chat export:
// the Record and the derived table shapes the presentation layer consumes.
// Records are value types; a built collection is never mutated.
package domain

import (
	"fmt"
	"time"
)

const (
	// GroupNotification is the sender assigned to system lines (joins, leaves,
	// subject changes) that carry no explicit author.
	GroupNotification = "group_notification"

	// MediaOmitted is the body an export writes in place of an attachment.
	MediaOmitted = "<Media omitted>"
)

// Record is one parsed chat line together with its calendar fields.
//
// Fields:
//   - Timestamp: parsed as a naive wall-clock time (UTC location).
//   - Sender: author name, or GroupNotification for system lines. Never empty.
//   - Body: message text; may equal MediaOmitted.
//   - Date..Minute: derived from Timestamp once at build time.
//   - Period: one-hour bucket label "HH-HH+1" (mod 24) used for heatmaps.
type Record struct {
	Timestamp time.Time `json:"timestamp"`
	Sender    string    `json:"sender"`
	Body      string    `json:"body"`

	Date     string `json:"date"`
	Year     int    `json:"year"`
	MonthNum int    `json:"month_num"`
	Month    string `json:"month"`
	Day      int    `json:"day"`
	DayName  string `json:"day_name"`
	Hour     int    `json:"hour"`
	Minute   int    `json:"minute"`
	Period   string `json:"period"`
}

// NewRecord builds a Record and fills every derived field from ts.
// An empty sender falls back to GroupNotification.
func NewRecord(ts time.Time, sender, body string) Record {
	if sender == "" {
		sender = GroupNotification
	}
	return Record{
		Timestamp: ts,
		Sender:    sender,
		Body:      body,
		Date:      ts.Format(time.DateOnly),
		Year:      ts.Year(),
		MonthNum:  int(ts.Month()),
		Month:     ts.Month().String(),
		Day:       ts.Day(),
		DayName:   ts.Weekday().String(),
		Hour:      ts.Hour(),
		Minute:    ts.Minute(),
		Period:    HourBucket(ts.Hour()),
	}
}

// HourBucket returns the "HH-HH+1" label for hour, wrapping 23 to "23-00".
func HourBucket(hour int) string {
	return fmt.Sprintf("%02d-%02d", hour, (hour+1)%24)
}

// IsNotification reports whether the record is a system/group event.
func (r Record) IsNotification() bool { return r.Sender == GroupNotification }

// IsMedia reports whether the body is exactly the media placeholder.
func (r Record) IsMedia() bool { return r.Body == MediaOmitted }

// HasText reports whether the body is authored text that text-oriented
// analyses (word, URL, emoji scans) should look at.
func (r Record) HasText() bool { return !r.IsNotification() && !r.IsMedia() }

package analytics

import (
	"fmt"
	"sort"

	"github.com/tbourn/chatlens/internal/chatlog"
)

type monthKey struct {
	year, month int
	name        string
}

// MonthlyTimeline counts records per calendar month in chronological order.
// Labels read "{Month}-{Year}", e.g. "January-2023".
func MonthlyTimeline(c *chatlog.Collection) []TimelinePoint {
	counts := make(map[monthKey]int)
	for _, r := range c.Records() {
		counts[monthKey{year: r.Year, month: r.MonthNum, name: r.Month}]++
	}
	keys := make([]monthKey, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(a, b int) bool {
		if keys[a].year != keys[b].year {
			return keys[a].year < keys[b].year
		}
		return keys[a].month < keys[b].month
	})

	out := make([]TimelinePoint, 0, len(keys))
	for _, k := range keys {
		out = append(out, TimelinePoint{
			Label: fmt.Sprintf("%s-%d", k.name, k.year),
			Count: counts[k],
		})
	}
	return out
}

// DailyTimeline counts records per calendar date (YYYY-MM-DD), ascending.
func DailyTimeline(c *chatlog.Collection) []TimelinePoint {
	counts := make(map[string]int)
	for _, r := range c.Records() {
		counts[r.Date]++
	}
	dates := make([]string, 0, len(counts))
	for d := range counts {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	out := make([]TimelinePoint, 0, len(dates))
	for _, d := range dates {
		out = append(out, TimelinePoint{Label: d, Count: counts[d]})
	}
	return out
}

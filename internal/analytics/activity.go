package analytics

import (
	"sort"

	"github.com/tbourn/chatlens/internal/chatlog"
	"github.com/tbourn/chatlens/internal/domain"
	"github.com/tbourn/chatlens/internal/utils"
)

// WeekActivityMap counts records per weekday name, busiest first.
func WeekActivityMap(c *chatlog.Collection) []CategoryCount {
	return activity(c, func(r domain.Record) string { return r.DayName })
}

// MonthActivityMap counts records per month name, busiest first.
func MonthActivityMap(c *chatlog.Collection) []CategoryCount {
	return activity(c, func(r domain.Record) string { return r.Month })
}

func activity(c *chatlog.Collection, key func(domain.Record) string) []CategoryCount {
	counts := utils.NewCounter()
	for _, r := range c.Records() {
		counts.Add(key(r))
	}
	ranked := counts.MostCommon(0)
	out := make([]CategoryCount, len(ranked))
	for i, kc := range ranked {
		out[i] = CategoryCount{Category: kc.Key, Count: kc.Count}
	}
	return out
}

// ActivityHeatmap pivots records into weekday × hour-bucket counts.
// Rows hold the weekdays present (Sunday first), columns the buckets present
// (by hour); combinations that never occur are 0.
func ActivityHeatmap(c *chatlog.Collection) Heatmap {
	type cell struct{ day, hour int }
	counts := make(map[cell]int)
	dayNames := make(map[int]string)
	periods := make(map[int]string)
	for _, r := range c.Records() {
		d := int(r.Timestamp.Weekday())
		dayNames[d] = r.DayName
		periods[r.Hour] = r.Period
		counts[cell{day: d, hour: r.Hour}]++
	}

	days := sortedKeys(dayNames)
	hours := sortedKeys(periods)

	h := Heatmap{
		Days:    make([]string, len(days)),
		Periods: make([]string, len(hours)),
		Cells:   make([][]int, len(days)),
	}
	for j, hr := range hours {
		h.Periods[j] = periods[hr]
	}
	for i, d := range days {
		h.Days[i] = dayNames[d]
		row := make([]int, len(hours))
		for j, hr := range hours {
			row[j] = counts[cell{day: d, hour: hr}]
		}
		h.Cells[i] = row
	}
	return h
}

func sortedKeys(m map[int]string) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}

package analytics

import (
	"math"

	"github.com/tbourn/chatlens/internal/chatlog"
	"github.com/tbourn/chatlens/internal/utils"
)

// TopSenders is how many senders MostBusySenders ranks.
const TopSenders = 5

// MostBusySenders returns the five senders with most records and every
// sender's share of the total in percent, rounded to two decimals. Both
// tables are ordered by count descending.
func MostBusySenders(c *chatlog.Collection) ([]SenderCount, []SenderShare) {
	counts := utils.NewCounter()
	for _, r := range c.Records() {
		counts.Add(r.Sender)
	}

	ranked := counts.MostCommon(0)
	top := make([]SenderCount, 0, min(TopSenders, len(ranked)))
	for _, kc := range ranked {
		if len(top) == TopSenders {
			break
		}
		top = append(top, SenderCount{Sender: kc.Key, Count: kc.Count})
	}

	total := float64(c.Len())
	shares := make([]SenderShare, 0, len(ranked))
	for _, kc := range ranked {
		shares = append(shares, SenderShare{
			Sender:  kc.Key,
			Percent: round2(float64(kc.Count) / total * 100),
		})
	}
	return top, shares
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

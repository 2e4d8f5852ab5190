package chatlog

import (
	"time"

	"github.com/tbourn/chatlens/internal/domain"
)

// Layout is the export's timestamp format including the trailing separator.
const Layout = "1/2/06, 3:04 PM - "

// Option configures Build and Parse.
type Option func(*config)

type config struct {
	lenient bool
	loc     *time.Location
}

func defaultConfig() config {
	return config{lenient: false, loc: time.UTC}
}

// WithLenient switches to skip-and-continue: Lines with a malformed
// timestamp are dropped and counted in Collection.Skipped instead of failing
// the batch.
func WithLenient() Option {
	return func(c *config) { c.lenient = true }
}

// WithLocation interprets the naive export timestamps in loc (default UTC).
func WithLocation(loc *time.Location) Option {
	return func(c *config) {
		if loc != nil {
			c.loc = loc
		}
	}
}

// Build parses every Line into a Record. Unless WithLenient is given, the
// first non-conforming timestamp returns a *ParseError and no records.
func Build(lines []Line, opts ...Option) (*Collection, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	records := make([]domain.Record, 0, len(lines))
	skipped := 0
	for i, ln := range lines {
		ts, err := time.ParseInLocation(Layout, ln.Timestamp, cfg.loc)
		if err != nil {
			if cfg.lenient {
				skipped++
				continue
			}
			return nil, &ParseError{Index: i, Timestamp: ln.Timestamp, Err: err}
		}
		sender, body := SplitSender(ln.Rest)
		records = append(records, domain.NewRecord(ts, sender, body))
	}
	return &Collection{records: records, skipped: skipped}, nil
}

// Parse segments text and builds the resulting Lines.
func Parse(text string, opts ...Option) (*Collection, error) {
	return Build(Segment(text), opts...)
}

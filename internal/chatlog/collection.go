package chatlog

import "github.com/tbourn/chatlens/internal/domain"

// Collection is an immutable, ordered set of records. Accessors return
// copies, and Filter builds a new Collection, so a Collection can be shared
// freely between readers.
type Collection struct {
	records []domain.Record
	skipped int
}

// NewCollection copies records into a new Collection.
func NewCollection(records []domain.Record) *Collection {
	cp := make([]domain.Record, len(records))
	copy(cp, records)
	return &Collection{records: cp}
}

// Len returns the number of records. A nil Collection is empty.
func (c *Collection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.records)
}

// At returns the i-th record.
func (c *Collection) At(i int) domain.Record { return c.records[i] }

// Records returns a copy of all records in source order.
func (c *Collection) Records() []domain.Record {
	if c == nil {
		return nil
	}
	cp := make([]domain.Record, len(c.records))
	copy(cp, c.records)
	return cp
}

// Skipped is the number of lines dropped in lenient mode.
func (c *Collection) Skipped() int {
	if c == nil {
		return 0
	}
	return c.skipped
}

// Filter returns a new Collection with the records for which keep is true.
func (c *Collection) Filter(keep func(domain.Record) bool) *Collection {
	out := &Collection{}
	if c == nil {
		return out
	}
	for _, r := range c.records {
		if keep(r) {
			out.records = append(out.records, r)
		}
	}
	return out
}

// BySender returns the records authored by sender.
func (c *Collection) BySender(sender string) *Collection {
	return c.Filter(func(r domain.Record) bool { return r.Sender == sender })
}

// Senders lists distinct senders (including GroupNotification) in
// first-seen order.
func (c *Collection) Senders() []string {
	if c == nil {
		return nil
	}
	seen := make(map[string]struct{})
	var out []string
	for _, r := range c.records {
		if _, ok := seen[r.Sender]; ok {
			continue
		}
		seen[r.Sender] = struct{}{}
		out = append(out, r.Sender)
	}
	return out
}

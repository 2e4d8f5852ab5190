package chatlog

import (
	"errors"
	"fmt"
)

// ErrParse is matched (via errors.Is) by every *ParseError.
var ErrParse = errors.New("chatlog: malformed timestamp")

// ParseError reports the first segment whose timestamp did not conform to
// the export layout. In strict mode it aborts the whole batch.
type ParseError struct {
	Index     int    // position of the offending Line
	Timestamp string // the raw (normalized) timestamp text
	Err       error  // underlying time.Parse error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("chatlog: line %d: cannot parse timestamp %q: %v", e.Index, e.Timestamp, e.Err)
}

// Unwrap exposes the time.Parse error.
func (e *ParseError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrParse) succeed.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

package state

import "errors"

// DefaultQueryCapacity bounds the query buffer when no limit is configured.
const DefaultQueryCapacity = 8192

// ErrCapacityExceeded is returned when appending would overflow the query.
var ErrCapacityExceeded = errors.New("query buffer capacity exceeded")

// Query is the user's typed filter text, bounded by a fixed capacity.
type Query struct {
	buf []byte
}

// NewQuery allocates a query buffer holding at most capacity bytes.
func NewQuery(capacity int) *Query {
	if capacity <= 0 {
		capacity = DefaultQueryCapacity
	}
	return &Query{buf: make([]byte, 0, capacity)}
}

// Append adds c to the query. The buffer is left untouched when full.
func (q *Query) Append(c byte) error {
	if len(q.buf) == cap(q.buf) {
		return ErrCapacityExceeded
	}
	q.buf = append(q.buf, c)
	return nil
}

// Clear empties the query.
func (q *Query) Clear() {
	q.buf = q.buf[:0]
}

// String returns the query text.
func (q *Query) String() string {
	return string(q.buf)
}

// Len returns the number of bytes in the query.
func (q *Query) Len() int {
	return len(q.buf)
}

// Cap returns the configured capacity.
func (q *Query) Cap() int {
	return cap(q.buf)
}

package core

import "time"

// TimeProvider abstracts wall-clock access so entities and repositories
// never read time.Now directly
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}

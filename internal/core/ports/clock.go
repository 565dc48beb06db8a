package ports

import "time"

// Clock abstracts "now" so overdue/today/this-week calculations are
// deterministic under test.
type Clock interface {
	Now() time.Time
}

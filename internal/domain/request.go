package domain

import "time"

// Request is one served HTTP request as recorded in the log.
type Request struct {
	Path   string    `db:"path"`
	Status string    `db:"status"`
	Time   time.Time `db:"time"`
}

// PathHits is the number of logged requests for one exact path.
type PathHits struct {
	Path string `db:"path"`
	Hits int64  `db:"hits"`
}

// DailyStatusCount is the number of requests served with one status on one
// calendar day. Day is midnight UTC of that date.
type DailyStatusCount struct {
	Day      time.Time `db:"day"`
	Status   string    `db:"status"`
	Requests int64     `db:"requests"`
}

// Day truncates t to its calendar date, expressed as midnight UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

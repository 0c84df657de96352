package domain

import "time"

type ArticleViews struct {
	Title string
	Views int64
}

type AuthorViews struct {
	Name  string
	Views int64
}

// DailyErrorRate holds the unrounded error percentage; rounding is a
// presentation concern.
type DailyErrorRate struct {
	Day      time.Time
	ErrorPct float64
}

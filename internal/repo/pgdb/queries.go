package pgdb

import (
	sq "github.com/Masterminds/squirrel"
)

// TrafficQueries describes where traffic rollups come from. Both queries must
// return the columns of domain.PathHits and domain.DailyStatusCount and skip
// log rows whose grouped columns are NULL.
type TrafficQueries struct {
	PathHits          sq.SelectBuilder
	DailyStatusCounts sq.SelectBuilder
}

func RawTrafficQueries(b sq.StatementBuilderType) TrafficQueries {
	return TrafficQueries{
		PathHits: b.
			Select("path", "COUNT(*) AS hits").
			From("log").
			Where("path IS NOT NULL").
			GroupBy("path"),
		DailyStatusCounts: b.
			Select("time::date AS day", "status", "COUNT(*) AS requests").
			From("log").
			Where("status IS NOT NULL").
			Where("time IS NOT NULL").
			GroupBy("time::date", "status"),
	}
}

// ViewTrafficQueries reads the views from migrations/000002.
func ViewTrafficQueries(b sq.StatementBuilderType) TrafficQueries {
	return TrafficQueries{
		PathHits: b.
			Select("path", "hits").
			From("path_hits"),
		DailyStatusCounts: b.
			Select("day", "status", "requests").
			From("daily_status_counts"),
	}
}

package ledger

import "time"

// DateRange is an inclusive range of calendar days. A nil bound is open.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

func (d DateRange) IsZero() bool {
	return d.Start == nil && d.End == nil
}

// FilterByDate keeps the rows dated within rng. Start is widened to the start
// of its day and End to the end of its day. Rows without a date are dropped
// whenever a bound is set. An open range returns rows unchanged.
func FilterByDate(rows []Row, rng DateRange) []Row {
	if rng.IsZero() {
		return rows
	}

	var from, to time.Time
	if rng.Start != nil {
		from = startOfDay(*rng.Start)
	}
	if rng.End != nil {
		to = startOfDay(*rng.End).AddDate(0, 0, 1).Add(-time.Nanosecond)
	}

	out := make([]Row, 0, len(rows))
	for _, row := range rows {
		if row.Date.IsZero() {
			continue
		}
		if rng.Start != nil && row.Date.Before(from) {
			continue
		}
		if rng.End != nil && row.Date.After(to) {
			continue
		}
		out = append(out, row)
	}

	return out
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

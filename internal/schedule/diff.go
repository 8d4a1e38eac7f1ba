package schedule

import (
	"time"

	"tutordesk/internal/model"
)

// DiffResult partitions expected occurrences against persisted classes.
// Matching is exact on (date, start time) after clock normalization; an
// occurrence shifted by a minute counts as one missing and one extra.
type DiffResult struct {
	ExpectedCount int
	ActualCount   int
	MatchCount    int
	Missing       []Occurrence
	Extra         []model.Class
}

func matchKey(date time.Time, startTime string) string {
	return date.Format("2006-01-02") + "|" + NormalizeClock(startTime)
}

// Diff compares the expanded schedule against the classes actually on
// the calendar. Only classes flagged is_recurring can be reported as
// extra: an ad hoc class is no schedule's business.
func Diff(expected []Occurrence, actual []model.Class) DiffResult {
	res := DiffResult{
		ExpectedCount: len(expected),
		ActualCount:   len(actual),
	}

	actualKeys := make(map[string]bool, len(actual))
	for _, c := range actual {
		actualKeys[matchKey(c.Date, c.StartTime)] = true
	}

	expectedKeys := make(map[string]bool, len(expected))
	for _, o := range expected {
		key := matchKey(o.Date, o.StartTime)
		expectedKeys[key] = true
		if actualKeys[key] {
			res.MatchCount++
		} else {
			res.Missing = append(res.Missing, o)
		}
	}

	for _, c := range actual {
		if c.IsRecurring && !expectedKeys[matchKey(c.Date, c.StartTime)] {
			res.Extra = append(res.Extra, c)
		}
	}

	return res
}

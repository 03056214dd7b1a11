package filter

import "time"

// DateBucket names a date window relative to "now". Buckets are calendar
// anchored: week runs Monday through Sunday, quarter and year follow the
// calendar. Overdue means strictly before the start of today.
type DateBucket string

const (
	BucketAll     DateBucket = "all"
	BucketToday   DateBucket = "today"
	BucketWeek    DateBucket = "week"
	BucketMonth   DateBucket = "month"
	BucketQuarter DateBucket = "quarter"
	BucketYear    DateBucket = "year"
	BucketOverdue DateBucket = "overdue"
	BucketCustom  DateBucket = "custom"
)

func (b DateBucket) Valid() bool {
	switch b {
	case BucketAll, BucketToday, BucketWeek, BucketMonth, BucketQuarter, BucketYear, BucketOverdue, BucketCustom, "":
		return true
	}

	return false
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last second of t's day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

// Window returns the inclusive [start, end] bounds for the bucket relative
// to now. ok is false for BucketAll, BucketOverdue, and BucketCustom, which
// have no fixed window of their own.
func (b DateBucket) Window(now time.Time) (start, end time.Time, ok bool) {
	switch b {
	case BucketToday:
		return StartOfDay(now), EndOfDay(now), true
	case BucketWeek:
		// ISO week starts Monday.
		offset := int(now.Weekday())
		if offset == 0 {
			offset = 7
		}

		start = StartOfDay(now.AddDate(0, 0, -offset+1))

		return start, EndOfDay(start.AddDate(0, 0, 6)), true
	case BucketMonth:
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return start, EndOfDay(start.AddDate(0, 1, -1)), true
	case BucketQuarter:
		qMonth := time.Month((int(now.Month())-1)/3*3 + 1)
		start = time.Date(now.Year(), qMonth, 1, 0, 0, 0, 0, now.Location())

		return start, EndOfDay(start.AddDate(0, 3, -1)), true
	case BucketYear:
		start = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		return start, EndOfDay(start.AddDate(1, 0, -1)), true
	}

	return time.Time{}, time.Time{}, false
}

// Contains reports whether date falls inside the bucket relative to now.
// BucketAll and the empty bucket match everything. BucketCustom is resolved
// by InRange with the caller's explicit bounds, so here it matches
// everything as well.
func (b DateBucket) Contains(date, now time.Time) bool {
	switch b {
	case "", BucketAll, BucketCustom:
		return true
	case BucketOverdue:
		return date.Before(StartOfDay(now))
	}

	start, end, ok := b.Window(now)
	if !ok {
		return true
	}

	return !date.Before(start) && !date.After(end)
}

// InRange reports whether date falls inside the optional [from, to] bounds.
// Nil bounds are open ends; to is extended to the end of its day so a
// date-only upper bound includes the whole day.
func InRange(date time.Time, from, to *time.Time) bool {
	if from != nil && date.Before(StartOfDay(*from)) {
		return false
	}

	if to != nil && date.After(EndOfDay(*to)) {
		return false
	}

	return true
}

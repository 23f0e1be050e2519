package volume

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var ErrMalformedDate = errors.New("malformed volume date")

const (
	recordDateLayout = "2006-01-02"
	dayLabelLayout   = "Jan 2"
	monthLabelLayout = "Jan 06"
)

// DailyVolumeRecord is one persisted daily volume aggregate, keyed by UTC calendar date.
type DailyVolumeRecord struct {
	Date   string  `json:"date"`
	Volume float64 `json:"volume"`
}

type Bucket struct {
	Label  string  `json:"label"`
	Volume float64 `json:"volume"`
}

// span is a half open interval [from, to) of local calendar days,
// both represented as midnight UTC of the local date.
type span struct {
	from  time.Time
	to    time.Time
	label string
}

// Bucketize folds daily volume records into a zero-filled, chronologically ordered
// series of buckets covering the given time range, ending at the local date of now.
// localOffsetMinutes is the viewer offset east of UTC (e.g. -300 for UTC-5).
func Bucketize(records []DailyVolumeRecord, tr TimeRange, now time.Time, localOffsetMinutes int) ([]Bucket, error) {
	offset := time.Duration(localOffsetMinutes) * time.Minute
	today := localDate(now.UTC(), offset)

	spans, err := bucketSpans(tr, today)
	if err != nil {
		return nil, err
	}

	buckets := make([]Bucket, len(spans))
	for i, s := range spans {
		buckets[i] = Bucket{Label: s.label}
	}

	for _, r := range records {
		recordDate, err := time.Parse(recordDateLayout, r.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %s", ErrMalformedDate, r.Date, err)
		}

		day := localDate(recordDate, offset)
		idx := spanIndex(spans, day)
		if idx < 0 {
			continue
		}
		buckets[idx].Volume += clampVolume(r.Volume)
	}

	return buckets, nil
}

func bucketSpans(tr TimeRange, today time.Time) ([]span, error) {
	count := tr.BucketsCount()
	spans := make([]span, 0, count)

	switch tr {
	case Days:
		for i := count - 1; i >= 0; i-- {
			from := today.AddDate(0, 0, -i)
			spans = append(spans, span{
				from:  from,
				to:    from.AddDate(0, 0, 1),
				label: from.Format(dayLabelLayout),
			})
		}
	case Weeks:
		// time.Weekday starts on Sunday, weeks here start on Monday
		daysSinceMonday := (int(today.Weekday()) + 6) % 7
		currentMonday := today.AddDate(0, 0, -daysSinceMonday)
		for i := count - 1; i >= 0; i-- {
			from := currentMonday.AddDate(0, 0, -7*i)
			spans = append(spans, span{
				from:  from,
				to:    from.AddDate(0, 0, 7),
				label: from.Format(dayLabelLayout),
			})
		}
	case Months:
		currentMonth := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
		for i := count - 1; i >= 0; i-- {
			from := currentMonth.AddDate(0, -i, 0)
			spans = append(spans, span{
				from:  from,
				to:    from.AddDate(0, 1, 0),
				label: from.Format(monthLabelLayout),
			})
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTimeRange, string(tr))
	}

	return spans, nil
}

// localDate returns the calendar date of t shifted by offset, as midnight UTC.
func localDate(t time.Time, offset time.Duration) time.Time {
	shifted := t.Add(offset)
	return time.Date(shifted.Year(), shifted.Month(), shifted.Day(), 0, 0, 0, 0, time.UTC)
}

func spanIndex(spans []span, day time.Time) int {
	for i, s := range spans {
		if !day.Before(s.from) && day.Before(s.to) {
			return i
		}
	}
	return -1
}

func clampVolume(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}

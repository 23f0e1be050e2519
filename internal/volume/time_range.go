package volume

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownTimeRange = errors.New("unknown time range")

// TimeRange determines both the lookback window and the bucket granularity
// of a volume series. It can be one of:
//   - 7days    (7 daily buckets)
//   - 8weeks   (8 weekly buckets, weeks start on Monday)
//   - 12months (12 calendar month buckets)
type TimeRange string

const (
	Days   TimeRange = "7days"
	Weeks  TimeRange = "8weeks"
	Months TimeRange = "12months"
)

func ParseTimeRange(s string) (TimeRange, error) {
	tr := TimeRange(strings.ToLower(strings.TrimSpace(s)))
	if !tr.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownTimeRange, s)
	}
	return tr, nil
}

func (tr TimeRange) String() string {
	return string(tr)
}

func (tr TimeRange) IsValid() bool {
	switch tr {
	case Days, Weeks, Months:
		return true
	default:
		return false
	}
}

// BucketsCount is the fixed length of the series produced for the range.
func (tr TimeRange) BucketsCount() int {
	switch tr {
	case Days:
		return 7
	case Weeks:
		return 8
	case Months:
		return 12
	default:
		return 0
	}
}

// LookbackDays is the minimum number of days of daily volume rows
// that have to be fetched to fill the whole series.
func (tr TimeRange) LookbackDays() int {
	switch tr {
	case Days:
		return 7
	case Weeks:
		return 56
	case Months:
		return 365
	default:
		return 0
	}
}

package report

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Granularity is the width of a trend bucket.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityMonth Granularity = "month"
)

// ParseGranularity maps "day" and "month"; anything else is an error.
func ParseGranularity(value string) (Granularity, error) {
	switch Granularity(value) {
	case GranularityDay, GranularityMonth:
		return Granularity(value), nil
	case "":
		return GranularityDay, nil
	}
	return "", fmt.Errorf("unknown granularity %q", value)
}

// TrendPoint is the net amount of one bucket.
type TrendPoint struct {
	PeriodKey string
	Net       decimal.Decimal
}

// BuildTrend returns exactly bucketCount points, oldest first, the last one
// being the bucket that contains now. Transactions outside the buckets are ignored.
func BuildTrend(txs []Transaction, bucketCount int, granularity Granularity, now time.Time) []TrendPoint {
	if bucketCount <= 0 {
		return []TrendPoint{}
	}

	points := make([]TrendPoint, bucketCount)
	index := make(map[string]int, bucketCount)
	for i := 0; i < bucketCount; i++ {
		key := bucketKey(bucketStart(now, granularity, bucketCount-1-i), granularity)
		points[i] = TrendPoint{PeriodKey: key, Net: decimal.Zero}
		index[key] = i
	}

	for _, tx := range txs {
		i, ok := index[bucketKey(tx.OccurredOn, granularity)]
		if !ok {
			continue
		}
		if tx.Kind == KindIncome {
			points[i].Net = points[i].Net.Add(tx.Amount)
		} else {
			points[i].Net = points[i].Net.Sub(tx.Amount)
		}
	}

	return points
}

// TrendWindow is the inclusive day window covered by BuildTrend for the same arguments.
func TrendWindow(bucketCount int, granularity Granularity, now time.Time) Window {
	if bucketCount <= 0 {
		bucketCount = 1
	}
	start := bucketStart(now, granularity, bucketCount-1)
	return Window{Start: start, End: Day(now)}
}

// bucketStart returns the first day of the bucket that lies `back` buckets before now.
func bucketStart(now time.Time, granularity Granularity, back int) time.Time {
	today := Day(now)
	if granularity == GranularityMonth {
		return time.Date(today.Year(), today.Month()-time.Month(back), 1, 0, 0, 0, 0, time.UTC)
	}
	return today.AddDate(0, 0, -back)
}

func bucketKey(t time.Time, granularity Granularity) string {
	t = t.UTC()
	if granularity == GranularityMonth {
		return t.Format("2006-01")
	}
	return t.Format(dayLayout)
}

package analytics

import (
	"math"
	"time"

	"github.com/mdrakibgolder/AI-Enhanced-Productivity-Tools/internal/model"
)

// DefaultTrendWindow is the trailing window for completion trends.
const DefaultTrendWindow = 30

// CompletionTrend summarizes a daily-completion sequence. AvgDaily is
// rounded to one decimal. BestDay is the bucket with the most completions,
// earliest day on ties; an all-zero window yields the first bucket.
func CompletionTrend(buckets []DailyBucket) Trend {
	if len(buckets) == 0 {
		return Trend{}
	}

	trend := Trend{BestDay: buckets[0]}
	for _, b := range buckets {
		trend.TotalCompleted += b.TasksCompleted
		if b.TasksCompleted > trend.BestDay.TasksCompleted {
			trend.BestDay = b
		}
	}
	trend.AvgDaily = math.Round(float64(trend.TotalCompleted)/float64(len(buckets))*10) / 10
	return trend
}

// TrendFor computes the completion trend over a trailing window ending at
// now's day.
func TrendFor(tasks []model.Task, window int, now time.Time) (Trend, error) {
	buckets, err := DailyBuckets(tasks, nil, window, now)
	if err != nil {
		return Trend{}, err
	}
	return CompletionTrend(buckets), nil
}

package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/amteixeira/uvtrack-backend/internal/domain"
)

var weekdayNames = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// WeeklyReadingCounts counts this week's readings per calendar day.
// The week starts on Monday in now's location, and the result is always
// seven entries, Monday through Sunday, with zeros for empty days.
func (s *Service) WeeklyReadingCounts(ctx context.Context, now time.Time) ([]domain.DayCount, error) {
	start := startOfWeek(now)

	times, err := s.readings.ListTimesSince(ctx, start)
	if err != nil {
		return nil, fmt.Errorf("stats.WeeklyReadingCounts: %w", err)
	}

	return bucketByWeekday(times, now.Location()), nil
}

// startOfWeek returns midnight of the Monday on or before t, in t's location.
func startOfWeek(t time.Time) time.Time {
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	y, m, d := t.AddDate(0, 0, -daysSinceMonday).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// bucketByWeekday produces the dense Monday..Sunday histogram.
func bucketByWeekday(times []time.Time, loc *time.Location) []domain.DayCount {
	var counts [7]int
	for _, t := range times {
		counts[(int(t.In(loc).Weekday())+6)%7]++
	}

	out := make([]domain.DayCount, 7)
	for i := range out {
		out[i] = domain.DayCount{Day: weekdayNames[i], Count: counts[i]}
	}
	return out
}

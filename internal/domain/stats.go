package domain

import "time"

// LocationStats ranks a location by how many readings were collected there.
type LocationStats struct {
	Location     Location
	ReadingCount int
	AvgFrequency float64
}

// DailyAverage is the mean frequency of all readings on one calendar day.
type DailyAverage struct {
	Day          time.Time
	AvgFrequency float64
}

// DayCount pairs a weekday label with the number of readings on that day.
type DayCount struct {
	Day   string
	Count int
}

// OverallStats is the site-wide dashboard summary.
type OverallStats struct {
	TotalReadings   int
	AvgFrequency    float64
	TotalAssemblies int
	TotalUsers      int
}

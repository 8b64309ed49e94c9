package services

import (
	"math"

	"weather-dashboard/internal/models"
)

const (
	maxHourlyEntries = 8
	maxWeeklyEntries = 7
)

// BuildHourly maps the first 8 chronological samples (~24 hours at
// 3-hour cadence) to hourly entries. Fewer than 8 samples yields all of
// them; no samples yields an empty slice.
func BuildHourly(samples []models.ForecastSample) []models.HourlyEntry {
	n := len(samples)
	if n > maxHourlyEntries {
		n = maxHourlyEntries
	}
	hourly := make([]models.HourlyEntry, 0, n)
	for _, s := range samples[:n] {
		hourly = append(hourly, models.HourlyEntry{
			Time:          s.Timestamp.Format("3 PM"),
			Temp:          int(math.Round(s.Temperature)),
			Icon:          s.Icon,
			Precipitation: int(math.Round(s.Precipitation * 100)),
			Description:   s.Description,
		})
	}
	return hourly
}

type dayBucket struct {
	date       string
	label      string
	temps      []float64
	conditions []string
	icons      []string
	pops       []float64
}

// BuildWeekly partitions samples by local calendar date and rolls each
// day up to high/low, mean precipitation percentage and the day's modal
// condition and icon. At most 7 days are returned, labelled Today,
// Tomorrow, then the full weekday name.
func BuildWeekly(samples []models.ForecastSample) []models.DayForecast {
	var order []string
	buckets := make(map[string]*dayBucket)

	for _, s := range samples {
		key := s.Timestamp.Format("2006-01-02")
		b, ok := buckets[key]
		if !ok {
			b = &dayBucket{date: key, label: s.Timestamp.Format("Monday")}
			buckets[key] = b
			order = append(order, key)
		}
		b.temps = append(b.temps, s.Temperature)
		b.conditions = append(b.conditions, s.Condition)
		b.icons = append(b.icons, s.Icon)
		b.pops = append(b.pops, s.Precipitation*100)
	}

	if len(order) > maxWeeklyEntries {
		order = order[:maxWeeklyEntries]
	}

	weekly := make([]models.DayForecast, 0, len(order))
	for i, key := range order {
		b := buckets[key]

		high, low := b.temps[0], b.temps[0]
		for _, t := range b.temps[1:] {
			high = math.Max(high, t)
			low = math.Min(low, t)
		}

		var popSum float64
		for _, p := range b.pops {
			popSum += p
		}

		label := b.label
		switch i {
		case 0:
			label = "Today"
		case 1:
			label = "Tomorrow"
		}

		weekly = append(weekly, models.DayForecast{
			Day:           label,
			High:          int(math.Round(high)),
			Low:           int(math.Round(low)),
			Condition:     modal(b.conditions),
			Icon:          modal(b.icons),
			Precipitation: int(math.Round(popSum / float64(len(b.pops)))),
		})
	}
	return weekly
}

// modal returns the most frequent value; ties go to the value seen
// first, since map iteration order would make the choice unstable.
func modal(values []string) string {
	counts := make(map[string]int, len(values))
	for _, v := range values {
		counts[v]++
	}

	best := ""
	bestCount := 0
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		if counts[v] > bestCount {
			best = v
			bestCount = counts[v]
		}
	}
	return best
}

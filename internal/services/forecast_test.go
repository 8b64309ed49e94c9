package services

import (
	"testing"
	"time"

	"weather-dashboard/internal/models"
)

func sample(ts time.Time, temp float64, cond, icon string, pop float64) models.ForecastSample {
	return models.ForecastSample{
		Timestamp:     ts,
		Temperature:   temp,
		Condition:     cond,
		Description:   cond,
		Icon:          icon,
		Precipitation: pop,
	}
}

// threeHourSeries builds n samples at 3-hour cadence starting from start.
func threeHourSeries(start time.Time, n int) []models.ForecastSample {
	samples := make([]models.ForecastSample, 0, n)
	for i := 0; i < n; i++ {
		samples = append(samples, sample(start.Add(time.Duration(i)*3*time.Hour), 20+float64(i), "Clear", "01d", 0.1))
	}
	return samples
}

func TestBuildHourlyLength(t *testing.T) {
	start := time.Date(2024, 7, 15, 9, 0, 0, 0, time.Local)

	for _, n := range []int{0, 1, 5, 8, 12, 40} {
		hourly := BuildHourly(threeHourSeries(start, n))
		want := n
		if want > 8 {
			want = 8
		}
		if len(hourly) != want {
			t.Errorf("n=%d: got %d entries, want %d", n, len(hourly), want)
		}
	}
}

func TestBuildHourlyPreservesOrderAndRounds(t *testing.T) {
	start := time.Date(2024, 7, 15, 9, 0, 0, 0, time.Local)
	samples := []models.ForecastSample{
		sample(start, 20.4, "Clear", "01d", 0.345),
		sample(start.Add(3*time.Hour), 21.6, "Clouds", "03d", 0),
	}

	hourly := BuildHourly(samples)
	if len(hourly) != 2 {
		t.Fatalf("got %d entries", len(hourly))
	}
	if hourly[0].Temp != 20 || hourly[1].Temp != 22 {
		t.Errorf("temps = %d, %d; want 20, 22", hourly[0].Temp, hourly[1].Temp)
	}
	if hourly[0].Precipitation != 35 || hourly[1].Precipitation != 0 {
		t.Errorf("precipitation = %d, %d; want 35, 0", hourly[0].Precipitation, hourly[1].Precipitation)
	}
	if hourly[0].Time != "9 AM" || hourly[1].Time != "12 PM" {
		t.Errorf("time labels = %q, %q; want 9 AM, 12 PM", hourly[0].Time, hourly[1].Time)
	}
}

func TestBuildHourlyPrecipitationBounds(t *testing.T) {
	start := time.Date(2024, 7, 15, 0, 0, 0, 0, time.Local)
	pops := []float64{0, 0.004, 0.5, 0.996, 1}
	samples := make([]models.ForecastSample, 0, len(pops))
	for i, p := range pops {
		samples = append(samples, sample(start.Add(time.Duration(i)*3*time.Hour), 20, "Clear", "01d", p))
	}

	for i, h := range BuildHourly(samples) {
		if h.Precipitation < 0 || h.Precipitation > 100 {
			t.Errorf("entry %d: precipitation %d out of [0,100]", i, h.Precipitation)
		}
	}
}

func TestBuildWeeklyEmptyInput(t *testing.T) {
	if got := BuildWeekly(nil); len(got) != 0 {
		t.Errorf("expected empty weekly, got %d entries", len(got))
	}
	if got := BuildHourly(nil); len(got) != 0 {
		t.Errorf("expected empty hourly, got %d entries", len(got))
	}
}

func TestBuildWeeklyHighLowAndCap(t *testing.T) {
	start := time.Date(2024, 7, 15, 0, 0, 0, 0, time.Local)
	samples := threeHourSeries(start, 80) // 10 days worth

	weekly := BuildWeekly(samples)
	if len(weekly) != 7 {
		t.Fatalf("got %d days, want 7", len(weekly))
	}
	for _, d := range weekly {
		if d.High < d.Low {
			t.Errorf("%s: high %d < low %d", d.Day, d.High, d.Low)
		}
		if d.Precipitation < 0 || d.Precipitation > 100 {
			t.Errorf("%s: precipitation %d out of [0,100]", d.Day, d.Precipitation)
		}
	}
}

func TestBuildWeeklyDayLabels(t *testing.T) {
	start := time.Date(2024, 7, 15, 6, 0, 0, 0, time.Local) // a Monday
	samples := threeHourSeries(start, 32) // spills into 5 calendar days

	weekly := BuildWeekly(samples)
	if len(weekly) != 5 {
		t.Fatalf("got %d days, want 5", len(weekly))
	}
	want := []string{"Today", "Tomorrow", "Wednesday", "Thursday", "Friday"}
	for i, d := range weekly {
		if d.Day != want[i] {
			t.Errorf("day %d label = %q, want %q", i, d.Day, want[i])
		}
	}
}

func TestBuildWeeklyModalCondition(t *testing.T) {
	start := time.Date(2024, 7, 15, 9, 0, 0, 0, time.Local)
	samples := []models.ForecastSample{
		sample(start, 18, "Rain", "10d", 0.8),
		sample(start.Add(3*time.Hour), 19, "Rain", "10d", 0.6),
		sample(start.Add(6*time.Hour), 21, "Clear", "01d", 0.1),
	}

	weekly := BuildWeekly(samples)
	if len(weekly) != 1 {
		t.Fatalf("got %d days, want 1", len(weekly))
	}
	if weekly[0].Condition != "Rain" {
		t.Errorf("modal condition = %q, want Rain", weekly[0].Condition)
	}
	if weekly[0].Icon != "10d" {
		t.Errorf("modal icon = %q, want 10d", weekly[0].Icon)
	}
	if weekly[0].Precipitation != 50 {
		t.Errorf("avg precipitation = %d, want 50", weekly[0].Precipitation)
	}
}

func TestBuildWeeklyModalTieFirstWins(t *testing.T) {
	start := time.Date(2024, 7, 15, 9, 0, 0, 0, time.Local)
	samples := []models.ForecastSample{
		sample(start, 18, "Clouds", "04d", 0),
		sample(start.Add(3*time.Hour), 19, "Rain", "10d", 0.5),
	}

	weekly := BuildWeekly(samples)
	if weekly[0].Condition != "Clouds" {
		t.Errorf("tie broken to %q, want first-encountered Clouds", weekly[0].Condition)
	}
}

func TestBuildWeeklySingleSampleBucket(t *testing.T) {
	ts := time.Date(2024, 7, 15, 15, 0, 0, 0, time.Local)
	weekly := BuildWeekly([]models.ForecastSample{sample(ts, 23.4, "Snow", "13d", 0.2)})

	if len(weekly) != 1 {
		t.Fatalf("got %d days, want 1", len(weekly))
	}
	d := weekly[0]
	if d.High != d.Low || d.High != 23 {
		t.Errorf("high/low = %d/%d, want 23/23", d.High, d.Low)
	}
	if d.Condition != "Snow" || d.Icon != "13d" {
		t.Errorf("condition/icon = %q/%q, want Snow/13d", d.Condition, d.Icon)
	}
	if d.Precipitation != 20 {
		t.Errorf("precipitation = %d, want 20", d.Precipitation)
	}
}

package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"weather-dashboard/internal/models"
)

func testWeather() *models.CurrentWeather {
	return &models.CurrentWeather{
		Location:    "San Francisco, US",
		Temperature: 18,
		Condition:   "Clouds",
		Description: "scattered clouds",
		Icon:        "03d",
		Humidity:    65,
		WindSpeed:   11,
		Visibility:  10,
		Pressure:    "29.92",
		FeelsLike:   17,
		Sunrise:     "5:58 AM",
		Sunset:      "8:32 PM",
		Coordinates: models.Coordinates{Lat: 37.77, Lon: -122.41},
	}
}

func TestBuildPromptIncludesWeatherVerbatim(t *testing.T) {
	prompt := BuildPrompt(RecommendationRequest{
		Weather:  testWeather(),
		Location: "San Francisco, US",
	})

	for _, want := range []string{
		"Location: San Francisco, US",
		"Temperature: 18°C (feels like 17°C)",
		"Weather Condition: Clouds - scattered clouds",
		"Humidity: 65%",
		"Wind Speed: 11 mph",
		"Visibility: 10 miles",
		"Atmospheric Pressure: 29.92 inHg",
		"Sunrise: 5:58 AM | Sunset: 8:32 PM",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildPromptIncludesEventFields(t *testing.T) {
	prompt := BuildPrompt(RecommendationRequest{
		Weather:  testWeather(),
		Location: "San Francisco, US",
		Events: []models.Event{{
			ID: "1", Title: "Summer Jazz Festival", Type: "Music", Venue: "Central Park",
			Time: "7:00 PM", Description: "Annual outdoor jazz festival",
			IsOutdoor: true, WeatherDependent: true,
			PriceRange: "$$", Tags: []string{"music", "jazz"},
		}},
	})

	for _, want := range []string{
		"Summer Jazz Festival (Music)",
		"Venue: Central Park",
		"Time: 7:00 PM",
		"Description: Annual outdoor jazz festival",
		"Weather Dependent: Yes",
		"Indoor/Outdoor: Outdoor",
		"Price Range: $$",
		"Tags: music, jazz",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildPromptMissingPreferences(t *testing.T) {
	prompt := BuildPrompt(RecommendationRequest{
		Weather:  testWeather(),
		Location: "San Francisco, US",
	})
	if !strings.Contains(prompt, "No specific user preferences provided") {
		t.Error("prompt missing no-preferences placeholder")
	}
}

func TestBuildPromptEmptyPreferenceFields(t *testing.T) {
	prompt := BuildPrompt(RecommendationRequest{
		Weather:         testWeather(),
		Location:        "San Francisco, US",
		UserPreferences: &models.UserPreferences{},
	})

	for _, want := range []string{
		"Interests: Not specified",
		"Budget Preference: Not specified",
		"Preferred Duration: Not specified",
		"Activity Level: 5/10",
		"Indoor/Outdoor Preference: No preference",
		"Preferred Times: Any time",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

type stubGenerator struct {
	bundle *models.RecommendationBundle
	err    error
	prompt string
}

func (s *stubGenerator) Generate(_ context.Context, prompt string) (*models.RecommendationBundle, error) {
	s.prompt = prompt
	return s.bundle, s.err
}

func TestGenerateRequiresWeather(t *testing.T) {
	svc := NewRecommendationService(&stubGenerator{})
	if _, err := svc.Generate(context.Background(), RecommendationRequest{}); err == nil {
		t.Fatal("expected error for missing weather snapshot")
	}
}

func TestGenerateCollapsesModelFailures(t *testing.T) {
	svc := NewRecommendationService(&stubGenerator{err: errors.New("connection reset")})
	_, err := svc.Generate(context.Background(), RecommendationRequest{Weather: testWeather()})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "failed to generate recommendations") {
		t.Errorf("err = %v, want generic wrapping", err)
	}
}

func TestGenerateEmptyEventsOK(t *testing.T) {
	gen := &stubGenerator{bundle: &models.RecommendationBundle{
		Recommendations:       []models.Recommendation{},
		WeatherSummary:        "mild",
		LocationInsights:      "walkable",
		OverallRecommendation: "go outside",
	}}
	svc := NewRecommendationService(gen)

	bundle, err := svc.Generate(context.Background(), RecommendationRequest{
		Weather:  testWeather(),
		Location: "San Francisco, US",
		Events:   nil,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bundle.WeatherSummary != "mild" {
		t.Errorf("bundle not passed through")
	}
	if !strings.Contains(gen.prompt, "LOCAL EVENTS & ACTIVITIES AVAILABLE TODAY:") {
		t.Error("events section header missing even with no events")
	}
}

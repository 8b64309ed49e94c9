package services

import (
	"context"
	"fmt"
	"strings"

	"weather-dashboard/internal/models"
)

// RecommendationRequest is the POST /recommendations body. A missing
// UserPreferences is valid and treated as "no preference".
type RecommendationRequest struct {
	Weather         *models.CurrentWeather  `json:"weather"`
	Location        string                  `json:"location"`
	Events          []models.Event          `json:"events"`
	UserPreferences *models.UserPreferences `json:"userPreferences"`
}

// Generator produces a validated bundle from an analysis prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (*models.RecommendationBundle, error)
}

type RecommendationService struct {
	model Generator
}

func NewRecommendationService(model Generator) *RecommendationService {
	return &RecommendationService{model: model}
}

// Generate serializes the request into the analysis prompt and submits
// it. Network and schema failures deliberately collapse into the same
// generic error for the caller.
func (s *RecommendationService) Generate(ctx context.Context, req RecommendationRequest) (*models.RecommendationBundle, error) {
	if req.Weather == nil {
		return nil, fmt.Errorf("weather snapshot is required")
	}

	bundle, err := s.model.Generate(ctx, BuildPrompt(req))
	if err != nil {
		return nil, fmt.Errorf("failed to generate recommendations: %w", err)
	}
	return bundle, nil
}

// BuildPrompt deterministically renders weather, events and preferences
// into the analysis request. Every weather field and every event field
// appears verbatim.
func BuildPrompt(req RecommendationRequest) string {
	var b strings.Builder

	b.WriteString(`You are an expert activity recommendation system. Your role is to analyze weather conditions, location data, and local events to provide personalized, intelligent activity suggestions.

CURRENT WEATHER CONDITIONS:
`)
	w := req.Weather
	fmt.Fprintf(&b, "- Location: %s\n", req.Location)
	fmt.Fprintf(&b, "- Temperature: %d°C (feels like %d°C)\n", w.Temperature, w.FeelsLike)
	fmt.Fprintf(&b, "- Weather Condition: %s - %s\n", w.Condition, w.Description)
	fmt.Fprintf(&b, "- Humidity: %d%%\n", w.Humidity)
	fmt.Fprintf(&b, "- Wind Speed: %d mph\n", w.WindSpeed)
	fmt.Fprintf(&b, "- Visibility: %d miles\n", w.Visibility)
	fmt.Fprintf(&b, "- Atmospheric Pressure: %s inHg\n", w.Pressure)
	fmt.Fprintf(&b, "- Sunrise: %s | Sunset: %s\n", w.Sunrise, w.Sunset)

	b.WriteString("\nLOCAL EVENTS & ACTIVITIES AVAILABLE TODAY:\n")
	for _, e := range req.Events {
		fmt.Fprintf(&b, "\n%s (%s)\n", e.Title, e.Type)
		fmt.Fprintf(&b, "   Venue: %s\n", e.Venue)
		fmt.Fprintf(&b, "   Time: %s\n", e.Time)
		fmt.Fprintf(&b, "   Description: %s\n", e.Description)
		fmt.Fprintf(&b, "   Weather Dependent: %s\n", yesNo(e.WeatherDependent))
		fmt.Fprintf(&b, "   Indoor/Outdoor: %s\n", indoorOutdoor(e.IsOutdoor))
		fmt.Fprintf(&b, "   Price Range: %s\n", e.PriceRange)
		fmt.Fprintf(&b, "   Tags: %s\n", strings.Join(e.Tags, ", "))
	}

	b.WriteString("\nUSER PREFERENCES & INTERESTS:\n")
	if p := req.UserPreferences; p != nil {
		fmt.Fprintf(&b, "- Interests: %s\n", orPlaceholder(strings.Join(p.Interests, ", "), "Not specified"))
		fmt.Fprintf(&b, "- Budget Preference: %s\n", orPlaceholder(p.BudgetRange, "Not specified"))
		fmt.Fprintf(&b, "- Preferred Duration: %s\n", orPlaceholder(p.PreferredDuration, "Not specified"))
		level := p.ActivityLevel
		if level == 0 {
			level = 5
		}
		fmt.Fprintf(&b, "- Activity Level: %d/10 (1=Relaxed, 10=High Energy)\n", level)
		fmt.Fprintf(&b, "- Indoor/Outdoor Preference: %s\n", orPlaceholder(p.IndoorOutdoorPreference, "No preference"))
		fmt.Fprintf(&b, "- Preferred Times: %s\n", orPlaceholder(strings.Join(p.TimePreferences, ", "), "Any time"))
	} else {
		b.WriteString("No specific user preferences provided\n")
	}

	b.WriteString(`
ANALYSIS REQUIREMENTS:
Please provide a comprehensive analysis and 6-8 diverse activity recommendations that:

1. **Weather Optimization**: Consider how current weather conditions affect each activity's enjoyability and safety
2. **Local Event Integration**: Incorporate relevant local events when they align with weather and user preferences
3. **Personalization**: Tailor suggestions based on user interests, budget, and activity preferences
4. **Diversity**: Include a balanced mix of indoor/outdoor, cultural/recreational, active/relaxed options
5. **Timing Consideration**: Factor in current time of day and optimal activity timing
6. **Practical Feasibility**: Ensure recommendations are realistic and accessible

For each recommendation, provide:
- Clear title and category classification
- Detailed description of the activity
- Reasoning for why it's suitable given current conditions
- Suitability score (1-10) based on weather, preferences, and timing
- Weather compatibility rating
- Estimated duration and price range
- Relevant tags for easy categorization

Additionally, provide:
- A weather summary explaining how conditions affect activity choices
- Location-specific insights about opportunities and considerations
- An overall recommendation strategy for making the most of the day

Focus on creating actionable, engaging suggestions that enhance the user's experience while considering safety, comfort, and personal preferences.`)

	return b.String()
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func indoorOutdoor(outdoor bool) string {
	if outdoor {
		return "Outdoor"
	}
	return "Indoor"
}

func orPlaceholder(v, placeholder string) string {
	if v == "" {
		return placeholder
	}
	return v
}

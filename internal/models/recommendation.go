package models

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Closed enumerations for model output. Any value outside these sets is
// an upstream contract violation and is rejected, never coerced.
const (
	CategoryOutdoorAdventure = "Outdoor Adventure"
	CategoryIndoorActivity   = "Indoor Activity"
	CategoryCulturalEvent    = "Cultural Event"
	CategoryFoodDining       = "Food & Dining"
	CategoryWellness         = "Wellness"
	CategoryEntertainment    = "Entertainment"

	CompatibilityPerfect = "Perfect"
	CompatibilityGood    = "Good"
	CompatibilityFair    = "Fair"
	CompatibilityPoor    = "Poor"
)

// Recommendation is one model-generated activity suggestion.
type Recommendation struct {
	Title                string   `json:"title" validate:"required"`
	Category             string   `json:"category" validate:"required,oneof='Outdoor Adventure' 'Indoor Activity' 'Cultural Event' 'Food & Dining' Wellness Entertainment"`
	Description          string   `json:"description" validate:"required"`
	Reasoning            string   `json:"reasoning" validate:"required"`
	SuitabilityScore     float64  `json:"suitabilityScore" validate:"min=1,max=10"`
	WeatherCompatibility string   `json:"weatherCompatibility" validate:"required,oneof=Perfect Good Fair Poor"`
	TimeOfDay            string   `json:"timeOfDay" validate:"required,oneof=Morning Afternoon Evening 'All Day'"`
	Duration             string   `json:"duration" validate:"required"`
	PriceRange           string   `json:"priceRange" validate:"required,oneof=Free $ $$ $$$"`
	Tags                 []string `json:"tags"`
	IsEventBased         bool     `json:"isEventBased"`
	EventID              string   `json:"eventId,omitempty"`
}

// RecommendationBundle is the complete output of one model invocation.
// It is produced atomically and never partially updated.
type RecommendationBundle struct {
	Recommendations       []Recommendation `json:"recommendations" validate:"dive"`
	WeatherSummary        string           `json:"weatherSummary" validate:"required"`
	LocationInsights      string           `json:"locationInsights" validate:"required"`
	OverallRecommendation string           `json:"overallRecommendation" validate:"required"`
}

var validate = validator.New()

// Validate re-checks the schema constraints locally after decoding the
// model response instead of trusting the provider to have enforced them.
func (b *RecommendationBundle) Validate() error {
	if err := validate.Struct(b); err != nil {
		return fmt.Errorf("recommendation schema violation: %w", err)
	}
	return nil
}

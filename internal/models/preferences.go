package models

// UserPreferences is owned and mutated by the client; it lives only in
// session memory and is passed along with each recommendation request.
type UserPreferences struct {
	Interests               []string `json:"interests"`
	BudgetRange             string   `json:"budgetRange"`
	PreferredDuration       string   `json:"preferredDuration"`
	ActivityLevel           int      `json:"activityLevel"`
	IndoorOutdoorPreference string   `json:"indoorOutdoorPreference"`
	TimePreferences         []string `json:"timePreferences"`
}

// DefaultPreferences seeds a fresh dashboard session.
func DefaultPreferences() UserPreferences {
	return UserPreferences{
		Interests:               []string{"Art & Culture", "Food & Dining"},
		BudgetRange:             "$$",
		PreferredDuration:       "2-4 hours",
		ActivityLevel:           5,
		IndoorOutdoorPreference: "No Preference",
		TimePreferences:         []string{"Afternoon", "Evening"},
	}
}

package response_models

type ProfileResponse struct {
	UserID             string   `json:"user_id"`
	TravelerType       string   `json:"traveler_type"`
	ActivityLevel      string   `json:"activity_level"`
	BudgetPreference   string   `json:"budget_preference"`
	SpecialInterests   []string `json:"special_interests"`
	DietaryPreferences string   `json:"dietary_preferences"`
	AccessibilityNeeds string   `json:"accessibility_needs"`
	PreferredLanguages []string `json:"preferred_languages"`
}

package request_models

type UpsertProfileRequest struct {
	TravelerType       string   `json:"traveler_type" binding:"omitempty,oneof=solo couple family group"`
	ActivityLevel      string   `json:"activity_level" binding:"omitempty,oneof=relaxed moderate active"`
	BudgetPreference   string   `json:"budget_preference" binding:"omitempty,oneof=BUDGET COMFORT PREMIUM LUXURY ULTRA_LUXURY"`
	SpecialInterests   []string `json:"special_interests"`
	DietaryPreferences string   `json:"dietary_preferences"`
	AccessibilityNeeds string   `json:"accessibility_needs"`
	PreferredLanguages []string `json:"preferred_languages"`
}

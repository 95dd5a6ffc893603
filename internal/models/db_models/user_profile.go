package db_models

import (
	"math"

	"github.com/lib/pq"
)

type TravelerType string

const (
	TravelerSolo   TravelerType = "solo"
	TravelerCouple TravelerType = "couple"
	TravelerFamily TravelerType = "family"
	TravelerGroup  TravelerType = "group"
)

type ActivityLevel string

const (
	ActivityRelaxed  ActivityLevel = "relaxed"
	ActivityModerate ActivityLevel = "moderate"
	ActivityActive   ActivityLevel = "active"
)

type BudgetPreference string

const (
	BudgetBudget      BudgetPreference = "BUDGET"
	BudgetComfort     BudgetPreference = "COMFORT"
	BudgetPremium     BudgetPreference = "PREMIUM"
	BudgetLuxury      BudgetPreference = "LUXURY"
	BudgetUltraLuxury BudgetPreference = "ULTRA_LUXURY"
)

// BudgetRange returns the daily budget range in USD for this tier.
// The upper bound is +Inf for ULTRA_LUXURY.
func (b BudgetPreference) BudgetRange() (float64, float64) {
	switch b {
	case BudgetBudget:
		return 50, 100
	case BudgetComfort:
		return 100, 200
	case BudgetPremium:
		return 200, 500
	case BudgetLuxury:
		return 500, 1000
	case BudgetUltraLuxury:
		return 1000, math.Inf(1)
	default:
		return 0, 0
	}
}

func (b BudgetPreference) Description() string {
	switch b {
	case BudgetBudget:
		return "Budget-friendly options, $50-100 per day"
	case BudgetComfort:
		return "Mid-range comfort, $100-200 per day"
	case BudgetPremium:
		return "Premium experiences, $200-500 per day"
	case BudgetLuxury:
		return "Luxury accommodations and dining, $500-1000 per day"
	case BudgetUltraLuxury:
		return "Ultra-luxury with no expense spared, $1000+ per day"
	default:
		return ""
	}
}

type UserProfile struct {
	BaseModel
	UserID             string           `gorm:"uniqueIndex"`
	TravelerType       TravelerType     `gorm:"size:16"`
	ActivityLevel      ActivityLevel    `gorm:"size:16"`
	BudgetPreference   BudgetPreference `gorm:"size:16"`
	SpecialInterests   pq.StringArray   `gorm:"type:text[]"`
	DietaryPreferences string
	AccessibilityNeeds string
	PreferredLanguages pq.StringArray `gorm:"type:text[]"`
}

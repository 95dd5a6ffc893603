package services

import (
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripplanner/internal/models/db_models"
)

func testTrip() *db_models.Trip {
	return &db_models.Trip{
		Destination:         "Tokyo",
		StartDate:           time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:             time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
		ActivityPreferences: "temples, street food",
	}
}

func TestBuildTripPromptDayCountIsInclusive(t *testing.T) {
	prompt := BuildTripPrompt(testTrip(), nil)
	assert.Contains(t, prompt, "Length of Stay: 3 days")

	sameDay := testTrip()
	sameDay.EndDate = sameDay.StartDate
	assert.Contains(t, BuildTripPrompt(sameDay, nil), "Length of Stay: 1 days")
}

func TestBuildTripPromptPlaceholders(t *testing.T) {
	trip := testTrip()
	trip.ActivityPreferences = ""
	trip.AdditionalNotes = "  "
	prompt := BuildTripPrompt(trip, nil)

	assert.Contains(t, prompt, "Please create an itinerary for:")
	assert.Contains(t, prompt, "Destination: Tokyo")
	assert.Contains(t, prompt, "Travel Preferences: None specified")
	assert.Contains(t, prompt, "- Arrival: Not specified")
	assert.Contains(t, prompt, "- Departure: Not specified")
	assert.Contains(t, prompt, "- Dietary Preferences: None specified")
	assert.Contains(t, prompt, "- Additional Notes: None")
	assert.NotContains(t, prompt, "User Preferences:")
}

func TestBuildTripPromptWithProfile(t *testing.T) {
	profile := &db_models.UserProfile{
		TravelerType:       db_models.TravelerCouple,
		ActivityLevel:      db_models.ActivityModerate,
		BudgetPreference:   db_models.BudgetComfort,
		SpecialInterests:   pq.StringArray{"food", "history"},
		DietaryPreferences: "vegetarian",
	}
	prompt := BuildTripPrompt(testTrip(), profile)

	assert.Contains(t, prompt, "User Preferences:")
	assert.Contains(t, prompt, "- Traveler Type: couple")
	assert.Contains(t, prompt, "- Activity Level: moderate")
	assert.Contains(t, prompt, "- Special Interests: food, history")
	assert.Contains(t, prompt, "- Dietary Preferences: vegetarian")
	assert.Contains(t, prompt, "- Accessibility Needs: Not specified")
	assert.Contains(t, prompt, "- Preferred Languages: Not specified")
	assert.Contains(t, prompt, "- Budget Preference: Mid-range comfort, $100-200 per day")
}

func TestPlanInstructionsPerDialect(t *testing.T) {
	assert.Contains(t, PlanInstructions(DialectText), "markdown link")
	assert.Contains(t, PlanInstructions(DialectJSON), "Return JSON only")
	assert.NotEqual(t, PlanInstructions(DialectText), PlanInstructions(DialectJSON))
}

// A text response shaped like the instructions describe should round-trip
// through the text parser with one day per header.
func TestTextInstructionsShapeParses(t *testing.T) {
	raw := `1. ACCOMMODATION
[Hotel Sakura](https://example.com/sakura)
- Description: Quiet mid-range hotel
- Rating: 4.6

2. DAILY ITINERARY
Day 1 - 2024-06-01:
- Breakfast: [Cafe Luna](https://example.com/luna) (4.6) - cozy corner cafe
Day 2 - 2024-06-02:
- Breakfast: [Bakery Ichi](https://example.com/ichi) (4.5) - fresh pastries
Day 3 - 2024-06-03:
- Breakfast: [Cafe Momo](https://example.com/momo) (4.4) - quick bites

3. TRAVEL TIPS
- Weather: Warm and humid.
`
	parser := &TextItineraryParser{}
	result, err := parser.Parse(raw)
	require.NoError(t, err)

	require.Len(t, result.DailySchedule, 3)
	for i, day := range result.DailySchedule {
		assert.Equal(t, i+1, day.DayNumber)
		assert.NotEmpty(t, day.Date)
		assert.NotEmpty(t, day.Breakfast.Spot)
	}
	require.Len(t, result.Accommodations, 1)
	assert.Equal(t, "Hotel Sakura", result.Accommodations[0].Name)
	assert.Equal(t, "Warm and humid.", result.TravelTips.Weather)
}

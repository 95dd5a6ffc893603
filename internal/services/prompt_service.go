package services

import (
	"fmt"
	"strings"

	"tripplanner/internal/models/db_models"
)

const textPlanInstructions = `You are a travel planner. Create personalized travel itineraries based on the user's:
- Destination city
- Length of stay
- Travel preferences/interests

For each itinerary, provide:

1. ACCOMMODATION
- Recommend 2-3 highly-rated hotels (4.4+ rating or higher)
- Format each hotel as a markdown link: [Hotel Name](https://booking-url)
- Follow each hotel with dash-prefixed detail lines: Description, Location, Rating, Unique Features, Nightly Rate

2. DAILY ITINERARY
Start each day with a header line "Day N - YYYY-MM-DD:".
For each day, break down by:
Morning:
- Breakfast: local spot as a markdown link with its rating in parentheses, e.g. Breakfast: [Cafe Name](url) (4.6) - short description
- Morning Activity: activity with a time in parentheses and location after @
Afternoon:
- Lunch: local spot (4.4+ rated or higher), same format as breakfast
- Afternoon Activity: activity recommendations with times
Evening:
- Dinner: local spot (4.4+ rated or higher), same format as breakfast
- Evening Activity: activity recommendations with times

3. TRAVEL TIPS
- Weather considerations
- Local transportation tips
- Important local customs
- Any seasonal events during their visit

Keep recommendations focused on local experiences and maintain a professional tone.`

const jsonPlanInstructions = `You are a travel planner. Create personalized travel itineraries and return them as a single JSON object.

The object must match this schema exactly:
{
  "accommodations": [
    {
      "name": "Hotel Name",
      "description": "Short description",
      "location": "Neighborhood or address",
      "rating": 4.6,
      "unique_features": "What makes it stand out",
      "nightly_rate": "180",
      "url": "https://booking-url"
    }
  ],
  "daily_schedule": [
    {
      "day_number": 1,
      "date": "2024-06-01",
      "breakfast": {"spot": "Cafe Name", "rating": 4.6, "description": "Short description", "url": "https://..."},
      "morning_activity": {"activity": "Activity name", "time": "09:00", "location": "Where", "description": "Short description", "url": "https://..."},
      "lunch": {"spot": "...", "rating": 4.5, "description": "...", "url": "..."},
      "afternoon_activity": {"activity": "...", "time": "14:00", "location": "...", "description": "...", "url": "..."},
      "dinner": {"spot": "...", "rating": 4.7, "description": "...", "url": "..."},
      "evening_activity": {"activity": "...", "time": "19:30", "location": "...", "description": "...", "url": "..."}
    }
  ],
  "travel_tips": {
    "weather": "...",
    "transportation": "...",
    "cultural_notes": "...",
    "seasonal_events": "..."
  }
}

Hard constraints:
- Provide exactly 3 accommodations.
- One daily_schedule entry per day of the stay, dates in YYYY-MM-DD.
- All ratings must be between 4.2 and 5.0.
- nightly_rate is a string of digits only, no currency symbol.
- Return JSON only. No markdown fences, no comments, no trailing commas.`

// PlanInstructions returns the system message for the configured response dialect.
func PlanInstructions(d Dialect) string {
	if d == DialectJSON {
		return jsonPlanInstructions
	}
	return textPlanInstructions
}

// BuildTripPrompt renders the user message for a trip plan request. The day
// count is inclusive of both endpoints, so a same-day trip is 1 day.
func BuildTripPrompt(trip *db_models.Trip, profile *db_models.UserProfile) string {
	days := int(trip.EndDate.Sub(trip.StartDate).Hours()/24) + 1

	var b strings.Builder
	b.WriteString("Please create an itinerary for:\n\n")
	fmt.Fprintf(&b, "Destination: %s\n", trip.Destination)
	fmt.Fprintf(&b, "Length of Stay: %d days\n", days)
	fmt.Fprintf(&b, "Travel Preferences: %s\n", orPlaceholder(trip.ActivityPreferences, "None specified"))
	b.WriteString("\nAdditional Details:\n")
	fmt.Fprintf(&b, "- Arrival: %s\n", orPlaceholder(trip.ArrivalTime, "Not specified"))
	fmt.Fprintf(&b, "- Departure: %s\n", orPlaceholder(trip.DepartureTime, "Not specified"))
	fmt.Fprintf(&b, "- Dietary Preferences: %s\n", orPlaceholder(trip.DietaryPreferences, "None specified"))
	fmt.Fprintf(&b, "- Additional Notes: %s\n", orPlaceholder(trip.AdditionalNotes, "None"))

	if profile != nil {
		b.WriteString("\nUser Preferences:\n")
		fmt.Fprintf(&b, "- Traveler Type: %s\n", orPlaceholder(string(profile.TravelerType), "Not specified"))
		fmt.Fprintf(&b, "- Activity Level: %s\n", orPlaceholder(string(profile.ActivityLevel), "Not specified"))
		fmt.Fprintf(&b, "- Special Interests: %s\n", orPlaceholder(strings.Join(profile.SpecialInterests, ", "), "Not specified"))
		fmt.Fprintf(&b, "- Dietary Preferences: %s\n", orPlaceholder(profile.DietaryPreferences, "Not specified"))
		fmt.Fprintf(&b, "- Accessibility Needs: %s\n", orPlaceholder(profile.AccessibilityNeeds, "Not specified"))
		fmt.Fprintf(&b, "- Preferred Languages: %s\n", orPlaceholder(strings.Join(profile.PreferredLanguages, ", "), "Not specified"))
		fmt.Fprintf(&b, "- Budget Preference: %s\n", orPlaceholder(profile.BudgetPreference.Description(), "Not specified"))
	}

	return b.String()
}

func orPlaceholder(value, placeholder string) string {
	if strings.TrimSpace(value) == "" {
		return placeholder
	}
	return value
}

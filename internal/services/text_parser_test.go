package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTextResponse = `ACCOMMODATION OPTIONS:

1. [Hotel Sakura](https://maps.google.com/?q=Hotel+Sakura)
   - Location: Shinjuku, Tokyo
   - Rating: 4.6
   - Unique Features: Rooftop onsen with city views
   - Nightly Rate: $180
   - Description: A quiet mid-range hotel close to the station.

2. [Ryokan Hana](https://maps.google.com/?q=Ryokan+Hana)
   - Location: Asakusa, Tokyo
   - Rating: 4.8
   - Unique Features: Traditional tatami rooms
   - Nightly Rate: $220
   - Description: Family-run ryokan with kaiseki dinner.

DAILY ITINERARY:

**Day 1 - 2024-06-01:**
Breakfast: [Cafe Luna](https://maps.google.com/?q=Cafe+Luna) (4.7) - cozy spot near the hotel
Morning Activity: [Senso-ji Temple](https://maps.google.com/?q=Sensoji) (9:00 AM - 11:00 AM) - explore the temple grounds
Lunch: [Ramen Ichiro](https://maps.google.com/?q=Ramen+Ichiro) (4.5) - famous tonkotsu ramen
Afternoon Activity: Walking tour @ Nakamise Street (1:00 PM - 3:00 PM)
Dinner: [Sushi Kato](https://maps.google.com/?q=Sushi+Kato) (4.9) - omakase counter
Evening Activity: [Tokyo Skytree](https://maps.google.com/?q=Skytree) - night views over the city

**Day 2 - 2024-06-02:**
Breakfast: Hotel breakfast buffet
Morning Activity: [Meiji Shrine](https://maps.google.com/?q=Meiji) (8:30 AM - 10:30 AM)
Lunch: [Udon Ya](https://maps.google.com/?q=Udon+Ya) (4.3) - handmade udon
Afternoon Activity: Shopping @ Harajuku
Dinner: [Izakaya Tomo](https://maps.google.com/?q=Izakaya+Tomo) (4.4) - local izakaya
Evening Activity: Stroll through Shibuya crossing

TRAVEL TIPS:

Weather: Early June is warm with occasional rain.
Bring a compact umbrella.
Transportation: Get a Suica card for trains and buses.
Cultural Notes: Remove shoes when entering ryokan rooms.
Seasonal Events: Sanno Matsuri festival runs in mid-June.
`

func TestTextParserFullResponse(t *testing.T) {
	parser := &TextItineraryParser{}
	result, err := parser.Parse(sampleTextResponse)
	require.NoError(t, err)

	require.Len(t, result.Accommodations, 2)
	first := result.Accommodations[0]
	assert.Equal(t, "Hotel Sakura", first.Name)
	assert.Equal(t, "https://maps.google.com/?q=Hotel+Sakura", first.URL)
	assert.Equal(t, "Shinjuku, Tokyo", first.Location)
	assert.Equal(t, 4.6, first.Rating)
	assert.Equal(t, "Rooftop onsen with city views", first.UniqueFeatures)
	assert.Equal(t, "180", first.NightlyRate)
	assert.Equal(t, "A quiet mid-range hotel close to the station.", first.Description)
	assert.Equal(t, "Ryokan Hana", result.Accommodations[1].Name)
	assert.Equal(t, 4.8, result.Accommodations[1].Rating)

	require.Len(t, result.DailySchedule, 2)
	day1 := result.DailySchedule[0]
	assert.Equal(t, 1, day1.DayNumber)
	assert.Equal(t, "2024-06-01", day1.Date)
	assert.Equal(t, "Cafe Luna", day1.Breakfast.Spot)
	assert.Equal(t, "https://maps.google.com/?q=Cafe+Luna", day1.Breakfast.URL)
	assert.Equal(t, 4.7, day1.Breakfast.Rating)
	assert.Equal(t, "cozy spot near the hotel", day1.Breakfast.Description)
	assert.Equal(t, "Senso-ji Temple", day1.MorningActivity.Activity)
	assert.Equal(t, "9:00 AM - 11:00 AM", day1.MorningActivity.Time)
	assert.Equal(t, "explore the temple grounds", day1.MorningActivity.Description)
	assert.Equal(t, "Nakamise Street", day1.AfternoonActivity.Location)
	assert.Equal(t, "Walking tour", day1.AfternoonActivity.Activity)
	assert.Equal(t, 4.9, day1.Dinner.Rating)

	day2 := result.DailySchedule[1]
	assert.Equal(t, 2, day2.DayNumber)
	assert.Equal(t, "2024-06-02", day2.Date)
	assert.Equal(t, "Hotel breakfast buffet", day2.Breakfast.Spot)
	assert.Equal(t, 0.0, day2.Breakfast.Rating)
	assert.Equal(t, "Harajuku", day2.AfternoonActivity.Location)

	assert.Equal(t, "Early June is warm with occasional rain. Bring a compact umbrella.", result.TravelTips.Weather)
	assert.Equal(t, "Get a Suica card for trains and buses.", result.TravelTips.Transportation)
	assert.Equal(t, "Remove shoes when entering ryokan rooms.", result.TravelTips.CulturalNotes)
	assert.Equal(t, "Sanno Matsuri festival runs in mid-June.", result.TravelTips.SeasonalEvents)
}

func TestTextParserDayNumbersFollowRunningCount(t *testing.T) {
	raw := `DAILY ITINERARY:
Day 5 - 2024-06-01:
Breakfast: Bakery
Day 2 - 2024-06-02:
Breakfast: Diner
`
	parser := &TextItineraryParser{}
	result, err := parser.Parse(raw)
	require.NoError(t, err)

	require.Len(t, result.DailySchedule, 2)
	assert.Equal(t, 1, result.DailySchedule[0].DayNumber)
	assert.Equal(t, "2024-06-01", result.DailySchedule[0].Date)
	assert.Equal(t, 2, result.DailySchedule[1].DayNumber)
	assert.Equal(t, "2024-06-02", result.DailySchedule[1].Date)
}

func TestTextParserBadDateDefaultsToEmpty(t *testing.T) {
	raw := `DAILY ITINERARY:
Day 1 - June 1st:
Breakfast: Bakery
`
	parser := &TextItineraryParser{}
	result, err := parser.Parse(raw)
	require.NoError(t, err)

	require.Len(t, result.DailySchedule, 1)
	assert.Equal(t, "", result.DailySchedule[0].Date)
	assert.Equal(t, "Bakery", result.DailySchedule[0].Breakfast.Spot)
}

func TestTextParserMealWithoutLink(t *testing.T) {
	raw := `DAILY ITINERARY:
Day 1 - 2024-06-01:
Lunch: Street food market - try the skewers
`
	parser := &TextItineraryParser{}
	result, err := parser.Parse(raw)
	require.NoError(t, err)

	lunch := result.DailySchedule[0].Lunch
	assert.Equal(t, "Street food market", lunch.Spot)
	assert.Equal(t, "try the skewers", lunch.Description)
	assert.Equal(t, "", lunch.URL)
	assert.Equal(t, 0.0, lunch.Rating)
}

func TestTextParserEmptyResponse(t *testing.T) {
	parser := &TextItineraryParser{}
	result, err := parser.Parse("   \n  ")
	assert.Error(t, err)
	assert.Len(t, result.Accommodations, 3)
	assert.Empty(t, result.DailySchedule)
}

func TestTextParserNoRecognizedHeaders(t *testing.T) {
	parser := &TextItineraryParser{}
	result, err := parser.Parse("Here is your trip plan.\nHave fun!")
	assert.Error(t, err)
	assert.Len(t, result.Accommodations, 3)
	assert.Empty(t, result.DailySchedule)
}

func TestTextParserTipLabelInsideValueDoesNotReroute(t *testing.T) {
	raw := `TRAVEL TIPS:
Cultural Notes: bring cash for transportation: buses take coins
- Weather: mild, pack layers for seasonal events: festivals run late
`
	parser := &TextItineraryParser{}
	result, err := parser.Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "bring cash for transportation: buses take coins", result.TravelTips.CulturalNotes)
	assert.Equal(t, "", result.TravelTips.Transportation)
	assert.Equal(t, "mild, pack layers for seasonal events: festivals run late", result.TravelTips.Weather)
	assert.Equal(t, "", result.TravelTips.SeasonalEvents)
}

func TestTextParserMissingSectionsAreDefaulted(t *testing.T) {
	raw := `TRAVEL TIPS:
Weather: Mild and sunny.
`
	parser := &TextItineraryParser{}
	result, err := parser.Parse(raw)
	require.NoError(t, err)

	assert.Empty(t, result.Accommodations)
	assert.Empty(t, result.DailySchedule)
	assert.Equal(t, "Mild and sunny.", result.TravelTips.Weather)
	assert.Equal(t, "", result.TravelTips.SeasonalEvents)
}

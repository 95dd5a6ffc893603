package services

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripplanner/internal/models/response_models"
)

func validMealJSON(spot string) string {
	return fmt.Sprintf(`{"spot": %q, "rating": 4.5, "description": "good food", "url": "https://maps.google.com/?q=%s"}`, spot, spot)
}

func validActivityJSON(activity string) string {
	return fmt.Sprintf(`{"activity": %q, "description": "worth a visit", "url": "https://maps.google.com/?q=%s"}`, activity, activity)
}

func validDayJSON(dayNumber int, date string) string {
	return fmt.Sprintf(`{
		"day_number": %d,
		"date": %q,
		"breakfast": %s,
		"morning_activity": %s,
		"lunch": %s,
		"afternoon_activity": %s,
		"dinner": %s,
		"evening_activity": %s
	}`, dayNumber, date,
		validMealJSON("Cafe"), validActivityJSON("Temple"),
		validMealJSON("Ramen"), validActivityJSON("Museum"),
		validMealJSON("Sushi"), validActivityJSON("Skytree"))
}

func validItineraryJSON() string {
	acc := `{
		"name": "Hotel Sakura",
		"description": "Quiet mid-range hotel",
		"location": "Shinjuku, Tokyo",
		"rating": 4.6,
		"unique_features": "Rooftop onsen",
		"nightly_rate": "180",
		"url": "https://maps.google.com/?q=Hotel+Sakura"
	}`
	return fmt.Sprintf(`{
		"accommodations": [%s, %s, %s],
		"daily_schedule": [%s, %s],
		"travel_tips": {
			"weather": "Warm with occasional rain",
			"transportation": "Get a Suica card",
			"cultural_notes": "Remove shoes indoors",
			"seasonal_events": "Sanno Matsuri in mid-June"
		}
	}`, acc, acc, acc, validDayJSON(1, "2024-06-01"), validDayJSON(2, "2024-06-02"))
}

func TestJSONParserValidDocument(t *testing.T) {
	parser := &JSONItineraryParser{}
	result, err := parser.Parse(validItineraryJSON())
	require.NoError(t, err)

	require.Len(t, result.Accommodations, 3)
	assert.Equal(t, "Hotel Sakura", result.Accommodations[0].Name)
	assert.Equal(t, 4.6, result.Accommodations[0].Rating)
	assert.Equal(t, "180", result.Accommodations[0].NightlyRate)

	require.Len(t, result.DailySchedule, 2)
	assert.Equal(t, 1, result.DailySchedule[0].DayNumber)
	assert.Equal(t, "2024-06-01", result.DailySchedule[0].Date)
	assert.Equal(t, "Cafe", result.DailySchedule[0].Breakfast.Spot)
	assert.Equal(t, 4.5, result.DailySchedule[0].Breakfast.Rating)
	assert.Equal(t, "Temple", result.DailySchedule[0].MorningActivity.Activity)

	assert.Equal(t, "Warm with occasional rain", result.TravelTips.Weather)
	assert.Equal(t, "Sanno Matsuri in mid-June", result.TravelTips.SeasonalEvents)
}

func TestJSONParserStripsMarkdownFences(t *testing.T) {
	parser := &JSONItineraryParser{}
	raw := "```json\n" + validItineraryJSON() + "\n```"
	result, err := parser.Parse(raw)
	require.NoError(t, err)
	assert.Len(t, result.Accommodations, 3)
}

func TestJSONParserRepairsCommentsAndTrailingCommas(t *testing.T) {
	parser := &JSONItineraryParser{}
	raw := strings.Replace(validItineraryJSON(),
		`"seasonal_events": "Sanno Matsuri in mid-June"`,
		`"seasonal_events": "Sanno Matsuri in mid-June", // peak season`,
		1)
	result, err := parser.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "Sanno Matsuri in mid-June", result.TravelTips.SeasonalEvents)
}

func TestJSONParserMissingRequiredFieldFallsBack(t *testing.T) {
	parser := &JSONItineraryParser{}
	raw := strings.Replace(validItineraryJSON(), `"nightly_rate": "180",`, "", -1)
	result, err := parser.Parse(raw)
	assert.Error(t, err)
	assertDefaultResult(t, result)
}

func TestJSONParserRatingOutOfRangeFallsBack(t *testing.T) {
	parser := &JSONItineraryParser{}
	for _, bad := range []string{"3.9", "5.1"} {
		raw := strings.Replace(validItineraryJSON(), `"rating": 4.6,`, `"rating": `+bad+`,`, 1)
		result, err := parser.Parse(raw)
		assert.Error(t, err, "rating %s should be rejected", bad)
		assertDefaultResult(t, result)
	}
}

func TestJSONParserBadDateFallsBack(t *testing.T) {
	parser := &JSONItineraryParser{}
	raw := strings.Replace(validItineraryJSON(), `"date": "2024-06-01"`, `"date": "June 1st"`, 1)
	result, err := parser.Parse(raw)
	assert.Error(t, err)
	assertDefaultResult(t, result)
}

func TestJSONParserMissingTopLevelSectionFallsBack(t *testing.T) {
	parser := &JSONItineraryParser{}
	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(validItineraryJSON()), &doc))
	delete(doc, "travel_tips")
	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	result, parseErr := parser.Parse(string(raw))
	assert.Error(t, parseErr)
	assertDefaultResult(t, result)
}

func TestJSONParserTwoAccommodationsStillAccepted(t *testing.T) {
	parser := &JSONItineraryParser{}
	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(validItineraryJSON()), &doc))
	var accs []json.RawMessage
	require.NoError(t, json.Unmarshal(doc["accommodations"], &accs))
	trimmed, err := json.Marshal(accs[:2])
	require.NoError(t, err)
	doc["accommodations"] = trimmed
	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	result, parseErr := parser.Parse(string(raw))
	require.NoError(t, parseErr)
	assert.Len(t, result.Accommodations, 2)
}

func TestJSONParserEmptyResponse(t *testing.T) {
	parser := &JSONItineraryParser{}
	result, err := parser.Parse("   ")
	assert.Error(t, err)
	assertDefaultResult(t, result)
}

func TestJSONParserPlainProseFallsBack(t *testing.T) {
	parser := &JSONItineraryParser{}
	result, err := parser.Parse("Here is your itinerary for Tokyo!")
	assert.Error(t, err)
	assertDefaultResult(t, result)
}

func assertDefaultResult(t *testing.T, result response_models.ItineraryResult) {
	t.Helper()
	assert.Equal(t, response_models.DefaultItineraryResult(), result)
}

func TestStripJSONComments(t *testing.T) {
	in := `{"a": "http://x//y", // trailing
	"b": /* block */ 1}`
	out := stripJSONComments(in)
	assert.Contains(t, out, `"http://x//y"`)
	assert.NotContains(t, out, "trailing")
	assert.NotContains(t, out, "block")

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "http://x//y", decoded["a"])
}

func TestStripTrailingCommas(t *testing.T) {
	in := `{"a": [1, 2, 3,], "b": {"c": "x,y",},}`
	out := stripTrailingCommas(in)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "x,y", decoded["b"].(map[string]interface{})["c"])
}

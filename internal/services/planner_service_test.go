package services

import (
	"context"
	"errors"
	"testing"

	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripplanner/internal/models/response_models"
	mem "tripplanner/pkg/memcache"
	"tripplanner/pkg/utils"
)

type fakePlanClient struct {
	response string
	err      error
	calls    int
}

func (f *fakePlanClient) GenerateTripPlan(ctx context.Context, systemInstructions, userPrompt string) (string, error) {
	f.calls++
	return f.response, f.err
}

func (f *fakePlanClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	return pgvector.NewVector(make([]float32, 1536)), nil
}

func TestGeneratePlanClientErrorIsHardFailure(t *testing.T) {
	client := &fakePlanClient{err: errors.New("upstream timeout")}
	planner := NewPlannerService(client, DialectText, mem.NewPlanCache())

	_, _, err := planner.GeneratePlan(context.Background(), testTrip(), nil)
	assert.ErrorIs(t, err, utils.ErrGenerationFailed)
}

func TestGeneratePlanEmptyResponseIsHardFailure(t *testing.T) {
	client := &fakePlanClient{response: "  \n"}
	planner := NewPlannerService(client, DialectText, mem.NewPlanCache())

	_, _, err := planner.GeneratePlan(context.Background(), testTrip(), nil)
	assert.ErrorIs(t, err, utils.ErrGenerationFailed)
}

func TestGeneratePlanUnparseableFallsBackToDefault(t *testing.T) {
	client := &fakePlanClient{response: "Sorry, I cannot help with that."}
	planner := NewPlannerService(client, DialectText, mem.NewPlanCache())

	result, raw, err := planner.GeneratePlan(context.Background(), testTrip(), nil)
	require.NoError(t, err)
	assert.Equal(t, "Sorry, I cannot help with that.", raw)

	// Default accommodations, schedule padded to the 3-day trip.
	assert.Len(t, result.Accommodations, 3)
	require.Len(t, result.DailySchedule, 3)
	assert.Equal(t, 1, result.DailySchedule[0].DayNumber)
	assert.Equal(t, "2024-06-01", result.DailySchedule[0].Date)
	assert.Equal(t, "2024-06-03", result.DailySchedule[2].Date)
}

func TestGeneratePlanPadsShortSchedule(t *testing.T) {
	client := &fakePlanClient{response: `DAILY ITINERARY:
Day 1 - 2024-06-01:
Breakfast: Bakery
`}
	planner := NewPlannerService(client, DialectText, mem.NewPlanCache())

	result, _, err := planner.GeneratePlan(context.Background(), testTrip(), nil)
	require.NoError(t, err)

	require.Len(t, result.DailySchedule, 3)
	assert.Equal(t, "Bakery", result.DailySchedule[0].Breakfast.Spot)
	assert.Equal(t, 2, result.DailySchedule[1].DayNumber)
	assert.Equal(t, "2024-06-02", result.DailySchedule[1].Date)
	assert.Equal(t, "2024-06-03", result.DailySchedule[2].Date)
}

func TestGeneratePlanTruncatesLongSchedule(t *testing.T) {
	client := &fakePlanClient{response: `DAILY ITINERARY:
Day 1 - 2024-06-01:
Breakfast: Bakery
Day 2 - 2024-06-02:
Breakfast: Diner
`}
	trip := testTrip()
	trip.EndDate = trip.StartDate // 1-day trip
	planner := NewPlannerService(client, DialectText, mem.NewPlanCache())

	result, _, err := planner.GeneratePlan(context.Background(), trip, nil)
	require.NoError(t, err)
	require.Len(t, result.DailySchedule, 1)
	assert.Equal(t, "Bakery", result.DailySchedule[0].Breakfast.Spot)
}

func TestGeneratePlanUsesCache(t *testing.T) {
	client := &fakePlanClient{response: `DAILY ITINERARY:
Day 1 - 2024-06-01:
Breakfast: Bakery
`}
	planner := NewPlannerService(client, DialectText, mem.NewPlanCache())
	trip := testTrip()

	_, _, err := planner.GeneratePlan(context.Background(), trip, nil)
	require.NoError(t, err)
	_, _, err = planner.GeneratePlan(context.Background(), trip, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, client.calls)
}

func TestGeneratePlanFillsMissingDates(t *testing.T) {
	client := &fakePlanClient{response: `DAILY ITINERARY:
Day 1 - June 1st:
Breakfast: Bakery
`}
	planner := NewPlannerService(client, DialectText, mem.NewPlanCache())

	result, _, err := planner.GeneratePlan(context.Background(), testTrip(), nil)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", result.DailySchedule[0].Date)
}

func TestPadScheduleReversedRangeKeepsOneDay(t *testing.T) {
	trip := testTrip()
	trip.EndDate = trip.StartDate.AddDate(0, 0, -5)

	result := response_models.DefaultItineraryResult()
	planner := &PlannerService{dialect: DialectText}
	planner.padSchedule(&result, trip)

	require.Len(t, result.DailySchedule, 1)
	assert.Equal(t, trip.StartDate.Format("2006-01-02"), result.DailySchedule[0].Date)
}

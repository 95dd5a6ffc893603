package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"tripplanner/internal/models/response_models"
)

// JSONItineraryParser handles the strict-JSON dialect. The trust policy is
// all-or-nothing: a response that violates the schema anywhere (a missing
// key, an unparseable date, a rating outside [4.2, 5.0]) is discarded
// whole and replaced by the default structure. A successfully validated
// response is returned exactly as decoded.
type JSONItineraryParser struct{}

const (
	minTrustedRating = 4.2
	maxTrustedRating = 5.0
)

func (p *JSONItineraryParser) Parse(raw string) (response_models.ItineraryResult, error) {
	cleaned := stripMarkdownFences(raw)
	if strings.TrimSpace(cleaned) == "" {
		return response_models.DefaultItineraryResult(), errors.New("empty model response")
	}

	data := []byte(cleaned)
	doc, err := decodeItineraryDoc(data)
	if err != nil {
		// One repair pass: models occasionally emit comments or trailing
		// commas despite the JSON-only instruction.
		data = []byte(stripTrailingCommas(stripJSONComments(cleaned)))
		if doc, err = decodeItineraryDoc(data); err != nil {
			return response_models.DefaultItineraryResult(), fmt.Errorf("decode failed: %w", err)
		}
	}

	if err := validateItineraryDoc(doc); err != nil {
		return response_models.DefaultItineraryResult(), fmt.Errorf("schema validation failed: %w", err)
	}

	var result response_models.ItineraryResult
	if err := json.Unmarshal(data, &result); err != nil {
		return response_models.DefaultItineraryResult(), fmt.Errorf("decode failed: %w", err)
	}
	if result.Accommodations == nil {
		result.Accommodations = []response_models.Accommodation{}
	}
	if result.DailySchedule == nil {
		result.DailySchedule = []response_models.DayPlan{}
	}
	return result, nil
}

// rawItineraryDoc keeps every record as raw key sets so required-field
// checks can distinguish "absent" from "zero value".
type rawItineraryDoc struct {
	Accommodations *[]map[string]json.RawMessage `json:"accommodations"`
	DailySchedule  *[]map[string]json.RawMessage `json:"daily_schedule"`
	TravelTips     map[string]json.RawMessage    `json:"travel_tips"`
}

func decodeItineraryDoc(data []byte) (*rawItineraryDoc, error) {
	var doc rawItineraryDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

var (
	accommodationRequired = []string{"name", "description", "location", "rating", "unique_features", "nightly_rate", "url"}
	dayRequired           = []string{"day_number", "date", "breakfast", "morning_activity", "lunch", "afternoon_activity", "dinner", "evening_activity"}
	mealRequired          = []string{"spot", "rating", "description", "url"}
	activityRequired      = []string{"activity", "description", "url"}
	tipsRequired          = []string{"weather", "transportation", "cultural_notes"}

	dayMealKeys     = []string{"breakfast", "lunch", "dinner"}
	dayActivityKeys = []string{"morning_activity", "afternoon_activity", "evening_activity"}
)

func validateItineraryDoc(doc *rawItineraryDoc) error {
	if doc.Accommodations == nil {
		return errors.New("missing accommodations")
	}
	if doc.DailySchedule == nil {
		return errors.New("missing daily_schedule")
	}
	if doc.TravelTips == nil {
		return errors.New("missing travel_tips")
	}

	if len(*doc.Accommodations) != 3 {
		log.Printf("itinerary JSON has %d accommodations, expected 3", len(*doc.Accommodations))
	}
	for i, acc := range *doc.Accommodations {
		if err := requireKeys(acc, accommodationRequired); err != nil {
			return fmt.Errorf("accommodation %d: %w", i+1, err)
		}
		if err := requireTrustedRating(acc["rating"]); err != nil {
			return fmt.Errorf("accommodation %d: %w", i+1, err)
		}
	}

	for i, day := range *doc.DailySchedule {
		if err := requireKeys(day, dayRequired); err != nil {
			return fmt.Errorf("day %d: %w", i+1, err)
		}
		var date string
		if err := json.Unmarshal(day["date"], &date); err != nil {
			return fmt.Errorf("day %d: date is not a string", i+1)
		}
		if parseISODate(date) == "" {
			return fmt.Errorf("day %d: date %q is not YYYY-MM-DD", i+1, date)
		}
		for _, key := range dayMealKeys {
			meal, err := decodeRecord(day[key])
			if err != nil {
				return fmt.Errorf("day %d %s: %w", i+1, key, err)
			}
			if err := requireKeys(meal, mealRequired); err != nil {
				return fmt.Errorf("day %d %s: %w", i+1, key, err)
			}
			if err := requireTrustedRating(meal["rating"]); err != nil {
				return fmt.Errorf("day %d %s: %w", i+1, key, err)
			}
		}
		for _, key := range dayActivityKeys {
			activity, err := decodeRecord(day[key])
			if err != nil {
				return fmt.Errorf("day %d %s: %w", i+1, key, err)
			}
			if err := requireKeys(activity, activityRequired); err != nil {
				return fmt.Errorf("day %d %s: %w", i+1, key, err)
			}
		}
	}

	if err := requireKeys(doc.TravelTips, tipsRequired); err != nil {
		return fmt.Errorf("travel_tips: %w", err)
	}
	return nil
}

func decodeRecord(raw json.RawMessage) (map[string]json.RawMessage, error) {
	var record map[string]json.RawMessage
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, errors.New("not an object")
	}
	return record, nil
}

func requireKeys(record map[string]json.RawMessage, keys []string) error {
	for _, key := range keys {
		if _, ok := record[key]; !ok {
			return fmt.Errorf("missing required field %q", key)
		}
	}
	return nil
}

func requireTrustedRating(raw json.RawMessage) error {
	var rating float64
	if err := json.Unmarshal(raw, &rating); err != nil {
		return errors.New("rating is not a number")
	}
	if rating < minTrustedRating || rating > maxTrustedRating {
		return fmt.Errorf("rating %.2f outside [%.1f, %.1f]", rating, minTrustedRating, maxTrustedRating)
	}
	return nil
}

// stripMarkdownFences drops ```json fences the model may wrap its output in.
func stripMarkdownFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```JSON", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// stripJSONComments removes // line comments and /* */ block comments,
// leaving string contents untouched.
func stripJSONComments(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inString, escaped := false, false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			b.WriteByte(c)
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch {
		case c == '"':
			inString = true
			b.WriteByte(c)
		case c == '/' && i+1 < len(s) && s[i+1] == '/':
			for i < len(s) && s[i] != '\n' {
				i++
			}
			if i < len(s) {
				b.WriteByte('\n')
			}
		case c == '/' && i+1 < len(s) && s[i+1] == '*':
			i += 2
			for i+1 < len(s) && !(s[i] == '*' && s[i+1] == '/') {
				i++
			}
			i++
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// stripTrailingCommas removes a comma that directly precedes a closing
// bracket or brace, again ignoring commas inside strings.
func stripTrailingCommas(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inString, escaped := false, false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			b.WriteByte(c)
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		if c == '"' {
			inString = true
			b.WriteByte(c)
			continue
		}
		if c == ',' {
			j := i + 1
			for j < len(s) && (s[j] == ' ' || s[j] == '\t' || s[j] == '\n' || s[j] == '\r') {
				j++
			}
			if j < len(s) && (s[j] == '}' || s[j] == ']') {
				continue
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}

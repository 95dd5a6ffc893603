package services

import (
	"errors"
	"fmt"
	"strings"

	"tripplanner/internal/models/response_models"
)

// TextItineraryParser salvages the prose dialect: markdown links,
// parenthetical ratings and labeled lines under three recognized section
// headers. It is a best-effort path: fields the matchers cannot locate are
// defaulted, entries are never dropped, and any internal panic is converted
// to the default structure.
type TextItineraryParser struct{}

type sectionTag int

const (
	sectionNone sectionTag = iota
	sectionAccommodation
	sectionDaily
	sectionTips
)

var sectionHeaders = []struct {
	token string
	tag   sectionTag
}{
	{"ACCOMMODATION", sectionAccommodation},
	{"DAILY ITINERARY", sectionDaily},
	{"DAILY SCHEDULE", sectionDaily},
	{"TRAVEL TIPS", sectionTips},
}

func (p *TextItineraryParser) Parse(raw string) (result response_models.ItineraryResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = response_models.DefaultItineraryResult()
			err = fmt.Errorf("text parser panic: %v", r)
		}
	}()

	if strings.TrimSpace(raw) == "" {
		return response_models.DefaultItineraryResult(), errors.New("empty model response")
	}

	sections := splitSections(raw)
	if len(sections) == 0 {
		return response_models.DefaultItineraryResult(), errors.New("no recognized section headers")
	}

	result = response_models.ItineraryResult{
		Accommodations: parseAccommodations(sections[sectionAccommodation]),
		DailySchedule:  parseDailySchedule(sections[sectionDaily]),
		TravelTips:     parseTravelTips(sections[sectionTips]),
	}
	if result.Accommodations == nil {
		result.Accommodations = []response_models.Accommodation{}
	}
	if result.DailySchedule == nil {
		result.DailySchedule = []response_models.DayPlan{}
	}
	return result, nil
}

// headerTag classifies a line as a section header. Decorations such as
// markdown emphasis, enumeration and trailing colons are stripped before
// the case-insensitive prefix match.
func headerTag(line string) sectionTag {
	stripped := strings.Trim(strings.TrimSpace(line), "#*-0123456789. :\t")
	upper := strings.ToUpper(stripped)
	for _, h := range sectionHeaders {
		if strings.HasPrefix(upper, h.token) {
			return h.tag
		}
	}
	return sectionNone
}

// splitSections walks the response once, routing each line to the section
// opened by the most recent recognized header. Text before the first header
// is discarded.
func splitSections(raw string) map[sectionTag][]string {
	sections := make(map[sectionTag][]string)
	current := sectionNone
	for _, line := range strings.Split(raw, "\n") {
		if tag := headerTag(line); tag != sectionNone {
			current = tag
			if _, ok := sections[current]; !ok {
				sections[current] = []string{}
			}
			continue
		}
		if current == sectionNone {
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		sections[current] = append(sections[current], line)
	}
	return sections
}

// --- accommodation section ---

type accommodationField int

const (
	accFieldLocation accommodationField = iota
	accFieldRating
	accFieldFeatures
	accFieldRate
	accFieldDescription
)

var accommodationLabels = []struct {
	label string
	field accommodationField
}{
	{"location:", accFieldLocation},
	{"rating:", accFieldRating},
	{"unique features:", accFieldFeatures},
	{"nightly rate:", accFieldRate},
	{"description:", accFieldDescription},
}

var accommodationSetters = map[accommodationField]func(*accommodationEntry, string){
	accFieldLocation: func(e *accommodationEntry, v string) { e.acc.Location = v },
	accFieldFeatures: func(e *accommodationEntry, v string) { e.acc.UniqueFeatures = v },
	accFieldRate: func(e *accommodationEntry, v string) {
		e.acc.NightlyRate = strings.TrimLeft(v, "$€£ ")
	},
	accFieldDescription: func(e *accommodationEntry, v string) { e.desc = append(e.desc, v) },
	// Rating comes from the first decimal anywhere in the entry; the labeled
	// line is only consumed so it does not leak into the description.
	accFieldRating: func(e *accommodationEntry, v string) {},
}

type accommodationEntry struct {
	acc  response_models.Accommodation
	desc []string
}

func parseAccommodations(lines []string) []response_models.Accommodation {
	var entries [][]string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		startsEntry := enumMarkerRe.MatchString(line) ||
			(markdownLinkRe.MatchString(line) && !strings.HasPrefix(trimmed, "-"))
		if startsEntry || len(entries) == 0 {
			entries = append(entries, []string{line})
			continue
		}
		entries[len(entries)-1] = append(entries[len(entries)-1], line)
	}

	accommodations := make([]response_models.Accommodation, 0, len(entries))
	for _, entry := range entries {
		accommodations = append(accommodations, parseAccommodationEntry(entry))
	}
	return accommodations
}

func parseAccommodationEntry(lines []string) response_models.Accommodation {
	var entry accommodationEntry

	head := strings.TrimSpace(enumMarkerRe.ReplaceAllString(lines[0], ""))
	if name, url, _, ok := extractMarkdownLink(head); ok {
		entry.acc.Name = name
		entry.acc.URL = url
	} else {
		entry.acc.Name = head
	}

	entry.acc.Rating = extractFirstDecimal(strings.Join(lines, "\n"))

	for _, line := range lines[1:] {
		value := strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "-"))
		labeled := false
		for _, l := range accommodationLabels {
			if hasLabel(value, l.label) {
				accommodationSetters[l.field](&entry, labelValue(value))
				labeled = true
				break
			}
		}
		if !labeled && value != "" {
			entry.desc = append(entry.desc, value)
		}
	}
	entry.acc.Description = strings.Join(entry.desc, " ")
	return entry.acc
}

// --- daily itinerary section ---

type dailySlot int

const (
	slotBreakfast dailySlot = iota
	slotLunch
	slotDinner
	slotMorning
	slotAfternoon
	slotEvening
)

var dailyLabels = []struct {
	label string
	slot  dailySlot
}{
	{"breakfast:", slotBreakfast},
	{"lunch:", slotLunch},
	{"dinner:", slotDinner},
	{"morning activity:", slotMorning},
	{"afternoon activity:", slotAfternoon},
	{"evening activity:", slotEvening},
}

func parseDailySchedule(lines []string) []response_models.DayPlan {
	var days []response_models.DayPlan
	var current *response_models.DayPlan

	for _, line := range lines {
		if m := dayHeaderRe.FindStringSubmatch(line); m != nil {
			if current != nil {
				days = append(days, *current)
			}
			// Day numbers follow the running count of recognized headers,
			// not the literal N in the text, so the sequence stays
			// contiguous even when the model misnumbers or reorders days.
			day := response_models.EmptyDayPlan(len(days)+1, parseISODate(m[2]))
			current = &day
			continue
		}
		if current == nil {
			continue
		}
		applyDayLine(current, line)
	}
	if current != nil {
		days = append(days, *current)
	}
	return days
}

func applyDayLine(day *response_models.DayPlan, line string) {
	for _, l := range dailyLabels {
		if !hasLabel(line, l.label) {
			continue
		}
		value := labelValue(line)
		switch l.slot {
		case slotBreakfast:
			day.Breakfast = parseMealEntry(value)
		case slotLunch:
			day.Lunch = parseMealEntry(value)
		case slotDinner:
			day.Dinner = parseMealEntry(value)
		case slotMorning:
			day.MorningActivity = parseActivityEntry(value)
		case slotAfternoon:
			day.AfternoonActivity = parseActivityEntry(value)
		case slotEvening:
			day.EveningActivity = parseActivityEntry(value)
		}
		return
	}
}

func parseMealEntry(value string) response_models.MealEntry {
	var meal response_models.MealEntry
	meal.Rating, value = extractParenRating(value)
	if name, url, rest, ok := extractMarkdownLink(value); ok {
		meal.Spot = name
		meal.URL = url
		meal.Description = trimEntrySeparators(rest)
		return meal
	}
	parts := strings.SplitN(value, " - ", 2)
	meal.Spot = trimEntrySeparators(parts[0])
	if len(parts) == 2 {
		meal.Description = strings.TrimSpace(parts[1])
	}
	return meal
}

func parseActivityEntry(value string) response_models.ActivityEntry {
	var act response_models.ActivityEntry
	if name, url, rest, ok := extractMarkdownLink(value); ok {
		act.Activity = name
		act.URL = url
		value = rest
	}
	act.Location, value = extractAtLocation(value)
	act.Time, value = extractParenTime(value)
	value = trimEntrySeparators(value)
	if act.Activity == "" {
		parts := strings.SplitN(value, " - ", 2)
		act.Activity = trimEntrySeparators(parts[0])
		if len(parts) == 2 {
			act.Description = strings.TrimSpace(parts[1])
		}
	} else {
		act.Description = value
	}
	return act
}

// --- travel tips section ---

type tipField int

const (
	tipWeather tipField = iota
	tipTransportation
	tipCultural
	tipSeasonal
)

var tipLabels = []struct {
	label string
	field tipField
}{
	{"weather:", tipWeather},
	{"transportation:", tipTransportation},
	{"cultural notes:", tipCultural},
	{"cultural etiquette:", tipCultural},
	{"seasonal events:", tipSeasonal},
}

func parseTravelTips(lines []string) response_models.TravelTips {
	var tips response_models.TravelTips
	targets := map[tipField]*string{
		tipWeather:        &tips.Weather,
		tipTransportation: &tips.Transportation,
		tipCultural:       &tips.CulturalNotes,
		tipSeasonal:       &tips.SeasonalEvents,
	}

	var active *string
	for _, line := range lines {
		matched := false
		for _, l := range tipLabels {
			// Prefix match only. A label token inside a tip's value must
			// not reroute the line to another field.
			if hasLabelPrefix(line, l.label) {
				active = targets[l.field]
				*active = labelValue(line)
				matched = true
				break
			}
		}
		if matched || active == nil {
			continue
		}
		// Continuation lines extend whichever field is currently open.
		value := strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "-"))
		if value == "" {
			continue
		}
		if *active == "" {
			*active = value
		} else {
			*active += " " + value
		}
	}
	return tips
}

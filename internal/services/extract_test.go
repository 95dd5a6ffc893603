package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractMarkdownLink(t *testing.T) {
	name, url, rest, ok := extractMarkdownLink("[Cafe Luna](https://x.test/luna) - cozy spot")
	assert.True(t, ok)
	assert.Equal(t, "Cafe Luna", name)
	assert.Equal(t, "https://x.test/luna", url)
	assert.Equal(t, " - cozy spot", rest)

	_, _, rest, ok = extractMarkdownLink("plain text")
	assert.False(t, ok)
	assert.Equal(t, "plain text", rest)
}

func TestExtractFirstDecimal(t *testing.T) {
	assert.Equal(t, 4.6, extractFirstDecimal("Rating: 4.6 out of 5"))
	assert.Equal(t, 0.0, extractFirstDecimal("no rating here"))
	assert.Equal(t, 0.0, extractFirstDecimal("rated 5 stars"))
}

func TestExtractParenRating(t *testing.T) {
	rating, rest := extractParenRating("[Cafe](url) (4.7) - nice")
	assert.Equal(t, 4.7, rating)
	assert.Equal(t, "[Cafe](url)  - nice", rest)

	rating, rest = extractParenRating("Cafe - nice")
	assert.Equal(t, 0.0, rating)
	assert.Equal(t, "Cafe - nice", rest)
}

func TestExtractParenTime(t *testing.T) {
	token, rest := extractParenTime("Temple visit (9:00 AM - 11:00 AM) - morning walk")
	assert.Equal(t, "9:00 AM - 11:00 AM", token)
	assert.Equal(t, "Temple visit  - morning walk", rest)

	token, _ = extractParenTime("Museum (14:00)")
	assert.Equal(t, "14:00", token)

	token, rest = extractParenTime("No time here")
	assert.Equal(t, "", token)
	assert.Equal(t, "No time here", rest)
}

func TestExtractAtLocation(t *testing.T) {
	loc, rest := extractAtLocation("Walking tour @ Nakamise Street (1:00 PM)")
	assert.Equal(t, "Nakamise Street", loc)
	assert.Equal(t, "Walking tour (1:00 PM)", rest)

	loc, _ = extractAtLocation("Shopping @ Harajuku")
	assert.Equal(t, "Harajuku", loc)

	loc, rest = extractAtLocation("no marker")
	assert.Equal(t, "", loc)
	assert.Equal(t, "no marker", rest)
}

func TestParseISODate(t *testing.T) {
	assert.Equal(t, "2024-06-01", parseISODate(" 2024-06-01 "))
	assert.Equal(t, "", parseISODate("June 1st"))
	assert.Equal(t, "", parseISODate("2024-13-01"))
}

func TestLabelHelpers(t *testing.T) {
	assert.Equal(t, "Shinjuku, Tokyo", labelValue("Location: Shinjuku, Tokyo"))
	assert.Equal(t, "", labelValue("no colon"))
	assert.True(t, hasLabel("- Nightly Rate: $180", "nightly rate:"))
	assert.False(t, hasLabel("- Rating 4.6", "rating:"))
	assert.True(t, hasLabelPrefix("- Weather: rainy", "weather:"))
	assert.True(t, hasLabelPrefix("CULTURAL NOTES: tipping is unusual", "cultural notes:"))
	assert.False(t, hasLabelPrefix("Cultural Notes: cash for transportation: buses", "transportation:"))
	assert.Equal(t, "cozy spot", trimEntrySeparators(" - cozy spot -"))
}

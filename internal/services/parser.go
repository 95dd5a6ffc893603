package services

import (
	"strings"

	"tripplanner/internal/models/response_models"
)

// Dialect selects which response format the generation service was asked
// for. The parser for a request is fixed by configuration, never sniffed
// from the response.
type Dialect string

const (
	DialectText Dialect = "text"
	DialectJSON Dialect = "json"
)

func ParseDialect(s string) Dialect {
	if strings.EqualFold(strings.TrimSpace(s), string(DialectJSON)) {
		return DialectJSON
	}
	return DialectText
}

// ItineraryParser converts raw model output into the canonical result.
// Implementations return the default structure together with the underlying
// reason whenever the response cannot be trusted; they never panic outward.
// The error is diagnostic only, the returned result is always fully
// populated and safe to persist.
type ItineraryParser interface {
	Parse(raw string) (response_models.ItineraryResult, error)
}

func NewItineraryParser(dialect Dialect) ItineraryParser {
	if dialect == DialectJSON {
		return &JSONItineraryParser{}
	}
	return &TextItineraryParser{}
}

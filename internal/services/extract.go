package services

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Shared field-level extractors used by both dialect parsers. All of them
// are pure: no state, no errors, defaulted results on no match.

var (
	markdownLinkRe = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	decimalRe      = regexp.MustCompile(`\d+\.\d+`)
	parenRatingRe  = regexp.MustCompile(`\((\d+(?:\.\d+)?)\)`)
	parenTimeRe    = regexp.MustCompile(`\(([^)]*\d{1,2}(?::\d{2})?\s*(?:am|pm|AM|PM)[^)]*|[^)]*\d{1,2}:\d{2}[^)]*)\)`)
	dayHeaderRe    = regexp.MustCompile(`(?i)^[\s#*]*day\s+(\d+)\s*-\s*([^:\n]+):`)
	enumMarkerRe   = regexp.MustCompile(`^\s*\d+\.\s*`)
)

// extractMarkdownLink pulls the first [text](target) out of s, returning the
// link text, the target, and s with the link syntax removed.
func extractMarkdownLink(s string) (name, url, rest string, ok bool) {
	m := markdownLinkRe.FindStringSubmatchIndex(s)
	if m == nil {
		return "", "", s, false
	}
	name = strings.TrimSpace(s[m[2]:m[3]])
	url = strings.TrimSpace(s[m[4]:m[5]])
	rest = s[:m[0]] + s[m[1]:]
	return name, url, rest, true
}

// extractFirstDecimal returns the first decimal number found in s,
// or 0.0 when there is none. Missing ratings are never an error.
func extractFirstDecimal(s string) float64 {
	m := decimalRe.FindString(s)
	if m == "" {
		return 0.0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0.0
	}
	return v
}

// extractParenRating pulls a parenthetical decimal like "(4.7)" out of s,
// returning the rating and s with the parenthetical removed. Rating is 0.0
// when no parenthetical number exists.
func extractParenRating(s string) (float64, string) {
	m := parenRatingRe.FindStringSubmatchIndex(s)
	if m == nil {
		return 0.0, s
	}
	v, err := strconv.ParseFloat(s[m[2]:m[3]], 64)
	if err != nil {
		return 0.0, s
	}
	return v, s[:m[0]] + s[m[1]:]
}

// extractParenTime pulls a parenthetical time-of-day token such as
// "(9:00 AM - 11:00 AM)" out of s, returning the token and the remainder.
func extractParenTime(s string) (string, string) {
	m := parenTimeRe.FindStringSubmatchIndex(s)
	if m == nil {
		return "", s
	}
	token := strings.TrimSpace(s[m[2]:m[3]])
	return token, s[:m[0]] + s[m[1]:]
}

// extractAtLocation pulls a location following an "@" marker, up to the next
// parenthesis or end of line, returning the location and the remainder.
func extractAtLocation(s string) (string, string) {
	at := strings.Index(s, "@")
	if at == -1 {
		return "", s
	}
	end := len(s)
	if p := strings.IndexAny(s[at:], "()"); p != -1 {
		end = at + p
	}
	loc := strings.TrimSpace(s[at+1 : end])
	loc = strings.TrimSuffix(loc, "-")
	loc = strings.TrimSpace(loc)
	return loc, s[:at] + s[end:]
}

// parseISODate validates a YYYY-MM-DD string, returning "" on failure so a
// bad embedded date never aborts the day.
func parseISODate(s string) string {
	s = strings.TrimSpace(s)
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return ""
	}
	return s
}

// labelValue splits "Label: value" on the first colon and returns the
// trimmed value; returns "" when no colon exists.
func labelValue(line string) string {
	if i := strings.Index(line, ":"); i != -1 {
		return strings.TrimSpace(line[i+1:])
	}
	return ""
}

// hasLabel reports whether line contains label, case-insensitively.
func hasLabel(line, label string) bool {
	return strings.Contains(strings.ToLower(line), strings.ToLower(label))
}

// hasLabelPrefix reports whether line starts with label once leading
// whitespace and list dashes are stripped, case-insensitively. Label tokens
// appearing later in the line do not count.
func hasLabelPrefix(line, label string) bool {
	trimmed := strings.TrimLeft(line, " \t-")
	return strings.HasPrefix(strings.ToLower(trimmed), strings.ToLower(label))
}

// trimEntrySeparators removes leading/trailing dashes and spaces left over
// after links, ratings or time windows were cut out of a line.
func trimEntrySeparators(s string) string {
	return strings.Trim(s, " \t-–:")
}

package model

import "strings"

// Sport is the discipline a tournament is played in. Free text is tolerated.
type Sport string

const (
	SportFootball   Sport = "Football"
	SportVolleyball Sport = "Volleyball"
)

// Normalize maps known sports case-insensitively onto their canonical
// spelling and trims anything else.
func (s Sport) Normalize() Sport {
	trimmed := strings.TrimSpace(string(s))
	switch {
	case strings.EqualFold(trimmed, string(SportFootball)):
		return SportFootball
	case strings.EqualFold(trimmed, string(SportVolleyball)):
		return SportVolleyball
	default:
		return Sport(trimmed)
	}
}

// TeamCategory is the division a team plays in. Free text is tolerated.
type TeamCategory string

const (
	CategoryFootballA       TeamCategory = "Football A"
	CategoryFootballB       TeamCategory = "Football B"
	CategoryVolleyballMen   TeamCategory = "Volleyball Men"
	CategoryVolleyballWomen TeamCategory = "Volleyball Women"
)

var knownCategories = []TeamCategory{
	CategoryFootballA,
	CategoryFootballB,
	CategoryVolleyballMen,
	CategoryVolleyballWomen,
}

// Normalize maps known categories case-insensitively onto their canonical
// spelling and trims anything else.
func (c TeamCategory) Normalize() TeamCategory {
	trimmed := strings.TrimSpace(string(c))
	for _, known := range knownCategories {
		if strings.EqualFold(trimmed, string(known)) {
			return known
		}
	}
	return TeamCategory(trimmed)
}

// IsKnown reports whether c is one of the built-in categories.
func (c TeamCategory) IsKnown() bool {
	for _, known := range knownCategories {
		if c == known {
			return true
		}
	}
	return false
}

// MatchStatus is the lifecycle state of a match.
type MatchStatus string

const (
	StatusUpcoming  MatchStatus = "Upcoming"
	StatusLive      MatchStatus = "Live"
	StatusCompleted MatchStatus = "Completed"
)

// ParseMatchStatus coerces wire values, including the legacy upper-case
// UPCOMING/LIVE/FINISHED spellings. Anything unrecognised is Upcoming.
func ParseMatchStatus(raw string) MatchStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "live":
		return StatusLive
	case "completed", "finished":
		return StatusCompleted
	default:
		return StatusUpcoming
	}
}

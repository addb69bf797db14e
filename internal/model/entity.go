// Package model provides the portal's domain entities.
//
// Entities are value records: the backend owns them and callers replace a
// record wholesale instead of mutating it in place.
package model

import "time"

// Tournament groups teams of one sport and category.
type Tournament struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Sport        Sport  `json:"sport"`
	CategoryID   string `json:"category_id"`
	CategoryName string `json:"category_name"`
}

// Team is a competing side. Sport and category fields are denormalized from
// its tournament so a player create can carry them without a join.
type Team struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Category     TeamCategory `json:"category"`
	TournamentID string       `json:"tournament_id,omitempty"`
	Sport        Sport        `json:"sport,omitempty"`
	CategoryID   string       `json:"category_id,omitempty"`
	CategoryName string       `json:"category_name,omitempty"`
}

// Player belongs to exactly one team.
type Player struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	TeamID       string `json:"team_id"`
	FatherName   string `json:"father_name"`
	JerseyNumber int    `json:"jersey_number"`
	// Image is a remote URL, a pending data URI or an upload error marker.
	// See ClassifyImage.
	Image string `json:"image,omitempty"`
}

// Side is one team's slot in a match.
type Side struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Score *int   `json:"score,omitempty"`
}

// Match is a scheduled or played fixture between two teams.
type Match struct {
	ID             string      `json:"id"`
	TournamentID   string      `json:"tournament_id"`
	TournamentName string      `json:"tournament_name"`
	CategoryID     string      `json:"category_id"`
	CategoryName   string      `json:"category_name"`
	Sport          Sport       `json:"sport"`
	TeamA          Side        `json:"team_a"`
	TeamB          Side        `json:"team_b"`
	Date           Date        `json:"date"`
	Time           string      `json:"time"`
	Venue          string      `json:"venue"`
	Status         MatchStatus `json:"status"`
}

// Standing is a per (team, category) aggregate computed by the backend.
type Standing struct {
	TeamID         string    `json:"team_id"`
	TeamName       string    `json:"team_name"`
	Category       string    `json:"category"`
	Played         int       `json:"played"`
	Won            int       `json:"won"`
	Drawn          int       `json:"drawn"`
	Lost           int       `json:"lost"`
	GoalsFor       int       `json:"goals_for"`
	GoalsAgainst   int       `json:"goals_against"`
	GoalDifference int       `json:"goal_difference"`
	Points         int       `json:"points"`
	LastUpdated    time.Time `json:"last_updated"`
}

// BlogPost is a news article.
type BlogPost struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Date    Date   `json:"date"`
	Author  string `json:"author"`
	Image   string `json:"image,omitempty"`
}

// Comment is a reader comment on a blog post.
type Comment struct {
	ID         string    `json:"id"`
	BlogID     string    `json:"blog_id"`
	AuthorName string    `json:"author_name"`
	Text       string    `json:"text"`
	Timestamp  time.Time `json:"timestamp"`
}

// Admin is a dashboard account. Passwords never leave the backend.
type Admin struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	MustChangePassword bool      `json:"must_change_password"`
	CreatedAt          time.Time `json:"created_at"`
}

// Session is the identity returned by a successful login.
type Session struct {
	Name               string `json:"name"`
	Email              string `json:"email"`
	MustChangePassword bool   `json:"must_change_password"`
}

// Rules holds the published rule list per sport.
type Rules struct {
	Football   []string `json:"football"`
	Volleyball []string `json:"volleyball"`
}

var (
	footballRules = []string{
		"Matches are 90 minutes (45 mins per half).",
		"Substitutions: 5 per team.",
		"Yellow card = Warning, Red card = Ejection.",
		"Offside rule applies.",
		"In knockout stages, penalties decide the winner after extra time.",
	}
	volleyballRules = []string{
		"Best of 5 sets.",
		"First 4 sets to 25 points, tie-break to 15.",
		"Rotation is mandatory.",
		"Libero cannot serve or block.",
		"Maximum 3 hits per side.",
	}
)

// DefaultRules returns the built-in rule lists used when the backend has none.
func DefaultRules() Rules {
	return Rules{
		Football:   append([]string(nil), footballRules...),
		Volleyball: append([]string(nil), volleyballRules...),
	}
}

// For returns the rule list for a sport, nil for unknown sports.
func (r Rules) For(sport Sport) []string {
	switch sport.Normalize() {
	case SportFootball:
		return r.Football
	case SportVolleyball:
		return r.Volleyball
	default:
		return nil
	}
}

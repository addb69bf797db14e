// Package model provides the reference backend's stored records.
//
// Records carry the gorm column mapping and the action protocol's JSON
// field names, so a stored row is also its wire form.
package model

import "time"

// ID prefixes of permanent records.
const (
	PrefixTournament = "tr_"
	PrefixTeam       = "tm_"
	PrefixPlayer     = "pl_"
	PrefixMatch      = "mt_"
	PrefixBlogPost   = "bl_"
	PrefixComment    = "cm_"
	PrefixAdmin      = "ad_"
	PrefixPhoto      = "ph_"
)

// Tournament is a stored tournament.
type Tournament struct {
	ID           string    `gorm:"primaryKey;column:id" json:"tournamentId"`
	Name         string    `gorm:"column:name;not null" json:"tournamentName"`
	Sport        string    `gorm:"column:sport" json:"sport"`
	CategoryID   string    `gorm:"column:category_id" json:"categoryId"`
	CategoryName string    `gorm:"column:category_name" json:"categoryName"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"-"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"-"`
}

// TableName specifies the table name for GORM.
func (Tournament) TableName() string { return "tournaments" }

// Team is a stored team.
type Team struct {
	ID           string    `gorm:"primaryKey;column:id" json:"teamId"`
	Name         string    `gorm:"column:name;not null" json:"teamName"`
	TournamentID string    `gorm:"column:tournament_id" json:"tournamentId"`
	Sport        string    `gorm:"column:sport" json:"sport"`
	CategoryID   string    `gorm:"column:category_id" json:"categoryId"`
	CategoryName string    `gorm:"column:category_name" json:"categoryName"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"-"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"-"`
}

// TableName specifies the table name for GORM.
func (Team) TableName() string { return "teams" }

// Player is a stored player. Team context is copied in on create.
type Player struct {
	ID           string    `gorm:"primaryKey;column:id" json:"playerId"`
	Name         string    `gorm:"column:name;not null" json:"playerName"`
	FatherName   string    `gorm:"column:father_name" json:"fatherName"`
	JerseyNo     int       `gorm:"column:jersey_no" json:"jerseyNo"`
	TeamID       string    `gorm:"column:team_id;not null" json:"teamId"`
	TeamName     string    `gorm:"column:team_name" json:"teamName"`
	TournamentID string    `gorm:"column:tournament_id" json:"tournamentId"`
	Sport        string    `gorm:"column:sport" json:"sport"`
	CategoryID   string    `gorm:"column:category_id" json:"categoryId"`
	CategoryName string    `gorm:"column:category_name" json:"categoryName"`
	PhotoURL     string    `gorm:"column:photo_url" json:"photoUrl"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"-"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"-"`
}

// TableName specifies the table name for GORM.
func (Player) TableName() string { return "players" }

// Match is a stored fixture. A nil score is an unplayed side.
type Match struct {
	ID             string    `gorm:"primaryKey;column:id" json:"matchId"`
	TournamentID   string    `gorm:"column:tournament_id" json:"tournamentId"`
	TournamentName string    `gorm:"column:tournament_name" json:"tournamentName"`
	CategoryID     string    `gorm:"column:category_id" json:"categoryId"`
	CategoryName   string    `gorm:"column:category_name" json:"categoryName"`
	Sport          string    `gorm:"column:sport" json:"sport"`
	TeamAID        string    `gorm:"column:team_a_id;not null" json:"teamAId"`
	TeamAName      string    `gorm:"column:team_a_name" json:"teamAName"`
	TeamAScore     *int      `gorm:"column:team_a_score" json:"teamAScore"`
	TeamBID        string    `gorm:"column:team_b_id;not null" json:"teamBId"`
	TeamBName      string    `gorm:"column:team_b_name" json:"teamBName"`
	TeamBScore     *int      `gorm:"column:team_b_score" json:"teamBScore"`
	MatchDate      string    `gorm:"column:match_date" json:"matchDate"`
	MatchTime      string    `gorm:"column:match_time" json:"matchTime"`
	Venue          string    `gorm:"column:venue" json:"venue"`
	Status         string    `gorm:"column:status" json:"status"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"-"`
	UpdatedAt      time.Time `gorm:"column:updated_at" json:"-"`
}

// TableName specifies the table name for GORM.
func (Match) TableName() string { return "matches" }

// Played reports whether the match counts towards standings.
func (m Match) Played() bool {
	return m.Status == "Completed" && m.TeamAScore != nil && m.TeamBScore != nil
}

// Standing is one team's row in one category's table.
type Standing struct {
	TeamID         string    `gorm:"primaryKey;column:team_id" json:"teamId"`
	Category       string    `gorm:"primaryKey;column:category" json:"category"`
	TeamName       string    `gorm:"column:team_name" json:"teamName"`
	Played         int       `gorm:"column:played" json:"played"`
	Won            int       `gorm:"column:won" json:"won"`
	Drawn          int       `gorm:"column:drawn" json:"drawn"`
	Lost           int       `gorm:"column:lost" json:"lost"`
	GoalsFor       int       `gorm:"column:goals_for" json:"goalsFor"`
	GoalsAgainst   int       `gorm:"column:goals_against" json:"goalsAgainst"`
	GoalDifference int       `gorm:"column:goal_difference" json:"goalDifference"`
	Points         int       `gorm:"column:points" json:"points"`
	LastUpdated    time.Time `gorm:"column:last_updated" json:"lastUpdated"`
}

// TableName specifies the table name for GORM.
func (Standing) TableName() string { return "standings" }

// BlogPost is a stored article.
type BlogPost struct {
	ID        string    `gorm:"primaryKey;column:id" json:"blogId"`
	Title     string    `gorm:"column:title;not null" json:"title"`
	Content   string    `gorm:"column:content" json:"content"`
	Date      string    `gorm:"column:post_date" json:"date"`
	Author    string    `gorm:"column:author" json:"author"`
	ImageURL  string    `gorm:"column:image_url" json:"imageUrl"`
	CreatedAt time.Time `gorm:"column:created_at" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"-"`
}

// TableName specifies the table name for GORM.
func (BlogPost) TableName() string { return "blog_posts" }

// Comment is a reader comment.
type Comment struct {
	ID         string    `gorm:"primaryKey;column:id" json:"commentId"`
	BlogID     string    `gorm:"column:blog_id;not null" json:"blogId"`
	AuthorName string    `gorm:"column:author_name;not null" json:"authorName"`
	Text       string    `gorm:"column:text;not null" json:"text"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"timestamp"`
}

// TableName specifies the table name for GORM.
func (Comment) TableName() string { return "comments" }

// Admin is a dashboard account.
type Admin struct {
	ID                 string    `gorm:"primaryKey;column:id" json:"adminId"`
	Name               string    `gorm:"column:name;not null" json:"name"`
	Email              string    `gorm:"column:email;uniqueIndex;not null" json:"email"`
	PasswordHash       string    `gorm:"column:password_hash;not null" json:"-"`
	MustChangePassword bool      `gorm:"column:must_change_password" json:"mustChangePassword"`
	CreatedAt          time.Time `gorm:"column:created_at" json:"createdAt"`
}

// TableName specifies the table name for GORM.
func (Admin) TableName() string { return "admins" }

// RuleSet is the published rule list of one sport, JSON encoded.
type RuleSet struct {
	Sport     string    `gorm:"primaryKey;column:sport"`
	Items     string    `gorm:"column:items;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName specifies the table name for GORM.
func (RuleSet) TableName() string { return "rule_sets" }

// Photo is an uploaded image served at /photos/:id.
type Photo struct {
	ID          string    `gorm:"primaryKey;column:id"`
	ContentType string    `gorm:"column:content_type;not null"`
	Data        []byte    `gorm:"column:data;not null"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

// TableName specifies the table name for GORM.
func (Photo) TableName() string { return "photos" }

// IdempotencyKey records the response of a completed write.
type IdempotencyKey struct {
	Key       string    `gorm:"primaryKey;column:idempotency_key"`
	Action    string    `gorm:"column:action;not null"`
	Response  string    `gorm:"column:response;not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

// TableName specifies the table name for GORM.
func (IdempotencyKey) TableName() string { return "idempotency_keys" }

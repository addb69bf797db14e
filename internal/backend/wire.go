package backend

import (
	"time"

	"github.com/festy23/tournament_portal/internal/model"
)

// Wire records mirror the endpoint's field names. Only this file knows both
// schemas.

type wireTeam struct {
	TeamID       flexString `json:"teamId"`
	TeamName     flexString `json:"teamName"`
	CategoryName flexString `json:"categoryName"`
	CategoryID   flexString `json:"categoryId"`
	TournamentID flexString `json:"tournamentId"`
	Sport        flexString `json:"sport"`
}

func (w wireTeam) toModel() model.Team {
	return model.Team{
		ID:           string(w.TeamID),
		Name:         string(w.TeamName),
		Category:     model.TeamCategory(w.CategoryName).Normalize(),
		TournamentID: string(w.TournamentID),
		Sport:        model.Sport(w.Sport).Normalize(),
		CategoryID:   string(w.CategoryID),
		CategoryName: string(w.CategoryName),
	}
}

type wireTournament struct {
	TournamentID   flexString `json:"tournamentId"`
	TournamentName flexString `json:"tournamentName"`
	Sport          flexString `json:"sport"`
	CategoryID     flexString `json:"categoryId"`
	CategoryName   flexString `json:"categoryName"`
}

func (w wireTournament) toModel() model.Tournament {
	return model.Tournament{
		ID:           string(w.TournamentID),
		Name:         string(w.TournamentName),
		Sport:        model.Sport(w.Sport).Normalize(),
		CategoryID:   string(w.CategoryID),
		CategoryName: string(w.CategoryName),
	}
}

type wirePlayer struct {
	PlayerID   flexString `json:"playerId"`
	PlayerName flexString `json:"playerName"`
	TeamID     flexString `json:"teamId"`
	FatherName flexString `json:"fatherName"`
	JerseyNo   flexInt    `json:"jerseyNo"`
	PhotoURL   flexString `json:"photoUrl"`
}

func (w wirePlayer) toModel() model.Player {
	return model.Player{
		ID:           string(w.PlayerID),
		Name:         string(w.PlayerName),
		TeamID:       string(w.TeamID),
		FatherName:   string(w.FatherName),
		JerseyNumber: int(w.JerseyNo),
		Image:        string(w.PhotoURL),
	}
}

type wireMatch struct {
	MatchID        flexString `json:"matchId"`
	TournamentID   flexString `json:"tournamentId"`
	TournamentName flexString `json:"tournamentName"`
	CategoryID     flexString `json:"categoryId"`
	CategoryName   flexString `json:"categoryName"`
	Sport          flexString `json:"sport"`
	TeamAID        flexString `json:"teamAId"`
	TeamAName      flexString `json:"teamAName"`
	TeamAScore     flexOptInt `json:"teamAScore"`
	TeamBID        flexString `json:"teamBId"`
	TeamBName      flexString `json:"teamBName"`
	TeamBScore     flexOptInt `json:"teamBScore"`
	MatchDate      flexString `json:"matchDate"`
	MatchTime      flexString `json:"matchTime"`
	Venue          flexString `json:"venue"`
	Status         flexString `json:"status"`
}

func (w wireMatch) toModel() model.Match {
	date, _ := model.ParseDate(string(w.MatchDate))
	return model.Match{
		ID:             string(w.MatchID),
		TournamentID:   string(w.TournamentID),
		TournamentName: string(w.TournamentName),
		CategoryID:     string(w.CategoryID),
		CategoryName:   string(w.CategoryName),
		Sport:          model.Sport(w.Sport).Normalize(),
		TeamA:          model.Side{ID: string(w.TeamAID), Name: string(w.TeamAName), Score: w.TeamAScore.ptr()},
		TeamB:          model.Side{ID: string(w.TeamBID), Name: string(w.TeamBName), Score: w.TeamBScore.ptr()},
		Date:           date,
		Time:           model.ParseWallClock(string(w.MatchTime)),
		Venue:          string(w.Venue),
		Status:         model.ParseMatchStatus(string(w.Status)),
	}
}

type wireStanding struct {
	TeamID         flexString `json:"teamId"`
	TeamName       flexString `json:"teamName"`
	Category       flexString `json:"category"`
	Played         flexInt    `json:"played"`
	Won            flexInt    `json:"won"`
	Drawn          flexInt    `json:"drawn"`
	Lost           flexInt    `json:"lost"`
	GoalsFor       flexInt    `json:"goalsFor"`
	GoalsAgainst   flexInt    `json:"goalsAgainst"`
	GoalDifference flexInt    `json:"goalDifference"`
	Points         flexInt    `json:"points"`
	LastUpdated    flexTime   `json:"lastUpdated"`
}

func (w wireStanding) toModel() model.Standing {
	return model.Standing{
		TeamID:         string(w.TeamID),
		TeamName:       string(w.TeamName),
		Category:       string(w.Category),
		Played:         int(w.Played),
		Won:            int(w.Won),
		Drawn:          int(w.Drawn),
		Lost:           int(w.Lost),
		GoalsFor:       int(w.GoalsFor),
		GoalsAgainst:   int(w.GoalsAgainst),
		GoalDifference: int(w.GoalDifference),
		Points:         int(w.Points),
		LastUpdated:    time.Time(w.LastUpdated),
	}
}

type wireBlog struct {
	BlogID   flexString `json:"blogId"`
	Title    flexString `json:"title"`
	Content  flexString `json:"content"`
	Date     flexString `json:"date"`
	Author   flexString `json:"author"`
	ImageURL flexString `json:"imageUrl"`
}

func (w wireBlog) toModel() model.BlogPost {
	date, _ := model.ParseDate(string(w.Date))
	return model.BlogPost{
		ID:      string(w.BlogID),
		Title:   string(w.Title),
		Content: string(w.Content),
		Date:    date,
		Author:  string(w.Author),
		Image:   string(w.ImageURL),
	}
}

type wireComment struct {
	CommentID  flexString `json:"commentId"`
	BlogID     flexString `json:"blogId"`
	AuthorName flexString `json:"authorName"`
	Text       flexString `json:"text"`
	Timestamp  flexTime   `json:"timestamp"`
}

func (w wireComment) toModel() model.Comment {
	return model.Comment{
		ID:         string(w.CommentID),
		BlogID:     string(w.BlogID),
		AuthorName: string(w.AuthorName),
		Text:       string(w.Text),
		Timestamp:  time.Time(w.Timestamp),
	}
}

type wireAdmin struct {
	AdminID            flexString `json:"adminId"`
	Name               flexString `json:"name"`
	Email              flexString `json:"email"`
	MustChangePassword flexBool   `json:"mustChangePassword"`
	CreatedAt          flexTime   `json:"createdAt"`
}

func (w wireAdmin) toModel() model.Admin {
	return model.Admin{
		ID:                 string(w.AdminID),
		Name:               string(w.Name),
		Email:              string(w.Email),
		MustChangePassword: bool(w.MustChangePassword),
		CreatedAt:          time.Time(w.CreatedAt),
	}
}

// Outgoing field sets.

func teamFields(req request, t model.Team) request {
	categoryName := t.CategoryName
	if categoryName == "" {
		categoryName = string(t.Category)
	}
	req["teamName"] = t.Name
	req["tournamentId"] = t.TournamentID
	req["sport"] = string(t.Sport)
	req["categoryId"] = t.CategoryID
	req["categoryName"] = categoryName
	return req
}

func tournamentFields(req request, t model.Tournament) request {
	req["tournamentName"] = t.Name
	req["sport"] = string(t.Sport)
	req["categoryId"] = t.CategoryID
	req["categoryName"] = t.CategoryName
	return req
}

func playerFields(req request, p model.Player) request {
	req["playerName"] = p.Name
	req["fatherName"] = p.FatherName
	req["jerseyNo"] = p.JerseyNumber
	req["teamId"] = p.TeamID
	if img := model.PendingImage(p.Image); img != "" {
		req["imageBase64"] = img
	}
	return req
}

func matchFields(req request, m model.Match) request {
	req["tournamentId"] = m.TournamentID
	req["tournamentName"] = m.TournamentName
	req["categoryId"] = m.CategoryID
	req["categoryName"] = m.CategoryName
	req["sport"] = string(m.Sport)
	req["teamAId"] = m.TeamA.ID
	req["teamAName"] = m.TeamA.Name
	req["teamAScore"] = scoreValue(m.TeamA.Score)
	req["teamBId"] = m.TeamB.ID
	req["teamBName"] = m.TeamB.Name
	req["teamBScore"] = scoreValue(m.TeamB.Score)
	req["matchDate"] = m.Date.String()
	req["matchTime"] = m.Time
	req["venue"] = m.Venue
	req["status"] = string(m.Status)
	return req
}

// scoreValue writes an unplayed score as an empty cell.
func scoreValue(score *int) any {
	if score == nil {
		return ""
	}
	return *score
}

func blogFields(req request, b model.BlogPost) request {
	req["title"] = b.Title
	req["content"] = b.Content
	req["date"] = b.Date.String()
	req["author"] = b.Author
	if img := model.PendingImage(b.Image); img != "" {
		req["imageBase64"] = img
	}
	return req
}

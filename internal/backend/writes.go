package backend

import (
	"context"
	"strings"

	"github.com/festy23/tournament_portal/internal/model"
)

// CreateTeam creates a team. Category fields fall back to the team's
// category name.
func (c *Client) CreateTeam(ctx context.Context, team model.Team) Result {
	return c.write(ctx, teamFields(request{"action": "createTeam"}, team))
}

// UpdateTeam replaces the team stored under id.
func (c *Client) UpdateTeam(ctx context.Context, id string, team model.Team) Result {
	return c.write(ctx, teamFields(request{"action": "updateTeam", "teamId": id}, team))
}

// DeleteTeam deletes a team.
func (c *Client) DeleteTeam(ctx context.Context, id string) Result {
	return c.write(ctx, request{"action": "deleteTeam", "teamId": id})
}

// UpsertTeam creates draft teams and updates persisted ones.
func (c *Client) UpsertTeam(ctx context.Context, key model.Key, team model.Team) Result {
	if id, ok := key.ID(); ok {
		return c.UpdateTeam(ctx, id, team)
	}
	return c.CreateTeam(ctx, team)
}

// CreateTournament creates a tournament.
func (c *Client) CreateTournament(ctx context.Context, t model.Tournament) Result {
	return c.write(ctx, tournamentFields(request{"action": "createTournament"}, t))
}

// UpdateTournament replaces the tournament stored under id.
func (c *Client) UpdateTournament(ctx context.Context, id string, t model.Tournament) Result {
	return c.write(ctx, tournamentFields(request{"action": "updateTournament", "tournamentId": id}, t))
}

// DeleteTournament deletes a tournament.
func (c *Client) DeleteTournament(ctx context.Context, id string) Result {
	return c.write(ctx, request{"action": "deleteTournament", "tournamentId": id})
}

// UpsertTournament creates draft tournaments and updates persisted ones.
func (c *Client) UpsertTournament(ctx context.Context, key model.Key, t model.Tournament) Result {
	if id, ok := key.ID(); ok {
		return c.UpdateTournament(ctx, id, t)
	}
	return c.CreateTournament(ctx, t)
}

// CreatePlayer creates a player. The team context is copied into the request
// so the backend can file the player without a lookup. The image is sent only
// when it is a pending data URI.
func (c *Client) CreatePlayer(ctx context.Context, p model.Player, team model.Team) Result {
	req := playerFields(request{"action": "createPlayer"}, p)
	req["teamName"] = team.Name
	req["tournamentId"] = team.TournamentID
	req["sport"] = string(team.Sport)
	req["categoryId"] = team.CategoryID
	categoryName := team.CategoryName
	if categoryName == "" {
		categoryName = string(team.Category)
	}
	req["categoryName"] = categoryName
	return c.write(ctx, req)
}

// UpdatePlayer replaces the player stored under id. A stored photo is kept
// unless p carries a pending data URI.
func (c *Client) UpdatePlayer(ctx context.Context, id string, p model.Player) Result {
	return c.write(ctx, playerFields(request{"action": "updatePlayer", "playerId": id}, p))
}

// DeletePlayer deletes a player.
func (c *Client) DeletePlayer(ctx context.Context, id string) Result {
	return c.write(ctx, request{"action": "deletePlayer", "playerId": id})
}

// UpsertPlayer creates draft players and updates persisted ones.
func (c *Client) UpsertPlayer(ctx context.Context, key model.Key, p model.Player, team model.Team) Result {
	if id, ok := key.ID(); ok {
		return c.UpdatePlayer(ctx, id, p)
	}
	return c.CreatePlayer(ctx, p, team)
}

// CreateMatch creates a match.
func (c *Client) CreateMatch(ctx context.Context, m model.Match) Result {
	return c.write(ctx, matchFields(request{"action": "createMatch"}, m))
}

// UpdateMatch replaces the match stored under id.
func (c *Client) UpdateMatch(ctx context.Context, id string, m model.Match) Result {
	return c.write(ctx, matchFields(request{"action": "updateMatch", "matchId": id}, m))
}

// DeleteMatch deletes a match.
func (c *Client) DeleteMatch(ctx context.Context, id string) Result {
	return c.write(ctx, request{"action": "deleteMatch", "matchId": id})
}

// UpsertMatch creates draft matches and updates persisted ones.
func (c *Client) UpsertMatch(ctx context.Context, key model.Key, m model.Match) Result {
	if id, ok := key.ID(); ok {
		return c.UpdateMatch(ctx, id, m)
	}
	return c.CreateMatch(ctx, m)
}

// DeleteStanding removes a team's row from one category's table.
func (c *Client) DeleteStanding(ctx context.Context, teamID, category string) Result {
	return c.write(ctx, request{"action": "deleteStanding", "teamId": teamID, "category": category})
}

// CreateBlogPost creates a blog post.
func (c *Client) CreateBlogPost(ctx context.Context, b model.BlogPost) Result {
	return c.write(ctx, blogFields(request{"action": "createBlogPost"}, b))
}

// UpdateBlogPost replaces the blog post stored under id.
func (c *Client) UpdateBlogPost(ctx context.Context, id string, b model.BlogPost) Result {
	return c.write(ctx, blogFields(request{"action": "updateBlogPost", "blogId": id}, b))
}

// DeleteBlogPost deletes a blog post and its comments.
func (c *Client) DeleteBlogPost(ctx context.Context, id string) Result {
	return c.write(ctx, request{"action": "deleteBlogPost", "blogId": id})
}

// UpsertBlogPost creates draft posts and updates persisted ones.
func (c *Client) UpsertBlogPost(ctx context.Context, key model.Key, b model.BlogPost) Result {
	if id, ok := key.ID(); ok {
		return c.UpdateBlogPost(ctx, id, b)
	}
	return c.CreateBlogPost(ctx, b)
}

// AddComment posts a reader comment.
func (c *Client) AddComment(ctx context.Context, blogID, author, text string) Result {
	return c.write(ctx, request{
		"action":     "addComment",
		"blogId":     blogID,
		"authorName": author,
		"text":       text,
	})
}

// DeleteComment deletes a comment.
func (c *Client) DeleteComment(ctx context.Context, id string) Result {
	return c.write(ctx, request{"action": "deleteComment", "commentId": id})
}

// SaveRules replaces both rule lists.
func (c *Client) SaveRules(ctx context.Context, rules model.Rules) Result {
	return c.write(ctx, request{
		"action":     "saveRules",
		"football":   nonNil(rules.Football),
		"volleyball": nonNil(rules.Volleyball),
	})
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// LoginResult is the outcome of a login attempt.
type LoginResult struct {
	Success bool
	Message string
	Session model.Session
}

// Login checks admin credentials.
func (c *Client) Login(ctx context.Context, email, password string) LoginResult {
	resp, err := c.call(ctx, request{"action": "login", "email": email, "password": password})
	if err != nil {
		return LoginResult{Message: FallbackMessage}
	}
	if !resp.success() {
		return LoginResult{Message: resp.message()}
	}

	var name flexString
	var mustChange flexBool
	resp.field("name", &name)
	resp.field("mustChangePassword", &mustChange)
	if name == "" {
		name = "Admin"
	}
	return LoginResult{
		Success: true,
		Message: resp.message(),
		Session: model.Session{
			Name:               string(name),
			Email:              strings.TrimSpace(email),
			MustChangePassword: bool(mustChange),
		},
	}
}

// Logout notifies the backend that the session ended.
func (c *Client) Logout(ctx context.Context) Result {
	resp, err := c.call(ctx, request{"action": "logout"})
	if err != nil {
		return failed(FallbackMessage)
	}
	return Result{Success: resp.success(), Message: resp.message()}
}

// CreateAdmin creates a dashboard account.
func (c *Client) CreateAdmin(ctx context.Context, name, email, password string) Result {
	return c.write(ctx, request{"action": "createAdmin", "name": name, "email": email, "password": password})
}

// DeleteAdmin deletes the account registered under email.
func (c *Client) DeleteAdmin(ctx context.Context, email string) Result {
	return c.write(ctx, request{"action": "deleteAdmin", "email": email})
}

// ChangePassword replaces an admin's password after checking the old one.
func (c *Client) ChangePassword(ctx context.Context, email, oldPassword, newPassword string) Result {
	return c.write(ctx, request{
		"action":      "changePassword",
		"email":       email,
		"oldPassword": oldPassword,
		"newPassword": newPassword,
	})
}

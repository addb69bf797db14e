package backend

import (
	"context"

	jsoniter "github.com/json-iterator/go"

	"github.com/festy23/tournament_portal/internal/model"
)

// readList runs a list action and maps every decodable record. Transport
// failures, success=false and a missing or non-array key all yield an empty,
// non-nil slice. A single malformed record is skipped.
func readList[W any, M any](ctx context.Context, c *Client, req request, key string, convert func(W) M) []M {
	out := []M{}

	resp, err := c.call(ctx, req)
	if err != nil {
		return out
	}
	if !resp.success() {
		c.logger.Warnw("Backend reported failure", "action", req["action"], "message", resp.message())
		return out
	}

	var items []jsoniter.RawMessage
	if !resp.field(key, &items) {
		c.logger.Warnw("Backend response missing list", "action", req["action"], "key", key)
		return out
	}

	for _, item := range items {
		var w W
		if err := json.Unmarshal(item, &w); err != nil {
			c.logger.Debugw("Skipping malformed record", "action", req["action"], "error", err)
			continue
		}
		out = append(out, convert(w))
	}
	return out
}

// GetTeams returns all teams.
func (c *Client) GetTeams(ctx context.Context) []model.Team {
	return readList(ctx, c, request{"action": "getTeams"}, "teams", wireTeam.toModel)
}

// GetTournaments returns all tournaments.
func (c *Client) GetTournaments(ctx context.Context) []model.Tournament {
	return readList(ctx, c, request{"action": "getTournaments"}, "tournaments", wireTournament.toModel)
}

// GetMatches returns all matches.
func (c *Client) GetMatches(ctx context.Context) []model.Match {
	return readList(ctx, c, request{"action": "getMatches"}, "matches", wireMatch.toModel)
}

// GetPlayers returns all players.
func (c *Client) GetPlayers(ctx context.Context) []model.Player {
	return readList(ctx, c, request{"action": "getPlayers"}, "players", wirePlayer.toModel)
}

// GetStandings returns the backend-computed standings.
func (c *Client) GetStandings(ctx context.Context) []model.Standing {
	return readList(ctx, c, request{"action": "getStandings"}, "standings", wireStanding.toModel)
}

// GetBlogPosts returns all blog posts.
func (c *Client) GetBlogPosts(ctx context.Context) []model.BlogPost {
	return readList(ctx, c, request{"action": "getBlogPosts"}, "blogs", wireBlog.toModel)
}

// GetComments returns the comments of one blog post.
func (c *Client) GetComments(ctx context.Context, blogID string) []model.Comment {
	return readList(ctx, c, request{"action": "getComments", "blogId": blogID}, "comments", wireComment.toModel)
}

// GetAdmins returns all dashboard accounts.
func (c *Client) GetAdmins(ctx context.Context) []model.Admin {
	return readList(ctx, c, request{"action": "getAdmins"}, "admins", wireAdmin.toModel)
}

// GetRules returns the published rules. On failure it returns the built-in
// defaults; a sport missing from a successful response also falls back.
func (c *Client) GetRules(ctx context.Context) model.Rules {
	defaults := model.DefaultRules()

	resp, err := c.call(ctx, request{"action": "getRules"})
	if err != nil {
		return defaults
	}
	if !resp.success() {
		c.logger.Warnw("Backend reported failure", "action", "getRules", "message", resp.message())
		return defaults
	}

	rules := defaults
	var football, volleyball []flexString
	if resp.field("football", &football) && football != nil {
		rules.Football = stringsOf(football)
	}
	if resp.field("volleyball", &volleyball) && volleyball != nil {
		rules.Volleyball = stringsOf(volleyball)
	}
	return rules
}

func stringsOf(in []flexString) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s != "" {
			out = append(out, string(s))
		}
	}
	return out
}

package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/png"
	"strconv"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	dbConfig "github.com/festy23/tournament_portal/internal/database/config"
	"github.com/festy23/tournament_portal/internal/database/migrate"
	sheetModel "github.com/festy23/tournament_portal/internal/sheet/model"
	"github.com/festy23/tournament_portal/internal/sheet/repository"
)

var testNow = time.Date(2025, 6, 9, 12, 0, 0, 0, time.UTC)

type fixture struct {
	svc   *Service
	db    *gorm.DB
	clock *clockwork.FakeClock
}

func setupService(t *testing.T) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, migrate.Migrate(db, dbConfig.DriverSQLite))

	counters := map[string]int{}
	ids := func(prefix string) string {
		counters[prefix]++
		return prefix + strconv.Itoa(counters[prefix])
	}

	clock := clockwork.NewFakeClockAt(testNow)
	svc := New(repository.New(db), "http://sheet.test/", zaptest.NewLogger(t).Sugar(),
		WithClock(clock),
		WithIDs(ids),
		WithBcryptCost(bcrypt.MinCost),
	)
	return &fixture{svc: svc, db: db, clock: clock}
}

func (f *fixture) exec(t *testing.T, body map[string]any) sheetModel.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	p, err := sheetModel.ParseParams(raw)
	require.NoError(t, err)
	return f.svc.Exec(context.Background(), p)
}

func (f *fixture) mustSucceed(t *testing.T, body map[string]any) sheetModel.Response {
	t.Helper()
	resp := f.exec(t, body)
	require.True(t, resp.Success(), "action %v failed: %v", body["action"], resp["message"])
	return resp
}

func pngDataURI(t *testing.T) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))))
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestExec_UnknownAction(t *testing.T) {
	f := setupService(t)

	resp := f.exec(t, map[string]any{"action": "dropEverything"})

	assert.False(t, resp.Success())
	assert.Equal(t, `unknown action: "dropEverything"`, resp["message"])
}

func TestExec_TournamentLifecycle(t *testing.T) {
	f := setupService(t)

	created := f.mustSucceed(t, map[string]any{
		"action": "createTournament", "tournamentName": "Summer Cup",
		"sport": "Football", "categoryId": "c1", "categoryName": "U18",
	})
	assert.Equal(t, "tr_1", created["tournamentId"])

	f.mustSucceed(t, map[string]any{"action": "createTournament", "tournamentName": "Autumn Cup"})

	list := f.mustSucceed(t, map[string]any{"action": "getTournaments"})
	tournaments := list["tournaments"].([]sheetModel.Tournament)
	require.Len(t, tournaments, 2)
	assert.Equal(t, "Autumn Cup", tournaments[0].Name)
	assert.Equal(t, "U18", tournaments[1].CategoryName)

	f.mustSucceed(t, map[string]any{"action": "updateTournament", "tournamentId": "tr_1", "tournamentName": "Winter Cup"})
	list = f.mustSucceed(t, map[string]any{"action": "getTournaments"})
	assert.Equal(t, "Winter Cup", list["tournaments"].([]sheetModel.Tournament)[1].Name)

	f.mustSucceed(t, map[string]any{"action": "deleteTournament", "tournamentId": "tr_1"})
	list = f.mustSucceed(t, map[string]any{"action": "getTournaments"})
	assert.Len(t, list["tournaments"], 1)
}

func TestExec_DomainFailures(t *testing.T) {
	tests := []struct {
		name    string
		body    map[string]any
		message string
	}{
		{
			name:    "tournament without name",
			body:    map[string]any{"action": "createTournament"},
			message: "name is required",
		},
		{
			name:    "update missing team",
			body:    map[string]any{"action": "updateTeam", "teamId": "tm_404", "teamName": "Ghosts"},
			message: `team "tm_404": record not found`,
		},
		{
			name:    "delete missing player",
			body:    map[string]any{"action": "deletePlayer", "playerId": "pl_404"},
			message: `player "pl_404": record not found`,
		},
		{
			name:    "player without team",
			body:    map[string]any{"action": "createPlayer", "playerName": "Ann"},
			message: "team is required",
		},
		{
			name:    "match without teams",
			body:    map[string]any{"action": "createMatch", "teamAId": "tm_1"},
			message: "both teams are required",
		},
		{
			name:    "blog without title",
			body:    map[string]any{"action": "createBlogPost", "content": "..."},
			message: "title is required",
		},
		{
			name:    "standing without category",
			body:    map[string]any{"action": "deleteStanding", "teamId": "tm_1"},
			message: "team and category are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setupService(t)

			resp := f.exec(t, tt.body)

			assert.False(t, resp.Success())
			assert.Equal(t, tt.message, resp["message"])
		})
	}
}

func TestExec_IdempotentReplay(t *testing.T) {
	f := setupService(t)
	body := map[string]any{"action": "createTeam", "teamName": "Lions", "idempotencyKey": "key-1"}

	first := f.mustSucceed(t, body)
	second := f.mustSucceed(t, body)

	assert.Equal(t, "tm_1", first["teamId"])
	assert.Equal(t, "tm_1", second["teamId"])

	list := f.mustSucceed(t, map[string]any{"action": "getTeams"})
	assert.Len(t, list["teams"], 1)
}

func TestExec_FailedWriteIsNotReplayed(t *testing.T) {
	f := setupService(t)

	resp := f.exec(t, map[string]any{"action": "createTeam", "idempotencyKey": "key-2"})
	require.False(t, resp.Success())

	resp = f.mustSucceed(t, map[string]any{"action": "createTeam", "teamName": "Tigers", "idempotencyKey": "key-2"})
	assert.Equal(t, "Team created", resp["message"])

	list := f.mustSucceed(t, map[string]any{"action": "getTeams"})
	assert.Len(t, list["teams"], 1)
}

func TestExec_PlayerPhotos(t *testing.T) {
	f := setupService(t)
	f.mustSucceed(t, map[string]any{
		"action": "createTeam", "teamName": "Lions", "tournamentId": "tr_9",
		"sport": "Volleyball", "categoryId": "c2", "categoryName": "Open",
	})

	created := f.mustSucceed(t, map[string]any{
		"action": "createPlayer", "playerName": "Ann", "jerseyNo": "7",
		"teamId": "tm_1", "teamName": "Lions", "imageBase64": pngDataURI(t),
	})
	assert.Equal(t, "pl_1", created["playerId"])
	assert.Equal(t, "http://sheet.test/photos/ph_1", created["photoUrl"])

	photo, err := f.svc.Photo(context.Background(), "ph_1")
	require.NoError(t, err)
	assert.Equal(t, "image/png", photo.ContentType)
	assert.NotEmpty(t, photo.Data)

	t.Run("update without upload keeps photo", func(t *testing.T) {
		resp := f.mustSucceed(t, map[string]any{
			"action": "updatePlayer", "playerId": "pl_1", "playerName": "Anna", "jerseyNo": 8, "teamId": "tm_1",
		})
		assert.Equal(t, "http://sheet.test/photos/ph_1", resp["photoUrl"])
	})

	t.Run("invalid upload stores marker", func(t *testing.T) {
		resp := f.mustSucceed(t, map[string]any{
			"action": "updatePlayer", "playerId": "pl_1", "playerName": "Anna", "teamId": "tm_1",
			"imageBase64": "data:text/plain;base64,aGVsbG8=",
		})
		assert.Equal(t, sheetModel.InvalidImageMarker, resp["photoUrl"])
	})

	t.Run("moving team copies its context", func(t *testing.T) {
		f.mustSucceed(t, map[string]any{
			"action": "createTeam", "teamName": "Bears", "tournamentId": "tr_9",
			"sport": "Volleyball", "categoryId": "c3", "categoryName": "Veterans",
		})
		f.mustSucceed(t, map[string]any{"action": "updatePlayer", "playerId": "pl_1", "playerName": "Anna", "teamId": "tm_2"})

		list := f.mustSucceed(t, map[string]any{"action": "getPlayers"})
		players := list["players"].([]sheetModel.Player)
		require.Len(t, players, 1)
		assert.Equal(t, "Bears", players[0].TeamName)
		assert.Equal(t, "Veterans", players[0].CategoryName)
	})

	_, err = f.svc.Photo(context.Background(), "ph_404")
	assert.ErrorIs(t, err, sheetModel.ErrNotFound)
}

func TestExec_MatchesDriveStandings(t *testing.T) {
	f := setupService(t)

	created := f.mustSucceed(t, map[string]any{
		"action": "createMatch", "categoryName": "U18", "sport": "Football",
		"teamAId": "tm_1", "teamAName": "Lions", "teamAScore": 2,
		"teamBId": "tm_2", "teamBName": "Bears", "teamBScore": 1,
		"status": "Completed",
	})
	assert.Equal(t, "mt_1", created["matchId"])

	f.mustSucceed(t, map[string]any{
		"action": "createMatch", "categoryName": "U18",
		"teamAId": "tm_1", "teamBId": "tm_2",
	})

	matches := f.mustSucceed(t, map[string]any{"action": "getMatches"})["matches"].([]sheetModel.Match)
	require.Len(t, matches, 2)
	for _, m := range matches {
		if m.ID == "mt_2" {
			assert.Equal(t, "Upcoming", m.Status)
			assert.Nil(t, m.TeamAScore)
		}
	}

	standings := f.mustSucceed(t, map[string]any{"action": "getStandings"})["standings"].([]sheetModel.Standing)
	require.Len(t, standings, 2)
	assert.Equal(t, "tm_1", standings[0].TeamID)
	assert.Equal(t, 3, standings[0].Points)
	assert.True(t, standings[0].LastUpdated.Equal(testNow))

	f.mustSucceed(t, map[string]any{"action": "deleteStanding", "teamId": "tm_2", "category": "U18"})
	standings = f.mustSucceed(t, map[string]any{"action": "getStandings"})["standings"].([]sheetModel.Standing)
	assert.Len(t, standings, 1)

	resp := f.exec(t, map[string]any{"action": "deleteStanding", "teamId": "tm_2", "category": "U18"})
	assert.False(t, resp.Success())

	f.mustSucceed(t, map[string]any{"action": "deleteMatch", "matchId": "mt_1"})
	standings = f.mustSucceed(t, map[string]any{"action": "getStandings"})["standings"].([]sheetModel.Standing)
	assert.Empty(t, standings)
}

func TestExec_BlogAndComments(t *testing.T) {
	f := setupService(t)

	f.mustSucceed(t, map[string]any{"action": "createBlogPost", "title": "Old news", "date": "2025-05-01"})
	created := f.mustSucceed(t, map[string]any{
		"action": "createBlogPost", "title": "Final recap", "date": "2025-06-01",
		"author": "Editor", "imageBase64": pngDataURI(t),
	})
	assert.Equal(t, "bl_2", created["blogId"])
	assert.Equal(t, "http://sheet.test/photos/ph_1", created["imageUrl"])

	blogs := f.mustSucceed(t, map[string]any{"action": "getBlogPosts"})["blogs"].([]sheetModel.BlogPost)
	require.Len(t, blogs, 2)
	assert.Equal(t, "Final recap", blogs[0].Title)

	comment := f.mustSucceed(t, map[string]any{"action": "addComment", "blogId": "bl_2", "authorName": "Fan", "text": "Great game"})
	assert.Equal(t, "cm_1", comment["commentId"])

	comments := f.mustSucceed(t, map[string]any{"action": "getComments", "blogId": "bl_2"})["comments"].([]sheetModel.Comment)
	require.Len(t, comments, 1)
	assert.True(t, comments[0].CreatedAt.Equal(testNow))

	resp := f.exec(t, map[string]any{"action": "addComment", "blogId": "bl_404", "authorName": "Fan", "text": "?"})
	assert.False(t, resp.Success())
	assert.Contains(t, resp["message"], "record not found")

	resp = f.exec(t, map[string]any{"action": "addComment", "blogId": "bl_2", "authorName": "Fan"})
	assert.Equal(t, "author name and text are required", resp["message"])

	f.mustSucceed(t, map[string]any{"action": "deleteBlogPost", "blogId": "bl_2"})
	comments = f.mustSucceed(t, map[string]any{"action": "getComments", "blogId": "bl_2"})["comments"].([]sheetModel.Comment)
	assert.Empty(t, comments)
}

func TestExec_Rules(t *testing.T) {
	f := setupService(t)

	resp := f.mustSucceed(t, map[string]any{"action": "getRules"})
	assert.NotContains(t, resp, "football")

	f.mustSucceed(t, map[string]any{"action": "saveRules", "football": []any{"No slide tackles", " ", "Rolling subs"}})
	resp = f.mustSucceed(t, map[string]any{"action": "getRules"})
	assert.Equal(t, []string{"No slide tackles", "Rolling subs"}, resp["football"])
	assert.NotContains(t, resp, "volleyball")

	f.mustSucceed(t, map[string]any{"action": "saveRules", "football": []any{"Fair play"}, "volleyball": []any{}})
	resp = f.mustSucceed(t, map[string]any{"action": "getRules"})
	assert.Equal(t, []string{"Fair play"}, resp["football"])
	assert.Equal(t, []string{}, resp["volleyball"])
}

func TestExec_Accounts(t *testing.T) {
	f := setupService(t)
	ctx := context.Background()

	require.NoError(t, f.svc.SeedAdmin(ctx, "Root", " Root@Example.com ", "first-pass"))
	require.NoError(t, f.svc.SeedAdmin(ctx, "Other", "other@example.com", "x"))

	admins := f.mustSucceed(t, map[string]any{"action": "getAdmins"})["admins"].([]sheetModel.Admin)
	require.Len(t, admins, 1)
	assert.Equal(t, "root@example.com", admins[0].Email)

	login := f.mustSucceed(t, map[string]any{"action": "login", "email": "ROOT@example.com", "password": "first-pass"})
	assert.Equal(t, "Root", login["name"])
	assert.Equal(t, true, login["mustChangePassword"])

	resp := f.exec(t, map[string]any{"action": "login", "email": "root@example.com", "password": "nope"})
	assert.Equal(t, "invalid email or password", resp["message"])

	resp = f.exec(t, map[string]any{"action": "changePassword", "email": "root@example.com", "oldPassword": "nope", "newPassword": "second"})
	assert.Equal(t, "incorrect password", resp["message"])

	f.mustSucceed(t, map[string]any{"action": "changePassword", "email": "root@example.com", "oldPassword": "first-pass", "newPassword": "second"})
	login = f.mustSucceed(t, map[string]any{"action": "login", "email": "root@example.com", "password": "second"})
	assert.Equal(t, false, login["mustChangePassword"])

	resp = f.exec(t, map[string]any{"action": "deleteAdmin", "email": "root@example.com"})
	assert.Equal(t, "cannot delete the last admin", resp["message"])

	f.mustSucceed(t, map[string]any{"action": "createAdmin", "name": "Second", "email": "second@example.com", "password": "pw"})
	resp = f.exec(t, map[string]any{"action": "createAdmin", "name": "Again", "email": "SECOND@example.com", "password": "pw"})
	assert.Equal(t, "an admin with this email already exists", resp["message"])

	f.mustSucceed(t, map[string]any{"action": "deleteAdmin", "email": "root@example.com"})
	admins = f.mustSucceed(t, map[string]any{"action": "getAdmins"})["admins"].([]sheetModel.Admin)
	require.Len(t, admins, 1)
	assert.True(t, admins[0].MustChangePassword)

	f.mustSucceed(t, map[string]any{"action": "logout"})
}

func TestExec_StorageFailureIsHidden(t *testing.T) {
	f := setupService(t)
	sqlDB, err := f.db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	resp := f.exec(t, map[string]any{"action": "getTeams"})

	assert.False(t, resp.Success())
	assert.Equal(t, "internal storage error", resp["message"])
}

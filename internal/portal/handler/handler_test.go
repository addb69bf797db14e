package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/festy23/tournament_portal/internal/admin"
	"github.com/festy23/tournament_portal/internal/model"
	portalModel "github.com/festy23/tournament_portal/internal/portal/model"
	"github.com/festy23/tournament_portal/internal/portal/service"
	"github.com/festy23/tournament_portal/internal/referee"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type mockService struct {
	mock.Mock
}

func (m *mockService) Home(ctx context.Context) *portalModel.Home {
	return m.Called(ctx).Get(0).(*portalModel.Home)
}

func (m *mockService) Teams(ctx context.Context) []model.Team {
	return m.Called(ctx).Get(0).([]model.Team)
}

func (m *mockService) Tournaments(ctx context.Context) []model.Tournament {
	return m.Called(ctx).Get(0).([]model.Tournament)
}

func (m *mockService) Matches(ctx context.Context, filter portalModel.MatchFilter) []model.Match {
	return m.Called(ctx, filter).Get(0).([]model.Match)
}

func (m *mockService) Players(ctx context.Context, teamID string) []model.Player {
	return m.Called(ctx, teamID).Get(0).([]model.Player)
}

func (m *mockService) Standings(ctx context.Context, category string) []model.Standing {
	return m.Called(ctx, category).Get(0).([]model.Standing)
}

func (m *mockService) Blogs(ctx context.Context) []model.BlogPost {
	return m.Called(ctx).Get(0).([]model.BlogPost)
}

func (m *mockService) Comments(ctx context.Context, blogID string) []model.Comment {
	return m.Called(ctx, blogID).Get(0).([]model.Comment)
}

func (m *mockService) AddComment(ctx context.Context, blogID string, req *portalModel.CommentRequest) (admin.Outcome, error) {
	args := m.Called(ctx, blogID, req)
	return args.Get(0).(admin.Outcome), args.Error(1)
}

func (m *mockService) Rules(ctx context.Context) model.Rules {
	return m.Called(ctx).Get(0).(model.Rules)
}

func (m *mockService) AskReferee(ctx context.Context, req *portalModel.RefereeRequest) (*portalModel.RefereeResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portalModel.RefereeResponse), args.Error(1)
}

var _ service.Service = (*mockService)(nil)

func setupRouter(t *testing.T, svc service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(svc, zaptest.NewLogger(t).Sugar())
	r := gin.New()
	r.GET("/api/home", h.Home)
	r.GET("/api/matches", h.Matches)
	r.GET("/api/players", h.Players)
	r.GET("/api/standings", h.Standings)
	r.GET("/api/blogs/:id/comments", h.Comments)
	r.POST("/api/blogs/:id/comments", h.AddComment)
	r.GET("/api/rules", h.Rules)
	r.POST("/api/referee", h.AskReferee)
	return r
}

func do(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		_ = json.NewEncoder(&buf).Encode(b)
	}
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHandler_Home(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := new(mockService)
		svc.On("Home", mock.Anything).Return(&portalModel.Home{
			Teams:    []model.Team{{ID: "tm_1", Name: "Veng FC"}},
			Featured: []model.Match{},
		})

		w := do(setupRouter(t, svc), http.MethodGet, "/api/home", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp portalModel.Home
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Veng FC", resp.Teams[0].Name)
		svc.AssertExpectations(t)
	})

	t.Run("empty backend", func(t *testing.T) {
		svc := new(mockService)
		svc.On("Home", mock.Anything).Return(&portalModel.Home{
			Teams:    []model.Team{},
			Featured: []model.Match{},
		})

		w := do(setupRouter(t, svc), http.MethodGet, "/api/home", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"teams":[]`)
	})
}

func TestHandler_Matches(t *testing.T) {
	t.Run("passes parsed filter", func(t *testing.T) {
		svc := new(mockService)
		svc.On("Matches", mock.Anything, portalModel.MatchFilter{Status: model.StatusLive, Sport: model.SportFootball}).
			Return([]model.Match{{ID: "mt_1"}})

		w := do(setupRouter(t, svc), http.MethodGet, "/api/matches?status=live&sport=football", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"mt_1"`)
		svc.AssertExpectations(t)
	})

	t.Run("invalid status", func(t *testing.T) {
		svc := new(mockService)

		w := do(setupRouter(t, svc), http.MethodGet, "/api/matches?status=postponed", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_REQUEST", decodeError(t, w).Error.Code)
		svc.AssertNotCalled(t, "Matches", mock.Anything, mock.Anything)
	})
}

func TestHandler_QueryParams(t *testing.T) {
	svc := new(mockService)
	svc.On("Players", mock.Anything, "tm_1").Return([]model.Player{})
	svc.On("Standings", mock.Anything, "Football A").Return([]model.Standing{})
	svc.On("Comments", mock.Anything, "bl_1").Return([]model.Comment{})
	r := setupRouter(t, svc)

	w := do(r, http.MethodGet, "/api/players?team_id=tm_1", nil)
	assert.JSONEq(t, `{"players":[]}`, w.Body.String())

	w = do(r, http.MethodGet, "/api/standings?category=Football%20A", nil)
	assert.JSONEq(t, `{"standings":[]}`, w.Body.String())

	w = do(r, http.MethodGet, "/api/blogs/bl_1/comments", nil)
	assert.JSONEq(t, `{"comments":[]}`, w.Body.String())

	svc.AssertExpectations(t)
}

func TestHandler_AddComment(t *testing.T) {
	req := &portalModel.CommentRequest{AuthorName: "Mary", Text: "Great final"}

	t.Run("created", func(t *testing.T) {
		svc := new(mockService)
		svc.On("AddComment", mock.Anything, "bl_1", req).Return(admin.Outcome{Saved: true, Status: "Comment added"}, nil)

		w := do(setupRouter(t, svc), http.MethodPost, "/api/blogs/bl_1/comments", req)

		assert.Equal(t, http.StatusCreated, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("validation", func(t *testing.T) {
		svc := new(mockService)
		svc.On("AddComment", mock.Anything, "bl_1", mock.Anything).Return(admin.Outcome{}, model.ErrTextRequired)

		w := do(setupRouter(t, svc), http.MethodPost, "/api/blogs/bl_1/comments", &portalModel.CommentRequest{AuthorName: "Mary"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, model.ErrTextRequired.Error(), decodeError(t, w).Error.Message)
	})

	t.Run("backend rejected", func(t *testing.T) {
		svc := new(mockService)
		svc.On("AddComment", mock.Anything, "bl_1", req).Return(admin.Outcome{Status: "Failed: Blog not found", DraftOpen: true}, nil)

		w := do(setupRouter(t, svc), http.MethodPost, "/api/blogs/bl_1/comments", req)

		assert.Equal(t, http.StatusBadGateway, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, "BACKEND_ERROR", resp.Error.Code)
		assert.Equal(t, "Failed: Blog not found", resp.Error.Message)
	})

	t.Run("invalid body", func(t *testing.T) {
		svc := new(mockService)

		w := do(setupRouter(t, svc), http.MethodPost, "/api/blogs/bl_1/comments", "not json")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "AddComment", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestHandler_Rules(t *testing.T) {
	svc := new(mockService)
	svc.On("Rules", mock.Anything).Return(model.Rules{Football: []string{"Two halves"}, Volleyball: []string{}})

	w := do(setupRouter(t, svc), http.MethodGet, "/api/rules", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"football":["Two halves"],"volleyball":[]}`, w.Body.String())
}

func TestHandler_AskReferee(t *testing.T) {
	t.Run("answer", func(t *testing.T) {
		svc := new(mockService)
		req := &portalModel.RefereeRequest{Question: "Offside?", Sport: model.SportFootball}
		svc.On("AskReferee", mock.Anything, req).Return(&portalModel.RefereeResponse{Answer: referee.OfflineAnswer}, nil)

		w := do(setupRouter(t, svc), http.MethodPost, "/api/referee", req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "offline")
	})

	t.Run("empty question", func(t *testing.T) {
		svc := new(mockService)
		svc.On("AskReferee", mock.Anything, mock.Anything).Return(nil, referee.ErrEmptyQuestion)

		w := do(setupRouter(t, svc), http.MethodPost, "/api/referee", &portalModel.RefereeRequest{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// Package handler provides HTTP handlers for the admin dashboard.
package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/tournament_portal/internal/admin"
	"github.com/festy23/tournament_portal/internal/backend"
	dashboardModel "github.com/festy23/tournament_portal/internal/dashboard/model"
	"github.com/festy23/tournament_portal/internal/imaging"
	"github.com/festy23/tournament_portal/internal/middleware"
	"github.com/festy23/tournament_portal/internal/model"
)

// Service is the orchestrator as seen by the dashboard.
type Service interface {
	Snapshot() admin.Snapshot
	Reload(ctx context.Context) admin.Snapshot

	SaveTournament(ctx context.Context, d *admin.Draft[model.Tournament]) (admin.Outcome, error)
	SaveTeam(ctx context.Context, d *admin.Draft[model.Team]) (admin.Outcome, error)
	SavePlayer(ctx context.Context, d *admin.Draft[model.Player]) (admin.Outcome, error)
	SaveMatch(ctx context.Context, d *admin.Draft[model.Match]) (admin.Outcome, error)
	SaveBlogPost(ctx context.Context, d *admin.Draft[model.BlogPost]) (admin.Outcome, error)
	SaveRules(ctx context.Context, rules *model.Rules) (admin.Outcome, error)

	DeleteTournament(ctx context.Context, confirm admin.Confirmer, id string) (admin.Outcome, error)
	DeleteTeam(ctx context.Context, confirm admin.Confirmer, id string) (admin.Outcome, error)
	DeletePlayer(ctx context.Context, confirm admin.Confirmer, id string) (admin.Outcome, error)
	DeleteMatch(ctx context.Context, confirm admin.Confirmer, id string) (admin.Outcome, error)
	DeleteStanding(ctx context.Context, confirm admin.Confirmer, teamID, category string) (admin.Outcome, error)
	DeleteBlogPost(ctx context.Context, confirm admin.Confirmer, id string) (admin.Outcome, error)
	DeleteComment(ctx context.Context, confirm admin.Confirmer, id string) (admin.Outcome, error)
	DeleteAdmin(ctx context.Context, confirm admin.Confirmer, email string) (admin.Outcome, error)

	Login(ctx context.Context, email, password string) (model.Session, error)
	Logout(ctx context.Context, email string) backend.Result
	CreateAdmin(ctx context.Context, req *admin.NewAdmin) (admin.Outcome, error)
	ChangePassword(ctx context.Context, email string, req *admin.PasswordChange) (admin.Outcome, error)
}

var _ Service = (*admin.Service)(nil)

// Sessions issues session tokens.
type Sessions interface {
	Issue(s model.Session) (string, time.Time, error)
}

// ImageProcessor turns an upload into a data URI.
type ImageProcessor func(r io.Reader) (string, error)

// Handler handles HTTP requests for dashboard endpoints.
type Handler struct {
	service  Service
	sessions Sessions
	images   ImageProcessor
	logger   *zap.SugaredLogger
}

// New creates a new dashboard handler instance. A nil images uses
// imaging.Process.
func New(svc Service, sessions Sessions, images ImageProcessor, logger *zap.SugaredLogger) *Handler {
	if images == nil {
		images = imaging.Process
	}
	return &Handler{service: svc, sessions: sessions, images: images, logger: logger}
}

// Login handles POST /admin/login.
func (h *Handler) Login(c *gin.Context) {
	var req dashboardModel.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	s, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, admin.ErrInvalidCredentials):
			errorResponse(c, "INVALID_CREDENTIALS", err.Error(), http.StatusUnauthorized)
		case model.IsValidation(err):
			badRequest(c, err.Error())
		default:
			h.internalError(c, "error logging in", err)
		}
		return
	}

	token, expires, err := h.sessions.Issue(s)
	if err != nil {
		h.internalError(c, "error issuing session", err)
		return
	}
	c.JSON(http.StatusOK, dashboardModel.LoginResponse{Token: token, ExpiresAt: expires, Session: s})
}

// Logout handles POST /admin/logout. The token is the client's to discard;
// the backend is only notified.
func (h *Handler) Logout(c *gin.Context) {
	s, _ := middleware.SessionFrom(c)
	res := h.service.Logout(c.Request.Context(), s.Email)
	c.JSON(http.StatusOK, res)
}

// Data handles GET /admin/data. The first call loads the snapshot.
func (h *Handler) Data(c *gin.Context) {
	snap := h.service.Snapshot()
	if snap.LoadedAt.IsZero() {
		snap = h.service.Reload(c.Request.Context())
	}
	c.JSON(http.StatusOK, snap)
}

// Reload handles POST /admin/reload.
func (h *Handler) Reload(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Reload(c.Request.Context()))
}

// SaveTournament handles POST /admin/tournaments.
func (h *Handler) SaveTournament(c *gin.Context) {
	var t model.Tournament
	if !bind(c, &t) {
		return
	}
	key := model.ParseKey(model.KindTournament, t.ID)
	t.ID, _ = key.ID()
	h.respond(c, "tournament")(h.service.SaveTournament(c.Request.Context(), &admin.Draft[model.Tournament]{Key: key, Value: t}))
}

// SaveTeam handles POST /admin/teams.
func (h *Handler) SaveTeam(c *gin.Context) {
	var team model.Team
	if !bind(c, &team) {
		return
	}
	key := model.ParseKey(model.KindTeam, team.ID)
	team.ID, _ = key.ID()
	h.respond(c, "team")(h.service.SaveTeam(c.Request.Context(), &admin.Draft[model.Team]{Key: key, Value: team}))
}

// SavePlayer handles POST /admin/players.
func (h *Handler) SavePlayer(c *gin.Context) {
	var p model.Player
	if !bind(c, &p) {
		return
	}
	key := model.ParseKey(model.KindPlayer, p.ID)
	p.ID, _ = key.ID()
	h.respond(c, "player")(h.service.SavePlayer(c.Request.Context(), &admin.Draft[model.Player]{Key: key, Value: p}))
}

// SaveMatch handles POST /admin/matches.
func (h *Handler) SaveMatch(c *gin.Context) {
	var m model.Match
	if !bind(c, &m) {
		return
	}
	key := model.ParseKey(model.KindMatch, m.ID)
	m.ID, _ = key.ID()
	h.respond(c, "match")(h.service.SaveMatch(c.Request.Context(), &admin.Draft[model.Match]{Key: key, Value: m}))
}

// SaveBlogPost handles POST /admin/blogs.
func (h *Handler) SaveBlogPost(c *gin.Context) {
	var b model.BlogPost
	if !bind(c, &b) {
		return
	}
	key := model.ParseKey(model.KindBlogPost, b.ID)
	b.ID, _ = key.ID()
	h.respond(c, "blog post")(h.service.SaveBlogPost(c.Request.Context(), &admin.Draft[model.BlogPost]{Key: key, Value: b}))
}

// SaveRules handles PUT /admin/rules.
func (h *Handler) SaveRules(c *gin.Context) {
	var rules model.Rules
	if !bind(c, &rules) {
		return
	}
	h.respond(c, "rules")(h.service.SaveRules(c.Request.Context(), &rules))
}

// CreateAdmin handles POST /admin/admins.
func (h *Handler) CreateAdmin(c *gin.Context) {
	var req admin.NewAdmin
	if !bind(c, &req) {
		return
	}
	h.respond(c, "admin")(h.service.CreateAdmin(c.Request.Context(), &req))
}

// ChangePassword handles POST /admin/password. On success the caller gets
// a token without the forced-change flag.
func (h *Handler) ChangePassword(c *gin.Context) {
	var req admin.PasswordChange
	if !bind(c, &req) {
		return
	}
	s, _ := middleware.SessionFrom(c)

	out, err := h.service.ChangePassword(c.Request.Context(), s.Email, &req)
	if err != nil || !out.Saved {
		h.respond(c, "password")(out, err)
		return
	}

	resp := dashboardModel.PasswordResponse{Outcome: out}
	s.MustChangePassword = false
	token, expires, err := h.sessions.Issue(s)
	if err != nil {
		h.internalError(c, "error issuing session", err)
		return
	}
	resp.Token = token
	resp.ExpiresAt = &expires
	c.JSON(http.StatusOK, resp)
}

// UploadImage handles POST /admin/images with a multipart "file" field.
func (h *Handler) UploadImage(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		badRequest(c, "file is required")
		return
	}
	f, err := fh.Open()
	if err != nil {
		badRequest(c, "file is unreadable")
		return
	}
	defer f.Close()

	uri, err := h.images(f)
	if err != nil {
		switch {
		case errors.Is(err, imaging.ErrTooLarge):
			errorResponse(c, "IMAGE_TOO_LARGE", err.Error(), http.StatusRequestEntityTooLarge)
		case errors.Is(err, imaging.ErrEmptyImage), errors.Is(err, imaging.ErrUnsupportedImage):
			badRequest(c, err.Error())
		default:
			h.internalError(c, "error processing image", err)
		}
		return
	}
	c.JSON(http.StatusOK, dashboardModel.ImageResponse{DataURI: uri})
}

func confirmed(c *gin.Context) admin.Confirmer {
	return admin.Confirmed(strings.EqualFold(c.Query("confirm"), "true"))
}

// DeleteTournament handles DELETE /admin/tournaments/:id.
func (h *Handler) DeleteTournament(c *gin.Context) {
	h.respond(c, "tournament")(h.service.DeleteTournament(c.Request.Context(), confirmed(c), c.Param("id")))
}

// DeleteTeam handles DELETE /admin/teams/:id.
func (h *Handler) DeleteTeam(c *gin.Context) {
	h.respond(c, "team")(h.service.DeleteTeam(c.Request.Context(), confirmed(c), c.Param("id")))
}

// DeletePlayer handles DELETE /admin/players/:id.
func (h *Handler) DeletePlayer(c *gin.Context) {
	h.respond(c, "player")(h.service.DeletePlayer(c.Request.Context(), confirmed(c), c.Param("id")))
}

// DeleteMatch handles DELETE /admin/matches/:id.
func (h *Handler) DeleteMatch(c *gin.Context) {
	h.respond(c, "match")(h.service.DeleteMatch(c.Request.Context(), confirmed(c), c.Param("id")))
}

// DeleteStanding handles DELETE /admin/standings/:team_id/:category.
func (h *Handler) DeleteStanding(c *gin.Context) {
	h.respond(c, "standing")(h.service.DeleteStanding(c.Request.Context(), confirmed(c), c.Param("team_id"), c.Param("category")))
}

// DeleteBlogPost handles DELETE /admin/blogs/:id.
func (h *Handler) DeleteBlogPost(c *gin.Context) {
	h.respond(c, "blog post")(h.service.DeleteBlogPost(c.Request.Context(), confirmed(c), c.Param("id")))
}

// DeleteComment handles DELETE /admin/comments/:id.
func (h *Handler) DeleteComment(c *gin.Context) {
	h.respond(c, "comment")(h.service.DeleteComment(c.Request.Context(), confirmed(c), c.Param("id")))
}

// DeleteAdmin handles DELETE /admin/admins/:email.
func (h *Handler) DeleteAdmin(c *gin.Context) {
	email := c.Param("email")
	if s, ok := middleware.SessionFrom(c); ok && strings.EqualFold(strings.TrimSpace(email), s.Email) {
		badRequest(c, dashboardModel.ErrSelfDelete.Error())
		return
	}
	h.respond(c, "admin")(h.service.DeleteAdmin(c.Request.Context(), confirmed(c), email))
}

// respond writes an orchestrator result: validation errors are 400, an
// unconfirmed delete is 400, a backend rejection is 502 carrying the outcome.
func (h *Handler) respond(c *gin.Context, entity string) func(admin.Outcome, error) {
	return func(out admin.Outcome, err error) {
		switch {
		case err != nil && model.IsValidation(err):
			badRequest(c, err.Error())
		case err != nil:
			h.internalError(c, "error handling "+entity, err)
		case out.Skipped:
			errorResponse(c, "CONFIRMATION_REQUIRED", out.Status, http.StatusBadRequest)
		case !out.Saved:
			resp := dashboardModel.OutcomeError{Outcome: out}
			resp.Error.Code = "BACKEND_ERROR"
			resp.Error.Message = out.Status
			c.JSON(http.StatusBadGateway, resp)
		default:
			c.JSON(http.StatusOK, out)
		}
	}
}

func (h *Handler) internalError(c *gin.Context, msg string, err error) {
	h.logger.Errorw(msg, "error", err, "request_id", middleware.RequestIDFrom(c))
	errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
}

func bind(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		badRequest(c, "invalid request body")
		return false
	}
	return true
}

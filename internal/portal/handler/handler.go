// Package handler provides HTTP handlers for the public portal.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/tournament_portal/internal/model"
	portalModel "github.com/festy23/tournament_portal/internal/portal/model"
	"github.com/festy23/tournament_portal/internal/portal/service"
	"github.com/festy23/tournament_portal/internal/referee"
)

// Handler handles HTTP requests for portal endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new portal handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Home handles GET /api/home.
func (h *Handler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Home(c.Request.Context()))
}

// Teams handles GET /api/teams.
func (h *Handler) Teams(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"teams": h.service.Teams(c.Request.Context())})
}

// Tournaments handles GET /api/tournaments.
func (h *Handler) Tournaments(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tournaments": h.service.Tournaments(c.Request.Context())})
}

// Matches handles GET /api/matches?status=&sport=.
func (h *Handler) Matches(c *gin.Context) {
	filter, err := portalModel.ParseMatchFilter(c.Query("status"), c.Query("sport"))
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"matches": h.service.Matches(c.Request.Context(), filter)})
}

// Players handles GET /api/players?team_id=.
func (h *Handler) Players(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"players": h.service.Players(c.Request.Context(), c.Query("team_id"))})
}

// Standings handles GET /api/standings?category=.
func (h *Handler) Standings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"standings": h.service.Standings(c.Request.Context(), c.Query("category"))})
}

// Blogs handles GET /api/blogs.
func (h *Handler) Blogs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"blogs": h.service.Blogs(c.Request.Context())})
}

// Comments handles GET /api/blogs/:id/comments.
func (h *Handler) Comments(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"comments": h.service.Comments(c.Request.Context(), c.Param("id"))})
}

// AddComment handles POST /api/blogs/:id/comments.
func (h *Handler) AddComment(c *gin.Context) {
	var req portalModel.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	out, err := h.service.AddComment(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if model.IsValidation(err) {
			badRequest(c, err.Error())
			return
		}
		h.logger.Errorw("error adding comment", "blog_id", c.Param("id"), "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}
	if !out.Saved {
		errorResponse(c, "BACKEND_ERROR", out.Status, http.StatusBadGateway)
		return
	}
	c.JSON(http.StatusCreated, out)
}

// Rules handles GET /api/rules.
func (h *Handler) Rules(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Rules(c.Request.Context()))
}

// AskReferee handles POST /api/referee.
func (h *Handler) AskReferee(c *gin.Context) {
	var req portalModel.RefereeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	resp, err := h.service.AskReferee(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, referee.ErrEmptyQuestion) {
			badRequest(c, err.Error())
			return
		}
		h.logger.Errorw("error asking referee", "sport", req.Sport, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Package handler provides HTTP handlers for the reference backend.
package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/tournament_portal/internal/middleware"
	sheetModel "github.com/festy23/tournament_portal/internal/sheet/model"
)

const maxBodySize = 16 << 20

// Service is the action dispatcher as seen by the handler.
type Service interface {
	Exec(ctx context.Context, p sheetModel.Params) sheetModel.Response
	Photo(ctx context.Context, id string) (*sheetModel.Photo, error)
}

// Handler handles HTTP requests for the action endpoint.
type Handler struct {
	service Service
	logger  *zap.SugaredLogger
}

// New creates a new handler instance.
func New(svc Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Exec handles POST /exec. The body is JSON whatever the Content-Type says;
// callers send text/plain. Domain failures are 200 with success=false.
func (h *Handler) Exec(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodySize))
	if err != nil {
		errorResponse(c, "INVALID_REQUEST", "unreadable request body", http.StatusBadRequest)
		return
	}

	p, err := sheetModel.ParseParams(body)
	if err != nil {
		errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		return
	}

	c.Set(middleware.ActionKey, p.Action())
	c.JSON(http.StatusOK, h.service.Exec(c.Request.Context(), p))
}

// Photo handles GET /photos/:id.
func (h *Handler) Photo(c *gin.Context) {
	photo, err := h.service.Photo(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, sheetModel.ErrNotFound) {
			errorResponse(c, "NOT_FOUND", "photo not found", http.StatusNotFound)
			return
		}
		h.logger.Errorw("error loading photo", "error", err, "photo_id", c.Param("id"))
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}
	c.Header("Cache-Control", "public, max-age=86400, immutable")
	c.Data(http.StatusOK, photo.ContentType, photo.Data)
}

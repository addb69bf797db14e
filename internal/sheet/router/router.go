// Package router provides reference backend routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/tournament_portal/internal/sheet/handler"
)

// RegisterRoutes registers the action endpoint and photo downloads.
func RegisterRoutes(r gin.IRouter, svc handler.Service, logger *zap.SugaredLogger) {
	h := handler.New(svc, logger)

	r.POST("/exec", h.Exec)
	r.GET("/photos/:id", h.Photo)
}

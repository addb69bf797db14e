// Package router provides portal routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/tournament_portal/internal/portal/handler"
	"github.com/festy23/tournament_portal/internal/portal/service"
	"github.com/festy23/tournament_portal/internal/referee"
)

// RegisterRoutes registers the public portal routes under /api.
func RegisterRoutes(r gin.IRouter, repo service.Reader, commenter service.Commenter, assistant referee.Assistant, logger *zap.SugaredLogger) {
	svc := service.New(repo, commenter, assistant, logger)
	h := handler.New(svc, logger)

	api := r.Group("/api")
	api.GET("/home", h.Home)
	api.GET("/teams", h.Teams)
	api.GET("/tournaments", h.Tournaments)
	api.GET("/matches", h.Matches)
	api.GET("/players", h.Players)
	api.GET("/standings", h.Standings)
	api.GET("/blogs", h.Blogs)
	api.GET("/blogs/:id/comments", h.Comments)
	api.POST("/blogs/:id/comments", h.AddComment)
	api.GET("/rules", h.Rules)
	api.POST("/referee", h.AskReferee)
}

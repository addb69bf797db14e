// Package router provides dashboard routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/tournament_portal/internal/dashboard/handler"
	"github.com/festy23/tournament_portal/internal/middleware"
)

// Sessions issues and verifies dashboard session tokens.
type Sessions interface {
	handler.Sessions
	middleware.TokenParser
}

// RegisterRoutes registers the dashboard routes under /admin. Everything
// but login needs a session; everything but logout and the password change
// also needs the forced password change to be done.
func RegisterRoutes(r gin.IRouter, svc handler.Service, sessions Sessions, logger *zap.SugaredLogger) {
	h := handler.New(svc, sessions, nil, logger)

	r.POST("/admin/login", h.Login)

	authed := r.Group("/admin", middleware.RequireSession(sessions, logger))
	authed.POST("/logout", h.Logout)
	authed.POST("/password", h.ChangePassword)

	g := authed.Group("", middleware.RequirePasswordChanged())
	g.GET("/data", h.Data)
	g.POST("/reload", h.Reload)

	g.POST("/tournaments", h.SaveTournament)
	g.POST("/teams", h.SaveTeam)
	g.POST("/players", h.SavePlayer)
	g.POST("/matches", h.SaveMatch)
	g.POST("/blogs", h.SaveBlogPost)
	g.PUT("/rules", h.SaveRules)
	g.POST("/images", h.UploadImage)

	g.DELETE("/tournaments/:id", h.DeleteTournament)
	g.DELETE("/teams/:id", h.DeleteTeam)
	g.DELETE("/players/:id", h.DeletePlayer)
	g.DELETE("/matches/:id", h.DeleteMatch)
	g.DELETE("/standings/:team_id/:category", h.DeleteStanding)
	g.DELETE("/blogs/:id", h.DeleteBlogPost)
	g.DELETE("/comments/:id", h.DeleteComment)

	g.POST("/admins", h.CreateAdmin)
	g.DELETE("/admins/:email", h.DeleteAdmin)
}

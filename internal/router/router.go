package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ReserveGraves(c *ginext.Context)
	ReleaseGrave(c *ginext.Context)
	ListGraves(c *ginext.Context)
	GetGrave(c *ginext.Context)
	GraveStats(c *ginext.Context)
	CreateMember(c *ginext.Context)
	ListMembers(c *ginext.Context)
}

// InitRouter registers the API. limit guards the mutating grave endpoints.
func InitRouter(mode string, h Handler, limit ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Graves
		graves := api.Group("/graves")
		graves.GET("", h.ListGraves)
		graves.GET("/stats", h.GraveStats)
		graves.GET("/:letter/:number", h.GetGrave)
		graves.POST("/reserve", limit, h.ReserveGraves)
		graves.POST("/release/:id", limit, h.ReleaseGrave)

		// Members
		api.POST("/members", h.CreateMember)
		api.GET("/members", h.ListMembers)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}

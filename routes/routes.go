package routes

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/careconnect/charityevents-api/controllers"
	"github.com/careconnect/charityevents-api/discovery"
	"github.com/careconnect/charityevents-api/store"
)

func SetupRoutes(r *gin.Engine, svc *discovery.Service, st store.Store, log *slog.Logger) {
	r.GET("/healthz", controllers.Health(st))

	api := r.Group("/api")
	{
		api.GET("/events", controllers.ListEvents(svc, log))
		api.GET("/events/search", controllers.SearchEvents(svc, log))
		api.GET("/events/:id", controllers.GetEvent(svc, log))
		api.GET("/categories", controllers.ListCategories(svc, log))
	}

	// Administrative write path. Authentication is out of scope; these
	// routes are expected to sit behind a trusted gateway.
	admin := api.Group("/admin")
	{
		admin.POST("/events", controllers.CreateEvent(st, log))
		admin.PATCH("/events/:id", controllers.UpdateEvent(st, log))
		admin.DELETE("/events/:id", controllers.DeleteEvent(st, log))
		admin.PATCH("/events/:id/pause", controllers.SetEventActive(st, log, false))
		admin.PATCH("/events/:id/resume", controllers.SetEventActive(st, log, true))
	}
}

package httptransport

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/irohit373/AlignTODO/internal/identity"
	"github.com/irohit373/AlignTODO/internal/transport/http/handler"
	"github.com/irohit373/AlignTODO/internal/transport/http/middleware"

	sloggin "github.com/samber/slog-gin"
)

func NewRouter(logger *slog.Logger, im *identity.Manager, authHandler *handler.AuthHandler, taskHandler *handler.TaskHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Security())
	r.Use(sloggin.New(logger))
	r.Use(middleware.Metrics())

	// Pages, all behind the gate. The gate decides per path; mounting it
	// on the whole group keeps the matrix in one place.
	pages := handler.NewPageHandler()
	pageGate := middleware.PageGate(im)
	r.GET("/", pageGate, pages.Home)
	r.GET("/login", pageGate, pages.Login)
	r.GET("/register", pageGate, pages.Register)
	r.GET("/dashboard", pageGate, pages.Dashboard)
	r.GET("/dashboard/*rest", pageGate, pages.Dashboard)

	// Auth API — reachable without a session.
	auth := r.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)

	// Task API — its own trust boundary, independent of the page gate.
	tasks := r.Group("/tasks", middleware.Session(im))
	tasks.GET("", taskHandler.List)
	tasks.POST("", taskHandler.Create)
	tasks.PATCH("/:id", taskHandler.Update)
	tasks.DELETE("/:id", taskHandler.Delete)

	return r
}

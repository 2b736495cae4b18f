package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	apierrors "github.com/yukikurage/pharmacy-tasks/internal/errors"
	"github.com/yukikurage/pharmacy-tasks/internal/handlers"
	"github.com/yukikurage/pharmacy-tasks/internal/middleware"
	"github.com/yukikurage/pharmacy-tasks/internal/web"
)

// Dependencies wires the handlers into the router
type Dependencies struct {
	Pages  *handlers.PageHandler
	Health *handlers.HealthHandler
	Logger zerolog.Logger
}

// SetupRoutes builds the gin engine with templates, middleware and all routes
func SetupRoutes(deps Dependencies) (*gin.Engine, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.RedirectTrailingSlash = true

	// Recovery runs innermost so the logger and metrics see the 500
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.Recovery(deps.Logger))

	// Ambient endpoints
	r.GET("/health", deps.Health.Liveness)
	r.GET("/health/ready", deps.Health.Readiness)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Pages
	r.GET("/", deps.Pages.Home)
	r.GET("/tasks/", deps.Pages.TaskList)
	r.GET("/pharmacies/", deps.Pages.PharmacyList)
	r.GET("/tasks/:id/", deps.Pages.TaskDetail)

	r.NoRoute(func(c *gin.Context) {
		apierrors.NotFound(c, "")
	})

	return r, nil
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"countdown-timer/internal/handler/api"
	"countdown-timer/internal/handler/middleware"
	"countdown-timer/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, timerHandler *api.TimerHandler, suggestionHandler *api.SuggestionHandler) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, timerHandler, suggestionHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	// shop is resolved before logging so request logs carry it
	engine.Use(middleware.ShopResolver(cfg.Shop.Default))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, timerHandler *api.TimerHandler, suggestionHandler *api.SuggestionHandler) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		timers := apiGroup.Group("/timers")
		{
			addRoutes(timers, []route{
				{Method: http.MethodPost, Path: "", Handler: timerHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: timerHandler.List},
				{Method: http.MethodGet, Path: "/active", Handler: timerHandler.Active},
				{Method: http.MethodPost, Path: "/:id/impression", Handler: timerHandler.Impression},
			})
		}

		ai := apiGroup.Group("/ai")
		{
			addRoutes(ai, []route{
				{Method: http.MethodPost, Path: "/suggest-timer", Handler: suggestionHandler.Suggest},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}

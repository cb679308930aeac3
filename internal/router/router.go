package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stemsi/exam-site-backend/internal/config"
	"github.com/stemsi/exam-site-backend/internal/handler"
	"github.com/stemsi/exam-site-backend/internal/middleware"
	"github.com/stemsi/exam-site-backend/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Quiz   *handler.QuizHandler
	System *handler.SystemHandler
}

// SetupRouter configures all Gin routes with appropriate middlewares.
// limiter may be nil to disable rate limiting.
func SetupRouter(
	handlers *Handlers,
	limiter middleware.Limiter,
	cfg *config.Config,
	log zerolog.Logger,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// Forwarding headers are only believed from configured proxies; with
	// none configured ClientIP is the socket peer, which keys the rate limit.
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		log.Warn().Err(err).Strs("trusted_proxies", cfg.TrustedProxies).Msg("invalid trusted proxies, trusting none")
		_ = router.SetTrustedProxies(nil)
	}

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so the quiz front end works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	router.Use(response.RequestIDMiddleware())
	router.Use(middleware.Brotli())

	router.NoRoute(func(c *gin.Context) {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	})

	// Liveness and health.
	router.GET("/", handlers.System.Root)
	router.GET("/health", handlers.System.Health)

	// ─── Quiz API ──────────────────────────────────────────────────────
	api := router.Group("/api")
	api.Use(middleware.NoStore())
	if limiter != nil {
		api.Use(middleware.RateLimit(limiter, log))
	}
	{
		api.GET("/categories", handlers.Quiz.ListCategories)
		api.GET("/questions", handlers.Quiz.ListQuestions)
	}

	return router
}

package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stemsi/exam-site-backend/internal/response"
)

// LivenessMessage is the plain-text body of GET /.
const LivenessMessage = "バックエンドサーバー稼働中！"

const healthTimeout = 2 * time.Second

// SystemHandler serves liveness and health endpoints.
type SystemHandler struct {
	rdb       *redis.Client
	startTime time.Time
	log       zerolog.Logger
}

// NewSystemHandler creates a SystemHandler. rdb may be nil.
func NewSystemHandler(rdb *redis.Client, log zerolog.Logger) *SystemHandler {
	return &SystemHandler{
		rdb:       rdb,
		startTime: time.Now(),
		log:       log.With().Str("component", "system_handler").Logger(),
	}
}

// Root godoc
// GET /
func (h *SystemHandler) Root(c *gin.Context) {
	response.Text(c, http.StatusOK, LivenessMessage)
}

// Health godoc
// GET /health
// Reports uptime and, when configured, Redis reachability. Redis being down
// only degrades rate limiting, so the status stays 200.
func (h *SystemHandler) Health(c *gin.Context) {
	body := gin.H{
		"status": "ok",
		"uptime": time.Since(h.startTime).Truncate(time.Second).String(),
	}

	if h.rdb != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()
		if err := h.rdb.Ping(ctx).Err(); err != nil {
			h.log.Warn().Err(err).Msg("redis ping failed")
			body["redis"] = "down"
		} else {
			body["redis"] = "up"
		}
	}

	response.Success(c, http.StatusOK, body)
}

package handler

import (
	"context"
	"net/http"
	"time"

	"healthcare-admin-portal/pkg/response"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const healthCheckTimeout = 2 * time.Second

type HealthHandler struct {
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewHealthHandler(redisClient *redis.Client, log *logrus.Logger) *HealthHandler {
	return &HealthHandler{
		redisClient: redisClient,
		log:         log,
	}
}

// Check reports the portal and its page-state store. The gateway is not
// probed.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	if err := h.redisClient.Ping(ctx).Err(); err != nil {
		h.log.Warnf("Health check: redis unavailable: %+v", err)
		response.Error(w, http.StatusServiceUnavailable, "Page state store unavailable", map[string]string{"redis": "down"})
		return
	}

	response.Success(w, http.StatusOK, "ok", map[string]string{"redis": "up"})
}

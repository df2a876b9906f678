package handlers

import (
	"net/http"

	"fieldcal/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthHandler pings the backing stores on demand.
type HealthHandler struct {
	Redis *redis.Client
	Mongo *mongo.Client
}

func (h *HealthHandler) Check(c *gin.Context) {
	status := utils.CheckHealth(c.Request.Context(), h.Redis, h.Mongo)
	code := http.StatusOK
	if !status.Healthy() {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{"status": status})
}

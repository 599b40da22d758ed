package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"village-admin-service/internal/domain/services/container"
	"village-admin-service/pkg/logger"
)

// HealthController answers liveness and readiness probes
type HealthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewHealthController creates a new health controller
func NewHealthController(ctx *gin.Context, container *container.ServiceContainer) *HealthController {
	return &HealthController{
		Ctx:       ctx,
		Container: container,
	}
}

// Ping answers liveness probes
// @Summary      Ping
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /ping [get]
func (c *HealthController) Ping() {
	c.Ctx.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// Health reports readiness, including database connectivity
// @Summary      Health check
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      503  {object}  map[string]interface{}
// @Router       /health [get]
func (c *HealthController) Health() {
	status := "ok"
	httpStatus := http.StatusOK

	sqlDB, err := c.Container.GetDB().DB()
	if err == nil {
		ctx, cancel := context.WithTimeout(c.Ctx.Request.Context(), 2*time.Second)
		defer cancel()
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		logger.Error("health check database ping failed: %v", err)
		status = "unavailable"
		httpStatus = http.StatusServiceUnavailable
	}

	c.Ctx.JSON(httpStatus, gin.H{
		"status":    status,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HandleHealthFunc returns a gin handler dispatching to the named method
func HandleHealthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHealthController(ctx, container)

		switch method {
		case "ping":
			controller.Ping()
		case "health":
			controller.Health()
		}
	}
}

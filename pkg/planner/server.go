package planner

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"weddingplanner/delivery/rest"
)

// RegisterRoutes registers the planner's HTTP routes with the provided Gin engine.
// The routes will be mounted under the configured RoutePrefix.
func (p *Planner) RegisterRoutes(engine *gin.Engine) error {
	if engine == nil {
		return fmt.Errorf("engine cannot be nil")
	}

	group := engine.Group(p.config.RoutePrefix)
	group.GET("/health", p.healthCheckHandler)

	rest.NewHandler(p.checklist, p.venues, p.auth, p.logger.Named("rest")).Register(group)
	if p.hub != nil {
		group.GET("/checklist/stream", p.hub.HandleWebSocket)
	}

	p.logger.Info("Routes registered successfully",
		zap.String("prefix", p.config.RoutePrefix),
		zap.Bool("stream", p.hub != nil),
	)
	return nil
}

// healthCheckHandler returns the health status of the planner
func (p *Planner) healthCheckHandler(c *gin.Context) {
	status := p.HealthCheck(c.Request.Context())

	httpStatus := http.StatusOK
	if status.Status != "healthy" {
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, status)
}

package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"weddingplanner/auth"
	"weddingplanner/checklist"
	"weddingplanner/delivery/rest/response"
	"weddingplanner/domain"
	"weddingplanner/venue"
)

// SessionHeader carries the session token issued by register and login
const SessionHeader = "X-Session-Token"

// Handler handles HTTP requests
type Handler struct {
	checklist *checklist.Service
	venues    *venue.Service
	auth      *auth.Service
	logger    *zap.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(cs *checklist.Service, vs *venue.Service, as *auth.Service, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		checklist: cs,
		venues:    vs,
		auth:      as,
		logger:    logger,
	}
}

// Register mounts every API route on rg
func (h *Handler) Register(rg *gin.RouterGroup) {
	cl := rg.Group("/checklist")
	{
		cl.GET("", h.SearchChecklist)
		cl.POST("", h.CreateTask)
		cl.GET("/categories", h.ListCategories)
		cl.GET("/stats", h.GetStats)
		cl.GET("/:id", h.GetTask)
		cl.PUT("/:id", h.UpdateTask)
		cl.DELETE("/:id", h.DeleteTask)
		cl.POST("/:id/toggle", h.ToggleTask)
	}

	v := rg.Group("/venues")
	{
		v.GET("", h.SearchVenues)
		v.GET("/regions", h.ListRegions)
		v.GET("/:id", h.GetVenue)
	}

	a := rg.Group("/auth")
	{
		a.POST("/register", h.RegisterUser)
		a.POST("/login", h.Login)
		a.POST("/logout", h.Logout)
		a.GET("/me", h.Me)
	}
}

// fail writes the error envelope matching err
func (h *Handler) fail(c *gin.Context, err error) {
	status := getStatusCode(err)
	if status == http.StatusInternalServerError {
		response.Error(c, err)
		return
	}
	response.Error(c, response.NewError(errorCode(status), err.Error(), status))
}

// badRequest reports a binding failure
func badRequest(c *gin.Context, err error) {
	response.ErrorWithMessage(c, http.StatusBadRequest, "invalid_request", err.Error())
}

// getStatusCode maps domain errors to HTTP status codes
func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrBadParamInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func errorCode(status int) string {
	switch status {
	case http.StatusNotFound:
		return "not_found"
	case http.StatusConflict:
		return "conflict"
	case http.StatusBadRequest:
		return "validation_error"
	case http.StatusUnauthorized:
		return "unauthorized"
	default:
		return "internal_error"
	}
}

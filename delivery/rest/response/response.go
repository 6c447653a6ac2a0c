package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"weddingplanner/infrastructure/logger"
)

// AppError defines the interface for application errors
type AppError interface {
	error
	Code() string
	HTTPStatus() int
}

// HTTPError implements AppError interface for HTTP errors
type HTTPError struct {
	code       string
	message    string
	httpStatus int
}

// NewError creates a new HTTPError
func NewError(code string, message string, httpStatus int) *HTTPError {
	return &HTTPError{
		code:       code,
		message:    message,
		httpStatus: httpStatus,
	}
}

func (e *HTTPError) Error() string {
	return e.message
}

func (e *HTTPError) Code() string {
	return e.code
}

func (e *HTTPError) HTTPStatus() int {
	return e.httpStatus
}

// Body is the JSON error envelope
type Body struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Common errors
var (
	ErrBadRequest   = NewError("bad_request", "Bad request", http.StatusBadRequest)
	ErrUnauthorized = NewError("unauthorized", "Missing or unknown session", http.StatusUnauthorized)
	ErrNotFound     = NewError("not_found", "Resource not found", http.StatusNotFound)
	ErrInternal     = NewError("internal_error", "Internal server error", http.StatusInternalServerError)
)

// Success sends a successful JSON response with status 200
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends a 201 Created response
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// NoContent sends a 204 No Content response
func NoContent(c *gin.Context) {
	c.AbortWithStatus(http.StatusNoContent)
}

// Error sends an error response. Errors that are not an AppError become a
// generic 500 so internal details never reach the client.
func Error(c *gin.Context, err error) {
	var appErr AppError
	if !errors.As(err, &appErr) {
		logger.Named("http").Error("Unhandled error",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		appErr = ErrInternal
	} else if appErr.HTTPStatus() >= http.StatusInternalServerError {
		logger.Named("http").Error("Request failed",
			zap.String("path", c.Request.URL.Path),
			zap.String("code", appErr.Code()),
			zap.Error(err),
		)
	}

	c.AbortWithStatusJSON(appErr.HTTPStatus(), Body{
		Error:   appErr.Code(),
		Message: appErr.Error(),
	})
}

// ErrorWithMessage sends an error response with a custom message
func ErrorWithMessage(c *gin.Context, httpStatus int, code string, message string) {
	c.AbortWithStatusJSON(httpStatus, Body{Error: code, Message: message})
}

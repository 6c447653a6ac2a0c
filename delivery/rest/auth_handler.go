package rest

import (
	"github.com/gin-gonic/gin"

	"weddingplanner/delivery/rest/dto"
	"weddingplanner/delivery/rest/response"
)

// RegisterUser handles POST /api/v1/auth/register
func (h *Handler) RegisterUser(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	session, err := h.auth.Register(c.Request.Context(), req.Email, req.PhoneNumber, req.Name)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.Header(SessionHeader, session.Token)
	response.Created(c, session)
}

// Login handles POST /api/v1/auth/login
func (h *Handler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	session, err := h.auth.Login(c.Request.Context(), req.Email)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.Header(SessionHeader, session.Token)
	response.Success(c, session)
}

// Logout handles POST /api/v1/auth/logout
func (h *Handler) Logout(c *gin.Context) {
	token := c.GetHeader(SessionHeader)
	if token == "" {
		response.Error(c, response.ErrUnauthorized)
		return
	}

	if err := h.auth.Logout(c.Request.Context(), token); err != nil {
		h.fail(c, err)
		return
	}

	response.NoContent(c)
}

// Me handles GET /api/v1/auth/me
func (h *Handler) Me(c *gin.Context) {
	token := c.GetHeader(SessionHeader)
	if token == "" {
		response.Error(c, response.ErrUnauthorized)
		return
	}

	user, err := h.auth.Current(c.Request.Context(), token)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, user)
}

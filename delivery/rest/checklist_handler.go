package rest

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"weddingplanner/delivery/rest/dto"
	"weddingplanner/delivery/rest/response"
)

// SearchChecklist handles GET /api/v1/checklist
func (h *Handler) SearchChecklist(c *gin.Context) {
	var query dto.ChecklistQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		badRequest(c, err)
		return
	}

	st, err := h.checklist.Search(c.Request.Context(), query.Query, query.Category)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, dto.NewChecklistResponse(st))
}

// CreateTask handles POST /api/v1/checklist
func (h *Handler) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	task, err := h.checklist.Add(c.Request.Context(), req.ToInput())
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Created(c, task)
}

// GetTask handles GET /api/v1/checklist/:id
func (h *Handler) GetTask(c *gin.Context) {
	task, err := h.checklist.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, task)
}

// UpdateTask handles PUT /api/v1/checklist/:id
func (h *Handler) UpdateTask(c *gin.Context) {
	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	task, err := h.checklist.Update(c.Request.Context(), req.ToModel(c.Param("id")))
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, task)
}

// ToggleTask handles POST /api/v1/checklist/:id/toggle
func (h *Handler) ToggleTask(c *gin.Context) {
	task, err := h.checklist.Toggle(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, task)
}

// DeleteTask handles DELETE /api/v1/checklist/:id
func (h *Handler) DeleteTask(c *gin.Context) {
	id := c.Param("id")
	if err := h.checklist.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}

	h.logger.Debug("Task removed via API", zap.String("task_id", id))
	response.NoContent(c)
}

// ListCategories handles GET /api/v1/checklist/categories
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.checklist.Categories(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, dto.CategoriesResponse{Categories: categories})
}

// GetStats handles GET /api/v1/checklist/stats
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.checklist.Stats(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, dto.NewStatsResponse(stats))
}

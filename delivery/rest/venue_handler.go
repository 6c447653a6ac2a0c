package rest

import (
	"github.com/gin-gonic/gin"

	"weddingplanner/delivery/rest/dto"
	"weddingplanner/delivery/rest/response"
)

// SearchVenues handles GET /api/v1/venues
func (h *Handler) SearchVenues(c *gin.Context) {
	var query dto.VenueQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		badRequest(c, err)
		return
	}

	st, err := h.venues.Browse(c.Request.Context(), query.ToCriteria())
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, dto.NewVenueListResponse(st))
}

// ListRegions handles GET /api/v1/venues/regions
func (h *Handler) ListRegions(c *gin.Context) {
	regions, err := h.venues.Regions(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, dto.RegionsResponse{Regions: regions})
}

// GetVenue handles GET /api/v1/venues/:id
func (h *Handler) GetVenue(c *gin.Context) {
	v, err := h.venues.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, v)
}

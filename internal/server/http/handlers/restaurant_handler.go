package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/foodmarket/internal/domain/model"
	"github.com/polkiloo/foodmarket/internal/server/http/dto"
)

// RestaurantHandler manages restaurant endpoints.
type RestaurantHandler struct {
	facade RestaurantFacade
}

// NewRestaurantHandler constructs RestaurantHandler.
func NewRestaurantHandler(facade RestaurantFacade) *RestaurantHandler {
	return &RestaurantHandler{facade: facade}
}

// Search handles GET /api/restaurants.
func (h *RestaurantHandler) Search(c *gin.Context) {
	var req dto.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		_ = c.Error(err)
		c.Status(http.StatusBadRequest)
		return
	}

	result, err := h.facade.SearchRestaurants(c.Request.Context(), req.SearchQuery(), req.OpenNow)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSearchResponse(result))
}

// Create handles POST /api/restaurants.
func (h *RestaurantHandler) Create(c *gin.Context) {
	var req dto.RestaurantRequest
	if !bindJSON(c, &req) {
		return
	}

	restaurant, err := h.facade.CreateRestaurant(c.Request.Context(), CurrentUserID(c), req.Name, req.OpeningHours)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewRestaurantResponse(*restaurant))
}

// Get handles GET /api/restaurants/:id.
func (h *RestaurantHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	details, err := h.facade.Restaurant(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewRestaurantDetailsResponse(details))
}

// Update handles PUT /api/restaurants/:id.
func (h *RestaurantHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.RestaurantUpdateRequest
	if !bindJSON(c, &req) {
		return
	}

	update := model.RestaurantUpdate{Name: req.Name, OpeningHours: req.OpeningHours}
	restaurant, err := h.facade.UpdateRestaurant(c.Request.Context(), CurrentUserID(c), id, update)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewRestaurantResponse(*restaurant))
}

// Delete handles DELETE /api/restaurants/:id.
func (h *RestaurantHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.facade.DeleteRestaurant(c.Request.Context(), CurrentUserID(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/foodmarket/internal/domain/model"
	"github.com/polkiloo/foodmarket/internal/server/http/dto"
)

// MenuHandler manages menu endpoints nested under a restaurant.
type MenuHandler struct {
	facade MenuFacade
}

// NewMenuHandler constructs MenuHandler.
func NewMenuHandler(facade MenuFacade) *MenuHandler {
	return &MenuHandler{facade: facade}
}

// List handles GET /api/restaurants/:id/menu.
func (h *MenuHandler) List(c *gin.Context) {
	restaurantID, ok := pathID(c, "id")
	if !ok {
		return
	}

	items, err := h.facade.Menu(c.Request.Context(), restaurantID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMenu(items))
}

// Add handles POST /api/restaurants/:id/menu.
func (h *MenuHandler) Add(c *gin.Context) {
	restaurantID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.MenuItemRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.facade.AddMenuItem(c.Request.Context(), CurrentUserID(c), restaurantID, req.Dish, req.Price)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewMenuItemResponse(*item))
}

// Update handles PUT /api/restaurants/:id/menu/:itemID.
func (h *MenuHandler) Update(c *gin.Context) {
	restaurantID, ok := pathID(c, "id")
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemID")
	if !ok {
		return
	}
	var req dto.MenuItemUpdateRequest
	if !bindJSON(c, &req) {
		return
	}

	update := model.MenuItemUpdate{Dish: req.Dish, Price: req.Price}
	item, err := h.facade.UpdateMenuItem(c.Request.Context(), CurrentUserID(c), restaurantID, itemID, update)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMenuItemResponse(*item))
}

// Delete handles DELETE /api/restaurants/:id/menu/:itemID.
func (h *MenuHandler) Delete(c *gin.Context) {
	restaurantID, ok := pathID(c, "id")
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemID")
	if !ok {
		return
	}

	if err := h.facade.DeleteMenuItem(c.Request.Context(), CurrentUserID(c), restaurantID, itemID); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

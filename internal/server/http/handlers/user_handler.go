package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/foodmarket/internal/server/http/dto"
)

// UserHandler serves the caller's own account.
type UserHandler struct {
	users       UserFacade
	restaurants RestaurantFacade
}

// NewUserHandler constructs UserHandler.
func NewUserHandler(users UserFacade, restaurants RestaurantFacade) *UserHandler {
	return &UserHandler{users: users, restaurants: restaurants}
}

// Me handles GET /api/users/me.
func (h *UserHandler) Me(c *gin.Context) {
	user, err := h.users.Profile(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// Deposit handles POST /api/users/me/deposit.
func (h *UserHandler) Deposit(c *gin.Context) {
	var req dto.DepositRequest
	if !bindJSON(c, &req) {
		return
	}

	balance, err := h.users.Deposit(c.Request.Context(), CurrentUserID(c), req.Amount)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BalanceResponse{Balance: balance})
}

// Purchases handles GET /api/users/me/purchases.
func (h *UserHandler) Purchases(c *gin.Context) {
	purchases, err := h.users.Purchases(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	if len(purchases) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	resp := make([]dto.PurchaseResponse, 0, len(purchases))
	for _, p := range purchases {
		resp = append(resp, dto.NewPurchaseResponse(p))
	}
	c.JSON(http.StatusOK, resp)
}

// Restaurants handles GET /api/users/me/restaurants.
func (h *UserHandler) Restaurants(c *gin.Context) {
	owned, err := h.restaurants.OwnedRestaurants(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewRestaurantList(owned))
}

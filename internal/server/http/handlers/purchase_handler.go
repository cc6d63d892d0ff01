package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/polkiloo/foodmarket/internal/server/http/dto"
)

// PurchaseHandler buys menu items and serves receipts.
type PurchaseHandler struct {
	facade PurchaseFacade
}

// NewPurchaseHandler constructs PurchaseHandler.
func NewPurchaseHandler(facade PurchaseFacade) *PurchaseHandler {
	return &PurchaseHandler{facade: facade}
}

// Purchase handles POST /api/purchases.
func (h *PurchaseHandler) Purchase(c *gin.Context) {
	var req dto.PurchaseRequest
	if !bindJSON(c, &req) {
		return
	}

	receipt, err := h.facade.Purchase(c.Request.Context(), CurrentUserID(c), req.Lines())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewReceiptResponse(receipt))
}

// ReceiptQR handles GET /api/purchases/:receiptID/qr.
func (h *PurchaseHandler) ReceiptQR(c *gin.Context) {
	receiptID, err := uuid.Parse(c.Param("receiptID"))
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	png, err := h.facade.ReceiptQR(c.Request.Context(), CurrentUserID(c), receiptID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

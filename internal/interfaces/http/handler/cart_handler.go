package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	app "github.com/Prawin5557/Uzhavar-Connect/internal/application/cart"
)

type CartHandler struct {
	svc *app.Service
}

func NewCartHandler(svc *app.Service) *CartHandler {
	return &CartHandler{svc: svc}
}

// sessionFrom picks the cart key. Logged-in users carry their cart
// across devices; anonymous sessions supply their own ID.
func sessionFrom(c *gin.Context) string {
	if id := c.GetHeader("X-User-ID"); id != "" {
		return id
	}
	return c.GetHeader("X-Session-ID")
}

func (h *CartHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Get(sessionFrom(c)))
}

type addItemRequest struct {
	ProductID string `json:"product_id"`
	Qty       int    `json:"qty"`
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.svc.Add(c.Request.Context(), sessionFrom(c), req.ProductID, req.Qty)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

type changeQtyRequest struct {
	Delta int `json:"delta"`
}

func (h *CartHandler) ChangeQty(c *gin.Context) {
	var req changeQtyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.svc.ChangeQty(c.Request.Context(), sessionFrom(c), c.Param("productId"), req.Delta)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Remove(sessionFrom(c), c.Param("productId")))
}

func (h *CartHandler) Clear(c *gin.Context) {
	h.svc.Clear(sessionFrom(c))
	c.JSON(http.StatusOK, gin.H{"message": "cart cleared"})
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	app "github.com/Prawin5557/Uzhavar-Connect/internal/application/checkout"
	"github.com/Prawin5557/Uzhavar-Connect/internal/domain/order"
	"github.com/Prawin5557/Uzhavar-Connect/internal/domain/user"
)

type OrderHandler struct {
	svc *app.Service
}

func NewOrderHandler(svc *app.Service) *OrderHandler {
	return &OrderHandler{svc: svc}
}

type checkoutRequest struct {
	Delivery      order.Delivery `json:"delivery"`
	PaymentMethod string         `json:"payment_method"`
}

func (h *OrderHandler) Checkout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	o, err := h.svc.Checkout(c.Request.Context(), actorFrom(c), app.CheckoutCommand{
		SessionID:     sessionFrom(c),
		Delivery:      req.Delivery,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, o)
}

// List returns the actor's orders, scoped by their role.
func (h *OrderHandler) List(c *gin.Context) {
	actor := actorFrom(c)

	var orders []order.Order
	var err error
	switch actor.Role {
	case user.RoleSeller:
		orders, err = h.svc.OrdersForSeller(c.Request.Context(), actor)
	default:
		orders, err = h.svc.OrdersForBuyer(c.Request.Context(), actor)
	}
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *OrderHandler) Accept(c *gin.Context)   { h.transition(c, order.ActionAccept) }
func (h *OrderHandler) Reject(c *gin.Context)   { h.transition(c, order.ActionReject) }
func (h *OrderHandler) Cancel(c *gin.Context)   { h.transition(c, order.ActionCancel) }
func (h *OrderHandler) Complete(c *gin.Context) { h.transition(c, order.ActionComplete) }

func (h *OrderHandler) transition(c *gin.Context, action order.Action) {
	o, err := h.svc.Transition(c.Request.Context(), actorFrom(c), c.Param("id"), action)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, o)
}

package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	cartdomain "github.com/Prawin5557/Uzhavar-Connect/internal/domain/cart"
	"github.com/Prawin5557/Uzhavar-Connect/internal/domain/catalog"
	"github.com/Prawin5557/Uzhavar-Connect/internal/domain/order"
	"github.com/Prawin5557/Uzhavar-Connect/internal/domain/payout"
	"github.com/Prawin5557/Uzhavar-Connect/internal/domain/user"
)

// actorFrom reads the caller's identity from request headers. An empty
// actor fails the Authenticated check downstream.
func actorFrom(c *gin.Context) user.Actor {
	role, _ := user.ParseRole(c.GetHeader("X-User-Role"))
	return user.Actor{
		ID:   c.GetHeader("X-User-ID"),
		Role: role,
	}
}

// writeError maps domain errors onto HTTP statuses. Anything unmapped is
// a 500 with a generic body so internals never leak.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, user.ErrUnauthenticated),
		errors.Is(err, user.ErrInvalidPassword):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, user.ErrForbidden),
		errors.Is(err, catalog.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, user.ErrNotFound),
		errors.Is(err, catalog.ErrNotFound),
		errors.Is(err, order.ErrNotFound),
		errors.Is(err, cartdomain.ErrLineNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, order.ErrTransitionRejected):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, user.ErrMissingField),
		errors.Is(err, user.ErrInvalidRole),
		errors.Is(err, user.ErrEmailTaken),
		errors.Is(err, catalog.ErrMissingField),
		errors.Is(err, catalog.ErrInvalidPrice),
		errors.Is(err, catalog.ErrInvalidQuantity),
		errors.Is(err, cartdomain.ErrInvalidQuantity),
		errors.Is(err, cartdomain.ErrOutOfStock),
		errors.Is(err, cartdomain.ErrEmptyCart),
		errors.Is(err, order.ErrMissingField),
		errors.Is(err, order.ErrMissingDelivery),
		errors.Is(err, order.ErrNoItems),
		errors.Is(err, order.ErrUnknownAction),
		errors.Is(err, payout.ErrMissingField),
		errors.Is(err, payout.ErrInvalidAmount),
		errors.Is(err, payout.ErrMissingBankDetails),
		errors.Is(err, payout.ErrInsufficientBalance):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

package router

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Prawin5557/Uzhavar-Connect/internal/interfaces/http/handler"
	"github.com/Prawin5557/Uzhavar-Connect/pkg/metrics"
)

type Handlers struct {
	Auth    *handler.AuthHandler
	Product *handler.ProductHandler
	Cart    *handler.CartHandler
	Order   *handler.OrderHandler
	Report  *handler.ReportHandler
}

func RegisterRoutes(r *gin.Engine, h Handlers, m *metrics.ServerMetrics) {
	if m != nil {
		r.Use(instrument(m))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group("/api")
	{
		api.POST("/signup", h.Auth.Signup)
		api.POST("/login", h.Auth.Login)

		api.GET("/products", h.Product.Browse)
		api.GET("/products/:id", h.Product.Get)
		api.POST("/products", h.Product.Create)
		api.PUT("/products/:id", h.Product.Update)
		api.DELETE("/products/:id", h.Product.Delete)

		api.GET("/cart", h.Cart.Get)
		api.POST("/cart/items", h.Cart.AddItem)
		api.PATCH("/cart/items/:productId", h.Cart.ChangeQty)
		api.DELETE("/cart/items/:productId", h.Cart.RemoveItem)
		api.DELETE("/cart", h.Cart.Clear)

		api.POST("/orders", h.Order.Checkout)
		api.GET("/orders", h.Order.List)
		api.POST("/orders/:id/accept", h.Order.Accept)
		api.POST("/orders/:id/reject", h.Order.Reject)
		api.POST("/orders/:id/cancel", h.Order.Cancel)
		api.POST("/orders/:id/complete", h.Order.Complete)

		api.GET("/sellers/:id/products", h.Product.SellerListing)
		api.GET("/sellers/:id/stats", h.Product.SellerStats)
		api.GET("/sellers/:id/sales", h.Report.Sales)
		api.POST("/sellers/:id/withdrawals", h.Report.Withdraw)
	}
}

// instrument records one counter tick and one latency sample per request,
// labelled by route template so path params don't explode cardinality.
func instrument(m *metrics.ServerMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.Requests.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
		m.LatencyMS.WithLabelValues(route).Observe(float64(time.Since(start).Milliseconds()))
	}
}

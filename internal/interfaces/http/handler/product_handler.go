package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	app "github.com/Prawin5557/Uzhavar-Connect/internal/application/catalog"
	domain "github.com/Prawin5557/Uzhavar-Connect/internal/domain/catalog"
)

type ProductHandler struct {
	svc *app.Service
}

func NewProductHandler(svc *app.Service) *ProductHandler {
	return &ProductHandler{svc: svc}
}

func viewStateFrom(c *gin.Context) domain.ViewState {
	view := domain.ViewState{
		SearchText: c.Query("search"),
		Category:   c.Query("category"),
	}
	switch strings.ToUpper(c.Query("sort")) {
	case string(domain.SortPriceAsc):
		view.Sort = domain.SortPriceAsc
	case string(domain.SortPriceDesc):
		view.Sort = domain.SortPriceDesc
	default:
		view.Sort = domain.SortNone
	}
	return view
}

func (h *ProductHandler) Browse(c *gin.Context) {
	products, err := h.svc.Browse(c.Request.Context(), viewStateFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *ProductHandler) Get(c *gin.Context) {
	p, err := h.svc.Product(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

type productRequest struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Qty      int     `json:"qty"`
	Image    string  `json:"image"`
}

func (r productRequest) input() app.ProductInput {
	return app.ProductInput{
		Name:     r.Name,
		Category: r.Category,
		Price:    r.Price,
		Qty:      r.Qty,
		Image:    r.Image,
	}
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.svc.Create(c.Request.Context(), actorFrom(c), uuid.NewString(), req.input())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, p)
}

func (h *ProductHandler) Update(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.svc.Update(c.Request.Context(), actorFrom(c), c.Param("id"), req.input())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), actorFrom(c), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}

// SellerListing serves the seller's own paginated view plus the
// aggregates shown above it.
func (h *ProductHandler) SellerListing(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	listing, stats, err := h.svc.SellerListing(c.Request.Context(), c.Param("id"), viewStateFrom(c), page)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"listing": listing,
		"stats":   stats,
	})
}

// SellerStats serves the aggregates alone, for dashboards that don't
// need the listing.
func (h *ProductHandler) SellerStats(c *gin.Context) {
	_, stats, err := h.svc.SellerListing(c.Request.Context(), c.Param("id"), domain.ViewState{}, 1)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

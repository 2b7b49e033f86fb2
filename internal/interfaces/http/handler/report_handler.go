package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	app "github.com/Prawin5557/Uzhavar-Connect/internal/application/report"
	"github.com/Prawin5557/Uzhavar-Connect/internal/domain/payout"
)

type ReportHandler struct {
	svc *app.Service
}

func NewReportHandler(svc *app.Service) *ReportHandler {
	return &ReportHandler{svc: svc}
}

func (h *ReportHandler) Sales(c *gin.Context) {
	report, err := h.svc.SalesReport(c.Request.Context(), actorFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

type withdrawRequest struct {
	Amount float64            `json:"amount"`
	Bank   payout.BankAccount `json:"bank"`
}

func (h *ReportHandler) Withdraw(c *gin.Context) {
	var req withdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	w, err := h.svc.RequestWithdrawal(c.Request.Context(), actorFrom(c), app.WithdrawCommand{
		Amount: req.Amount,
		Bank:   req.Bank,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, w)
}

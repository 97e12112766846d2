package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/finpoint/finpoint/internal/domain/errors"
	"github.com/finpoint/finpoint/internal/domain/model"
	"github.com/finpoint/finpoint/internal/server/http/dto"
)

// LedgerHandler manages money ledger endpoints.
type LedgerHandler struct {
	facade LedgerFacade
}

// NewLedgerHandler constructs LedgerHandler.
func NewLedgerHandler(facade LedgerFacade) *LedgerHandler {
	return &LedgerHandler{facade: facade}
}

// Record handles POST /api/user/transactions.
func (h *LedgerHandler) Record(c *gin.Context) {
	userID := CurrentUserID(c)
	var req dto.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	date, err := parseDay(req.Date)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	tx, err := h.facade.RecordTransaction(c.Request.Context(), userID, model.TransactionKind(req.Kind), req.Category, req.Amount, date, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidAmount):
			c.Status(http.StatusUnprocessableEntity)
		case errors.Is(err, domainErrors.ErrInsufficientBalance):
			c.Status(http.StatusPaymentRequired)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, transactionResponse(tx))
}

// List handles GET /api/user/transactions.
func (h *LedgerHandler) List(c *gin.Context) {
	userID := CurrentUserID(c)
	transactions, err := h.facade.Transactions(c.Request.Context(), userID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if len(transactions) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	resp := make([]dto.TransactionResponse, 0, len(transactions))
	for i := range transactions {
		resp = append(resp, transactionResponse(&transactions[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// Balance handles GET /api/user/balance.
func (h *LedgerHandler) Balance(c *gin.Context) {
	userID := CurrentUserID(c)
	summary, err := h.facade.Balances(c.Request.Context(), userID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.BalanceResponse{Balance: summary.Wallet, Points: summary.Points})
}

func transactionResponse(t *model.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:          t.ID,
		Kind:        string(t.Kind),
		Category:    t.Category,
		Amount:      t.Amount,
		Date:        formatDay(t.Date),
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
	}
}

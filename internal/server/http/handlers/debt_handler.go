package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/finpoint/finpoint/internal/domain/errors"
	"github.com/finpoint/finpoint/internal/domain/model"
	"github.com/finpoint/finpoint/internal/server/http/dto"
)

// DebtHandler manages debt note endpoints.
type DebtHandler struct {
	facade DebtFacade
}

// NewDebtHandler constructs DebtHandler.
func NewDebtHandler(facade DebtFacade) *DebtHandler {
	return &DebtHandler{facade: facade}
}

// Create handles POST /api/user/debts.
func (h *DebtHandler) Create(c *gin.Context) {
	userID := CurrentUserID(c)
	var req dto.DebtNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	date, err := parseDay(req.Date)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	var repaymentDate *time.Time
	if req.RepaymentDate != "" {
		parsed, err := parseDay(req.RepaymentDate)
		if err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		repaymentDate = &parsed
	}

	note, err := h.facade.CreateDebtNote(c.Request.Context(), userID, model.DebtType(req.Type), req.Counterparty, req.Amount, date, repaymentDate, req.Description)
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

	c.JSON(http.StatusCreated, debtNoteResponse(note))
}

// Pay handles POST /api/user/debts/:id/payments.
func (h *DebtHandler) Pay(c *gin.Context) {
	userID := CurrentUserID(c)
	noteID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	var req dto.DebtPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	date, err := parseDay(req.Date)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	note, err := h.facade.PayDebt(c.Request.Context(), userID, noteID, req.Amount, date)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrInvalidPaymentAmount), errors.Is(err, domainErrors.ErrInvalidAmount):
			c.Status(http.StatusUnprocessableEntity)
		case errors.Is(err, domainErrors.ErrInsufficientBalance):
			c.Status(http.StatusPaymentRequired)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, debtNoteResponse(note))
}

// Settle handles POST /api/user/debts/settle.
func (h *DebtHandler) Settle(c *gin.Context) {
	userID := CurrentUserID(c)
	var req dto.SettlementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	date, err := parseDay(req.Date)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	notes, err := h.facade.SettleCounterparty(c.Request.Context(), userID, req.Counterparty, req.Amount, date)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidPaymentAmount), errors.Is(err, domainErrors.ErrInvalidAmount):
			c.Status(http.StatusUnprocessableEntity)
		case errors.Is(err, domainErrors.ErrInsufficientBalance):
			c.Status(http.StatusPaymentRequired)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	resp := make([]dto.DebtNoteResponse, 0, len(notes))
	for i := range notes {
		resp = append(resp, debtNoteResponse(&notes[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// List handles GET /api/user/debts.
func (h *DebtHandler) List(c *gin.Context) {
	userID := CurrentUserID(c)
	notes, err := h.facade.Debts(c.Request.Context(), userID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if len(notes) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	resp := make([]dto.DebtNoteResponse, 0, len(notes))
	for i := range notes {
		resp = append(resp, debtNoteResponse(&notes[i]))
	}
	c.JSON(http.StatusOK, resp)
}

func debtNoteResponse(n *model.DebtNote) dto.DebtNoteResponse {
	resp := dto.DebtNoteResponse{
		ID:           n.ID,
		Type:         string(n.Type),
		Counterparty: n.Counterparty,
		Amount:       n.Amount,
		PaidAmount:   n.PaidAmount,
		Status:       string(n.Status),
		Date:         formatDay(n.Date),
		Description:  n.Description,
		CreatedAt:    n.CreatedAt,
	}
	if n.RepaymentDate != nil {
		resp.RepaymentDate = formatDay(*n.RepaymentDate)
	}
	return resp
}

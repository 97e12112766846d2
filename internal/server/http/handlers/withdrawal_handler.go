package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/finpoint/finpoint/internal/domain/errors"
	"github.com/finpoint/finpoint/internal/domain/model"
	"github.com/finpoint/finpoint/internal/server/http/dto"
)

// WithdrawalHandler manages points-to-cash endpoints.
type WithdrawalHandler struct {
	facade WithdrawalFacade
}

// NewWithdrawalHandler constructs WithdrawalHandler.
func NewWithdrawalHandler(facade WithdrawalFacade) *WithdrawalHandler {
	return &WithdrawalHandler{facade: facade}
}

// Request handles POST /api/user/withdrawals.
func (h *WithdrawalHandler) Request(c *gin.Context) {
	userID := CurrentUserID(c)
	var req dto.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	request, err := h.facade.RequestWithdrawal(c.Request.Context(), userID, req.Points, req.Method, req.Account)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidAmount):
			c.Status(http.StatusUnprocessableEntity)
		case errors.Is(err, domainErrors.ErrBelowMinimumThreshold):
			c.Status(http.StatusUnprocessableEntity)
		case errors.Is(err, domainErrors.ErrInsufficientPoints):
			c.Status(http.StatusPaymentRequired)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, withdrawalResponse(request))
}

// Approve handles POST /api/user/withdrawals/:id/approve. Requests owned
// by other users surface as 404.
func (h *WithdrawalHandler) Approve(c *gin.Context) {
	userID := CurrentUserID(c)
	requestID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	request, err := h.facade.ApproveWithdrawal(c.Request.Context(), userID, requestID)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrInvalidTransition):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, withdrawalResponse(request))
}

// Reject handles POST /api/user/withdrawals/:id/reject. Requests owned
// by other users surface as 404.
func (h *WithdrawalHandler) Reject(c *gin.Context) {
	userID := CurrentUserID(c)
	requestID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	var req dto.RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	request, err := h.facade.RejectWithdrawal(c.Request.Context(), userID, requestID, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrInvalidTransition):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, withdrawalResponse(request))
}

// List handles GET /api/user/withdrawals.
func (h *WithdrawalHandler) List(c *gin.Context) {
	userID := CurrentUserID(c)
	requests, err := h.facade.Withdrawals(c.Request.Context(), userID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if len(requests) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	resp := make([]dto.WithdrawalResponse, 0, len(requests))
	for i := range requests {
		resp = append(resp, withdrawalResponse(&requests[i]))
	}
	c.JSON(http.StatusOK, resp)
}

func withdrawalResponse(w *model.WithdrawalRequest) dto.WithdrawalResponse {
	return dto.WithdrawalResponse{
		ID:              w.ID,
		Reference:       w.Reference,
		Status:          string(w.Status),
		Points:          w.Points,
		CashAmount:      w.CashAmount,
		Method:          w.Method,
		Account:         w.Account,
		RequestedAt:     w.RequestedAt,
		ProcessedAt:     w.ProcessedAt,
		RejectionReason: w.RejectionReason,
		Refunded:        w.Refunded,
	}
}

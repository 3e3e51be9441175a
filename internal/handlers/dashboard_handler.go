package handlers

import (
	"errors"
	"net/http"

	"granazap/internal/dto"
	apierrors "granazap/internal/errors"
	"granazap/internal/services"

	"github.com/labstack/echo/v4"
)

// DashboardHandler handles the dashboard load and transaction deletion
type DashboardHandler struct {
	dashboardService services.DashboardServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService services.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetDashboard loads the dashboard for a date range
// @Summary Load dashboard
// @Description Query transactions and daily balances for the range, aggregate totals and build both chart models
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Param startDate query string true "Range start (YYYY-MM-DD)"
// @Param endDate query string true "Range end (YYYY-MM-DD)"
// @Param category query string false "Narrow to one spending category"
// @Success 200 {object} dto.DashboardResponse "Dashboard data"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid dates or VALIDATION_007 - Start after end"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid session"
// @Failure 502 {object} errors.ErrorResponse "UPSTREAM_001 - Automation backend failed"
// @Failure 504 {object} errors.ErrorResponse "UPSTREAM_002 - Automation backend timed out"
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var query dto.DashboardQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(&query); err != nil {
		return err
	}

	response, err := h.dashboardService.LoadDashboard(c.Request().Context(), userID, query)
	if err != nil {
		if errors.Is(err, services.ErrInvalidDateRange) {
			return SendError(c, apierrors.ValidationDateRange)
		}
		return sendUpstreamError(c, err)
	}

	return c.JSON(http.StatusOK, response)
}

// DeleteTransactions forwards a bulk deletion by transaction id
// @Summary Delete transactions
// @Description Forward a bulk deletion to the automation backend; records live upstream
// @Tags Dashboard
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.DeleteTransactionsRequest true "Transaction ids"
// @Success 200 {object} dto.DeleteTransactionsResponse "Deletion forwarded"
// @Failure 400 {object} errors.ErrorResponse "TRANSACTION_001 - No ids provided"
// @Failure 502 {object} errors.ErrorResponse "TRANSACTION_002 - Deletion failed upstream"
// @Router /transactions/delete [post]
func (h *DashboardHandler) DeleteTransactions(c echo.Context) error {
	if _, err := getUserIDFromContext(c); err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.DeleteTransactionsRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.dashboardService.DeleteTransactions(c.Request().Context(), req.IDs); err != nil {
		if errors.Is(err, services.ErrNoTransactionIDs) {
			return SendError(c, apierrors.TransactionNoIDs)
		}
		return SendError(c, apierrors.TransactionDeleteFailed)
	}

	return c.JSON(http.StatusOK, dto.DeleteTransactionsResponse{
		Deleted: len(req.IDs),
		Message: "Transações excluídas com sucesso.",
	})
}

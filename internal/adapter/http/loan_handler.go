package http

import (
	"errors"
	"net/http"
	"strconv"

	customerDomain "credit-approval/internal/domain/customer"
	loanDomain "credit-approval/internal/domain/loan"
	"credit-approval/internal/usecase/loan"

	"github.com/labstack/echo/v4"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	var req loanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	res, err := h.uc.Create(c.Request().Context(), loan.CreateInput{
		CustomerID:   req.CustomerID,
		LoanAmount:   req.LoanAmount,
		InterestRate: req.InterestRate,
		Tenure:       req.Tenure,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "loan creation failed"})
	}
	if res.LoanApproved {
		return c.JSON(http.StatusCreated, res)
	}
	if res.Message == loan.MsgCustomerNotFound {
		return c.JSON(http.StatusNotFound, res)
	}
	// policy rejection or persistence failure: a decision, not a fault
	return c.JSON(http.StatusOK, res)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	loanID := c.Param("loan_id")
	if !ValidLoanID(loanID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan_id"})
	}
	dto, err := h.uc.Get(c.Request().Context(), loanID)
	switch {
	case errors.Is(err, loanDomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Loan not found"})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "loan lookup failed"})
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) ListCustomerLoans(c echo.Context) error {
	customerID, err := strconv.ParseUint(c.Param("customer_id"), 10, 64)
	if err != nil || customerID == 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid customer_id"})
	}
	items, err := h.uc.ListByCustomer(c.Request().Context(), customerID)
	switch {
	case errors.Is(err, customerDomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Customer not found"})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "loan listing failed"})
	}
	return c.JSON(http.StatusOK, items)
}

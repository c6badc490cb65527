package http

import (
	"errors"
	"net/http"

	customerDomain "credit-approval/internal/domain/customer"
	"credit-approval/internal/usecase/eligibility"

	"github.com/labstack/echo/v4"
)

type EligibilityHandler struct{ uc *eligibility.Usecase }

func NewEligibilityHandler(uc *eligibility.Usecase) *EligibilityHandler {
	return &EligibilityHandler{uc: uc}
}

// loanReq is shared by /check-eligibility and /create-loan.
type loanReq struct {
	CustomerID   uint64  `json:"customer_id"   validate:"required"`
	LoanAmount   float64 `json:"loan_amount"   validate:"required,gt=0,dec2"`
	InterestRate float64 `json:"interest_rate" validate:"gte=0,lte=100"`
	Tenure       int     `json:"tenure"        validate:"required,gte=1"`
}

func (h *EligibilityHandler) CheckEligibility(c echo.Context) error {
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

	res, err := h.uc.Check(c.Request().Context(), eligibility.CheckInput{
		CustomerID:   req.CustomerID,
		LoanAmount:   req.LoanAmount,
		InterestRate: req.InterestRate,
		Tenure:       req.Tenure,
	})
	switch {
	case errors.Is(err, customerDomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Customer not found"})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "eligibility check failed"})
	}
	return c.JSON(http.StatusOK, res)
}

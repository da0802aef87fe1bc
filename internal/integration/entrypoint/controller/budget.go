package controller

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/smart-grocery/backend/internal/application/usecase/budget"
	domainerror "github.com/smart-grocery/backend/internal/domain/error"
	"github.com/smart-grocery/backend/internal/integration/entrypoint/dto"
)

// BudgetController handles monthly budget endpoints.
type BudgetController struct {
	setUseCase        *budget.SetBudgetUseCase
	getCurrentUseCase *budget.GetCurrentBudgetUseCase
	getUseCase        *budget.GetBudgetUseCase
	addExpenseUseCase *budget.AddExpenseUseCase
	deleteUseCase     *budget.DeleteBudgetUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	setUseCase *budget.SetBudgetUseCase,
	getCurrentUseCase *budget.GetCurrentBudgetUseCase,
	getUseCase *budget.GetBudgetUseCase,
	addExpenseUseCase *budget.AddExpenseUseCase,
	deleteUseCase *budget.DeleteBudgetUseCase,
) *BudgetController {
	return &BudgetController{
		setUseCase:        setUseCase,
		getCurrentUseCase: getCurrentUseCase,
		getUseCase:        getUseCase,
		addExpenseUseCase: addExpenseUseCase,
		deleteUseCase:     deleteUseCase,
	}
}

// Set handles POST /api/budget requests.
func (c *BudgetController) Set(ctx *gin.Context) {
	var req dto.SetBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingBudgetFields),
		})
		return
	}

	output, err := c.setUseCase.Execute(ctx.Request.Context(), req.ToInput())
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.BudgetMessageResponse{
		Message: "Budget set successfully",
		Budget:  dto.ToBudgetResponse(output.Budget),
	})
}

// GetCurrent handles GET /api/budget requests.
func (c *BudgetController) GetCurrent(ctx *gin.Context) {
	output, err := c.getCurrentUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetResponse(output.Budget))
}

// Get handles GET /api/budget/:year/:month requests.
func (c *BudgetController) Get(ctx *gin.Context) {
	year, ok := c.parseYear(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), budget.GetBudgetInput{
		Month: ctx.Param("month"),
		Year:  year,
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetResponse(output.Budget))
}

// Spend handles PUT /api/budget/spend requests.
func (c *BudgetController) Spend(ctx *gin.Context) {
	var req dto.AddExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingBudgetFields),
		})
		return
	}

	output, err := c.addExpenseUseCase.Execute(ctx.Request.Context(), req.ToInput())
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.BudgetMessageResponse{
		Message: "Expense added successfully",
		Budget:  dto.ToBudgetResponse(output.Budget),
	})
}

// Delete handles DELETE /api/budget/:year/:month requests.
func (c *BudgetController) Delete(ctx *gin.Context) {
	year, ok := c.parseYear(ctx)
	if !ok {
		return
	}
	month := ctx.Param("month")

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), budget.DeleteBudgetInput{
		Month: month,
		Year:  year,
	}); err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: fmt.Sprintf("Budget for %s %d deleted successfully", month, year),
	})
}

func (c *BudgetController) parseYear(ctx *gin.Context) (int, bool) {
	year, err := strconv.Atoi(ctx.Param("year"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Year must be a whole number",
			Code:  string(domainerror.ErrCodeInvalidYear),
		})
		return 0, false
	}
	return year, true
}

// handleBudgetError handles budget errors and returns appropriate HTTP responses.
func (c *BudgetController) handleBudgetError(ctx *gin.Context, err error) {
	var budgetErr *domainerror.BudgetError
	if errors.As(err, &budgetErr) {
		statusCode := c.getStatusCodeForBudgetError(budgetErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: budgetErr.Message,
			Code:  string(budgetErr.Code),
		})
		return
	}

	slog.Error("Budget request failed", "path", ctx.FullPath(), "error", err)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForBudgetError maps budget error codes to HTTP status codes.
func (c *BudgetController) getStatusCodeForBudgetError(code domainerror.BudgetErrorCode) int {
	switch code {
	case domainerror.ErrCodeBudgetNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidTotalBudget,
		domainerror.ErrCodeMissingPeriod,
		domainerror.ErrCodeInvalidMonth,
		domainerror.ErrCodeInvalidYear,
		domainerror.ErrCodePastBudgetPeriod,
		domainerror.ErrCodeInvalidExpense,
		domainerror.ErrCodeMissingBudgetFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

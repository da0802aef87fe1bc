package controller

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smart-grocery/backend/internal/application/usecase/mealplan"
	domainerror "github.com/smart-grocery/backend/internal/domain/error"
	"github.com/smart-grocery/backend/internal/integration/entrypoint/dto"
)

// MealPlanController handles weekly meal plan endpoints.
type MealPlanController struct {
	saveUseCase   *mealplan.SaveMealPlansUseCase
	listUseCase   *mealplan.ListMealPlansUseCase
	getUseCase    *mealplan.GetMealPlanUseCase
	deleteUseCase *mealplan.DeleteMealPlanUseCase
}

// NewMealPlanController creates a new meal plan controller instance.
func NewMealPlanController(
	saveUseCase *mealplan.SaveMealPlansUseCase,
	listUseCase *mealplan.ListMealPlansUseCase,
	getUseCase *mealplan.GetMealPlanUseCase,
	deleteUseCase *mealplan.DeleteMealPlanUseCase,
) *MealPlanController {
	return &MealPlanController{
		saveUseCase:   saveUseCase,
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Save handles POST /api/meals requests. The body must be a JSON array.
func (c *MealPlanController) Save(ctx *gin.Context) {
	var req []dto.MealPlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Request body must be an array of meal plans",
			Code:  string(domainerror.ErrCodeInvalidMealPlanBody),
		})
		return
	}

	output, err := c.saveUseCase.Execute(ctx.Request.Context(), dto.ToSaveMealPlansInput(req))
	if err != nil {
		c.handleMealPlanError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.SaveMealPlansResponse{
		Message: "Meal plan saved successfully",
		Meals:   dto.ToMealPlanListResponse(output.MealPlans),
	})
}

// List handles GET /api/meals requests.
func (c *MealPlanController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleMealPlanError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMealPlanListResponse(output.MealPlans))
}

// Get handles GET /api/meals/:day requests. A day without a plan yields null.
func (c *MealPlanController) Get(ctx *gin.Context) {
	output, err := c.getUseCase.Execute(ctx.Request.Context(), mealplan.GetMealPlanInput{
		Day: ctx.Param("day"),
	})
	if err != nil {
		c.handleMealPlanError(ctx, err)
		return
	}

	if output.MealPlan == nil {
		ctx.JSON(http.StatusOK, nil)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMealPlanResponse(output.MealPlan))
}

// Delete handles DELETE /api/meals/:day requests.
func (c *MealPlanController) Delete(ctx *gin.Context) {
	day := ctx.Param("day")

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), mealplan.DeleteMealPlanInput{Day: day}); err != nil {
		c.handleMealPlanError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: fmt.Sprintf("Meal plan for %s deleted successfully", day),
	})
}

// handleMealPlanError handles meal plan errors and returns appropriate HTTP responses.
func (c *MealPlanController) handleMealPlanError(ctx *gin.Context, err error) {
	var mealErr *domainerror.MealPlanError
	if errors.As(err, &mealErr) {
		statusCode := c.getStatusCodeForMealPlanError(mealErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: mealErr.Message,
			Code:  string(mealErr.Code),
		})
		return
	}

	slog.Error("Meal plan request failed", "path", ctx.FullPath(), "error", err)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForMealPlanError maps meal plan error codes to HTTP status codes.
func (c *MealPlanController) getStatusCodeForMealPlanError(code domainerror.MealPlanErrorCode) int {
	switch code {
	case domainerror.ErrCodeMealPlanNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNoValidMealPlans, domainerror.ErrCodeInvalidMealPlanBody:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/smart-grocery/backend/internal/application/usecase/grocery"
	domainerror "github.com/smart-grocery/backend/internal/domain/error"
	"github.com/smart-grocery/backend/internal/integration/entrypoint/dto"
)

// GroceryController handles grocery inventory endpoints.
type GroceryController struct {
	createUseCase *grocery.CreateGroceryItemUseCase
	listUseCase   *grocery.ListGroceryItemsUseCase
	getUseCase    *grocery.GetGroceryItemUseCase
	updateUseCase *grocery.UpdateGroceryItemUseCase
	deleteUseCase *grocery.DeleteGroceryItemUseCase
}

// NewGroceryController creates a new grocery controller instance.
func NewGroceryController(
	createUseCase *grocery.CreateGroceryItemUseCase,
	listUseCase *grocery.ListGroceryItemsUseCase,
	getUseCase *grocery.GetGroceryItemUseCase,
	updateUseCase *grocery.UpdateGroceryItemUseCase,
	deleteUseCase *grocery.DeleteGroceryItemUseCase,
) *GroceryController {
	return &GroceryController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /api/groceries requests.
func (c *GroceryController) Create(ctx *gin.Context) {
	var req dto.GroceryItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingGroceryField),
		})
		return
	}

	input, err := req.ToCreateInput()
	if err != nil {
		c.invalidExpiryDate(ctx)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGroceryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGroceryItemResponse(output.Item))
}

// List handles GET /api/groceries requests.
func (c *GroceryController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleGroceryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGroceryItemListResponse(output.Items))
}

// Get handles GET /api/groceries/:id requests.
func (c *GroceryController) Get(ctx *gin.Context) {
	itemID, ok := c.parseItemID(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), grocery.GetGroceryItemInput{ItemID: itemID})
	if err != nil {
		c.handleGroceryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGroceryItemResponse(output.Item))
}

// Update handles PUT /api/groceries/:id requests.
func (c *GroceryController) Update(ctx *gin.Context) {
	itemID, ok := c.parseItemID(ctx)
	if !ok {
		return
	}

	var req dto.GroceryItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingGroceryField),
		})
		return
	}

	input, err := req.ToUpdateInput()
	if err != nil {
		c.invalidExpiryDate(ctx)
		return
	}
	input.ItemID = itemID

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGroceryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UpdateGroceryItemResponse{
		Message: "Item updated successfully",
		Item:    dto.ToGroceryItemResponse(output.Item),
	})
}

// Delete handles DELETE /api/groceries/:id requests.
func (c *GroceryController) Delete(ctx *gin.Context) {
	itemID, ok := c.parseItemID(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), grocery.DeleteGroceryItemInput{ItemID: itemID}); err != nil {
		c.handleGroceryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Item deleted successfully",
	})
}

func (c *GroceryController) parseItemID(ctx *gin.Context) (uuid.UUID, bool) {
	itemID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid grocery item ID format",
			Code:  string(domainerror.ErrCodeInvalidGroceryID),
		})
		return uuid.Nil, false
	}
	return itemID, true
}

func (c *GroceryController) invalidExpiryDate(ctx *gin.Context) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Expiry date must be a valid date",
		Code:  string(domainerror.ErrCodeInvalidExpiryDate),
	})
}

// handleGroceryError handles grocery errors and returns appropriate HTTP responses.
func (c *GroceryController) handleGroceryError(ctx *gin.Context, err error) {
	var groceryErr *domainerror.GroceryError
	if errors.As(err, &groceryErr) {
		statusCode := c.getStatusCodeForGroceryError(groceryErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: groceryErr.Message,
			Code:  string(groceryErr.Code),
		})
		return
	}

	slog.Error("Grocery request failed", "path", ctx.FullPath(), "error", err)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForGroceryError maps grocery error codes to HTTP status codes.
func (c *GroceryController) getStatusCodeForGroceryError(code domainerror.GroceryErrorCode) int {
	switch code {
	case domainerror.ErrCodeGroceryItemNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeMissingGroceryField,
		domainerror.ErrCodeGroceryNameTooShort,
		domainerror.ErrCodeGroceryBrandTooShort,
		domainerror.ErrCodeInvalidQuantity,
		domainerror.ErrCodeInvalidPrice,
		domainerror.ErrCodeExpiryNotInFuture,
		domainerror.ErrCodeInvalidExpiryDate,
		domainerror.ErrCodeInvalidGroceryID:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

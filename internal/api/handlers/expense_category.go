package handlers

import (
	"agrimanager-backend/internal/api/response"
	"agrimanager-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ExpenseCategoryHandler handles HTTP requests for expense category operations
type ExpenseCategoryHandler struct {
	categoryService service.ExpenseCategoryServiceInterface
}

// NewExpenseCategoryHandler creates a new expense category handler
func NewExpenseCategoryHandler(categoryService service.ExpenseCategoryServiceInterface) *ExpenseCategoryHandler {
	return &ExpenseCategoryHandler{
		categoryService: categoryService,
	}
}

// CreateExpenseCategory handles POST /expense-categories
// @Summary Create an expense category
// @Description Create an active expense category of the caller's tenant
// @Tags expense-categories
// @Accept json
// @Produce json
// @Param category body service.ExpenseCategoryRequest true "Expense category data"
// @Success 201 {object} response.Envelope{data=service.ExpenseCategoryResponse} "Expense category created"
// @Failure 400 {object} response.Envelope "Invalid request"
// @Failure 401 {object} response.Envelope "Unauthorized"
// @Failure 500 {object} response.Envelope "Internal server error"
// @Security BearerAuth
// @Router /expense-categories [post]
func (h *ExpenseCategoryHandler) CreateExpenseCategory(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	var req service.ExpenseCategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), caller, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Created(c, "Expense category created successfully", category)
}

// ListExpenseCategories handles GET /expense-categories
// @Summary List expense categories
// @Description List every expense category of the caller's tenant, active ones first
// @Tags expense-categories
// @Produce json
// @Success 200 {object} response.Envelope{data=[]service.ExpenseCategoryResponse} "Expense categories"
// @Failure 401 {object} response.Envelope "Unauthorized"
// @Failure 500 {object} response.Envelope "Internal server error"
// @Security BearerAuth
// @Router /expense-categories [get]
func (h *ExpenseCategoryHandler) ListExpenseCategories(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	categories, err := h.categoryService.GetAll(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Expense categories retrieved successfully", categories)
}

// GetExpenseCategory handles GET /expense-categories/:id
// @Summary Get an expense category
// @Description Get one expense category of the caller's tenant
// @Tags expense-categories
// @Produce json
// @Param id path int true "Expense category ID"
// @Success 200 {object} response.Envelope{data=service.ExpenseCategoryResponse} "Expense category"
// @Failure 400 {object} response.Envelope "Invalid id"
// @Failure 404 {object} response.Envelope "Expense category not found"
// @Security BearerAuth
// @Router /expense-categories/{id} [get]
func (h *ExpenseCategoryHandler) GetExpenseCategory(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	category, err := h.categoryService.GetByID(c.Request.Context(), caller, id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Expense category retrieved successfully", category)
}

// UpdateExpenseCategory handles PUT /expense-categories/:id
// @Summary Update an expense category
// @Description Overwrite the editable fields of a expense category of the caller's tenant
// @Tags expense-categories
// @Accept json
// @Produce json
// @Param id path int true "Expense category ID"
// @Param category body service.ExpenseCategoryRequest true "Expense category data"
// @Success 200 {object} response.Envelope{data=service.ExpenseCategoryResponse} "Expense category updated"
// @Failure 400 {object} response.Envelope "Invalid request"
// @Failure 404 {object} response.Envelope "Expense category not found"
// @Security BearerAuth
// @Router /expense-categories/{id} [put]
func (h *ExpenseCategoryHandler) UpdateExpenseCategory(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req service.ExpenseCategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	category, err := h.categoryService.Update(c.Request.Context(), caller, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Expense category updated successfully", category)
}

// DeleteExpenseCategory handles DELETE /expense-categories/:id
// @Summary Delete an expense category
// @Description Delete an expense category of the caller's tenant that no expense uses
// @Tags expense-categories
// @Produce json
// @Param id path int true "Expense category ID"
// @Success 200 {object} response.Envelope "Expense category deleted"
// @Failure 404 {object} response.Envelope "Expense category not found"
// @Failure 409 {object} response.Envelope "Expense category is still in use"
// @Security BearerAuth
// @Router /expense-categories/{id} [delete]
func (h *ExpenseCategoryHandler) DeleteExpenseCategory(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.categoryService.Delete(c.Request.Context(), caller, id); err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Expense category deleted successfully", nil)
}

// ToggleExpenseCategory handles PUT /expense-categories/:id/toggle
// @Summary Toggle an expense category
// @Description Flip whether an expense category of the caller's tenant is active
// @Tags expense-categories
// @Produce json
// @Param id path int true "Expense category ID"
// @Success 200 {object} response.Envelope{data=service.ToggleResponse} "Expense category toggled"
// @Failure 404 {object} response.Envelope "Expense category not found"
// @Security BearerAuth
// @Router /expense-categories/{id}/toggle [put]
func (h *ExpenseCategoryHandler) ToggleExpenseCategory(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	toggled, err := h.categoryService.Toggle(c.Request.Context(), caller, id)
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Expense category deactivated"
	if toggled.IsActive {
		message = "Expense category activated"
	}
	response.OK(c, message, toggled)
}

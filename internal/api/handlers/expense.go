package handlers

import (
	"net/http"

	"agrimanager-backend/internal/api/response"
	"agrimanager-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ExpenseHandler handles HTTP requests for expense operations
type ExpenseHandler struct {
	expenseService service.ExpenseServiceInterface
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(expenseService service.ExpenseServiceInterface) *ExpenseHandler {
	return &ExpenseHandler{
		expenseService: expenseService,
	}
}

// CreateExpense handles POST /expenses
// @Summary Create an expense
// @Description Record an expense against a crop of the caller's tenant
// @Tags expenses
// @Accept json
// @Produce json
// @Param expense body service.ExpenseRequest true "Expense data"
// @Success 201 {object} response.Envelope{data=service.ExpenseResponse} "Expense created"
// @Failure 400 {object} response.Envelope "Invalid request"
// @Failure 401 {object} response.Envelope "Unauthorized"
// @Failure 500 {object} response.Envelope "Internal server error"
// @Security BearerAuth
// @Router /expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	var req service.ExpenseRequest
	if !bindJSON(c, &req) {
		return
	}

	expense, err := h.expenseService.Create(c.Request.Context(), caller, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Created(c, "Expense created successfully", expense)
}

// ListExpenses handles GET /expenses
// @Summary List expenses
// @Description List every expense of the caller's tenant with crop and category names
// @Tags expenses
// @Produce json
// @Success 200 {object} response.Envelope{data=[]service.ExpenseResponse} "Expenses"
// @Failure 401 {object} response.Envelope "Unauthorized"
// @Failure 500 {object} response.Envelope "Internal server error"
// @Security BearerAuth
// @Router /expenses [get]
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	expenses, err := h.expenseService.GetAll(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Expenses retrieved successfully", expenses)
}

// GetExpense handles GET /expenses/:id
// @Summary Get an expense
// @Description Get one expense of the caller's tenant
// @Tags expenses
// @Produce json
// @Param id path int true "Expense ID"
// @Success 200 {object} response.Envelope{data=service.ExpenseResponse} "Expense"
// @Failure 400 {object} response.Envelope "Invalid id"
// @Failure 404 {object} response.Envelope "Expense not found"
// @Security BearerAuth
// @Router /expenses/{id} [get]
func (h *ExpenseHandler) GetExpense(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	expense, err := h.expenseService.GetByID(c.Request.Context(), caller, id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Expense retrieved successfully", expense)
}

// UpdateExpense handles PUT /expenses/:id
// @Summary Update an expense
// @Description Overwrite the editable fields of a expense of the caller's tenant
// @Tags expenses
// @Accept json
// @Produce json
// @Param id path int true "Expense ID"
// @Param expense body service.ExpenseRequest true "Expense data"
// @Success 200 {object} response.Envelope{data=service.ExpenseResponse} "Expense updated"
// @Failure 400 {object} response.Envelope "Invalid request"
// @Failure 404 {object} response.Envelope "Expense not found"
// @Security BearerAuth
// @Router /expenses/{id} [put]
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req service.ExpenseRequest
	if !bindJSON(c, &req) {
		return
	}

	expense, err := h.expenseService.Update(c.Request.Context(), caller, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Expense updated successfully", expense)
}

// DeleteExpense handles DELETE /expenses/:id
// @Summary Delete an expense
// @Description Delete an expense of the caller's tenant
// @Tags expenses
// @Produce json
// @Param id path int true "Expense ID"
// @Success 200 {object} response.Envelope "Expense deleted"
// @Failure 404 {object} response.Envelope "Expense not found"
// @Security BearerAuth
// @Router /expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.expenseService.Delete(c.Request.Context(), caller, id); err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Expense deleted successfully", nil)
}

// ExportExpenses handles GET /expenses/export
// @Summary Export expenses as XLSX
// @Description Download the expenses listing of the caller's tenant as a spreadsheet
// @Tags expenses
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file "Spreadsheet"
// @Failure 401 {object} response.Envelope "Unauthorized"
// @Failure 500 {object} response.Envelope "Internal server error"
// @Security BearerAuth
// @Router /expenses/export [get]
func (h *ExpenseHandler) ExportExpenses(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	workbook, err := h.expenseService.Export(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="expenses.xlsx"`)
	c.Data(http.StatusOK, service.XLSXContentType, workbook)
}

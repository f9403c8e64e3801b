package handlers

import (
	"net/http"

	"agrimanager-backend/internal/api/response"
	"agrimanager-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// IncomeHandler handles HTTP requests for income operations
type IncomeHandler struct {
	incomeService service.IncomeServiceInterface
}

// NewIncomeHandler creates a new income handler
func NewIncomeHandler(incomeService service.IncomeServiceInterface) *IncomeHandler {
	return &IncomeHandler{
		incomeService: incomeService,
	}
}

// CreateIncome handles POST /income
// @Summary Create an income
// @Description Record a sale of a crop of the caller's tenant
// @Tags income
// @Accept json
// @Produce json
// @Param income body service.IncomeRequest true "Income data"
// @Success 201 {object} response.Envelope{data=service.IncomeResponse} "Income created"
// @Failure 400 {object} response.Envelope "Invalid request"
// @Failure 401 {object} response.Envelope "Unauthorized"
// @Failure 500 {object} response.Envelope "Internal server error"
// @Security BearerAuth
// @Router /income [post]
func (h *IncomeHandler) CreateIncome(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	var req service.IncomeRequest
	if !bindJSON(c, &req) {
		return
	}

	income, err := h.incomeService.Create(c.Request.Context(), caller, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Created(c, "Income created successfully", income)
}

// ListIncome handles GET /income
// @Summary List income
// @Description List every income record of the caller's tenant with its crop name
// @Tags income
// @Produce json
// @Success 200 {object} response.Envelope{data=[]service.IncomeResponse} "Income"
// @Failure 401 {object} response.Envelope "Unauthorized"
// @Failure 500 {object} response.Envelope "Internal server error"
// @Security BearerAuth
// @Router /income [get]
func (h *IncomeHandler) ListIncome(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	incomes, err := h.incomeService.GetAll(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Income records retrieved successfully", incomes)
}

// GetIncome handles GET /income/:id
// @Summary Get an income
// @Description Get one income of the caller's tenant
// @Tags income
// @Produce json
// @Param id path int true "Income ID"
// @Success 200 {object} response.Envelope{data=service.IncomeResponse} "Income"
// @Failure 400 {object} response.Envelope "Invalid id"
// @Failure 404 {object} response.Envelope "Income not found"
// @Security BearerAuth
// @Router /income/{id} [get]
func (h *IncomeHandler) GetIncome(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	income, err := h.incomeService.GetByID(c.Request.Context(), caller, id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Income retrieved successfully", income)
}

// UpdateIncome handles PUT /income/:id
// @Summary Update an income
// @Description Overwrite the editable fields of a income of the caller's tenant
// @Tags income
// @Accept json
// @Produce json
// @Param id path int true "Income ID"
// @Param income body service.IncomeRequest true "Income data"
// @Success 200 {object} response.Envelope{data=service.IncomeResponse} "Income updated"
// @Failure 400 {object} response.Envelope "Invalid request"
// @Failure 404 {object} response.Envelope "Income not found"
// @Security BearerAuth
// @Router /income/{id} [put]
func (h *IncomeHandler) UpdateIncome(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req service.IncomeRequest
	if !bindJSON(c, &req) {
		return
	}

	income, err := h.incomeService.Update(c.Request.Context(), caller, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Income updated successfully", income)
}

// DeleteIncome handles DELETE /income/:id
// @Summary Delete an income
// @Description Delete an income record of the caller's tenant
// @Tags income
// @Produce json
// @Param id path int true "Income ID"
// @Success 200 {object} response.Envelope "Income deleted"
// @Failure 404 {object} response.Envelope "Income not found"
// @Security BearerAuth
// @Router /income/{id} [delete]
func (h *IncomeHandler) DeleteIncome(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.incomeService.Delete(c.Request.Context(), caller, id); err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Income deleted successfully", nil)
}

// ExportIncome handles GET /income/export
// @Summary Export income as XLSX
// @Description Download the income listing of the caller's tenant as a spreadsheet
// @Tags income
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file "Spreadsheet"
// @Failure 401 {object} response.Envelope "Unauthorized"
// @Failure 500 {object} response.Envelope "Internal server error"
// @Security BearerAuth
// @Router /income/export [get]
func (h *IncomeHandler) ExportIncome(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	workbook, err := h.incomeService.Export(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="income.xlsx"`)
	c.Data(http.StatusOK, service.XLSXContentType, workbook)
}

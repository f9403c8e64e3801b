package handlers

import (
	"agrimanager-backend/internal/api/response"
	"agrimanager-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// FieldHandler handles HTTP requests for field operations
type FieldHandler struct {
	fieldService service.FieldServiceInterface
}

// NewFieldHandler creates a new field handler
func NewFieldHandler(fieldService service.FieldServiceInterface) *FieldHandler {
	return &FieldHandler{
		fieldService: fieldService,
	}
}

// CreateField handles POST /fields
// @Summary Create a field
// @Description Create a field on a farm of the caller's tenant
// @Tags fields
// @Accept json
// @Produce json
// @Param field body service.FieldRequest true "Field data"
// @Success 201 {object} response.Envelope{data=service.FieldResponse} "Field created"
// @Failure 400 {object} response.Envelope "Invalid request"
// @Failure 401 {object} response.Envelope "Unauthorized"
// @Failure 500 {object} response.Envelope "Internal server error"
// @Security BearerAuth
// @Router /fields [post]
func (h *FieldHandler) CreateField(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	var req service.FieldRequest
	if !bindJSON(c, &req) {
		return
	}

	field, err := h.fieldService.Create(c.Request.Context(), caller, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Created(c, "Field created successfully", field)
}

// ListFields handles GET /fields
// @Summary List fields
// @Description List every field of the caller's tenant with its farm name
// @Tags fields
// @Produce json
// @Success 200 {object} response.Envelope{data=[]service.FieldResponse} "Fields"
// @Failure 401 {object} response.Envelope "Unauthorized"
// @Failure 500 {object} response.Envelope "Internal server error"
// @Security BearerAuth
// @Router /fields [get]
func (h *FieldHandler) ListFields(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	fields, err := h.fieldService.GetAll(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Fields retrieved successfully", fields)
}

// GetField handles GET /fields/:id
// @Summary Get a field
// @Description Get one field of the caller's tenant
// @Tags fields
// @Produce json
// @Param id path int true "Field ID"
// @Success 200 {object} response.Envelope{data=service.FieldResponse} "Field"
// @Failure 400 {object} response.Envelope "Invalid id"
// @Failure 404 {object} response.Envelope "Field not found"
// @Security BearerAuth
// @Router /fields/{id} [get]
func (h *FieldHandler) GetField(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	field, err := h.fieldService.GetByID(c.Request.Context(), caller, id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Field retrieved successfully", field)
}

// UpdateField handles PUT /fields/:id
// @Summary Update a field
// @Description Overwrite the editable fields of a field of the caller's tenant
// @Tags fields
// @Accept json
// @Produce json
// @Param id path int true "Field ID"
// @Param field body service.FieldRequest true "Field data"
// @Success 200 {object} response.Envelope{data=service.FieldResponse} "Field updated"
// @Failure 400 {object} response.Envelope "Invalid request"
// @Failure 404 {object} response.Envelope "Field not found"
// @Security BearerAuth
// @Router /fields/{id} [put]
func (h *FieldHandler) UpdateField(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req service.FieldRequest
	if !bindJSON(c, &req) {
		return
	}

	field, err := h.fieldService.Update(c.Request.Context(), caller, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Field updated successfully", field)
}

// DeleteField handles DELETE /fields/:id
// @Summary Delete a field
// @Description Delete a field of the caller's tenant that no crop references
// @Tags fields
// @Produce json
// @Param id path int true "Field ID"
// @Success 200 {object} response.Envelope "Field deleted"
// @Failure 404 {object} response.Envelope "Field not found"
// @Failure 409 {object} response.Envelope "Field is still referenced"
// @Security BearerAuth
// @Router /fields/{id} [delete]
func (h *FieldHandler) DeleteField(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.fieldService.Delete(c.Request.Context(), caller, id); err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Field deleted successfully", nil)
}

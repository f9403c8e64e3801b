package handlers

import (
	"agrimanager-backend/internal/api/response"
	"agrimanager-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CropStatusHandler handles HTTP requests for crop status operations
type CropStatusHandler struct {
	statusService service.CropStatusServiceInterface
}

// NewCropStatusHandler creates a new crop status handler
func NewCropStatusHandler(statusService service.CropStatusServiceInterface) *CropStatusHandler {
	return &CropStatusHandler{
		statusService: statusService,
	}
}

// CreateCropStatus handles POST /crop-status
// @Summary Create a crop status
// @Description Create a crop status of the caller's tenant
// @Tags crop-status
// @Accept json
// @Produce json
// @Param status body service.CropStatusRequest true "Crop status data"
// @Success 201 {object} response.Envelope{data=service.CropStatusResponse} "Crop status created"
// @Failure 400 {object} response.Envelope "Invalid request"
// @Failure 401 {object} response.Envelope "Unauthorized"
// @Failure 500 {object} response.Envelope "Internal server error"
// @Security BearerAuth
// @Router /crop-status [post]
func (h *CropStatusHandler) CreateCropStatus(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	var req service.CropStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	status, err := h.statusService.Create(c.Request.Context(), caller, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Created(c, "Crop status created successfully", status)
}

// ListCropStatuses handles GET /crop-status
// @Summary List crop statuses
// @Description List every crop status of the caller's tenant, active ones first
// @Tags crop-status
// @Produce json
// @Success 200 {object} response.Envelope{data=[]service.CropStatusResponse} "Crop statuses"
// @Failure 401 {object} response.Envelope "Unauthorized"
// @Failure 500 {object} response.Envelope "Internal server error"
// @Security BearerAuth
// @Router /crop-status [get]
func (h *CropStatusHandler) ListCropStatuses(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	statuses, err := h.statusService.GetAll(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Crop statuses retrieved successfully", statuses)
}

// GetCropStatus handles GET /crop-status/:id
// @Summary Get a crop status
// @Description Get one crop status of the caller's tenant
// @Tags crop-status
// @Produce json
// @Param id path int true "Crop status ID"
// @Success 200 {object} response.Envelope{data=service.CropStatusResponse} "Crop status"
// @Failure 400 {object} response.Envelope "Invalid id"
// @Failure 404 {object} response.Envelope "Crop status not found"
// @Security BearerAuth
// @Router /crop-status/{id} [get]
func (h *CropStatusHandler) GetCropStatus(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	status, err := h.statusService.GetByID(c.Request.Context(), caller, id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Crop status retrieved successfully", status)
}

// UpdateCropStatus handles PUT /crop-status/:id
// @Summary Update a crop status
// @Description Overwrite the editable fields of a crop status of the caller's tenant
// @Tags crop-status
// @Accept json
// @Produce json
// @Param id path int true "Crop status ID"
// @Param status body service.CropStatusRequest true "Crop status data"
// @Success 200 {object} response.Envelope{data=service.CropStatusResponse} "Crop status updated"
// @Failure 400 {object} response.Envelope "Invalid request"
// @Failure 404 {object} response.Envelope "Crop status not found"
// @Security BearerAuth
// @Router /crop-status/{id} [put]
func (h *CropStatusHandler) UpdateCropStatus(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req service.CropStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	status, err := h.statusService.Update(c.Request.Context(), caller, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Crop status updated successfully", status)
}

// DeleteCropStatus handles DELETE /crop-status/:id
// @Summary Delete a crop status
// @Description Delete a crop status of the caller's tenant that no crop uses
// @Tags crop-status
// @Produce json
// @Param id path int true "Crop status ID"
// @Success 200 {object} response.Envelope "Crop status deleted"
// @Failure 404 {object} response.Envelope "Crop status not found"
// @Failure 409 {object} response.Envelope "Crop status is still in use"
// @Security BearerAuth
// @Router /crop-status/{id} [delete]
func (h *CropStatusHandler) DeleteCropStatus(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.statusService.Delete(c.Request.Context(), caller, id); err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Crop status deleted successfully", nil)
}

// GetCropStatusDropdown handles GET /crop-status/dropdown
// @Summary Crop status dropdown
// @Description List the active crop statuses of the caller's tenant as id/name pairs
// @Tags crop-status
// @Produce json
// @Success 200 {object} response.Envelope{data=[]service.CropStatusOption} "Active crop statuses"
// @Failure 401 {object} response.Envelope "Unauthorized"
// @Security BearerAuth
// @Router /crop-status/dropdown [get]
func (h *CropStatusHandler) GetCropStatusDropdown(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	options, err := h.statusService.Dropdown(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Crop statuses retrieved successfully", options)
}

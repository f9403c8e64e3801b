package handlers

import (
	"agrimanager-backend/internal/api/response"
	"agrimanager-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CropHandler handles HTTP requests for crop operations
type CropHandler struct {
	cropService service.CropServiceInterface
}

// NewCropHandler creates a new crop handler
func NewCropHandler(cropService service.CropServiceInterface) *CropHandler {
	return &CropHandler{
		cropService: cropService,
	}
}

// CreateCrop handles POST /crops
// @Summary Create a crop
// @Description Create a crop of the caller's tenant; the expected end date may not precede the start date
// @Tags crops
// @Accept json
// @Produce json
// @Param crop body service.CropRequest true "Crop data"
// @Success 201 {object} response.Envelope{data=service.CropResponse} "Crop created"
// @Failure 400 {object} response.Envelope "Invalid request"
// @Failure 401 {object} response.Envelope "Unauthorized"
// @Failure 500 {object} response.Envelope "Internal server error"
// @Security BearerAuth
// @Router /crops [post]
func (h *CropHandler) CreateCrop(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	var req service.CropRequest
	if !bindJSON(c, &req) {
		return
	}

	crop, err := h.cropService.Create(c.Request.Context(), caller, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Created(c, "Crop created successfully", crop)
}

// ListCrops handles GET /crops
// @Summary List crops
// @Description List every crop of the caller's tenant with farm, field and status names
// @Tags crops
// @Produce json
// @Success 200 {object} response.Envelope{data=[]service.CropResponse} "Crops"
// @Failure 401 {object} response.Envelope "Unauthorized"
// @Failure 500 {object} response.Envelope "Internal server error"
// @Security BearerAuth
// @Router /crops [get]
func (h *CropHandler) ListCrops(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	crops, err := h.cropService.GetAll(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Crops retrieved successfully", crops)
}

// GetCrop handles GET /crops/:id
// @Summary Get a crop
// @Description Get one crop of the caller's tenant
// @Tags crops
// @Produce json
// @Param id path int true "Crop ID"
// @Success 200 {object} response.Envelope{data=service.CropResponse} "Crop"
// @Failure 400 {object} response.Envelope "Invalid id"
// @Failure 404 {object} response.Envelope "Crop not found"
// @Security BearerAuth
// @Router /crops/{id} [get]
func (h *CropHandler) GetCrop(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	crop, err := h.cropService.GetByID(c.Request.Context(), caller, id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Crop retrieved successfully", crop)
}

// UpdateCrop handles PUT /crops/:id
// @Summary Update a crop
// @Description Overwrite the editable fields of a crop of the caller's tenant
// @Tags crops
// @Accept json
// @Produce json
// @Param id path int true "Crop ID"
// @Param crop body service.CropRequest true "Crop data"
// @Success 200 {object} response.Envelope{data=service.CropResponse} "Crop updated"
// @Failure 400 {object} response.Envelope "Invalid request"
// @Failure 404 {object} response.Envelope "Crop not found"
// @Security BearerAuth
// @Router /crops/{id} [put]
func (h *CropHandler) UpdateCrop(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req service.CropRequest
	if !bindJSON(c, &req) {
		return
	}

	crop, err := h.cropService.Update(c.Request.Context(), caller, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Crop updated successfully", crop)
}

// DeleteCrop handles DELETE /crops/:id
// @Summary Delete a crop
// @Description Delete a crop of the caller's tenant that no expense or income references
// @Tags crops
// @Produce json
// @Param id path int true "Crop ID"
// @Success 200 {object} response.Envelope "Crop deleted"
// @Failure 404 {object} response.Envelope "Crop not found"
// @Failure 409 {object} response.Envelope "Crop is still referenced"
// @Security BearerAuth
// @Router /crops/{id} [delete]
func (h *CropHandler) DeleteCrop(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.cropService.Delete(c.Request.Context(), caller, id); err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Crop deleted successfully", nil)
}

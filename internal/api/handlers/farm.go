package handlers

import (
	"agrimanager-backend/internal/api/response"
	"agrimanager-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// FarmHandler handles HTTP requests for farm operations
type FarmHandler struct {
	farmService service.FarmServiceInterface
}

// NewFarmHandler creates a new farm handler
func NewFarmHandler(farmService service.FarmServiceInterface) *FarmHandler {
	return &FarmHandler{
		farmService: farmService,
	}
}

// CreateFarm handles POST /farms
// @Summary Create a farm
// @Description Create a farm owned by the caller's tenant
// @Tags farms
// @Accept json
// @Produce json
// @Param farm body service.FarmRequest true "Farm data"
// @Success 201 {object} response.Envelope{data=service.FarmResponse} "Farm created"
// @Failure 400 {object} response.Envelope "Invalid request"
// @Failure 401 {object} response.Envelope "Unauthorized"
// @Failure 500 {object} response.Envelope "Internal server error"
// @Security BearerAuth
// @Router /farms [post]
func (h *FarmHandler) CreateFarm(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	var req service.FarmRequest
	if !bindJSON(c, &req) {
		return
	}

	farm, err := h.farmService.Create(c.Request.Context(), caller, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Created(c, "Farm created successfully", farm)
}

// ListFarms handles GET /farms
// @Summary List farms
// @Description List every farm of the caller's tenant ordered by id
// @Tags farms
// @Produce json
// @Success 200 {object} response.Envelope{data=[]service.FarmResponse} "Farms"
// @Failure 401 {object} response.Envelope "Unauthorized"
// @Failure 500 {object} response.Envelope "Internal server error"
// @Security BearerAuth
// @Router /farms [get]
func (h *FarmHandler) ListFarms(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	farms, err := h.farmService.GetAll(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Farms retrieved successfully", farms)
}

// GetFarm handles GET /farms/:id
// @Summary Get a farm
// @Description Get one farm of the caller's tenant
// @Tags farms
// @Produce json
// @Param id path int true "Farm ID"
// @Success 200 {object} response.Envelope{data=service.FarmResponse} "Farm"
// @Failure 400 {object} response.Envelope "Invalid id"
// @Failure 404 {object} response.Envelope "Farm not found"
// @Security BearerAuth
// @Router /farms/{id} [get]
func (h *FarmHandler) GetFarm(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	farm, err := h.farmService.GetByID(c.Request.Context(), caller, id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Farm retrieved successfully", farm)
}

// UpdateFarm handles PUT /farms/:id
// @Summary Update a farm
// @Description Overwrite the editable fields of a farm of the caller's tenant
// @Tags farms
// @Accept json
// @Produce json
// @Param id path int true "Farm ID"
// @Param farm body service.FarmRequest true "Farm data"
// @Success 200 {object} response.Envelope{data=service.FarmResponse} "Farm updated"
// @Failure 400 {object} response.Envelope "Invalid request"
// @Failure 404 {object} response.Envelope "Farm not found"
// @Security BearerAuth
// @Router /farms/{id} [put]
func (h *FarmHandler) UpdateFarm(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req service.FarmRequest
	if !bindJSON(c, &req) {
		return
	}

	farm, err := h.farmService.Update(c.Request.Context(), caller, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Farm updated successfully", farm)
}

// DeleteFarm handles DELETE /farms/:id
// @Summary Delete a farm
// @Description Delete a farm of the caller's tenant that no field or crop references
// @Tags farms
// @Produce json
// @Param id path int true "Farm ID"
// @Success 200 {object} response.Envelope "Farm deleted"
// @Failure 404 {object} response.Envelope "Farm not found"
// @Failure 409 {object} response.Envelope "Farm is still referenced"
// @Security BearerAuth
// @Router /farms/{id} [delete]
func (h *FarmHandler) DeleteFarm(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.farmService.Delete(c.Request.Context(), caller, id); err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Farm deleted successfully", nil)
}

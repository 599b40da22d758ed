package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"village-admin-service/internal/domain/models"
	"village-admin-service/internal/domain/services"
	"village-admin-service/internal/domain/services/container"
	"village-admin-service/internal/error/code"
	"village-admin-service/internal/error/response"
	"village-admin-service/pkg/logger"
)

// InterfaceResidentController defines the resident controller interface
type InterfaceResidentController interface {
	GetResidents()
	GetResident()
	CreateResident()
	UpdateResident()
	DeleteResident()
}

// ResidentController handles resident requests
type ResidentController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewResidentController creates a new resident controller
func NewResidentController(ctx *gin.Context, container *container.ServiceContainer) *ResidentController {
	return &ResidentController{
		Ctx:       ctx,
		Container: container,
	}
}

// ResidentRequest is the create payload; all three fields are required
type ResidentRequest struct {
	Name    string `json:"name" binding:"required" example:"Budi Santoso"`
	Address string `json:"address" binding:"required" example:"Jl. Merdeka No. 10"`
	Job     string `json:"job" binding:"required" example:"Petani"`
}

// UpdateResidentRequest is the sparse update payload; absent fields are left
// untouched
type UpdateResidentRequest struct {
	Name    models.Optional[string] `json:"name"`
	Address models.Optional[string] `json:"address"`
	Job     models.Optional[string] `json:"job"`
}

// toUpdates validates the change set and converts it to column assignments
func (r *UpdateResidentRequest) toUpdates() (map[string]interface{}, error) {
	updates := make(map[string]interface{})
	if r.Name.Defined {
		name, ok := r.Name.Get()
		if !ok || name == "" {
			return nil, errors.New("name must be a non-empty string")
		}
		updates["name"] = name
	}
	if r.Address.Defined {
		address, ok := r.Address.Get()
		if !ok || address == "" {
			return nil, errors.New("address must be a non-empty string")
		}
		updates["address"] = address
	}
	if r.Job.Defined {
		job, ok := r.Job.Get()
		if !ok || job == "" {
			return nil, errors.New("job must be a non-empty string")
		}
		updates["job"] = job
	}
	return updates, nil
}

// GetResidents returns all residents
// @Summary      List residents
// @Description  Returns every resident record
// @Tags         Resident
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /residents [get]
func (c *ResidentController) GetResidents() {
	residentService := c.Container.GetService("resident").(services.InterfaceResidentService)
	residents, err := residentService.GetAllResidents()
	if err != nil {
		logger.Error("failed to list residents: %v", err)
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, residents)
}

// GetResident returns one resident by id
// @Summary      Get resident
// @Description  Returns the resident with the given id
// @Tags         Resident
// @Produce      json
// @Param        id path int true "Resident ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /residents/{id} [get]
func (c *ResidentController) GetResident() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	residentService := c.Container.GetService("resident").(services.InterfaceResidentService)
	resident, err := residentService.GetResidentByID(id)
	if err != nil {
		logger.Error("failed to fetch resident %d: %v", id, err)
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}
	if resident == nil {
		response.NotFound(c.Ctx, code.ErrResidentNotFound)
		return
	}

	response.Success(c.Ctx, resident)
}

// CreateResident creates a new resident
// @Summary      Create resident
// @Description  Registers a new resident; name, address and job are required
// @Tags         Resident
// @Accept       json
// @Produce      json
// @Param        request body ResidentRequest true "Resident data"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /residents [post]
func (c *ResidentController) CreateResident() {
	var req ResidentRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind, nil)
		return
	}

	resident := &models.Resident{
		Name:    req.Name,
		Address: req.Address,
		Job:     req.Job,
	}

	residentService := c.Container.GetService("resident").(services.InterfaceResidentService)
	if err := residentService.CreateResident(resident); err != nil {
		logger.Error("failed to create resident: %v", err)
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Created(c.Ctx, resident)
}

// UpdateResident updates an existing resident
// @Summary      Update resident
// @Description  Applies a partial update; absent fields keep their stored value
// @Tags         Resident
// @Accept       json
// @Produce      json
// @Param        id path int true "Resident ID"
// @Param        request body UpdateResidentRequest true "Fields to change"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /residents/{id} [put]
func (c *ResidentController) UpdateResident() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	var req UpdateResidentRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind, nil)
		return
	}

	updates, err := req.toUpdates()
	if err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	residentService := c.Container.GetService("resident").(services.InterfaceResidentService)
	resident, err := residentService.UpdateResident(id, updates)
	if err != nil {
		if errors.Is(err, services.ErrResidentNotFound) {
			response.NotFound(c.Ctx, code.ErrResidentNotFound)
			return
		}
		logger.Error("failed to update resident %d: %v", id, err)
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, resident)
}

// DeleteResident deletes a resident
// @Summary      Delete resident
// @Description  Removes the resident; deleting an unknown id is not an error
// @Tags         Resident
// @Produce      json
// @Param        id path int true "Resident ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /residents/{id} [delete]
func (c *ResidentController) DeleteResident() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	residentService := c.Container.GetService("resident").(services.InterfaceResidentService)
	deleted, err := residentService.DeleteResident(id)
	if err != nil {
		logger.Error("failed to delete resident %d: %v", id, err)
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, gin.H{"deleted": deleted})
}

// HandleResidentFunc returns a gin handler dispatching to the named method
func HandleResidentFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewResidentController(ctx, container)

		switch method {
		case "getResidents":
			controller.GetResidents()
		case "getResident":
			controller.GetResident()
		case "createResident":
			controller.CreateResident()
		case "updateResident":
			controller.UpdateResident()
		case "deleteResident":
			controller.DeleteResident()
		default:
			response.ParamError(ctx, "invalid method")
		}
	}
}

package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"village-admin-service/internal/domain/models"
	"village-admin-service/internal/domain/services"
	"village-admin-service/internal/domain/services/container"
	"village-admin-service/internal/error/code"
	"village-admin-service/internal/error/response"
	"village-admin-service/pkg/logger"
)

// InterfacePublicServiceController defines the public service controller interface
type InterfacePublicServiceController interface {
	GetServices()
	GetService()
	GetActiveServices()
	CreateService()
	UpdateService()
	ToggleStatus()
	DeleteService()
}

// PublicServiceController handles public service catalog requests
type PublicServiceController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewPublicServiceController creates a new public service controller
func NewPublicServiceController(ctx *gin.Context, container *container.ServiceContainer) *PublicServiceController {
	return &PublicServiceController{
		Ctx:       ctx,
		Container: container,
	}
}

// PublicServiceRequest is the create payload
type PublicServiceRequest struct {
	Name          string              `json:"name" binding:"required" example:"Surat Keterangan Domisili"`
	Description   string              `json:"description" binding:"required"`
	Requirements  *string             `json:"requirements"`
	Cost          decimal.NullDecimal `json:"cost"`
	ProcessTime   *string             `json:"process_time"`
	ContactPerson *string             `json:"contact_person"`
	OfficeHours   *string             `json:"office_hours"`
	IsActive      *bool               `json:"is_active"`
}

// Validate enforces the constraints gin's binding tags cannot express
func (r *PublicServiceRequest) Validate() error {
	if r.Cost.Valid && r.Cost.Decimal.IsNegative() {
		return errors.New("cost must be zero or greater when set")
	}
	return nil
}

// UpdatePublicServiceRequest is the sparse update payload
type UpdatePublicServiceRequest struct {
	Name          models.Optional[string]          `json:"name"`
	Description   models.Optional[string]          `json:"description"`
	Requirements  models.Optional[string]          `json:"requirements"`
	Cost          models.Optional[decimal.Decimal] `json:"cost"`
	ProcessTime   models.Optional[string]          `json:"process_time"`
	ContactPerson models.Optional[string]          `json:"contact_person"`
	OfficeHours   models.Optional[string]          `json:"office_hours"`
	IsActive      models.Optional[bool]            `json:"is_active"`
}

// toUpdates validates the change set and converts it to column assignments
func (r *UpdatePublicServiceRequest) toUpdates() (map[string]interface{}, error) {
	updates := make(map[string]interface{})
	if r.Name.Defined {
		name, ok := r.Name.Get()
		if !ok || name == "" {
			return nil, errors.New("name must be a non-empty string")
		}
		updates["name"] = name
	}
	if r.Description.Defined {
		description, ok := r.Description.Get()
		if !ok || description == "" {
			return nil, errors.New("description must be a non-empty string")
		}
		updates["description"] = description
	}
	if r.Requirements.Defined {
		updates["requirements"] = r.Requirements.Value
	}
	if r.Cost.Defined {
		if r.Cost.Value != nil && r.Cost.Value.IsNegative() {
			return nil, errors.New("cost must be zero or greater when set")
		}
		updates["cost"] = r.Cost.Value
	}
	if r.ProcessTime.Defined {
		updates["process_time"] = r.ProcessTime.Value
	}
	if r.ContactPerson.Defined {
		updates["contact_person"] = r.ContactPerson.Value
	}
	if r.OfficeHours.Defined {
		updates["office_hours"] = r.OfficeHours.Value
	}
	if r.IsActive.Defined {
		isActive, ok := r.IsActive.Get()
		if !ok {
			return nil, errors.New("is_active must be a boolean")
		}
		updates["is_active"] = isActive
	}
	return updates, nil
}

// GetServices returns all public services
// @Summary      List public services
// @Tags         PublicService
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /services [get]
func (c *PublicServiceController) GetServices() {
	publicService := c.Container.GetService("public_service").(services.InterfacePublicServiceService)
	rows, err := publicService.GetAllServices()
	if err != nil {
		logger.Error("failed to list public services: %v", err)
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, rows)
}

// GetService returns one public service by id
// @Summary      Get public service
// @Tags         PublicService
// @Produce      json
// @Param        id path int true "Service ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /services/{id} [get]
func (c *PublicServiceController) GetService() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	publicService := c.Container.GetService("public_service").(services.InterfacePublicServiceService)
	service, err := publicService.GetServiceByID(id)
	if err != nil {
		logger.Error("failed to fetch public service %d: %v", id, err)
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}
	if service == nil {
		response.NotFound(c.Ctx, code.ErrPublicServiceNotFound)
		return
	}

	response.Success(c.Ctx, service)
}

// GetActiveServices returns the services currently offered to residents
// @Summary      List active public services
// @Tags         PublicService
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /services/active [get]
func (c *PublicServiceController) GetActiveServices() {
	publicService := c.Container.GetService("public_service").(services.InterfacePublicServiceService)
	rows, err := publicService.GetActiveServices()
	if err != nil {
		logger.Error("failed to list active public services: %v", err)
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, rows)
}

// CreateService registers a new public service
// @Summary      Create public service
// @Description  Adds a service to the catalog; is_active defaults to true
// @Tags         PublicService
// @Accept       json
// @Produce      json
// @Param        request body PublicServiceRequest true "Service data"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /services [post]
func (c *PublicServiceController) CreateService() {
	var req PublicServiceRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind, nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	service := &models.PublicService{
		Name:          req.Name,
		Description:   req.Description,
		Requirements:  req.Requirements,
		Cost:          req.Cost,
		ProcessTime:   req.ProcessTime,
		ContactPerson: req.ContactPerson,
		OfficeHours:   req.OfficeHours,
		IsActive:      isActive,
	}

	publicService := c.Container.GetService("public_service").(services.InterfacePublicServiceService)
	if err := publicService.CreateService(service); err != nil {
		logger.Error("failed to create public service: %v", err)
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Created(c.Ctx, service)
}

// UpdateService updates an existing public service
// @Summary      Update public service
// @Description  Applies a partial update; absent fields keep their stored value
// @Tags         PublicService
// @Accept       json
// @Produce      json
// @Param        id path int true "Service ID"
// @Param        request body UpdatePublicServiceRequest true "Fields to change"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /services/{id} [put]
func (c *PublicServiceController) UpdateService() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	var req UpdatePublicServiceRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind, nil)
		return
	}

	updates, err := req.toUpdates()
	if err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	publicService := c.Container.GetService("public_service").(services.InterfacePublicServiceService)
	service, err := publicService.UpdateService(id, updates)
	if err != nil {
		if errors.Is(err, services.ErrPublicServiceNotFound) {
			response.NotFound(c.Ctx, code.ErrPublicServiceNotFound)
			return
		}
		logger.Error("failed to update public service %d: %v", id, err)
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, service)
}

// ToggleStatus flips the service's active flag
// @Summary      Toggle public service status
// @Description  Flips is_active in a single statement so concurrent toggles cannot lose an update
// @Tags         PublicService
// @Produce      json
// @Param        id path int true "Service ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /services/{id}/toggle [patch]
func (c *PublicServiceController) ToggleStatus() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	publicService := c.Container.GetService("public_service").(services.InterfacePublicServiceService)
	service, err := publicService.ToggleServiceStatus(id)
	if err != nil {
		if errors.Is(err, services.ErrPublicServiceNotFound) {
			response.NotFound(c.Ctx, code.ErrPublicServiceNotFound)
			return
		}
		logger.Error("failed to toggle public service %d: %v", id, err)
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, service)
}

// DeleteService deletes a public service
// @Summary      Delete public service
// @Tags         PublicService
// @Produce      json
// @Param        id path int true "Service ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /services/{id} [delete]
func (c *PublicServiceController) DeleteService() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	publicService := c.Container.GetService("public_service").(services.InterfacePublicServiceService)
	deleted, err := publicService.DeleteService(id)
	if err != nil {
		logger.Error("failed to delete public service %d: %v", id, err)
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, gin.H{"deleted": deleted})
}

// HandlePublicServiceFunc returns a gin handler dispatching to the named method
func HandlePublicServiceFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewPublicServiceController(ctx, container)

		switch method {
		case "getServices":
			controller.GetServices()
		case "getService":
			controller.GetService()
		case "getActiveServices":
			controller.GetActiveServices()
		case "createService":
			controller.CreateService()
		case "updateService":
			controller.UpdateService()
		case "toggleStatus":
			controller.ToggleStatus()
		case "deleteService":
			controller.DeleteService()
		default:
			response.ParamError(ctx, "invalid method")
		}
	}
}

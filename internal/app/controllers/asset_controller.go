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

// InterfaceAssetController defines the asset controller interface
type InterfaceAssetController interface {
	GetAssets()
	GetAsset()
	GetAssetsByCategory()
	GetSummary()
	CreateAsset()
	UpdateAsset()
	DeleteAsset()
}

// AssetController handles village asset requests
type AssetController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAssetController creates a new asset controller
func NewAssetController(ctx *gin.Context, container *container.ServiceContainer) *AssetController {
	return &AssetController{
		Ctx:       ctx,
		Container: container,
	}
}

// AssetRequest is the create payload
type AssetRequest struct {
	Name         string          `json:"name" binding:"required" example:"Traktor Desa"`
	Description  *string         `json:"description"`
	Category     string          `json:"category" binding:"required" example:"Pertanian"`
	Value        decimal.Decimal `json:"value" binding:"required"`
	Condition    string          `json:"condition" binding:"required,oneof=excellent good fair poor"`
	Location     string          `json:"location" binding:"required" example:"Gudang Desa"`
	PurchaseDate *string         `json:"purchase_date"`
}

// Validate enforces the constraints gin's binding tags cannot express
func (r *AssetRequest) Validate() error {
	if !r.Value.IsPositive() {
		return errors.New("value must be greater than 0")
	}
	return nil
}

// UpdateAssetRequest is the sparse update payload
type UpdateAssetRequest struct {
	Name         models.Optional[string]          `json:"name"`
	Description  models.Optional[string]          `json:"description"`
	Category     models.Optional[string]          `json:"category"`
	Value        models.Optional[decimal.Decimal] `json:"value"`
	Condition    models.Optional[string]          `json:"condition"`
	Location     models.Optional[string]          `json:"location"`
	PurchaseDate models.Optional[string]          `json:"purchase_date"`
}

// toUpdates validates the change set and converts it to column assignments
func (r *UpdateAssetRequest) toUpdates() (map[string]interface{}, error) {
	updates := make(map[string]interface{})
	if r.Name.Defined {
		name, ok := r.Name.Get()
		if !ok || name == "" {
			return nil, errors.New("name must be a non-empty string")
		}
		updates["name"] = name
	}
	if r.Description.Defined {
		updates["description"] = r.Description.Value
	}
	if r.Category.Defined {
		category, ok := r.Category.Get()
		if !ok || category == "" {
			return nil, errors.New("category must be a non-empty string")
		}
		updates["category"] = category
	}
	if r.Value.Defined {
		value, ok := r.Value.Get()
		if !ok || !value.IsPositive() {
			return nil, errors.New("value must be greater than 0")
		}
		updates["value"] = value
	}
	if r.Condition.Defined {
		condition, ok := r.Condition.Get()
		if !ok || !models.IsValidAssetCondition(condition) {
			return nil, errors.New("condition must be one of excellent, good, fair, poor")
		}
		updates["condition"] = condition
	}
	if r.Location.Defined {
		location, ok := r.Location.Get()
		if !ok || location == "" {
			return nil, errors.New("location must be a non-empty string")
		}
		updates["location"] = location
	}
	if r.PurchaseDate.Defined {
		updates["purchase_date"] = r.PurchaseDate.Value
	}
	return updates, nil
}

// GetAssets returns all assets
// @Summary      List assets
// @Tags         Asset
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /assets [get]
func (c *AssetController) GetAssets() {
	assetService := c.Container.GetService("asset").(services.InterfaceAssetService)
	assets, err := assetService.GetAllAssets()
	if err != nil {
		logger.Error("failed to list assets: %v", err)
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, assets)
}

// GetAsset returns one asset by id
// @Summary      Get asset
// @Tags         Asset
// @Produce      json
// @Param        id path int true "Asset ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /assets/{id} [get]
func (c *AssetController) GetAsset() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	assetService := c.Container.GetService("asset").(services.InterfaceAssetService)
	asset, err := assetService.GetAssetByID(id)
	if err != nil {
		logger.Error("failed to fetch asset %d: %v", id, err)
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}
	if asset == nil {
		response.NotFound(c.Ctx, code.ErrAssetNotFound)
		return
	}

	response.Success(c.Ctx, asset)
}

// GetAssetsByCategory returns the assets whose category matches exactly
// @Summary      List assets by category
// @Tags         Asset
// @Produce      json
// @Param        category path string true "Asset category"
// @Success      200  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /assets/category/{category} [get]
func (c *AssetController) GetAssetsByCategory() {
	category := c.Ctx.Param("category")
	if category == "" {
		response.ParamError(c.Ctx, "category parameter is required")
		return
	}

	assetService := c.Container.GetService("asset").(services.InterfaceAssetService)
	assets, err := assetService.GetAssetsByCategory(category)
	if err != nil {
		logger.Error("failed to list assets for category %q: %v", category, err)
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, assets)
}

// GetSummary returns the asset inventory summary
// @Summary      Asset summary
// @Description  Total value, total count and per-condition counts over all assets
// @Tags         Asset
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /assets/summary [get]
func (c *AssetController) GetSummary() {
	assetService := c.Container.GetService("asset").(services.InterfaceAssetService)
	summary, err := assetService.GetAssetsSummary()
	if err != nil {
		logger.Error("failed to compute asset summary: %v", err)
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, summary)
}

// CreateAsset registers a new asset
// @Summary      Create asset
// @Tags         Asset
// @Accept       json
// @Produce      json
// @Param        request body AssetRequest true "Asset data"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /assets [post]
func (c *AssetController) CreateAsset() {
	var req AssetRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind, nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	asset := &models.Asset{
		Name:         req.Name,
		Description:  req.Description,
		Category:     req.Category,
		Value:        req.Value,
		Condition:    req.Condition,
		Location:     req.Location,
		PurchaseDate: req.PurchaseDate,
	}

	assetService := c.Container.GetService("asset").(services.InterfaceAssetService)
	if err := assetService.CreateAsset(asset); err != nil {
		logger.Error("failed to create asset: %v", err)
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Created(c.Ctx, asset)
}

// UpdateAsset updates an existing asset
// @Summary      Update asset
// @Description  Applies a partial update; absent fields keep their stored value
// @Tags         Asset
// @Accept       json
// @Produce      json
// @Param        id path int true "Asset ID"
// @Param        request body UpdateAssetRequest true "Fields to change"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /assets/{id} [put]
func (c *AssetController) UpdateAsset() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	var req UpdateAssetRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind, nil)
		return
	}

	updates, err := req.toUpdates()
	if err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	assetService := c.Container.GetService("asset").(services.InterfaceAssetService)
	asset, err := assetService.UpdateAsset(id, updates)
	if err != nil {
		if errors.Is(err, services.ErrAssetNotFound) {
			response.NotFound(c.Ctx, code.ErrAssetNotFound)
			return
		}
		logger.Error("failed to update asset %d: %v", id, err)
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, asset)
}

// DeleteAsset deletes an asset
// @Summary      Delete asset
// @Tags         Asset
// @Produce      json
// @Param        id path int true "Asset ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /assets/{id} [delete]
func (c *AssetController) DeleteAsset() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	assetService := c.Container.GetService("asset").(services.InterfaceAssetService)
	deleted, err := assetService.DeleteAsset(id)
	if err != nil {
		logger.Error("failed to delete asset %d: %v", id, err)
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, gin.H{"deleted": deleted})
}

// HandleAssetFunc returns a gin handler dispatching to the named method
func HandleAssetFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAssetController(ctx, container)

		switch method {
		case "getAssets":
			controller.GetAssets()
		case "getAsset":
			controller.GetAsset()
		case "getAssetsByCategory":
			controller.GetAssetsByCategory()
		case "getSummary":
			controller.GetSummary()
		case "createAsset":
			controller.CreateAsset()
		case "updateAsset":
			controller.UpdateAsset()
		case "deleteAsset":
			controller.DeleteAsset()
		default:
			response.ParamError(ctx, "invalid method")
		}
	}
}

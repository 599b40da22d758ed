package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"village-admin-service/internal/domain/models"
	"village-admin-service/internal/domain/services"
	"village-admin-service/internal/domain/services/container"
	"village-admin-service/internal/error/code"
	"village-admin-service/internal/error/response"
	"village-admin-service/pkg/logger"
)

// InterfaceBudgetController defines the budget controller interface
type InterfaceBudgetController interface {
	GetBudgets()
	GetBudget()
	GetBudgetsByYear()
	CreateBudget()
	UpdateBudget()
	DeleteBudget()
}

// BudgetController handles village budget requests
type BudgetController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewBudgetController creates a new budget controller
func NewBudgetController(ctx *gin.Context, container *container.ServiceContainer) *BudgetController {
	return &BudgetController{
		Ctx:       ctx,
		Container: container,
	}
}

// BudgetRequest is the create payload. used_amount is not accepted: every
// budget starts with zero spent.
type BudgetRequest struct {
	Category        string          `json:"category" binding:"required" example:"Infrastruktur"`
	AllocatedAmount decimal.Decimal `json:"allocated_amount" example:"50000000"`
	Year            int             `json:"year" binding:"required,gte=2000" example:"2024"`
}

// Validate enforces the constraints gin's binding tags cannot express
func (r *BudgetRequest) Validate() error {
	if !r.AllocatedAmount.IsPositive() {
		return errors.New("allocated_amount must be greater than 0")
	}
	return nil
}

// UpdateBudgetRequest is the sparse update payload
type UpdateBudgetRequest struct {
	Category        models.Optional[string]          `json:"category"`
	AllocatedAmount models.Optional[decimal.Decimal] `json:"allocated_amount"`
	UsedAmount      models.Optional[decimal.Decimal] `json:"used_amount"`
	Year            models.Optional[int]             `json:"year"`
}

// toUpdates validates the change set and converts it to column assignments
func (r *UpdateBudgetRequest) toUpdates() (map[string]interface{}, error) {
	updates := make(map[string]interface{})
	if r.Category.Defined {
		category, ok := r.Category.Get()
		if !ok || category == "" {
			return nil, errors.New("category must be a non-empty string")
		}
		updates["category"] = category
	}
	if r.AllocatedAmount.Defined {
		allocated, ok := r.AllocatedAmount.Get()
		if !ok || !allocated.IsPositive() {
			return nil, errors.New("allocated_amount must be greater than 0")
		}
		updates["allocated_amount"] = allocated
	}
	if r.UsedAmount.Defined {
		used, ok := r.UsedAmount.Get()
		if !ok || used.IsNegative() {
			return nil, errors.New("used_amount must be zero or greater")
		}
		updates["used_amount"] = used
	}
	if r.Year.Defined {
		year, ok := r.Year.Get()
		if !ok || year < 2000 {
			return nil, errors.New("year must be 2000 or later")
		}
		updates["year"] = year
	}
	return updates, nil
}

// GetBudgets returns all budgets
// @Summary      List budgets
// @Tags         Budget
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /budgets [get]
func (c *BudgetController) GetBudgets() {
	budgetService := c.Container.GetService("budget").(services.InterfaceBudgetService)
	budgets, err := budgetService.GetAllBudgets()
	if err != nil {
		logger.Error("failed to list budgets: %v", err)
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, budgets)
}

// GetBudget returns one budget by id
// @Summary      Get budget
// @Tags         Budget
// @Produce      json
// @Param        id path int true "Budget ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /budgets/{id} [get]
func (c *BudgetController) GetBudget() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	budgetService := c.Container.GetService("budget").(services.InterfaceBudgetService)
	budget, err := budgetService.GetBudgetByID(id)
	if err != nil {
		logger.Error("failed to fetch budget %d: %v", id, err)
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}
	if budget == nil {
		response.NotFound(c.Ctx, code.ErrBudgetNotFound)
		return
	}

	response.Success(c.Ctx, budget)
}

// GetBudgetsByYear returns the budgets for one year
// @Summary      List budgets by year
// @Tags         Budget
// @Produce      json
// @Param        year path int true "Budget year"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /budgets/year/{year} [get]
func (c *BudgetController) GetBudgetsByYear() {
	year, err := strconv.Atoi(c.Ctx.Param("year"))
	if err != nil {
		response.ParamError(c.Ctx, "invalid year parameter")
		return
	}

	budgetService := c.Container.GetService("budget").(services.InterfaceBudgetService)
	budgets, err := budgetService.GetBudgetsByYear(year)
	if err != nil {
		logger.Error("failed to list budgets for year %d: %v", year, err)
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, budgets)
}

// CreateBudget creates a new budget
// @Summary      Create budget
// @Description  Allocates a category budget for a year; used_amount starts at 0
// @Tags         Budget
// @Accept       json
// @Produce      json
// @Param        request body BudgetRequest true "Budget data"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /budgets [post]
func (c *BudgetController) CreateBudget() {
	var req BudgetRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind, nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	budget := &models.Budget{
		Category:        req.Category,
		AllocatedAmount: req.AllocatedAmount,
		Year:            req.Year,
	}

	budgetService := c.Container.GetService("budget").(services.InterfaceBudgetService)
	if err := budgetService.CreateBudget(budget); err != nil {
		logger.Error("failed to create budget: %v", err)
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Created(c.Ctx, budget)
}

// UpdateBudget updates an existing budget
// @Summary      Update budget
// @Description  Applies a partial update; absent fields keep their stored value
// @Tags         Budget
// @Accept       json
// @Produce      json
// @Param        id path int true "Budget ID"
// @Param        request body UpdateBudgetRequest true "Fields to change"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /budgets/{id} [put]
func (c *BudgetController) UpdateBudget() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	var req UpdateBudgetRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind, nil)
		return
	}

	updates, err := req.toUpdates()
	if err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	budgetService := c.Container.GetService("budget").(services.InterfaceBudgetService)
	budget, err := budgetService.UpdateBudget(id, updates)
	if err != nil {
		if errors.Is(err, services.ErrBudgetNotFound) {
			response.NotFound(c.Ctx, code.ErrBudgetNotFound)
			return
		}
		logger.Error("failed to update budget %d: %v", id, err)
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, budget)
}

// DeleteBudget deletes a budget
// @Summary      Delete budget
// @Tags         Budget
// @Produce      json
// @Param        id path int true "Budget ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /budgets/{id} [delete]
func (c *BudgetController) DeleteBudget() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	budgetService := c.Container.GetService("budget").(services.InterfaceBudgetService)
	deleted, err := budgetService.DeleteBudget(id)
	if err != nil {
		logger.Error("failed to delete budget %d: %v", id, err)
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, gin.H{"deleted": deleted})
}

// HandleBudgetFunc returns a gin handler dispatching to the named method
func HandleBudgetFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewBudgetController(ctx, container)

		switch method {
		case "getBudgets":
			controller.GetBudgets()
		case "getBudget":
			controller.GetBudget()
		case "getBudgetsByYear":
			controller.GetBudgetsByYear()
		case "createBudget":
			controller.CreateBudget()
		case "updateBudget":
			controller.UpdateBudget()
		case "deleteBudget":
			controller.DeleteBudget()
		default:
			response.ParamError(ctx, "invalid method")
		}
	}
}

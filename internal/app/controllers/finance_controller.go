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

// InterfaceFinanceController defines the finance controller interface
type InterfaceFinanceController interface {
	GetTransactions()
	GetTransaction()
	CreateTransaction()
	UpdateTransaction()
	DeleteTransaction()
	GetSummary()
}

// FinanceController handles village finance requests
type FinanceController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewFinanceController creates a new finance controller
func NewFinanceController(ctx *gin.Context, container *container.ServiceContainer) *FinanceController {
	return &FinanceController{
		Ctx:       ctx,
		Container: container,
	}
}

// FinanceTransactionRequest is the create payload
type FinanceTransactionRequest struct {
	Type        string          `json:"type" binding:"required,oneof=income expense" example:"income"`
	Description string          `json:"description" binding:"required" example:"Dana desa tahap pertama"`
	Amount      decimal.Decimal `json:"amount" example:"150000.50"`
	Category    string          `json:"category" binding:"required" example:"Pembangunan"`
	Date        string          `json:"date" binding:"required" example:"2024-01-15"`
}

// Validate enforces the constraints gin's binding tags cannot express
func (r *FinanceTransactionRequest) Validate() error {
	if !r.Amount.IsPositive() {
		return errors.New("amount must be greater than 0")
	}
	return nil
}

// UpdateFinanceTransactionRequest is the sparse update payload
type UpdateFinanceTransactionRequest struct {
	Type        models.Optional[string]          `json:"type"`
	Description models.Optional[string]          `json:"description"`
	Amount      models.Optional[decimal.Decimal] `json:"amount"`
	Category    models.Optional[string]          `json:"category"`
	Date        models.Optional[string]          `json:"date"`
}

// toUpdates validates the change set and converts it to column assignments
func (r *UpdateFinanceTransactionRequest) toUpdates() (map[string]interface{}, error) {
	updates := make(map[string]interface{})
	if r.Type.Defined {
		txType, ok := r.Type.Get()
		if !ok || !models.IsValidTransactionType(txType) {
			return nil, errors.New("type must be income or expense")
		}
		updates["type"] = txType
	}
	if r.Description.Defined {
		description, ok := r.Description.Get()
		if !ok || description == "" {
			return nil, errors.New("description must be a non-empty string")
		}
		updates["description"] = description
	}
	if r.Amount.Defined {
		amount, ok := r.Amount.Get()
		if !ok || !amount.IsPositive() {
			return nil, errors.New("amount must be greater than 0")
		}
		updates["amount"] = amount
	}
	if r.Category.Defined {
		category, ok := r.Category.Get()
		if !ok || category == "" {
			return nil, errors.New("category must be a non-empty string")
		}
		updates["category"] = category
	}
	if r.Date.Defined {
		date, ok := r.Date.Get()
		if !ok || date == "" {
			return nil, errors.New("date must be a non-empty string")
		}
		updates["date"] = date
	}
	return updates, nil
}

// GetTransactions returns all finance transactions
// @Summary      List finance transactions
// @Description  Returns every income and expense record
// @Tags         Finance
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /finances [get]
func (c *FinanceController) GetTransactions() {
	financeService := c.Container.GetService("finance").(services.InterfaceFinanceService)
	transactions, err := financeService.GetAllTransactions()
	if err != nil {
		logger.Error("failed to list finance transactions: %v", err)
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, transactions)
}

// GetTransaction returns one finance transaction by id
// @Summary      Get finance transaction
// @Tags         Finance
// @Produce      json
// @Param        id path int true "Transaction ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /finances/{id} [get]
func (c *FinanceController) GetTransaction() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	financeService := c.Container.GetService("finance").(services.InterfaceFinanceService)
	tx, err := financeService.GetTransactionByID(id)
	if err != nil {
		logger.Error("failed to fetch finance transaction %d: %v", id, err)
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}
	if tx == nil {
		response.NotFound(c.Ctx, code.ErrTransactionNotFound)
		return
	}

	response.Success(c.Ctx, tx)
}

// CreateTransaction creates a new finance transaction
// @Summary      Create finance transaction
// @Description  Records an income or expense; amount must be positive
// @Tags         Finance
// @Accept       json
// @Produce      json
// @Param        request body FinanceTransactionRequest true "Transaction data"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /finances [post]
func (c *FinanceController) CreateTransaction() {
	var req FinanceTransactionRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind, nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	tx := &models.FinanceTransaction{
		Type:        req.Type,
		Description: req.Description,
		Amount:      req.Amount,
		Category:    req.Category,
		Date:        req.Date,
	}

	financeService := c.Container.GetService("finance").(services.InterfaceFinanceService)
	if err := financeService.CreateTransaction(tx); err != nil {
		logger.Error("failed to create finance transaction: %v", err)
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Created(c.Ctx, tx)
}

// UpdateTransaction updates an existing finance transaction
// @Summary      Update finance transaction
// @Description  Applies a partial update; absent fields keep their stored value
// @Tags         Finance
// @Accept       json
// @Produce      json
// @Param        id path int true "Transaction ID"
// @Param        request body UpdateFinanceTransactionRequest true "Fields to change"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /finances/{id} [put]
func (c *FinanceController) UpdateTransaction() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	var req UpdateFinanceTransactionRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind, nil)
		return
	}

	updates, err := req.toUpdates()
	if err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	financeService := c.Container.GetService("finance").(services.InterfaceFinanceService)
	tx, err := financeService.UpdateTransaction(id, updates)
	if err != nil {
		if errors.Is(err, services.ErrTransactionNotFound) {
			response.NotFound(c.Ctx, code.ErrTransactionNotFound)
			return
		}
		logger.Error("failed to update finance transaction %d: %v", id, err)
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, tx)
}

// DeleteTransaction deletes a finance transaction
// @Summary      Delete finance transaction
// @Description  Removes the transaction; always reports deleted=true when the statement succeeds
// @Tags         Finance
// @Produce      json
// @Param        id path int true "Transaction ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /finances/{id} [delete]
func (c *FinanceController) DeleteTransaction() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	financeService := c.Container.GetService("finance").(services.InterfaceFinanceService)
	if err := financeService.DeleteTransaction(id); err != nil {
		logger.Error("failed to delete finance transaction %d: %v", id, err)
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, gin.H{"deleted": true})
}

// GetSummary returns the finance summary
// @Summary      Finance summary
// @Description  Computes total income, total expense and balance from the current rows
// @Tags         Finance
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /finances/summary [get]
func (c *FinanceController) GetSummary() {
	financeService := c.Container.GetService("finance").(services.InterfaceFinanceService)
	summary, err := financeService.GetFinanceSummary()
	if err != nil {
		logger.Error("failed to compute finance summary: %v", err)
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, summary)
}

// HandleFinanceFunc returns a gin handler dispatching to the named method
func HandleFinanceFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewFinanceController(ctx, container)

		switch method {
		case "getTransactions":
			controller.GetTransactions()
		case "getTransaction":
			controller.GetTransaction()
		case "createTransaction":
			controller.CreateTransaction()
		case "updateTransaction":
			controller.UpdateTransaction()
		case "deleteTransaction":
			controller.DeleteTransaction()
		case "getSummary":
			controller.GetSummary()
		default:
			response.ParamError(ctx, "invalid method")
		}
	}
}

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

// InterfaceEventController defines the event controller interface
type InterfaceEventController interface {
	GetEvents()
	GetEvent()
	GetUpcomingEvents()
	CreateEvent()
	UpdateEvent()
	DeleteEvent()
}

// EventController handles village event requests
type EventController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewEventController creates a new event controller
func NewEventController(ctx *gin.Context, container *container.ServiceContainer) *EventController {
	return &EventController{
		Ctx:       ctx,
		Container: container,
	}
}

// EventRequest is the create payload
type EventRequest struct {
	Name             string              `json:"name" binding:"required" example:"Kerja Bakti"`
	Description      *string             `json:"description"`
	Location         string              `json:"location" binding:"required" example:"Balai Desa"`
	EventDate        string              `json:"event_date" binding:"required" example:"2024-08-17"`
	Organizer        string              `json:"organizer" binding:"required" example:"Karang Taruna"`
	ParticipantCount *int                `json:"participant_count" binding:"omitempty,gte=0"`
	Budget           decimal.NullDecimal `json:"budget"`
	Status           string              `json:"status" binding:"omitempty,oneof=planned ongoing completed cancelled"`
}

// Validate enforces the constraints gin's binding tags cannot express
func (r *EventRequest) Validate() error {
	if r.Budget.Valid && !r.Budget.Decimal.IsPositive() {
		return errors.New("budget must be greater than 0 when set")
	}
	return nil
}

// UpdateEventRequest is the sparse update payload; nullable fields accept an
// explicit null to clear the stored value
type UpdateEventRequest struct {
	Name             models.Optional[string]          `json:"name"`
	Description      models.Optional[string]          `json:"description"`
	Location         models.Optional[string]          `json:"location"`
	EventDate        models.Optional[string]          `json:"event_date"`
	Organizer        models.Optional[string]          `json:"organizer"`
	ParticipantCount models.Optional[int]             `json:"participant_count"`
	Budget           models.Optional[decimal.Decimal] `json:"budget"`
	Status           models.Optional[string]          `json:"status"`
}

// toUpdates validates the change set and converts it to column assignments
func (r *UpdateEventRequest) toUpdates() (map[string]interface{}, error) {
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
	if r.Location.Defined {
		location, ok := r.Location.Get()
		if !ok || location == "" {
			return nil, errors.New("location must be a non-empty string")
		}
		updates["location"] = location
	}
	if r.EventDate.Defined {
		eventDate, ok := r.EventDate.Get()
		if !ok || eventDate == "" {
			return nil, errors.New("event_date must be a non-empty string")
		}
		updates["event_date"] = eventDate
	}
	if r.Organizer.Defined {
		organizer, ok := r.Organizer.Get()
		if !ok || organizer == "" {
			return nil, errors.New("organizer must be a non-empty string")
		}
		updates["organizer"] = organizer
	}
	if r.ParticipantCount.Defined {
		if r.ParticipantCount.Value != nil && *r.ParticipantCount.Value < 0 {
			return nil, errors.New("participant_count must be zero or greater")
		}
		updates["participant_count"] = r.ParticipantCount.Value
	}
	if r.Budget.Defined {
		if r.Budget.Value != nil && !r.Budget.Value.IsPositive() {
			return nil, errors.New("budget must be greater than 0 when set")
		}
		updates["budget"] = r.Budget.Value
	}
	if r.Status.Defined {
		status, ok := r.Status.Get()
		if !ok || !models.IsValidEventStatus(status) {
			return nil, errors.New("status must be one of planned, ongoing, completed, cancelled")
		}
		updates["status"] = status
	}
	return updates, nil
}

// GetEvents returns all events
// @Summary      List events
// @Tags         Event
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /events [get]
func (c *EventController) GetEvents() {
	eventService := c.Container.GetService("event").(services.InterfaceEventService)
	events, err := eventService.GetAllEvents()
	if err != nil {
		logger.Error("failed to list events: %v", err)
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, events)
}

// GetEvent returns one event by id
// @Summary      Get event
// @Tags         Event
// @Produce      json
// @Param        id path int true "Event ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /events/{id} [get]
func (c *EventController) GetEvent() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	eventService := c.Container.GetService("event").(services.InterfaceEventService)
	event, err := eventService.GetEventByID(id)
	if err != nil {
		logger.Error("failed to fetch event %d: %v", id, err)
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}
	if event == nil {
		response.NotFound(c.Ctx, code.ErrEventNotFound)
		return
	}

	response.Success(c.Ctx, event)
}

// GetUpcomingEvents returns the events still planned or ongoing
// @Summary      List upcoming events
// @Description  Status filter only: completed and cancelled events are excluded, event_date is not consulted
// @Tags         Event
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /events/upcoming [get]
func (c *EventController) GetUpcomingEvents() {
	eventService := c.Container.GetService("event").(services.InterfaceEventService)
	events, err := eventService.GetUpcomingEvents()
	if err != nil {
		logger.Error("failed to list upcoming events: %v", err)
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, events)
}

// CreateEvent creates a new event
// @Summary      Create event
// @Description  Registers a village event; status defaults to planned
// @Tags         Event
// @Accept       json
// @Produce      json
// @Param        request body EventRequest true "Event data"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /events [post]
func (c *EventController) CreateEvent() {
	var req EventRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind, nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	event := &models.Event{
		Name:             req.Name,
		Description:      req.Description,
		Location:         req.Location,
		EventDate:        req.EventDate,
		Organizer:        req.Organizer,
		ParticipantCount: req.ParticipantCount,
		Budget:           req.Budget,
		Status:           req.Status,
	}

	eventService := c.Container.GetService("event").(services.InterfaceEventService)
	if err := eventService.CreateEvent(event); err != nil {
		logger.Error("failed to create event: %v", err)
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Created(c.Ctx, event)
}

// UpdateEvent updates an existing event
// @Summary      Update event
// @Description  Applies a partial update; absent fields keep their stored value
// @Tags         Event
// @Accept       json
// @Produce      json
// @Param        id path int true "Event ID"
// @Param        request body UpdateEventRequest true "Fields to change"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /events/{id} [put]
func (c *EventController) UpdateEvent() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	var req UpdateEventRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind, nil)
		return
	}

	updates, err := req.toUpdates()
	if err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	eventService := c.Container.GetService("event").(services.InterfaceEventService)
	event, err := eventService.UpdateEvent(id, updates)
	if err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			response.NotFound(c.Ctx, code.ErrEventNotFound)
			return
		}
		logger.Error("failed to update event %d: %v", id, err)
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, event)
}

// DeleteEvent deletes an event
// @Summary      Delete event
// @Tags         Event
// @Produce      json
// @Param        id path int true "Event ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /events/{id} [delete]
func (c *EventController) DeleteEvent() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	eventService := c.Container.GetService("event").(services.InterfaceEventService)
	deleted, err := eventService.DeleteEvent(id)
	if err != nil {
		logger.Error("failed to delete event %d: %v", id, err)
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, gin.H{"deleted": deleted})
}

// HandleEventFunc returns a gin handler dispatching to the named method
func HandleEventFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewEventController(ctx, container)

		switch method {
		case "getEvents":
			controller.GetEvents()
		case "getEvent":
			controller.GetEvent()
		case "getUpcomingEvents":
			controller.GetUpcomingEvents()
		case "createEvent":
			controller.CreateEvent()
		case "updateEvent":
			controller.UpdateEvent()
		case "deleteEvent":
			controller.DeleteEvent()
		default:
			response.ParamError(ctx, "invalid method")
		}
	}
}

package controllers

import (
	"log/slog"
	"net/http"

	"eventmanager/internal/delivery/http/helpers"
	"eventmanager/internal/domain"
)

// CreateEventRequest is the request body for POST /api/events.
type CreateEventRequest struct {
	Name   string `json:"name" validate:"required,max=200"`
	Date   string `json:"date" validate:"required,ddmmyyyy"`
	Budget int64  `json:"budget" validate:"gte=0"`
}

// UpdateEventRequest is the request body for PATCH /api/events/{eventID}. Omitted fields are unchanged.
type UpdateEventRequest struct {
	Name   *string `json:"name" validate:"omitempty,max=200"`
	Date   *string `json:"date" validate:"omitempty,ddmmyyyy"`
	Budget *int64  `json:"budget" validate:"omitempty,gte=0"`
}

// EventResponse is the success envelope carrying one event.
type EventResponse struct {
	Message string              `json:"message"`
	Event   *domain.EventRecord `json:"event"`
}

// EventDetailResponse is the success envelope for GET /api/events/{eventID}.
type EventDetailResponse struct {
	Message string              `json:"message"`
	Event   *domain.EventDetail `json:"event"`
}

// EventListResponse is the success envelope for GET /api/events.
type EventListResponse struct {
	Message string                `json:"message"`
	Events  []*domain.EventRecord `json:"events"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// ListEvents godoc
// @Summary List events
// @Description Returns every event ordered by id, without dependent collections.
// @Tags events
// @Produce json
// @Success 200 {object} controllers.EventListResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.List(r.Context())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	if events == nil {
		events = []*domain.EventRecord{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, EventListResponse{Message: "Events retrieved", Events: events})
}

// CreateEvent godoc
// @Summary Create an event
// @Description Creates an event. date must be DD-MM-YYYY; budget is in minor currency units and must not be negative. A 500 from a failed notification can follow a committed create; list events before retrying.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body CreateEventRequest true "Event data"
// @Success 201 {object} controllers.EventResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.Create(r.Context(), helpers.Text(req.Name), req.Date, req.Budget)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, EventResponse{Message: "Event created", Event: event})
}

// GetEvent godoc
// @Summary Get an event
// @Description Returns the event with its participants, speakers, vendors and feedback.
// @Tags events
// @Produce json
// @Param eventID path int true "Event ID"
// @Success 200 {object} controllers.EventDetailResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events/{eventID} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.PathID(r, "eventID")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	event, err := c.Service.Get(r.Context(), id)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, EventDetailResponse{Message: "Event retrieved", Event: event})
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Applies only the supplied fields.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path int true "Event ID"
// @Param event body UpdateEventRequest true "Fields to change"
// @Success 200 {object} controllers.EventResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events/{eventID} [patch]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.PathID(r, "eventID")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req UpdateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.Update(r.Context(), id, domain.EventUpdate{
		Name:   helpers.TextPtr(req.Name),
		Date:   req.Date,
		Budget: req.Budget,
	})
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, EventResponse{Message: "Event updated", Event: event})
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Deletes the event together with its participants, speakers, vendors and feedback.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventID path int true "Event ID"
// @Success 200 {object} helpers.DeletedResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events/{eventID} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.PathID(r, "eventID")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := c.Service.Delete(r.Context(), id); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, helpers.DeletedResponse{Message: "Event deleted", ID: id})
}

package controllers

import (
	"log/slog"
	"net/http"

	"eventmanager/internal/delivery/http/helpers"
	"eventmanager/internal/domain"
)

// CreateParticipantRequest is the request body for POST /api/participants.
type CreateParticipantRequest struct {
	EventID int64  `json:"event_id" validate:"required,gt=0"`
	Name    string `json:"name" validate:"required,max=200"`
}

// UpdateParticipantRequest is the request body for PATCH /api/participants/{id}.
type UpdateParticipantRequest struct {
	Name *string `json:"name" validate:"omitempty,max=200"`
}

type ParticipantResponse struct {
	Message     string                    `json:"message"`
	Participant *domain.ParticipantRecord `json:"participant"`
}

type ParticipantListResponse struct {
	Message      string                      `json:"message"`
	Participants []*domain.ParticipantRecord `json:"participants"`
}

type ParticipantController struct {
	Logger  *slog.Logger
	Service domain.ParticipantService
}

func NewParticipantController(logger *slog.Logger, svc domain.ParticipantService) *ParticipantController {
	return &ParticipantController{Logger: logger, Service: svc}
}

// RegisterParticipant godoc
// @Summary Register a participant
// @Description Registers a participant for an existing event.
// @Tags participants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param participant body CreateParticipantRequest true "Participant data"
// @Success 201 {object} controllers.ParticipantResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse "event not found"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /participants [post]
func (c *ParticipantController) RegisterParticipant(w http.ResponseWriter, r *http.Request) {
	var req CreateParticipantRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	p, err := c.Service.Create(r.Context(), req.EventID, helpers.Text(req.Name))
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, ParticipantResponse{Message: "Participant registered", Participant: p})
}

// ListParticipants godoc
// @Summary List an event's participants
// @Tags participants
// @Produce json
// @Param event_id query int true "Event ID"
// @Success 200 {object} controllers.ParticipantListResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /participants [get]
func (c *ParticipantController) ListParticipants(w http.ResponseWriter, r *http.Request) {
	eventID, err := helpers.QueryID(r, "event_id")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	list, err := c.Service.ListByEvent(r.Context(), eventID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	if list == nil {
		list = []*domain.ParticipantRecord{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ParticipantListResponse{Message: "Participants retrieved", Participants: list})
}

// UpdateParticipant godoc
// @Summary Update a participant
// @Tags participants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Participant ID"
// @Param participant body UpdateParticipantRequest true "Fields to change"
// @Success 200 {object} controllers.ParticipantResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /participants/{id} [patch]
func (c *ParticipantController) UpdateParticipant(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.PathID(r, "id")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req UpdateParticipantRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	p, err := c.Service.Update(r.Context(), id, domain.ParticipantUpdate{Name: helpers.TextPtr(req.Name)})
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ParticipantResponse{Message: "Participant updated", Participant: p})
}

// DeleteParticipant godoc
// @Summary Delete a participant
// @Tags participants
// @Produce json
// @Security BearerAuth
// @Param id path int true "Participant ID"
// @Success 200 {object} helpers.DeletedResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /participants/{id} [delete]
func (c *ParticipantController) DeleteParticipant(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.PathID(r, "id")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := c.Service.Delete(r.Context(), id); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, helpers.DeletedResponse{Message: "Participant deleted", ID: id})
}

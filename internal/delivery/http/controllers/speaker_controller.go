package controllers

import (
	"log/slog"
	"net/http"

	"eventmanager/internal/delivery/http/helpers"
	"eventmanager/internal/domain"
)

// CreateSpeakerRequest is the request body for POST /api/speakers.
type CreateSpeakerRequest struct {
	EventID     int64  `json:"event_id" validate:"required,gt=0"`
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
}

// UpdateSpeakerRequest is the request body for PATCH /api/speakers/{id}.
type UpdateSpeakerRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=200"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
}

type SpeakerResponse struct {
	Message string                `json:"message"`
	Speaker *domain.SpeakerRecord `json:"speaker"`
}

type SpeakerListResponse struct {
	Message  string                  `json:"message"`
	Speakers []*domain.SpeakerRecord `json:"speakers"`
}

type SpeakerController struct {
	Logger  *slog.Logger
	Service domain.SpeakerService
}

func NewSpeakerController(logger *slog.Logger, svc domain.SpeakerService) *SpeakerController {
	return &SpeakerController{Logger: logger, Service: svc}
}

// RegisterSpeaker godoc
// @Summary Register a speaker
// @Tags speakers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param speaker body CreateSpeakerRequest true "Speaker data"
// @Success 201 {object} controllers.SpeakerResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse "event not found"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /speakers [post]
func (c *SpeakerController) RegisterSpeaker(w http.ResponseWriter, r *http.Request) {
	var req CreateSpeakerRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	s, err := c.Service.Create(r.Context(), req.EventID, helpers.Text(req.Name), helpers.Text(req.Description))
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, SpeakerResponse{Message: "Speaker registered", Speaker: s})
}

// ListSpeakers godoc
// @Summary List an event's speakers
// @Tags speakers
// @Produce json
// @Param event_id query int true "Event ID"
// @Success 200 {object} controllers.SpeakerListResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /speakers [get]
func (c *SpeakerController) ListSpeakers(w http.ResponseWriter, r *http.Request) {
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
		list = []*domain.SpeakerRecord{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, SpeakerListResponse{Message: "Speakers retrieved", Speakers: list})
}

// UpdateSpeaker godoc
// @Summary Update a speaker
// @Tags speakers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Speaker ID"
// @Param speaker body UpdateSpeakerRequest true "Fields to change"
// @Success 200 {object} controllers.SpeakerResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /speakers/{id} [patch]
func (c *SpeakerController) UpdateSpeaker(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.PathID(r, "id")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req UpdateSpeakerRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	s, err := c.Service.Update(r.Context(), id, domain.SpeakerUpdate{
		Name:        helpers.TextPtr(req.Name),
		Description: helpers.TextPtr(req.Description),
	})
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, SpeakerResponse{Message: "Speaker updated", Speaker: s})
}

// DeleteSpeaker godoc
// @Summary Delete a speaker
// @Tags speakers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Speaker ID"
// @Success 200 {object} helpers.DeletedResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /speakers/{id} [delete]
func (c *SpeakerController) DeleteSpeaker(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.PathID(r, "id")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := c.Service.Delete(r.Context(), id); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, helpers.DeletedResponse{Message: "Speaker deleted", ID: id})
}

package controllers

import (
	"log/slog"
	"net/http"

	"eventmanager/internal/delivery/http/helpers"
	"eventmanager/internal/domain"
)

// CreateFeedbackRequest is the request body for POST /api/feedback.
type CreateFeedbackRequest struct {
	EventID int64  `json:"event_id" validate:"required,gt=0"`
	Content string `json:"content" validate:"required,max=5000"`
}

// UpdateFeedbackRequest is the request body for PATCH /api/feedback/{id}.
type UpdateFeedbackRequest struct {
	Content *string `json:"content" validate:"omitempty,max=5000"`
}

type FeedbackResponse struct {
	Message  string                 `json:"message"`
	Feedback *domain.FeedbackRecord `json:"feedback"`
}

type FeedbackListResponse struct {
	Message  string                   `json:"message"`
	Feedback []*domain.FeedbackRecord `json:"feedback"`
}

type FeedbackController struct {
	Logger  *slog.Logger
	Service domain.FeedbackService
}

func NewFeedbackController(logger *slog.Logger, svc domain.FeedbackService) *FeedbackController {
	return &FeedbackController{Logger: logger, Service: svc}
}

// AddFeedback godoc
// @Summary Add feedback to an event
// @Tags feedback
// @Accept json
// @Produce json
// @Param feedback body CreateFeedbackRequest true "Feedback"
// @Success 201 {object} controllers.FeedbackResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse "event not found"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /feedback [post]
func (c *FeedbackController) AddFeedback(w http.ResponseWriter, r *http.Request) {
	var req CreateFeedbackRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	f, err := c.Service.Create(r.Context(), req.EventID, helpers.Text(req.Content))
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, FeedbackResponse{Message: "Feedback added", Feedback: f})
}

// ListFeedback godoc
// @Summary List an event's feedback
// @Tags feedback
// @Produce json
// @Param event_id query int true "Event ID"
// @Success 200 {object} controllers.FeedbackListResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /feedback [get]
func (c *FeedbackController) ListFeedback(w http.ResponseWriter, r *http.Request) {
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
		list = []*domain.FeedbackRecord{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, FeedbackListResponse{Message: "Feedback retrieved", Feedback: list})
}

// UpdateFeedback godoc
// @Summary Update feedback
// @Tags feedback
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Feedback ID"
// @Param feedback body UpdateFeedbackRequest true "Fields to change"
// @Success 200 {object} controllers.FeedbackResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /feedback/{id} [patch]
func (c *FeedbackController) UpdateFeedback(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.PathID(r, "id")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req UpdateFeedbackRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	f, err := c.Service.Update(r.Context(), id, domain.FeedbackUpdate{Content: helpers.TextPtr(req.Content)})
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, FeedbackResponse{Message: "Feedback updated", Feedback: f})
}

// DeleteFeedback godoc
// @Summary Delete feedback
// @Tags feedback
// @Produce json
// @Security BearerAuth
// @Param id path int true "Feedback ID"
// @Success 200 {object} helpers.DeletedResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /feedback/{id} [delete]
func (c *FeedbackController) DeleteFeedback(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.PathID(r, "id")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := c.Service.Delete(r.Context(), id); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, helpers.DeletedResponse{Message: "Feedback deleted", ID: id})
}

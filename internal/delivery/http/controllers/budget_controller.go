package controllers

import (
	"log/slog"
	"net/http"

	"eventmanager/internal/delivery/http/helpers"
	"eventmanager/internal/domain"
)

// AdjustBudgetRequest is the request body for POST /api/budget/adjust. amount is a signed delta.
type AdjustBudgetRequest struct {
	EventID int64  `json:"event_id" validate:"required,gt=0"`
	Amount  *int64 `json:"amount" validate:"required"`
}

// EditBudgetRequest is the request body for PUT /api/budget.
type EditBudgetRequest struct {
	EventID   int64  `json:"event_id" validate:"required,gt=0"`
	NewBudget *int64 `json:"new_budget" validate:"required,gte=0"`
}

// BudgetResponse is the success envelope for GET /api/budget.
type BudgetResponse struct {
	Message string `json:"message"`
	EventID int64  `json:"event_id"`
	Budget  int64  `json:"budget"`
}

// BudgetController exposes the event budget operations.
type BudgetController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewBudgetController(logger *slog.Logger, svc domain.EventService) *BudgetController {
	return &BudgetController{
		Logger:  logger,
		Service: svc,
	}
}

// GetBudget godoc
// @Summary Get an event's budget
// @Tags budget
// @Produce json
// @Param event_id query int true "Event ID"
// @Success 200 {object} controllers.BudgetResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /budget [get]
func (c *BudgetController) GetBudget(w http.ResponseWriter, r *http.Request) {
	eventID, err := helpers.QueryID(r, "event_id")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	budget, err := c.Service.GetBudget(r.Context(), eventID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, BudgetResponse{Message: "Budget retrieved", EventID: eventID, Budget: budget})
}

// AdjustBudget godoc
// @Summary Adjust an event's budget
// @Description Adds amount (which may be negative) to the current budget. A result below zero is rejected and the budget is unchanged.
// @Tags budget
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body AdjustBudgetRequest true "Delta"
// @Success 200 {object} controllers.EventResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /budget/adjust [post]
func (c *BudgetController) AdjustBudget(w http.ResponseWriter, r *http.Request) {
	var req AdjustBudgetRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.UpdateBudget(r.Context(), req.EventID, *req.Amount)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, EventResponse{Message: "Budget updated", Event: event})
}

// EditBudget godoc
// @Summary Replace an event's budget
// @Tags budget
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body EditBudgetRequest true "New budget"
// @Success 200 {object} controllers.EventResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /budget [put]
func (c *BudgetController) EditBudget(w http.ResponseWriter, r *http.Request) {
	var req EditBudgetRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.EditBudget(r.Context(), req.EventID, *req.NewBudget)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, EventResponse{Message: "Budget updated", Event: event})
}

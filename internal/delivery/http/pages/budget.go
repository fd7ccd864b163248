package pages

import (
	"context"
	"net/http"

	"eventmanager/internal/delivery/http/helpers"
	"eventmanager/internal/domain"
)

// budgetView backs the budget page and both budget forms. Mode is "show", "adjust" or "edit".
type budgetView struct {
	Mode      string
	Action    string
	Events    []*domain.EventRecord
	EventID   int64
	EventName string
	Budget    int64
	HasBudget bool
	Amount    string
}

func (h *Handler) ShowBudget(w http.ResponseWriter, r *http.Request) {
	events := h.eventOptions(r)
	view := budgetView{Mode: "show", Events: events}
	if r.URL.Query().Get("event_id") == "" {
		h.render(w, r, http.StatusOK, "budget.html", "Budget", nil, view)
		return
	}
	eventID, err := helpers.QueryID(r, "event_id")
	if err != nil {
		status, flash := inputError(err.Error())
		h.render(w, r, status, "budget.html", "Budget", flash, view)
		return
	}
	view.EventID = eventID
	view.EventName = eventName(events, eventID)
	budget, err := h.Events.GetBudget(r.Context(), eventID)
	if err != nil {
		status, flash := h.failure(r, err)
		h.render(w, r, status, "budget.html", "Budget", flash, view)
		return
	}
	view.Budget, view.HasBudget = budget, true
	h.render(w, r, http.StatusOK, "budget.html", "Budget", nil, view)
}

func (h *Handler) AdjustBudgetForm(w http.ResponseWriter, r *http.Request) {
	h.budgetForm(w, r, "adjust", "Adjust budget")
}

func (h *Handler) EditBudgetForm(w http.ResponseWriter, r *http.Request) {
	h.budgetForm(w, r, "edit", "Edit budget")
}

func (h *Handler) budgetForm(w http.ResponseWriter, r *http.Request, mode, title string) {
	eventID, _ := helpers.QueryID(r, "event_id")
	h.render(w, r, http.StatusOK, "budget.html", title, nil, budgetView{
		Mode:    mode,
		Action:  "/budget/" + mode,
		Events:  h.eventOptions(r),
		EventID: eventID,
	})
}

// AdjustBudget adds the signed amount to the event's budget.
func (h *Handler) AdjustBudget(w http.ResponseWriter, r *http.Request) {
	h.submitBudget(w, r, "adjust", "Adjust budget", "amount", "Budget updated", h.Events.UpdateBudget)
}

// EditBudget replaces the event's budget.
func (h *Handler) EditBudget(w http.ResponseWriter, r *http.Request) {
	h.submitBudget(w, r, "edit", "Edit budget", "new_budget", "Budget changed", h.Events.EditBudget)
}

type budgetOp func(ctx context.Context, id int64, value int64) (*domain.EventRecord, error)

func (h *Handler) submitBudget(w http.ResponseWriter, r *http.Request, mode, title, field, success string, op budgetOp) {
	view := budgetView{
		Mode:   mode,
		Action: "/budget/" + mode,
		Amount: r.PostFormValue(field),
	}
	fail := func(status int, flash *Flash) {
		view.Events = h.eventOptions(r)
		h.render(w, r, status, "budget.html", title, flash, view)
	}
	eventID, err := helpers.ParseID("event_id", r.PostFormValue("event_id"))
	if err != nil {
		fail(inputError(err.Error()))
		return
	}
	view.EventID = eventID
	value, err := helpers.ParseAmount(field, view.Amount)
	if err != nil {
		fail(inputError(err.Error()))
		return
	}
	if _, err := op(r.Context(), eventID, value); err != nil {
		fail(h.failure(r, err))
		return
	}
	h.redirect(w, r, withEventID("/budget", eventID), success)
}

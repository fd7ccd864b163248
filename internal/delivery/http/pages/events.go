package pages

import (
	"fmt"
	"net/http"
	"strconv"

	"eventmanager/internal/delivery/http/helpers"
	"eventmanager/internal/domain"
)

// eventForm holds the submitted values so a failed POST can re-render them.
type eventForm struct {
	Action string
	Submit string
	Name   string
	Date   string
	Budget string
}

func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "index.html", "Event Manager", nil, h.eventOptions(r))
}

func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.Events.List(r.Context())
	if err != nil {
		status, flash := h.failure(r, err)
		h.render(w, r, status, "events.html", "Events", flash, nil)
		return
	}
	h.render(w, r, http.StatusOK, "events.html", "Events", nil, events)
}

func (h *Handler) NewEventForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "event_form.html", "New event", nil, eventForm{Action: "/events/new", Submit: "Create"})
}

func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	form := eventForm{
		Action: "/events/new",
		Submit: "Create",
		Name:   r.PostFormValue("name"),
		Date:   r.PostFormValue("date"),
		Budget: r.PostFormValue("budget"),
	}
	if form.Budget == "" {
		form.Budget = "0"
	}
	fail := func(status int, flash *Flash) {
		h.render(w, r, status, "event_form.html", "New event", flash, form)
	}
	if !helpers.IsValidDate(form.Date) {
		fail(inputError("date must be a date in DD-MM-YYYY format"))
		return
	}
	budget, err := helpers.ParseAmount("budget", form.Budget)
	if err != nil {
		fail(inputError(err.Error()))
		return
	}
	if _, err := h.Events.Create(r.Context(), helpers.Text(form.Name), form.Date, budget); err != nil {
		fail(h.failure(r, err))
		return
	}
	h.redirect(w, r, "/events", "Event created")
}

func (h *Handler) EditEventForm(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.PathID(r, "id")
	if err != nil {
		status, flash := inputError(err.Error())
		h.render(w, r, status, "events.html", "Events", flash, h.eventOptions(r))
		return
	}
	event, err := h.Events.Get(r.Context(), id)
	if err != nil {
		status, flash := h.failure(r, err)
		h.render(w, r, status, "events.html", "Events", flash, h.eventOptions(r))
		return
	}
	h.render(w, r, http.StatusOK, "event_form.html", "Edit event", nil, eventForm{
		Action: fmt.Sprintf("/events/%d/edit", id),
		Submit: "Save",
		Name:   event.Name,
		Date:   event.Date,
		Budget: strconv.FormatInt(event.Budget, 10),
	})
}

// UpdateEvent applies the non-empty form fields.
func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.PathID(r, "id")
	if err != nil {
		status, flash := inputError(err.Error())
		h.render(w, r, status, "events.html", "Events", flash, h.eventOptions(r))
		return
	}
	form := eventForm{
		Action: fmt.Sprintf("/events/%d/edit", id),
		Submit: "Save",
		Name:   r.PostFormValue("name"),
		Date:   r.PostFormValue("date"),
		Budget: r.PostFormValue("budget"),
	}
	fail := func(status int, flash *Flash) {
		h.render(w, r, status, "event_form.html", "Edit event", flash, form)
	}
	var upd domain.EventUpdate
	if form.Name != "" {
		name := helpers.Text(form.Name)
		upd.Name = &name
	}
	if form.Date != "" {
		if !helpers.IsValidDate(form.Date) {
			fail(inputError("date must be a date in DD-MM-YYYY format"))
			return
		}
		upd.Date = &form.Date
	}
	if form.Budget != "" {
		budget, err := helpers.ParseAmount("budget", form.Budget)
		if err != nil {
			fail(inputError(err.Error()))
			return
		}
		upd.Budget = &budget
	}
	if _, err := h.Events.Update(r.Context(), id, upd); err != nil {
		fail(h.failure(r, err))
		return
	}
	h.redirect(w, r, "/events", "Event updated")
}

func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.PathID(r, "id")
	if err != nil {
		_, flash := inputError(err.Error())
		h.redirectWith(w, r, "/events", *flash)
		return
	}
	if err := h.Events.Delete(r.Context(), id); err != nil {
		_, flash := h.failure(r, err)
		h.redirectWith(w, r, "/events", *flash)
		return
	}
	h.redirect(w, r, "/events", "Event deleted")
}

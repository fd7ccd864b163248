package pages

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"eventmanager/internal/delivery/http/helpers"
	"eventmanager/internal/domain"
)

// dependentKind adapts one dependent service to the shared list and form pages.
// update and remove are nil for kinds that only support listing and creation.
type dependentKind struct {
	View KindView

	list   func(ctx context.Context, eventID int64) ([]Row, error)
	get    func(ctx context.Context, id int64) (dependentValues, error)
	create func(ctx context.Context, eventID int64, primary, extra string) error
	update func(ctx context.Context, id int64, primary, extra *string) error
	remove func(ctx context.Context, id int64) error
}

// KindView is the template-facing description of a dependent kind.
type KindView struct {
	Path         string
	Title        string
	Singular     string
	PrimaryName  string
	PrimaryLabel string
	LongPrimary  bool
	ExtraName    string
	ExtraLabel   string
	Editable     bool
	// Created is the flash shown after a successful create.
	Created string
}

type dependentValues struct {
	EventID int64
	Primary string
	Extra   string
}

// Row is one line of a dependent listing.
type Row struct {
	ID     int64
	Label  string
	Detail string
}

type listView struct {
	Kind      KindView
	Events    []*domain.EventRecord
	EventID   int64
	EventName string
	Rows      []Row
}

type formView struct {
	Kind      KindView
	Action    string
	Submit    string
	ShowEvent bool
	Events    []*domain.EventRecord
	EventID   int64
	Primary   string
	Extra     string
}

func (h *Handler) dependentKinds() map[string]*dependentKind {
	participants := &dependentKind{
		View: KindView{Path: "participants", Title: "Participants", Singular: "Participant", PrimaryName: "name", PrimaryLabel: "Name", Editable: true, Created: "Participant registered"},
		list: func(ctx context.Context, eventID int64) ([]Row, error) {
			recs, err := h.Participants.ListByEvent(ctx, eventID)
			rows := make([]Row, 0, len(recs))
			for _, p := range recs {
				rows = append(rows, Row{ID: p.ID, Label: p.DisplayName})
			}
			return rows, err
		},
		get: func(ctx context.Context, id int64) (dependentValues, error) {
			p, err := h.Participants.Get(ctx, id)
			if err != nil {
				return dependentValues{}, err
			}
			return dependentValues{EventID: p.EventID, Primary: p.Name}, nil
		},
		create: func(ctx context.Context, eventID int64, name, _ string) error {
			_, err := h.Participants.Create(ctx, eventID, name)
			return err
		},
		update: func(ctx context.Context, id int64, name, _ *string) error {
			_, err := h.Participants.Update(ctx, id, domain.ParticipantUpdate{Name: name})
			return err
		},
		remove: func(ctx context.Context, id int64) error { return h.Participants.Delete(ctx, id) },
	}

	speakers := &dependentKind{
		View: KindView{Path: "speakers", Title: "Speakers", Singular: "Speaker", PrimaryName: "name", PrimaryLabel: "Name",
			ExtraName: "description", ExtraLabel: "Description", Editable: true, Created: "Speaker registered"},
		list: func(ctx context.Context, eventID int64) ([]Row, error) {
			recs, err := h.Speakers.ListByEvent(ctx, eventID)
			rows := make([]Row, 0, len(recs))
			for _, s := range recs {
				rows = append(rows, Row{ID: s.ID, Label: s.DisplayName, Detail: s.Description})
			}
			return rows, err
		},
		get: func(ctx context.Context, id int64) (dependentValues, error) {
			s, err := h.Speakers.Get(ctx, id)
			if err != nil {
				return dependentValues{}, err
			}
			return dependentValues{EventID: s.EventID, Primary: s.Name, Extra: s.Description}, nil
		},
		create: func(ctx context.Context, eventID int64, name, description string) error {
			_, err := h.Speakers.Create(ctx, eventID, name, description)
			return err
		},
		update: func(ctx context.Context, id int64, name, description *string) error {
			_, err := h.Speakers.Update(ctx, id, domain.SpeakerUpdate{Name: name, Description: description})
			return err
		},
		remove: func(ctx context.Context, id int64) error { return h.Speakers.Delete(ctx, id) },
	}

	vendors := &dependentKind{
		View: KindView{Path: "vendors", Title: "Vendors", Singular: "Vendor", PrimaryName: "name", PrimaryLabel: "Name",
			ExtraName: "services", ExtraLabel: "Services", Editable: true, Created: "Vendor registered"},
		list: func(ctx context.Context, eventID int64) ([]Row, error) {
			recs, err := h.Vendors.ListByEvent(ctx, eventID)
			rows := make([]Row, 0, len(recs))
			for _, v := range recs {
				rows = append(rows, Row{ID: v.ID, Label: v.DisplayName, Detail: v.Services})
			}
			return rows, err
		},
		get: func(ctx context.Context, id int64) (dependentValues, error) {
			v, err := h.Vendors.Get(ctx, id)
			if err != nil {
				return dependentValues{}, err
			}
			return dependentValues{EventID: v.EventID, Primary: v.Name, Extra: v.Services}, nil
		},
		create: func(ctx context.Context, eventID int64, name, services string) error {
			_, err := h.Vendors.Create(ctx, eventID, name, services)
			return err
		},
		update: func(ctx context.Context, id int64, name, services *string) error {
			_, err := h.Vendors.Update(ctx, id, domain.VendorUpdate{Name: name, Services: services})
			return err
		},
		remove: func(ctx context.Context, id int64) error { return h.Vendors.Delete(ctx, id) },
	}

	feedback := &dependentKind{
		View: KindView{Path: "feedback", Title: "Feedback", Singular: "Feedback", PrimaryName: "content", PrimaryLabel: "Feedback", LongPrimary: true,
			Created: "Feedback added"},
		list: func(ctx context.Context, eventID int64) ([]Row, error) {
			recs, err := h.Feedback.ListByEvent(ctx, eventID)
			rows := make([]Row, 0, len(recs))
			for _, f := range recs {
				rows = append(rows, Row{ID: f.ID, Label: f.DisplayName, Detail: f.Content})
			}
			return rows, err
		},
		create: func(ctx context.Context, eventID int64, content, _ string) error {
			_, err := h.Feedback.Create(ctx, eventID, content)
			return err
		},
	}

	return map[string]*dependentKind{
		participants.View.Path: participants,
		speakers.View.Path:     speakers,
		vendors.View.Path:      vendors,
		feedback.View.Path:     feedback,
	}
}

func eventName(events []*domain.EventRecord, id int64) string {
	for _, e := range events {
		if e.ID == id {
			return e.Name
		}
	}
	return ""
}

// listDependents shows the kind's records for ?event_id=. Without an event only the picker is shown.
func (h *Handler) listDependents(k *dependentKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		events := h.eventOptions(r)
		view := listView{Kind: k.View, Events: events}
		if r.URL.Query().Get("event_id") == "" {
			h.render(w, r, http.StatusOK, "list.html", k.View.Title, nil, view)
			return
		}
		eventID, err := helpers.QueryID(r, "event_id")
		if err != nil {
			status, flash := inputError(err.Error())
			h.render(w, r, status, "list.html", k.View.Title, flash, view)
			return
		}
		view.EventID = eventID
		view.EventName = eventName(events, eventID)
		rows, err := k.list(r.Context(), eventID)
		if err != nil {
			status, flash := h.failure(r, err)
			h.render(w, r, status, "list.html", k.View.Title, flash, view)
			return
		}
		view.Rows = rows
		h.render(w, r, http.StatusOK, "list.html", k.View.Title, nil, view)
	}
}

func (h *Handler) newDependentForm(k *dependentKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID, _ := helpers.QueryID(r, "event_id")
		h.render(w, r, http.StatusOK, "form.html", "New "+k.View.Singular, nil, formView{
			Kind:      k.View,
			Action:    "/" + k.View.Path + "/new",
			Submit:    "Register",
			ShowEvent: true,
			Events:    h.eventOptions(r),
			EventID:   eventID,
		})
	}
}

func (h *Handler) createDependent(k *dependentKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view := formView{
			Kind:      k.View,
			Action:    "/" + k.View.Path + "/new",
			Submit:    "Register",
			ShowEvent: true,
			Primary:   r.PostFormValue(k.View.PrimaryName),
		}
		if k.View.ExtraName != "" {
			view.Extra = r.PostFormValue(k.View.ExtraName)
		}
		fail := func(status int, flash *Flash) {
			view.Events = h.eventOptions(r)
			h.render(w, r, status, "form.html", "New "+k.View.Singular, flash, view)
		}
		eventID, err := helpers.ParseID("event_id", r.PostFormValue("event_id"))
		if err != nil {
			fail(inputError(err.Error()))
			return
		}
		view.EventID = eventID
		if err := k.create(r.Context(), eventID, helpers.Text(view.Primary), helpers.Text(view.Extra)); err != nil {
			fail(h.failure(r, err))
			return
		}
		h.redirect(w, r, withEventID("/"+k.View.Path, eventID), k.View.Created)
	}
}

func (h *Handler) editDependentForm(k *dependentKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := helpers.PathID(r, "id")
		if err != nil {
			_, flash := inputError(err.Error())
			h.redirectWith(w, r, "/"+k.View.Path, *flash)
			return
		}
		vals, err := k.get(r.Context(), id)
		if err != nil {
			_, flash := h.failure(r, err)
			h.redirectWith(w, r, "/"+k.View.Path, *flash)
			return
		}
		h.render(w, r, http.StatusOK, "form.html", "Edit "+k.View.Singular, nil, formView{
			Kind:    k.View,
			Action:  fmt.Sprintf("/%s/%d/edit", k.View.Path, id),
			Submit:  "Save",
			EventID: vals.EventID,
			Primary: vals.Primary,
			Extra:   vals.Extra,
		})
	}
}

// updateDependent leaves blank fields unchanged.
func (h *Handler) updateDependent(k *dependentKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := helpers.PathID(r, "id")
		if err != nil {
			_, flash := inputError(err.Error())
			h.redirectWith(w, r, "/"+k.View.Path, *flash)
			return
		}
		view := formView{
			Kind:    k.View,
			Action:  fmt.Sprintf("/%s/%d/edit", k.View.Path, id),
			Submit:  "Save",
			Primary: r.PostFormValue(k.View.PrimaryName),
		}
		var primary, extra *string
		if strings.TrimSpace(view.Primary) != "" {
			primary = helpers.TextPtr(&view.Primary)
		}
		if k.View.ExtraName != "" {
			view.Extra = r.PostFormValue(k.View.ExtraName)
			if strings.TrimSpace(view.Extra) != "" {
				extra = helpers.TextPtr(&view.Extra)
			}
		}
		if err := k.update(r.Context(), id, primary, extra); err != nil {
			status, flash := h.failure(r, err)
			h.render(w, r, status, "form.html", "Edit "+k.View.Singular, flash, view)
			return
		}
		target := "/" + k.View.Path
		if vals, err := k.get(r.Context(), id); err == nil {
			target = withEventID(target, vals.EventID)
		}
		h.redirect(w, r, target, k.View.Singular+" updated")
	}
}

func (h *Handler) deleteDependent(k *dependentKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		target := "/" + k.View.Path
		id, err := helpers.PathID(r, "id")
		if err != nil {
			_, flash := inputError(err.Error())
			h.redirectWith(w, r, target, *flash)
			return
		}
		vals, err := k.get(r.Context(), id)
		if err == nil {
			target = withEventID(target, vals.EventID)
			err = k.remove(r.Context(), id)
		}
		if err != nil {
			_, flash := h.failure(r, err)
			h.redirectWith(w, r, target, *flash)
			return
		}
		h.redirect(w, r, target, k.View.Singular+" deleted")
	}
}

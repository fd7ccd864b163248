// Package pages serves the server-rendered HTML forms. Every POST redirects with a flash message;
// a failed POST re-renders its form with the error.
package pages

import (
	"bytes"
	"embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"eventmanager/internal/delivery/http/helpers"
	"eventmanager/internal/domain"

	"github.com/gorilla/csrf"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	flashCookie = "flash"
	flashMaxAge = 60

	flashSuccess = "success"
	flashDanger  = "danger"
)

var pageNames = []string{
	"index.html",
	"events.html",
	"event_form.html",
	"list.html",
	"form.html",
	"budget.html",
}

// Flash is a one-shot message shown on the next rendered page.
type Flash struct {
	Kind    string
	Message string
}

// Handler renders the form pages over the same services as the JSON API.
type Handler struct {
	Logger       *slog.Logger
	Events       domain.EventService
	Participants domain.ParticipantService
	Speakers     domain.SpeakerService
	Vendors      domain.VendorService
	Feedback     domain.FeedbackService

	templates map[string]*template.Template
	kinds     map[string]*dependentKind
}

// NewHandler parses the embedded templates. It panics on a template error since they are compiled in.
func NewHandler(
	logger *slog.Logger,
	events domain.EventService,
	participants domain.ParticipantService,
	speakers domain.SpeakerService,
	vendors domain.VendorService,
	feedback domain.FeedbackService,
) *Handler {
	h := &Handler{
		Logger:       logger,
		Events:       events,
		Participants: participants,
		Speakers:     speakers,
		Vendors:      vendors,
		Feedback:     feedback,
		templates:    make(map[string]*template.Template, len(pageNames)),
	}
	for _, name := range pageNames {
		h.templates[name] = template.Must(template.New(name).ParseFS(templateFS, "templates/layout.html", "templates/"+name))
	}
	h.kinds = h.dependentKinds()
	return h
}

// Register mounts every page route on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.Index)

	mux.HandleFunc("GET /events", h.ListEvents)
	mux.HandleFunc("GET /events/new", h.NewEventForm)
	mux.HandleFunc("POST /events/new", h.CreateEvent)
	mux.HandleFunc("GET /events/{id}/edit", h.EditEventForm)
	mux.HandleFunc("POST /events/{id}/edit", h.UpdateEvent)
	mux.HandleFunc("POST /events/{id}/delete", h.DeleteEvent)

	for _, k := range h.kinds {
		mux.HandleFunc("GET /"+k.View.Path, h.listDependents(k))
		mux.HandleFunc("GET /"+k.View.Path+"/new", h.newDependentForm(k))
		mux.HandleFunc("POST /"+k.View.Path+"/new", h.createDependent(k))
		if k.update != nil {
			mux.HandleFunc("GET /"+k.View.Path+"/{id}/edit", h.editDependentForm(k))
			mux.HandleFunc("POST /"+k.View.Path+"/{id}/edit", h.updateDependent(k))
		}
		if k.remove != nil {
			mux.HandleFunc("POST /"+k.View.Path+"/{id}/delete", h.deleteDependent(k))
		}
	}

	mux.HandleFunc("GET /budget", h.ShowBudget)
	mux.HandleFunc("GET /budget/adjust", h.AdjustBudgetForm)
	mux.HandleFunc("POST /budget/adjust", h.AdjustBudget)
	mux.HandleFunc("GET /budget/edit", h.EditBudgetForm)
	mux.HandleFunc("POST /budget/edit", h.EditBudget)
}

// page is the data every template receives.
type page struct {
	Title     string
	Flash     *Flash
	CSRFField template.HTML
	Data      any
}

// render executes the named page. The flash cookie is consumed here so it shows exactly once.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, name, title string, flash *Flash, data any) {
	if flash == nil {
		flash = h.popFlash(w, r)
	}
	tmpl, ok := h.templates[name]
	if !ok {
		h.Logger.ErrorContext(r.Context(), "unknown template", "template", name)
		http.Error(w, "Template error", http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	err := tmpl.ExecuteTemplate(&buf, "layout", page{
		Title:     title,
		Flash:     flash,
		CSRFField: csrf.TemplateField(r),
		Data:      data,
	})
	if err != nil {
		h.Logger.ErrorContext(r.Context(), "template error", "template", name, "err", err)
		http.Error(w, "Template error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// redirect stores a success flash and answers 303 See Other.
func (h *Handler) redirect(w http.ResponseWriter, r *http.Request, target, message string) {
	h.redirectWith(w, r, target, Flash{Kind: flashSuccess, Message: message})
}

func (h *Handler) redirectWith(w http.ResponseWriter, r *http.Request, target string, f Flash) {
	setFlash(w, f)
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// failure converts err to a danger flash and the status the page is re-rendered with.
func (h *Handler) failure(r *http.Request, err error) (int, *Flash) {
	status, msg := helpers.ErrorStatus(err)
	if status >= http.StatusInternalServerError {
		h.Logger.ErrorContext(r.Context(), "page request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	}
	return status, &Flash{Kind: flashDanger, Message: "Error: " + msg}
}

// inputError is a malformed form value caught before the services are called.
func inputError(msg string) (int, *Flash) {
	return http.StatusBadRequest, &Flash{Kind: flashDanger, Message: "Error: " + msg}
}

func setFlash(w http.ResponseWriter, f Flash) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    base64.RawURLEncoding.EncodeToString([]byte(f.Kind + "|" + f.Message)),
		Path:     "/",
		MaxAge:   flashMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) popFlash(w http.ResponseWriter, r *http.Request) *Flash {
	c, err := r.Cookie(flashCookie)
	if err != nil {
		return nil
	}
	http.SetCookie(w, &http.Cookie{Name: flashCookie, Path: "/", MaxAge: -1, HttpOnly: true, SameSite: http.SameSiteLaxMode})
	raw, err := base64.RawURLEncoding.DecodeString(c.Value)
	if err != nil {
		return nil
	}
	kind, msg, ok := strings.Cut(string(raw), "|")
	if !ok || (kind != flashSuccess && kind != flashDanger) {
		return nil
	}
	return &Flash{Kind: kind, Message: msg}
}

// eventOptions loads the events offered in the event pickers. A failure leaves the picker empty.
func (h *Handler) eventOptions(r *http.Request) []*domain.EventRecord {
	events, err := h.Events.List(r.Context())
	if err != nil {
		h.Logger.ErrorContext(r.Context(), "list events for picker", "err", err)
		return nil
	}
	return events
}

func withEventID(path string, eventID int64) string {
	if eventID == 0 {
		return path
	}
	return fmt.Sprintf("%s?event_id=%d", path, eventID)
}

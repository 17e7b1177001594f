package event

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/vazgensoghoyan/folk-is-love/internal/domain"
	"github.com/vazgensoghoyan/folk-is-love/internal/service"
	"github.com/vazgensoghoyan/folk-is-love/internal/transport/web/logx"
	"github.com/vazgensoghoyan/folk-is-love/internal/transport/web/mw"
	v1 "github.com/vazgensoghoyan/folk-is-love/internal/transport/web/v1"
)

// Handler обрабатывает /v1/events*
type Handler struct {
	Log    *log.Logger
	Events *service.Events
}

type eventRequest struct {
	Title       *string        `json:"title"`
	Description *string        `json:"description"`
	StartsAt    *time.Time     `json:"starts_at"`
	City        *string        `json:"city"`
	Country     *string        `json:"country"`
	Venue       *string        `json:"venue"`
	Link        *string        `json:"link"`
	TagIDs      []domain.TagID `json:"tag_ids"`
}

func (r eventRequest) toInput() service.EventInput {
	return service.EventInput{
		Title:       r.Title,
		Description: r.Description,
		StartsAt:    r.StartsAt,
		City:        r.City,
		Country:     r.Country,
		Venue:       r.Venue,
		Link:        r.Link,
		TagIDs:      r.TagIDs,
	}
}

// List godoc
// @Summary     List events
// @Description Все события; ?tag=<uuid> фильтрует по тегу.
// @Tags        events
// @Produce     json
// @Param       tag query string false "tag id"
// @Success     200 {object} domain.APIEnvelope{data=[]domain.Event}
// @Router      /v1/events [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	const op = "event.list"
	reqID := mw.RequestIDFromCtx(r.Context())

	if tag := r.URL.Query().Get("tag"); tag != "" {
		tagID, err := uuid.Parse(tag)
		if err != nil {
			v1.WriteDomainError(w, r, domain.E(domain.KindBadParams, "Invalid tag id: "+tag))
			return
		}
		out, err := h.Events.ByTag(r.Context(), tagID)
		if err != nil {
			logx.Error(h.Log, reqID, op, "by tag failed", err, "tag", tagID)
			v1.WriteDomainError(w, r, err)
			return
		}
		v1.WriteOKData(w, r, out)
		return
	}

	out, err := h.Events.List(r.Context())
	if err != nil {
		logx.Error(h.Log, reqID, op, "list failed", err)
		v1.WriteDomainError(w, r, err)
		return
	}
	v1.WriteOKData(w, r, out)
}

// Upcoming godoc
// @Summary     List upcoming events
// @Description События с starts_at в будущем, по возрастанию даты.
// @Tags        events
// @Produce     json
// @Success     200 {object} domain.APIEnvelope{data=[]domain.Event}
// @Router      /v1/events/upcoming [get]
func (h *Handler) Upcoming(w http.ResponseWriter, r *http.Request) {
	const op = "event.upcoming"
	reqID := mw.RequestIDFromCtx(r.Context())

	out, err := h.Events.Upcoming(r.Context())
	if err != nil {
		logx.Error(h.Log, reqID, op, "upcoming failed", err)
		v1.WriteDomainError(w, r, err)
		return
	}
	v1.WriteOKData(w, r, out)
}

// Get godoc
// @Summary     Get event
// @Tags        events
// @Produce     json
// @Param       id path string true "event id"
// @Success     200 {object} domain.APIEnvelope{data=domain.Event}
// @Failure     404 {object} domain.APIEnvelope
// @Router      /v1/events/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := v1.PathID(r, "id")
	if err != nil {
		v1.WriteDomainError(w, r, err)
		return
	}
	out, err := h.Events.ByID(r.Context(), id)
	if err != nil {
		v1.WriteDomainError(w, r, err)
		return
	}
	v1.WriteOKData(w, r, out)
}

// Create godoc
// @Summary     Create event
// @Description Автор — текущий пользователь.
// @Tags        events
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body eventRequest true "event fields"
// @Success     201 {object} domain.APIEnvelope{response=domain.Event}
// @Failure     400 {object} domain.APIEnvelope
// @Failure     401 {object} domain.APIEnvelope
// @Router      /v1/events [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "event.create"
	reqID := mw.RequestIDFromCtx(r.Context())

	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logx.Error(h.Log, reqID, op, "bad json", err)
		v1.WriteDomainError(w, r, domain.E(domain.KindBadParams, "Invalid request body"))
		return
	}

	out, err := h.Events.Create(r.Context(), req.toInput())
	if err != nil {
		logx.Error(h.Log, reqID, op, "create failed", err)
		v1.WriteDomainError(w, r, err)
		return
	}
	logx.Info(h.Log, reqID, op, "ok", "id", out.ID)
	v1.WriteCreated(w, r, out)
}

// Update godoc
// @Summary     Update event
// @Description Только владелец или админ. nil-поля не меняются.
// @Tags        events
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "event id"
// @Param       request body eventRequest true "fields to update"
// @Success     200 {object} domain.APIEnvelope{response=domain.Event}
// @Failure     403 {object} domain.APIEnvelope
// @Failure     404 {object} domain.APIEnvelope
// @Router      /v1/events/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	const op = "event.update"
	reqID := mw.RequestIDFromCtx(r.Context())

	id, err := v1.PathID(r, "id")
	if err != nil {
		v1.WriteDomainError(w, r, err)
		return
	}
	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		v1.WriteDomainError(w, r, domain.E(domain.KindBadParams, "Invalid request body"))
		return
	}

	out, err := h.Events.Edit(r.Context(), id, req.toInput())
	if err != nil {
		logx.Error(h.Log, reqID, op, "edit failed", err, "id", id)
		v1.WriteDomainError(w, r, err)
		return
	}
	v1.WriteOKResponse(w, r, out)
}

// Delete godoc
// @Summary     Delete event
// @Description Только владелец или админ.
// @Tags        events
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "event id"
// @Success     200 {object} domain.APIEnvelope{data=string}
// @Failure     403 {object} domain.APIEnvelope
// @Failure     404 {object} domain.APIEnvelope
// @Router      /v1/events/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "event.delete"
	reqID := mw.RequestIDFromCtx(r.Context())

	id, err := v1.PathID(r, "id")
	if err != nil {
		v1.WriteDomainError(w, r, err)
		return
	}
	if err := h.Events.Delete(r.Context(), id); err != nil {
		logx.Error(h.Log, reqID, op, "delete failed", err, "id", id)
		v1.WriteDomainError(w, r, err)
		return
	}
	v1.WriteOKData(w, r, "deleted")
}

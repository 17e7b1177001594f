package tag

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/vazgensoghoyan/folk-is-love/internal/domain"
	"github.com/vazgensoghoyan/folk-is-love/internal/service"
	"github.com/vazgensoghoyan/folk-is-love/internal/transport/web/logx"
	"github.com/vazgensoghoyan/folk-is-love/internal/transport/web/mw"
	v1 "github.com/vazgensoghoyan/folk-is-love/internal/transport/web/v1"
)

// Handler обрабатывает /v1/tags*. Мутации — только админ
// (проверяется в сервисе).
type Handler struct {
	Log  *log.Logger
	Tags *service.Tags
}

type tagRequest struct {
	Name string `json:"name"`
}

// List godoc
// @Summary     List tags
// @Tags        tags
// @Produce     json
// @Success     200 {object} domain.APIEnvelope{data=[]domain.Tag}
// @Router      /v1/tags [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	out, err := h.Tags.List(r.Context())
	if err != nil {
		v1.WriteDomainError(w, r, err)
		return
	}
	v1.WriteOKData(w, r, out)
}

// Get godoc
// @Summary     Get tag
// @Tags        tags
// @Produce     json
// @Param       id path string true "tag id"
// @Success     200 {object} domain.APIEnvelope{data=domain.Tag}
// @Failure     404 {object} domain.APIEnvelope
// @Router      /v1/tags/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := v1.PathID(r, "id")
	if err != nil {
		v1.WriteDomainError(w, r, err)
		return
	}
	out, err := h.Tags.ByID(r.Context(), id)
	if err != nil {
		v1.WriteDomainError(w, r, err)
		return
	}
	v1.WriteOKData(w, r, out)
}

// Create godoc
// @Summary     Create tag
// @Description Только админ.
// @Tags        tags
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body tagRequest true "name"
// @Success     201 {object} domain.APIEnvelope{response=domain.Tag}
// @Failure     403 {object} domain.APIEnvelope
// @Failure     409 {object} domain.APIEnvelope
// @Router      /v1/tags [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "tag.create"
	reqID := mw.RequestIDFromCtx(r.Context())

	var req tagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logx.Error(h.Log, reqID, op, "bad json", err)
		v1.WriteDomainError(w, r, domain.E(domain.KindBadParams, "Invalid request body"))
		return
	}

	out, err := h.Tags.Create(r.Context(), req.Name)
	if err != nil {
		logx.Error(h.Log, reqID, op, "create failed", err, "name", req.Name)
		v1.WriteDomainError(w, r, err)
		return
	}
	logx.Info(h.Log, reqID, op, "ok", "id", out.ID, "name", out.Name)
	v1.WriteCreated(w, r, out)
}

// Rename godoc
// @Summary     Rename tag
// @Description Только админ.
// @Tags        tags
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "tag id"
// @Param       request body tagRequest true "name"
// @Success     200 {object} domain.APIEnvelope{response=domain.Tag}
// @Failure     403 {object} domain.APIEnvelope
// @Failure     404 {object} domain.APIEnvelope
// @Failure     409 {object} domain.APIEnvelope
// @Router      /v1/tags/{id} [put]
func (h *Handler) Rename(w http.ResponseWriter, r *http.Request) {
	const op = "tag.rename"
	reqID := mw.RequestIDFromCtx(r.Context())

	id, err := v1.PathID(r, "id")
	if err != nil {
		v1.WriteDomainError(w, r, err)
		return
	}
	var req tagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		v1.WriteDomainError(w, r, domain.E(domain.KindBadParams, "Invalid request body"))
		return
	}

	out, err := h.Tags.Rename(r.Context(), id, req.Name)
	if err != nil {
		logx.Error(h.Log, reqID, op, "rename failed", err, "id", id)
		v1.WriteDomainError(w, r, err)
		return
	}
	v1.WriteOKResponse(w, r, out)
}

// Delete godoc
// @Summary     Delete tag
// @Description Только админ; тег, на который есть ссылки, удалить нельзя.
// @Tags        tags
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "tag id"
// @Success     200 {object} domain.APIEnvelope{data=string}
// @Failure     403 {object} domain.APIEnvelope
// @Failure     409 {object} domain.APIEnvelope
// @Router      /v1/tags/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "tag.delete"
	reqID := mw.RequestIDFromCtx(r.Context())

	id, err := v1.PathID(r, "id")
	if err != nil {
		v1.WriteDomainError(w, r, err)
		return
	}
	if err := h.Tags.Delete(r.Context(), id); err != nil {
		logx.Error(h.Log, reqID, op, "delete failed", err, "id", id)
		v1.WriteDomainError(w, r, err)
		return
	}
	v1.WriteOKData(w, r, "deleted")
}

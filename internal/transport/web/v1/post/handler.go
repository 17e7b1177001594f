package post

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/vazgensoghoyan/folk-is-love/internal/domain"
	"github.com/vazgensoghoyan/folk-is-love/internal/service"
	"github.com/vazgensoghoyan/folk-is-love/internal/transport/web/logx"
	"github.com/vazgensoghoyan/folk-is-love/internal/transport/web/mw"
	v1 "github.com/vazgensoghoyan/folk-is-love/internal/transport/web/v1"
)

// Handler обрабатывает /v1/posts*
type Handler struct {
	Log   *log.Logger
	Posts *service.Posts
}

type postRequest struct {
	Title   *string        `json:"title"`
	Content *string        `json:"content"`
	TagIDs  []domain.TagID `json:"tag_ids"`
}

func (r postRequest) toInput() service.PostInput {
	return service.PostInput{Title: r.Title, Content: r.Content, TagIDs: r.TagIDs}
}

// List godoc
// @Summary     List posts
// @Description Общий фид постов; ?tag=<uuid> фильтрует по тегу.
// @Tags        posts
// @Produce     json
// @Param       tag query string false "tag id"
// @Success     200 {object} domain.APIEnvelope{data=[]domain.Post}
// @Failure     404 {object} domain.APIEnvelope
// @Router      /v1/posts [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	const op = "post.list"
	reqID := mw.RequestIDFromCtx(r.Context())

	if tag := r.URL.Query().Get("tag"); tag != "" {
		tagID, err := uuid.Parse(tag)
		if err != nil {
			v1.WriteDomainError(w, r, domain.E(domain.KindBadParams, "Invalid tag id: "+tag))
			return
		}
		out, err := h.Posts.ByTag(r.Context(), tagID)
		if err != nil {
			logx.Error(h.Log, reqID, op, "by tag failed", err, "tag", tagID)
			v1.WriteDomainError(w, r, err)
			return
		}
		v1.WriteOKData(w, r, out)
		return
	}

	out, err := h.Posts.List(r.Context())
	if err != nil {
		logx.Error(h.Log, reqID, op, "list failed", err)
		v1.WriteDomainError(w, r, err)
		return
	}
	v1.WriteOKData(w, r, out)
}

// Get godoc
// @Summary     Get post
// @Tags        posts
// @Produce     json
// @Param       id path string true "post id"
// @Success     200 {object} domain.APIEnvelope{data=domain.Post}
// @Failure     404 {object} domain.APIEnvelope
// @Router      /v1/posts/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := v1.PathID(r, "id")
	if err != nil {
		v1.WriteDomainError(w, r, err)
		return
	}
	out, err := h.Posts.ByID(r.Context(), id)
	if err != nil {
		v1.WriteDomainError(w, r, err)
		return
	}
	v1.WriteOKData(w, r, out)
}

// Create godoc
// @Summary     Create post
// @Description Автор — текущий пользователь. Требуется хотя бы один тег.
// @Tags        posts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body postRequest true "title, content, tag_ids"
// @Success     201 {object} domain.APIEnvelope{response=domain.Post}
// @Failure     400 {object} domain.APIEnvelope
// @Failure     401 {object} domain.APIEnvelope
// @Router      /v1/posts [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "post.create"
	reqID := mw.RequestIDFromCtx(r.Context())

	var req postRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logx.Error(h.Log, reqID, op, "bad json", err)
		v1.WriteDomainError(w, r, domain.E(domain.KindBadParams, "Invalid request body"))
		return
	}

	out, err := h.Posts.Create(r.Context(), req.toInput())
	if err != nil {
		logx.Error(h.Log, reqID, op, "create failed", err)
		v1.WriteDomainError(w, r, err)
		return
	}
	logx.Info(h.Log, reqID, op, "ok", "id", out.ID)
	v1.WriteCreated(w, r, out)
}

// Update godoc
// @Summary     Update post
// @Description Только владелец или админ. nil-поля не меняются.
// @Tags        posts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "post id"
// @Param       request body postRequest true "fields to update"
// @Success     200 {object} domain.APIEnvelope{response=domain.Post}
// @Failure     403 {object} domain.APIEnvelope
// @Failure     404 {object} domain.APIEnvelope
// @Router      /v1/posts/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	const op = "post.update"
	reqID := mw.RequestIDFromCtx(r.Context())

	id, err := v1.PathID(r, "id")
	if err != nil {
		v1.WriteDomainError(w, r, err)
		return
	}
	var req postRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		v1.WriteDomainError(w, r, domain.E(domain.KindBadParams, "Invalid request body"))
		return
	}

	out, err := h.Posts.Edit(r.Context(), id, req.toInput())
	if err != nil {
		logx.Error(h.Log, reqID, op, "edit failed", err, "id", id)
		v1.WriteDomainError(w, r, err)
		return
	}
	v1.WriteOKResponse(w, r, out)
}

// Delete godoc
// @Summary     Delete post
// @Description Только владелец или админ.
// @Tags        posts
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "post id"
// @Success     200 {object} domain.APIEnvelope{data=string}
// @Failure     403 {object} domain.APIEnvelope
// @Failure     404 {object} domain.APIEnvelope
// @Router      /v1/posts/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "post.delete"
	reqID := mw.RequestIDFromCtx(r.Context())

	id, err := v1.PathID(r, "id")
	if err != nil {
		v1.WriteDomainError(w, r, err)
		return
	}
	if err := h.Posts.Delete(r.Context(), id); err != nil {
		logx.Error(h.Log, reqID, op, "delete failed", err, "id", id)
		v1.WriteDomainError(w, r, err)
		return
	}
	v1.WriteOKData(w, r, "deleted")
}

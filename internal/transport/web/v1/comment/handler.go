package comment

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

// Handler обрабатывает комментарии: /v1/posts/{id}/comments и /v1/comments/{id}
type Handler struct {
	Log      *log.Logger
	Comments *service.Comments
}

type commentRequest struct {
	Content string `json:"content"`
}

// ByPost godoc
// @Summary     List comments of a post
// @Tags        comments
// @Produce     json
// @Param       id path string true "post id"
// @Success     200 {object} domain.APIEnvelope{data=[]domain.Comment}
// @Failure     404 {object} domain.APIEnvelope
// @Router      /v1/posts/{id}/comments [get]
func (h *Handler) ByPost(w http.ResponseWriter, r *http.Request) {
	postID, err := v1.PathID(r, "id")
	if err != nil {
		v1.WriteDomainError(w, r, err)
		return
	}
	out, err := h.Comments.ByPost(r.Context(), postID)
	if err != nil {
		v1.WriteDomainError(w, r, err)
		return
	}
	v1.WriteOKData(w, r, out)
}

// Add godoc
// @Summary     Add comment to a post
// @Description Автор — текущий пользователь.
// @Tags        comments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "post id"
// @Param       request body commentRequest true "content"
// @Success     201 {object} domain.APIEnvelope{response=domain.Comment}
// @Failure     400 {object} domain.APIEnvelope
// @Failure     401 {object} domain.APIEnvelope
// @Failure     404 {object} domain.APIEnvelope
// @Router      /v1/posts/{id}/comments [post]
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	const op = "comment.add"
	reqID := mw.RequestIDFromCtx(r.Context())

	postID, err := v1.PathID(r, "id")
	if err != nil {
		v1.WriteDomainError(w, r, err)
		return
	}
	var req commentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logx.Error(h.Log, reqID, op, "bad json", err)
		v1.WriteDomainError(w, r, domain.E(domain.KindBadParams, "Invalid request body"))
		return
	}

	out, err := h.Comments.Add(r.Context(), postID, req.Content)
	if err != nil {
		logx.Error(h.Log, reqID, op, "add failed", err, "post_id", postID)
		v1.WriteDomainError(w, r, err)
		return
	}
	logx.Info(h.Log, reqID, op, "ok", "id", out.ID, "post_id", postID)
	v1.WriteCreated(w, r, out)
}

// Update godoc
// @Summary     Edit comment
// @Description Только владелец или админ.
// @Tags        comments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "comment id"
// @Param       request body commentRequest true "content"
// @Success     200 {object} domain.APIEnvelope{response=domain.Comment}
// @Failure     403 {object} domain.APIEnvelope
// @Failure     404 {object} domain.APIEnvelope
// @Router      /v1/comments/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	const op = "comment.update"
	reqID := mw.RequestIDFromCtx(r.Context())

	id, err := v1.PathID(r, "id")
	if err != nil {
		v1.WriteDomainError(w, r, err)
		return
	}
	var req commentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		v1.WriteDomainError(w, r, domain.E(domain.KindBadParams, "Invalid request body"))
		return
	}

	out, err := h.Comments.Edit(r.Context(), id, req.Content)
	if err != nil {
		logx.Error(h.Log, reqID, op, "edit failed", err, "id", id)
		v1.WriteDomainError(w, r, err)
		return
	}
	v1.WriteOKResponse(w, r, out)
}

// Delete godoc
// @Summary     Delete comment
// @Description Только владелец или админ.
// @Tags        comments
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "comment id"
// @Success     200 {object} domain.APIEnvelope{data=string}
// @Failure     403 {object} domain.APIEnvelope
// @Failure     404 {object} domain.APIEnvelope
// @Router      /v1/comments/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "comment.delete"
	reqID := mw.RequestIDFromCtx(r.Context())

	id, err := v1.PathID(r, "id")
	if err != nil {
		v1.WriteDomainError(w, r, err)
		return
	}
	if err := h.Comments.Delete(r.Context(), id); err != nil {
		logx.Error(h.Log, reqID, op, "delete failed", err, "id", id)
		v1.WriteDomainError(w, r, err)
		return
	}
	v1.WriteOKData(w, r, "deleted")
}

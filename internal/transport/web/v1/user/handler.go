package user

import (
	"log"
	"net/http"

	"github.com/vazgensoghoyan/folk-is-love/internal/service"
	"github.com/vazgensoghoyan/folk-is-love/internal/transport/web/logx"
	"github.com/vazgensoghoyan/folk-is-love/internal/transport/web/mw"
	v1 "github.com/vazgensoghoyan/folk-is-love/internal/transport/web/v1"
)

// Handler обрабатывает /v1/users*
type Handler struct {
	Log   *log.Logger
	Users *service.Users
}

// Get godoc
// @Summary     Get user profile
// @Tags        users
// @Produce     json
// @Param       username path string true "username"
// @Success     200 {object} domain.APIEnvelope{data=domain.User}
// @Failure     404 {object} domain.APIEnvelope
// @Router      /v1/users/{username} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	u, err := h.Users.ByUsername(r.Context(), r.PathValue("username"))
	if err != nil {
		v1.WriteDomainError(w, r, err)
		return
	}
	v1.WriteOKData(w, r, u)
}

// AddInterest godoc
// @Summary     Add interest tag to current user
// @Tags        users
// @Produce     json
// @Security    BearerAuth
// @Param       tagID path string true "tag id"
// @Success     200 {object} domain.APIEnvelope{data=string}
// @Failure     401 {object} domain.APIEnvelope
// @Failure     404 {object} domain.APIEnvelope
// @Router      /v1/users/me/interests/{tagID} [post]
func (h *Handler) AddInterest(w http.ResponseWriter, r *http.Request) {
	const op = "user.add_interest"
	reqID := mw.RequestIDFromCtx(r.Context())

	tagID, err := v1.PathID(r, "tagID")
	if err != nil {
		v1.WriteDomainError(w, r, err)
		return
	}
	if err := h.Users.AddInterest(r.Context(), tagID); err != nil {
		logx.Error(h.Log, reqID, op, "add failed", err, "tag_id", tagID)
		v1.WriteDomainError(w, r, err)
		return
	}
	v1.WriteOKData(w, r, "added")
}

// RemoveInterest godoc
// @Summary     Remove interest tag from current user
// @Tags        users
// @Produce     json
// @Security    BearerAuth
// @Param       tagID path string true "tag id"
// @Success     200 {object} domain.APIEnvelope{data=string}
// @Failure     401 {object} domain.APIEnvelope
// @Failure     404 {object} domain.APIEnvelope
// @Router      /v1/users/me/interests/{tagID} [delete]
func (h *Handler) RemoveInterest(w http.ResponseWriter, r *http.Request) {
	const op = "user.remove_interest"
	reqID := mw.RequestIDFromCtx(r.Context())

	tagID, err := v1.PathID(r, "tagID")
	if err != nil {
		v1.WriteDomainError(w, r, err)
		return
	}
	if err := h.Users.RemoveInterest(r.Context(), tagID); err != nil {
		logx.Error(h.Log, reqID, op, "remove failed", err, "tag_id", tagID)
		v1.WriteDomainError(w, r, err)
		return
	}
	v1.WriteOKData(w, r, "removed")
}

// Delete godoc
// @Summary     Delete user
// @Description Только админ.
// @Tags        users
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "user id"
// @Success     200 {object} domain.APIEnvelope{data=string}
// @Failure     403 {object} domain.APIEnvelope
// @Failure     404 {object} domain.APIEnvelope
// @Router      /v1/users/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "user.delete"
	reqID := mw.RequestIDFromCtx(r.Context())

	id, err := v1.PathID(r, "id")
	if err != nil {
		v1.WriteDomainError(w, r, err)
		return
	}
	if err := h.Users.Delete(r.Context(), id); err != nil {
		logx.Error(h.Log, reqID, op, "delete failed", err, "id", id)
		v1.WriteDomainError(w, r, err)
		return
	}
	v1.WriteOKData(w, r, "deleted")
}

// Ban godoc
// @Summary     Ban user
// @Description Только админ. Живые токены не отзываются.
// @Tags        users
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "user id"
// @Success     200 {object} domain.APIEnvelope{data=string}
// @Failure     403 {object} domain.APIEnvelope
// @Router      /v1/users/{id}/ban [post]
func (h *Handler) Ban(w http.ResponseWriter, r *http.Request) {
	h.setBanned(w, r, true)
}

// Unban godoc
// @Summary     Unban user
// @Description Только админ.
// @Tags        users
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "user id"
// @Success     200 {object} domain.APIEnvelope{data=string}
// @Failure     403 {object} domain.APIEnvelope
// @Router      /v1/users/{id}/unban [post]
func (h *Handler) Unban(w http.ResponseWriter, r *http.Request) {
	h.setBanned(w, r, false)
}

func (h *Handler) setBanned(w http.ResponseWriter, r *http.Request, banned bool) {
	const op = "user.set_banned"
	reqID := mw.RequestIDFromCtx(r.Context())

	id, err := v1.PathID(r, "id")
	if err != nil {
		v1.WriteDomainError(w, r, err)
		return
	}
	if err := h.Users.SetBanned(r.Context(), id, banned); err != nil {
		logx.Error(h.Log, reqID, op, "set banned failed", err, "id", id, "banned", banned)
		v1.WriteDomainError(w, r, err)
		return
	}
	v1.WriteOKData(w, r, "ok")
}

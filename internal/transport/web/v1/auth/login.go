package auth

import (
	"encoding/json"
	"net/http"

	"github.com/vazgensoghoyan/folk-is-love/internal/domain"
	"github.com/vazgensoghoyan/folk-is-love/internal/transport/web/logx"
	"github.com/vazgensoghoyan/folk-is-love/internal/transport/web/mw"
	v1 "github.com/vazgensoghoyan/folk-is-love/internal/transport/web/v1"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login godoc
// @Summary     Authenticate user
// @Description Возвращает JWT при валидных имени и пароле.
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body loginRequest true "username, password"
// @Success     200 {object} domain.APIEnvelope{response=loginResponse}
// @Failure     400 {object} domain.APIEnvelope
// @Failure     401 {object} domain.APIEnvelope
// @Failure     500 {object} domain.APIEnvelope
// @Router      /v1/auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	const op = "auth.login"
	reqID := mw.RequestIDFromCtx(r.Context())
	logx.Info(h.Log, reqID, op, "start", "method", r.Method, "path", r.URL.Path)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logx.Error(h.Log, reqID, op, "bad json", err)
		v1.WriteDomainError(w, r, domain.E(domain.KindBadParams, "Invalid request body"))
		return
	}

	// наличие полей; почему именно не пустили — не говорим
	if req.Username == "" || req.Password == "" {
		logx.Error(h.Log, reqID, op, "empty username or password", nil)
		v1.WriteDomainError(w, r, domain.E(domain.KindInvalidCredentials, "Invalid username or password"))
		return
	}

	token, err := h.Auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		logx.Error(h.Log, reqID, op, "login failed", err, "username", req.Username)
		v1.WriteDomainError(w, r, err)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "username", req.Username)
	v1.WriteOKResponse(w, r, loginResponse{Token: string(token)})
}

package auth

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

// Handler обрабатывает /v1/auth/*
type Handler struct {
	Log  *log.Logger
	Auth *service.Auth
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Register godoc
// @Summary     Register new user
// @Description Регистрация нового пользователя. Роль всегда USER.
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body registerRequest true "username, email, password"
// @Success     201 {object} domain.APIEnvelope{response=registerResponse}
// @Failure     400 {object} domain.APIEnvelope
// @Failure     409 {object} domain.APIEnvelope
// @Failure     500 {object} domain.APIEnvelope
// @Router      /v1/auth/register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	const op = "auth.register"
	reqID := mw.RequestIDFromCtx(r.Context())
	logx.Info(h.Log, reqID, op, "start", "method", r.Method, "path", r.URL.Path)

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logx.Error(h.Log, reqID, op, "bad json", err)
		v1.WriteDomainError(w, r, domain.E(domain.KindBadParams, "Invalid request body"))
		return
	}

	p, err := h.Auth.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		logx.Error(h.Log, reqID, op, "register failed", err, "username", req.Username)
		v1.WriteDomainError(w, r, err)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "username", p.Username)
	v1.WriteCreated(w, r, registerResponse{Username: p.Username, Role: string(p.Role)})
}

package v1

import (
	"encoding/json"
	"net/http"

	"github.com/vazgensoghoyan/folk-is-love/internal/domain"
	"github.com/vazgensoghoyan/folk-is-love/internal/transport/web/mw"
)

// MapDomainError решает HTTP-статус + error.code/text для конверта.
// Текст доменной ошибки безопасен для выдачи наружу; ошибки токена
// схлопываются в общий 401 без деталей.
func MapDomainError(err error) (httpStatus int, env domain.APIEnvelope) {
	if domain.IsTokenError(err) {
		return http.StatusUnauthorized, domain.Fail(domain.ErrCodeUnauth, "unauthorized")
	}
	switch domain.KindOf(err) {
	case domain.KindInvalidUsername, domain.KindInvalidEmail,
		domain.KindWeakPassword, domain.KindBadParams:
		return http.StatusBadRequest, domain.Fail(domain.ErrCodeBadParams, err.Error())
	case domain.KindInvalidCredentials, domain.KindUnauthenticated:
		return http.StatusUnauthorized, domain.Fail(domain.ErrCodeUnauth, err.Error())
	case domain.KindAccessDenied:
		return http.StatusForbidden, domain.Fail(domain.ErrCodeForbidden, err.Error())
	case domain.KindNotFound:
		return http.StatusNotFound, domain.Fail(domain.ErrCodeNotFound, err.Error())
	case domain.KindMethodNotAllowed:
		return http.StatusMethodNotAllowed, domain.Fail(domain.ErrCodeMethodNotAllowed, "method not allowed")
	case domain.KindUsernameTaken, domain.KindEmailTaken,
		domain.KindTagExists, domain.KindTagInUse:
		return http.StatusConflict, domain.Fail(domain.ErrCodeConflict, err.Error())
	default:
		// Таймауты/отмены/ошибки БД — как 500, текст не раскрываем
		return http.StatusInternalServerError, domain.Fail(domain.ErrCodeUnexpected, "unexpected")
	}
}

// WriteEnvelope пишет конверт; для HEAD — без тела
func WriteEnvelope(w http.ResponseWriter, r *http.Request, status int, env domain.APIEnvelope) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Request-ID", mw.RequestIDFromCtx(r.Context()))
	w.WriteHeader(status)
	if r.Method == http.MethodHead {
		return
	}
	_ = json.NewEncoder(w).Encode(env)
}

// Шорткаты успеха
func WriteOKData(w http.ResponseWriter, r *http.Request, data any) {
	WriteEnvelope(w, r, http.StatusOK, domain.OkData(data))
}
func WriteOKResponse(w http.ResponseWriter, r *http.Request, resp any) {
	WriteEnvelope(w, r, http.StatusOK, domain.OkResponse(resp))
}
func WriteCreated(w http.ResponseWriter, r *http.Request, resp any) {
	WriteEnvelope(w, r, http.StatusCreated, domain.OkResponse(resp))
}

// Шорткаты ошибок
func WriteDomainError(w http.ResponseWriter, r *http.Request, err error) {
	status, env := MapDomainError(err)
	WriteEnvelope(w, r, status, env)
}

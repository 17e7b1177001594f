package v1

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/vazgensoghoyan/folk-is-love/internal/domain"
)

// PathID достаёт UUID из path-параметра маршрута.
func PathID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, domain.E(domain.KindBadParams, "Invalid id: "+r.PathValue(name))
	}
	return id, nil
}

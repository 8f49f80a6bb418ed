package health

import (
	"context"
	"io"
	"net/http"

	"usersvc/internal/api/response"
	"usersvc/internal/pkg/logger"
)

// HealthService define o contrato do health check.
type HealthService interface {
	DatabaseHealthy(ctx context.Context) bool
}

type Handler struct {
	Service HealthService
	Logger  logger.Logger
}

func NewHandler(svc HealthService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

// HealthzHandler lida com a requisição GET /healthz.
// @Summary Health check
// @Description Responde 200 quando o banco de dados está acessível e 503 caso contrário.
// @Tags health
// @Success 200 "Serviço saudável"
// @Failure 400 "Body ou query params não são aceitos"
// @Failure 503 "Banco de dados indisponível"
// @Router /healthz [get]
func (h *Handler) HealthzHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.RawQuery != "" || hasBody(r) {
		response.Status(w, http.StatusBadRequest)
		return
	}

	if !h.Service.DatabaseHealthy(r.Context()) {
		response.Status(w, http.StatusServiceUnavailable)
		return
	}
	response.Status(w, http.StatusOK)
}

// hasBody reporta se a requisição trouxe ao menos um byte de corpo.
func hasBody(r *http.Request) bool {
	if r.ContentLength > 0 {
		return true
	}
	if r.Body == nil || r.Body == http.NoBody {
		return false
	}
	n, _ := io.ReadFull(r.Body, make([]byte, 1))
	return n > 0
}

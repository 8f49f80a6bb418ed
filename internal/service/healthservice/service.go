package healthservice

import (
	"context"
	"time"

	"usersvc/internal/pkg/logger"
)

// Pinger é satisfeito por *sqlx.DB e *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Service verifica a saúde das dependências do serviço.
type Service struct {
	db      Pinger
	timeout time.Duration
	logger  logger.Logger
}

func NewService(db Pinger, timeout time.Duration, log logger.Logger) *Service {
	return &Service{db: db, timeout: timeout, logger: log}
}

// DatabaseHealthy reporta se o banco responde a um ping dentro do timeout.
func (s *Service) DatabaseHealthy(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		s.logger.Warn("Health check do banco falhou.", map[string]interface{}{"error": err.Error()})
		return false
	}
	return true
}

package emailrepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"usersvc/internal/domain"
	apperror "usersvc/internal/errors"
	"usersvc/internal/pkg/logger"
)

// EmailRepository persiste os registros de verificação de e-mail.
type EmailRepository struct {
	DB        *sqlx.DB
	DBTimeout time.Duration
	logger    logger.Logger
	now       func() time.Time
}

func NewEmailRepository(db *sqlx.DB, dbTimeout time.Duration, log logger.Logger) *EmailRepository {
	return &EmailRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    log,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// FindVerification busca o registro ativo de (userID, emailType).
func (r *EmailRepository) FindVerification(ctx context.Context, userID, emailType string) (domain.EmailVerification, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const query = `SELECT id, user_id, email_type, auth_token, sent_date, email_created, email_updated
		FROM email_verifications
		WHERE user_id = $1 AND email_type = $2`

	var rec domain.EmailVerification
	if err := r.DB.GetContext(ctxTimeout, &rec, query, userID, emailType); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.EmailVerification{}, domain.ErrNotFound
		}
		r.logger.Error("Falha ao buscar registro de verificação no DB.", err)
		return domain.EmailVerification{}, apperror.NewDBError("failed to find email verification", err)
	}
	return rec, nil
}

// UpsertVerification grava o registro, substituindo token e data de envio de um
// registro anterior do mesmo (user_id, email_type).
func (r *EmailRepository) UpsertVerification(ctx context.Context, rec domain.EmailVerification) (domain.EmailVerification, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	rec.EmailCreated = r.now()
	rec.EmailUpdated = rec.EmailCreated

	const query = `INSERT INTO email_verifications
		(id, user_id, email_type, auth_token, sent_date, email_created, email_updated)
		VALUES (:id, :user_id, :email_type, :auth_token, :sent_date, :email_created, :email_updated)
		ON CONFLICT (user_id, email_type)
		DO UPDATE SET auth_token = EXCLUDED.auth_token, sent_date = EXCLUDED.sent_date, email_updated = EXCLUDED.email_updated`

	if _, err := r.DB.NamedExecContext(ctxTimeout, query, rec); err != nil {
		r.logger.Error("Falha ao gravar registro de verificação no DB.", err)
		return domain.EmailVerification{}, apperror.NewDBError("failed to upsert email verification", err)
	}

	r.logger.Debug("Registro de verificação gravado.", map[string]interface{}{"user_id": rec.UserID, "email_type": rec.EmailType})
	return rec, nil
}

package userrepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"usersvc/internal/domain"
	apperror "usersvc/internal/errors"
	"usersvc/internal/pkg/database"
	"usersvc/internal/pkg/logger"
)

const userColumns = `id, first_name, last_name, username, password, email_verified, account_created, account_updated`

// UserRepository implementa a persistência de usuários no PostgreSQL.
type UserRepository struct {
	DB        *sqlx.DB
	DBTimeout time.Duration
	logger    logger.Logger
	now       func() time.Time
}

// NewUserRepository cria uma nova instância do UserRepository, injetando o DB.
func NewUserRepository(db *sqlx.DB, dbTimeout time.Duration, log logger.Logger) *UserRepository {
	return &UserRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    log,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Insert cria o usuário. A unicidade do username é garantida pela constraint do banco;
// uma violação retorna domain.ErrUsernameTaken.
func (r *UserRepository) Insert(ctx context.Context, user domain.User) (domain.User, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	user.ID = uuid.NewString()
	user.AccountCreated = r.now()
	user.AccountUpdated = user.AccountCreated

	const query = `INSERT INTO users (` + userColumns + `)
		VALUES (:id, :first_name, :last_name, :username, :password, :email_verified, :account_created, :account_updated)`

	if _, err := r.DB.NamedExecContext(ctxTimeout, query, user); err != nil {
		if database.IsUniqueViolation(err) {
			r.logger.Info("Username já cadastrado (constraint UNIQUE).", map[string]interface{}{"username": user.Username})
			return domain.User{}, domain.ErrUsernameTaken
		}
		r.logger.Error("Falha ao inserir usuário no DB.", err)
		return domain.User{}, apperror.NewDBError("failed to insert user", err)
	}

	r.logger.Debug("Usuário inserido.", map[string]interface{}{"user_id": user.ID})
	return user, nil
}

// FindByUsername busca um usuário pelo username (e-mail).
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (domain.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
}

// FindByID busca um usuário pelo ID.
func (r *UserRepository) FindByID(ctx context.Context, id string) (domain.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		// IDs fora do formato nunca existem na tabela; evita erro de cast no Postgres.
		return domain.User{}, domain.ErrNotFound
	}
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *UserRepository) findOne(ctx context.Context, query string, arg string) (domain.User, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var user domain.User
	if err := r.DB.GetContext(ctxTimeout, &user, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrNotFound
		}
		r.logger.Error("Falha ao buscar usuário no DB.", err)
		return domain.User{}, apperror.NewDBError("failed to find user", err)
	}
	return user, nil
}

// Save persiste os campos mutáveis do usuário e atualiza account_updated.
// Password vazio mantém o hash já gravado.
func (r *UserRepository) Save(ctx context.Context, user domain.User) (domain.User, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	user.AccountUpdated = r.now()

	const query = `UPDATE users
		SET first_name = :first_name, last_name = :last_name,
		    password = COALESCE(NULLIF(:password, ''), password),
		    email_verified = :email_verified, account_updated = :account_updated
		WHERE id = :id`

	res, err := r.DB.NamedExecContext(ctxTimeout, query, user)
	if err != nil {
		r.logger.Error("Falha ao atualizar usuário no DB.", err)
		return domain.User{}, apperror.NewDBError("failed to update user", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return domain.User{}, apperror.NewDBError("failed to check affected rows", err)
	}
	if rows == 0 {
		return domain.User{}, domain.ErrNotFound
	}

	r.logger.Debug("Usuário atualizado.", map[string]interface{}{"user_id": user.ID})
	return user, nil
}

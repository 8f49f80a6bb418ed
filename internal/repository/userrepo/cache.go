package userrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"usersvc/internal/domain"
	"usersvc/internal/pkg/cache"
	"usersvc/internal/pkg/logger"
)

// Define a chave de cache para usuários.
const userCacheKey = "user:%s"

// Store é o contrato implementado por UserRepository e pela versão com cache.
type Store interface {
	Insert(ctx context.Context, user domain.User) (domain.User, error)
	FindByUsername(ctx context.Context, username string) (domain.User, error)
	FindByID(ctx context.Context, id string) (domain.User, error)
	Save(ctx context.Context, user domain.User) (domain.User, error)
}

// cachedUser é a forma gravada no cache. O hash da senha fica fora do Redis;
// um usuário lido do cache volta com Password vazio e Save preserva o hash do banco.
type cachedUser struct {
	ID             string    `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Username       string    `json:"username"`
	EmailVerified  bool      `json:"email_verified"`
	AccountCreated time.Time `json:"account_created"`
	AccountUpdated time.Time `json:"account_updated"`
}

func toCached(u domain.User) cachedUser {
	return cachedUser{
		ID:             u.ID,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		Username:       u.Username,
		EmailVerified:  u.EmailVerified,
		AccountCreated: u.AccountCreated,
		AccountUpdated: u.AccountUpdated,
	}
}

func (c cachedUser) user() domain.User {
	return domain.User{
		ID:             c.ID,
		FirstName:      c.FirstName,
		LastName:       c.LastName,
		Username:       c.Username,
		EmailVerified:  c.EmailVerified,
		AccountCreated: c.AccountCreated,
		AccountUpdated: c.AccountUpdated,
	}
}

// CachedUserRepository aplica Cache-Aside às buscas por ID. Gravações invalidam a chave.
// Falhas do cache nunca impedem a operação no banco.
type CachedUserRepository struct {
	next   Store
	cache  cache.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewCachedUserRepository(next Store, c cache.Client, ttl time.Duration, log logger.Logger) *CachedUserRepository {
	return &CachedUserRepository{next: next, cache: c, ttl: ttl, logger: log}
}

func (r *CachedUserRepository) Insert(ctx context.Context, user domain.User) (domain.User, error) {
	return r.next.Insert(ctx, user)
}

// FindByUsername não passa pelo cache: é o caminho da autenticação.
func (r *CachedUserRepository) FindByUsername(ctx context.Context, username string) (domain.User, error) {
	return r.next.FindByUsername(ctx, username)
}

// FindByID busca um usuário pelo ID, utilizando a estratégia Cache-Aside.
func (r *CachedUserRepository) FindByID(ctx context.Context, id string) (domain.User, error) {
	key := fmt.Sprintf(userCacheKey, id)

	cached, err := r.cache.Get(ctx, key)
	if err == nil {
		var entry cachedUser
		if json.Unmarshal([]byte(cached), &entry) == nil {
			return entry.user(), nil
		}
		r.logger.Warn("Entrada de cache inválida.", map[string]interface{}{"key": key})
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		r.logger.Warn("Falha ao ler do cache.", map[string]interface{}{"key": key, "error": err.Error()})
	}

	user, err := r.next.FindByID(ctx, id)
	if err != nil {
		return user, err
	}

	if data, err := json.Marshal(toCached(user)); err == nil {
		if err := r.cache.Set(ctx, key, data, r.ttl); err != nil {
			r.logger.Warn("Falha ao gravar no cache.", map[string]interface{}{"key": key, "error": err.Error()})
		}
	}
	return user, nil
}

func (r *CachedUserRepository) Save(ctx context.Context, user domain.User) (domain.User, error) {
	saved, err := r.next.Save(ctx, user)
	if err != nil {
		return saved, err
	}

	if err := r.cache.Delete(ctx, fmt.Sprintf(userCacheKey, user.ID)); err != nil {
		r.logger.Warn("Falha ao invalidar o cache.", map[string]interface{}{"user_id": user.ID, "error": err.Error()})
	}
	return saved, nil
}

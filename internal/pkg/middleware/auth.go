package middleware

import (
	"context"
	"net/http"
	"strings"

	"usersvc/internal/api/response"
	"usersvc/internal/domain"
	apperror "usersvc/internal/errors"
	"usersvc/internal/pkg/logger"
	"usersvc/internal/pkg/session"
	"usersvc/internal/pkg/token"
	"usersvc/internal/result"
)

// Authenticator confere credenciais Basic contra o cadastro de usuários.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) result.Result[domain.User]
}

// TokenService define o contrato de validação necessário para o middleware.
type TokenService interface {
	ValidateToken(tokenString string) (*token.CustomClaims, error)
}

// NewAuthMiddleware aceita "Authorization: Basic" (username/senha) ou
// "Authorization: Bearer <jwt>" e coloca o ID do usuário no contexto da
// requisição. Falhas de credencial respondem 401 com corpo vazio.
func NewAuthMiddleware(auth Authenticator, tokenSvc TokenService, log logger.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log.Info("Verificando autorização do usuário.", nil)

			userID, appErr := identify(r, auth, tokenSvc)
			if appErr != nil {
				log.Info("Usuário não autorizado.", map[string]interface{}{"path": r.URL.Path})
				response.Error(w, log, appErr)
				return
			}

			next.ServeHTTP(w, r.WithContext(session.WithUserID(r.Context(), userID)))
		})
	}
}

func identify(r *http.Request, auth Authenticator, tokenSvc TokenService) (string, *apperror.AppError) {
	if username, password, ok := r.BasicAuth(); ok {
		res := auth.Authenticate(r.Context(), username, password)
		if !res.IsOk() {
			return "", res.Error()
		}
		return res.Value().ID, nil
	}

	authHeader := r.Header.Get("Authorization")
	bearer, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found || bearer == "" {
		return "", apperror.NewUnauthorizedError()
	}

	claims, err := tokenSvc.ValidateToken(bearer)
	if err != nil {
		return "", apperror.NewUnauthorizedError()
	}
	return claims.UserID, nil
}

// Package session carrega a identidade autenticada no context.Context da requisição.
package session

import "context"

type contextKey int

const userIDKey contextKey = iota

// WithUserID retorna um contexto filho com o ID do usuário autenticado.
// Apenas o middleware de autenticação deve chamá-la.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext retorna o ID do usuário autenticado, se houver.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}

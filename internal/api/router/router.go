package router

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	"usersvc/internal/api/health"
	"usersvc/internal/api/response"
	"usersvc/internal/api/user"
	_ "usersvc/internal/docs" // registra a especificação servida em /swagger/
	"usersvc/internal/pkg/logger"
	"usersvc/internal/pkg/middleware"
)

// Middleware envolve um handler.
type Middleware func(http.Handler) http.Handler

// methods despacha pelo método HTTP; métodos não registrados recebem 405 sem corpo.
type methods map[string]http.Handler

func (m methods) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h, ok := m[r.Method]
	if !ok {
		response.Status(w, http.StatusMethodNotAllowed)
		return
	}
	h.ServeHTTP(w, r)
}

// Options agrupa as dependências do roteador.
type Options struct {
	UserHandler   *user.Handler
	HealthHandler *health.Handler
	// Auth protege as rotas /v2/user/self*.
	Auth Middleware
	// Global é aplicado a todas as rotas, na ordem dada (o primeiro é o mais externo).
	Global []Middleware
	Logger logger.Logger
}

// NewRouter configura e retorna o roteador HTTP principal.
// Recebe os Handlers já inicializados por injeção de dependências.
func NewRouter(opts Options) http.Handler {
	mux := http.NewServeMux()
	uh := opts.UserHandler
	auth := opts.Auth

	// --- 1. Health Check ---
	mux.Handle("/healthz", methods{
		http.MethodGet: middleware.NoCache(http.HandlerFunc(opts.HealthHandler.HealthzHandler)),
	})

	// --- 2. Rotas de Usuário (v2) ---
	mux.Handle("/v2/user", methods{
		http.MethodPost: http.HandlerFunc(uh.CreateUserHandler),
	})
	mux.Handle("/v2/user/self", methods{
		http.MethodGet: auth(http.HandlerFunc(uh.GetSelfHandler)),
		http.MethodPut: auth(http.HandlerFunc(uh.UpdateSelfHandler)),
	})
	mux.Handle("/v2/user/verify", methods{
		http.MethodGet: http.HandlerFunc(uh.VerifyEmailHandler),
	})
	mux.Handle("/v2/user/self/verify", methods{
		http.MethodPost: auth(http.HandlerFunc(uh.ResendVerificationHandler)),
	})
	mux.Handle("/v2/user/self/token", methods{
		http.MethodPost: auth(http.HandlerFunc(uh.IssueTokenHandler)),
	})

	// --- 3. Documentação ---
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	// --- 4. Fallback ---
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		response.Status(w, http.StatusNotFound)
	})

	opts.Logger.Debug("Rotas HTTP registradas.", map[string]interface{}{"middlewares_globais": len(opts.Global)})

	// --- 5. Middlewares Globais ---
	var h http.Handler = mux
	for i := len(opts.Global) - 1; i >= 0; i-- {
		h = opts.Global[i](h)
	}
	return h
}

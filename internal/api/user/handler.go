package user

import (
	"context"
	"encoding/json"
	"net/http"

	"usersvc/internal/api/response"
	"usersvc/internal/domain"
	apperror "usersvc/internal/errors"
	"usersvc/internal/pkg/logger"
	"usersvc/internal/result"
)

// maxBodyBytes limita o corpo aceito nas rotas de criação e atualização.
const maxBodyBytes = 1 << 20

// UserService define o contrato das operações de conta usadas pelos handlers.
type UserService interface {
	CreateUser(ctx context.Context, fields domain.UserFields, skipVerification bool) result.Result[domain.PublicUser]
	UpdateUser(ctx context.Context, fields domain.UserFields) result.Result[domain.PublicUser]
	GetUser(ctx context.Context) result.Result[domain.PublicUser]
	VerifyEmail(ctx context.Context, email, token string) result.Result[string]
	ResendVerification(ctx context.Context) result.Result[string]
	IssueToken(ctx context.Context) result.Result[domain.TokenResponse]
}

// Handler agrupa todos os métodos de Handler do usuário.
type Handler struct {
	Service UserService
	Logger  logger.Logger
	// SkipVerification cria contas já verificadas (ambiente de teste).
	SkipVerification bool
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc UserService, log logger.Logger, skipVerification bool) *Handler {
	return &Handler{
		Service:          svc,
		Logger:           log,
		SkipVerification: skipVerification,
	}
}

// CreateUserHandler lida com a requisição POST /v2/user.
// @Summary Cria um novo usuário
// @Description Valida o payload, grava o usuário com a senha em hash e dispara o e-mail de verificação.
// @Tags users
// @Accept json
// @Produce json
// @Param user body domain.UserCreateRequest true "Dados do usuário"
// @Success 201 {object} domain.PublicUser "Usuário criado com sucesso"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido ou username já cadastrado"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /v2/user [post]
func (h *Handler) CreateUserHandler(w http.ResponseWriter, r *http.Request) {
	fields, ok := h.decodeFields(w, r)
	if !ok {
		return
	}

	res := h.Service.CreateUser(r.Context(), fields, h.SkipVerification)
	response.Write(w, h.Logger, res, http.StatusCreated)
}

// GetSelfHandler lida com a requisição GET /v2/user/self.
// @Summary Retorna o usuário autenticado
// @Tags users
// @Produce json
// @Security BasicAuth
// @Security BearerAuth
// @Success 200 {object} domain.PublicUser
// @Failure 400 "Query params não são aceitos"
// @Failure 401 "Credenciais ausentes ou inválidas"
// @Failure 404 "Usuário não encontrado"
// @Router /v2/user/self [get]
func (h *Handler) GetSelfHandler(w http.ResponseWriter, r *http.Request) {
	if h.rejectQuery(w, r) {
		return
	}
	response.Write(w, h.Logger, h.Service.GetUser(r.Context()), http.StatusOK)
}

// UpdateSelfHandler lida com a requisição PUT /v2/user/self.
// @Summary Atualiza parcialmente o usuário autenticado
// @Description Apenas first_name, last_name e password podem ser alterados; chaves ausentes ficam como estão.
// @Tags users
// @Accept json
// @Produce json
// @Security BasicAuth
// @Security BearerAuth
// @Param user body domain.UserUpdateRequest true "Campos a alterar"
// @Success 200 {object} domain.PublicUser
// @Failure 400 {object} domain.ErrorResponse "Patch inválido"
// @Failure 401 "Credenciais ausentes ou inválidas"
// @Failure 404 "Usuário não encontrado"
// @Router /v2/user/self [put]
func (h *Handler) UpdateSelfHandler(w http.ResponseWriter, r *http.Request) {
	fields, ok := h.decodeFields(w, r)
	if !ok {
		return
	}
	response.Write(w, h.Logger, h.Service.UpdateUser(r.Context(), fields), http.StatusOK)
}

// VerifyEmailHandler lida com a requisição GET /v2/user/verify.
// @Summary Confirma o e-mail do usuário
// @Tags users
// @Produce json
// @Param email query string true "E-mail (username) do usuário"
// @Param auth_token query string true "Token recebido no link"
// @Success 200 {string} string "Email verified"
// @Failure 400 {object} domain.ErrorResponse "Link incompleto"
// @Failure 403 "Token divergente ou expirado"
// @Failure 404 "Usuário ou link não encontrado"
// @Router /v2/user/verify [get]
func (h *Handler) VerifyEmailHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	res := h.Service.VerifyEmail(r.Context(), q.Get("email"), q.Get("auth_token"))
	response.Write(w, h.Logger, res, http.StatusOK)
}

// ResendVerificationHandler lida com a requisição POST /v2/user/self/verify.
// @Summary Reenvia o e-mail de verificação
// @Tags users
// @Produce json
// @Security BasicAuth
// @Security BearerAuth
// @Success 200 {string} string "Verification email sent"
// @Failure 400 {object} domain.ErrorResponse "E-mail já verificado"
// @Failure 401 "Credenciais ausentes ou inválidas"
// @Failure 500 {object} domain.ErrorResponse "Falha ao publicar o evento"
// @Router /v2/user/self/verify [post]
func (h *Handler) ResendVerificationHandler(w http.ResponseWriter, r *http.Request) {
	if h.rejectQuery(w, r) {
		return
	}
	response.Write(w, h.Logger, h.Service.ResendVerification(r.Context()), http.StatusOK)
}

// IssueTokenHandler lida com a requisição POST /v2/user/self/token.
// @Summary Emite um token bearer para o usuário autenticado
// @Tags users
// @Produce json
// @Security BasicAuth
// @Success 200 {object} domain.TokenResponse
// @Failure 401 "Credenciais ausentes ou inválidas"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /v2/user/self/token [post]
func (h *Handler) IssueTokenHandler(w http.ResponseWriter, r *http.Request) {
	if h.rejectQuery(w, r) {
		return
	}
	response.Write(w, h.Logger, h.Service.IssueToken(r.Context()), http.StatusOK)
}

// rejectQuery responde 400 sem corpo quando a requisição traz query params.
func (h *Handler) rejectQuery(w http.ResponseWriter, r *http.Request) bool {
	if r.URL.RawQuery == "" {
		return false
	}
	response.Error(w, h.Logger, apperror.NewHiddenValidationError("query params not allowed", nil))
	return true
}

// decodeFields lê o corpo como objeto JSON. Corpo vazio, malformado ou sem
// chaves vira 400 sem corpo, sem ecoar o texto do parser.
func (h *Handler) decodeFields(w http.ResponseWriter, r *http.Request) (domain.UserFields, bool) {
	if h.rejectQuery(w, r) {
		return nil, false
	}

	var fields domain.UserFields
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&fields); err != nil {
		h.Logger.Info("Payload JSON inválido.", map[string]interface{}{"error": err.Error()})
		response.Error(w, h.Logger, apperror.NewHiddenValidationError("invalid json", err))
		return nil, false
	}
	if len(fields) == 0 {
		response.Error(w, h.Logger, apperror.NewHiddenValidationError("empty body", nil))
		return nil, false
	}
	return fields, true
}

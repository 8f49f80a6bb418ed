package userservice

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/google/uuid"

	"usersvc/internal/domain"
	apperror "usersvc/internal/errors"
	"usersvc/internal/pkg/logger"
	"usersvc/internal/pkg/session"
	"usersvc/internal/result"
)

// Mensagens expostas ao cliente.
const (
	msgUserExists          = "User with this username already exists"
	msgUserNotFound        = "User not found"
	msgInvalidLink         = "Invalid link. Cannot verify email"
	msgLinkNotFound        = "Verification link not found"
	msgLinkMismatch        = "Invalid link used for verification"
	msgLinkExpired         = "Invalid/Expired link used for verification"
	msgEmailVerified       = "Email verified"
	msgAlreadyVerified     = "Email already verified"
	msgVerificationSent    = "Verification email sent"
	msgCreatedNoEmail      = "Created User. Unable to send verify email."
	msgUnableToSendEmail   = "Unable to send verify email."
	msgErrorCreatingUser   = "Error creating user"
	msgErrorUpdatingUser   = "Error updating user"
	msgErrorFetchingUser   = "Error fetching user"
	msgErrorVerifyingEmail = "Error verifying email"
)

// UserRepository é o contrato de persistência de usuários esperado pelo serviço.
// Buscas sem resultado retornam domain.ErrNotFound.
type UserRepository interface {
	Insert(ctx context.Context, user domain.User) (domain.User, error)
	FindByUsername(ctx context.Context, username string) (domain.User, error)
	FindByID(ctx context.Context, id string) (domain.User, error)
	Save(ctx context.Context, user domain.User) (domain.User, error)
}

// VerificationRepository guarda os tokens de verificação de e-mail emitidos.
type VerificationRepository interface {
	FindVerification(ctx context.Context, userID, emailType string) (domain.EmailVerification, error)
	UpsertVerification(ctx context.Context, rec domain.EmailVerification) (domain.EmailVerification, error)
}

// Hasher faz o hash e a comparação de senhas.
type Hasher interface {
	Hash(plain string) (string, error)
	Compare(plain, hashed string) bool
}

// EventPublisher publica eventos no broker. O valor de sucesso é o ID da mensagem.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, payload any) result.Result[string]
}

// TokenIssuer emite tokens bearer para o usuário autenticado.
type TokenIssuer interface {
	GenerateToken(userID, username string) (string, error)
}

// Config reúne os parâmetros de verificação de e-mail.
type Config struct {
	VerifyEmailTopic  string
	VerifyEmailExpiry time.Duration
}

// Option ajusta dependências opcionais do serviço.
type Option func(*Service)

// WithClock substitui o relógio usado na emissão e expiração de links.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithTokenGenerator substitui o gerador de tokens de verificação.
func WithTokenGenerator(gen func() string) Option {
	return func(s *Service) { s.newToken = gen }
}

// Service implementa as regras de negócio de usuários.
type Service struct {
	users         UserRepository
	verifications VerificationRepository
	hasher        Hasher
	publisher     EventPublisher
	tokens        TokenIssuer
	cfg           Config
	logger        logger.Logger
	now           func() time.Time
	newToken      func() string
}

// NewService cria uma nova instância do Service, injetando os colaboradores.
func NewService(
	users UserRepository,
	verifications VerificationRepository,
	hasher Hasher,
	publisher EventPublisher,
	tokens TokenIssuer,
	cfg Config,
	log logger.Logger,
	opts ...Option,
) *Service {
	s := &Service{
		users:         users,
		verifications: verifications,
		hasher:        hasher,
		publisher:     publisher,
		tokens:        tokens,
		cfg:           cfg,
		logger:        log,
		now:           func() time.Time { return time.Now().UTC() },
		newToken:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateUser registra um novo usuário. Sem skipVerification, grava o token de
// verificação e publica o evento de envio de e-mail; se isso falhar, o usuário
// permanece criado e não verificado, e o resultado é um InternalError.
func (s *Service) CreateUser(ctx context.Context, fields domain.UserFields, skipVerification bool) (res result.Result[domain.PublicUser]) {
	defer recoverInternal(&res, s.logger, msgErrorCreatingUser)
	s.logger.Info("Criando usuário.", nil)

	// 1. Validação do payload
	if msg := ValidateCreateUser(fields); msg != "" {
		return result.Err[domain.PublicUser](apperror.NewValidationError(msg))
	}

	// 2. Username já cadastrado?
	username := fields.String(domain.FieldUsername)
	s.logger.Info("Criando usuário com username.", map[string]interface{}{"username": username})

	_, err := s.users.FindByUsername(ctx, username)
	if err == nil {
		return result.Err[domain.PublicUser](apperror.NewValidationError(msgUserExists))
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return internalErr[domain.PublicUser](s.logger, msgErrorCreatingUser, err)
	}

	// 3. Hash da senha
	hashed, err := s.hasher.Hash(fields.String(domain.FieldPassword))
	if err != nil {
		return internalErr[domain.PublicUser](s.logger, msgErrorCreatingUser, err)
	}

	// 4. Persistência. A constraint UNIQUE cobre registros concorrentes que passaram pelo passo 2.
	created, err := s.users.Insert(ctx, domain.User{
		FirstName:     fields.String(domain.FieldFirstName),
		LastName:      fields.String(domain.FieldLastName),
		Username:      username,
		Password:      hashed,
		EmailVerified: skipVerification,
	})
	if errors.Is(err, domain.ErrUsernameTaken) {
		return result.Err[domain.PublicUser](apperror.NewValidationError(msgUserExists))
	}
	if err != nil {
		return internalErr[domain.PublicUser](s.logger, msgErrorCreatingUser, err)
	}
	s.logger.Info("Usuário criado.", map[string]interface{}{"user_id": created.ID})

	// 5. E-mail de verificação
	if !skipVerification {
		if sent := s.sendVerification(ctx, created); !sent.IsOk() {
			return internalErr[domain.PublicUser](s.logger, msgCreatedNoEmail, sent.Error())
		}
	}

	return result.Ok(created.Public())
}

// UpdateUser aplica um patch esparso ao usuário autenticado: apenas as chaves
// presentes em fields são alteradas.
func (s *Service) UpdateUser(ctx context.Context, fields domain.UserFields) (res result.Result[domain.PublicUser]) {
	defer recoverInternal(&res, s.logger, msgErrorUpdatingUser)
	s.logger.Info("Atualizando usuário.", nil)

	if msg := ValidateUpdateUser(fields); msg != "" {
		return result.Err[domain.PublicUser](apperror.NewValidationError(msg))
	}

	user, appErr := s.currentUser(ctx, msgErrorUpdatingUser)
	if appErr != nil {
		return result.Err[domain.PublicUser](appErr)
	}

	if fields.Has(domain.FieldFirstName) {
		user.FirstName = fields.String(domain.FieldFirstName)
	}
	if fields.Has(domain.FieldLastName) {
		user.LastName = fields.String(domain.FieldLastName)
	}
	if fields.Has(domain.FieldPassword) {
		hashed, err := s.hasher.Hash(fields.String(domain.FieldPassword))
		if err != nil {
			return internalErr[domain.PublicUser](s.logger, msgErrorUpdatingUser, err)
		}
		user.Password = hashed
	}

	saved, err := s.users.Save(ctx, user)
	if errors.Is(err, domain.ErrNotFound) {
		return result.Err[domain.PublicUser](apperror.NewNotFoundError(msgUserNotFound))
	}
	if err != nil {
		return internalErr[domain.PublicUser](s.logger, msgErrorUpdatingUser, err)
	}

	s.logger.Info("Usuário atualizado.", map[string]interface{}{"user_id": saved.ID})
	return result.Ok(saved.Public())
}

// GetUser retorna a visão pública do usuário autenticado.
func (s *Service) GetUser(ctx context.Context) (res result.Result[domain.PublicUser]) {
	defer recoverInternal(&res, s.logger, msgErrorFetchingUser)

	user, appErr := s.currentUser(ctx, msgErrorFetchingUser)
	if appErr != nil {
		return result.Err[domain.PublicUser](appErr)
	}
	return result.Ok(user.Public())
}

// VerifyEmail confirma o e-mail com o token do link. Repetir a verificação de
// um usuário já verificado é inofensivo e não altera nada.
func (s *Service) VerifyEmail(ctx context.Context, email, token string) (res result.Result[string]) {
	defer recoverInternal(&res, s.logger, msgErrorVerifyingEmail)

	if email == "" || token == "" {
		return result.Err[string](apperror.NewValidationError(msgInvalidLink))
	}

	user, err := s.users.FindByUsername(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return result.Err[string](apperror.NewNotFoundError(msgUserNotFound))
	}
	if err != nil {
		return internalErr[string](s.logger, msgErrorVerifyingEmail, err)
	}

	if user.EmailVerified {
		return result.Ok(msgEmailVerified)
	}

	rec, err := s.verifications.FindVerification(ctx, user.ID, domain.EmailTypeVerify)
	if errors.Is(err, domain.ErrNotFound) {
		return result.Err[string](apperror.NewNotFoundError(msgLinkNotFound))
	}
	if err != nil {
		return internalErr[string](s.logger, msgErrorVerifyingEmail, err)
	}

	if subtle.ConstantTimeCompare([]byte(rec.AuthToken), []byte(token)) != 1 {
		s.logger.Info("Token de verificação não confere.", map[string]interface{}{"user_id": user.ID})
		return result.Err[string](apperror.NewForbiddenError(msgLinkMismatch))
	}
	if s.now().After(rec.ExpiresAt(s.cfg.VerifyEmailExpiry)) {
		s.logger.Info("Link de verificação expirado.", map[string]interface{}{"user_id": user.ID})
		return result.Err[string](apperror.NewForbiddenError(msgLinkExpired))
	}

	user.EmailVerified = true
	if _, err := s.users.Save(ctx, user); err != nil {
		return internalErr[string](s.logger, msgErrorVerifyingEmail, err)
	}

	s.logger.Info("E-mail verificado.", map[string]interface{}{"user_id": user.ID})
	return result.Ok(msgEmailVerified)
}

// ResendVerification emite um novo link para o usuário autenticado ainda não verificado.
// Serve para recuperar o estado em que o usuário foi criado mas o e-mail não saiu.
func (s *Service) ResendVerification(ctx context.Context) (res result.Result[string]) {
	defer recoverInternal(&res, s.logger, msgUnableToSendEmail)

	user, appErr := s.currentUser(ctx, msgUnableToSendEmail)
	if appErr != nil {
		return result.Err[string](appErr)
	}
	if user.EmailVerified {
		return result.Err[string](apperror.NewValidationError(msgAlreadyVerified))
	}

	if sent := s.sendVerification(ctx, user); !sent.IsOk() {
		return internalErr[string](s.logger, msgUnableToSendEmail, sent.Error())
	}
	return result.Ok(msgVerificationSent)
}

// Authenticate confere as credenciais. Usuário inexistente e senha incorreta
// retornam o mesmo Unauthorized.
func (s *Service) Authenticate(ctx context.Context, username, password string) (res result.Result[domain.User]) {
	defer recoverInternal(&res, s.logger, "Error authenticating user")

	user, err := s.users.FindByUsername(ctx, username)
	if errors.Is(err, domain.ErrNotFound) {
		s.logger.Info("Usuário não encontrado na autenticação.", map[string]interface{}{"username": username})
		return result.Err[domain.User](apperror.NewUnauthorizedError())
	}
	if err != nil {
		return internalErr[domain.User](s.logger, "Error authenticating user", err)
	}

	if !s.hasher.Compare(password, user.Password) {
		s.logger.Info("Senha incorreta.", map[string]interface{}{"username": username})
		return result.Err[domain.User](apperror.NewUnauthorizedError())
	}
	return result.Ok(user)
}

// IssueToken assina um token bearer para o usuário autenticado.
func (s *Service) IssueToken(ctx context.Context) (res result.Result[domain.TokenResponse]) {
	defer recoverInternal(&res, s.logger, "Error issuing token")

	user, appErr := s.currentUser(ctx, "Error issuing token")
	if appErr != nil {
		return result.Err[domain.TokenResponse](appErr)
	}

	signed, err := s.tokens.GenerateToken(user.ID, user.Username)
	if err != nil {
		return internalErr[domain.TokenResponse](s.logger, "Error issuing token", err)
	}
	return result.Ok(domain.TokenResponse{Token: signed})
}

// currentUser carrega o usuário da identidade presente no contexto da requisição.
func (s *Service) currentUser(ctx context.Context, internalMsg string) (domain.User, *apperror.AppError) {
	userID, ok := session.UserIDFromContext(ctx)
	if !ok {
		return domain.User{}, apperror.NewNotFoundError(msgUserNotFound)
	}
	s.logger.Debug("Buscando usuário do contexto.", map[string]interface{}{"user_id": userID})

	user, err := s.users.FindByID(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.User{}, apperror.NewNotFoundError(msgUserNotFound)
	}
	if err != nil {
		s.logger.Error(internalMsg, err)
		return domain.User{}, apperror.NewInternalError(internalMsg, err)
	}
	return user, nil
}

// sendVerification grava um novo token VERIFY para o usuário e publica o evento de envio.
func (s *Service) sendVerification(ctx context.Context, user domain.User) result.Result[string] {
	rec, err := s.verifications.UpsertVerification(ctx, domain.EmailVerification{
		UserID:    user.ID,
		EmailType: domain.EmailTypeVerify,
		AuthToken: s.newToken(),
		SentDate:  s.now(),
	})
	if err != nil {
		return result.Err[string](apperror.From(err))
	}

	return s.publisher.Publish(ctx, s.cfg.VerifyEmailTopic, domain.VerifyEmailEvent{
		UserID:    user.ID,
		Username:  user.Username,
		AuthToken: rec.AuthToken,
	})
}

package errors

import (
	"errors"
	"fmt"
	"net/http"

	"usersvc/internal/domain"
)

// Kind é o conjunto fechado de categorias de erro do serviço.
// Cada Kind corresponde a exatamente um status HTTP.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindMethodNotAllowed
	KindServiceUnavailable
	KindInternalServerError
)

// HTTPStatus retorna o código HTTP fixo associado à categoria.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest // 400
	case KindUnauthorized:
		return http.StatusUnauthorized // 401
	case KindForbidden:
		return http.StatusForbidden // 403
	case KindNotFound:
		return http.StatusNotFound // 404
	case KindMethodNotAllowed:
		return http.StatusMethodNotAllowed // 405
	case KindServiceUnavailable:
		return http.StatusServiceUnavailable // 503
	default:
		return http.StatusInternalServerError // 500
	}
}

// Category retorna o nome da categoria, usado nos logs.
func (k Kind) Category() string {
	switch k {
	case KindValidation:
		return "VALIDATION_ERROR"
	case KindUnauthorized:
		return "UNAUTHORIZED"
	case KindForbidden:
		return "FORBIDDEN"
	case KindNotFound:
		return "NOT_FOUND"
	case KindMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case KindServiceUnavailable:
		return "SERVICE_UNAVAILABLE"
	default:
		return "INTERNAL_ERROR"
	}
}

// AppError é o erro tipado central do serviço.
// Kind é imutável após a construção; Expose indica se Msg pode ir para o cliente.
type AppError struct {
	kind   Kind
	Msg    string
	Expose bool
	Err    error // erro original subjacente (e.g., erro do driver SQL)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.kind.Category(), e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.kind.Category(), e.Msg)
}

func (e *AppError) Kind() Kind       { return e.kind }
func (e *AppError) HTTPStatus() int  { return e.kind.HTTPStatus() }
func (e *AppError) Category() string { return e.kind.Category() }
func (e *AppError) Unwrap() error    { return e.Err }

func newError(kind Kind, msg string, err error) *AppError {
	return &AppError{kind: kind, Msg: msg, Expose: true, Err: err}
}

// --- Construtores ---

// NewValidationError cria um erro de validação (400) com mensagem exposta ao cliente.
func NewValidationError(msg string) *AppError {
	return newError(KindValidation, msg, nil)
}

// NewHiddenValidationError cria um 400 sem corpo. Usado quando o payload não pôde
// ser interpretado, para não ecoar o texto do parser.
func NewHiddenValidationError(msg string, err error) *AppError {
	e := newError(KindValidation, msg, err)
	e.Expose = false
	return e
}

func NewUnauthorizedError() *AppError {
	return newError(KindUnauthorized, "Unauthorized", nil)
}

func NewForbiddenError(msg string) *AppError {
	return newError(KindForbidden, msg, nil)
}

func NewNotFoundError(msg string) *AppError {
	return newError(KindNotFound, msg, nil)
}

func NewMethodNotAllowedError() *AppError {
	return newError(KindMethodNotAllowed, "", nil)
}

func NewServiceUnavailableError(msg string) *AppError {
	return newError(KindServiceUnavailable, msg, nil)
}

// NewInternalError cria um erro de servidor (para falhas de lógica ou código não esperado).
func NewInternalError(msg string, err error) *AppError {
	return newError(KindInternalServerError, msg, err)
}

// NewDBError é um atalho para criar um InternalError específico de falhas no DB.
func NewDBError(msg string, err error) *AppError {
	return NewInternalError(fmt.Sprintf("%s (DB)", msg), err)
}

// From extrai um *AppError da cadeia de err. Erros não tipados viram InternalError.
func From(err error) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewInternalError("unexpected error", err)
}

// Is reporta se err carrega um AppError da categoria informada.
func Is(err error, kind Kind) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.kind == kind
}

// --- Helper para o Handler (Tradução Final) ---

// MapToHTTPStatus traduz um erro para o status HTTP e o corpo da resposta.
// O corpo só é preenchido para 400 e 500 com Expose ligado; os demais erros
// respondem apenas com o status.
func MapToHTTPStatus(err error) (int, *domain.ErrorResponse) {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError, nil
	}

	status := appErr.HTTPStatus()
	if !appErr.Expose {
		return status, nil
	}
	if appErr.kind == KindValidation || appErr.kind == KindInternalServerError {
		return status, &domain.ErrorResponse{Error: appErr.Msg}
	}
	return status, nil
}

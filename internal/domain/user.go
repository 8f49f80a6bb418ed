package domain

import (
	"errors"
	"time"
)

// Erros sentinela da camada de persistência. Os serviços os traduzem para AppError.
var (
	ErrNotFound      = errors.New("record not found")
	ErrUsernameTaken = errors.New("username already exists")
)

// User representa a entidade do usuário no sistema.
type User struct {
	ID             string    `db:"id"`
	FirstName      string    `db:"first_name"`
	LastName       string    `db:"last_name"`
	Username       string    `db:"username"` // e-mail; único e imutável após a criação
	Password       string    `db:"password"` // hash bcrypt, nunca serializado
	EmailVerified  bool      `db:"email_verified"`
	AccountCreated time.Time `db:"account_created"`
	AccountUpdated time.Time `db:"account_updated"`
}

// PublicUser é a visão serializada do usuário. Não possui campo de senha.
// @Description Usuário retornado pela API (sem senha).
type PublicUser struct {
	ID             string    `json:"id" example:"8a6e0804-2bd0-4672-b79d-d97027f9071a"`
	FirstName      string    `json:"first_name" example:"Jane"`
	LastName       string    `json:"last_name" example:"Doe"`
	Username       string    `json:"username" example:"jane.doe@example.com"`
	EmailVerified  bool      `json:"email_verified"`
	AccountCreated time.Time `json:"account_created"`
	AccountUpdated time.Time `json:"account_updated"`
}

// Public converte o usuário para a visão pública.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:             u.ID,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		Username:       u.Username,
		EmailVerified:  u.EmailVerified,
		AccountCreated: u.AccountCreated,
		AccountUpdated: u.AccountUpdated,
	}
}

// UserFields é o objeto JSON bruto (não confiável) enviado no corpo das requisições
// de criação e atualização. Apenas as chaves presentes são consideradas.
type UserFields map[string]any

// Nomes dos campos aceitos nos payloads.
const (
	FieldID        = "id"
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldPassword  = "password"
	FieldUsername  = "username"
)

// String retorna o valor string da chave, ou "" se ausente ou de outro tipo.
func (f UserFields) String(key string) string {
	s, _ := f[key].(string)
	return s
}

// Has reporta se a chave está presente no payload.
func (f UserFields) Has(key string) bool {
	_, ok := f[key]
	return ok
}

// UserCreateRequest documenta o payload de POST /v2/user.
type UserCreateRequest struct {
	FirstName string `json:"first_name" example:"Jane"`
	LastName  string `json:"last_name" example:"Doe"`
	Username  string `json:"username" example:"jane.doe@example.com"`
	Password  string `json:"password" example:"s3cret-pass"`
}

// UserUpdateRequest documenta o payload de PUT /v2/user/self. Todos os campos são opcionais.
type UserUpdateRequest struct {
	FirstName string `json:"first_name,omitempty" example:"Jane"`
	LastName  string `json:"last_name,omitempty" example:"Smith"`
	Password  string `json:"password,omitempty" example:"n3w-s3cret"`
}

// TokenResponse é o corpo retornado na emissão de tokens bearer.
type TokenResponse struct {
	Token string `json:"token"`
}

package userservice

import (
	"fmt"
	"slices"
	"unicode/utf8"

	"usersvc/internal/domain"
	"usersvc/internal/validator"
)

const (
	minPasswordLength = 8
	maxPasswordLength = 50
	maxNameLength     = 100
)

var (
	creatableFields = []string{domain.FieldFirstName, domain.FieldLastName, domain.FieldPassword, domain.FieldUsername}
	updatableFields = []string{domain.FieldFirstName, domain.FieldLastName, domain.FieldPassword}
)

// ValidateCreateUser aplica as regras de criação na ordem fixa e retorna a
// mensagem da primeira regra violada, ou "" se o payload é válido.
func ValidateCreateUser(fields domain.UserFields) string {
	switch {
	case fields == nil:
		return "User details have to be defined"
	case !validator.IsNullOrUndefined(fields[domain.FieldID]):
		return "id is not allowed"
	case !validator.IsValidString(fields[domain.FieldFirstName]):
		return "first_name is required and should be a string"
	case !validator.IsValidString(fields[domain.FieldLastName]):
		return "last_name is required and should be a string"
	case !validator.IsValidString(fields[domain.FieldPassword]):
		return "password is required and should be a string"
	case !validator.IsValidString(fields[domain.FieldUsername]):
		return "username is required and should be a string"
	case !validator.IsValidEmail(fields[domain.FieldUsername]):
		return "username is not a valid email address"
	case !passwordLengthOK(fields.String(domain.FieldPassword)):
		return "password should be at least 8 and at most 50 characters long"
	case !nameLengthOK(fields.String(domain.FieldFirstName)) || !nameLengthOK(fields.String(domain.FieldLastName)):
		return "first_name and last_name should be at most 100 characters long"
	}

	for _, field := range sortedKeys(fields) {
		if !slices.Contains(creatableFields, field) {
			return fmt.Sprintf("Field %s cannot be set during user creation", field)
		}
	}
	return ""
}

// ValidateUpdateUser valida um patch esparso: só as chaves presentes são checadas.
// Retorna "" se o patch pode ser aplicado.
func ValidateUpdateUser(fields domain.UserFields) string {
	if fields == nil {
		return "User details have to be defined"
	}

	for _, field := range sortedKeys(fields) {
		if !slices.Contains(updatableFields, field) {
			return fmt.Sprintf("Field %s cannot be updated", field)
		}

		value := fields[field]
		if !validator.IsValidString(value) {
			return fmt.Sprintf("%s cannot be empty and should be a string", field)
		}

		s := value.(string)
		switch field {
		case domain.FieldFirstName, domain.FieldLastName:
			if !nameLengthOK(s) {
				return fmt.Sprintf("%s should be at most 100 characters long", field)
			}
		case domain.FieldPassword:
			if !passwordLengthOK(s) {
				return "Password should be at least 8 and at most 50 characters long"
			}
		}
	}
	return ""
}

func passwordLengthOK(s string) bool {
	n := utf8.RuneCountInString(s)
	return n >= minPasswordLength && n <= maxPasswordLength
}

func nameLengthOK(s string) bool {
	return utf8.RuneCountInString(s) <= maxNameLength
}

// sortedKeys torna determinística a ordem de verificação das chaves do mapa.
func sortedKeys(fields domain.UserFields) []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

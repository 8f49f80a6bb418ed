// Package validator contém predicados puros sobre valores vindos de payloads JSON.
package validator

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[\w\-.]+@([\w\-]+\.)+[\w\-]{2,4}$`)

// IsNullOrUndefined reporta se o valor está ausente (nil).
func IsNullOrUndefined(data any) bool {
	return data == nil
}

// IsValidString reporta se data é uma string com conteúdo além de espaços.
func IsValidString(data any) bool {
	s, ok := data.(string)
	return ok && strings.TrimSpace(s) != ""
}

// IsValidEmail reporta se data é uma string não vazia no formato local@dominio.tld.
func IsValidEmail(data any) bool {
	if !IsValidString(data) {
		return false
	}
	return emailPattern.MatchString(data.(string))
}

// DoesPropertyExist reporta se a chave está presente no mapa, mesmo com valor nil.
func DoesPropertyExist(data map[string]any, property string) bool {
	if data == nil {
		return false
	}
	_, ok := data[property]
	return ok
}

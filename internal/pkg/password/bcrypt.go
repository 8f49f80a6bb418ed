// Package password faz o hash e a comparação de senhas com bcrypt.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// maxInputBytes é o limite de entrada do bcrypt; bytes além dele são ignorados.
const maxInputBytes = 72

// BcryptHasher implementa o Hasher do serviço de usuários.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher cria o hasher. Custos fora do intervalo aceito pelo bcrypt usam o padrão.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash gera o hash bcrypt da senha em texto puro.
func (h *BcryptHasher) Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword(truncate(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("falha ao gerar hash da senha: %w", err)
	}
	return string(hashed), nil
}

// Compare reporta se plain corresponde ao hash armazenado.
func (h *BcryptHasher) Compare(plain, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), truncate(plain)) == nil
}

// truncate corta a senha em 72 bytes, como o bcrypt faz por definição. Senhas
// multibyte válidas podem passar do limite mesmo com poucos caracteres.
func truncate(plain string) []byte {
	b := []byte(plain)
	if len(b) > maxInputBytes {
		return b[:maxInputBytes]
	}
	return b
}

package domain

// ErrorResponse é o corpo padronizado das respostas de erro que expõem mensagem.
// Apenas erros de validação (400) e erros internos (500) o utilizam.
// @Description Corpo de erro retornado pela API.
type ErrorResponse struct {
	Error string `json:"error" example:"username is not a valid email address"`
}

// Package response escreve os resultados dos serviços como respostas HTTP.
package response

import (
	"encoding/json"
	"net/http"

	apperror "usersvc/internal/errors"
	"usersvc/internal/pkg/logger"
	"usersvc/internal/result"
)

// Write traduz o Result para a resposta HTTP. Sucesso vira JSON com successStatus;
// falha vira o status da categoria, com corpo {"error": msg} apenas para 400 e 500.
func Write[T any](w http.ResponseWriter, log logger.Logger, res result.Result[T], successStatus int) {
	if res.IsOk() {
		JSON(w, successStatus, res.Value())
		return
	}
	Error(w, log, res.Error())
}

// Error escreve a resposta de um erro do serviço.
func Error(w http.ResponseWriter, log logger.Logger, err error) {
	status, body := apperror.MapToHTTPStatus(err)

	// Log apenas de erros graves
	if status >= http.StatusInternalServerError {
		log.Error("Erro interno no serviço de usuário.", err)
	} else {
		log.Debug("Requisição rejeitada.", map[string]interface{}{"status": status, "error": err.Error()})
	}

	if body == nil {
		Status(w, status)
		return
	}
	JSON(w, status, body)
}

// JSON escreve data serializado com o status informado.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// Status escreve apenas o código, com corpo vazio.
func Status(w http.ResponseWriter, status int) {
	w.Header().Set("Content-Length", "0")
	w.WriteHeader(status)
}

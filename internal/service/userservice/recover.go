package userservice

import (
	"fmt"

	apperror "usersvc/internal/errors"
	"usersvc/internal/pkg/logger"
	"usersvc/internal/result"
)

// internalErr registra a causa e a converte em um resultado InternalError.
// A causa fica em Err para os logs; a mensagem exposta é apenas msg.
func internalErr[T any](log logger.Logger, msg string, err error) result.Result[T] {
	log.Error(msg, err)
	return result.Err[T](apperror.NewInternalError(msg, err))
}

// recoverInternal converte um panic na operação em InternalError, para que nenhuma
// falha inesperada chegue à camada HTTP. Deve ser chamada com defer.
func recoverInternal[T any](res *result.Result[T], log logger.Logger, msg string) {
	if r := recover(); r != nil {
		err := fmt.Errorf("panic: %v", r)
		log.Error(msg, err)
		*res = result.Err[T](apperror.NewInternalError(msg, err))
	}
}

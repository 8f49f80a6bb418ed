// Package result define o tipo de retorno das operações de serviço:
// sucesso com valor ou falha com um *apperror.AppError.
package result

import (
	apperror "usersvc/internal/errors"
)

// Result carrega exatamente uma das variantes. O discriminante não muda após a construção.
type Result[T any] struct {
	ok    bool
	value T
	err   *apperror.AppError
}

// Ok cria um resultado de sucesso.
func Ok[T any](value T) Result[T] {
	return Result[T]{ok: true, value: value}
}

// Err cria um resultado de falha. Um erro nil vira InternalError para que a
// variante de falha sempre tenha um erro.
func Err[T any](err *apperror.AppError) Result[T] {
	if err == nil {
		err = apperror.NewInternalError("failure without error", nil)
	}
	return Result[T]{err: err}
}

func (r Result[T]) IsOk() bool { return r.ok }

// Value retorna o valor de sucesso (zero value em caso de falha).
func (r Result[T]) Value() T { return r.value }

// Error retorna o erro da falha (nil em caso de sucesso).
func (r Result[T]) Error() *apperror.AppError { return r.err }

// Unwrap devolve o resultado no formato (valor, error) do Go.
func (r Result[T]) Unwrap() (T, error) {
	if r.ok {
		return r.value, nil
	}
	return r.value, r.err
}

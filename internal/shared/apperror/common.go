package apperror

import (
	"fmt"
	"net/http"
)

var (
	ErrNotFound = New(
		CodeNotFound,
		"Recurso não encontrado",
		http.StatusNotFound,
	)

	ErrForbidden = New(
		CodeForbidden,
		"Você não tem permissão para acessar este recurso",
		http.StatusForbidden,
	)

	ErrInternal = New(
		CodeInternalError,
		"Ocorreu um erro no servidor",
		http.StatusInternalServerError,
	)

	ErrUnauthorized = New(
		CodeUnauthorized,
		"Não autorizado",
		http.StatusUnauthorized,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"Os dados enviados são inválidos",
		http.StatusBadRequest,
	)
)

// RequiredField builds the standard "campo obrigatório" error for a
// missing input field.
func RequiredField(field string) *AppError {
	return New(
		CodeMissingField,
		fmt.Sprintf("%s é obrigatório", field),
		http.StatusBadRequest,
	)
}

func InvalidField(field string) *AppError {
	return New(
		CodeInvalidInput,
		fmt.Sprintf("%s é inválido", field),
		http.StatusBadRequest,
	)
}

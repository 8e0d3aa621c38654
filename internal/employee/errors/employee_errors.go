package employeeerrors

import (
	"net/http"

	"github.com/pauldemian98/portal-rh/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Colaborador não encontrado",
		http.StatusNotFound,
	)

	ErrEmailAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Este e-mail já está em uso.",
		http.StatusConflict,
	)

	ErrInvalidRole = apperror.New(
		apperror.CodeInvalidInput,
		"Tipo de colaborador inválido.",
		http.StatusBadRequest,
	)
)

package puncherrors

import (
	"net/http"

	"github.com/pauldemian98/portal-rh/internal/shared/apperror"
)

var (
	ErrAllSlotsFilled = apperror.New(
		apperror.CodeInvalidState,
		"Todos os registros de ponto para hoje já foram feitos.",
		http.StatusBadRequest,
	)

	ErrPunchConflict = apperror.New(
		apperror.CodeConflict,
		"Outro registro de ponto está em andamento, tente novamente.",
		http.StatusConflict,
	)

	ErrInvalidTimestamp = apperror.New(
		apperror.CodeInvalidInput,
		"Data/hora do registro inválida.",
		http.StatusBadRequest,
	)

	ErrMissingRange = apperror.New(
		apperror.CodeMissingField,
		"Datas de início e fim são obrigatórias",
		http.StatusBadRequest,
	)

	ErrInvalidRange = apperror.New(
		apperror.CodeInvalidInput,
		"Período inválido: data inicial posterior à data final.",
		http.StatusBadRequest,
	)
)

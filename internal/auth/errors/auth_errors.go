package autherrors

import (
	"net/http"

	"github.com/pauldemian98/portal-rh/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Credenciais inválidas.",
		http.StatusUnauthorized,
	)

	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Não foi possível iniciar a sessão.",
		http.StatusInternalServerError,
	)
)

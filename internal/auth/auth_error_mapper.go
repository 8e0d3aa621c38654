package auth

import (
	"errors"
	"net/http"
	"strings"

	employeeerrors "github.com/pauldemian98/portal-rh/internal/employee/errors"
	"github.com/pauldemian98/portal-rh/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return employeeerrors.ErrEmailAlreadyExists
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_employee_email") {
		return employeeerrors.ErrEmailAlreadyExists
	}

	return apperror.Wrap(err, apperror.CodeInternalError,
		"Não foi possível criar o colaborador.", http.StatusInternalServerError)
}

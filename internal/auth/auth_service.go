package auth

import (
	"context"
	"net/http"
	"time"

	autherrors "github.com/pauldemian98/portal-rh/internal/auth/errors"
	"github.com/pauldemian98/portal-rh/internal/config"
	"github.com/pauldemian98/portal-rh/internal/employee"
	employeeerrors "github.com/pauldemian98/portal-rh/internal/employee/errors"
	"github.com/pauldemian98/portal-rh/internal/shared/apperror"
	"github.com/pauldemian98/portal-rh/internal/shared/timeutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, req LoginRequest) (token string, resp AuthResponse, err error)
	Register(ctx context.Context, req RegisterRequest) (AuthResponse, error)
	GetMe(ctx context.Context, employeeID string) (*AuthResponse, error)
}

type service struct {
	employeeRepo employee.Repository
	cfg          *config.Config
}

func NewService(employeeRepo employee.Repository, cfg *config.Config) Service {
	return &service{employeeRepo: employeeRepo, cfg: cfg}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (string, AuthResponse, error) {
	emp, err := s.employeeRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		// Unknown e-mail and wrong password answer identically.
		return "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.Password), []byte(req.Password)); err != nil {
		return "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	token, err := s.generateToken(emp)
	if err != nil {
		zap.L().Error("falha ao assinar token", zap.Error(err))
		return "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return token, mapToResponse(emp), nil
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	role := req.Role
	if role == "" {
		role = employee.RoleStaff
	}
	if !employee.ValidRole(role) {
		return AuthResponse{}, employeeerrors.ErrInvalidRole
	}

	hireDate, err := timeutil.ParseDay(req.HireDate)
	if err != nil {
		return AuthResponse{}, apperror.InvalidField("data_admissao")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResponse{}, apperror.Wrap(err, apperror.CodeInternalError,
			"Não foi possível criar o colaborador.", http.StatusInternalServerError)
	}

	emp := &employee.Employee{
		ID:       uuid.New(),
		Email:    req.Email,
		Password: string(hashed),
		Name:     req.Name,
		JobTitle: req.JobTitle,
		HireDate: hireDate,
		Role:     role,
	}

	if err := s.employeeRepo.Create(ctx, emp); err != nil {
		return AuthResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(emp), nil
}

func (s *service) GetMe(ctx context.Context, employeeID string) (*AuthResponse, error) {
	id, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, autherrors.ErrInvalidCredentials
	}

	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, employeeerrors.ErrEmployeeNotFound
	}

	resp := mapToResponse(emp)
	return &resp, nil
}

func (s *service) generateToken(emp *employee.Employee) (string, error) {
	claims := jwt.MapClaims{
		"sub":   emp.ID.String(),
		"email": emp.Email,
		"role":  emp.Role,
		"exp":   time.Now().Add(s.cfg.JWTExpiration).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func mapToResponse(emp *employee.Employee) AuthResponse {
	return AuthResponse{
		ID:       emp.ID.String(),
		Email:    emp.Email,
		Name:     emp.Name,
		JobTitle: emp.JobTitle,
		HireDate: emp.HireDate.UTC().Format("2006-01-02"),
		Role:     emp.Role,
	}
}

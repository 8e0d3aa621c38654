package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	autherrors "github.com/pauldemian98/portal-rh/internal/auth/errors"
	"github.com/pauldemian98/portal-rh/internal/config"
	"github.com/pauldemian98/portal-rh/internal/employee"
	employeeerrors "github.com/pauldemian98/portal-rh/internal/employee/errors"
	"github.com/pauldemian98/portal-rh/internal/shared/apperror"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeEmployeeRepo struct {
	createFn     func(ctx context.Context, emp *employee.Employee) error
	getByEmailFn func(ctx context.Context, email string) (*employee.Employee, error)
	getByIDFn    func(ctx context.Context, id uuid.UUID) (*employee.Employee, error)
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp *employee.Employee) error {
	return f.createFn(ctx, emp)
}

func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	return f.getByEmailFn(ctx, email)
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id uuid.UUID) (*employee.Employee, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeEmployeeRepo) FindAll(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:     "segredo-de-teste",
		JWTExpiration: 7 * 24 * time.Hour,
	}
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hashed)
}

func TestService_Login_IssuesSignedToken(t *testing.T) {
	cfg := testConfig()
	empID := uuid.New()
	repo := &fakeEmployeeRepo{
		getByEmailFn: func(ctx context.Context, email string) (*employee.Employee, error) {
			assert.Equal(t, "ana@empresa.com", email)
			return &employee.Employee{
				ID:       empID,
				Email:    "ana@empresa.com",
				Password: hashOf(t, "senha-forte"),
				Name:     "Ana Souza",
				JobTitle: "Analista",
				HireDate: time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC),
				Role:     employee.RoleStaff,
			}, nil
		},
	}
	svc := NewService(repo, cfg)

	token, resp, err := svc.Login(context.Background(), LoginRequest{
		Email:    "ana@empresa.com",
		Password: "senha-forte",
	})
	assert.NoError(t, err)
	assert.Equal(t, "Ana Souza", resp.Name)
	assert.Equal(t, "2022-03-01", resp.HireDate)

	parsed, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	assert.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, empID.String(), claims["sub"])
	assert.Equal(t, employee.RoleStaff, claims["role"])
	assert.Equal(t, "ana@empresa.com", claims["email"])
}

func TestService_Login_WrongPassword(t *testing.T) {
	repo := &fakeEmployeeRepo{
		getByEmailFn: func(ctx context.Context, email string) (*employee.Employee, error) {
			return &employee.Employee{Password: hashOf(t, "outra-senha")}, nil
		},
	}
	svc := NewService(repo, testConfig())

	_, _, err := svc.Login(context.Background(), LoginRequest{Email: "a@b.com", Password: "senha"})
	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
}

func TestService_Login_UnknownEmailSameError(t *testing.T) {
	repo := &fakeEmployeeRepo{
		getByEmailFn: func(ctx context.Context, email string) (*employee.Employee, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := NewService(repo, testConfig())

	_, _, err := svc.Login(context.Background(), LoginRequest{Email: "x@b.com", Password: "senha"})
	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
}

func TestService_Register_HashesPasswordAndDefaultsRole(t *testing.T) {
	var created *employee.Employee
	repo := &fakeEmployeeRepo{
		createFn: func(ctx context.Context, emp *employee.Employee) error {
			created = emp
			return nil
		},
	}
	svc := NewService(repo, testConfig())

	resp, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "bruno@empresa.com",
		Password: "senha-forte",
		Name:     "Bruno Lima",
		JobTitle: "Desenvolvedor",
		HireDate: "2023-07-10",
	})
	assert.NoError(t, err)
	assert.NotNil(t, created)
	assert.Equal(t, employee.RoleStaff, created.Role)
	assert.NotEqual(t, "senha-forte", created.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("senha-forte")))
	assert.Equal(t, "2023-07-10", resp.HireDate)
	assert.Equal(t, employee.RoleStaff, resp.Role)
}

func TestService_Register_RejectsUnknownRole(t *testing.T) {
	svc := NewService(&fakeEmployeeRepo{}, testConfig())

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "b@empresa.com",
		Password: "senha-forte",
		Name:     "Bruno",
		JobTitle: "Dev",
		HireDate: "2023-07-10",
		Role:     "SUPERADMIN",
	})
	assert.ErrorIs(t, err, employeeerrors.ErrInvalidRole)
}

func TestService_Register_RejectsBadHireDate(t *testing.T) {
	svc := NewService(&fakeEmployeeRepo{}, testConfig())

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "b@empresa.com",
		Password: "senha-forte",
		Name:     "Bruno",
		JobTitle: "Dev",
		HireDate: "10/07/2023",
	})
	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeInvalidInput, appErr.Code)
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	repo := &fakeEmployeeRepo{
		createFn: func(ctx context.Context, emp *employee.Employee) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "uq_employee_email"}
		},
	}
	svc := NewService(repo, testConfig())

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "ana@empresa.com",
		Password: "senha-forte",
		Name:     "Ana",
		JobTitle: "Analista",
		HireDate: "2022-03-01",
	})
	assert.ErrorIs(t, err, employeeerrors.ErrEmailAlreadyExists)
}

func TestService_GetMe(t *testing.T) {
	empID := uuid.New()
	repo := &fakeEmployeeRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*employee.Employee, error) {
			assert.Equal(t, empID, id)
			return &employee.Employee{
				ID:       empID,
				Email:    "ana@empresa.com",
				Name:     "Ana Souza",
				HireDate: time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC),
				Role:     employee.RoleHR,
			}, nil
		},
	}
	svc := NewService(repo, testConfig())

	resp, err := svc.GetMe(context.Background(), empID.String())
	assert.NoError(t, err)
	assert.Equal(t, employee.RoleHR, resp.Role)
}

func TestService_GetMe_UnknownEmployee(t *testing.T) {
	repo := &fakeEmployeeRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*employee.Employee, error) {
			return nil, errors.New("record not found")
		},
	}
	svc := NewService(repo, testConfig())

	_, err := svc.GetMe(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
}

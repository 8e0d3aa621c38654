package employee

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleStaff = "STAFF"
	RoleHR    = "HR"
)

// ValidRole reports whether role belongs to the closed role set.
func ValidRole(role string) bool {
	return role == RoleStaff || role == RoleHR
}

type Employee struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex:uq_employee_email;not null"`
	Password  string    `gorm:"type:varchar(255);not null"`
	Name      string    `gorm:"type:varchar(255);not null"`
	JobTitle  string    `gorm:"column:job_title;type:varchar(100);not null"`
	HireDate  time.Time `gorm:"column:hire_date;type:date;not null"`
	Role      string    `gorm:"type:varchar(20);not null;default:'STAFF'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Employee) TableName() string {
	return "employees"
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleStudent Role = "STUDENT"
)

// User is either an administrator or a student. For students Username is the roll number.
type User struct {
	ID           string      `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Username     string      `json:"username" gorm:"not null;uniqueIndex"`
	Password     string      `json:"-" gorm:"not null"`
	Role         Role        `json:"role" gorm:"type:varchar(16);not null;default:STUDENT;index"`
	Name         string      `json:"name"`
	DepartmentID *string     `json:"department_id,omitempty" gorm:"type:varchar(36);index"`
	Department   *Department `json:"department,omitempty" gorm:"foreignKey:DepartmentID"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.Role == "" {
		u.Role = RoleStudent
	}
	return nil
}

func (u *User) IsStudent() bool { return u.Role == RoleStudent }

// DepartmentName is empty for users without a department.
func (u *User) DepartmentName() string {
	if u.Department == nil {
		return ""
	}
	return u.Department.Name
}

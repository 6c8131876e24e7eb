package models

import (
	"time"
)

// Role values. Fixed at creation, there is no promotion flow.
const (
	RoleAdmin    = "ADMIN"
	RoleStudent  = "STUDENT"
	RoleReviewer = "REVIEWER"
)

type User struct {
	ID           int       `gorm:"primaryKey;column:id" json:"id"`
	Email        string    `gorm:"column:email;uniqueIndex;size:255" json:"email"`
	Password     string    `gorm:"column:password;size:255" json:"-"`
	FirstName    string    `gorm:"column:first_name;size:100" json:"firstName"`
	LastName     string    `gorm:"column:last_name;size:100" json:"lastName"`
	Role         string    `gorm:"column:role;size:20" json:"role"`
	DepartmentID *int      `gorm:"column:department_id" json:"departmentId,omitempty"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"createdAt"`

	// Relations
	Department *Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
}

type Department struct {
	ID          int    `gorm:"primaryKey;column:id" json:"id"`
	Name        string `gorm:"column:name;size:255" json:"name"`
	Code        string `gorm:"column:code;size:50" json:"code"`
	Description string `gorm:"column:description;type:text" json:"description"`
}

// TableName overrides
func (User) TableName() string {
	return "users"
}

func (Department) TableName() string {
	return "departments"
}

// IsValidRole reports whether role is one of the three known roles.
func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleStudent, RoleReviewer:
		return true
	}
	return false
}

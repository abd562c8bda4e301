package domain

import "time"

// Role determines which part of the system a user may operate
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleDriver Role = "driver"
)

// Employee contract types used by fleet administration
const (
	EmployeeTypeFullTime = "Vollzeit Mitarbeiter"
	EmployeeTypePartTime = "Aushilfe"
	EmployeeTypeOther    = "Sonstiges"
)

// EmployeeTypes lists the accepted employee contract types.
var EmployeeTypes = []string{
	EmployeeTypeFullTime,
	EmployeeTypePartTime,
	EmployeeTypeOther,
}

// ValidEmployeeType reports whether t is an accepted contract type.
func ValidEmployeeType(t string) bool {
	for _, known := range EmployeeTypes {
		if known == t {
			return true
		}
	}
	return false
}

// Driver represents a user account. Admin accounts are seeded directly in the
// store; the management surface only ever creates drivers.
type Driver struct {
	ID           int64
	Email        string
	FullName     string
	Role         Role
	EmployeeType string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin returns true if the account has administrative privileges.
func (d *Driver) IsAdmin() bool {
	return d.Role == RoleAdmin
}

// Package entity contains the core business objects of the project.
package entity

// Role represents the type of account a credential belongs to.
type Role string

const (
	// RoleBuyer indicates a buyer account.
	RoleBuyer Role = "buyer"
	// RoleSeller indicates a seller account.
	RoleSeller Role = "seller"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleBuyer, RoleSeller:
		return true
	default:
		return false
	}
}

package domain

// Role represents a staff member's access level
type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// IsValidRole reports whether the role is known
func IsValidRole(r Role) bool {
	return r == RoleAdmin || r == RoleStaff
}

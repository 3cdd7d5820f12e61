package model

import "fmt"

// Role closed set of account kinds. The string values are the ones stored
// in tb_usuarios.tipo_usuario and carried in session tokens.
type Role string

const (
	RoleStudent   Role = "aluno"
	RoleProfessor Role = "professor"
	RoleAdmin     Role = "admin"
)

// ParseRole converts a stored or token-carried value into a Role
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleStudent, RoleProfessor, RoleAdmin:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// CanPublish professors and admins author announcements and courses
func (r Role) CanPublish() bool {
	switch r {
	case RoleProfessor, RoleAdmin:
		return true
	case RoleStudent:
		return false
	default:
		return false
	}
}

// IsStaff roles that look up other students' records
func (r Role) IsStaff() bool {
	switch r {
	case RoleProfessor, RoleAdmin:
		return true
	case RoleStudent:
		return false
	default:
		return false
	}
}

// Identity authenticated caller, decoded from the session token and passed
// explicitly into every service call.
type Identity struct {
	UserID int64
	Role   Role
}

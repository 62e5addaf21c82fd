package domain

// Role identifies the privilege tier of a user. Lower values carry more
// privilege: an admin satisfies any role requirement.
type Role int

const (
	RoleAdmin Role = 1
	RoleUser  Role = 2
)

// Satisfies reports whether r meets the given requirement.
func (r Role) Satisfies(required Role) bool {
	return r.Valid() && r <= required
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "ADMIN"
	case RoleUser:
		return "USER"
	default:
		return "UNKNOWN"
	}
}

// User models an account in the system. PasswordHash is never serialized.
type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	EmployCode   string `json:"employ_code"`
	RoleID       Role   `json:"roles_id"`
	PasswordHash string `json:"-"`
}

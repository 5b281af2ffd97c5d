package user

import "time"

type Role string

const (
	RolePlayer Role = "player"
	RoleOwner  Role = "owner"
)

// ValidRole reports whether r is a known account role.
func ValidRole(r Role) bool {
	return r == RolePlayer || r == RoleOwner
}

// User is a registered account. PasswordHash never leaves the backend.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Phone        string    `json:"phone"`
	Role         Role      `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// AuthUser is the authenticated identity attached to a request by the auth
// middleware.
type AuthUser struct {
	ID   string
	Role Role
}

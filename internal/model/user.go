// Package model holds the domain types persisted by the store.
package model

import "time"

// Role is a coarse permission tag carried in the session token and
// checked against endpoint policy.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User is an identity record. Password holds the bcrypt hash and is
// never serialized; it is only populated by the lookup used for
// authentication.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// UserUpdate is the set of mutable user fields for partial updates.
// Nil means "leave unchanged". Anything outside these four fields is
// not updatable.
type UserUpdate struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Role     *Role   `json:"role"`
}

package model

import "time"

// Role is the access level stored on a user record.
type Role string

const (
	RoleApplicant Role = "Applicant"
	RoleModerator Role = "Moderator"
	RoleAdmin     Role = "Admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleApplicant, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

// User is a registered account. Email is unique across users.
type User struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	PhotoURL  string    `json:"photoURL"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserInput is the body accepted when creating a user.
type UserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	PhotoURL string `json:"photoURL"`
	Role     Role   `json:"role"`
}

// UserUpdate holds the fields a PUT may change. Nil means "leave as is".
type UserUpdate struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	PhotoURL *string `json:"photoURL"`
	Role     *Role   `json:"role"`
}

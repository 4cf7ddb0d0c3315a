package model

import "time"

// Role constants. The program knows exactly two roles.
const (
	RoleSeller = "seller"
	RoleAdmin  = "admin"
)

// User represents a member of the incentive program. Points is the current
// redeemable balance; it only changes through admin edits and reward
// redemption approval.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`    // bcrypt hash, never serialized
	Role      string    `json:"role"` // seller, admin
	Name      string    `json:"name"`
	Document  string    `json:"document"`
	Avatar    string    `json:"avatar"`
	Category  string    `json:"category"`
	Points    int       `json:"points"`
	Store     string    `json:"store"`
	CompanyID string    `json:"company_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserRef is the denormalized seller snapshot embedded into records at
// creation time. It is intentionally never re-synced: editing a user profile
// must not rewrite history, so historical records keep the values the user
// had when the record was made.
type UserRef struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Avatar  string `json:"avatar"`
	Company string `json:"company"`
}

// Ref builds the embedded snapshot for records created by this user.
func (u *User) Ref() UserRef {
	return UserRef{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Avatar:  u.Avatar,
		Company: u.Store,
	}
}

package domain

import "time"

const (
	RoleUser  = "User"
	RoleAdmin = "Admin"
)

// Identity is the durable record of a registered user. The ID is assigned
// once at creation and never reused; Username is unique across the store.
type Identity struct {
	ID               string    `json:"id"`
	Username         string    `json:"username"`
	PasswordVerifier string    `json:"-"`
	FullName         string    `json:"full_name"`
	Role             string    `json:"role"`
	CreatedAt        time.Time `json:"created_at"`
}

// IdentityInfo is the read-only projection returned by identity lookups.
// It carries no secret material.
type IdentityInfo struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// Info projects the identity's public fields.
func (i *Identity) Info() *IdentityInfo {
	return &IdentityInfo{
		ID:       i.ID,
		Username: i.Username,
		FullName: i.FullName,
		Role:     i.Role,
	}
}

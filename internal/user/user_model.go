package user

import "gorm.io/gorm"

// User is an account that can post games, apply to them and confirm matches.
// Immutable after signup except for the password.
type User struct {
	gorm.Model
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	TeamName string `json:"team_name,omitempty"`
}

// PublicProfile is the identity shape exposed to clients and embedded in the
// session token. The password hash never leaves the persistence layer.
type PublicProfile struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u *User) Public() PublicProfile {
	return PublicProfile{ID: u.ID, Name: u.Name, Email: u.Email}
}

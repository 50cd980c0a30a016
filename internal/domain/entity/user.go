package entity

import "time"

// User is the credential record. The password is stored as a bcrypt
// hash and is never serialized to the client. The reset token fields
// hold only the SHA-256 of the token handed to the user; they are
// either both set or both absent.
type User struct {
	ID                  string     `json:"id"`
	Name                string     `json:"name"`
	Email               string     `json:"email"`
	Password            string     `json:"-"`
	ResetTokenHash      *string    `json:"-"`
	ResetTokenExpiresAt *time.Time `json:"-"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

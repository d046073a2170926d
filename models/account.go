package models

import "time"

// Account models a registered traveller able to keep a want-to-go list.
// PasswordHash holds a bcrypt digest; the plaintext credential is never
// stored.
type Account struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

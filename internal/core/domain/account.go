package domain

import "errors"

const (
	RoleUser   = "USER"
	RoleEditor = "EDITOR"
	RoleAdmin  = "ADMIN"
)

var ErrUserNotFound = errors.New("user not found")
var ErrAlreadyRegistered = errors.New("already registered")
var ErrBadCredentials = errors.New("bad credentials")

// Account models a registered author. The (username, email) pair is checked
// for uniqueness at registration time; accounts are never deleted.
type Account struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}

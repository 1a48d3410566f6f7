package models

import "fmt"

// Role gates features in the front-end. Accounting and liquidator
// workflows require RoleAdmin.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "usuario"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleUser:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// User is an account allowed to log in. PasswordHash is a bcrypt hash,
// which embeds its own salt.
type User struct {
	ID           int64
	Username     string
	PasswordHash []byte
	Role         Role
}

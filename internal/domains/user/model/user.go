package model

import (
	"strings"
	"time"
)

// User is an account holder. PasswordHash and the serialized preference
// blob never leave the server.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Nickname     string    `json:"nickname"`
	Avatar       string    `json:"avatar"`
	Email        string    `json:"email"`
	Introduction string    `json:"introduction"`
	Roles        []string  `json:"roles"`
	CreatedAt    time.Time `json:"create_time"`

	PasswordHash string  `json:"-"`
	Preference   *string `json:"-"`
}

// RolesFromColumn splits the stored comma-joined role list.
func RolesFromColumn(column string) []string {
	if column == "" {
		return []string{"user"}
	}
	return strings.Split(column, ",")
}

// RolesToColumn joins roles for storage.
func RolesToColumn(roles []string) string {
	if len(roles) == 0 {
		return "user"
	}
	return strings.Join(roles, ",")
}

// Copyright (c) 2026 MCRU Faculty of Education. All rights reserved.

package auth

import (
	"time"

	"github.com/pakapat-jp/edu-mcru/internal/platform/form"
	"github.com/pakapat-jp/edu-mcru/internal/platform/sec"
)

// User is a CMS account. The password hash never leaves this package:
// the JSON tag strips it from every response shape.
type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Email        *string   `json:"email"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// validRoles lists the accepted account roles.
var validRoles = []string{
	string(sec.RoleAdmin),
	string(sec.RoleEditor),
	string(sec.RoleMember),
}

// CreateInput carries a validated account create request.
type CreateInput struct {
	Username string
	Password string
	Email    *string
	Role     string
}

// UpdateInput models a partial account update. Password, when present,
// arrives in plain text and is re-hashed by the service.
type UpdateInput struct {
	Email    form.Optional[*string]
	Role     form.Optional[string]
	Password form.Optional[string]
}

// IsEmpty reports whether the update carries no fields.
func (input UpdateInput) IsEmpty() bool {
	return !input.Email.Valid && !input.Role.Valid && !input.Password.Valid
}

// LoginResult is the successful login payload.
type LoginResult struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

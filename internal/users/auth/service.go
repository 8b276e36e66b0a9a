// Copyright (c) 2026 MCRU Faculty of Education. All rights reserved.

package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/pakapat-jp/edu-mcru/internal/platform/apperr"
	"github.com/pakapat-jp/edu-mcru/internal/platform/constants"
	"github.com/pakapat-jp/edu-mcru/internal/platform/sec"
	"github.com/pakapat-jp/edu-mcru/internal/platform/validate"
	"github.com/pakapat-jp/edu-mcru/pkg/pointer"
)

// TokenIssuer signs access tokens for authenticated sessions.
// [sec.TokenService] is the production implementation.
type TokenIssuer interface {
	GenerateAccessToken(userID int, username, role string, timeToLive time.Duration) (string, error)
}

// Service orchestrates login and account management.
type Service struct {
	repo   Repository
	tokens TokenIssuer
	logger *slog.Logger
}

// NewService constructs a new auth [Service].
func NewService(repo Repository, tokens TokenIssuer, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		tokens: tokens,
		logger: logger,
	}
}

// # Authentication

/*
Login verifies credentials and issues an access token.

Description: An unknown username is a client error; a known username
with a wrong password is an authentication failure. Failed attempts are
logged with the username for audit trails, successful ones with the id.

Parameters:
  - ctx: context.Context
  - username, password: string

Returns:
  - *LoginResult: Signed token plus the account (hash stripped)
  - error: 400 unknown user, 401 wrong password, or persistence failures
*/
func (service *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	validator := &validate.Validator{}
	validator.Required("username", username).Required("password", password)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	account, err := service.repo.FindByUsername(ctx, username)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.ValidationError("Cannot find user")
		}
		return nil, err
	}

	if !sec.CheckPasswordHash(password, account.PasswordHash) {
		service.logger.Warn("login_failed", slog.String("username", username))
		return nil, apperr.Unauthorized("Invalid credentials")
	}

	token, err := service.tokens.GenerateAccessToken(
		account.ID, account.Username, account.Role, constants.AccessTokenTTL)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	service.logger.Info("login_succeeded", slog.Int("user_id", account.ID))

	return &LoginResult{Token: token, User: account}, nil
}

// # Account Management

// ListUsers returns all accounts, hashes stripped.
func (service *Service) ListUsers(ctx context.Context) ([]*User, error) {
	return service.repo.List(ctx)
}

/*
CreateUser validates and persists a new account.

Parameters:
  - ctx: context.Context
  - input: CreateInput (Role defaults to member)

Returns:
  - *User: The created account
  - error: Validation, conflict on duplicate username, or persistence failures
*/
func (service *Service) CreateUser(ctx context.Context, input CreateInput) (*User, error) {
	role := input.Role
	if role == "" {
		role = string(sec.RoleMember)
	}

	validator := &validate.Validator{}
	validator.Required("username", input.Username).MinLen("username", input.Username, 3)
	validator.Required("password", input.Password).MinLen("password", input.Password, 8)
	validator.OneOf("role", role, validRoles...)
	email := pointer.Val(input.Email)
	validator.Required("email", email)
	if email != "" {
		validator.Email("email", email)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	hash, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	account := &User{
		Username:     input.Username,
		PasswordHash: hash,
		Email:        input.Email,
		Role:         role,
	}
	if err := service.repo.Create(ctx, account); err != nil {
		return nil, err
	}

	service.logger.Info("user_created",
		slog.Int("user_id", account.ID),
		slog.String("role", account.Role),
	)

	return account, nil
}

/*
UpdateUser applies a partial update to an account.

Description: A supplied password is re-hashed before it reaches the
store; the store only ever sees hashes.

Parameters:
  - ctx: context.Context
  - id: int
  - input: UpdateInput

Returns:
  - bool: Whether any field was written
  - error: Validation, ErrNotFound, or persistence failures
*/
func (service *Service) UpdateUser(ctx context.Context, id int, input UpdateInput) (bool, error) {
	if input.IsEmpty() {
		return false, nil
	}

	validator := &validate.Validator{}
	if input.Role.Valid {
		validator.OneOf("role", input.Role.Value, validRoles...)
	}
	if input.Password.Valid {
		validator.MinLen("password", input.Password.Value, 8)
	}
	if input.Email.Valid && input.Email.Value != nil && *input.Email.Value != "" {
		validator.Email("email", *input.Email.Value)
	}
	if err := validator.Err(); err != nil {
		return false, err
	}

	if input.Password.Valid {
		hash, err := sec.HashPassword(input.Password.Value)
		if err != nil {
			return false, apperr.Internal(err)
		}
		input.Password.Value = hash
	}

	if err := service.repo.Update(ctx, id, input); err != nil {
		return false, err
	}

	service.logger.Info("user_updated", slog.Int("user_id", id))

	return true, nil
}

/*
DeleteUser removes an account.

Description: An administrator cannot delete their own account — that
would strand the session and can lock the last admin out.

Parameters:
  - ctx: context.Context
  - id: int (Target account)
  - actorID: int (The authenticated caller)

Returns:
  - error: 400 on self-deletion, or persistence failures
*/
func (service *Service) DeleteUser(ctx context.Context, id, actorID int) error {
	if id == actorID {
		return apperr.ValidationError("You cannot delete your own account")
	}

	if err := service.repo.Delete(ctx, id); err != nil {
		return err
	}

	service.logger.Info("user_deleted",
		slog.Int("user_id", id),
		slog.Int("actor_id", actorID),
	)

	return nil
}

/*
EnsureAdmin seeds the initial administrator account on an empty install.

Description: A fresh database has no users, and user creation is gated
behind an admin token, so the first admin must be created out-of-band.
When the user table is non-empty this is a no-op.

Parameters:
  - ctx: context.Context
  - password: string (Initial password for the "admin" account)

Returns:
  - error: Validation or persistence failures
*/
func (service *Service) EnsureAdmin(ctx context.Context, password string) error {
	existing, err := service.repo.List(ctx)
	if err != nil {
		return err
	}

	if len(existing) > 0 {
		return nil
	}

	account, err := service.CreateUser(ctx, CreateInput{
		Username: "admin",
		Password: password,
		Email:    pointer.To("admin@mcru.ac.th"),
		Role:     string(sec.RoleAdmin),
	})
	if err != nil {
		return err
	}

	service.logger.Info("admin_account_bootstrapped", slog.Int("user_id", account.ID))
	return nil
}

// Copyright (c) 2026 MCRU Faculty of Education. All rights reserved.

package auth

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pakapat-jp/edu-mcru/internal/platform/database"
	"github.com/pakapat-jp/edu-mcru/internal/platform/database/schema"
	"github.com/pakapat-jp/edu-mcru/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed account store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns all accounts, newest first. The password column is never
// selected here.
func (repository *PostgresRepository) List(ctx context.Context) ([]*User, error) {
	const query = `
		SELECT id, username, email, role, created_at, updated_at
		FROM users
		ORDER BY created_at DESC
	`
	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_users")
	}
	defer rows.Close()

	var users []*User
	for rows.Next() {
		account := &User{}
		err := rows.Scan(
			&account.ID, &account.Username, &account.Email, &account.Role,
			&account.CreatedAt, &account.UpdatedAt,
		)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_user")
		}
		users = append(users, account)
	}

	return users, nil
}

// FindByUsername returns an account including its password hash, for
// credential verification only.
func (repository *PostgresRepository) FindByUsername(ctx context.Context, username string) (*User, error) {
	const query = `
		SELECT id, username, password, email, role, created_at, updated_at
		FROM users
		WHERE username = $1
	`
	account := &User{}
	err := repository.db.QueryRow(ctx, query, username).Scan(
		&account.ID, &account.Username, &account.PasswordHash, &account.Email, &account.Role,
		&account.CreatedAt, &account.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_user_by_username")
	}
	return account, nil
}

// Create inserts a new account row.
func (repository *PostgresRepository) Create(ctx context.Context, account *User) error {
	const query = `
		INSERT INTO users (username, password, email, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	err := repository.db.QueryRow(ctx, query,
		account.Username, account.PasswordHash, account.Email, account.Role,
	).Scan(&account.ID, &account.CreatedAt, &account.UpdatedAt)

	return dberr.Wrap(err, "create_user")
}

// Update writes only the fields the request carried. Password values
// arriving here are already hashed.
func (repository *PostgresRepository) Update(ctx context.Context, id int, input UpdateInput) error {
	builder := &database.UpdateBuilder{}
	columns := schema.Users

	if input.Email.Valid {
		builder.Set(columns.Email, input.Email.Value)
	}
	if input.Role.Valid {
		builder.Set(columns.Role, input.Role.Value)
	}
	if input.Password.Valid {
		builder.Set(columns.Password, input.Password.Value)
	}

	query, args := builder.UpdateByID(columns.Table, id)

	var updatedID int
	err := repository.db.QueryRow(ctx, query, args...).Scan(&updatedID)
	return dberr.Wrap(err, "update_user")
}

// Delete removes an account row.
func (repository *PostgresRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM users WHERE id = $1`
	_, err := repository.db.Exec(ctx, query, id)
	return dberr.Wrap(err, "delete_user")
}

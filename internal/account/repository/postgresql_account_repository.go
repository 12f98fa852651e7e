// Package repository implements account persistence for PostgreSQL, MySQL and memory.
//
// SQL implementations join the caller's transaction through database.GetTx. Account ids
// are UUIDs; ids that do not parse as a UUID are reported as not found.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	accountDomain "github.com/linguahub/linguahub/internal/account/domain"
	"github.com/linguahub/linguahub/internal/database"
	apperrors "github.com/linguahub/linguahub/internal/errors"
)

// pqUniqueViolation is the SQLSTATE for unique_violation.
const pqUniqueViolation = pq.ErrorCode("23505")

const postgresAccountColumns = `id, email, name, password_hash, role, status, created_at, updated_at`

// PostgreSQLAccountRepository implements account persistence for PostgreSQL.
type PostgreSQLAccountRepository struct {
	db *sql.DB
}

// NewPostgreSQLAccountRepository creates a new PostgreSQL account repository.
func NewPostgreSQLAccountRepository(db *sql.DB) *PostgreSQLAccountRepository {
	return &PostgreSQLAccountRepository{db: db}
}

// Create inserts a new account. A duplicate email returns ErrAccountAlreadyExists.
func (p *PostgreSQLAccountRepository) Create(ctx context.Context, account *accountDomain.Account) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO accounts (` + postgresAccountColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := querier.ExecContext(
		ctx,
		query,
		account.ID,
		account.Email,
		account.Name,
		account.PasswordHash,
		account.Role,
		account.Status,
		account.CreatedAt,
		account.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return accountDomain.ErrAccountAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create account")
	}
	return nil
}

// Update writes the mutable fields of an account.
func (p *PostgreSQLAccountRepository) Update(ctx context.Context, account *accountDomain.Account) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE accounts
			  SET name = $1, password_hash = $2, role = $3, status = $4, updated_at = $5
			  WHERE id = $6`

	result, err := querier.ExecContext(
		ctx,
		query,
		account.Name,
		account.PasswordHash,
		account.Role,
		account.Status,
		account.UpdatedAt,
		account.ID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update account")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to update account")
	}
	if rows == 0 {
		return accountDomain.ErrAccountNotFound
	}
	return nil
}

// GetByID retrieves an account by id.
func (p *PostgreSQLAccountRepository) GetByID(ctx context.Context, id string) (*accountDomain.Account, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, accountDomain.ErrAccountNotFound
	}

	querier := database.GetTx(ctx, p.db)
	query := `SELECT ` + postgresAccountColumns + ` FROM accounts WHERE id = $1`

	account, err := scanAccount(querier.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, accountDomain.ErrAccountNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get account")
	}
	return account, nil
}

// GetByEmail retrieves an account by its normalized email.
func (p *PostgreSQLAccountRepository) GetByEmail(ctx context.Context, email string) (*accountDomain.Account, error) {
	querier := database.GetTx(ctx, p.db)
	query := `SELECT ` + postgresAccountColumns + ` FROM accounts WHERE email = $1`

	account, err := scanAccount(querier.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, accountDomain.ErrAccountNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get account by email")
	}
	return account, nil
}

// List returns accounts matching filter, newest first.
func (p *PostgreSQLAccountRepository) List(
	ctx context.Context,
	filter accountDomain.ListAccountsFilter,
) ([]*accountDomain.Account, error) {
	querier := database.GetTx(ctx, p.db)

	var conditions []string
	var args []any
	if filter.Role != "" {
		args = append(args, filter.Role)
		conditions = append(conditions, fmt.Sprintf("role = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}

	query := `SELECT ` + postgresAccountColumns + ` FROM accounts`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	args = append(args, filter.Limit, filter.Offset)
	query += fmt.Sprintf(` ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list accounts")
	}
	defer func() {
		_ = rows.Close()
	}()

	accounts := make([]*accountDomain.Account, 0)
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan account")
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate accounts")
	}

	return accounts, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanAccount(s scanner) (*accountDomain.Account, error) {
	var account accountDomain.Account
	var role, status string

	err := s.Scan(
		&account.ID,
		&account.Email,
		&account.Name,
		&account.PasswordHash,
		&role,
		&status,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	account.Role = accountDomain.Role(role)
	account.Status = accountDomain.Status(status)
	return &account, nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"

	accountDomain "github.com/linguahub/linguahub/internal/account/domain"
	"github.com/linguahub/linguahub/internal/database"
	apperrors "github.com/linguahub/linguahub/internal/errors"
)

// mysqlDuplicateEntry is ER_DUP_ENTRY.
const mysqlDuplicateEntry = 1062

const mysqlAccountColumns = `id, email, name, password_hash, role, status, created_at, updated_at`

// MySQLAccountRepository implements account persistence for MySQL. Ids are stored as
// BINARY(16).
type MySQLAccountRepository struct {
	db *sql.DB
}

// NewMySQLAccountRepository creates a new MySQL account repository.
func NewMySQLAccountRepository(db *sql.DB) *MySQLAccountRepository {
	return &MySQLAccountRepository{db: db}
}

// Create inserts a new account. A duplicate email returns ErrAccountAlreadyExists.
func (m *MySQLAccountRepository) Create(ctx context.Context, account *accountDomain.Account) error {
	id, err := uuidBytes(account.ID)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "account id must be a UUID")
	}

	querier := database.GetTx(ctx, m.db)
	query := `INSERT INTO accounts (` + mysqlAccountColumns + `)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		account.Email,
		account.Name,
		account.PasswordHash,
		account.Role,
		account.Status,
		account.CreatedAt,
		account.UpdatedAt,
	)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			return accountDomain.ErrAccountAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create account")
	}
	return nil
}

// Update writes the mutable fields of an account.
func (m *MySQLAccountRepository) Update(ctx context.Context, account *accountDomain.Account) error {
	id, err := uuidBytes(account.ID)
	if err != nil {
		return accountDomain.ErrAccountNotFound
	}

	querier := database.GetTx(ctx, m.db)
	query := `UPDATE accounts
			  SET name = ?, password_hash = ?, role = ?, status = ?, updated_at = ?
			  WHERE id = ?`

	result, err := querier.ExecContext(
		ctx,
		query,
		account.Name,
		account.PasswordHash,
		account.Role,
		account.Status,
		account.UpdatedAt,
		id,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update account")
	}

	// MySQL reports matched rows only with clientFoundRows, so a zero count is
	// confirmed with a lookup before reporting not found.
	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to update account")
	}
	if rows == 0 {
		if _, err := m.GetByID(ctx, account.ID); err != nil {
			return err
		}
	}
	return nil
}

// GetByID retrieves an account by id.
func (m *MySQLAccountRepository) GetByID(ctx context.Context, id string) (*accountDomain.Account, error) {
	idBytes, err := uuidBytes(id)
	if err != nil {
		return nil, accountDomain.ErrAccountNotFound
	}

	querier := database.GetTx(ctx, m.db)
	query := `SELECT ` + mysqlAccountColumns + ` FROM accounts WHERE id = ?`

	account, err := scanMySQLAccount(querier.QueryRowContext(ctx, query, idBytes))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, accountDomain.ErrAccountNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get account")
	}
	return account, nil
}

// GetByEmail retrieves an account by its normalized email.
func (m *MySQLAccountRepository) GetByEmail(ctx context.Context, email string) (*accountDomain.Account, error) {
	querier := database.GetTx(ctx, m.db)
	query := `SELECT ` + mysqlAccountColumns + ` FROM accounts WHERE email = ?`

	account, err := scanMySQLAccount(querier.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, accountDomain.ErrAccountNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get account by email")
	}
	return account, nil
}

// List returns accounts matching filter, newest first.
func (m *MySQLAccountRepository) List(
	ctx context.Context,
	filter accountDomain.ListAccountsFilter,
) ([]*accountDomain.Account, error) {
	querier := database.GetTx(ctx, m.db)

	var conditions []string
	var args []any
	if filter.Role != "" {
		conditions = append(conditions, "role = ?")
		args = append(args, filter.Role)
	}
	if filter.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, filter.Status)
	}

	query := `SELECT ` + mysqlAccountColumns + ` FROM accounts`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`
	args = append(args, filter.Limit, filter.Offset)

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list accounts")
	}
	defer func() {
		_ = rows.Close()
	}()

	accounts := make([]*accountDomain.Account, 0)
	for rows.Next() {
		account, err := scanMySQLAccount(rows)
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

func uuidBytes(id string) ([]byte, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	return parsed.MarshalBinary()
}

func scanMySQLAccount(s scanner) (*accountDomain.Account, error) {
	var account accountDomain.Account
	var id []byte
	var role, status string

	err := s.Scan(
		&id,
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

	parsed, err := uuid.FromBytes(id)
	if err != nil {
		return nil, err
	}

	account.ID = parsed.String()
	account.Role = accountDomain.Role(role)
	account.Status = accountDomain.Status(status)
	return &account, nil
}

package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	accountDomain "github.com/linguahub/linguahub/internal/account/domain"
	apperrors "github.com/linguahub/linguahub/internal/errors"
)

func newMySQLMock(t *testing.T) (*MySQLAccountRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewMySQLAccountRepository(db), mock
}

func mustUUIDBytes(t *testing.T, id string) []byte {
	t.Helper()
	b, err := uuid.MustParse(id).MarshalBinary()
	require.NoError(t, err)
	return b
}

func TestMySQLAccountRepository_Create(t *testing.T) {
	ctx := context.Background()
	account := newTestAccount()

	t.Run("Success", func(t *testing.T) {
		repo, mock := newMySQLMock(t)

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO accounts")).
			WithArgs(mustUUIDBytes(t, account.ID), account.Email, account.Name, account.PasswordHash,
				"teacher", "active", account.CreatedAt, account.UpdatedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Create(ctx, account))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error_DuplicateEmail", func(t *testing.T) {
		repo, mock := newMySQLMock(t)

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO accounts")).
			WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

		assert.ErrorIs(t, repo.Create(ctx, account), accountDomain.ErrAccountAlreadyExists)
	})

	t.Run("Error_InvalidID", func(t *testing.T) {
		repo, _ := newMySQLMock(t)

		bad := newTestAccount()
		bad.ID = "not-a-uuid"
		assert.ErrorIs(t, repo.Create(ctx, bad), apperrors.ErrInvalidInput)
	})
}

func TestMySQLAccountRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	account := newTestAccount()
	idBytes := mustUUIDBytes(t, account.ID)

	t.Run("Success", func(t *testing.T) {
		repo, mock := newMySQLMock(t)

		mock.ExpectQuery(regexp.QuoteMeta("FROM accounts WHERE id = ?")).
			WithArgs(idBytes).
			WillReturnRows(sqlmock.NewRows(accountColumns).AddRow(
				idBytes, account.Email, account.Name, account.PasswordHash,
				"teacher", "active", account.CreatedAt, account.UpdatedAt,
			))

		got, err := repo.GetByID(ctx, account.ID)
		require.NoError(t, err)
		assert.Equal(t, account, got)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		repo, mock := newMySQLMock(t)

		mock.ExpectQuery(regexp.QuoteMeta("FROM accounts WHERE id = ?")).WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByID(ctx, account.ID)
		assert.ErrorIs(t, err, accountDomain.ErrAccountNotFound)
	})

	t.Run("Error_NonUUID", func(t *testing.T) {
		repo, mock := newMySQLMock(t)

		_, err := repo.GetByID(ctx, "42")
		assert.ErrorIs(t, err, accountDomain.ErrAccountNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMySQLAccountRepository_Update(t *testing.T) {
	ctx := context.Background()
	account := newTestAccount()
	idBytes := mustUUIDBytes(t, account.ID)

	t.Run("Success", func(t *testing.T) {
		repo, mock := newMySQLMock(t)

		mock.ExpectExec(regexp.QuoteMeta("UPDATE accounts")).
			WithArgs(account.Name, account.PasswordHash, "teacher", "active", account.UpdatedAt, idBytes).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Update(ctx, account))
	})

	t.Run("Success_UnchangedRow", func(t *testing.T) {
		repo, mock := newMySQLMock(t)

		mock.ExpectExec(regexp.QuoteMeta("UPDATE accounts")).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(regexp.QuoteMeta("FROM accounts WHERE id = ?")).
			WillReturnRows(sqlmock.NewRows(accountColumns).AddRow(
				idBytes, account.Email, account.Name, account.PasswordHash,
				"teacher", "active", account.CreatedAt, account.UpdatedAt,
			))

		require.NoError(t, repo.Update(ctx, account))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		repo, mock := newMySQLMock(t)

		mock.ExpectExec(regexp.QuoteMeta("UPDATE accounts")).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(regexp.QuoteMeta("FROM accounts WHERE id = ?")).WillReturnError(sql.ErrNoRows)

		assert.ErrorIs(t, repo.Update(ctx, account), accountDomain.ErrAccountNotFound)
	})
}

func TestMySQLAccountRepository_List(t *testing.T) {
	ctx := context.Background()
	account := newTestAccount()

	repo, mock := newMySQLMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM accounts WHERE status = ? ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?")).
		WithArgs("active", 5, 0).
		WillReturnRows(sqlmock.NewRows(accountColumns).AddRow(
			mustUUIDBytes(t, account.ID), account.Email, account.Name, account.PasswordHash,
			"teacher", "active", account.CreatedAt, account.UpdatedAt,
		))

	accounts, err := repo.List(ctx, accountDomain.ListAccountsFilter{Status: accountDomain.StatusActive, Limit: 5})
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, account.ID, accounts[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

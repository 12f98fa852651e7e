package commands

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"strings"

	accountDomain "github.com/linguahub/linguahub/internal/account/domain"
	accountUseCase "github.com/linguahub/linguahub/internal/account/usecase"
)

// CreateAccountOptions carries the create-account flags. An empty Password is read from
// the command input instead, so it stays out of shell history.
type CreateAccountOptions struct {
	Email    string
	Name     string
	Password string //nolint:gosec // hashed by the use case before storage
	Role     string
	Status   string
	Format   string
}

// RunCreateAccount registers an account, typically the first admin of a new deployment.
func RunCreateAccount(
	ctx context.Context,
	accounts accountUseCase.AccountUseCase,
	logger *slog.Logger,
	opts CreateAccountOptions,
	io IOTuple,
) error {
	if err := validateFormat(opts.Format); err != nil {
		return err
	}

	password := opts.Password
	if password == "" {
		var err error
		if password, err = promptPassword(io); err != nil {
			return err
		}
	}

	account, err := accounts.Create(ctx, &accountDomain.CreateAccountInput{
		Email:    opts.Email,
		Name:     opts.Name,
		Password: password,
		Role:     accountDomain.Role(opts.Role),
		Status:   accountDomain.Status(opts.Status),
	})
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	logger.Info("account created",
		slog.String("account_id", account.ID),
		slog.String("role", string(account.Role)),
		slog.String("status", string(account.Status)),
	)

	return writeAccount(io, opts.Format, "Account created", account)
}

func promptPassword(io IOTuple) (string, error) {
	_, _ = fmt.Fprint(io.Writer, "Password: ")

	line, err := bufio.NewReader(io.Reader).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}
	return password, nil
}

// writeAccount prints the account without its password hash.
func writeAccount(io IOTuple, format, title string, account *accountDomain.Account) error {
	if format == FormatJSON {
		return writeJSON(io.Writer, map[string]string{
			"id":     account.ID,
			"email":  account.Email,
			"name":   account.Name,
			"role":   string(account.Role),
			"status": string(account.Status),
		})
	}

	_, _ = fmt.Fprintf(io.Writer, "\n%s\n", title)
	_, _ = fmt.Fprintf(io.Writer, "ID:     %s\n", account.ID)
	_, _ = fmt.Fprintf(io.Writer, "Email:  %s\n", account.Email)
	_, _ = fmt.Fprintf(io.Writer, "Name:   %s\n", account.Name)
	_, _ = fmt.Fprintf(io.Writer, "Role:   %s\n", account.Role)
	_, _ = fmt.Fprintf(io.Writer, "Status: %s\n", account.Status)
	return nil
}

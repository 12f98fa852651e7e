package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/linguahub/linguahub/cmd/app/commands"
)

func getAccountCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-account",
			Usage: "Create an account (use it to bootstrap the first admin)",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "email", Aliases: []string{"e"}, Required: true, Usage: "Login email"},
				&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Required: true, Usage: "Display name"},
				&cli.StringFlag{
					Name:    "role",
					Aliases: []string{"r"},
					Value:   "student",
					Usage:   "Role: student, teacher or admin",
				},
				&cli.StringFlag{
					Name:    "status",
					Aliases: []string{"s"},
					Value:   "active",
					Usage:   "Status: active, suspended, banned, pending_verification or deleted",
				},
				&cli.StringFlag{
					Name:    "password",
					Aliases: []string{"p"},
					Usage:   "Password (omit to read it from stdin)",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container, err := newContainer()
				if err != nil {
					return err
				}
				defer func() { _ = container.Shutdown(ctx) }()

				accounts, err := container.AccountUseCase(ctx)
				if err != nil {
					return err
				}

				return commands.RunCreateAccount(ctx, accounts, container.Logger(), commands.CreateAccountOptions{
					Email:    cmd.String("email"),
					Name:     cmd.String("name"),
					Password: cmd.String("password"),
					Role:     cmd.String("role"),
					Status:   cmd.String("status"),
					Format:   cmd.String("format"),
				}, commands.DefaultIO())
			},
		},
		{
			Name:  "update-account-status",
			Usage: "Change an account status; non-active accounts are refused on their next request",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "id", Aliases: []string{"i"}, Required: true, Usage: "Account ID (UUID)"},
				&cli.StringFlag{Name: "status", Aliases: []string{"s"}, Required: true, Usage: "New status"},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container, err := newContainer()
				if err != nil {
					return err
				}
				defer func() { _ = container.Shutdown(ctx) }()

				accounts, err := container.AccountUseCase(ctx)
				if err != nil {
					return err
				}

				return commands.RunUpdateAccountStatus(
					ctx,
					accounts,
					container.Logger(),
					cmd.String("id"),
					cmd.String("status"),
					cmd.String("format"),
					commands.DefaultIO(),
				)
			},
		},
		{
			Name:  "update-account-role",
			Usage: "Change the role an account is authorized with",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "id", Aliases: []string{"i"}, Required: true, Usage: "Account ID (UUID)"},
				&cli.StringFlag{Name: "role", Aliases: []string{"r"}, Required: true, Usage: "New role"},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container, err := newContainer()
				if err != nil {
					return err
				}
				defer func() { _ = container.Shutdown(ctx) }()

				accounts, err := container.AccountUseCase(ctx)
				if err != nil {
					return err
				}

				return commands.RunUpdateAccountRole(
					ctx,
					accounts,
					container.Logger(),
					cmd.String("id"),
					cmd.String("role"),
					cmd.String("format"),
					commands.DefaultIO(),
				)
			},
		},
	}
}

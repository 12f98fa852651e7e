package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/linguahub/linguahub/cmd/app/commands"
)

func getTokenCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "issue-token",
			Usage: "Sign an access token for an account id",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "subject", Aliases: []string{"s"}, Required: true, Usage: "Account ID"},
				&cli.DurationFlag{
					Name:    "ttl",
					Aliases: []string{"t"},
					Usage:   "Token lifetime (defaults to AUTH_TOKEN_EXPIRATION)",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container, err := newContainer()
				if err != nil {
					return err
				}
				defer func() { _ = container.Shutdown(ctx) }()

				codec, err := container.TokenCodec(ctx)
				if err != nil {
					return err
				}

				ttl := cmd.Duration("ttl")
				if !cmd.IsSet("ttl") {
					ttl = container.Config().AuthTokenExpiration
				}

				return commands.RunIssueToken(
					codec,
					container.Logger(),
					cmd.String("subject"),
					ttl,
					cmd.String("format"),
					commands.DefaultIO(),
				)
			},
		},
		{
			Name:  "verify-token",
			Usage: "Run a token through the request gate and print the outcome",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "token", Aliases: []string{"k"}, Required: true, Usage: "Access token"},
				&cli.StringFlag{
					Name:    "roles",
					Aliases: []string{"r"},
					Usage:   "Comma separated roles the token must carry (omit for any active account)",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container, err := newContainer()
				if err != nil {
					return err
				}
				defer func() { _ = container.Shutdown(ctx) }()

				gate, err := container.Gate(ctx)
				if err != nil {
					return err
				}

				return commands.RunVerifyToken(
					ctx,
					gate,
					cmd.String("token"),
					cmd.String("roles"),
					cmd.String("format"),
					commands.DefaultIO(),
				)
			},
		},
	}
}

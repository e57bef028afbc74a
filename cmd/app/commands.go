package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/allisson/biscuit/cmd/app/commands"
	"github.com/allisson/biscuit/internal/app"
	"github.com/allisson/biscuit/internal/config"
)

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   "text",
		Usage:   "Output format: 'text' or 'json'",
	}
}

func getCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:      "get",
			Usage:     "Decrypt a secret and print its value",
			ArgsUsage: "FILENAME NAME [FILENAME...]",
			Flags:     []cli.Flag{formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				args := cmd.Args()
				if args.Len() < 2 {
					return fmt.Errorf("get requires FILENAME and NAME arguments")
				}
				filenames := append([]string{args.Get(0)}, args.Slice()[2:]...)

				container, err := newContainer()
				if err != nil {
					return err
				}
				logger := container.Logger()
				defer commands.CloseContainer(container, logger)

				reader, err := container.SecretReader()
				if err != nil {
					return fmt.Errorf("failed to initialize secret reader: %w", err)
				}

				return commands.RunGet(
					ctx,
					reader,
					logger,
					commands.DefaultOutput(),
					filenames,
					args.Get(1),
					cmd.String("format"),
				)
			},
		},
		{
			Name:      "list",
			Usage:     "Print the secret names defined by the files",
			ArgsUsage: "FILENAME [FILENAME...]",
			Flags:     []cli.Flag{formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				if cmd.Args().Len() < 1 {
					return fmt.Errorf("list requires at least one FILENAME argument")
				}

				container, err := newContainer()
				if err != nil {
					return err
				}
				logger := container.Logger()
				defer commands.CloseContainer(container, logger)

				reader, err := container.SecretReader()
				if err != nil {
					return fmt.Errorf("failed to initialize secret reader: %w", err)
				}

				return commands.RunList(
					reader,
					logger,
					commands.DefaultOutput(),
					cmd.Args().Slice(),
					cmd.String("format"),
				)
			},
		},
		{
			Name:      "check",
			Usage:     "Validate the structure of every entry without decrypting",
			ArgsUsage: "FILENAME [FILENAME...]",
			Flags:     []cli.Flag{formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				if cmd.Args().Len() < 1 {
					return fmt.Errorf("check requires at least one FILENAME argument")
				}

				container, err := newContainer()
				if err != nil {
					return err
				}
				logger := container.Logger()
				defer commands.CloseContainer(container, logger)

				return commands.RunCheck(logger, commands.DefaultOutput(), cmd.Args().Slice(), cmd.String("format"))
			},
		},
	}
}

// newContainer loads and validates the configuration.
func newContainer() (*app.Container, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return app.NewContainer(cfg), nil
}

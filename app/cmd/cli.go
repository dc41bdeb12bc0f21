package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/ecolarcontatos-glitch/site-ecolar-sub000/app/configs"
	"github.com/ecolarcontatos-glitch/site-ecolar-sub000/app/db/seeders"
	"github.com/ecolarcontatos-glitch/site-ecolar-sub000/app/models/migrations"
	"github.com/ecolarcontatos-glitch/site-ecolar-sub000/app/services"
	"github.com/urfave/cli/v3"
)

func RunCli() {
	cmd := &cli.Command{
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "Run database migration",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}
					if err := migrations.AutoMigrate(db); err != nil {
						return err
					}
					log.Println("✅ Migration complete")
					return nil
				},
			},
			{
				Name:  "seed",
				Usage: "Seed the database with sample catalog data",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}
					if err := migrations.AutoMigrate(db); err != nil {
						return err
					}
					if err := seeders.DBSeed(db); err != nil {
						return err
					}
					log.Println("✅ Seed complete")
					return nil
				},
			},
			{
				Name:  "generate-keys",
				Usage: "Generate new session keys for .env",
				Action: func(ctx context.Context, c *cli.Command) error {
					if err := configs.GenerateAndPrintKeys(); err != nil {
						return err
					}
					log.Println("✅ Key generation complete. Please copy the keys to your .env file.")
					return nil
				},
			},
			{
				Name:      "hash-password",
				Usage:     "Hash an admin password for ADMIN_PASSWORD_HASH",
				ArgsUsage: "<password>",
				Action: func(ctx context.Context, c *cli.Command) error {
					password := c.Args().First()
					if password == "" {
						return errors.New("usage: hash-password <password>")
					}
					hash := services.HashPassword(password)
					if hash == "" {
						return errors.New("failed to hash password")
					}
					fmt.Println(hash)
					return nil
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

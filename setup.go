package main

import (
	"context"
	"fmt"

	"github.com/valldsonsantos/PI-MVP-Senac/config"
	"github.com/valldsonsantos/PI-MVP-Senac/database"

	"github.com/urfave/cli/v2"
)

var setupCommand = &cli.Command{
	Name:  "setup",
	Usage: "Create the tables and seed sample users, collection points and requests",
	Action: func(cCtx *cli.Context) error {
		logger := newLogger(cCtx)
		ctx := context.Background()

		db, err := database.Open(ctx, config.DatabasePath, logger)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer database.Close(db)

		logger.WithField("path", config.DatabasePath).Info("Connected to database")

		if err := database.Migrate(db); err != nil {
			return err
		}
		logger.Info("Tables created or already present")

		if err := database.Seed(ctx, db); err != nil {
			return err
		}
		logger.Info("Database seeded")

		return nil
	},
}

package cmd

import (
	"context"
	"log"

	"github.com/frahmantamala/company-directory/internal/seed"
	"github.com/frahmantamala/company-directory/pkg/logger"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample companies, departments and employees for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
		logger.Init(cfg.Observability.Logging.Format, cfg.Observability.Logging.Level)

		sqlxDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer sqlxDB.Close()

		db, err := initGorm(sqlxDB)
		if err != nil {
			log.Fatalf("failed to init gorm: %v", err)
		}

		ctx := context.Background()
		seeder := seed.NewSeeder(db, logger.L())

		if clearData {
			if err := seeder.Clear(ctx); err != nil {
				log.Fatalf("failed to clear data: %v", err)
			}
		}

		if err := seeder.Run(ctx); err != nil {
			log.Fatalf("failed to seed data: %v", err)
		}
		logger.L().Info("seed finished", "cleared", clearData)
	},
}

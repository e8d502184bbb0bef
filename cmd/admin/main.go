package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/kashyap-d/Solo-Suite-sub000/internal/config"
	"github.com/kashyap-d/Solo-Suite-sub000/internal/database"
	"github.com/kashyap-d/Solo-Suite-sub000/internal/services"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// Operations CLI. `migrate` applies the schema; `reconcile` repairs jobs
// left completed without their WorkedWith rows by the old non-transactional
// finalize flow.
func main() {
	var configPath string

	root := &cobra.Command{
		Use:   "solosuite-admin",
		Short: "Operational tooling for the SoloSuite marketplace backend",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to the config file")

	migrate := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			db := connect(configPath)
			if err := database.Migrate(db); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			log.Println("✅ Migrations applied")
			return nil
		},
	}

	reconcile := &cobra.Command{
		Use:   "reconcile",
		Short: "Repair completed jobs missing worked-with rows",
		RunE: func(cmd *cobra.Command, args []string) error {
			db := connect(configPath)
			finalizer := services.NewFinalizerService(db)
			repaired, err := finalizer.Reconcile()
			if err != nil {
				return fmt.Errorf("reconcile: %w", err)
			}
			log.Printf("✅ Reconcile complete, %d worked-with rows created", repaired)
			return nil
		},
	}

	root.AddCommand(migrate, reconcile)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func connect(configPath string) *gorm.DB {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on the environment")
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal("Error loading configuration:", err)
	}
	return database.Connect(cfg.Database.DSN)
}

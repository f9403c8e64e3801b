package main

import (
	"fmt"
	"os"
	"time"

	"agrimanager-backend/internal/config"
	"agrimanager-backend/internal/database"
	"agrimanager-backend/internal/logger"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var (
	dataDir     string
	maxAttempts int
	retryDelay  time.Duration
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load tenants, users and lookup data from YAML files",
	Long: `seed reads every *.yaml file under the data directory and creates the
tenants, users, crop statuses and expense categories it describes.
Records that already exist are left untouched, so the command can be re-run.`,
	SilenceUsage: true,
	RunE:         runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&dataDir, "data", "cmd/seed/data", "directory holding the seed YAML files")
	seedCmd.Flags().IntVar(&maxAttempts, "attempts", 60, "connection attempts before giving up")
	seedCmd.Flags().DurationVar(&retryDelay, "retry-delay", time.Second, "delay between connection attempts")
}

func main() {
	if err := seedCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSeed(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger.Setup(cfg.LogLevel)

	// Postgres may still be starting when this runs under docker compose
	db, err := connectWithRetry(cfg, maxAttempts, retryDelay)
	if err != nil {
		return err
	}

	files, err := loadSeedFiles(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load seed files: %w", err)
	}

	summary, err := NewSeeder(db).Seed(cmd.Context(), files)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"tenants":            summary.Tenants,
		"users":              summary.Users,
		"crop_statuses":      summary.CropStatuses,
		"expense_categories": summary.ExpenseCategories,
	}).Info("Seed data loaded")
	return nil
}

// connectWithRetry attempts to initialize the DB until it answers or the attempts run out
func connectWithRetry(cfg *config.Config, attempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		Driver:   cfg.DatabaseDriver,
		LogLevel: gormlogger.Silent,
	}

	for attempt := 1; attempt <= attempts; attempt++ {
		db, err := database.Initialize(cfg.DSN(), opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == attempts {
			logrus.Warnf("Database not ready (%d/%d): %v", attempt, attempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", attempts)
}

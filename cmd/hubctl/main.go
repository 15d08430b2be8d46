package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dangerclosesec/adoptionhub/internal/auth"
	"github.com/dangerclosesec/adoptionhub/internal/config"
	"github.com/dangerclosesec/adoptionhub/internal/domain"
	"github.com/dangerclosesec/adoptionhub/internal/repository"
	"github.com/dangerclosesec/adoptionhub/internal/service"
	"github.com/dangerclosesec/adoptionhub/migrations"
	"github.com/spf13/cobra"
)

var (
	configPath string
	period     string

	tokenEmployeeID   int64
	tokenEmail        string
	tokenDisplayName  string
	tokenDepartmentID int64
	tokenRole         string
	tokenTTL          time.Duration
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file (overrides CONFIG_PATH)")

	rollupCmd.Flags().StringVarP(&period, "period", "p", "", "Period to materialize as YYYY-MM (default: current month)")

	tokenCmd.Flags().Int64Var(&tokenEmployeeID, "employee-id", 0, "Employee id claim")
	tokenCmd.Flags().StringVar(&tokenEmail, "email", "", "Email claim")
	tokenCmd.Flags().StringVar(&tokenDisplayName, "name", "", "Display name claim")
	tokenCmd.Flags().Int64Var(&tokenDepartmentID, "department-id", 0, "Department id claim")
	tokenCmd.Flags().StringVar(&tokenRole, "role", "employee", "Role claim")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 0, "Token lifetime (default: jwt.expiry_period)")

	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
	migrateCmd.AddCommand(migrateVersionCmd)

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(rollupCmd)
	rootCmd.AddCommand(tokenCmd)
}

var rootCmd = &cobra.Command{
	Use:           "hubctl",
	Short:         "hubctl administers the AI Adoption Hub",
	Long:          `hubctl applies schema migrations, materializes department rollups and issues development tokens.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func loadConfig() (*config.Config, error) {
	if configPath != "" {
		if err := os.Setenv("CONFIG_PATH", configPath); err != nil {
			return nil, err
		}
	}
	return config.Load()
}

func newMigrator() (*repository.Migrator, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return repository.NewMigrator(cfg.URL(), migrations.FS)
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newMigrator()
		if err != nil {
			return err
		}
		defer m.Close()

		if err := m.Up(); err != nil {
			return err
		}
		return printVersion(cmd, m)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the most recent migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newMigrator()
		if err != nil {
			return err
		}
		defer m.Close()

		if err := m.Down(); err != nil {
			return err
		}
		return printVersion(cmd, m)
	},
}

var migrateVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current schema version",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newMigrator()
		if err != nil {
			return err
		}
		defer m.Close()

		return printVersion(cmd, m)
	},
}

func printVersion(cmd *cobra.Command, m *repository.Migrator) error {
	version, dirty, err := m.Version()
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "schema version %d (dirty: %t)\n", version, dirty)
	return nil
}

var rollupCmd = &cobra.Command{
	Use:   "rollup",
	Short: "Materialize department aggregates for a period",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := parsePeriod(period, time.Now())
		if err != nil {
			return err
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		db, err := repository.OpenDatabase(ctx, cfg)
		if err != nil {
			return err
		}
		if sqlDB, err := db.DB(); err == nil {
			defer sqlDB.Close()
		}

		adoption := service.NewAdoptionService(
			repository.NewMetricRepository(db),
			repository.NewEmployeeRepository(db),
			repository.NewDepartmentRepository(db),
			repository.NewDepartmentAggregateRepository(db),
			nil,
			repository.NewLearningRepository(db),
			service.NewAuditLogService(repository.NewAuditLogRepository(db)),
			service.AnalyticsConfigFrom(cfg),
			service.WithTransactions(repository.NewTransactionManager(db)),
		)

		overviews, err := adoption.Rollup(ctx, p)
		if err != nil {
			return err
		}
		for _, o := range overviews {
			fmt.Fprintf(cmd.OutOrStdout(), "department %d (%s): avg %.1f participation %.1f%% hours %.2f\n",
				o.DepartmentID, o.DepartmentName, o.AvgScore, o.ParticipationRate, o.TotalHoursSaved)
		}
		return nil
	},
}

// parsePeriod returns the period of now when value is empty.
func parsePeriod(value string, now time.Time) (domain.Period, error) {
	if value == "" {
		return domain.PeriodOf(now), nil
	}
	return domain.ParsePeriod(value)
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a signed bearer token for local development",
	RunE: func(cmd *cobra.Command, args []string) error {
		if tokenEmployeeID == 0 && tokenEmail == "" {
			return fmt.Errorf("one of --employee-id or --email is required")
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ttl := cfg.JWT.ExpiryPeriod
		if tokenTTL > 0 {
			ttl = tokenTTL
		}

		tokens, err := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.Algorithm, cfg.JWT.Issuer, cfg.JWT.Audience, ttl)
		if err != nil {
			return err
		}

		token, err := tokens.Generate(tokenEmployeeID, tokenEmail, tokenDisplayName, tokenDepartmentID, string(auth.NormalizeRole(tokenRole)))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("hubctl failed", "error", err)
		os.Exit(1)
	}
}

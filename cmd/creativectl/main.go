package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"adpulse/db/migrations"
	"adpulse/internal/app"
	"adpulse/internal/config"
	"adpulse/internal/core/domain"
	"adpulse/internal/db"
)

// CLI flags
var (
	workspaceFlag string
	accountFlag   string
	adsFlag       []string
	forceFlag     bool
	targetFlag    uint
)

// rootCmd is the operator CLI for the creative pipeline.
var rootCmd = &cobra.Command{
	Use:   "creativectl",
	Short: "Operate the creative asset pipeline",
	Long: `creativectl runs maintenance tasks against the creative store using the
same environment configuration as the server.

Examples:
  creativectl migrate
  creativectl seed
  creativectl refresh --workspace <uuid> --account act_123 --ads 238,239 --force`,
	SilenceUsage: true,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migrate the schema to a version (default: latest, 0 reverts all)",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		from, err := db.Migrate(cfg.Psql.Addr.String(), targetFlag)
		if err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		app.NewLogger(cfg.Log).Info("migrations applied",
			slog.Uint64("from", uint64(from)), slog.Uint64("to", uint64(targetFlag)))
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert a demo workspace, member and ad account credential",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		pool, err := db.NewPostgresPool(cmd.Context(), cfg.Psql)
		if err != nil {
			return err
		}
		defer pool.Close()
		if err := db.Seed(cmd.Context(), pool, db.DemoSeed); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		app.NewLogger(cfg.Log).Info("demo data seeded",
			slog.String("workspace_id", db.DemoSeed.WorkspaceID.String()),
			slog.String("user_id", db.DemoSeed.UserID.String()),
			slog.String("account_id", db.DemoSeed.AccountID),
		)
		return nil
	},
}

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Fetch creatives for a workspace synchronously and print the result",
	RunE:  runRefresh,
}

func init() {
	migrateCmd.Flags().UintVar(&targetFlag, "to", migrations.Version, "Target schema version")
	refreshCmd.Flags().StringVarP(&workspaceFlag, "workspace", "w", "", "Workspace id")
	refreshCmd.Flags().StringVarP(&accountFlag, "account", "a", "", "Ad account id")
	refreshCmd.Flags().StringSliceVar(&adsFlag, "ads", nil, "Comma-separated ad ids")
	refreshCmd.Flags().BoolVar(&forceFlag, "force", false, "Fetch every ad regardless of what is stored")
	_ = refreshCmd.MarkFlagRequired("workspace")
	_ = refreshCmd.MarkFlagRequired("account")
	_ = refreshCmd.MarkFlagRequired("ads")

	rootCmd.AddCommand(migrateCmd, seedCmd, refreshCmd)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// runRefresh runs the batch pipeline in-process for the given ads.
func runRefresh(cmd *cobra.Command, _ []string) error {
	wsID, err := uuid.Parse(workspaceFlag)
	if err != nil {
		return fmt.Errorf("invalid workspace id: %w", err)
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := app.NewLogger(cfg.Log)

	pipeline, err := app.NewPipeline(cmd.Context(), cfg, logger, prometheus.NewRegistry(), nil)
	if err != nil {
		return err
	}
	defer pipeline.Close()

	ads := make([]string, 0, len(adsFlag))
	for _, id := range adsFlag {
		if id = strings.TrimSpace(id); id != "" {
			ads = append(ads, id)
		}
	}
	res, err := pipeline.UseCase.RefreshCreatives(cmd.Context(), domain.RefreshJob{
		JobID:       uuid.New(),
		WorkspaceID: wsID,
		AccountID:   accountFlag,
		AdIDs:       ads,
		Force:       forceFlag,
		RequestedAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

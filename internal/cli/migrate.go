package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"jobquest/internal/logger"
	"jobquest/internal/repository"
)

func newMigrateCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the assessment table or indexes for the configured store",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return migrate(cmd.Context(), opts)
		},
	}
}

func migrate(ctx context.Context, opts *rootOptions) error {
	cfg, err := opts.load()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	repo, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	m, ok := repo.(repository.Migrator)
	if !ok {
		log.Info("store needs no migration", zap.String("store", cfg.Store.Backend))
		return nil
	}
	if err := m.Migrate(ctx); err != nil {
		return fmt.Errorf("migrate %s: %w", cfg.Store.Backend, err)
	}
	log.Info("migration complete", zap.String("store", cfg.Store.Backend))
	return nil
}

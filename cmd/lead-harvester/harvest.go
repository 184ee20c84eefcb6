// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/lead-harvester/internal/apollo"
	"github.com/pdiddy/lead-harvester/internal/export"
	"github.com/pdiddy/lead-harvester/internal/leadstore"
)

var harvestCmd = &cobra.Command{
	Use:   "harvest",
	Short: "Search every page and save the leads to a file",
	Long: `Harvest requests pages 1 through --pages from Apollo, one after another,
extracts a lead from every person returned, and writes all leads to --output
once the last page is done. Pages without people are skipped; any request
failure aborts the run and nothing is written.

With --db the finished run is also archived in a SQLite file or a PostgreSQL
database (postgres://...) for "lead-harvester leads".`,
	RunE: runHarvest,
}

func init() {
	harvestCmd.Flags().Int("pages", 5, "number of result pages to request")
	harvestCmd.Flags().Int("per-page", 100, "results per page")
	harvestCmd.Flags().StringP("output", "o", apollo.DefaultOutput, "output file")
	harvestCmd.Flags().String("format", "", "output format: csv, json, or yaml (default: from --output extension)")
	harvestCmd.Flags().String("db", "", "archive the run in this SQLite path or postgres:// URL")

	_ = viper.BindPFlag("harvest.pages", harvestCmd.Flags().Lookup("pages"))
	_ = viper.BindPFlag("harvest.per_page", harvestCmd.Flags().Lookup("per-page"))
	_ = viper.BindPFlag("harvest.output", harvestCmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("harvest.format", harvestCmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("store.dsn", harvestCmd.Flags().Lookup("db"))

	rootCmd.AddCommand(harvestCmd)
}

func runHarvest(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	writer, err := export.ForFormat(cfg.Harvest.Format, cfg.Harvest.Output)
	if err != nil {
		return err
	}

	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	started := time.Now()

	h := &apollo.Harvester{Searcher: client, Writer: writer, Logger: logger}
	leads, err := h.Harvest(ctx, cfg.Harvest)
	if err != nil {
		return err
	}

	if cfg.Store.DSN == "" {
		return nil
	}

	store, err := leadstore.Open(ctx, cfg.Store)
	if err != nil {
		return err
	}
	defer store.Close()

	runID, err := store.RecordRun(ctx, leadstore.Run{
		StartedAt: started,
		Pages:     cfg.Harvest.Pages,
		Output:    cfg.Harvest.Output,
	}, leads)
	if err != nil {
		return err
	}
	logger.Info("archived run", "run", runID, "leads", len(leads))
	return nil
}

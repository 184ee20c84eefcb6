// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/lead-harvester/internal/export"
	"github.com/pdiddy/lead-harvester/internal/leadstore"
	"github.com/pdiddy/lead-harvester/pkg/types"
)

var leadsCmd = &cobra.Command{
	Use:   "leads",
	Short: "Browse leads archived by harvest --db",
	Long: `Leads reads the archive written by "harvest --db". Use subcommands to
list past runs, filter archived leads, or export one run to a file.`,
}

// --- runs subcommand ---

var leadsRunsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List archived harvest runs",
	RunE:  runLeadsRuns,
}

func runLeadsRuns(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.Runs(cmd.Context())
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return printJSON(runs)
	}
	if len(runs) == 0 {
		fmt.Println("No runs archived.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-6s  %-20s  %-5s  %-6s  %s\n", "Run", "Started", "Pages", "Leads", "Output")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 70))
	for _, r := range runs {
		fmt.Fprintf(os.Stdout, "%-6d  %-20s  %-5d  %-6d  %s\n",
			r.ID, r.StartedAt.Local().Format("2006-01-02 15:04:05"), r.Pages, r.LeadCount, r.Output)
	}
	return nil
}

// --- list subcommand ---

var leadsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived leads, optionally filtered by title, company, or run",
	RunE:  runLeadsList,
}

func runLeadsList(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	title, _ := cmd.Flags().GetString("title")
	company, _ := cmd.Flags().GetString("company")
	runID, _ := cmd.Flags().GetInt64("run")
	limit, _ := cmd.Flags().GetInt("limit")

	leads, err := store.ListLeads(cmd.Context(), leadstore.QueryOptions{
		Title:      title,
		Company:    company,
		RunID:      runID,
		MaxResults: limit,
	})
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return printJSON(leads)
	}
	if len(leads) == 0 {
		fmt.Println("No leads found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-24s  %-16s  %-28s  %s\n", "Run", "Name", "Title", "Company", "Email")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 110))
	for _, l := range leads {
		fmt.Fprintf(os.Stdout, "%-4d  %-24s  %-16s  %-28s  %s\n",
			l.RunID, truncate(l.Name, 24), truncate(l.Title, 16), truncate(l.Company, 28), l.Email)
	}
	fmt.Fprintf(os.Stdout, "\n%d leads\n", len(leads))
	return nil
}

// --- export subcommand ---

var leadsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the leads of one archived run to a file",
	Long: `Export writes every lead of an archived run, in harvest order, to
--output. Without --run the most recent run is exported.`,
	RunE: runLeadsExport,
}

func runLeadsExport(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	format, _ := cmd.Flags().GetString("format")
	runID, _ := cmd.Flags().GetInt64("run")

	writer, err := export.ForFormat(types.OutputFormat(format), output)
	if err != nil {
		return err
	}

	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := cmd.Context()
	if runID == 0 {
		if runID, err = store.LatestRunID(ctx); err != nil {
			return err
		}
	}

	leads, err := store.RunLeads(ctx, runID)
	if err != nil {
		return err
	}
	if err := writer.WriteLeads(output, leads); err != nil {
		return fmt.Errorf("writing leads to %s: %w", output, err)
	}
	logger.Info("exported run", "run", runID, "count", len(leads), "path", output)
	return nil
}

// --- shared helpers ---

// openStore opens the archive named by --db, falling back to store.dsn.
func openStore(cmd *cobra.Command) (*leadstore.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if dsn, _ := cmd.Flags().GetString("db"); dsn != "" {
		cfg.Store.DSN = dsn
	}
	if cfg.Store.DSN == "" {
		return nil, fmt.Errorf("no archive configured: pass --db or set store.dsn")
	}
	return leadstore.Open(cmd.Context(), cfg.Store)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

func init() {
	// Shared flags on the parent command, inherited by subcommands.
	leadsCmd.PersistentFlags().String("db", "", "archive SQLite path or postgres:// URL (default: store.dsn)")

	leadsRunsCmd.Flags().Bool("json", false, "output runs as JSON")

	leadsListCmd.Flags().String("title", "", "filter by title substring")
	leadsListCmd.Flags().String("company", "", "filter by company substring")
	leadsListCmd.Flags().Int64("run", 0, "filter by run ID")
	leadsListCmd.Flags().Int("limit", 0, "maximum results (0 = default 50)")
	leadsListCmd.Flags().Bool("json", false, "output leads as JSON")

	leadsExportCmd.Flags().Int64("run", 0, "run ID (default: latest run)")
	leadsExportCmd.Flags().StringP("output", "o", "chef_leads_export.csv", "output file")
	leadsExportCmd.Flags().String("format", "", "output format: csv, json, or yaml (default: from --output extension)")

	// Wire subcommands.
	leadsCmd.AddCommand(leadsRunsCmd)
	leadsCmd.AddCommand(leadsListCmd)
	leadsCmd.AddCommand(leadsExportCmd)

	rootCmd.AddCommand(leadsCmd)
}

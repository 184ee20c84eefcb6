// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Request one page of chefs and print the raw response",
	Long: `Search sends a single people-search request for chefs and prints the
response body exactly as Apollo returned it, as indented JSON. Nothing is
extracted or saved.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().Int("page", 1, "page number")
	searchCmd.Flags().Int("per-page", 100, "results per page")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	page, _ := cmd.Flags().GetInt("page")
	perPage, _ := cmd.Flags().GetInt("per-page")

	resp, err := client.Search(cmd.Context(), page, perPage)
	if err != nil {
		return err
	}
	if p, ok := resp.Pagination(); ok {
		logger.Info("search complete", "people", len(resp.People()), "total_entries", p.TotalEntries, "total_pages", p.TotalPages)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}

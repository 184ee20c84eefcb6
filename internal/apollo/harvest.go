// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package apollo

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/pdiddy/lead-harvester/internal/export"
	"github.com/pdiddy/lead-harvester/pkg/types"
)

const (
	defaultPages  = 5
	DefaultOutput = "chef_leads.csv"
)

// Searcher fetches one page of raw results. *Client implements it.
type Searcher interface {
	Search(ctx context.Context, page, perPage int) (SearchResponse, error)
}

// LeadWriter persists a lead collection to path, replacing its contents.
type LeadWriter interface {
	WriteLeads(path string, leads []types.Lead) error
}

// Harvester pages through search results and writes the collected leads.
type Harvester struct {
	Searcher Searcher
	// Writer defaults to CSV when nil.
	Writer LeadWriter
	// Logger receives progress lines; nil discards them.
	Logger *log.Logger
}

// Harvest requests pages 1..cfg.Pages in order, extracts the leads of every
// page that returned people, and writes the whole collection once to
// cfg.Output. Empty pages do not stop the loop. A search error aborts the
// run before anything is written.
func (h *Harvester) Harvest(ctx context.Context, cfg types.HarvestConfig) ([]types.Lead, error) {
	pages := cfg.Pages
	if pages < 1 {
		pages = defaultPages
	}
	output := cfg.Output
	if output == "" {
		output = DefaultOutput
	}
	writer := h.Writer
	if writer == nil {
		writer = export.CSVWriter{}
	}
	logger := h.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	leads := []types.Lead{}
	for page := 1; page <= pages; page++ {
		logger.Info("processing page", "page", page, "of", pages)

		resp, err := h.Searcher.Search(ctx, page, cfg.PerPage)
		if err != nil {
			return nil, err
		}

		people := resp.People()
		if len(people) == 0 {
			logger.Debug("page returned no people", "page", page)
			continue
		}
		leads = append(leads, Extract(people)...)
	}

	if err := writer.WriteLeads(output, leads); err != nil {
		return nil, fmt.Errorf("writing leads to %s: %w", output, err)
	}
	logger.Info("saved leads", "count", len(leads), "path", output)
	return leads, nil
}

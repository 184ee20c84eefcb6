// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package leadstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/pdiddy/lead-harvester/pkg/types"
)

// QueryOptions filters archived leads.
type QueryOptions struct {
	// Title matches leads whose title contains this text (case-insensitive).
	Title string

	// Company matches leads whose company contains this text (case-insensitive).
	Company string

	// RunID restricts results to one run. Zero means all runs.
	RunID int64

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// StoredLead is an archived lead with its run and position.
type StoredLead struct {
	types.Lead
	RunID    int64 `json:"run_id" yaml:"run_id"`
	Position int   `json:"position" yaml:"position"`
}

// ListLeads returns archived leads matching opts, ordered by run and then
// by position within the run.
func (s *Store) ListLeads(ctx context.Context, opts QueryOptions) ([]StoredLead, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb   strings.Builder
		args []any
	)
	qb.WriteString(`SELECT run_id, position, name, email, title, company, linkedin_url
		FROM leads WHERE 1=1`)

	if opts.Title != "" {
		qb.WriteString(` AND LOWER(title) LIKE ?`)
		args = append(args, "%"+strings.ToLower(opts.Title)+"%")
	}
	if opts.Company != "" {
		qb.WriteString(` AND LOWER(company) LIKE ?`)
		args = append(args, "%"+strings.ToLower(opts.Company)+"%")
	}
	if opts.RunID != 0 {
		qb.WriteString(` AND run_id = ?`)
		args = append(args, opts.RunID)
	}
	qb.WriteString(` ORDER BY run_id, position LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, s.rebind(qb.String()), args...)
	if err != nil {
		return nil, fmt.Errorf("querying leads: %w", err)
	}
	defer rows.Close()

	var leads []StoredLead
	for rows.Next() {
		var l StoredLead
		if err := rows.Scan(&l.RunID, &l.Position, &l.Name, &l.Email, &l.Title, &l.Company, &l.LinkedInURL); err != nil {
			return nil, fmt.Errorf("scanning lead: %w", err)
		}
		leads = append(leads, l)
	}
	return leads, rows.Err()
}

// RunLeads returns every lead of one run in harvest order.
func (s *Store) RunLeads(ctx context.Context, runID int64) ([]types.Lead, error) {
	var count int
	err := s.db.QueryRowContext(ctx, s.rebind(`SELECT lead_count FROM runs WHERE id = ?`), runID).Scan(&count)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("run %d: %w", runID, ErrRunNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying run %d: %w", runID, err)
	}

	stored, err := s.ListLeads(ctx, QueryOptions{RunID: runID, MaxResults: count + 1})
	if err != nil {
		return nil, err
	}
	leads := make([]types.Lead, len(stored))
	for i, l := range stored {
		leads[i] = l.Lead
	}
	return leads, nil
}

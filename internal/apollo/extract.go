// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package apollo

import "github.com/pdiddy/lead-harvester/pkg/types"

// Extract maps raw person records to leads, one per record, in order.
// Missing fields become types.NotAvailable. The name is always the
// two-part join, so a missing first or last name leaves a stray space.
func Extract(people []Person) []types.Lead {
	leads := make([]types.Lead, 0, len(people))
	for _, p := range people {
		leads = append(leads, extractLead(p))
	}
	return leads
}

func extractLead(p Person) types.Lead {
	company := types.NotAvailable
	if org := p.Organization(); org != nil {
		company = org.Get("name", types.NotAvailable)
	}
	return types.Lead{
		Name:        p.Get("first_name", "") + " " + p.Get("last_name", ""),
		Email:       p.Get("email", types.NotAvailable),
		Title:       p.Get("title", types.NotAvailable),
		Company:     company,
		LinkedInURL: p.Get("linkedin_url", types.NotAvailable),
	}
}

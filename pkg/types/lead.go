// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for lead-harvester.
package types

// NotAvailable is substituted for any field missing from an upstream person
// record. A Lead never carries an empty value in place of a missing one,
// except for Name, which is always the two-part join.
const NotAvailable = "Not available"

// LeadColumns is the fixed column order used by every tabular lead output.
var LeadColumns = []string{"name", "email", "title", "company", "linkedin_url"}

// Lead is one normalized prospective contact.
type Lead struct {
	// Name is first_name and last_name joined by a single space. Missing
	// parts are empty, so the space is always present.
	Name string `json:"name" yaml:"name"`

	Email       string `json:"email" yaml:"email"`
	Title       string `json:"title" yaml:"title"`
	Company     string `json:"company" yaml:"company"`
	LinkedInURL string `json:"linkedin_url" yaml:"linkedin_url"`
}

// Row returns the lead's fields in LeadColumns order.
func (l Lead) Row() []string {
	return []string{l.Name, l.Email, l.Title, l.Company, l.LinkedInURL}
}

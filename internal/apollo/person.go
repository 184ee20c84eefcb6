// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package apollo

import (
	"fmt"
	"strconv"
)

// Person is one raw record from the "people" array. Apollo guarantees no
// schema, so fields are looked up by name with an explicit default.
type Person map[string]any

// Get returns the named field as a string, or def if the field is absent
// or null. Numbers and booleans are formatted; nested objects and arrays
// count as absent.
func (p Person) Get(key, def string) string {
	v, ok := p[key]
	if !ok {
		return def
	}
	s, ok := scalarString(v)
	if !ok {
		return def
	}
	return s
}

// Organization returns the nested "organization" object, or nil when it is
// absent or not an object.
func (p Person) Organization() Person {
	m, ok := p["organization"].(map[string]any)
	if !ok {
		return nil
	}
	return Person(m)
}

func scalarString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(t), true
	case nil, map[string]any, []any:
		return "", false
	default:
		return fmt.Sprint(t), true
	}
}

// SearchResponse is the decoded body of a mixed_people/search call, passed
// through without validation.
type SearchResponse map[string]any

// People returns the "people" entries that are JSON objects, in response
// order. A missing or non-array key yields nil.
func (r SearchResponse) People() []Person {
	raw, ok := r["people"].([]any)
	if !ok {
		return nil
	}
	people := make([]Person, 0, len(raw))
	for _, item := range raw {
		if m, ok := item.(map[string]any); ok {
			people = append(people, Person(m))
		}
	}
	return people
}

// Pagination holds the paging summary Apollo returns alongside results.
type Pagination struct {
	TotalEntries int
	TotalPages   int
}

// Pagination returns the "pagination" block, if present.
func (r SearchResponse) Pagination() (Pagination, bool) {
	m, ok := r["pagination"].(map[string]any)
	if !ok {
		return Pagination{}, false
	}
	var p Pagination
	if n, ok := m["total_entries"].(float64); ok {
		p.TotalEntries = int(n)
	}
	if n, ok := m["total_pages"].(float64); ok {
		p.TotalPages = int(n)
	}
	return p, true
}

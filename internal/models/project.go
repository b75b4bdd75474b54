// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the data structures that map to database tables
// and provides the core types used throughout the application.
package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ProjectCategory classifies a project for filtering and related-project lookup.
type ProjectCategory string

const (
	CategoryFrontend  ProjectCategory = "frontend"
	CategoryBackend   ProjectCategory = "backend"
	CategoryFullstack ProjectCategory = "fullstack"
	CategoryDesign    ProjectCategory = "design"
	CategoryMobile    ProjectCategory = "mobile"
)

// ProjectCategories lists all valid categories in display order.
// Used by the admin form select and for query-parameter validation.
var ProjectCategories = []ProjectCategory{
	CategoryFrontend,
	CategoryBackend,
	CategoryFullstack,
	CategoryDesign,
	CategoryMobile,
}

// ValidProjectCategory reports whether s is one of the known categories.
func ValidProjectCategory(s string) bool {
	for _, c := range ProjectCategories {
		if string(c) == s {
			return true
		}
	}
	return false
}

// TechStack is an ordered list of technology names. In the database it is
// a JSONB column that holds either an array of strings or, for rows
// imported from the legacy site, a single comma-separated string. Scan
// normalizes both shapes into a trimmed list so nothing downstream ever
// branches on the underlying type.
type TechStack []string

// Scan implements sql.Scanner for the JSONB tech_stack column.
func (t *TechStack) Scan(src any) error {
	if src == nil {
		*t = nil
		return nil
	}

	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("tech stack: unsupported scan type %T", src)
	}

	// Canonical shape: a JSON array of strings.
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		*t = Normalize(list)
		return nil
	}

	// Legacy shape: a JSON string like "Python, Django,PostgreSQL".
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		*t = Normalize(strings.Split(s, ","))
		return nil
	}

	return fmt.Errorf("tech stack: cannot decode %q", raw)
}

// Value implements driver.Valuer. Tech stacks are always written back in
// the canonical array shape.
func (t TechStack) Value() (driver.Value, error) {
	if t == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(t))
}

// Contains reports whether the stack includes the given technology name.
func (t TechStack) Contains(tech string) bool {
	for _, item := range t {
		if item == tech {
			return true
		}
	}
	return false
}

// Normalize trims each entry and drops empties, preserving order.
func Normalize(items []string) TechStack {
	var out TechStack
	for _, item := range items {
		if v := strings.TrimSpace(item); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Gallery is an ordered list of image references stored as a JSONB array.
type Gallery []string

// Scan implements sql.Scanner for the JSONB gallery column.
func (g *Gallery) Scan(src any) error {
	if src == nil {
		*g = nil
		return nil
	}
	raw, ok := src.([]byte)
	if !ok {
		if s, isStr := src.(string); isStr {
			raw = []byte(s)
		} else {
			return fmt.Errorf("gallery: unsupported scan type %T", src)
		}
	}
	return json.Unmarshal(raw, (*[]string)(g))
}

// Value implements driver.Valuer.
func (g Gallery) Value() (driver.Value, error) {
	if g == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(g))
}

// Project is a portfolio case study: the showcase card fields, the
// long-form write-up, images, tech stack, and display options.
type Project struct {
	ID              uuid.UUID       `json:"id"`
	Title           string          `json:"title"`
	Slug            string          `json:"slug"`
	Description     string          `json:"description"`
	LongDescription string          `json:"long_description,omitempty"`
	Challenge       string          `json:"challenge,omitempty"`
	Solution        string          `json:"solution,omitempty"`
	Results         string          `json:"results,omitempty"`
	ImageThumbnail  string          `json:"image_thumbnail"`
	ImageHero       *string         `json:"image_hero,omitempty"`
	Gallery         Gallery         `json:"gallery"`
	TechStack       TechStack       `json:"tech_stack"`
	ExternalURL     string          `json:"external_url,omitempty"`
	GithubURL       string          `json:"github_url,omitempty"`
	Featured        bool            `json:"featured"`
	Category        ProjectCategory `json:"category"`
	SortOrder       int             `json:"sort_order"`
	IsVisible       bool            `json:"is_visible"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// DetailPath returns the public URL path of the project's detail page.
func (p *Project) DetailPath() string {
	return "/project/" + p.Slug + "/"
}

// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"folio/internal/models"
	"folio/internal/store"
)

// API serves the read-only JSON endpoints.
type API struct {
	projectStore *store.ProjectStore
}

// NewAPI creates a new API handler group.
func NewAPI(projectStore *store.ProjectStore) *API {
	return &API{projectStore: projectStore}
}

// projectJSON is the wire shape of one project in the listing endpoint.
// Card fields only; the case-study body stays on the HTML detail page.
type projectJSON struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Slug        string           `json:"slug"`
	Description string           `json:"description"`
	Thumbnail   string           `json:"thumbnail"`
	TechStack   models.TechStack `json:"tech_stack"`
	Category    string           `json:"category"`
	ExternalURL string           `json:"external_url"`
	DetailURL   string           `json:"detail_url"`
	Featured    bool             `json:"featured"`
}

// Projects returns visible projects in display order. Optional tech and
// category query parameters narrow the set, backing the client-side filter
// on the public pages. Unknown categories are dropped, not errors.
func (a *API) Projects(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if !models.ValidProjectCategory(category) {
		category = ""
	}
	tech := r.URL.Query().Get("tech")

	projects, err := a.projectStore.ListVisible(store.Filter{
		Category: category,
		Tech:     tech,
	})
	if err != nil {
		slog.Error("api list projects failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"error": "Internal Server Error",
		})
		return
	}

	out := make([]projectJSON, 0, len(projects))
	for i := range projects {
		p := &projects[i]
		if p.TechStack == nil {
			p.TechStack = models.TechStack{}
		}
		out = append(out, projectJSON{
			ID:          p.ID.String(),
			Title:       p.Title,
			Slug:        p.Slug,
			Description: p.Description,
			Thumbnail:   p.ImageThumbnail,
			TechStack:   p.TechStack,
			Category:    string(p.Category),
			ExternalURL: p.ExternalURL,
			DetailURL:   p.DetailPath(),
			Featured:    p.Featured,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"projects": out,
		"count":    len(out),
	})
}

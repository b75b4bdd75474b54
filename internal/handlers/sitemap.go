// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/xml"
	"log/slog"
	"net/http"

	"folio/internal/store"
)

// Sitemap serves /sitemap.xml: the static routes plus every visible
// project detail page, with lastmod taken from the project's updated_at.
type Sitemap struct {
	projectStore *store.ProjectStore
}

// NewSitemap creates a new Sitemap handler.
func NewSitemap(projectStore *store.ProjectStore) *Sitemap {
	return &Sitemap{projectStore: projectStore}
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// Serve writes the sitemap. URLs are absolute, built from the request
// host so the same binary works behind any domain.
func (s *Sitemap) Serve(w http.ResponseWriter, r *http.Request) {
	base := baseURL(r)

	urls := []sitemapURL{
		{Loc: base + "/"},
		{Loc: base + "/projects/"},
	}

	projects, err := s.projectStore.ListVisible(store.Filter{})
	if err != nil {
		slog.Error("sitemap list projects failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	for i := range projects {
		urls = append(urls, sitemapURL{
			Loc:     base + projects[i].DetailPath(),
			LastMod: projects[i].UpdatedAt.Format("2006-01-02"),
		})
	}

	set := sitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Write([]byte(xml.Header))
	if err := xml.NewEncoder(w).Encode(set); err != nil {
		slog.Error("sitemap encode failed", "error", err)
	}
}

// baseURL reconstructs the external origin from the request, honoring the
// proxy's forwarded protocol header.
func baseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}

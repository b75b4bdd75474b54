// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"folio/internal/cache"
	"folio/internal/models"
)

func TestHomepageRendersAndCaches(t *testing.T) {
	env := newTestEnv(t)
	cleanProjects(t, env.DB, "homepage-showcase")
	t.Cleanup(func() { cleanProjects(t, env.DB, "homepage-showcase") })

	if _, err := env.ProjectStore.Create(&models.Project{
		Title:       "Homepage Showcase",
		Slug:        "homepage-showcase",
		Description: "Appears in the homepage grid.",
		TechStack:   models.TechStack{"Elixir"},
		Category:    models.CategoryBackend,
		IsVisible:   true,
	}); err != nil {
		t.Fatalf("create project: %v", err)
	}
	env.PageCache.InvalidateAll(context.Background())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	env.Public.Homepage(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Get in touch") {
		t.Error("homepage missing contact section")
	}
	if !strings.Contains(body, "/contact/submit/") {
		t.Error("homepage missing contact form action")
	}
	// The showcase lists every visible project with its tech filter chips.
	if !strings.Contains(body, "Homepage Showcase") {
		t.Error("homepage missing visible project in showcase grid")
	}
	if !strings.Contains(body, "/projects/?tech=Elixir") {
		t.Error("homepage missing tech filter link")
	}

	if _, ok := env.PageCache.Get(context.Background(), cache.HomepageKey()); !ok {
		t.Error("homepage was not stored in the page cache")
	}

	// Second request is served from cache and stays identical.
	rec2 := httptest.NewRecorder()
	env.Public.Homepage(rec2, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec2.Body.String() != body {
		t.Error("cached homepage differs from rendered homepage")
	}
}

func TestProjectDetailVisibility(t *testing.T) {
	env := newTestEnv(t)
	env.PageCache.InvalidateAll(context.Background())
	cleanProjects(t, env.DB, "visible-case-study", "hidden-case-study")
	t.Cleanup(func() {
		cleanProjects(t, env.DB, "visible-case-study", "hidden-case-study")
	})

	visible, err := env.ProjectStore.Create(&models.Project{
		Title:       "Visible Case Study",
		Slug:        "visible-case-study",
		Description: "A project everyone can see.",
		TechStack:   models.TechStack{"Go", "PostgreSQL"},
		Category:    models.CategoryBackend,
		IsVisible:   true,
	})
	if err != nil {
		t.Fatalf("create visible project: %v", err)
	}
	if _, err := env.ProjectStore.Create(&models.Project{
		Title:       "Hidden Case Study",
		Slug:        "hidden-case-study",
		Description: "Work in progress.",
		Category:    models.CategoryBackend,
		IsVisible:   false,
	}); err != nil {
		t.Fatalf("create hidden project: %v", err)
	}

	get := func(slug string) *httptest.ResponseRecorder {
		req := withChiURLParam(
			httptest.NewRequest(http.MethodGet, "/project/"+slug+"/", nil),
			"slug", slug)
		rec := httptest.NewRecorder()
		env.Public.ProjectDetail(rec, req)
		return rec
	}

	rec := get("visible-case-study")
	if rec.Code != http.StatusOK {
		t.Fatalf("visible project status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), visible.Title) {
		t.Error("detail page missing project title")
	}

	// Hidden and missing slugs are indistinguishable: both 404.
	if rec := get("hidden-case-study"); rec.Code != http.StatusNotFound {
		t.Errorf("hidden project status = %d, want 404", rec.Code)
	}
	if rec := get("never-existed"); rec.Code != http.StatusNotFound {
		t.Errorf("unknown slug status = %d, want 404", rec.Code)
	}
}

func TestProjectsListFilters(t *testing.T) {
	env := newTestEnv(t)
	env.PageCache.InvalidateAll(context.Background())
	slugs := []string{"filter-alpha", "filter-beta"}
	cleanProjects(t, env.DB, slugs...)
	t.Cleanup(func() { cleanProjects(t, env.DB, slugs...) })

	if _, err := env.ProjectStore.Create(&models.Project{
		Title:       "Filter Alpha",
		Slug:        "filter-alpha",
		Description: "Backend service.",
		TechStack:   models.TechStack{"Go"},
		Category:    models.CategoryBackend,
		IsVisible:   true,
	}); err != nil {
		t.Fatalf("create project: %v", err)
	}
	if _, err := env.ProjectStore.Create(&models.Project{
		Title:       "Filter Beta",
		Slug:        "filter-beta",
		Description: "Frontend app.",
		TechStack:   models.TechStack{"TypeScript"},
		Category:    models.CategoryFrontend,
		IsVisible:   true,
	}); err != nil {
		t.Fatalf("create project: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/projects/?category=backend", nil)
	rec := httptest.NewRecorder()
	env.Public.ProjectsList(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Filter Alpha") {
		t.Error("category filter dropped a matching project")
	}
	if strings.Contains(body, "Filter Beta") {
		t.Error("category filter leaked a non-matching project")
	}

	// An unknown category is ignored rather than erroring.
	rec = httptest.NewRecorder()
	env.Public.ProjectsList(rec,
		httptest.NewRequest(http.MethodGet, "/projects/?category=bogus", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("bogus category status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Filter Beta") {
		t.Error("unknown category should fall back to the unfiltered listing")
	}
}

func TestAPIProjects(t *testing.T) {
	env := newTestEnv(t)
	cleanProjects(t, env.DB, "api-project", "api-other")
	t.Cleanup(func() { cleanProjects(t, env.DB, "api-project", "api-other") })

	if _, err := env.ProjectStore.Create(&models.Project{
		Title:       "API Project",
		Slug:        "api-project",
		Description: "Shows up in the JSON feed.",
		TechStack:   models.TechStack{"Go", "chi"},
		Category:    models.CategoryBackend,
		Featured:    true,
		IsVisible:   true,
	}); err != nil {
		t.Fatalf("create project: %v", err)
	}
	if _, err := env.ProjectStore.Create(&models.Project{
		Title:       "API Other",
		Slug:        "api-other",
		Description: "Filtered out by tech and category.",
		TechStack:   models.TechStack{"Figma"},
		Category:    models.CategoryDesign,
		IsVisible:   true,
	}); err != nil {
		t.Fatalf("create project: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/projects/", nil)
	rec := httptest.NewRecorder()
	env.API.Projects(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var body struct {
		Projects []struct {
			Title     string   `json:"title"`
			Slug      string   `json:"slug"`
			TechStack []string `json:"tech_stack"`
			DetailURL string   `json:"detail_url"`
			Featured  bool     `json:"featured"`
		} `json:"projects"`
		Count int `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Count != len(body.Projects) {
		t.Errorf("count = %d, projects = %d", body.Count, len(body.Projects))
	}

	var found bool
	for _, p := range body.Projects {
		if p.Slug != "api-project" {
			continue
		}
		found = true
		if p.DetailURL != "/project/api-project/" {
			t.Errorf("detail_url = %q", p.DetailURL)
		}
		if len(p.TechStack) != 2 {
			t.Errorf("tech_stack = %v", p.TechStack)
		}
		if !p.Featured {
			t.Error("featured flag lost")
		}
	}
	if !found {
		t.Error("created project missing from API response")
	}
}

func TestAPIProjectsFilters(t *testing.T) {
	env := newTestEnv(t)
	slugs := []string{"api-filter-go", "api-filter-design"}
	cleanProjects(t, env.DB, slugs...)
	t.Cleanup(func() { cleanProjects(t, env.DB, slugs...) })

	if _, err := env.ProjectStore.Create(&models.Project{
		Title:       "API Filter Go",
		Slug:        "api-filter-go",
		Description: "Backend project built in Go.",
		TechStack:   models.TechStack{"Go", "PostgreSQL"},
		Category:    models.CategoryBackend,
		IsVisible:   true,
	}); err != nil {
		t.Fatalf("create project: %v", err)
	}
	if _, err := env.ProjectStore.Create(&models.Project{
		Title:       "API Filter Design",
		Slug:        "api-filter-design",
		Description: "Design work.",
		TechStack:   models.TechStack{"Figma"},
		Category:    models.CategoryDesign,
		IsVisible:   true,
	}); err != nil {
		t.Fatalf("create project: %v", err)
	}

	slugsOf := func(target string) []string {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		env.API.Projects(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: status = %d, want 200", target, rec.Code)
		}
		var body struct {
			Projects []struct {
				Slug string `json:"slug"`
			} `json:"projects"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("%s: decode response: %v", target, err)
		}
		out := make([]string, 0, len(body.Projects))
		for _, p := range body.Projects {
			out = append(out, p.Slug)
		}
		return out
	}

	has := func(list []string, slug string) bool {
		for _, s := range list {
			if s == slug {
				return true
			}
		}
		return false
	}

	got := slugsOf("/api/projects/?category=backend")
	if !has(got, "api-filter-go") || has(got, "api-filter-design") {
		t.Errorf("category filter: got %v", got)
	}

	got = slugsOf("/api/projects/?tech=Figma")
	if !has(got, "api-filter-design") || has(got, "api-filter-go") {
		t.Errorf("tech filter: got %v", got)
	}

	got = slugsOf("/api/projects/?category=backend&tech=Go")
	if !has(got, "api-filter-go") || has(got, "api-filter-design") {
		t.Errorf("combined filters: got %v", got)
	}

	// Unknown categories are dropped, not errors.
	got = slugsOf("/api/projects/?category=bogus")
	if !has(got, "api-filter-go") || !has(got, "api-filter-design") {
		t.Errorf("bogus category should fall back to unfiltered: got %v", got)
	}
}

func TestSitemapListsVisibleProjects(t *testing.T) {
	env := newTestEnv(t)
	cleanProjects(t, env.DB, "sitemap-entry", "sitemap-hidden")
	t.Cleanup(func() { cleanProjects(t, env.DB, "sitemap-entry", "sitemap-hidden") })

	if _, err := env.ProjectStore.Create(&models.Project{
		Title:       "Sitemap Entry",
		Slug:        "sitemap-entry",
		Description: "Indexed.",
		Category:    models.CategoryFullstack,
		IsVisible:   true,
	}); err != nil {
		t.Fatalf("create project: %v", err)
	}
	if _, err := env.ProjectStore.Create(&models.Project{
		Title:       "Sitemap Hidden",
		Slug:        "sitemap-hidden",
		Description: "Not indexed.",
		Category:    models.CategoryFullstack,
		IsVisible:   false,
	}); err != nil {
		t.Fatalf("create project: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "http://folio.test/sitemap.xml", nil)
	rec := httptest.NewRecorder()
	env.Sitemap.Serve(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<loc>http://folio.test/</loc>") {
		t.Error("sitemap missing homepage URL")
	}
	if !strings.Contains(body, "<loc>http://folio.test/projects/</loc>") {
		t.Error("sitemap missing listing URL")
	}
	if !strings.Contains(body, "http://folio.test/project/sitemap-entry/") {
		t.Error("sitemap missing visible project")
	}
	if strings.Contains(body, "sitemap-hidden") {
		t.Error("sitemap leaked a hidden project")
	}
}

// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"folio/internal/cache"
	"folio/internal/models"
	"folio/internal/render"
	"folio/internal/store"
)

// relatedProjectLimit caps the related-projects strip on detail pages.
const relatedProjectLimit = 3

// Public groups handlers for the visitor-facing site. Every page checks
// the Valkey page cache before touching the database, and stores the
// rendered HTML on miss.
type Public struct {
	public           *render.Public
	settingStore     *store.SiteSettingStore
	projectStore     *store.ProjectStore
	skillStore       *store.SkillStore
	testimonialStore *store.TestimonialStore
	timelineStore    *store.TimelineStore
	pageCache        *cache.PageCache
}

// NewPublic creates a new Public handler group.
func NewPublic(public *render.Public, settingStore *store.SiteSettingStore, projectStore *store.ProjectStore, skillStore *store.SkillStore, testimonialStore *store.TestimonialStore, timelineStore *store.TimelineStore, pageCache *cache.PageCache) *Public {
	return &Public{
		public:           public,
		settingStore:     settingStore,
		projectStore:     projectStore,
		skillStore:       skillStore,
		testimonialStore: testimonialStore,
		timelineStore:    timelineStore,
		pageCache:        pageCache,
	}
}

// Homepage renders the single-page portfolio: hero, stats band, featured
// project, project showcase with tech filters, skills matrix, career
// timeline, testimonials and contact form.
func (p *Public) Homepage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if cached, ok := p.pageCache.Get(ctx, cache.HomepageKey()); ok {
		writeHTML(w, cached)
		return
	}

	settings, err := p.settingStore.Get()
	if err != nil {
		slog.Error("load site settings failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	featured, err := p.projectStore.FirstFeatured()
	if err != nil {
		slog.Error("load featured project failed", "error", err)
	}
	projects, err := p.projectStore.ListVisible(store.Filter{})
	if err != nil {
		slog.Error("list projects failed", "error", err)
	}
	techOptions, err := p.projectStore.DistinctTech()
	if err != nil {
		slog.Error("distinct tech failed", "error", err)
	}
	skills, err := p.skillStore.ListVisible()
	if err != nil {
		slog.Error("load skills failed", "error", err)
	}
	timeline, err := p.timelineStore.ListVisible()
	if err != nil {
		slog.Error("load timeline failed", "error", err)
	}
	testimonials, err := p.testimonialStore.ListVisible()
	if err != nil {
		slog.Error("load testimonials failed", "error", err)
	}

	html, err := p.public.Render("index", &render.PublicData{
		Title:    settings.SiteName,
		Settings: settings,
		Data: map[string]any{
			"Featured":     featured,
			"Projects":     projects,
			"TechOptions":  techOptions,
			"SkillGroups":  models.GroupSkills(skills),
			"Timeline":     timeline,
			"Testimonials": testimonials,
		},
	})
	if err != nil {
		slog.Error("render homepage failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	p.pageCache.Set(ctx, cache.HomepageKey(), html)
	writeHTML(w, html)
}

// ProjectsList renders the filterable, paginated project grid. Unknown
// category values are dropped rather than erroring; out-of-range page
// numbers clamp inside the paginator.
func (p *Public) ProjectsList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	category := r.URL.Query().Get("category")
	if !models.ValidProjectCategory(category) {
		category = ""
	}
	tech := r.URL.Query().Get("tech")
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}

	key := cache.ProjectListKey(category, tech, page)
	if cached, ok := p.pageCache.Get(ctx, key); ok {
		writeHTML(w, cached)
		return
	}

	settings, err := p.settingStore.Get()
	if err != nil {
		slog.Error("load site settings failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	projects, err := p.projectStore.ListVisible(store.Filter{
		Category: category,
		Tech:     tech,
	})
	if err != nil {
		slog.Error("list projects failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	techOptions, err := p.projectStore.DistinctTech()
	if err != nil {
		slog.Error("distinct tech failed", "error", err)
	}

	html, err := p.public.Render("projects", &render.PublicData{
		Title:    "Projects · " + settings.SiteName,
		Settings: settings,
		Data: map[string]any{
			"ActiveCategory": category,
			"Categories":     models.ProjectCategories,
			"ActiveTech":     tech,
			"TechOptions":    techOptions,
			"Page":           store.PaginateProjects(projects, page),
			"FilterQuery":    filterQuery(category, tech),
		},
	})
	if err != nil {
		slog.Error("render project list failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	p.pageCache.Set(ctx, key, html)
	writeHTML(w, html)
}

// ProjectDetail renders a single case study. Hidden and unknown slugs both
// get the 404 page so hidden work is indistinguishable from absent work.
func (p *Public) ProjectDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slugParam := chi.URLParam(r, "slug")

	key := cache.ProjectKey(slugParam)
	if cached, ok := p.pageCache.Get(ctx, key); ok {
		writeHTML(w, cached)
		return
	}

	project, err := p.projectStore.FindBySlug(slugParam)
	if err != nil {
		slog.Error("find project failed", "error", err, "slug", slugParam)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if project == nil {
		p.NotFound(w, r)
		return
	}

	related, err := p.projectStore.Related(project, relatedProjectLimit)
	if err != nil {
		slog.Error("related projects failed", "error", err, "slug", slugParam)
	}

	settings, err := p.settingStore.Get()
	if err != nil {
		slog.Error("load site settings failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	html, err := p.public.Render("project_detail", &render.PublicData{
		Title:    project.Title + " · " + settings.SiteName,
		Settings: settings,
		Data: map[string]any{
			"Project": project,
			"Related": related,
		},
	})
	if err != nil {
		slog.Error("render project detail failed", "error", err, "slug", slugParam)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	p.pageCache.Set(ctx, key, html)
	writeHTML(w, html)
}

// NotFound renders the themed 404 page. Never cached.
func (p *Public) NotFound(w http.ResponseWriter, r *http.Request) {
	settings, err := p.settingStore.Get()
	if err != nil {
		http.NotFound(w, r)
		return
	}

	html, err := p.public.Render("404", &render.PublicData{
		Title:    "Not Found · " + settings.SiteName,
		Settings: settings,
	})
	if err != nil {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	w.Write(html)
}

// filterQuery builds the query-string prefix the pager links reuse, e.g.
// "category=backend&tech=Go&" or "" when no filters are active.
func filterQuery(category, tech string) string {
	q := url.Values{}
	if category != "" {
		q.Set("category", category)
	}
	if tech != "" {
		q.Set("tech", tech)
	}
	if len(q) == 0 {
		return ""
	}
	return q.Encode() + "&"
}

func writeHTML(w http.ResponseWriter, html []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(html)
}

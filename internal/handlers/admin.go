// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the portfolio site.
// Handlers are grouped by concern (admin, public, auth, contact, api) and
// receive their dependencies through the handler struct.
package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"folio/internal/cache"
	"folio/internal/models"
	"folio/internal/render"
	"folio/internal/storage"
	"folio/internal/store"
)

// maxUploadBytes bounds multipart form parsing for media uploads.
const maxUploadBytes = 32 << 20

// recentMessageLimit is how many inbox entries the dashboard shows.
const recentMessageLimit = 5

// Admin groups all admin panel HTTP handlers and their dependencies.
type Admin struct {
	renderer         *render.Renderer
	projectStore     *store.ProjectStore
	skillStore       *store.SkillStore
	testimonialStore *store.TestimonialStore
	timelineStore    *store.TimelineStore
	settingStore     *store.SiteSettingStore
	contactStore     *store.ContactStore
	storage          *storage.Client
	pageCache        *cache.PageCache
}

// NewAdmin creates a new Admin handler group. storage may be nil if S3 is
// not configured; image uploads are then silently skipped.
func NewAdmin(renderer *render.Renderer, projectStore *store.ProjectStore, skillStore *store.SkillStore, testimonialStore *store.TestimonialStore, timelineStore *store.TimelineStore, settingStore *store.SiteSettingStore, contactStore *store.ContactStore, storageClient *storage.Client, pageCache *cache.PageCache) *Admin {
	return &Admin{
		renderer:         renderer,
		projectStore:     projectStore,
		skillStore:       skillStore,
		testimonialStore: testimonialStore,
		timelineStore:    timelineStore,
		settingStore:     settingStore,
		contactStore:     contactStore,
		storage:          storageClient,
		pageCache:        pageCache,
	}
}

// Dashboard renders the admin dashboard with content counts and the most
// recent inbox entries.
func (a *Admin) Dashboard(w http.ResponseWriter, r *http.Request) {
	projectCount, _ := a.projectStore.Count()
	skills, _ := a.skillStore.List()
	testimonialCount, _ := a.testimonialStore.Count()
	unreadCount, _ := a.contactStore.CountUnread()

	messages, err := a.contactStore.List()
	if err != nil {
		slog.Error("list messages failed", "error", err)
	}
	if len(messages) > recentMessageLimit {
		messages = messages[:recentMessageLimit]
	}

	a.renderer.Page(w, r, "dashboard", &render.PageData{
		Title:   "Dashboard",
		Section: "dashboard",
		Data: map[string]any{
			"ProjectCount":     projectCount,
			"SkillCount":       len(skills),
			"TestimonialCount": testimonialCount,
			"UnreadCount":      unreadCount,
			"RecentMessages":   messages,
		},
	})
}

// --- Projects CRUD ---

// ProjectsList renders the project management page.
func (a *Admin) ProjectsList(w http.ResponseWriter, r *http.Request) {
	projects, err := a.projectStore.List()
	if err != nil {
		slog.Error("list projects failed", "error", err)
	}

	a.renderer.Page(w, r, "projects_list", &render.PageData{
		Title:   "Projects",
		Section: "projects",
		Data:    map[string]any{"Projects": projects},
	})
}

// ProjectNew renders the new project form.
func (a *Admin) ProjectNew(w http.ResponseWriter, r *http.Request) {
	a.renderProjectForm(w, r, true, &models.Project{IsVisible: true}, nil, "")
}

// ProjectCreate handles the new project form submission.
func (a *Admin) ProjectCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	p := &models.Project{}
	applyProjectForm(r, p)
	skillIDs := parseUUIDList(r.Form["skill_ids"])

	if errMsg := validateProject(p); errMsg != "" {
		a.renderProjectForm(w, r, true, p, skillIDs, errMsg)
		return
	}

	if url, ok := a.uploadFormFile(r, "image_thumbnail", "projects"); ok {
		p.ImageThumbnail = url
	}
	if url, ok := a.uploadFormFile(r, "image_hero", "projects"); ok {
		p.ImageHero = &url
	}

	created, err := a.projectStore.Create(p)
	if err != nil {
		slog.Error("create project failed", "error", err)
		a.renderProjectForm(w, r, true, p, skillIDs, "Failed to create project.")
		return
	}

	if err := a.projectStore.SetSkills(created.ID, skillIDs); err != nil {
		slog.Error("set project skills failed", "error", err, "project", created.ID)
	}

	a.invalidatePages(r.Context())
	http.Redirect(w, r, "/admin/projects", http.StatusSeeOther)
}

// ProjectEdit renders the edit project form.
func (a *Admin) ProjectEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	p, err := a.projectStore.FindByID(id)
	if err != nil || p == nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	linked, err := a.projectStore.SkillIDs(p.ID)
	if err != nil {
		slog.Error("load project skills failed", "error", err, "project", p.ID)
	}

	a.renderProjectForm(w, r, false, p, linked, "")
}

// ProjectUpdate handles the edit project form submission.
func (a *Admin) ProjectUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	p, err := a.projectStore.FindByID(id)
	if err != nil || p == nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	applyProjectForm(r, p)
	skillIDs := parseUUIDList(r.Form["skill_ids"])

	if errMsg := validateProject(p); errMsg != "" {
		a.renderProjectForm(w, r, false, p, skillIDs, errMsg)
		return
	}

	// New uploads replace the stored images; the old objects are removed
	// from the bucket best-effort.
	if url, ok := a.uploadFormFile(r, "image_thumbnail", "projects"); ok {
		a.deleteMedia(r.Context(), p.ImageThumbnail)
		p.ImageThumbnail = url
	}
	if url, ok := a.uploadFormFile(r, "image_hero", "projects"); ok {
		if p.ImageHero != nil {
			a.deleteMedia(r.Context(), *p.ImageHero)
		}
		p.ImageHero = &url
	}

	if err := a.projectStore.Update(p); err != nil {
		slog.Error("update project failed", "error", err, "project", p.ID)
		a.renderProjectForm(w, r, false, p, skillIDs, "Failed to update project.")
		return
	}

	if err := a.projectStore.SetSkills(p.ID, skillIDs); err != nil {
		slog.Error("set project skills failed", "error", err, "project", p.ID)
	}

	a.invalidatePages(r.Context())
	http.Redirect(w, r, "/admin/projects", http.StatusSeeOther)
}

// ProjectDelete removes a project along with its stored images.
func (a *Admin) ProjectDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if p, _ := a.projectStore.FindByID(id); p != nil {
		a.deleteMedia(r.Context(), p.ImageThumbnail)
		if p.ImageHero != nil {
			a.deleteMedia(r.Context(), *p.ImageHero)
		}
		for _, img := range p.Gallery {
			a.deleteMedia(r.Context(), img)
		}
	}

	if err := a.projectStore.Delete(id); err != nil {
		slog.Error("delete project failed", "error", err, "project", id)
	}

	a.invalidatePages(r.Context())
	a.listOrRedirect(w, r, a.ProjectsList, "/admin/projects")
}

// renderProjectForm renders the project form with the skill checkboxes.
func (a *Admin) renderProjectForm(w http.ResponseWriter, r *http.Request, isNew bool, p *models.Project, linkedIDs []uuid.UUID, errMsg string) {
	skills, err := a.skillStore.List()
	if err != nil {
		slog.Error("list skills failed", "error", err)
	}

	linked := make(map[uuid.UUID]bool, len(linkedIDs))
	for _, id := range linkedIDs {
		linked[id] = true
	}

	title := "Edit Project"
	if isNew {
		title = "New Project"
	}

	data := map[string]any{
		"IsNew":        isNew,
		"Project":      p,
		"Categories":   models.ProjectCategories,
		"Skills":       skills,
		"LinkedSkills": linked,
	}
	if errMsg != "" {
		data["Error"] = errMsg
	}

	a.renderer.Page(w, r, "project_form", &render.PageData{
		Title:   title,
		Section: "projects",
		Data:    data,
	})
}

// applyProjectForm copies the submitted form values onto p. Images are
// handled separately since they arrive as file uploads.
func applyProjectForm(r *http.Request, p *models.Project) {
	p.Title = strings.TrimSpace(r.FormValue("title"))
	p.Slug = strings.TrimSpace(r.FormValue("slug"))
	p.Description = strings.TrimSpace(r.FormValue("description"))
	p.LongDescription = r.FormValue("long_description")
	p.Challenge = r.FormValue("challenge")
	p.Solution = r.FormValue("solution")
	p.Results = r.FormValue("results")
	p.TechStack = models.Normalize(strings.Split(r.FormValue("tech_stack"), ","))
	if cat := r.FormValue("category"); models.ValidProjectCategory(cat) {
		p.Category = models.ProjectCategory(cat)
	}
	p.ExternalURL = strings.TrimSpace(r.FormValue("external_url"))
	p.GithubURL = strings.TrimSpace(r.FormValue("github_url"))
	p.SortOrder, _ = strconv.Atoi(r.FormValue("sort_order"))
	p.Featured = r.FormValue("featured") == "1"
	p.IsVisible = r.FormValue("is_visible") == "1"
}

func validateProject(p *models.Project) string {
	if p.Title == "" {
		return "Title is required."
	}
	if p.Description == "" {
		return "Short description is required."
	}
	if p.Category == "" {
		return "Category is required."
	}
	return ""
}

// --- Skills CRUD ---

// SkillsList renders the skill management page grouped by category.
func (a *Admin) SkillsList(w http.ResponseWriter, r *http.Request) {
	skills, err := a.skillStore.List()
	if err != nil {
		slog.Error("list skills failed", "error", err)
	}

	a.renderer.Page(w, r, "skills_list", &render.PageData{
		Title:   "Skills",
		Section: "skills",
		Data:    map[string]any{"Groups": models.GroupSkills(skills)},
	})
}

// SkillNew renders the new skill form.
func (a *Admin) SkillNew(w http.ResponseWriter, r *http.Request) {
	a.renderSkillForm(w, r, true, &models.Skill{IsVisible: true}, "")
}

// SkillCreate handles the new skill form submission.
func (a *Admin) SkillCreate(w http.ResponseWriter, r *http.Request) {
	s := &models.Skill{}
	applySkillForm(r, s)

	if errMsg := validateSkill(s); errMsg != "" {
		a.renderSkillForm(w, r, true, s, errMsg)
		return
	}

	if _, err := a.skillStore.Create(s); err != nil {
		slog.Error("create skill failed", "error", err)
		a.renderSkillForm(w, r, true, s, "Failed to create skill.")
		return
	}

	a.invalidatePages(r.Context())
	http.Redirect(w, r, "/admin/skills", http.StatusSeeOther)
}

// SkillEdit renders the edit skill form.
func (a *Admin) SkillEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	s, err := a.skillStore.FindByID(id)
	if err != nil || s == nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	a.renderSkillForm(w, r, false, s, "")
}

// SkillUpdate handles the edit skill form submission.
func (a *Admin) SkillUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	s, err := a.skillStore.FindByID(id)
	if err != nil || s == nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	applySkillForm(r, s)

	if errMsg := validateSkill(s); errMsg != "" {
		a.renderSkillForm(w, r, false, s, errMsg)
		return
	}

	if err := a.skillStore.Update(s); err != nil {
		slog.Error("update skill failed", "error", err, "skill", s.ID)
		a.renderSkillForm(w, r, false, s, "Failed to update skill.")
		return
	}

	a.invalidatePages(r.Context())
	http.Redirect(w, r, "/admin/skills", http.StatusSeeOther)
}

// SkillDelete removes a skill and its project links.
func (a *Admin) SkillDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := a.skillStore.Delete(id); err != nil {
		slog.Error("delete skill failed", "error", err, "skill", id)
	}

	a.invalidatePages(r.Context())
	a.listOrRedirect(w, r, a.SkillsList, "/admin/skills")
}

func (a *Admin) renderSkillForm(w http.ResponseWriter, r *http.Request, isNew bool, s *models.Skill, errMsg string) {
	title := "Edit Skill"
	if isNew {
		title = "New Skill"
	}

	data := map[string]any{
		"IsNew":      isNew,
		"Skill":      s,
		"Categories": models.SkillCategories,
	}
	if errMsg != "" {
		data["Error"] = errMsg
	}

	a.renderer.Page(w, r, "skill_form", &render.PageData{
		Title:   title,
		Section: "skills",
		Data:    data,
	})
}

func applySkillForm(r *http.Request, s *models.Skill) {
	s.Name = strings.TrimSpace(r.FormValue("name"))
	if cat := r.FormValue("category"); models.ValidSkillCategory(cat) {
		s.Category = models.SkillCategory(cat)
	}
	s.Icon = strings.TrimSpace(r.FormValue("icon"))
	s.Proficiency = clamp(atoi(r.FormValue("proficiency")), 0, 100)
	s.YearsExperience = atoi(r.FormValue("years_experience"))
	s.SortOrder = atoi(r.FormValue("sort_order"))
	s.IsVisible = r.FormValue("is_visible") == "1"
}

func validateSkill(s *models.Skill) string {
	if s.Name == "" {
		return "Name is required."
	}
	if s.Category == "" {
		return "Category is required."
	}
	return ""
}

// --- Testimonials CRUD ---

// TestimonialsList renders the testimonial management page.
func (a *Admin) TestimonialsList(w http.ResponseWriter, r *http.Request) {
	items, err := a.testimonialStore.List()
	if err != nil {
		slog.Error("list testimonials failed", "error", err)
	}

	a.renderer.Page(w, r, "testimonials_list", &render.PageData{
		Title:   "Testimonials",
		Section: "testimonials",
		Data:    map[string]any{"Testimonials": items},
	})
}

// TestimonialNew renders the new testimonial form.
func (a *Admin) TestimonialNew(w http.ResponseWriter, r *http.Request) {
	a.renderTestimonialForm(w, r, true, &models.Testimonial{IsVisible: true}, "")
}

// TestimonialCreate handles the new testimonial form submission.
func (a *Admin) TestimonialCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	t := &models.Testimonial{}
	applyTestimonialForm(r, t)

	if errMsg := validateTestimonial(t); errMsg != "" {
		a.renderTestimonialForm(w, r, true, t, errMsg)
		return
	}

	if url, ok := a.uploadFormFile(r, "photo", "testimonials"); ok {
		t.Photo = &url
	}

	if _, err := a.testimonialStore.Create(t); err != nil {
		slog.Error("create testimonial failed", "error", err)
		a.renderTestimonialForm(w, r, true, t, "Failed to create testimonial.")
		return
	}

	a.invalidatePages(r.Context())
	http.Redirect(w, r, "/admin/testimonials", http.StatusSeeOther)
}

// TestimonialEdit renders the edit testimonial form.
func (a *Admin) TestimonialEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	t, err := a.testimonialStore.FindByID(id)
	if err != nil || t == nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	a.renderTestimonialForm(w, r, false, t, "")
}

// TestimonialUpdate handles the edit testimonial form submission.
func (a *Admin) TestimonialUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	t, err := a.testimonialStore.FindByID(id)
	if err != nil || t == nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	applyTestimonialForm(r, t)

	if errMsg := validateTestimonial(t); errMsg != "" {
		a.renderTestimonialForm(w, r, false, t, errMsg)
		return
	}

	if url, ok := a.uploadFormFile(r, "photo", "testimonials"); ok {
		if t.Photo != nil {
			a.deleteMedia(r.Context(), *t.Photo)
		}
		t.Photo = &url
	}

	if err := a.testimonialStore.Update(t); err != nil {
		slog.Error("update testimonial failed", "error", err, "testimonial", t.ID)
		a.renderTestimonialForm(w, r, false, t, "Failed to update testimonial.")
		return
	}

	a.invalidatePages(r.Context())
	http.Redirect(w, r, "/admin/testimonials", http.StatusSeeOther)
}

// TestimonialDelete removes a testimonial and its stored photo.
func (a *Admin) TestimonialDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if t, _ := a.testimonialStore.FindByID(id); t != nil && t.Photo != nil {
		a.deleteMedia(r.Context(), *t.Photo)
	}

	if err := a.testimonialStore.Delete(id); err != nil {
		slog.Error("delete testimonial failed", "error", err, "testimonial", id)
	}

	a.invalidatePages(r.Context())
	a.listOrRedirect(w, r, a.TestimonialsList, "/admin/testimonials")
}

func (a *Admin) renderTestimonialForm(w http.ResponseWriter, r *http.Request, isNew bool, t *models.Testimonial, errMsg string) {
	projects, err := a.projectStore.List()
	if err != nil {
		slog.Error("list projects failed", "error", err)
	}

	title := "Edit Testimonial"
	if isNew {
		title = "New Testimonial"
	}

	data := map[string]any{
		"IsNew":       isNew,
		"Testimonial": t,
		"Projects":    projects,
	}
	if errMsg != "" {
		data["Error"] = errMsg
	}

	a.renderer.Page(w, r, "testimonial_form", &render.PageData{
		Title:   title,
		Section: "testimonials",
		Data:    data,
	})
}

func applyTestimonialForm(r *http.Request, t *models.Testimonial) {
	t.Name = strings.TrimSpace(r.FormValue("name"))
	t.Role = strings.TrimSpace(r.FormValue("role"))
	t.Quote = strings.TrimSpace(r.FormValue("quote"))
	if id, err := uuid.Parse(r.FormValue("project_id")); err == nil {
		t.ProjectID = &id
	} else {
		t.ProjectID = nil
	}
	t.SortOrder = atoi(r.FormValue("sort_order"))
	t.IsVisible = r.FormValue("is_visible") == "1"
}

func validateTestimonial(t *models.Testimonial) string {
	if t.Name == "" {
		return "Name is required."
	}
	if t.Quote == "" {
		return "Quote is required."
	}
	return ""
}

// --- Timeline CRUD ---

// TimelineList renders the career-timeline management page.
func (a *Admin) TimelineList(w http.ResponseWriter, r *http.Request) {
	events, err := a.timelineStore.List()
	if err != nil {
		slog.Error("list timeline events failed", "error", err)
	}

	a.renderer.Page(w, r, "timeline_list", &render.PageData{
		Title:   "Timeline",
		Section: "timeline",
		Data:    map[string]any{"Events": events},
	})
}

// TimelineNew renders the new timeline event form.
func (a *Admin) TimelineNew(w http.ResponseWriter, r *http.Request) {
	a.renderTimelineForm(w, r, true, &models.TimelineEvent{IsVisible: true}, "")
}

// TimelineCreate handles the new timeline event form submission.
func (a *Admin) TimelineCreate(w http.ResponseWriter, r *http.Request) {
	e := &models.TimelineEvent{}
	applyTimelineForm(r, e)

	if errMsg := validateTimelineEvent(e); errMsg != "" {
		a.renderTimelineForm(w, r, true, e, errMsg)
		return
	}

	if _, err := a.timelineStore.Create(e); err != nil {
		slog.Error("create timeline event failed", "error", err)
		a.renderTimelineForm(w, r, true, e, "Failed to create event.")
		return
	}

	a.invalidatePages(r.Context())
	http.Redirect(w, r, "/admin/timeline", http.StatusSeeOther)
}

// TimelineEdit renders the edit timeline event form.
func (a *Admin) TimelineEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	e, err := a.timelineStore.FindByID(id)
	if err != nil || e == nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	a.renderTimelineForm(w, r, false, e, "")
}

// TimelineUpdate handles the edit timeline event form submission.
func (a *Admin) TimelineUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	e, err := a.timelineStore.FindByID(id)
	if err != nil || e == nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	applyTimelineForm(r, e)

	if errMsg := validateTimelineEvent(e); errMsg != "" {
		a.renderTimelineForm(w, r, false, e, errMsg)
		return
	}

	if err := a.timelineStore.Update(e); err != nil {
		slog.Error("update timeline event failed", "error", err, "event", e.ID)
		a.renderTimelineForm(w, r, false, e, "Failed to update event.")
		return
	}

	a.invalidatePages(r.Context())
	http.Redirect(w, r, "/admin/timeline", http.StatusSeeOther)
}

// TimelineDelete removes a timeline event.
func (a *Admin) TimelineDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := a.timelineStore.Delete(id); err != nil {
		slog.Error("delete timeline event failed", "error", err, "event", id)
	}

	a.invalidatePages(r.Context())
	a.listOrRedirect(w, r, a.TimelineList, "/admin/timeline")
}

func (a *Admin) renderTimelineForm(w http.ResponseWriter, r *http.Request, isNew bool, e *models.TimelineEvent, errMsg string) {
	title := "Edit Timeline Event"
	if isNew {
		title = "New Timeline Event"
	}

	data := map[string]any{
		"IsNew": isNew,
		"Event": e,
	}
	if errMsg != "" {
		data["Error"] = errMsg
	}

	a.renderer.Page(w, r, "timeline_form", &render.PageData{
		Title:   title,
		Section: "timeline",
		Data:    data,
	})
}

func applyTimelineForm(r *http.Request, e *models.TimelineEvent) {
	e.Year = strings.TrimSpace(r.FormValue("year"))
	e.Title = strings.TrimSpace(r.FormValue("title"))
	e.Description = strings.TrimSpace(r.FormValue("description"))
	e.TechStack = models.Normalize(strings.Split(r.FormValue("tech_stack"), ","))
	e.Icon = strings.TrimSpace(r.FormValue("icon"))
	e.Color = strings.TrimSpace(r.FormValue("color"))
	e.SortOrder = atoi(r.FormValue("sort_order"))
	e.IsVisible = r.FormValue("is_visible") == "1"
}

func validateTimelineEvent(e *models.TimelineEvent) string {
	if e.Year == "" {
		return "Year is required."
	}
	if e.Title == "" {
		return "Title is required."
	}
	return ""
}

// --- Site settings ---

// SettingsPage renders the site settings form.
func (a *Admin) SettingsPage(w http.ResponseWriter, r *http.Request) {
	settings, err := a.settingStore.Get()
	if err != nil {
		slog.Error("load site settings failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	a.renderer.Page(w, r, "settings_form", &render.PageData{
		Title:   "Site Settings",
		Section: "settings",
		Data:    map[string]any{"Settings": settings},
	})
}

// SettingsUpdate handles the settings form submission.
func (a *Admin) SettingsUpdate(w http.ResponseWriter, r *http.Request) {
	settings, err := a.settingStore.Get()
	if err != nil {
		slog.Error("load site settings failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	settings.SiteName = strings.TrimSpace(r.FormValue("site_name"))
	settings.Tagline = strings.TrimSpace(r.FormValue("tagline"))
	settings.HeroTitle = strings.TrimSpace(r.FormValue("hero_title"))
	settings.HeroSubtitle = strings.TrimSpace(r.FormValue("hero_subtitle"))
	settings.AboutText = r.FormValue("about_text")
	settings.Email = strings.TrimSpace(r.FormValue("email"))
	settings.Phone = strings.TrimSpace(r.FormValue("phone"))
	settings.Location = strings.TrimSpace(r.FormValue("location"))
	settings.GithubURL = strings.TrimSpace(r.FormValue("github_url"))
	settings.LinkedinURL = strings.TrimSpace(r.FormValue("linkedin_url"))
	settings.TwitterURL = strings.TrimSpace(r.FormValue("twitter_url"))
	settings.ProjectsCompleted = atoi(r.FormValue("projects_completed"))
	settings.SitesLive = atoi(r.FormValue("sites_live"))
	settings.YearsExperience = atoi(r.FormValue("years_experience"))
	settings.HappyClients = atoi(r.FormValue("happy_clients"))

	if settings.SiteName == "" {
		a.renderer.Page(w, r, "settings_form", &render.PageData{
			Title:   "Site Settings",
			Section: "settings",
			Data: map[string]any{
				"Settings": settings,
				"Error":    "Site name is required.",
			},
		})
		return
	}

	if url, ok := a.uploadFormFile(r, "profile_image", "settings"); ok {
		if settings.ProfileImage != nil {
			a.deleteMedia(r.Context(), *settings.ProfileImage)
		}
		settings.ProfileImage = &url
	}
	if url, ok := a.uploadFormFile(r, "cv_file", "settings"); ok {
		if settings.CVFile != nil {
			a.deleteMedia(r.Context(), *settings.CVFile)
		}
		settings.CVFile = &url
	}

	if err := a.settingStore.Update(settings); err != nil {
		slog.Error("update site settings failed", "error", err)
		a.renderer.Page(w, r, "settings_form", &render.PageData{
			Title:   "Site Settings",
			Section: "settings",
			Data: map[string]any{
				"Settings": settings,
				"Error":    "Failed to save settings.",
			},
		})
		return
	}

	a.invalidatePages(r.Context())
	http.Redirect(w, r, "/admin/settings", http.StatusSeeOther)
}

// --- Inbox ---

// MessagesList renders the contact inbox, newest first.
func (a *Admin) MessagesList(w http.ResponseWriter, r *http.Request) {
	messages, err := a.contactStore.List()
	if err != nil {
		slog.Error("list messages failed", "error", err)
	}
	unread, _ := a.contactStore.CountUnread()

	a.renderer.Page(w, r, "messages_list", &render.PageData{
		Title:   "Inbox",
		Section: "messages",
		Data: map[string]any{
			"Messages":    messages,
			"UnreadCount": unread,
		},
	})
}

// MessageDetail renders a single message, marking it read on first view.
func (a *Admin) MessageDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	msg, err := a.contactStore.FindByID(id)
	if err != nil || msg == nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	if !msg.IsRead {
		if err := a.contactStore.MarkRead(msg.ID); err != nil {
			slog.Error("mark message read failed", "error", err, "message", msg.ID)
		} else {
			msg.IsRead = true
		}
	}

	a.renderer.Page(w, r, "message_detail", &render.PageData{
		Title:   "Message",
		Section: "messages",
		Data:    map[string]any{"Message": msg},
	})
}

// --- Shared helpers ---

// invalidatePages drops the whole public page cache. Every admin write
// goes through here since the homepage, the grid and the detail pages all
// embed shared content.
func (a *Admin) invalidatePages(ctx context.Context) {
	a.pageCache.InvalidateAll(ctx)
}

// listOrRedirect re-renders the list partial for HTMX deletes (which
// target #main-content) and falls back to a redirect otherwise.
func (a *Admin) listOrRedirect(w http.ResponseWriter, r *http.Request, list http.HandlerFunc, target string) {
	if r.Header.Get("HX-Request") == "true" {
		list(w, r)
		return
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// uploadFormFile stores an uploaded file under prefix and returns its
// public URL. Returns false when no file was submitted, storage is not
// configured, or the upload failed.
func (a *Admin) uploadFormFile(r *http.Request, field, prefix string) (string, bool) {
	if a.storage == nil {
		return "", false
	}

	file, header, err := r.FormFile(field)
	if err != nil {
		return "", false
	}
	defer file.Close()

	key := prefix + "/" + uuid.NewString() + strings.ToLower(filepath.Ext(header.Filename))
	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if err := a.storage.Upload(r.Context(), key, contentType, file, header.Size); err != nil {
		slog.Error("media upload failed", "field", field, "key", key, "error", err)
		return "", false
	}

	slog.Info("media uploaded", "key", key, "size", header.Size)
	return a.storage.FileURL(key), true
}

// deleteMedia best-effort removes a stored object by its public URL.
// URLs outside the configured bucket are left alone.
func (a *Admin) deleteMedia(ctx context.Context, rawURL string) {
	if a.storage == nil || rawURL == "" {
		return
	}
	key, ok := a.storage.ExtractKey(rawURL)
	if !ok {
		return
	}
	if err := a.storage.Delete(ctx, key); err != nil {
		slog.Warn("media delete failed", "key", key, "error", err)
	}
}

// parseID extracts and parses the {id} URL parameter, writing a 400 on
// failure.
func parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

func parseUUIDList(values []string) []uuid.UUID {
	var ids []uuid.UUID
	for _, v := range values {
		if id, err := uuid.Parse(v); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// portfolio site. It organizes routes into public and admin groups with
// appropriate middleware stacks.
package router

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"folio/internal/handlers"
	"folio/internal/middleware"
	"folio/internal/session"
	"folio/web"
)

// Rate limits for the anonymous write endpoints. Both are per client IP.
const (
	contactLimit  = 5
	contactWindow = time.Minute
	loginLimit    = 10
	loginWindow   = time.Minute
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. secure marks CSRF cookies HTTPS-only.
func New(
	sessionStore *session.Store,
	secure bool,
	admin *handlers.Admin,
	auth *handlers.Auth,
	public *handlers.Public,
	contact *handlers.Contact,
	api *handlers.API,
	sitemap *handlers.Sitemap,
) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.LoadSession(sessionStore))

	// Health check. No auth, no CSRF.
	r.Get("/health", healthHandler)

	// Static assets embedded in the binary.
	staticFS, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		panic("static assets missing from binary: " + err.Error())
	}
	r.Handle("/static/*", http.StripPrefix("/static/",
		http.FileServer(http.FS(staticFS))))

	// Admin routes. CSRF protection covers every form in the panel.
	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.NewCSRF(secure))

		loginLimiter := middleware.NewRateLimiter(loginLimit, loginWindow)

		// Auth pages, accessible without a session.
		r.Get("/login", auth.LoginPage)
		r.With(loginLimiter.Middleware).Post("/login", auth.LoginSubmit)
		r.Post("/logout", auth.Logout)

		// 2FA requires a session but NOT completed 2FA. The setup form
		// posts its first code back to /2fa/setup.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Get("/2fa/setup", auth.TwoFASetupPage)
			r.Post("/2fa/setup", auth.TwoFAVerifySubmit)
			r.Get("/2fa/verify", auth.TwoFAVerifyPage)
			r.Post("/2fa/verify", auth.TwoFAVerifySubmit)
		})

		// Authenticated + 2FA-verified admin area.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Use(middleware.Require2FA)

			r.Get("/", admin.Dashboard)

			r.Route("/projects", func(r chi.Router) {
				r.Get("/", admin.ProjectsList)
				r.Get("/new", admin.ProjectNew)
				r.Post("/", admin.ProjectCreate)
				r.Get("/{id}", admin.ProjectEdit)
				r.Post("/{id}", admin.ProjectUpdate)
				r.Delete("/{id}", admin.ProjectDelete)
			})

			r.Route("/skills", func(r chi.Router) {
				r.Get("/", admin.SkillsList)
				r.Get("/new", admin.SkillNew)
				r.Post("/", admin.SkillCreate)
				r.Get("/{id}", admin.SkillEdit)
				r.Post("/{id}", admin.SkillUpdate)
				r.Delete("/{id}", admin.SkillDelete)
			})

			r.Route("/testimonials", func(r chi.Router) {
				r.Get("/", admin.TestimonialsList)
				r.Get("/new", admin.TestimonialNew)
				r.Post("/", admin.TestimonialCreate)
				r.Get("/{id}", admin.TestimonialEdit)
				r.Post("/{id}", admin.TestimonialUpdate)
				r.Delete("/{id}", admin.TestimonialDelete)
			})

			r.Route("/timeline", func(r chi.Router) {
				r.Get("/", admin.TimelineList)
				r.Get("/new", admin.TimelineNew)
				r.Post("/", admin.TimelineCreate)
				r.Get("/{id}", admin.TimelineEdit)
				r.Post("/{id}", admin.TimelineUpdate)
				r.Delete("/{id}", admin.TimelineDelete)
			})

			r.Route("/messages", func(r chi.Router) {
				r.Get("/", admin.MessagesList)
				r.Get("/{id}", admin.MessageDetail)
			})

			r.Get("/settings", admin.SettingsPage)
			r.Post("/settings", admin.SettingsUpdate)
		})
	})

	// Public site. Detail and listing URLs keep their trailing slash, the
	// bare forms resolve to the same handlers.
	r.Get("/", public.Homepage)
	r.Get("/projects", public.ProjectsList)
	r.Get("/projects/", public.ProjectsList)
	r.Get("/project/{slug}", public.ProjectDetail)
	r.Get("/project/{slug}/", public.ProjectDetail)

	contactLimiter := middleware.NewRateLimiter(contactLimit, contactWindow)
	r.With(contactLimiter.Middleware).Post("/contact/submit/", contact.Submit)

	r.Get("/api/projects/", api.Projects)
	r.Get("/sitemap.xml", sitemap.Serve)

	r.NotFound(public.NotFound)

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

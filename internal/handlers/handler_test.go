// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler
// integration tests. Tests are skipped when PostgreSQL or Valkey are
// unavailable.
package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

	"folio/internal/cache"
	"folio/internal/database"
	"folio/internal/middleware"
	"folio/internal/render"
	"folio/internal/session"
	"folio/internal/store"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test PostgreSQL and runs migrations.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "folio")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "folio")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testValkeyClient returns a Redis client for handler tests on DB 15.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		for _, pattern := range []string{"session:*", "page:*"} {
			keys, _ := client.Keys(ctx, pattern).Result()
			if len(keys) > 0 {
				client.Del(ctx, keys...)
			}
		}
		client.Close()
	})

	return client
}

// testEnv holds all dependencies for handler integration tests.
type testEnv struct {
	DB               *sql.DB
	Valkey           *redis.Client
	Renderer         *render.Renderer
	PublicRenderer   *render.Public
	Sessions         *session.Store
	ProjectStore     *store.ProjectStore
	SkillStore       *store.SkillStore
	TestimonialStore *store.TestimonialStore
	TimelineStore    *store.TimelineStore
	SettingStore     *store.SiteSettingStore
	ContactStore     *store.ContactStore
	UserStore        *store.UserStore
	PageCache        *cache.PageCache
	Admin            *Admin
	Auth             *Auth
	Public           *Public
	Contact          *Contact
	API              *API
	Sitemap          *Sitemap
}

// newTestEnv creates a complete test environment with all handler dependencies.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testDB(t)
	vk := testValkeyClient(t)

	renderer, err := render.New(true)
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}
	publicRenderer, err := render.NewPublic(true)
	if err != nil {
		t.Fatalf("render.NewPublic: %v", err)
	}

	sessions := session.NewStore(vk, false)
	projectStore := store.NewProjectStore(db)
	skillStore := store.NewSkillStore(db)
	testimonialStore := store.NewTestimonialStore(db)
	timelineStore := store.NewTimelineStore(db)
	settingStore := store.NewSiteSettingStore(db)
	contactStore := store.NewContactStore(db)
	userStore := store.NewUserStore(db)
	pageCache := cache.NewPageCache(vk, 1*time.Minute)

	admin := NewAdmin(renderer, projectStore, skillStore, testimonialStore,
		timelineStore, settingStore, contactStore, nil, pageCache)
	auth := NewAuth(renderer, sessions, userStore)
	public := NewPublic(publicRenderer, settingStore, projectStore, skillStore,
		testimonialStore, timelineStore, pageCache)
	contact := NewContact(contactStore, nil)
	api := NewAPI(projectStore)
	sitemap := NewSitemap(projectStore)

	return &testEnv{
		DB:               db,
		Valkey:           vk,
		Renderer:         renderer,
		PublicRenderer:   publicRenderer,
		Sessions:         sessions,
		ProjectStore:     projectStore,
		SkillStore:       skillStore,
		TestimonialStore: testimonialStore,
		TimelineStore:    timelineStore,
		SettingStore:     settingStore,
		ContactStore:     contactStore,
		UserStore:        userStore,
		PageCache:        pageCache,
		Admin:            admin,
		Auth:             auth,
		Public:           public,
		Contact:          contact,
		API:              api,
		Sitemap:          sitemap,
	}
}

// ctxWithSession adds session data to a context using the middleware key.
func ctxWithSession(ctx context.Context, data *session.Data) context.Context {
	return context.WithValue(ctx, middleware.SessionKey, data)
}

// testSession creates a session.Data for testing.
func testSession(userID uuid.UUID, email string, twoFADone bool) *session.Data {
	return &session.Data{
		UserID:      userID,
		Email:       email,
		DisplayName: "Test Operator",
		TwoFADone:   twoFADone,
	}
}

// withChiURLParam adds a chi URL parameter to a request.
func withChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// cleanProjects removes test projects by slug.
func cleanProjects(t *testing.T, db *sql.DB, slugs ...string) {
	t.Helper()
	for _, s := range slugs {
		db.Exec("DELETE FROM projects WHERE slug = $1", s)
	}
}

// cleanSkills removes test skills by name.
func cleanSkills(t *testing.T, db *sql.DB, names ...string) {
	t.Helper()
	for _, n := range names {
		db.Exec("DELETE FROM skills WHERE name = $1", n)
	}
}

// cleanMessages removes test contact messages by email.
func cleanMessages(t *testing.T, db *sql.DB, emails ...string) {
	t.Helper()
	for _, e := range emails {
		db.Exec("DELETE FROM contact_messages WHERE email = $1", e)
	}
}

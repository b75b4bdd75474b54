// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store contains the database access layer. Each entity gets its
// own store struct over *sql.DB; all queries are plain SQL through the
// pgx stdlib driver.
package store

import (
	"database/sql"
	"fmt"
	"sort"
	"strconv"

	"github.com/google/uuid"

	"folio/internal/models"
	"folio/internal/slug"
)

// projectColumns is the SELECT list shared by all project queries,
// matched by scanProject.
const projectColumns = `
	id, title, slug, description, long_description, challenge, solution,
	results, image_thumbnail, image_hero, gallery, tech_stack, external_url,
	github_url, featured, category, sort_order, is_visible, created_at, updated_at`

// ProjectStore handles all project-related database operations.
type ProjectStore struct {
	db *sql.DB
}

// NewProjectStore creates a new ProjectStore with the given database connection.
func NewProjectStore(db *sql.DB) *ProjectStore {
	return &ProjectStore{db: db}
}

// Filter narrows the visible-project listing. Zero values mean "no filter".
// Tech matches against the normalized tech list, exact token membership.
type Filter struct {
	Category string
	Tech     string
}

// ListVisible returns visible projects matching the filter, ordered by
// (sort_order ascending, created_at descending). The category filter runs
// in SQL; the tech filter runs over the normalized tech list because the
// stored column may still hold the legacy string shape.
func (s *ProjectStore) ListVisible(f Filter) ([]models.Project, error) {
	query := `SELECT` + projectColumns + `
		FROM projects
		WHERE is_visible = TRUE`
	var args []any
	if f.Category != "" {
		args = append(args, f.Category)
		query += ` AND category = $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY sort_order ASC, created_at DESC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list visible projects: %w", err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		if f.Tech != "" && !p.TechStack.Contains(f.Tech) {
			continue
		}
		projects = append(projects, *p)
	}
	return projects, rows.Err()
}

// List returns every project, visible or not, for the admin panel.
func (s *ProjectStore) List() ([]models.Project, error) {
	rows, err := s.db.Query(`SELECT` + projectColumns + `
		FROM projects
		ORDER BY sort_order ASC, created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *p)
	}
	return projects, rows.Err()
}

// FirstFeatured returns the first visible featured project in display
// order, or nil if there is none.
func (s *ProjectStore) FirstFeatured() (*models.Project, error) {
	row := s.db.QueryRow(`SELECT` + projectColumns + `
		FROM projects
		WHERE featured = TRUE AND is_visible = TRUE
		ORDER BY sort_order ASC, created_at DESC
		LIMIT 1`)

	p, err := scanProject(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("first featured project: %w", err)
	}
	return p, nil
}

// FindBySlug retrieves a visible project by its slug. Returns nil if not
// found or hidden; hidden projects are invisible to the public site.
func (s *ProjectStore) FindBySlug(slugParam string) (*models.Project, error) {
	row := s.db.QueryRow(`SELECT`+projectColumns+`
		FROM projects WHERE slug = $1 AND is_visible = TRUE`, slugParam)

	p, err := scanProject(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find project by slug: %w", err)
	}
	return p, nil
}

// FindByID retrieves a project by its UUID regardless of visibility.
// Returns nil if not found. Used by the admin panel.
func (s *ProjectStore) FindByID(id uuid.UUID) (*models.Project, error) {
	row := s.db.QueryRow(`SELECT`+projectColumns+`
		FROM projects WHERE id = $1`, id)

	p, err := scanProject(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find project by id: %w", err)
	}
	return p, nil
}

// Related returns up to limit visible projects in the same category as p,
// excluding p itself, in display order.
func (s *ProjectStore) Related(p *models.Project, limit int) ([]models.Project, error) {
	rows, err := s.db.Query(`SELECT`+projectColumns+`
		FROM projects
		WHERE category = $1 AND is_visible = TRUE AND id <> $2
		ORDER BY sort_order ASC, created_at DESC
		LIMIT $3`, p.Category, p.ID, limit)
	if err != nil {
		return nil, fmt.Errorf("related projects: %w", err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		rp, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *rp)
	}
	return projects, rows.Err()
}

// DistinctTech returns the sorted set of technology names used across all
// visible projects. Feeds the filter options of the listing UI, computed
// over the unfiltered visible set so the options stay stable.
func (s *ProjectStore) DistinctTech() ([]string, error) {
	projects, err := s.ListVisible(Filter{})
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var tech []string
	for _, p := range projects {
		for _, t := range p.TechStack {
			if !seen[t] {
				seen[t] = true
				tech = append(tech, t)
			}
		}
	}
	sort.Strings(tech)
	return tech, nil
}

// Create inserts a new project and returns it with generated fields. If
// the slug is empty it is derived from the title and disambiguated with a
// numeric suffix on collision.
func (s *ProjectStore) Create(p *models.Project) (*models.Project, error) {
	uniqueSlug, err := s.uniqueSlug(p.Slug, p.Title, uuid.Nil)
	if err != nil {
		return nil, err
	}

	row := s.db.QueryRow(`
		INSERT INTO projects (title, slug, description, long_description,
		                      challenge, solution, results, image_thumbnail,
		                      image_hero, gallery, tech_stack, external_url,
		                      github_url, featured, category, sort_order, is_visible)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING`+projectColumns,
		p.Title, uniqueSlug, p.Description, p.LongDescription,
		p.Challenge, p.Solution, p.Results, p.ImageThumbnail,
		p.ImageHero, p.Gallery, p.TechStack, p.ExternalURL,
		p.GithubURL, p.Featured, p.Category, p.SortOrder, p.IsVisible,
	)

	created, err := scanProject(row)
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return created, nil
}

// Update modifies an existing project. An emptied slug is re-derived from
// the title; the probe excludes the project's own row so saving without a
// title change keeps the slug stable.
func (s *ProjectStore) Update(p *models.Project) error {
	uniqueSlug, err := s.uniqueSlug(p.Slug, p.Title, p.ID)
	if err != nil {
		return err
	}
	p.Slug = uniqueSlug

	_, err = s.db.Exec(`
		UPDATE projects SET
			title = $1, slug = $2, description = $3, long_description = $4,
			challenge = $5, solution = $6, results = $7, image_thumbnail = $8,
			image_hero = $9, gallery = $10, tech_stack = $11, external_url = $12,
			github_url = $13, featured = $14, category = $15, sort_order = $16,
			is_visible = $17, updated_at = NOW()
		WHERE id = $18`,
		p.Title, p.Slug, p.Description, p.LongDescription,
		p.Challenge, p.Solution, p.Results, p.ImageThumbnail,
		p.ImageHero, p.Gallery, p.TechStack, p.ExternalURL,
		p.GithubURL, p.Featured, p.Category, p.SortOrder,
		p.IsVisible, p.ID,
	)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	return nil
}

// Delete removes a project by ID. Testimonial references are cleared and
// skill join rows removed by the schema's ON DELETE actions.
func (s *ProjectStore) Delete(id uuid.UUID) error {
	if _, err := s.db.Exec(`DELETE FROM projects WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}

// Count returns the total number of projects.
func (s *ProjectStore) Count() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM projects`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count projects: %w", err)
	}
	return count, nil
}

// SetSkills replaces the project's skill associations with the given set.
func (s *ProjectStore) SetSkills(projectID uuid.UUID, skillIDs []uuid.UUID) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("set skills: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM project_skills WHERE project_id = $1`, projectID); err != nil {
		return fmt.Errorf("set skills clear: %w", err)
	}
	for _, skillID := range skillIDs {
		if _, err := tx.Exec(`
			INSERT INTO project_skills (project_id, skill_id)
			VALUES ($1, $2) ON CONFLICT DO NOTHING`, projectID, skillID); err != nil {
			return fmt.Errorf("set skills insert: %w", err)
		}
	}
	return tx.Commit()
}

// SkillIDs returns the IDs of skills associated with the project.
func (s *ProjectStore) SkillIDs(projectID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := s.db.Query(`
		SELECT skill_id FROM project_skills WHERE project_id = $1`, projectID)
	if err != nil {
		return nil, fmt.Errorf("project skill ids: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan skill id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// uniqueSlug resolves the slug to store for a project. An explicit slug is
// used as the probe base; otherwise the base derives from the title. The
// probe tries base, base-1, base-2, ... until a slug is free, ignoring the
// row identified by excludeID (uuid.Nil on create).
func (s *ProjectStore) uniqueSlug(explicit, title string, excludeID uuid.UUID) (string, error) {
	base := explicit
	if base == "" {
		base = slug.Generate(title)
	}

	candidate := base
	for counter := 1; ; counter++ {
		var exists bool
		err := s.db.QueryRow(`
			SELECT EXISTS (SELECT 1 FROM projects WHERE slug = $1 AND id <> $2)`,
			candidate, excludeID,
		).Scan(&exists)
		if err != nil {
			return "", fmt.Errorf("slug probe: %w", err)
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, counter)
	}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*models.Project, error) {
	p := &models.Project{}
	err := row.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Description, &p.LongDescription,
		&p.Challenge, &p.Solution, &p.Results, &p.ImageThumbnail,
		&p.ImageHero, &p.Gallery, &p.TechStack, &p.ExternalURL,
		&p.GithubURL, &p.Featured, &p.Category, &p.SortOrder,
		&p.IsVisible, &p.CreatedAt, &p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scan project: %w", err)
	}
	return p, nil
}

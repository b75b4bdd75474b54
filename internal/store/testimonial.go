// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"folio/internal/models"
)

const testimonialColumns = `
	id, name, role, quote, photo, project_id, sort_order, is_visible, created_at`

// TestimonialStore handles testimonial database operations.
type TestimonialStore struct {
	db *sql.DB
}

// NewTestimonialStore creates a new TestimonialStore.
func NewTestimonialStore(db *sql.DB) *TestimonialStore {
	return &TestimonialStore{db: db}
}

// ListVisible returns visible testimonials in display order.
func (s *TestimonialStore) ListVisible() ([]models.Testimonial, error) {
	return s.list(`WHERE is_visible = TRUE`)
}

// List returns all testimonials for the admin panel.
func (s *TestimonialStore) List() ([]models.Testimonial, error) {
	return s.list("")
}

func (s *TestimonialStore) list(where string) ([]models.Testimonial, error) {
	rows, err := s.db.Query(`SELECT` + testimonialColumns + `
		FROM testimonials ` + where + `
		ORDER BY sort_order ASC, created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	defer rows.Close()

	var items []models.Testimonial
	for rows.Next() {
		var t models.Testimonial
		if err := rows.Scan(
			&t.ID, &t.Name, &t.Role, &t.Quote, &t.Photo,
			&t.ProjectID, &t.SortOrder, &t.IsVisible, &t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan testimonial: %w", err)
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

// FindByID retrieves a testimonial by ID. Returns nil if not found.
func (s *TestimonialStore) FindByID(id uuid.UUID) (*models.Testimonial, error) {
	t := &models.Testimonial{}
	err := s.db.QueryRow(`SELECT`+testimonialColumns+`
		FROM testimonials WHERE id = $1`, id).Scan(
		&t.ID, &t.Name, &t.Role, &t.Quote, &t.Photo,
		&t.ProjectID, &t.SortOrder, &t.IsVisible, &t.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find testimonial: %w", err)
	}
	return t, nil
}

// Create inserts a new testimonial and returns it with generated fields.
func (s *TestimonialStore) Create(t *models.Testimonial) (*models.Testimonial, error) {
	created := &models.Testimonial{}
	err := s.db.QueryRow(`
		INSERT INTO testimonials (name, role, quote, photo, project_id, sort_order, is_visible)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING`+testimonialColumns,
		t.Name, t.Role, t.Quote, t.Photo, t.ProjectID, t.SortOrder, t.IsVisible,
	).Scan(
		&created.ID, &created.Name, &created.Role, &created.Quote, &created.Photo,
		&created.ProjectID, &created.SortOrder, &created.IsVisible, &created.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create testimonial: %w", err)
	}
	return created, nil
}

// Update modifies an existing testimonial.
func (s *TestimonialStore) Update(t *models.Testimonial) error {
	_, err := s.db.Exec(`
		UPDATE testimonials SET
			name = $1, role = $2, quote = $3, photo = $4,
			project_id = $5, sort_order = $6, is_visible = $7
		WHERE id = $8`,
		t.Name, t.Role, t.Quote, t.Photo, t.ProjectID, t.SortOrder, t.IsVisible, t.ID,
	)
	if err != nil {
		return fmt.Errorf("update testimonial: %w", err)
	}
	return nil
}

// Delete removes a testimonial by ID.
func (s *TestimonialStore) Delete(id uuid.UUID) error {
	if _, err := s.db.Exec(`DELETE FROM testimonials WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete testimonial: %w", err)
	}
	return nil
}

// Count returns the total number of testimonials.
func (s *TestimonialStore) Count() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM testimonials`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count testimonials: %w", err)
	}
	return count, nil
}

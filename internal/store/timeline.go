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

const timelineColumns = `
	id, title, description, tech_stack, year, icon, color, sort_order, is_visible`

// TimelineStore handles career-timeline database operations.
type TimelineStore struct {
	db *sql.DB
}

// NewTimelineStore creates a new TimelineStore.
func NewTimelineStore(db *sql.DB) *TimelineStore {
	return &TimelineStore{db: db}
}

// ListVisible returns visible timeline events in display order.
func (s *TimelineStore) ListVisible() ([]models.TimelineEvent, error) {
	return s.list(`WHERE is_visible = TRUE`)
}

// List returns all timeline events for the admin panel.
func (s *TimelineStore) List() ([]models.TimelineEvent, error) {
	return s.list("")
}

func (s *TimelineStore) list(where string) ([]models.TimelineEvent, error) {
	rows, err := s.db.Query(`SELECT` + timelineColumns + `
		FROM timeline_events ` + where + `
		ORDER BY sort_order ASC`)
	if err != nil {
		return nil, fmt.Errorf("list timeline events: %w", err)
	}
	defer rows.Close()

	var events []models.TimelineEvent
	for rows.Next() {
		var e models.TimelineEvent
		if err := rows.Scan(
			&e.ID, &e.Title, &e.Description, &e.TechStack,
			&e.Year, &e.Icon, &e.Color, &e.SortOrder, &e.IsVisible,
		); err != nil {
			return nil, fmt.Errorf("scan timeline event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// FindByID retrieves a timeline event by ID. Returns nil if not found.
func (s *TimelineStore) FindByID(id uuid.UUID) (*models.TimelineEvent, error) {
	e := &models.TimelineEvent{}
	err := s.db.QueryRow(`SELECT`+timelineColumns+`
		FROM timeline_events WHERE id = $1`, id).Scan(
		&e.ID, &e.Title, &e.Description, &e.TechStack,
		&e.Year, &e.Icon, &e.Color, &e.SortOrder, &e.IsVisible,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find timeline event: %w", err)
	}
	return e, nil
}

// Create inserts a new timeline event. An empty color falls back to the
// default teal.
func (s *TimelineStore) Create(e *models.TimelineEvent) (*models.TimelineEvent, error) {
	if e.Color == "" {
		e.Color = models.DefaultTimelineColor
	}

	created := &models.TimelineEvent{}
	err := s.db.QueryRow(`
		INSERT INTO timeline_events (title, description, tech_stack, year, icon, color, sort_order, is_visible)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING`+timelineColumns,
		e.Title, e.Description, e.TechStack, e.Year, e.Icon, e.Color, e.SortOrder, e.IsVisible,
	).Scan(
		&created.ID, &created.Title, &created.Description, &created.TechStack,
		&created.Year, &created.Icon, &created.Color, &created.SortOrder, &created.IsVisible,
	)
	if err != nil {
		return nil, fmt.Errorf("create timeline event: %w", err)
	}
	return created, nil
}

// Update modifies an existing timeline event.
func (s *TimelineStore) Update(e *models.TimelineEvent) error {
	if e.Color == "" {
		e.Color = models.DefaultTimelineColor
	}

	_, err := s.db.Exec(`
		UPDATE timeline_events SET
			title = $1, description = $2, tech_stack = $3, year = $4,
			icon = $5, color = $6, sort_order = $7, is_visible = $8
		WHERE id = $9`,
		e.Title, e.Description, e.TechStack, e.Year,
		e.Icon, e.Color, e.SortOrder, e.IsVisible, e.ID,
	)
	if err != nil {
		return fmt.Errorf("update timeline event: %w", err)
	}
	return nil
}

// Delete removes a timeline event by ID.
func (s *TimelineStore) Delete(id uuid.UUID) error {
	if _, err := s.db.Exec(`DELETE FROM timeline_events WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete timeline event: %w", err)
	}
	return nil
}

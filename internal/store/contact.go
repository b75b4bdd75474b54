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

const contactColumns = `id, name, email, subject, message, is_read, created_at`

// ContactStore handles contact-message database operations. Messages are
// written by the public intake flow and only ever read (and marked read)
// by the admin inbox.
type ContactStore struct {
	db *sql.DB
}

// NewContactStore creates a new ContactStore.
func NewContactStore(db *sql.DB) *ContactStore {
	return &ContactStore{db: db}
}

// Create persists a validated contact message and returns it with
// generated fields.
func (s *ContactStore) Create(m *models.ContactMessage) (*models.ContactMessage, error) {
	created := &models.ContactMessage{}
	err := s.db.QueryRow(`
		INSERT INTO contact_messages (name, email, subject, message)
		VALUES ($1, $2, $3, $4)
		RETURNING `+contactColumns,
		m.Name, m.Email, m.Subject, m.Message,
	).Scan(
		&created.ID, &created.Name, &created.Email, &created.Subject,
		&created.Message, &created.IsRead, &created.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create contact message: %w", err)
	}
	return created, nil
}

// List returns all messages, newest first.
func (s *ContactStore) List() ([]models.ContactMessage, error) {
	rows, err := s.db.Query(`SELECT ` + contactColumns + `
		FROM contact_messages
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	defer rows.Close()

	var messages []models.ContactMessage
	for rows.Next() {
		var m models.ContactMessage
		if err := rows.Scan(
			&m.ID, &m.Name, &m.Email, &m.Subject,
			&m.Message, &m.IsRead, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan contact message: %w", err)
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// FindByID retrieves a single message. Returns nil if not found.
func (s *ContactStore) FindByID(id uuid.UUID) (*models.ContactMessage, error) {
	m := &models.ContactMessage{}
	err := s.db.QueryRow(`SELECT `+contactColumns+`
		FROM contact_messages WHERE id = $1`, id).Scan(
		&m.ID, &m.Name, &m.Email, &m.Subject,
		&m.Message, &m.IsRead, &m.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find contact message: %w", err)
	}
	return m, nil
}

// MarkRead flips the read flag. The flag only ever goes from false to
// true; everything else about a message is immutable after creation.
func (s *ContactStore) MarkRead(id uuid.UUID) error {
	if _, err := s.db.Exec(`
		UPDATE contact_messages SET is_read = TRUE WHERE id = $1`, id); err != nil {
		return fmt.Errorf("mark contact message read: %w", err)
	}
	return nil
}

// CountUnread returns the number of unread messages for the dashboard.
func (s *ContactStore) CountUnread() (int, error) {
	var count int
	err := s.db.QueryRow(`
		SELECT COUNT(*) FROM contact_messages WHERE is_read = FALSE`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count unread messages: %w", err)
	}
	return count, nil
}

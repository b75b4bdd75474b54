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

const skillColumns = `
	id, name, category, icon, years_experience, proficiency, sort_order, is_visible`

// SkillStore handles skill database operations.
type SkillStore struct {
	db *sql.DB
}

// NewSkillStore creates a new SkillStore.
func NewSkillStore(db *sql.DB) *SkillStore {
	return &SkillStore{db: db}
}

// ListVisible returns visible skills ordered by (category, sort_order,
// name) — the order the skills matrix groups rely on.
func (s *SkillStore) ListVisible() ([]models.Skill, error) {
	return s.list(`WHERE is_visible = TRUE`)
}

// List returns all skills for the admin panel.
func (s *SkillStore) List() ([]models.Skill, error) {
	return s.list("")
}

func (s *SkillStore) list(where string) ([]models.Skill, error) {
	rows, err := s.db.Query(`SELECT` + skillColumns + `
		FROM skills ` + where + `
		ORDER BY category ASC, sort_order ASC, name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	defer rows.Close()

	var skills []models.Skill
	for rows.Next() {
		var sk models.Skill
		if err := rows.Scan(
			&sk.ID, &sk.Name, &sk.Category, &sk.Icon,
			&sk.YearsExperience, &sk.Proficiency, &sk.SortOrder, &sk.IsVisible,
		); err != nil {
			return nil, fmt.Errorf("scan skill: %w", err)
		}
		skills = append(skills, sk)
	}
	return skills, rows.Err()
}

// FindByID retrieves a skill by ID. Returns nil if not found.
func (s *SkillStore) FindByID(id uuid.UUID) (*models.Skill, error) {
	sk := &models.Skill{}
	err := s.db.QueryRow(`SELECT`+skillColumns+`
		FROM skills WHERE id = $1`, id).Scan(
		&sk.ID, &sk.Name, &sk.Category, &sk.Icon,
		&sk.YearsExperience, &sk.Proficiency, &sk.SortOrder, &sk.IsVisible,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find skill: %w", err)
	}
	return sk, nil
}

// Create inserts a new skill and returns it with generated fields.
func (s *SkillStore) Create(sk *models.Skill) (*models.Skill, error) {
	created := &models.Skill{}
	err := s.db.QueryRow(`
		INSERT INTO skills (name, category, icon, years_experience, proficiency, sort_order, is_visible)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING`+skillColumns,
		sk.Name, sk.Category, sk.Icon, sk.YearsExperience, sk.Proficiency, sk.SortOrder, sk.IsVisible,
	).Scan(
		&created.ID, &created.Name, &created.Category, &created.Icon,
		&created.YearsExperience, &created.Proficiency, &created.SortOrder, &created.IsVisible,
	)
	if err != nil {
		return nil, fmt.Errorf("create skill: %w", err)
	}
	return created, nil
}

// Update modifies an existing skill.
func (s *SkillStore) Update(sk *models.Skill) error {
	_, err := s.db.Exec(`
		UPDATE skills SET
			name = $1, category = $2, icon = $3, years_experience = $4,
			proficiency = $5, sort_order = $6, is_visible = $7
		WHERE id = $8`,
		sk.Name, sk.Category, sk.Icon, sk.YearsExperience,
		sk.Proficiency, sk.SortOrder, sk.IsVisible, sk.ID,
	)
	if err != nil {
		return fmt.Errorf("update skill: %w", err)
	}
	return nil
}

// Delete removes a skill by ID. Join rows to projects go with it.
func (s *SkillStore) Delete(id uuid.UUID) error {
	if _, err := s.db.Exec(`DELETE FROM skills WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete skill: %w", err)
	}
	return nil
}

// ProjectIDs returns the IDs of projects associated with the skill.
func (s *SkillStore) ProjectIDs(skillID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := s.db.Query(`
		SELECT project_id FROM project_skills WHERE skill_id = $1`, skillID)
	if err != nil {
		return nil, fmt.Errorf("skill project ids: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan project id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

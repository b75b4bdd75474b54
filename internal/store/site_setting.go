// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"folio/internal/models"
)

const settingsColumns = `
	id, site_name, tagline, hero_title, hero_subtitle, about_text,
	profile_image, email, phone, location, github_url, linkedin_url,
	twitter_url, cv_file, projects_completed, sites_live, years_experience,
	happy_clients, updated_at`

// SiteSettingStore manages the singleton site-settings row.
type SiteSettingStore struct {
	db *sql.DB
}

// NewSiteSettingStore returns a new SiteSettingStore backed by the given database.
func NewSiteSettingStore(db *sql.DB) *SiteSettingStore {
	return &SiteSettingStore{db: db}
}

// Get returns the settings row, creating it with column defaults on first
// access. The insert is idempotent: ON CONFLICT DO NOTHING under the fixed
// primary key means concurrent first accesses still end with one row.
func (s *SiteSettingStore) Get() (*models.SiteSettings, error) {
	settings, err := s.find()
	if err != nil {
		return nil, err
	}
	if settings != nil {
		return settings, nil
	}

	_, err = s.db.Exec(`
		INSERT INTO site_settings (id) VALUES ($1)
		ON CONFLICT (id) DO NOTHING`, models.SiteSettingsID)
	if err != nil {
		return nil, fmt.Errorf("create site settings: %w", err)
	}

	settings, err = s.find()
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, fmt.Errorf("site settings missing after create")
	}
	return settings, nil
}

func (s *SiteSettingStore) find() (*models.SiteSettings, error) {
	set := &models.SiteSettings{}
	err := s.db.QueryRow(`SELECT`+settingsColumns+`
		FROM site_settings WHERE id = $1`, models.SiteSettingsID).Scan(
		&set.ID, &set.SiteName, &set.Tagline, &set.HeroTitle, &set.HeroSubtitle,
		&set.AboutText, &set.ProfileImage, &set.Email, &set.Phone, &set.Location,
		&set.GithubURL, &set.LinkedinURL, &set.TwitterURL, &set.CVFile,
		&set.ProjectsCompleted, &set.SitesLive, &set.YearsExperience,
		&set.HappyClients, &set.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find site settings: %w", err)
	}
	return set, nil
}

// Update writes the settings back. The primary key never changes, so the
// singleton constraint holds no matter what the caller passes in.
func (s *SiteSettingStore) Update(set *models.SiteSettings) error {
	_, err := s.db.Exec(`
		UPDATE site_settings SET
			site_name = $1, tagline = $2, hero_title = $3, hero_subtitle = $4,
			about_text = $5, profile_image = $6, email = $7, phone = $8,
			location = $9, github_url = $10, linkedin_url = $11, twitter_url = $12,
			cv_file = $13, projects_completed = $14, sites_live = $15,
			years_experience = $16, happy_clients = $17, updated_at = NOW()
		WHERE id = $18`,
		set.SiteName, set.Tagline, set.HeroTitle, set.HeroSubtitle,
		set.AboutText, set.ProfileImage, set.Email, set.Phone,
		set.Location, set.GithubURL, set.LinkedinURL, set.TwitterURL,
		set.CVFile, set.ProjectsCompleted, set.SitesLive,
		set.YearsExperience, set.HappyClients, models.SiteSettingsID,
	)
	if err != nil {
		return fmt.Errorf("update site settings: %w", err)
	}
	return nil
}

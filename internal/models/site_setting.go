// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// SiteSettingsID is the fixed primary key of the one settings row.
const SiteSettingsID = 1

// SiteSettings holds the site-wide configuration: identity, hero copy,
// contact details, social links, and the homepage statistics. Exactly one
// row exists, identified by SiteSettingsID; the store's get-or-create
// keeps it that way.
type SiteSettings struct {
	ID                int       `json:"id"`
	SiteName          string    `json:"site_name"`
	Tagline           string    `json:"tagline"`
	HeroTitle         string    `json:"hero_title"`
	HeroSubtitle      string    `json:"hero_subtitle"`
	AboutText         string    `json:"about_text,omitempty"`
	ProfileImage      *string   `json:"profile_image,omitempty"`
	Email             string    `json:"email,omitempty"`
	Phone             string    `json:"phone,omitempty"`
	Location          string    `json:"location,omitempty"`
	GithubURL         string    `json:"github_url,omitempty"`
	LinkedinURL       string    `json:"linkedin_url,omitempty"`
	TwitterURL        string    `json:"twitter_url,omitempty"`
	CVFile            *string   `json:"cv_file,omitempty"`
	ProjectsCompleted int       `json:"projects_completed"`
	SitesLive         int       `json:"sites_live"`
	YearsExperience   int       `json:"years_experience"`
	HappyClients      int       `json:"happy_clients"`
	UpdatedAt         time.Time `json:"updated_at"`
}

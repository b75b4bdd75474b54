// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "github.com/google/uuid"

// DefaultTimelineColor is the dot color used when none is set.
const DefaultTimelineColor = "#00d9ff"

// TimelineEvent is one entry of the career timeline. Year is a free-text
// period label ("2020", "2019-2021", "Present").
type TimelineEvent struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	TechStack   TechStack `json:"tech_stack"`
	Year        string    `json:"year"`
	Icon        string    `json:"icon,omitempty"`
	Color       string    `json:"color"`
	SortOrder   int       `json:"sort_order"`
	IsVisible   bool      `json:"is_visible"`
}

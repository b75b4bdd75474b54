// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Testimonial is a client or collaborator quote shown on the homepage.
// It may reference the project it relates to; deleting that project clears
// the reference rather than removing the testimonial.
type Testimonial struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Role      string     `json:"role"`
	Quote     string     `json:"quote"`
	Photo     *string    `json:"photo,omitempty"`
	ProjectID *uuid.UUID `json:"project_id,omitempty"`
	SortOrder int        `json:"sort_order"`
	IsVisible bool       `json:"is_visible"`
	CreatedAt time.Time  `json:"created_at"`
}

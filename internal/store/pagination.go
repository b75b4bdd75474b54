// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import "folio/internal/models"

// ProjectPageSize is the fixed number of projects per listing page.
const ProjectPageSize = 9

// ProjectPage is one page of a project listing.
type ProjectPage struct {
	Items      []models.Project
	Number     int // 1-based, clamped into [1, TotalPages]
	TotalPages int
	Total      int // total items across all pages
}

// HasPrev reports whether a previous page exists.
func (p *ProjectPage) HasPrev() bool { return p.Number > 1 }

// HasNext reports whether a next page exists.
func (p *ProjectPage) HasNext() bool { return p.Number < p.TotalPages }

// PrevNumber returns the previous page number (valid only when HasPrev).
func (p *ProjectPage) PrevNumber() int { return p.Number - 1 }

// NextNumber returns the next page number (valid only when HasNext).
func (p *ProjectPage) NextNumber() int { return p.Number + 1 }

// PageNumbers returns 1..TotalPages for the pager links.
func (p *ProjectPage) PageNumbers() []int {
	nums := make([]int, p.TotalPages)
	for i := range nums {
		nums[i] = i + 1
	}
	return nums
}

// PaginateProjects slices projects into the requested page of size
// ProjectPageSize. Out-of-range page numbers clamp to the nearest valid
// page instead of erroring; an empty listing yields a single empty page.
func PaginateProjects(projects []models.Project, page int) *ProjectPage {
	total := len(projects)
	totalPages := (total + ProjectPageSize - 1) / ProjectPageSize
	if totalPages == 0 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * ProjectPageSize
	end := start + ProjectPageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return &ProjectPage{
		Items:      projects[start:end],
		Number:     page,
		TotalPages: totalPages,
		Total:      total,
	}
}

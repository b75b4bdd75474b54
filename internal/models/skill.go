// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "github.com/google/uuid"

// SkillCategory groups skills into the sections of the skills matrix.
type SkillCategory string

const (
	SkillFrontend SkillCategory = "frontend"
	SkillBackend  SkillCategory = "backend"
	SkillTools    SkillCategory = "tools"
	SkillSoft     SkillCategory = "soft"
)

// SkillCategories lists all valid skill categories.
var SkillCategories = []SkillCategory{
	SkillFrontend,
	SkillBackend,
	SkillTools,
	SkillSoft,
}

// Label returns the human-readable name of the category.
func (c SkillCategory) Label() string {
	switch c {
	case SkillFrontend:
		return "Frontend"
	case SkillBackend:
		return "Backend"
	case SkillTools:
		return "Tools & DevOps"
	case SkillSoft:
		return "Soft Skills"
	}
	return string(c)
}

// ValidSkillCategory reports whether s is one of the known categories.
func ValidSkillCategory(s string) bool {
	for _, c := range SkillCategories {
		if string(c) == s {
			return true
		}
	}
	return false
}

// Skill is one entry of the skills matrix. Proficiency is a percentage
// in [0,100], enforced by a database check constraint.
type Skill struct {
	ID              uuid.UUID     `json:"id"`
	Name            string        `json:"name"`
	Category        SkillCategory `json:"category"`
	Icon            string        `json:"icon,omitempty"`
	YearsExperience int           `json:"years_experience"`
	Proficiency     int           `json:"proficiency"`
	SortOrder       int           `json:"sort_order"`
	IsVisible       bool          `json:"is_visible"`
}

// SkillGroup is one category section of the skills matrix, in the order
// the skills were returned by the store.
type SkillGroup struct {
	Category SkillCategory
	Label    string
	Skills   []Skill
}

// GroupSkills partitions skills into per-category groups, preserving the
// input order both across and within groups. The input is expected to be
// sorted by (category, sort_order, name) already.
func GroupSkills(skills []Skill) []SkillGroup {
	var groups []SkillGroup
	index := make(map[SkillCategory]int)

	for _, s := range skills {
		i, ok := index[s.Category]
		if !ok {
			i = len(groups)
			index[s.Category] = i
			groups = append(groups, SkillGroup{
				Category: s.Category,
				Label:    s.Category.Label(),
			})
		}
		groups[i].Skills = append(groups[i].Skills, s)
	}
	return groups
}

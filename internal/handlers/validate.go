// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/mail"
	"strings"
	"unicode/utf8"
)

// Limits for contact-form fields. Lengths are counted in runes so
// multi-byte names don't get rejected early.
const (
	maxContactNameLen    = 100
	maxContactSubjectLen = 200
	minContactMessageLen = 10
)

// ContactInput is a contact-form submission before validation. All fields
// arrive as raw form values; Validate trims and checks them.
type ContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Validate checks the submission and returns per-field error lists keyed
// by form field name. A nil map means the input is valid. Name, Email and
// Message are trimmed in place so the caller persists the clean values.
func (in *ContactInput) Validate() map[string][]string {
	errs := make(map[string][]string)

	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Subject = strings.TrimSpace(in.Subject)
	in.Message = strings.TrimSpace(in.Message)

	if in.Name == "" {
		errs["name"] = append(errs["name"], "This field is required.")
	} else if utf8.RuneCountInString(in.Name) > maxContactNameLen {
		errs["name"] = append(errs["name"], "Name must be 100 characters or fewer.")
	}

	if in.Email == "" {
		errs["email"] = append(errs["email"], "This field is required.")
	} else if _, err := mail.ParseAddress(in.Email); err != nil {
		errs["email"] = append(errs["email"], "Enter a valid email address.")
	}

	if utf8.RuneCountInString(in.Subject) > maxContactSubjectLen {
		errs["subject"] = append(errs["subject"], "Subject must be 200 characters or fewer.")
	}

	if in.Message == "" {
		errs["message"] = append(errs["message"], "This field is required.")
	} else if utf8.RuneCountInString(in.Message) < minContactMessageLen {
		errs["message"] = append(errs["message"], "Message must be at least 10 characters.")
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

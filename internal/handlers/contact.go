// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"folio/internal/mailer"
	"folio/internal/models"
	"folio/internal/store"
)

// Contact handles public contact-form submissions. Responses are JSON so
// the form can submit via fetch without a page reload.
type Contact struct {
	contactStore *store.ContactStore
	notifier     mailer.Notifier
}

// NewContact creates a new Contact handler group. notifier may be nil when
// SMTP is not configured; messages are then only stored in the inbox.
func NewContact(contactStore *store.ContactStore, notifier mailer.Notifier) *Contact {
	return &Contact{
		contactStore: contactStore,
		notifier:     notifier,
	}
}

// Submit validates and stores a contact message. Validation failures come
// back as 400 with per-field error lists; the message row is only created
// when every field passes.
func (c *Contact) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"errors":  map[string][]string{"__all__": {"Malformed form data."}},
		})
		return
	}

	in := &ContactInput{
		Name:    r.FormValue("name"),
		Email:   r.FormValue("email"),
		Subject: r.FormValue("subject"),
		Message: r.FormValue("message"),
	}

	if errs := in.Validate(); errs != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"errors":  errs,
		})
		return
	}

	msg, err := c.contactStore.Create(&models.ContactMessage{
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Message: in.Message,
	})
	if err != nil {
		slog.Error("store contact message failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"errors":  map[string][]string{"__all__": {"Something went wrong. Please try again."}},
		})
		return
	}

	// Notification is best-effort. The message is already in the inbox, so
	// a mail failure must not turn the submission into an error.
	if c.notifier != nil {
		if err := c.notifier.NotifyContact(msg); err != nil {
			slog.Warn("contact notification failed", "id", msg.ID, "error", err)
		}
	}

	slog.Info("contact message received", "id", msg.ID, "from", msg.Email)
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Thanks for reaching out! I'll get back to you soon.",
	})
}

// writeJSON serializes v with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json encode failed", "error", err)
	}
}

// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"folio/internal/models"
	"folio/internal/store"
)

// failingNotifier always errors, standing in for a broken SMTP server.
type failingNotifier struct {
	called bool
}

func (f *failingNotifier) NotifyContact(_ *models.ContactMessage) error {
	f.called = true
	return errors.New("smtp unreachable")
}

func postContactForm(h *Contact, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/contact/submit/",
		strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.Submit(rec, req)
	return rec
}

func TestContactSubmitInvalid(t *testing.T) {
	// Validation runs before any store access, so no DB is needed.
	h := NewContact(&store.ContactStore{}, nil)

	rec := postContactForm(h, url.Values{
		"name":    {""},
		"email":   {"nope"},
		"message": {"short"},
	})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var body struct {
		Success bool                `json:"success"`
		Errors  map[string][]string `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Success {
		t.Error("success = true, want false")
	}
	for _, field := range []string{"name", "email", "message"} {
		if len(body.Errors[field]) == 0 {
			t.Errorf("missing error for field %q: %v", field, body.Errors)
		}
	}
}

func TestContactSubmitStoresMessage(t *testing.T) {
	db := testDB(t)
	cleanMessages(t, db, "visitor@example.com")
	t.Cleanup(func() { cleanMessages(t, db, "visitor@example.com") })

	contactStore := store.NewContactStore(db)
	h := NewContact(contactStore, nil)

	rec := postContactForm(h, url.Values{
		"name":    {"Visitor"},
		"email":   {"visitor@example.com"},
		"subject": {"Hello"},
		"message": {"This is a sufficiently long message."},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Success bool `json:"success"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !body.Success {
		t.Error("success = false, want true")
	}

	var count int
	db.QueryRow("SELECT COUNT(*) FROM contact_messages WHERE email = $1",
		"visitor@example.com").Scan(&count)
	if count != 1 {
		t.Errorf("stored messages = %d, want 1", count)
	}
}

func TestContactSubmitNotifierFailureStillSucceeds(t *testing.T) {
	db := testDB(t)
	cleanMessages(t, db, "resilient@example.com")
	t.Cleanup(func() { cleanMessages(t, db, "resilient@example.com") })

	notifier := &failingNotifier{}
	h := NewContact(store.NewContactStore(db), notifier)

	rec := postContactForm(h, url.Values{
		"name":    {"Visitor"},
		"email":   {"resilient@example.com"},
		"message": {"Mail being down must not lose this message."},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if !notifier.called {
		t.Error("notifier was never invoked")
	}

	var count int
	db.QueryRow("SELECT COUNT(*) FROM contact_messages WHERE email = $1",
		"resilient@example.com").Scan(&count)
	if count != 1 {
		t.Errorf("stored messages = %d, want 1", count)
	}
}
